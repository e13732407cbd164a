package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <set>",
	Short: "Show best results for a level set",
	Long: `Display the best recorded move count for every level of a set.

Examples:
  sokoban scores classic
  sokoban scores classic --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all results for the set")
}

func runScores(cmd *cobra.Command, args []string) {
	setID := args[0]

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	loader := levels.NewLoader(cfg.Paths.Levels)
	set, err := loader.LoadByID(setID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available sets.")
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearResults(setID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all results for %q.\n", setID)
		return
	}

	best, err := store.BestPerLevel(setID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Results - %s\n", set.Name)
	fmt.Println()

	if len(best) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sokoban play %s' to set the first result!\n", setID)
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-20s  %s\n", "Level", "Name", "Best")
	fmt.Printf("  %-6s  %-20s  %s\n", "-----", "----", "----")

	indices := make([]int, 0, len(best))
	for idx := range best {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	for _, idx := range indices {
		name := set.LevelName(idx)
		if len(name) > 20 {
			name = name[:19] + "."
		}
		fmt.Printf("  %-6d  %-20s  %d\n", idx+1, name, best[idx])
	}

	fmt.Println()
	stats, err := store.GetSetStats(setID)
	if err == nil {
		fmt.Printf("Solved %d/%d levels in %d attempts\n", stats.SolvedLevels, len(set.Levels), stats.Attempts)
	}
}
