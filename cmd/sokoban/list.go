package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available level sets",
	Long:  `Shows every level set found in the levels directory.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	loader := levels.NewLoader(cfg.Paths.Levels)
	sets, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(sets) == 0 {
		fmt.Println("No level sets found.")
		fmt.Printf("Put .txt or .yaml level files into %s\n", cfg.Paths.Levels)
		return
	}

	fmt.Println("Available level sets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sets {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Levels", "Name")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "------", "----")

	// Print sets
	for _, s := range sets {
		fmt.Printf("  %-*s  %-7d  %s\n", maxIDLen, s.ID, len(s.Levels), s.Name)
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play <id>' to play a set.")
}
