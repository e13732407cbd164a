package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagPlayLevel int

var playCmd = &cobra.Command{
	Use:   "play <set>",
	Short: "Play a level set",
	Long: `Start playing the specified level set.

Controls:
  Arrows/WASD  - Move (walk into a box to push it)
  Z            - Undo
  Y            - Redo
  Ctrl+S       - Save snapshot
  Ctrl+L       - Restore snapshot
  X            - Toggle deadend overlay
  O            - Auto-solve the level
  R            - Restart level
  N / P        - Next / previous level
  F5           - Reload levels from disk
  Q/Ctrl+C     - Quit

Examples:
  sokoban play classic
  sokoban play classic --level 5
  sokoban play classic --levels ./my-levels`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayLevel, "level", 1, "Level to start at (1-based)")
}

func runPlay(cmd *cobra.Command, args []string) {
	setID := args[0]

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play requires an interactive terminal")
		os.Exit(1)
	}

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

	if flagPlayLevel < 1 || flagPlayLevel > len(set.Levels) {
		fmt.Fprintf(os.Stderr, "Error: set %q has levels 1-%d\n", setID, len(set.Levels))
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - play still works
		store = nil
	}

	runErr := tui.Run(set, loader, store, cfg, flagPlayLevel-1)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
