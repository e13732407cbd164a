package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/game"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
)

var (
	flagSolveLevel    int
	flagSolveTimeout  int
	flagSolveMaxNodes int
	flagAggressive    bool
	flagVerbose       bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <set>",
	Short: "Run the automatic solver on a level",
	Long: `Search for a solution to the specified level and print it.

The solution is printed in rlud notation: one letter per move,
uppercase when the move pushes a box.

Examples:
  sokoban solve classic --level 3
  sokoban solve classic --level 3 --timeout 120
  sokoban solve classic --level 3 --aggressive
  sokoban solve classic --level 3 --max-nodes 500000 -v`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveLevel, "level", 1, "Level to solve (1-based)")
	solveCmd.Flags().IntVar(&flagSolveTimeout, "timeout", 0, "Timeout in seconds (0 = config default)")
	solveCmd.Flags().IntVar(&flagSolveMaxNodes, "max-nodes", 0, "Node expansion budget (0 = config default)")
	solveCmd.Flags().BoolVar(&flagAggressive, "aggressive", false, "Coarser state fingerprints (faster, may miss solutions)")
	solveCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log search progress")
}

func runSolve(cmd *cobra.Command, args []string) {
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

	if flagSolveLevel < 1 || flagSolveLevel > len(set.Levels) {
		fmt.Fprintf(os.Stderr, "Error: set %q has levels 1-%d\n", setID, len(set.Levels))
		os.Exit(1)
	}
	level := set.Levels[flagSolveLevel-1]

	timeout := flagSolveTimeout
	if timeout == 0 {
		timeout = cfg.Solver.TimeoutSeconds
	}
	maxNodes := flagSolveMaxNodes
	if maxNodes == 0 {
		maxNodes = cfg.Solver.MaxNodes
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "solver",
	})

	opts := game.SolveOptions{
		Aggressive: flagAggressive || cfg.Solver.Aggressive,
		MaxNodes:   maxNodes,
	}
	if flagVerbose {
		opts.Progress = func(stats game.SolveStats) {
			logger.Info("searching",
				"expanded", stats.Expanded,
				"frontier", stats.Frontier,
				"seen", stats.Seen,
			)
		}
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	start := time.Now()
	path, stats, found, err := game.Solve(ctx, level.InitialState(), opts)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			fmt.Fprintf(os.Stderr, "Solver timed out after %ds (%d nodes expanded)\n", timeout, stats.Expanded)
		} else {
			fmt.Fprintf(os.Stderr, "Solver error: %v\n", err)
		}
		os.Exit(1)
	}
	if !found {
		fmt.Fprintf(os.Stderr, "No solution found (%d nodes expanded in %s)\n", stats.Expanded, elapsed.Round(time.Millisecond))
		os.Exit(1)
	}

	pushes := 0
	for _, mv := range path {
		if mv.Push {
			pushes++
		}
	}

	fmt.Printf("Solution for %s level %d (%s):\n", setID, flagSolveLevel, set.LevelName(flagSolveLevel-1))
	fmt.Println()
	fmt.Printf("  %s\n", game.PathString(path))
	fmt.Println()
	fmt.Printf("Moves: %d  Pushes: %d\n", len(path), pushes)
	fmt.Printf("Expanded %d nodes in %s\n", stats.Expanded, elapsed.Round(time.Millisecond))
}
