// sokoban is a TUI puzzle platform for playing and solving box-pushing
// levels in the terminal.
//
// Usage:
//
//	sokoban list              - List available level sets
//	sokoban play <set>        - Play a level set
//	sokoban solve <set>       - Solve a level automatically
//	sokoban scores <set>      - Show best results for a set
//	sokoban serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a config YAML
//	--db <path>      - Set database path (default: ~/.sokoban/results.db)
//	--levels <path>  - Set levels directory (default: ./levels)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDBPath     string
	flagLevelsPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "TUI Sokoban - Push boxes in your terminal",
	Long: `TUI Sokoban is a terminal puzzle platform for playing and solving
box-pushing levels.

Available commands:
  list     - Show all available level sets
  play     - Play a level set interactively
  solve    - Run the automatic solver on a level
  scores   - View best results
  serve    - Start SSH server for remote play

Examples:
  sokoban list
  sokoban play classic
  sokoban solve classic --level 3 --timeout 60
  sokoban scores classic
  sokoban serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsPath, "levels", "", "Path to levels directory (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Paths.Database = flagDBPath
	}
	if flagLevelsPath != "" {
		cfg.Paths.Levels = flagLevelsPath
	}
	return cfg, nil
}
