package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			TimeoutSeconds: 30,
			MaxNodes:       0,
			Aggressive:     false,
			AnimationMS:    120,
		},
		UI: UIConfig{
			ShowDeadends: false,
			WallColor:    "240",
			BoxColor:     "178",
			GoalColor:    "71",
			PlayerColor:  "205",
		},
		Paths: PathsConfig{
			Database: "~/.sokoban/results.db",
			Levels:   "levels",
		},
	}
}
