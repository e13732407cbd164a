// Package config provides YAML-based configuration loading for the
// puzzle platform.
package config

// Config contains all runtime configuration.
type Config struct {
	Solver SolverConfig `yaml:"solver"`
	UI     UIConfig     `yaml:"ui"`
	Paths  PathsConfig  `yaml:"paths"`
}

// SolverConfig defines parameters for the automatic solver.
type SolverConfig struct {
	TimeoutSeconds int  `yaml:"timeout_seconds"` // 0 disables the timeout
	MaxNodes       int  `yaml:"max_nodes"`       // 0 means unbounded
	Aggressive     bool `yaml:"aggressive"`      // coarser state fingerprints
	AnimationMS    int  `yaml:"animation_ms"`    // delay between replayed moves
}

// UIConfig defines terminal presentation options.
type UIConfig struct {
	ShowDeadends bool   `yaml:"show_deadends"` // start with the deadend overlay on
	WallColor    string `yaml:"wall_color"`
	BoxColor     string `yaml:"box_color"`
	GoalColor    string `yaml:"goal_color"`
	PlayerColor  string `yaml:"player_color"`
}

// PathsConfig defines filesystem locations.
type PathsConfig struct {
	Database string `yaml:"database"`
	Levels   string `yaml:"levels"`
}
