package levels

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlSet is the YAML structure of a level-set file.
type yamlSet struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Author string      `yaml:"author,omitempty"`
	Levels []yamlLevel `yaml:"levels"`
}

// yamlLevel is one level inside a YAML set: a name plus the usual text
// layout embedded as a block scalar.
type yamlLevel struct {
	Name   string `yaml:"name,omitempty"`
	Layout string `yaml:"layout"`
}

// ParseYAML parses a YAML level-set file.
func ParseYAML(data []byte) (Set, error) {
	var ys yamlSet
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Set{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}
	if ys.ID == "" {
		return Set{}, fmt.Errorf("levels: yaml set has no id")
	}
	if len(ys.Levels) == 0 {
		return Set{}, fmt.Errorf("levels: yaml set %q has no levels", ys.ID)
	}

	set := Set{
		ID:     ys.ID,
		Name:   ys.Name,
		Author: ys.Author,
	}
	if set.Name == "" {
		set.Name = ys.ID
	}
	for i, yl := range ys.Levels {
		rows := strings.Split(strings.Trim(yl.Layout, "\n"), "\n")
		l, err := ParseLevel(rows)
		if err != nil {
			return Set{}, fmt.Errorf("levels: yaml set %q level %d: %w", ys.ID, i+1, err)
		}
		set.Levels = append(set.Levels, l)
		set.Names = append(set.Names, yl.Name)
	}
	return set, nil
}

// FormatExtensions returns the supported level file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".yaml", ".yml"}
}
