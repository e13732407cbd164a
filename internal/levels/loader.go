package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/game"
)

// Set is a named collection of levels, loaded from one file.
type Set struct {
	ID     string
	Name   string
	Author string
	Levels []*game.Level
	Names  []string // per-level names, may be empty strings
	File   string
}

// LevelName returns the display name of one level in the set.
func (s Set) LevelName(i int) string {
	if i >= 0 && i < len(s.Names) && s.Names[i] != "" {
		return s.Names[i]
	}
	return fmt.Sprintf("Level %d", i+1)
}

// Loader discovers and loads level sets from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll scans the root recursively and loads every level file.
// Returns sets sorted by ID for deterministic ordering; files that fail
// to parse are skipped.
func (l *Loader) LoadAll() ([]Set, error) {
	var sets []Set

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}
		set, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		sets = append(sets, set)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(sets, func(i, j int) bool { return sets[i].ID < sets[j].ID })
	return sets, nil
}

// LoadFile loads a single level-set file, routing by extension. For
// text files the set ID is the file name without extension.
func (l *Loader) LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	var set Set
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		lvls, err := ParseCollection(strings.NewReader(string(data)))
		if err != nil {
			return Set{}, fmt.Errorf("levels: parsing %s: %w", path, err)
		}
		id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		set = Set{ID: id, Name: id, Levels: lvls}
	case ".yaml", ".yml":
		set, err = ParseYAML(data)
		if err != nil {
			return Set{}, fmt.Errorf("levels: parsing %s: %w", path, err)
		}
	default:
		return Set{}, fmt.Errorf("levels: unsupported extension %q", ext)
	}
	set.File = path
	return set, nil
}

// LoadByID loads a specific level set by its ID.
func (l *Loader) LoadByID(id string) (Set, error) {
	sets, err := l.LoadAll()
	if err != nil {
		return Set{}, err
	}
	for _, s := range sets {
		if s.ID == id {
			return s, nil
		}
	}
	return Set{}, fmt.Errorf("levels: set not found: %s", id)
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
