// Package levels loads Sokoban levels, either from the standard text
// format or from YAML level-set files. It depends on game but game does
// not depend on levels.
package levels

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/game"
)

// Standard Sokoban level symbols.
const (
	SymWall       = '#'
	SymPlayer     = '@'
	SymPlayerGoal = '+'
	SymBox        = '$'
	SymBoxGoal    = '*'
	SymGoal       = '.'
	SymFloor      = ' '
	SymComment    = ';'
)

// ParseLevel builds a level from rows of standard Sokoban symbols.
func ParseLevel(rows []string) (*game.Level, error) {
	var walls, goals, boxes []game.Pos
	var player game.Pos
	seenPlayer := false

	for r, row := range rows {
		for c, ch := range row {
			p := game.Pos{R: r, C: c}
			switch ch {
			case SymWall:
				walls = append(walls, p)
			case SymPlayer:
				player = p
				seenPlayer = true
			case SymPlayerGoal:
				player = p
				seenPlayer = true
				goals = append(goals, p)
			case SymBox:
				boxes = append(boxes, p)
			case SymBoxGoal:
				boxes = append(boxes, p)
				goals = append(goals, p)
			case SymGoal:
				goals = append(goals, p)
			case SymFloor:
				// nothing
			default:
				return nil, fmt.Errorf("levels: unknown symbol %q at row %d col %d", ch, r, c)
			}
		}
	}
	if !seenPlayer {
		return nil, fmt.Errorf("levels: no player position")
	}
	return game.NewLevel(walls, goals, boxes, player)
}

// ParseCollection reads a level file in the standard text format.
// Levels are runs of lines starting (after optional indentation) with a
// wall symbol; blank lines, comments and anything else separate them.
func ParseCollection(r io.Reader) ([]*game.Level, error) {
	var all []*game.Level
	var current []string

	flush := func() error {
		if len(current) == 0 {
			return nil
		}
		l, err := ParseLevel(current)
		if err != nil {
			return fmt.Errorf("level %d: %w", len(all)+1, err)
		}
		all = append(all, l)
		current = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), string(SymWall)) {
			current = append(current, line)
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("levels: reading collection: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("levels: no levels found")
	}
	return all, nil
}

// Render writes a state back to rows of standard symbols, mainly for
// diagnostics and tests.
func Render(s *game.State) []string {
	l := s.Level()
	size := l.Size()
	rows := make([]string, size.R)
	for r := 0; r < size.R; r++ {
		var sb strings.Builder
		for c := 0; c < size.C; c++ {
			p := game.Pos{R: r, C: c}
			sb.WriteRune(symbolAt(s, p))
		}
		rows[r] = strings.TrimRight(sb.String(), " ")
	}
	return rows
}

func symbolAt(s *game.State, p game.Pos) rune {
	l := s.Level()
	switch {
	case l.IsWall(p):
		return SymWall
	case p == s.Player():
		if l.IsGoal(p) {
			return SymPlayerGoal
		}
		return SymPlayer
	case s.HasBox(p):
		if l.IsGoal(p) {
			return SymBoxGoal
		}
		return SymBox
	case l.IsGoal(p):
		return SymGoal
	default:
		return SymFloor
	}
}
