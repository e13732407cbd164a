package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/game"
)

// Board glyphs. Boxes and the player render differently on goal cells
// so progress stays visible.
const (
	glyphWall       = '#'
	glyphFloor      = ' '
	glyphGoal       = '.'
	glyphBox        = '$'
	glyphBoxOnGoal  = '*'
	glyphPlayer     = '@'
	glyphPlayerGoal = '+'
	glyphDeadend    = 'x'
)

// BoardStyles maps board cell kinds to lipgloss styles.
type BoardStyles struct {
	Wall    lipgloss.Style
	Box     lipgloss.Style
	Done    lipgloss.Style
	Goal    lipgloss.Style
	Player  lipgloss.Style
	Deadend lipgloss.Style
	Floor   lipgloss.Style
}

// NewBoardStyles builds styles from UI configuration.
func NewBoardStyles(cfg config.UIConfig) BoardStyles {
	return BoardStyles{
		Wall:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.WallColor)),
		Box:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.BoxColor)).Bold(true),
		Done:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.GoalColor)).Bold(true),
		Goal:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.GoalColor)),
		Player:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.PlayerColor)).Bold(true),
		Deadend: lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
		Floor:   lipgloss.NewStyle(),
	}
}

// RenderBoard converts a game state to a styled string for display.
// When overlay is true, deadend cells are marked.
func RenderBoard(s *game.State, styles BoardStyles, overlay bool) string {
	l := s.Level()
	size := l.Size()

	var sb strings.Builder
	sb.Grow(size.R * (size.C*2 + 1))

	for r := 0; r < size.R; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := 0; c < size.C; c++ {
			p := game.Pos{R: r, C: c}
			glyph, style := cellGlyph(s, p, styles, overlay)
			sb.WriteString(style.Render(string(glyph)))
		}
	}
	return sb.String()
}

func cellGlyph(s *game.State, p game.Pos, styles BoardStyles, overlay bool) (rune, lipgloss.Style) {
	l := s.Level()
	switch {
	case l.IsWall(p):
		return glyphWall, styles.Wall
	case p == s.Player():
		if l.IsGoal(p) {
			return glyphPlayerGoal, styles.Player
		}
		return glyphPlayer, styles.Player
	case s.HasBox(p):
		if l.IsGoal(p) {
			return glyphBoxOnGoal, styles.Done
		}
		return glyphBox, styles.Box
	case l.IsGoal(p):
		return glyphGoal, styles.Goal
	case overlay && l.IsDeadend(p):
		return glyphDeadend, styles.Deadend
	default:
		return glyphFloor, styles.Floor
	}
}
