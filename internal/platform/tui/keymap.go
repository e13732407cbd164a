package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// PlayKeyMap defines the key bindings for the play screen.
type PlayKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Snapshot  key.Binding
	Restore   key.Binding
	Deadends  key.Binding
	Solve     key.Binding
	Restart   key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Undo, k.Redo, k.Solve, k.Deadends, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Undo, k.Redo, k.Snapshot, k.Restore},
		{k.Solve, k.Deadends, k.Restart, k.Reload},
		{k.NextLevel, k.PrevLevel, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("left", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("right", "move right"),
		),
		Undo: key.NewBinding(
			key.WithKeys("z", "u"),
			key.WithHelp("z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("y", "ctrl+r"),
			key.WithHelp("y", "redo"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "snapshot"),
		),
		Restore: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "restore"),
		),
		Deadends: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "deadends"),
		),
		Solve: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "auto-solve"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart level"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("pgdown", "n", "tab"),
			key.WithHelp("n", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("pgup", "p", "shift+tab"),
			key.WithHelp("p", "prev level"),
		),
		Reload: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("F5", "reload levels"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
