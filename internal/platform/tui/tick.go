// Package tui provides the Bubble Tea integration for the puzzle platform.
// It handles the terminal UI loop, input mapping, and solver playback.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StepMsg is sent to advance solver playback by one move.
type StepMsg time.Time

// stepCmd returns a Bubble Tea command that sends a playback step after the delay.
func stepCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return StepMsg(t)
	})
}
