package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/game"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// solveDoneMsg carries the solver result back into the update loop.
type solveDoneMsg struct {
	plan  []game.Move
	stats game.SolveStats
	found bool
	err   error
}

// PlayModel is the Bubble Tea model for playing a level set.
type PlayModel struct {
	set      levels.Set
	loader   *levels.Loader
	levelIdx int
	state    *game.State
	snapshot *game.State

	store  *storage.Store
	cfg    config.Config
	styles BoardStyles
	keys   PlayKeyMap
	help   help.Model

	overlay     bool
	solving     bool
	plan        []game.Move
	planPos     int
	status      string
	resultSaved bool
	width       int
	height      int
	quitting    bool
}

// NewPlayModel creates a play model for the given set, starting at levelIdx.
func NewPlayModel(set levels.Set, loader *levels.Loader, store *storage.Store, cfg config.Config, levelIdx int) PlayModel {
	if levelIdx < 0 || levelIdx >= len(set.Levels) {
		levelIdx = 0
	}

	h := help.New()
	h.ShowAll = false

	return PlayModel{
		set:      set,
		loader:   loader,
		levelIdx: levelIdx,
		state:    set.Levels[levelIdx].InitialState(),
		store:    store,
		cfg:      cfg,
		styles:   NewBoardStyles(cfg.UI),
		keys:     DefaultPlayKeyMap(),
		help:     h,
		overlay:  cfg.UI.ShowDeadends,
	}
}

// Init initializes the play model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case solveDoneMsg:
		return m.handleSolveDone(msg)

	case StepMsg:
		return m.handleStep()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	// Playback swallows everything except quit
	if m.solving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		return m.handleMove(game.Move{DR: -1})
	case key.Matches(msg, m.keys.Down):
		return m.handleMove(game.Move{DR: 1})
	case key.Matches(msg, m.keys.Left):
		return m.handleMove(game.Move{DC: -1})
	case key.Matches(msg, m.keys.Right):
		return m.handleMove(game.Move{DC: 1})

	case key.Matches(msg, m.keys.Undo):
		if _, ok := m.state.Undo(); ok {
			m.status = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.Redo):
		if m.state.Redo() {
			m.status = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.Snapshot):
		m.snapshot = m.state.Copy()
		m.status = "snapshot saved"
		return m, nil

	case key.Matches(msg, m.keys.Restore):
		if m.snapshot != nil {
			m.state = m.snapshot.Copy()
			m.status = "snapshot restored"
		}
		return m, nil

	case key.Matches(msg, m.keys.Deadends):
		m.overlay = !m.overlay
		return m, nil

	case key.Matches(msg, m.keys.Solve):
		return m.startSolve()

	case key.Matches(msg, m.keys.Restart):
		m.loadLevel(m.levelIdx)
		return m, nil

	case key.Matches(msg, m.keys.NextLevel):
		m.loadLevel((m.levelIdx + 1) % len(m.set.Levels))
		return m, nil

	case key.Matches(msg, m.keys.PrevLevel):
		idx := m.levelIdx - 1
		if idx < 0 {
			idx = len(m.set.Levels) - 1
		}
		m.loadLevel(idx)
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m.reload()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// handleMove applies a player move, pushing when a box is in the way.
func (m PlayModel) handleMove(mv game.Move) (tea.Model, tea.Cmd) {
	mv.Push = m.state.HasBox(m.state.Player().Add(mv))
	if !m.state.CanMove(mv) {
		return m, nil
	}
	m.state.Move(mv)
	m.status = ""
	m.checkSolved()
	return m, nil
}

// checkSolved records the result the first time the level is completed.
func (m *PlayModel) checkSolved() {
	if !m.state.IsSolved() || m.resultSaved {
		return
	}
	moves := m.state.MoveCount()
	pushes := 0
	for _, mv := range m.state.History() {
		if mv.Push {
			pushes++
		}
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, play continues regardless
		m.store.SaveResult(m.set.ID, m.levelIdx, moves, pushes)
	}
	m.resultSaved = true
	m.status = fmt.Sprintf("solved in %d moves", moves)
}

// loadLevel resets play state for the given level index.
func (m *PlayModel) loadLevel(idx int) {
	m.levelIdx = idx
	m.state = m.set.Levels[idx].InitialState()
	m.snapshot = nil
	m.plan = nil
	m.planPos = 0
	m.solving = false
	m.resultSaved = false
	m.status = ""
}

// reload re-reads the level set from disk.
func (m PlayModel) reload() (tea.Model, tea.Cmd) {
	if m.loader == nil {
		return m, nil
	}
	set, err := m.loader.LoadByID(m.set.ID)
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return m, nil
	}
	m.set = set
	idx := m.levelIdx
	if idx >= len(set.Levels) {
		idx = 0
	}
	m.loadLevel(idx)
	m.status = "levels reloaded"
	return m, nil
}

// startSolve launches the solver in the background.
func (m PlayModel) startSolve() (tea.Model, tea.Cmd) {
	if m.state.IsSolved() {
		return m, nil
	}

	start := m.state.Copy()
	opts := game.SolveOptions{
		Aggressive: m.cfg.Solver.Aggressive,
		MaxNodes:   m.cfg.Solver.MaxNodes,
	}
	timeout := time.Duration(m.cfg.Solver.TimeoutSeconds) * time.Second

	m.solving = true
	m.status = "solving..."

	return m, func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		plan, stats, found, err := game.Solve(ctx, start, opts)
		return solveDoneMsg{plan: plan, stats: stats, found: found, err: err}
	}
}

// handleSolveDone starts playback of a found plan.
func (m PlayModel) handleSolveDone(msg solveDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.solving = false
		m.status = "solver timed out"
		return m, nil
	}
	if !msg.found {
		m.solving = false
		m.status = "no solution found"
		return m, nil
	}
	if len(msg.plan) == 0 {
		m.solving = false
		m.checkSolved()
		return m, nil
	}

	m.plan = msg.plan
	m.planPos = 0
	m.status = fmt.Sprintf("solution: %d moves, %d nodes expanded", len(msg.plan), msg.stats.Expanded)
	return m, stepCmd(m.stepDelay())
}

// handleStep applies the next planned move.
func (m PlayModel) handleStep() (tea.Model, tea.Cmd) {
	if !m.solving || m.planPos >= len(m.plan) {
		m.solving = false
		return m, nil
	}

	mv := m.plan[m.planPos]
	m.planPos++
	if m.state.CanMove(mv) {
		m.state.Move(mv)
	}

	if m.planPos >= len(m.plan) {
		m.solving = false
		m.checkSolved()
		return m, nil
	}
	return m, stepCmd(m.stepDelay())
}

func (m PlayModel) stepDelay() time.Duration {
	ms := m.cfg.Solver.AnimationMS
	if ms <= 0 {
		ms = 120
	}
	return time.Duration(ms) * time.Millisecond
}

// View renders the play screen.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	name := m.set.LevelName(m.levelIdx)
	title := fmt.Sprintf("%s - %s (%d/%d)", m.set.Name, name, m.levelIdx+1, len(m.set.Levels))
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	info := fmt.Sprintf("moves: %d", m.state.MoveCount())
	if m.store != nil {
		if best, ok, err := m.store.BestMoves(m.set.ID, m.levelIdx); err == nil && ok {
			info += fmt.Sprintf("  best: %d", best)
		}
	}
	b.WriteString(infoStyle.Render(info))
	b.WriteString("\n\n")

	b.WriteString(RenderBoard(m.state, m.styles, m.overlay))
	b.WriteString("\n\n")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("71"))
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Run starts the Bubble Tea program with the given play model.
func Run(set levels.Set, loader *levels.Loader, store *storage.Store, cfg config.Config, levelIdx int) error {
	model := NewPlayModel(set, loader, store, cfg, levelIdx)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
