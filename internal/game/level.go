package game

import "fmt"

// Level is an immutable wall/goal layout plus the initial box and
// player placement. States derived from a level share it by reference
// and never modify it, with one exception: the deadend cache, which
// starts empty and is filled on demand.
type Level struct {
	walls map[Pos]bool
	goals map[Pos]bool
	size  Pos // rows, cols; derived from the wall extent

	initBoxes  map[Pos]bool
	initPlayer Pos

	deadends map[Pos]bool // nil until computed
}

// NewLevel builds a level from its wall, goal and box sets and the
// player's starting position. It validates the layout and fails fast on
// inconsistencies instead of producing a level with undefined state.
func NewLevel(walls, goals, boxes []Pos, player Pos) (*Level, error) {
	if len(walls) == 0 {
		return nil, fmt.Errorf("level: no walls")
	}

	l := &Level{
		walls:     make(map[Pos]bool, len(walls)),
		goals:     make(map[Pos]bool, len(goals)),
		initBoxes: make(map[Pos]bool, len(boxes)),
	}
	for _, p := range walls {
		l.walls[p] = true
		if p.R >= l.size.R {
			l.size.R = p.R + 1
		}
		if p.C >= l.size.C {
			l.size.C = p.C + 1
		}
	}
	if l.walls[player] {
		return nil, fmt.Errorf("level: player starts inside a wall at %v", player)
	}
	l.initPlayer = player
	for _, p := range goals {
		l.goals[p] = true
	}
	for _, p := range boxes {
		if l.walls[p] {
			return nil, fmt.Errorf("level: box inside a wall at %v", p)
		}
		if p == player {
			return nil, fmt.Errorf("level: box on player start at %v", p)
		}
		l.initBoxes[p] = true
	}
	if len(l.initBoxes) < len(l.goals) {
		return nil, fmt.Errorf("level: %d goals but only %d boxes", len(l.goals), len(l.initBoxes))
	}
	return l, nil
}

// Size returns the grid extent as (rows, cols).
func (l *Level) Size() Pos {
	return l.size
}

// IsWall reports whether the given cell is a wall.
func (l *Level) IsWall(p Pos) bool {
	return l.walls[p]
}

// IsGoal reports whether the given cell is a goal.
func (l *Level) IsGoal(p Pos) bool {
	return l.goals[p]
}

// Goals returns the goal cells in deterministic order.
func (l *Level) Goals() []Pos {
	return sortedKeys(l.goals)
}

// Walls returns the wall cells in deterministic order.
func (l *Level) Walls() []Pos {
	return sortedKeys(l.walls)
}

// InitialState creates a fresh state at the level's starting layout.
func (l *Level) InitialState() *State {
	boxes := make(map[Pos]bool, len(l.initBoxes))
	for p := range l.initBoxes {
		boxes[p] = true
	}
	return &State{level: l, boxes: boxes, player: l.initPlayer}
}

// Deadends returns the level's deadend cells, computing and caching
// them on first use. The set is static per level: it does not depend on
// where the boxes currently are, so blocked arrangements caused by
// box-to-box interaction are not detected.
func (l *Level) Deadends() map[Pos]bool {
	if l.deadends == nil {
		l.deadends = FindDeadends(l)
	}
	return l.deadends
}

// IsDeadend reports whether a box placed on the cell could never be
// pushed toward a goal again. Computes the deadend cache if needed.
func (l *Level) IsDeadend(p Pos) bool {
	return l.Deadends()[p]
}

// ResetDeadends drops the cached deadend set so the next access
// recomputes it.
func (l *Level) ResetDeadends() {
	l.deadends = nil
}

// contains bounds the searches to the wall extent so flood fills stay
// finite even on layouts that are not fully enclosed.
func (l *Level) contains(p Pos) bool {
	return p.R >= 0 && p.R < l.size.R && p.C >= 0 && p.C < l.size.C
}
