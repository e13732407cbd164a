package game

import "sort"

// State holds the mutable part of a game in progress: the box
// positions, the player position, and the undo/redo history of applied
// moves. The level itself is shared and read-only.
//
// History and the redo stack are coupled: a fresh move clears the redo
// stack, an undo pushes onto it, and a redo replays without clearing
// it, so repeated redos keep walking forward.
type State struct {
	level    *Level
	boxes    map[Pos]bool
	player   Pos
	history  []Move
	redoable []Move
}

// Level returns the level this state plays on.
func (s *State) Level() *Level {
	return s.level
}

// Player returns the player's current position.
func (s *State) Player() Pos {
	return s.player
}

// Boxes returns the current box positions in deterministic order.
func (s *State) Boxes() []Pos {
	return sortedKeys(s.boxes)
}

// HasBox reports whether a box currently occupies the cell.
func (s *State) HasBox(p Pos) bool {
	return s.boxes[p]
}

// History returns a copy of the moves applied so far. Its length is the
// move count used for scoring.
func (s *State) History() []Move {
	out := make([]Move, len(s.history))
	copy(out, s.history)
	return out
}

// MoveCount returns the number of moves applied so far.
func (s *State) MoveCount() int {
	return len(s.history)
}

// Copy creates an independent snapshot of the state, e.g. for a
// savestate or for speculative search. The level is shared; boxes and
// history are copied. The redo stack starts out empty.
func (s *State) Copy() *State {
	boxes := make(map[Pos]bool, len(s.boxes))
	for p := range s.boxes {
		boxes[p] = true
	}
	history := make([]Move, len(s.history))
	copy(history, s.history)
	return &State{level: s.level, boxes: boxes, player: s.player, history: history}
}

// IsFree reports whether the cell is neither a wall nor occupied by a
// box. The player's own cell counts as free.
func (s *State) IsFree(p Pos) bool {
	return !s.level.walls[p] && !s.boxes[p]
}

// CanMove reports whether the player may step in the move's direction,
// with or without being allowed to push a box.
func (s *State) CanMove(m Move) bool {
	next := s.player.Add(m)
	if s.IsFree(next) {
		return true
	}
	return m.Push && s.boxes[next] && s.IsFree(next.Add(m))
}

// Move steps the player in the move's direction if legal, pushing a box
// out of the way when one is there and the move permits it. The
// recorded history entry carries the push flag of what actually
// happened, not what was requested. Returns false, leaving the state
// untouched, if the move is illegal.
func (s *State) Move(m Move) bool {
	return s.apply(m, true)
}

func (s *State) apply(m Move, clearRedo bool) bool {
	if !s.CanMove(m) {
		return false
	}
	s.player = s.player.Add(m)
	pushed := s.boxes[s.player]
	if pushed {
		delete(s.boxes, s.player)
		s.boxes[s.player.Add(m)] = true
	}
	s.history = append(s.history, Move{DR: m.DR, DC: m.DC, Push: pushed})
	if clearRedo {
		s.redoable = nil
	}
	return true
}

// Undo reverts the last move, pulling the box back with the player if
// the move was a push, and makes it redoable. Reports false if there is
// nothing to undo.
func (s *State) Undo() (Move, bool) {
	if len(s.history) == 0 {
		return Move{}, false
	}
	m := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	if m.Push {
		delete(s.boxes, s.player.Add(m))
		s.boxes[s.player] = true
	}
	s.player = s.player.Add(m.Inv())
	s.redoable = append(s.redoable, m)
	return m, true
}

// Redo replays the most recently undone move, if any. Unlike a fresh
// move it keeps the rest of the redo stack, so calling Redo again
// continues further forward.
func (s *State) Redo() bool {
	if len(s.redoable) == 0 {
		return false
	}
	m := s.redoable[len(s.redoable)-1]
	s.redoable = s.redoable[:len(s.redoable)-1]
	return s.apply(m, false)
}

// IsSolved reports whether every goal cell is covered by a box.
func (s *State) IsSolved() bool {
	for g := range s.level.goals {
		if !s.boxes[g] {
			return false
		}
	}
	return true
}

func sortedKeys(set map[Pos]bool) []Pos {
	out := make([]Pos, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
