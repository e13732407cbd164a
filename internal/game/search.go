package game

// Reachable flood-fills from the player's position and returns every
// free cell the player can reach without pushing any box.
func Reachable(s *State) map[Pos]bool {
	seen := make(map[Pos]bool)
	queue := []Pos{s.player}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if seen[p] {
			continue
		}
		seen[p] = true
		for _, m := range Moves {
			if next := p.Add(m); s.level.contains(next) && s.IsFree(next) && !seen[next] {
				queue = append(queue, next)
			}
		}
	}
	return seen
}

// FindPath searches for a shortest walking path from the player to the
// goal cell, through free cells only (no pushing). It returns an empty
// path when the player already stands on the goal, and reports false
// when the goal is a wall, occupied, or unreachable. Neighbors expand
// in the canonical direction order, so among equally short paths the
// same one is always returned.
func FindPath(s *State, goal Pos) ([]Move, bool) {
	if !s.IsFree(goal) {
		return nil, false
	}
	if s.player == goal {
		return []Move{}, true
	}

	type node struct {
		pos  Pos
		path []Move
	}
	queue := []node{{pos: s.player}}
	visited := map[Pos]bool{s.player: true}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.pos == goal {
			return n.path, true
		}
		for _, m := range Moves {
			next := n.pos.Add(m)
			if !s.level.contains(next) || !s.IsFree(next) || visited[next] {
				continue
			}
			visited[next] = true
			path := make([]Move, len(n.path), len(n.path)+1)
			copy(path, n.path)
			queue = append(queue, node{pos: next, path: append(path, m)})
		}
	}
	return nil, false
}

// FindDeadends approximates the cells a box must never be pushed onto:
// once there, it could not be pushed toward any goal again. The
// computation is a two-phase reverse flood fill from the goals.
//
// Phase one collects all non-wall cells connected to a goal, i.e. every
// cell a box could in principle occupy on its way to a goal. Phase two
// repeats the fill but only steps onto a neighbor when the cell one
// further in the same direction is also clear of walls, leaving room
// for the player to stand behind the box and push. The difference of
// the two sets is the deadend area.
//
// The result is conservative: it ignores the current box arrangement,
// so deadlocks caused by boxes blocking each other are not found.
func FindDeadends(l *Level) map[Pos]bool {
	goals := l.Goals()

	floor := make(map[Pos]bool)
	queue := append([]Pos(nil), goals...)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if floor[p] {
			continue
		}
		floor[p] = true
		for _, m := range Moves {
			if next := p.Add(m); l.contains(next) && !l.walls[next] && !floor[next] {
				queue = append(queue, next)
			}
		}
	}

	pushable := make(map[Pos]bool)
	queue = append(queue[:0], goals...)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if pushable[p] {
			continue
		}
		pushable[p] = true
		for _, m := range Moves {
			next := p.Add(m)
			if l.contains(next) && !l.walls[next] && !l.walls[next.Add(m)] && !pushable[next] {
				queue = append(queue, next)
			}
		}
	}

	deadends := make(map[Pos]bool)
	for p := range floor {
		if !pushable[p] {
			deadends[p] = true
		}
	}
	return deadends
}
