package game

import (
	"container/heap"
	"context"
	"sort"
	"strconv"
	"strings"
)

// SolveOptions tunes the whole-level solver.
type SolveOptions struct {
	// Aggressive switches the state fingerprint from the player's exact
	// position to the minimum cell of the player's reachable region.
	// This merges many more equivalent states and is much faster on
	// some levels, but can occasionally discard the ordering a level
	// actually needs, so it trades completeness for speed.
	Aggressive bool

	// MaxNodes caps the number of expanded states; 0 means no cap.
	// When the cap is hit the solver gives up as "no solution found".
	MaxNodes int

	// Progress, if set, is called every progressInterval expansions
	// with the current search counters.
	Progress func(SolveStats)
}

// SolveStats are search counters reported through the progress hook and
// returned alongside the result.
type SolveStats struct {
	Expanded int // states popped from the frontier
	Frontier int // states currently queued
	Seen     int // distinct fingerprints recorded
}

const progressInterval = 64

type solveNode struct {
	prio  int // accumulated move count
	seq   int
	state *State
	path  []Move
}

type solveQueue []*solveNode

func (q solveQueue) Len() int { return len(q) }
func (q solveQueue) Less(i, j int) bool {
	if q[i].prio != q[j].prio {
		return q[i].prio < q[j].prio
	}
	return q[i].seq < q[j].seq
}
func (q solveQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *solveQueue) Push(x any)   { *q = append(*q, x.(*solveNode)) }
func (q *solveQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}

// fingerprint reduces a state to a comparable key: the sorted box set
// plus a canonical player cell. Two states with the same boxes and the
// player inside the same reachable region are interchangeable, since
// the player can walk anywhere in the region without side effects.
func fingerprint(s *State, aggressive bool) string {
	boxes := make([]Pos, 0, len(s.boxes))
	for p := range s.boxes {
		boxes = append(boxes, p)
	}
	sort.Slice(boxes, func(i, j int) bool { return boxes[i].Less(boxes[j]) })

	anchor := s.player
	if aggressive {
		first := true
		for p := range Reachable(s) {
			if first || p.Less(anchor) {
				anchor = p
				first = false
			}
		}
	}

	var sb strings.Builder
	for _, p := range boxes {
		sb.WriteString(strconv.Itoa(p.R))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.C))
		sb.WriteByte(';')
	}
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(anchor.R))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(anchor.C))
	return sb.String()
}

// solvable reports whether no box sits on a deadend cell. A state may
// still be unsolvable when this returns true; the deadend set is only
// an approximation.
func solvable(s *State) bool {
	for p := range s.boxes {
		if s.level.Deadends()[p] {
			return false
		}
	}
	return true
}

// Solve searches for a move sequence that brings the state to a solved
// configuration, repeatedly picking a box and a neighboring target cell
// and delegating to PlanPush. States are deduplicated by fingerprint
// and pruned when a box sits on a deadend cell.
//
// The input state is not modified; all exploration happens on copies.
// Reports found=false when the search space is exhausted (or MaxNodes
// is hit) without reaching a solved state; because deadend pruning is
// approximate, that means "no solution within the algorithm's reach",
// not a proof of unsolvability. The context cancels a long search, in
// which case the context's error is returned.
func Solve(ctx context.Context, s *State, opts SolveOptions) (path []Move, stats SolveStats, found bool, err error) {
	seen := make(map[string]bool)
	queue := &solveQueue{{state: s.Copy()}}
	heap.Init(queue)
	seq := 0

	for queue.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, stats, false, err
		}
		n := heap.Pop(queue).(*solveNode)

		f := fingerprint(n.state, opts.Aggressive)
		if seen[f] {
			continue
		}
		seen[f] = true

		if !solvable(n.state) {
			continue
		}

		if n.state.IsSolved() {
			if n.path == nil {
				n.path = []Move{}
			}
			stats.Frontier = queue.Len()
			stats.Seen = len(seen)
			return n.path, stats, true, nil
		}

		stats.Expanded++
		if opts.MaxNodes > 0 && stats.Expanded > opts.MaxNodes {
			break
		}
		if opts.Progress != nil && stats.Expanded%progressInterval == 0 {
			stats.Frontier = queue.Len()
			stats.Seen = len(seen)
			opts.Progress(stats)
		}

		for _, box := range n.state.Boxes() {
			for _, m := range Moves {
				target := box.Add(m)
				if !n.state.IsFree(target) || n.state.level.Deadends()[target] {
					continue
				}
				plan, ok := PlanPush(n.state, box, target)
				if !ok {
					continue
				}
				next := n.state.Copy()
				for _, pm := range plan {
					next.Move(pm)
				}
				full := make([]Move, 0, len(n.path)+len(plan))
				full = append(full, n.path...)
				full = append(full, plan...)
				seq++
				heap.Push(queue, &solveNode{prio: len(full), seq: seq, state: next, path: full})
			}
		}
	}

	stats.Frontier = queue.Len()
	stats.Seen = len(seen)
	return nil, stats, false, nil
}
