// Package game provides the Sokoban game model and the planning
// algorithms built on it: reachability and path search, deadend
// detection, single-box push planning, and a whole-level solver.
// It contains no external dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package game

import "strings"

// Pos is a cell position on the grid, row first.
type Pos struct {
	R, C int
}

// Add returns the position reached by applying the move's deltas.
func (p Pos) Add(m Move) Pos {
	return Pos{R: p.R + m.DR, C: p.C + m.DC}
}

// Dist returns the Manhattan distance to another position.
func (p Pos) Dist(q Pos) int {
	return abs(p.R-q.R) + abs(p.C-q.C)
}

// Less orders positions by row, then column.
func (p Pos) Less(q Pos) bool {
	if p.R != q.R {
		return p.R < q.R
	}
	return p.C < q.C
}

// Move is a single step of the player: a row/column delta plus a flag
// telling whether pushing a box is permitted (when requested) or
// happened (when recorded in history).
type Move struct {
	DR, DC int
	Push   bool
}

// Inv returns the move with negated deltas, keeping the push flag.
func (m Move) Inv() Move {
	return Move{DR: -m.DR, DC: -m.DC, Push: m.Push}
}

// Moves lists the four plain directions in canonical order: right,
// left, up, down. Every search expands neighbors in this order so that
// results are deterministic.
var Moves = [4]Move{
	{DR: 0, DC: +1},
	{DR: 0, DC: -1},
	{DR: -1, DC: 0},
	{DR: +1, DC: 0},
}

// PushMoves lists the same four directions with pushing permitted.
var PushMoves = [4]Move{
	{DR: 0, DC: +1, Push: true},
	{DR: 0, DC: -1, Push: true},
	{DR: -1, DC: 0, Push: true},
	{DR: +1, DC: 0, Push: true},
}

// Letter returns the conventional single-letter notation for the move:
// uppercase RLUD for pushes, lowercase rlud for plain steps.
func (m Move) Letter() byte {
	var b byte
	switch {
	case m.DC > 0:
		b = 'r'
	case m.DC < 0:
		b = 'l'
	case m.DR < 0:
		b = 'u'
	default:
		b = 'd'
	}
	if m.Push {
		b -= 'a' - 'A'
	}
	return b
}

// PathString renders a move sequence in RLUD/rlud notation.
func PathString(path []Move) string {
	var sb strings.Builder
	sb.Grow(len(path))
	for _, m := range path {
		sb.WriteByte(m.Letter())
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
