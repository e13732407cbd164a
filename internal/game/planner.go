package game

import "container/heap"

// pushNode is one entry in the push planner's frontier: a candidate box
// position, the player position that goes with it, and the moves
// accumulated so far.
type pushNode struct {
	prio   int // len(path) + Manhattan distance from box to goal
	seq    int // insertion order, breaks priority ties deterministically
	box    Pos
	player Pos
	path   []Move
}

type pushQueue []*pushNode

func (q pushQueue) Len() int { return len(q) }
func (q pushQueue) Less(i, j int) bool {
	if q[i].prio != q[j].prio {
		return q[i].prio < q[j].prio
	}
	return q[i].seq < q[j].seq
}
func (q pushQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *pushQueue) Push(x any)   { *q = append(*q, x.(*pushNode)) }
func (q *pushQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}

// PlanPush plans how to push the box at start to the goal cell without
// disturbing any other box: the returned sequence interleaves the
// player's repositioning walks with the pushes themselves. Cells in the
// level's deadend set are never pushed onto.
//
// The search is best-first over (box, player) pairs, ordered by moves
// so far plus the box's Manhattan distance to the goal. The heuristic
// ignores the cost of walking around the box between pushes, so the
// result is a valid plan but not necessarily the shortest one.
//
// Reports false when no plan exists.
func PlanPush(s *State, start, goal Pos) ([]Move, bool) {
	deadends := s.level.Deadends()

	queue := &pushQueue{{prio: start.Dist(goal), box: start, player: s.player}}
	heap.Init(queue)
	seq := 0
	type key struct{ box, player Pos }
	visited := make(map[key]bool)

	for queue.Len() > 0 {
		n := heap.Pop(queue).(*pushNode)
		if n.box == goal {
			if n.path == nil {
				return []Move{}, true
			}
			return n.path, true
		}
		k := key{box: n.box, player: n.player}
		if visited[k] {
			continue
		}
		visited[k] = true

		// Rebuild the node's world: the planned box has moved from
		// start to n.box, every other box stays put.
		world := &State{level: s.level, boxes: make(map[Pos]bool, len(s.boxes)), player: n.player}
		for p := range s.boxes {
			if p != start {
				world.boxes[p] = true
			}
		}
		world.boxes[n.box] = true

		for _, m := range PushMoves {
			next := n.box.Add(m)
			if !world.IsFree(next) || deadends[next] {
				continue
			}
			// The player must reach the cell behind the box.
			walk, ok := FindPath(world, n.box.Add(m.Inv()))
			if !ok {
				continue
			}
			path := make([]Move, 0, len(n.path)+len(walk)+1)
			path = append(path, n.path...)
			path = append(path, walk...)
			path = append(path, m)
			seq++
			heap.Push(queue, &pushNode{
				prio:   len(path) + next.Dist(goal),
				seq:    seq,
				box:    next,
				player: n.box, // the cell the box just vacated
				path:   path,
			})
		}
	}
	return nil, false
}
