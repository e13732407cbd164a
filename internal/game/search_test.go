package game

import "testing"

func TestReachable(t *testing.T) {
	s := mustLevel(t, []string{
		"#######",
		"#@  # #",
		"# $ # #",
		"#######",
	}).InitialState()

	r := Reachable(s)
	// The 2x3 room minus the box cell; the pocket right of the inner
	// wall is cut off.
	want := []Pos{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 3}}
	if len(r) != len(want) {
		t.Fatalf("Reachable() returned %d cells, want %d: %v", len(r), len(want), r)
	}
	for _, p := range want {
		if !r[p] {
			t.Errorf("Reachable() missing %v", p)
		}
	}
	if r[Pos{R: 2, C: 2}] {
		t.Error("Reachable() contains the box cell")
	}
	if r[Pos{R: 1, C: 5}] {
		t.Error("Reachable() crossed a wall into the pocket")
	}
}

func TestFindPathManhattan(t *testing.T) {
	// On an obstacle-free floor the shortest path length equals the
	// Manhattan distance.
	s := mustLevel(t, []string{
		"########",
		"#@     #",
		"#      #",
		"#      #",
		"########",
	}).InitialState()

	goal := Pos{R: 3, C: 6}
	path, ok := FindPath(s, goal)
	if !ok {
		t.Fatal("FindPath() found no path on open floor")
	}
	if want := s.Player().Dist(goal); len(path) != want {
		t.Errorf("path length = %d, want %d", len(path), want)
	}
	// Replaying must land on the goal.
	p := s.Player()
	for _, m := range path {
		if m.Push {
			t.Errorf("walking path contains a push: %v", m)
		}
		p = p.Add(m)
	}
	if p != goal {
		t.Errorf("path ends at %v, want %v", p, goal)
	}
}

func TestFindPathDeterministic(t *testing.T) {
	s := mustLevel(t, []string{
		"######",
		"#@   #",
		"#    #",
		"######",
	}).InitialState()

	first, ok := FindPath(s, Pos{R: 2, C: 3})
	if !ok {
		t.Fatal("FindPath() failed")
	}
	for i := 0; i < 10; i++ {
		again, ok := FindPath(s, Pos{R: 2, C: 3})
		if !ok {
			t.Fatal("FindPath() failed on repeat")
		}
		if PathString(again) != PathString(first) {
			t.Fatalf("path changed between runs: %q vs %q", PathString(again), PathString(first))
		}
	}
}

func TestFindPathEdgeCases(t *testing.T) {
	layout := []string{
		"######",
		"#@$ ##",
		"# ####",
		"######",
	}

	t.Run("already at goal", func(t *testing.T) {
		s := mustLevel(t, layout).InitialState()
		path, ok := FindPath(s, s.Player())
		if !ok {
			t.Fatal("FindPath() to own cell failed")
		}
		if len(path) != 0 {
			t.Errorf("path length = %d, want 0", len(path))
		}
	})

	t.Run("goal occupied by box", func(t *testing.T) {
		s := mustLevel(t, layout).InitialState()
		if _, ok := FindPath(s, Pos{R: 1, C: 2}); ok {
			t.Error("FindPath() into a box succeeded")
		}
	})

	t.Run("goal is wall", func(t *testing.T) {
		s := mustLevel(t, layout).InitialState()
		if _, ok := FindPath(s, Pos{R: 0, C: 0}); ok {
			t.Error("FindPath() into a wall succeeded")
		}
	})

	t.Run("goal unreachable", func(t *testing.T) {
		// The box blocks the only corridor to (1, 3).
		s := mustLevel(t, layout).InitialState()
		if _, ok := FindPath(s, Pos{R: 1, C: 3}); ok {
			t.Error("FindPath() through a box succeeded")
		}
	})
}

func TestFindDeadendsOpenRoom(t *testing.T) {
	// Goals in all four corners: every floor cell can still be pushed
	// toward some goal, so there are no deadends.
	l := mustLevel(t, []string{
		"#######",
		"#*   *#",
		"#     #",
		"#* @ *#",
		"#######",
	})
	if d := l.Deadends(); len(d) != 0 {
		t.Errorf("Deadends() = %v, want empty", sortedKeys(d))
	}
}

func TestFindDeadendsCorners(t *testing.T) {
	// A single central goal: the corners (and the wall-hugging rim
	// leading only into them) cannot be pushed out of.
	l := mustLevel(t, []string{
		"#####",
		"# @ #",
		"# . #",
		"# $ #",
		"#####",
	})
	d := l.Deadends()
	for _, corner := range []Pos{{1, 1}, {1, 3}, {3, 1}, {3, 3}} {
		if !d[corner] {
			t.Errorf("corner %v not detected as deadend", corner)
		}
	}
	if d[Pos{R: 2, C: 2}] {
		t.Error("goal cell marked as deadend")
	}
}

func TestFindDeadendsIdempotent(t *testing.T) {
	l := mustLevel(t, []string{
		"######",
		"#@$ .#",
		"#    #",
		"######",
	})
	first := FindDeadends(l)
	second := FindDeadends(l)
	if len(first) != len(second) {
		t.Fatalf("deadend set size changed: %d vs %d", len(first), len(second))
	}
	for p := range first {
		if !second[p] {
			t.Errorf("second run missing %v", p)
		}
	}

	// The lazy cache returns the same set as well.
	cached := l.Deadends()
	if len(cached) != len(first) {
		t.Errorf("cached set size = %d, want %d", len(cached), len(first))
	}
}

func TestDeadendCacheReset(t *testing.T) {
	l := mustLevel(t, []string{
		"######",
		"#@$ .#",
		"#    #",
		"######",
	})
	before := len(l.Deadends())
	l.ResetDeadends()
	after := len(l.Deadends())
	if before != after {
		t.Errorf("deadend count changed across reset: %d vs %d", before, after)
	}
}
