package game

import (
	"context"
	"testing"
)

func TestSolveSinglePush(t *testing.T) {
	// The box is adjacent and aligned with the goal: one push solves it.
	s := mustLevel(t, []string{
		"#####",
		"#@$.#",
		"#####",
	}).InitialState()

	path, _, found, err := Solve(context.Background(), s, SolveOptions{})
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if !found {
		t.Fatal("Solve() found no solution")
	}
	if len(path) != 1 {
		t.Fatalf("solution length = %d, want 1 (%q)", len(path), PathString(path))
	}
	if !path[0].Push {
		t.Error("single solving move is not a push")
	}
	// The input state must be untouched.
	if s.MoveCount() != 0 || !s.HasBox(Pos{R: 1, C: 2}) {
		t.Error("Solve() mutated its input state")
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	s := mustLevel(t, []string{
		"#####",
		"#@ *#",
		"#####",
	}).InitialState()

	path, _, found, err := Solve(context.Background(), s, SolveOptions{})
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if !found {
		t.Fatal("Solve() missed the already-solved state")
	}
	if len(path) != 0 {
		t.Errorf("solution length = %d, want 0", len(path))
	}
}

func TestSolveTwoBoxes(t *testing.T) {
	s := mustLevel(t, []string{
		"#######",
		"#     #",
		"# $$  #",
		"# ..  #",
		"#@    #",
		"#######",
	}).InitialState()

	path, _, found, err := Solve(context.Background(), s, SolveOptions{})
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if !found {
		t.Fatal("Solve() found no solution")
	}
	end := replay(t, s, path)
	if !end.IsSolved() {
		t.Errorf("replaying %q does not solve the level", PathString(path))
	}
}

func TestSolveCorneredBox(t *testing.T) {
	// The only box starts wedged in a corner with the goal elsewhere:
	// structurally unpushable, the solver must give up cleanly.
	s := mustLevel(t, []string{
		"#####",
		"#$  #",
		"# @ #",
		"# . #",
		"#####",
	}).InitialState()

	path, stats, found, err := Solve(context.Background(), s, SolveOptions{})
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if found {
		t.Fatalf("Solve() = %q, want no solution", PathString(path))
	}
	// The deadend prune fires on the initial state, so nothing should
	// have been expanded.
	if stats.Expanded != 0 {
		t.Errorf("expanded %d states, want 0", stats.Expanded)
	}
}

func TestSolveAggressiveFingerprint(t *testing.T) {
	s := mustLevel(t, []string{
		"#######",
		"#     #",
		"# $ . #",
		"#@    #",
		"#######",
	}).InitialState()

	path, _, found, err := Solve(context.Background(), s, SolveOptions{Aggressive: true})
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if !found {
		t.Fatal("Solve() with aggressive fingerprinting found no solution")
	}
	end := replay(t, s, path)
	if !end.IsSolved() {
		t.Errorf("replaying %q does not solve the level", PathString(path))
	}
}

func TestSolveCancellation(t *testing.T) {
	s := mustLevel(t, []string{
		"#######",
		"#     #",
		"# $ . #",
		"#@    #",
		"#######",
	}).InitialState()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, _, err := Solve(ctx, s, SolveOptions{})
	if err == nil {
		t.Fatal("Solve() with cancelled context returned no error")
	}
}

func TestSolveMaxNodes(t *testing.T) {
	s := mustLevel(t, []string{
		"########",
		"#      #",
		"# $  $ #",
		"# .  . #",
		"#@     #",
		"########",
	}).InitialState()

	_, _, found, err := Solve(context.Background(), s, SolveOptions{MaxNodes: 1})
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if found {
		t.Error("Solve() with a one-node budget claimed success")
	}
}

func TestSolveProgressHook(t *testing.T) {
	s := mustLevel(t, []string{
		"#########",
		"#       #",
		"# $ $ $ #",
		"# . . . #",
		"#@      #",
		"#########",
	}).InitialState()

	calls := 0
	_, _, found, err := Solve(context.Background(), s, SolveOptions{
		Progress: func(st SolveStats) {
			calls++
			if st.Expanded == 0 {
				t.Error("progress hook called with zero expansions")
			}
		},
	})
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if !found {
		t.Fatal("Solve() found no solution")
	}
	// Three boxes give the search enough work for at least one report.
	if calls == 0 {
		t.Skip("search finished before the first progress interval")
	}
}
