package game

import "testing"

func TestMoveInv(t *testing.T) {
	tests := []struct {
		name string
		m    Move
		want Move
	}{
		{"right", Move{DR: 0, DC: 1}, Move{DR: 0, DC: -1}},
		{"up push", Move{DR: -1, DC: 0, Push: true}, Move{DR: 1, DC: 0, Push: true}},
		{"down", Move{DR: 1, DC: 0}, Move{DR: -1, DC: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.Inv(); got != tc.want {
				t.Errorf("Inv() = %v, want %v", got, tc.want)
			}
			// Inverting twice must give back the original.
			if got := tc.m.Inv().Inv(); got != tc.m {
				t.Errorf("Inv().Inv() = %v, want %v", got, tc.m)
			}
		})
	}
}

func TestPosAddDist(t *testing.T) {
	p := Pos{R: 2, C: 3}
	if got := p.Add(Move{DR: -1, DC: 1}); got != (Pos{R: 1, C: 4}) {
		t.Errorf("Add() = %v, want {1 4}", got)
	}
	if got := p.Dist(Pos{R: 5, C: 1}); got != 5 {
		t.Errorf("Dist() = %d, want 5", got)
	}
	if got := p.Dist(p); got != 0 {
		t.Errorf("Dist(self) = %d, want 0", got)
	}
}

func TestPosLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Pos
		want bool
	}{
		{"smaller row", Pos{1, 5}, Pos{2, 0}, true},
		{"same row smaller col", Pos{1, 2}, Pos{1, 3}, true},
		{"equal", Pos{1, 2}, Pos{1, 2}, false},
		{"larger row", Pos{3, 0}, Pos{2, 9}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Less(tc.b); got != tc.want {
				t.Errorf("%v.Less(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	path := []Move{
		{DR: 0, DC: 1},
		{DR: 0, DC: 1, Push: true},
		{DR: -1, DC: 0},
		{DR: 1, DC: 0, Push: true},
		{DR: 0, DC: -1},
	}
	if got := PathString(path); got != "rRuDl" {
		t.Errorf("PathString() = %q, want %q", got, "rRuDl")
	}
	if got := PathString(nil); got != "" {
		t.Errorf("PathString(nil) = %q, want empty", got)
	}
}
