package game

import "testing"

// replay applies a plan to a fresh copy of the state, failing the test
// if any step is illegal.
func replay(t *testing.T, s *State, plan []Move) *State {
	t.Helper()
	c := s.Copy()
	for i, m := range plan {
		if !c.CanMove(m) {
			t.Fatalf("step %d (%c) illegal during replay of %q", i, m.Letter(), PathString(plan))
		}
		c.Move(m)
	}
	return c
}

func TestPlanPushStraightLine(t *testing.T) {
	s := mustLevel(t, []string{
		"#######",
		"#@$  .#",
		"#######",
	}).InitialState()

	goal := Pos{R: 1, C: 5}
	plan, ok := PlanPush(s, Pos{R: 1, C: 2}, goal)
	if !ok {
		t.Fatal("PlanPush() found no plan")
	}
	end := replay(t, s, plan)
	if !end.HasBox(goal) {
		t.Errorf("box not at goal after replay, boxes = %v", end.Boxes())
	}
	// Three straight pushes, no repositioning needed.
	if len(plan) != 3 {
		t.Errorf("plan length = %d, want 3", len(plan))
	}
	if !plan[len(plan)-1].Push {
		t.Error("final move is not a push")
	}
}

func TestPlanPushWithRepositioning(t *testing.T) {
	// The box has to go right and then down, so the player must walk
	// around it between the two pushes.
	s := mustLevel(t, []string{
		"######",
		"#    #",
		"# $  #",
		"#@ . #",
		"######",
	}).InitialState()

	start := Pos{R: 2, C: 2}
	goal := Pos{R: 3, C: 3}
	plan, ok := PlanPush(s, start, goal)
	if !ok {
		t.Fatal("PlanPush() found no plan")
	}
	end := replay(t, s, plan)
	if !end.HasBox(goal) {
		t.Errorf("box not at goal after replay, boxes = %v", end.Boxes())
	}
	pushes := 0
	for _, m := range plan {
		if m.Push {
			pushes++
		}
	}
	if pushes < 2 {
		t.Errorf("plan has %d pushes, want at least 2", pushes)
	}
}

func TestPlanPushAvoidsOtherBoxes(t *testing.T) {
	// A second box blocks the straight lane; the plan must route the
	// first box around it and leave it untouched.
	s := mustLevel(t, []string{
		"########",
		"#      #",
		"#@$$   #",
		"#    . #",
		"#      #",
		"########",
	}).InitialState()

	blocker := Pos{R: 2, C: 3}
	goal := Pos{R: 3, C: 5}
	plan, ok := PlanPush(s, Pos{R: 2, C: 2}, goal)
	if !ok {
		t.Fatal("PlanPush() found no plan")
	}
	end := replay(t, s, plan)
	if !end.HasBox(goal) {
		t.Errorf("box not at goal, boxes = %v", end.Boxes())
	}
	if !end.HasBox(blocker) {
		t.Errorf("other box was disturbed, boxes = %v", end.Boxes())
	}
}

func TestPlanPushNoPlan(t *testing.T) {
	// The player can never get behind the box: there is no cell to
	// push it from toward the goal.
	s := mustLevel(t, []string{
		"#####",
		"#@$##",
		"# .##",
		"#####",
	}).InitialState()

	if plan, ok := PlanPush(s, Pos{R: 1, C: 2}, Pos{R: 2, C: 2}); ok {
		t.Errorf("PlanPush() = %q, want no plan", PathString(plan))
	}
}

func TestPlanPushStartIsGoal(t *testing.T) {
	s := mustLevel(t, []string{
		"#####",
		"#@$.#",
		"#####",
	}).InitialState()

	plan, ok := PlanPush(s, Pos{R: 1, C: 2}, Pos{R: 1, C: 2})
	if !ok {
		t.Fatal("PlanPush() to the box's own cell failed")
	}
	if len(plan) != 0 {
		t.Errorf("plan length = %d, want 0", len(plan))
	}
}

func TestPlanPushDeterministic(t *testing.T) {
	layout := []string{
		"#######",
		"#     #",
		"#@$   #",
		"#   . #",
		"#     #",
		"#######",
	}
	s := mustLevel(t, layout).InitialState()
	first, ok := PlanPush(s, Pos{R: 2, C: 2}, Pos{R: 3, C: 4})
	if !ok {
		t.Fatal("PlanPush() failed")
	}
	for i := 0; i < 5; i++ {
		again, ok := PlanPush(s, Pos{R: 2, C: 2}, Pos{R: 3, C: 4})
		if !ok {
			t.Fatal("PlanPush() failed on repeat")
		}
		if PathString(again) != PathString(first) {
			t.Fatalf("plan changed between runs: %q vs %q", PathString(again), PathString(first))
		}
	}
}
