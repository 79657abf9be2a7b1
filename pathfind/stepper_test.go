package pathfind_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/pathfind"
)

func stepperFixture(t *testing.T) (*grid.Grid, grid.Cell, grid.Cell) {
	t.Helper()
	g := mustParse(t,
		".....",
		".##..",
		"...#.",
		".....",
	)

	return g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 3}
}

func TestStepper_ReplaysSynchronousSearch(t *testing.T) {
	g, start, goal := stepperFixture(t)

	want, err := pathfind.AStar(g, start, goal, heuristic.Euclidean)
	if err != nil {
		t.Fatalf("AStar returned error: %v", err)
	}

	st, err := pathfind.NewStepper(g, start, goal, heuristic.Euclidean)
	if err != nil {
		t.Fatalf("NewStepper returned error: %v", err)
	}

	steps := 0
	var snap pathfind.Snapshot
	for {
		snap, err = st.Step()
		if err != nil {
			t.Fatalf("Step %d returned error: %v", steps, err)
		}
		steps++
		if snap.Done {
			break
		}
		if steps > g.Width*g.Height {
			t.Fatal("stepper never terminated")
		}
	}

	if steps != want.Expanded {
		t.Errorf("terminated after %d steps; synchronous search expanded %d", steps, want.Expanded)
	}
	got := st.Result()
	if got == nil {
		t.Fatal("Result is nil after Done")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("stepper result diverges from synchronous run:\ngot  %+v\nwant %+v", got, want)
	}
	if !reflect.DeepEqual(snap.Path, want.Path) {
		t.Errorf("final snapshot path %v; want %v", snap.Path, want.Path)
	}
}

func TestStepper_FirstStepClosesStart(t *testing.T) {
	g, start, goal := stepperFixture(t)

	st, err := pathfind.NewStepper(g, start, goal, heuristic.Euclidean)
	if err != nil {
		t.Fatalf("NewStepper returned error: %v", err)
	}
	snap, err := st.Step()
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}

	if snap.Step != 1 || snap.Current != start {
		t.Errorf("Step=%d Current=%v; want step 1 closing %v", snap.Step, snap.Current, start)
	}
	if want := []grid.Cell{start}; !reflect.DeepEqual(snap.Closed, want) {
		t.Errorf("Closed = %v; want %v", snap.Closed, want)
	}
	if len(snap.Open) == 0 {
		t.Error("Open is empty after the first expansion")
	}
	if snap.Done || snap.Found {
		t.Errorf("Done=%v Found=%v; want neither on step 1", snap.Done, snap.Found)
	}
}

func TestStepper_ClosedGrowsByOneCell(t *testing.T) {
	g, start, goal := stepperFixture(t)

	st, err := pathfind.NewStepper(g, start, goal, heuristic.Euclidean)
	if err != nil {
		t.Fatalf("NewStepper returned error: %v", err)
	}

	prev := []grid.Cell{}
	for i := 0; i < g.Width*g.Height; i++ {
		snap, err := st.Step()
		if err != nil {
			t.Fatalf("Step returned error: %v", err)
		}
		if len(snap.Closed) != len(prev)+1 {
			t.Fatalf("step %d closed %d cells; want %d", snap.Step, len(snap.Closed), len(prev)+1)
		}
		if !reflect.DeepEqual(snap.Closed[:len(prev)], prev) {
			t.Fatalf("step %d rewrote closed history: %v -> %v", snap.Step, prev, snap.Closed)
		}
		if snap.Done {
			return
		}
		prev = snap.Closed
	}
	t.Fatal("stepper never terminated")
}

func TestStepper_DoneIsSticky(t *testing.T) {
	g, start, goal := stepperFixture(t)

	st, err := pathfind.NewStepper(g, start, goal, heuristic.Euclidean)
	if err != nil {
		t.Fatalf("NewStepper returned error: %v", err)
	}
	if st.Result() != nil {
		t.Error("Result must be nil before the search terminates")
	}

	var final pathfind.Snapshot
	for i := 0; i < g.Width*g.Height; i++ {
		final, err = st.Step()
		if err != nil {
			t.Fatalf("Step returned error: %v", err)
		}
		if final.Done {
			break
		}
	}
	if !final.Done {
		t.Fatal("stepper never terminated")
	}

	for i := 0; i < 3; i++ {
		again, err := st.Step()
		if err != nil {
			t.Fatalf("post-termination Step returned error: %v", err)
		}
		if !reflect.DeepEqual(again, final) {
			t.Fatalf("post-termination snapshot changed:\ngot  %+v\nwant %+v", again, final)
		}
	}
}

func TestStepper_StartEqualsGoal(t *testing.T) {
	g, start, _ := stepperFixture(t)

	st, err := pathfind.NewStepper(g, start, start, heuristic.Euclidean)
	if err != nil {
		t.Fatalf("NewStepper returned error: %v", err)
	}
	snap, err := st.Step()
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}

	if !snap.Done || !snap.Found {
		t.Errorf("Done=%v Found=%v; want both on the first step", snap.Done, snap.Found)
	}
	if want := []grid.Cell{start}; !reflect.DeepEqual(snap.Path, want) {
		t.Errorf("Path = %v; want %v", snap.Path, want)
	}
	if len(snap.Open) != 0 || len(snap.Closed) != 0 {
		t.Errorf("Open=%v Closed=%v; want empty telemetry", snap.Open, snap.Closed)
	}
	if res := st.Result(); res == nil || res.Expanded != 0 {
		t.Errorf("Result = %+v; want zero expansions", res)
	}
}

func TestStepper_ContextCancellation(t *testing.T) {
	g, start, goal := stepperFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	st, err := pathfind.NewStepper(g, start, goal, heuristic.Euclidean,
		pathfind.WithContext(ctx))
	if err != nil {
		t.Fatalf("NewStepper returned error: %v", err)
	}
	if _, err = st.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}

	cancel()
	snap, err := st.Step()
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v; want %v", err, context.Canceled)
	}
	if !snap.Done || snap.Found {
		t.Errorf("Done=%v Found=%v; want terminated without a path", snap.Done, snap.Found)
	}

	// Termination by cancellation is sticky too.
	again, err := st.Step()
	if err != nil {
		t.Fatalf("post-cancellation Step returned error: %v", err)
	}
	if !reflect.DeepEqual(again, snap) {
		t.Error("post-cancellation snapshot changed")
	}
}

func TestStepper_Validation(t *testing.T) {
	if _, err := pathfind.NewStepper(nil, grid.Cell{}, grid.Cell{}, nil); !errors.Is(err, pathfind.ErrNilGrid) {
		t.Errorf("err = %v; want %v", err, pathfind.ErrNilGrid)
	}

	g := mustParse(t, ".#")
	if _, err := pathfind.NewStepper(g, grid.Cell{}, grid.Cell{X: 1, Y: 0}, nil); !errors.Is(err, pathfind.ErrGoalNotWalkable) {
		t.Errorf("err = %v; want %v", err, pathfind.ErrGoalNotWalkable)
	}
}
