package fleet_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/fleet"
	"github.com/katalvlaran/gridpath/grid"
)

// An agent walks its planned route one cell per tick and parks when it
// reaches the goal.
func ExampleController() {
	g, _ := grid.ParseMap([]string{
		".....",
		".###.",
		".....",
	})

	ctrl, _ := fleet.NewController(g, fleet.WithConnectivity(grid.Conn4))
	id, _ := ctrl.Add(grid.Cell{X: 0, Y: 0})
	_ = ctrl.SetGoal(id, grid.Cell{X: 4, Y: 0})

	for i := 0; i < 4; i++ {
		ctrl.Step()
		a, _ := ctrl.Agent(id)
		fmt.Println(a.Pos, a.Status)
	}
	// Output:
	// {1 0} moving
	// {2 0} moving
	// {3 0} moving
	// {4 0} arrived
}
