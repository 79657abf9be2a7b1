package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/pathfind"
)

// The wall forces the unweighted search around the bottom row.
func ExampleBFS() {
	g, _ := grid.ParseMap([]string{
		".#.",
		".#.",
		"...",
	})

	res, _ := pathfind.BFS(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 0})
	fmt.Println(res.Path)
	fmt.Println(res.Cost)
	// Output:
	// [{0 0} {0 1} {0 2} {1 2} {2 2} {2 1} {2 0}]
	// 6
}

// Weight-9 cells are walkable but expensive, so the cheapest route goes
// around them even though it is longer.
func ExampleDijkstra() {
	g, _ := grid.ParseMap([]string{
		".9.",
		".9.",
		"...",
	})

	res, _ := pathfind.Dijkstra(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 0},
		pathfind.WithConnectivity(grid.Conn4))
	fmt.Println(res.Path)
	fmt.Println(res.Cost)
	// Output:
	// [{0 0} {0 1} {0 2} {1 2} {2 2} {2 1} {2 0}]
	// 6
}

// Chebyshev distance guides the search straight down the diagonal.
func ExampleAStar() {
	g, _ := grid.ParseMap([]string{
		"....",
		"....",
		"....",
		"....",
	})

	res, _ := pathfind.AStar(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3}, heuristic.Chebyshev)
	fmt.Println(res.Path)
	fmt.Printf("%.3f\n", res.Cost)
	// Output:
	// [{0 0} {1 1} {2 2} {3 3}]
	// 4.243
}

// A sealed goal is a negative answer, not an error.
func ExampleAStar_unreachable() {
	g, _ := grid.ParseMap([]string{
		".#.",
		".#.",
		".#.",
	})

	res, err := pathfind.AStar(g, grid.Cell{X: 0, Y: 1}, grid.Cell{X: 2, Y: 1}, nil)
	fmt.Println(err, res.Found, len(res.Path))
	// Output:
	// <nil> false 0
}

// Stepper exposes the same search one expansion at a time.
func ExampleStepper() {
	g, _ := grid.ParseMap([]string{
		"...",
		"...",
		"...",
	})

	st, _ := pathfind.NewStepper(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 2}, heuristic.Euclidean)
	snap, _ := st.Step()
	fmt.Println(snap.Step, snap.Current)

	for !snap.Done {
		snap, _ = st.Step()
	}
	fmt.Println(snap.Path)
	// Output:
	// 1 {0 0}
	// [{0 0} {1 1} {2 2}]
}
