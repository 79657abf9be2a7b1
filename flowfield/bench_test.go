package flowfield_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/flowfield"
	"github.com/katalvlaran/gridpath/grid"
)

const benchSize = 128

// benchGrid builds a reproducible benchSize x benchSize field with ~15%
// walls and mixed terrain weights. Corners stay open for the goal seeds.
func benchGrid(b *testing.B) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))

	walk := make([][]bool, benchSize)
	weight := make([][]float64, benchSize)
	for y := range walk {
		walk[y] = make([]bool, benchSize)
		weight[y] = make([]float64, benchSize)
		for x := range walk[y] {
			walk[y][x] = rng.Float64() >= 0.15
			weight[y][x] = float64(1 + rng.Intn(9))
		}
	}
	walk[0][0] = true
	walk[benchSize-1][benchSize-1] = true

	g, err := grid.NewWeighted(walk, weight)
	if err != nil {
		b.Fatalf("NewWeighted failed: %v", err)
	}

	return g
}

// BenchmarkBuild covers the whole map from one goal, the dominant cost of
// serving a crowd with a shared field.
func BenchmarkBuild(b *testing.B) {
	g := benchGrid(b)
	goals := []grid.Cell{{X: 0, Y: 0}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flowfield.Build(g, goals); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild_multiSource seeds both open corners at once; the
// frontier meets in the middle, so more goals cost no extra passes.
func BenchmarkBuild_multiSource(b *testing.B) {
	g := benchGrid(b)
	goals := []grid.Cell{
		{X: 0, Y: 0},
		{X: benchSize - 1, Y: benchSize - 1},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flowfield.Build(g, goals); err != nil {
			b.Fatal(err)
		}
	}
}
