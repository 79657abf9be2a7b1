package grid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

const benchSize = 256

// benchLines builds a reproducible benchSize x benchSize map with ~15%
// walls and scattered digit weights.
func benchLines() []string {
	rng := rand.New(rand.NewSource(42))

	lines := make([]string, benchSize)
	var sb strings.Builder
	for y := 0; y < benchSize; y++ {
		sb.Reset()
		for x := 0; x < benchSize; x++ {
			switch r := rng.Float64(); {
			case r < 0.15:
				sb.WriteByte('#')
			case r < 0.25:
				sb.WriteByte(byte('2' + rng.Intn(8)))
			default:
				sb.WriteByte('.')
			}
		}
		lines[y] = sb.String()
	}

	return lines
}

func BenchmarkParseMap(b *testing.B) {
	lines := benchLines()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.ParseMap(lines); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNeighbors sweeps every cell with a reused buffer, the way the
// search loops consume the API.
func BenchmarkNeighbors(b *testing.B) {
	g, err := grid.ParseMap(benchLines())
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]grid.Step, 0, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				buf = g.Neighbors(grid.Cell{X: x, Y: y}, grid.Conn8, buf)
			}
		}
	}
}
