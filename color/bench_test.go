package color_test

import (
	"fmt"
	"testing"

	"github.com/statmaps/geochroma/adjacency"
	"github.com/statmaps/geochroma/color"
)

// gridGraph builds an n×n lattice: each cell borders its orthogonal
// neighbors — the shape real boundary data most resembles.
func gridGraph(n int) *adjacency.Graph {
	g := adjacency.NewGraph()
	id := func(x, y int) string { return fmt.Sprintf("r%d_%d", x, y) }
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x+1 < n {
				g.AddBorder(id(x, y), id(x+1, y))
			}
			if y+1 < n {
				g.AddBorder(id(x, y), id(x, y+1))
			}
		}
	}

	return g
}

// BenchmarkColor_Grid measures coloring of planar lattices under the
// default palette.
func BenchmarkColor_Grid(b *testing.B) {
	for _, n := range []int{8, 16, 32} {
		g := gridGraph(n)
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := color.Color(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkColor_TightPalette measures the harder case: a lattice under
// the minimum workable palette, where backtracking actually happens.
func BenchmarkColor_TightPalette(b *testing.B) {
	g := gridGraph(16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := color.Color(g, color.WithPalette(2)); err != nil {
			b.Fatal(err)
		}
	}
}
