// File: geom/example_test.go
package geom_test

import (
	"fmt"

	"github.com/statmaps/geochroma/geom"
)

// ExampleSharedBoundary demonstrates the difference between edge adjacency
// and mere corner contact on a 2×2 checkerboard of unit squares.
// Scenario:
//
//   - A at (0,0), B at (1,0), D at (1,1)
//   - A–B share the edge x=1; A–D meet only at the point (1,1)
//
// Complexity: O(n·m) per predicate call.
func ExampleSharedBoundary() {
	sq := func(x, y float64) geom.Polygon {
		return geom.Polygon{geom.Ring{
			{X: x, Y: y}, {X: x + 1, Y: y}, {X: x + 1, Y: y + 1}, {X: x, Y: y + 1}, {X: x, Y: y},
		}}
	}
	a, b, d := sq(0, 0), sq(1, 0), sq(1, 1)

	fmt.Println("A-B shared boundary:", geom.SharedBoundary(a, b, 1e-9))
	fmt.Println("A-D shared boundary:", geom.SharedBoundary(a, d, 1e-9))
	fmt.Println("A-D touches:", geom.Touches(a, d, 1e-9))

	// Output:
	// A-B shared boundary: true
	// A-D shared boundary: false
	// A-D touches: true
}
