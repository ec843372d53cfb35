package geom_test

import (
	"testing"

	"github.com/statmaps/geochroma/geom"
)

const tol = 1e-9

//----------------------------------------------------------------------------//
// SharedBoundary
//----------------------------------------------------------------------------//

// TestSharedBoundary_EdgeNeighbors verifies that two unit squares sharing a
// full edge are adjacent, and distant squares are not.
func TestSharedBoundary_EdgeNeighbors(t *testing.T) {
	a := geom.Polygon{square(0, 0)}
	b := geom.Polygon{square(1, 0)} // shares edge x=1
	c := geom.Polygon{square(5, 5)}

	if !geom.SharedBoundary(a, b, tol) {
		t.Error("squares sharing an edge: want SharedBoundary=true")
	}
	if geom.SharedBoundary(a, c, tol) {
		t.Error("distant squares: want SharedBoundary=false")
	}
}

// TestSharedBoundary_CornerOnly verifies the four-corners case: squares
// meeting at a single point share no boundary but do touch.
func TestSharedBoundary_CornerOnly(t *testing.T) {
	a := geom.Polygon{square(0, 0)}
	d := geom.Polygon{square(1, 1)} // meets a only at (1,1)

	if geom.SharedBoundary(a, d, tol) {
		t.Error("corner contact: want SharedBoundary=false")
	}
	if !geom.Touches(a, d, tol) {
		t.Error("corner contact: want Touches=true")
	}
}

// TestSharedBoundary_PartialOverlap verifies adjacency when boundaries
// overlap along only part of an edge.
func TestSharedBoundary_PartialOverlap(t *testing.T) {
	a := geom.Polygon{square(0, 0)}
	// Tall rectangle to the right, overlapping x=1 only on y∈[0.5,1].
	b := geom.Polygon{geom.Ring{
		{X: 1, Y: 0.5}, {X: 2, Y: 0.5}, {X: 2, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 0.5},
	}}
	if !geom.SharedBoundary(a, b, tol) {
		t.Error("half-edge overlap: want SharedBoundary=true")
	}
}

// TestSharedBoundary_MultiPolygon verifies that any member polygon
// sharing an edge makes the whole multipolygon adjacent.
func TestSharedBoundary_MultiPolygon(t *testing.T) {
	mp := geom.MultiPolygon{{square(10, 10)}, {square(1, 0)}}
	a := geom.Polygon{square(0, 0)}
	if !geom.SharedBoundary(a, mp, tol) {
		t.Error("multipolygon member shares an edge: want SharedBoundary=true")
	}
}

//----------------------------------------------------------------------------//
// Touches
//----------------------------------------------------------------------------//

// TestTouches covers crossing, near-miss and disjoint boundaries.
func TestTouches(t *testing.T) {
	a := geom.Polygon{square(0, 0)}

	cases := []struct {
		name string
		b    geom.Polygon
		want bool
	}{
		{"Overlapping", geom.Polygon{square(0.5, 0.5)}, true},
		{"EdgeShared", geom.Polygon{square(1, 0)}, true},
		{"Disjoint", geom.Polygon{square(3, 3)}, false},
		{"NearMissBeyondTol", geom.Polygon{square(1.001, 0)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := geom.Touches(a, tc.b, tol); got != tc.want {
				t.Errorf("Touches = %v; want %v", got, tc.want)
			}
		})
	}
}
