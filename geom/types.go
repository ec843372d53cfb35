// Package geom defines core geometry types and sentinel errors
// for the geom subpackage of github.com/statmaps/geochroma.
package geom

import (
	"errors"
	"math"
)

// Sentinel errors for geometry validation.
var (
	// ErrEmptyGeometry indicates a polygon with no rings or a multipolygon with no polygons.
	ErrEmptyGeometry = errors.New("geom: geometry has no rings")

	// ErrRingNotClosed indicates a ring whose first and last points differ.
	ErrRingNotClosed = errors.New("geom: ring is not closed")

	// ErrRingTooShort indicates a ring with fewer than 4 points (triangle + closure).
	ErrRingTooShort = errors.New("geom: ring has fewer than 4 points")

	// ErrNonFiniteCoord indicates a NaN or infinite coordinate.
	ErrNonFiniteCoord = errors.New("geom: non-finite coordinate")

	// ErrSelfIntersection indicates an exterior ring that crosses itself.
	ErrSelfIntersection = errors.New("geom: ring self-intersection")
)

// Point is a planar coordinate pair: X east, Y north.
type Point struct {
	X, Y float64
}

// finite reports whether both coordinates are finite numbers.
func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Ring is a closed sequence of points. A valid ring repeats its first
// point as its last, giving len(ring) >= 4 for the smallest (triangular) ring.
type Ring []Point

// Polygon is one exterior ring (index 0) followed by zero or more
// interior rings (holes).
type Polygon []Ring

// MultiPolygon is a set of polygons treated as a single region boundary.
type MultiPolygon []Polygon

// Geometry is the boundary shape consumed by adjacency analysis.
// Rings returns every ring of the boundary (exteriors and holes alike),
// Bounds the enclosing axis-aligned box, and Validate the validity verdict.
type Geometry interface {
	Rings() []Ring
	Bounds() Rect
	Validate() error
}

// Rings returns the polygon's rings as-is.
func (p Polygon) Rings() []Ring { return p }

// Rings returns all rings of all member polygons, exterior-first per member.
func (mp MultiPolygon) Rings() []Ring {
	var rings []Ring
	for _, p := range mp {
		rings = append(rings, p...)
	}

	return rings
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// emptyRect is the identity for Union: any real box absorbs it.
var emptyRect = Rect{
	MinX: math.Inf(1), MinY: math.Inf(1),
	MaxX: math.Inf(-1), MaxY: math.Inf(-1),
}

// Union returns the smallest Rect covering both r and o.
// Complexity: O(1).
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Expand grows the box by pad on every side.
// Complexity: O(1).
func (r Rect) Expand(pad float64) Rect {
	return Rect{MinX: r.MinX - pad, MinY: r.MinY - pad, MaxX: r.MaxX + pad, MaxY: r.MaxY + pad}
}

// Intersects reports whether r and o overlap (closed-interval semantics:
// boxes sharing only an edge still intersect).
// Complexity: O(1).
func (r Rect) Intersects(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX &&
		r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

// Bounds returns the enclosing box of the ring.
// Complexity: O(n).
func (rg Ring) Bounds() Rect {
	b := emptyRect
	for _, p := range rg {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}

	return b
}

// Bounds returns the enclosing box of the polygon's exterior ring.
// Complexity: O(n).
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return emptyRect
	}

	return p[0].Bounds()
}

// Bounds returns the enclosing box of every member polygon.
// Complexity: O(n).
func (mp MultiPolygon) Bounds() Rect {
	b := emptyRect
	for _, p := range mp {
		b = b.Union(p.Bounds())
	}

	return b
}
