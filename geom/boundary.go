package geom

import "math"

// cross returns the z-component of (b-a) × (c-a): positive when c lies
// left of the directed line a→b, negative when right, zero when collinear.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// properCross reports whether segments p1p2 and q1q2 cross at a single
// interior point of both. Touching at an endpoint or collinear overlap
// does not count as a proper crossing.
func properCross(p1, p2, q1, q2 Point) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// overlapLength returns the length of the collinear overlap between
// segments a1a2 and b1b2, or 0 when the segments are not collinear
// within tol (perpendicular distance of b's endpoints from line a1a2).
func overlapLength(a1, a2, b1, b2 Point, tol float64) float64 {
	dx, dy := a2.X-a1.X, a2.Y-a1.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0
	}
	// Both endpoints of b must lie on line a within tol.
	if math.Abs(cross(a1, a2, b1))/l > tol || math.Abs(cross(a1, a2, b2))/l > tol {
		return 0
	}
	// Project b's endpoints onto a's axis and intersect the parameter intervals.
	t1 := ((b1.X-a1.X)*dx + (b1.Y-a1.Y)*dy) / l
	t2 := ((b2.X-a1.X)*dx + (b2.Y-a1.Y)*dy) / l
	lo := math.Max(0, math.Min(t1, t2))
	hi := math.Min(l, math.Max(t1, t2))
	if hi <= lo {
		return 0
	}

	return hi - lo
}

// pointSegDist returns the distance from p to segment a1a2.
func pointSegDist(p, a1, a2 Point) float64 {
	dx, dy := a2.X-a1.X, a2.Y-a1.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a1.X, p.Y-a1.Y)
	}
	t := ((p.X-a1.X)*dx + (p.Y-a1.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))

	return math.Hypot(p.X-(a1.X+t*dx), p.Y-(a1.Y+t*dy))
}

// segSegDist returns the minimum distance between segments a1a2 and b1b2;
// 0 when they cross.
func segSegDist(a1, a2, b1, b2 Point) float64 {
	if properCross(a1, a2, b1, b2) {
		return 0
	}
	d := pointSegDist(b1, a1, a2)
	if e := pointSegDist(b2, a1, a2); e < d {
		d = e
	}
	if e := pointSegDist(a1, b1, b2); e < d {
		d = e
	}
	if e := pointSegDist(a2, b1, b2); e < d {
		d = e
	}

	return d
}

// eachSegment invokes fn for every boundary segment of g, stopping early
// when fn returns true. Zero-length segments are skipped.
func eachSegment(g Geometry, fn func(s1, s2 Point) bool) bool {
	for _, rg := range g.Rings() {
		for i := 0; i+1 < len(rg); i++ {
			if rg[i] == rg[i+1] {
				continue
			}
			if fn(rg[i], rg[i+1]) {
				return true
			}
		}
	}

	return false
}

// SharedBoundary reports whether the boundaries of a and b run together
// along a segment of length greater than tol. Corner contact (a single
// shared point) is not a shared boundary.
//
// This is the adjacency notion for map coloring: two regions meeting only
// at a four-corners point need not receive distinct colors.
// Complexity: O(n·m) over the two boundaries' segment counts.
func SharedBoundary(a, b Geometry, tol float64) bool {
	if !a.Bounds().Expand(tol).Intersects(b.Bounds()) {
		return false
	}

	return eachSegment(a, func(s1, s2 Point) bool {
		return eachSegment(b, func(t1, t2 Point) bool {
			return overlapLength(s1, s2, t1, t2, tol) > tol
		})
	})
}

// Touches reports whether the boundaries of a and b come within tol of
// each other anywhere at all, including a single corner point.
// Complexity: O(n·m) over the two boundaries' segment counts.
func Touches(a, b Geometry, tol float64) bool {
	if !a.Bounds().Expand(tol).Intersects(b.Bounds()) {
		return false
	}

	return eachSegment(a, func(s1, s2 Point) bool {
		return eachSegment(b, func(t1, t2 Point) bool {
			return segSegDist(s1, s2, t1, t2) <= tol
		})
	})
}
