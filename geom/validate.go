package geom

import "fmt"

// Validate checks the ring for closure, minimum length, and finite
// coordinates. Self-intersection is checked at the polygon level, where
// it is known whether the ring is an exterior.
// Complexity: O(n).
func (rg Ring) Validate() error {
	if len(rg) < 4 {
		return fmt.Errorf("%w: got %d points", ErrRingTooShort, len(rg))
	}
	for i, p := range rg {
		if !p.finite() {
			return fmt.Errorf("%w: point %d (%v)", ErrNonFiniteCoord, i, p)
		}
	}
	if rg[0] != rg[len(rg)-1] {
		return fmt.Errorf("%w: first %v != last %v", ErrRingNotClosed, rg[0], rg[len(rg)-1])
	}

	return nil
}

// Validate checks every ring of the polygon and rejects a properly
// self-intersecting exterior ring.
// Complexity: O(k·n + n²) where n is the exterior ring size.
func (p Polygon) Validate() error {
	if len(p) == 0 {
		return ErrEmptyGeometry
	}
	for i, rg := range p {
		if err := rg.Validate(); err != nil {
			return fmt.Errorf("ring %d: %w", i, err)
		}
	}
	if selfIntersects(p[0]) {
		return fmt.Errorf("%w: exterior ring", ErrSelfIntersection)
	}

	return nil
}

// Validate checks every member polygon.
// Complexity: O(sum over members of member validation).
func (mp MultiPolygon) Validate() error {
	if len(mp) == 0 {
		return ErrEmptyGeometry
	}
	for i, p := range mp {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("polygon %d: %w", i, err)
		}
	}

	return nil
}

// selfIntersects reports whether any two non-adjacent edges of the ring
// properly cross. Adjacent edges (sharing an endpoint) and the implicit
// wrap-around pair are skipped; touching at shared vertices is legal.
// Complexity: O(n²).
func selfIntersects(rg Ring) bool {
	// Edges are rg[i]→rg[i+1] for i in [0, n-1); the ring is closed,
	// so the last edge ends at rg[0].
	n := len(rg) - 1
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			// Skip the wrap-around adjacency between the first and last edge.
			if i == 0 && j == n-1 {
				continue
			}
			if properCross(rg[i], rg[i+1], rg[j], rg[j+1]) {
				return true
			}
		}
	}

	return false
}
