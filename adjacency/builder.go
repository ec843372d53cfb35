package adjacency

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/statmaps/geochroma/geom"
)

// Exclusion records one region dropped from the graph and why.
// Err always wraps ErrInvalidGeometry.
type Exclusion struct {
	ID  string
	Err error
}

// Report collects the non-fatal outcomes of a Build: regions excluded
// for malformed geometry. An empty report means every region made it
// into the graph.
type Report struct {
	Excluded []Exclusion
}

// ExcludedIDs returns the sorted IDs of excluded regions.
func (r *Report) ExcludedIDs() []string {
	ids := make([]string, 0, len(r.Excluded))
	for _, ex := range r.Excluded {
		ids = append(ids, ex.ID)
	}
	sort.Strings(ids)

	return ids
}

// bboxEntry is the R-tree payload: a region index plus its padded box.
type bboxEntry struct {
	idx  int
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *bboxEntry) Bounds() rtreego.Rect { return e.rect }

// toRTreeRect converts a geom.Rect to an rtreego.Rect, padding every
// side by pad so that degenerate boxes keep positive extent and
// near-contact boxes still collide during candidate search.
func toRTreeRect(b geom.Rect, pad float64) (rtreego.Rect, error) {
	b = b.Expand(pad)

	return rtreego.NewRect(
		rtreego.Point{b.MinX, b.MinY},
		[]float64{b.MaxX - b.MinX, b.MaxY - b.MinY},
	)
}

// contact returns the boundary-contact predicate for the chosen policy.
func contact(p Policy) func(a, b geom.Geometry, tol float64) bool {
	if p == PolicySharedVertex {
		return geom.Touches
	}

	return geom.SharedBoundary
}

// Build derives the region-adjacency graph from the supplied regions,
// applying any number of functional Options.
//
// Regions with malformed geometry are excluded from the graph and
// recorded in the Report (wrapping ErrInvalidGeometry); the build
// continues with the remainder. Duplicate or empty region IDs abort the
// build with ErrDuplicateRegion / ErrEmptyRegionID, since they poison
// the identifier space rather than a single geometry.
//
// Candidate pairs are pruned with an R-tree over padded bounding boxes;
// the exact boundary-contact test runs only on colliding pairs.
//
// Complexity: O(V·log V) indexing + O(P·n·m) exact tests over the P
// candidate pairs. Memory: O(V + E).
func Build(regions []Region, opts ...Option) (*Graph, *Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}
	if len(regions) == 0 {
		return nil, nil, ErrNoRegions
	}

	// Identifier hygiene first: duplicates and empties are caller bugs.
	seen := make(map[string]struct{}, len(regions))
	for _, r := range regions {
		if r.ID == "" {
			return nil, nil, ErrEmptyRegionID
		}
		if _, dup := seen[r.ID]; dup {
			return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateRegion, r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	g := NewGraph()
	report := &Report{}

	// Validate geometries; index the survivors.
	// Padding the boxes by the tolerance keeps near-contact pairs colliding.
	pad := o.Tolerance + 1e-12
	valid := make([]Region, 0, len(regions))
	tree := rtreego.NewTree(2, 2, 8)
	for _, r := range regions {
		if r.Geometry == nil {
			report.Excluded = append(report.Excluded, Exclusion{
				ID:  r.ID,
				Err: fmt.Errorf("%w: %q: nil geometry", ErrInvalidGeometry, r.ID),
			})
			continue
		}
		if verr := r.Geometry.Validate(); verr != nil {
			report.Excluded = append(report.Excluded, Exclusion{
				ID:  r.ID,
				Err: fmt.Errorf("%w: %q: %w", ErrInvalidGeometry, r.ID, verr),
			})
			continue
		}

		rect, rerr := toRTreeRect(r.Geometry.Bounds(), pad)
		if rerr != nil {
			report.Excluded = append(report.Excluded, Exclusion{
				ID:  r.ID,
				Err: fmt.Errorf("%w: %q: unbounded geometry: %w", ErrInvalidGeometry, r.ID, rerr),
			})
			continue
		}

		_ = g.AddRegion(r.ID)
		tree.Insert(&bboxEntry{idx: len(valid), rect: rect})
		valid = append(valid, r)
	}

	// Exact contact test on colliding pairs only.
	adjacent := contact(o.Policy)
	for i, r := range valid {
		// cancellation check (once per region)
		select {
		case <-o.Ctx.Done():
			return nil, nil, o.Ctx.Err()
		default:
		}

		rect, _ := toRTreeRect(r.Geometry.Bounds(), pad)
		for _, hit := range tree.SearchIntersect(rect) {
			j := hit.(*bboxEntry).idx
			if j <= i {
				continue // each pair tested once
			}
			other := valid[j]
			if adjacent(r.Geometry, other.Geometry, o.Tolerance) {
				_ = g.AddBorder(r.ID, other.ID)
			}
		}
	}

	return g, report, nil
}
