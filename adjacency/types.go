// Package adjacency defines core types, options, and sentinel errors
// for the adjacency subpackage of github.com/statmaps/geochroma.
package adjacency

import (
	"context"
	"errors"
	"fmt"

	"github.com/statmaps/geochroma/geom"
)

// Sentinel errors for adjacency construction.
var (
	// ErrNoRegions indicates Build was called with an empty region slice.
	ErrNoRegions = errors.New("adjacency: no regions supplied")

	// ErrDuplicateRegion indicates two input regions share an ID.
	ErrDuplicateRegion = errors.New("adjacency: duplicate region ID")

	// ErrEmptyRegionID indicates a region with an empty ID string.
	ErrEmptyRegionID = errors.New("adjacency: region ID is empty")

	// ErrInvalidGeometry indicates a malformed region boundary; the region
	// is excluded from the graph and reported, never silently dropped.
	ErrInvalidGeometry = errors.New("adjacency: invalid geometry")

	// ErrRegionNotFound indicates an operation referenced a non-existent region.
	ErrRegionNotFound = errors.New("adjacency: region not found")

	// ErrSelfBorder indicates an attempt to record a region bordering itself.
	ErrSelfBorder = errors.New("adjacency: self-border not allowed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("adjacency: invalid option supplied")
)

// Region pairs a unique identifier with its boundary geometry.
// Regions are immutable after construction.
type Region struct {
	// ID uniquely identifies the region (e.g. a census subdivision UID).
	ID string

	// Geometry is the region boundary: a polygon or multipolygon.
	Geometry geom.Geometry
}

// Policy selects the boundary-contact notion that creates graph edges.
type Policy int

const (
	// PolicySharedEdge connects regions whose boundaries overlap along a
	// segment; corner contact alone creates no edge.
	PolicySharedEdge Policy = iota

	// PolicySharedVertex connects regions on any boundary contact,
	// including a single shared point.
	PolicySharedVertex
)

// DefaultTolerance is the coordinate slack used for boundary-contact
// tests when no WithTolerance option is given.
const DefaultTolerance = 1e-9

// Option configures Build behavior via functional arguments.
// If an Option is invalid (e.g. negative tolerance), it is recorded
// internally and surfaced as ErrOptionViolation when Build is invoked.
type Option func(*BuildOptions)

// BuildOptions holds parameters customizing graph construction.
type BuildOptions struct {
	// Ctx allows cancellation of long builds.
	Ctx context.Context

	// Policy chooses the boundary-contact notion (default PolicySharedEdge).
	Policy Policy

	// Tolerance is the coordinate slack for contact tests.
	Tolerance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns BuildOptions with sane defaults:
//   - context.Background()
//   - PolicySharedEdge
//   - DefaultTolerance
func DefaultOptions() BuildOptions {
	return BuildOptions{
		Ctx:       context.Background(),
		Policy:    PolicySharedEdge,
		Tolerance: DefaultTolerance,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BuildOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPolicy selects the adjacency policy.
func WithPolicy(p Policy) Option {
	return func(o *BuildOptions) {
		if p != PolicySharedEdge && p != PolicySharedVertex {
			o.err = fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, p)
			return
		}
		o.Policy = p
	}
}

// WithTolerance sets the coordinate slack for boundary-contact tests.
//
//	t > 0: use t
//	t == 0: exact coordinate matching
//	t < 0: invalid option → ErrOptionViolation
func WithTolerance(t float64) Option {
	return func(o *BuildOptions) {
		if t < 0 {
			o.err = fmt.Errorf("%w: tolerance cannot be negative (%g)", ErrOptionViolation, t)
			return
		}
		o.Tolerance = t
	}
}
