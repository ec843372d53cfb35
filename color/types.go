// Package color defines tunable options and error definitions
// for CSP map coloring over an adjacency.Graph.
package color

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/statmaps/geochroma/adjacency"
)

// Sentinel errors for coloring execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("color: graph is nil")

	// ErrNoSolution is returned when no valid coloring exists within the
	// palette and search budget.
	ErrNoSolution = errors.New("color: no valid coloring found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("color: invalid option supplied")

	// ErrInvalidAssignment is returned by Assignment.Validate when the
	// assignment violates a border constraint or misses a region.
	ErrInvalidAssignment = errors.New("color: invalid assignment")
)

// DefaultPalette is the number of colors used when WithPalette is absent.
// Five gives planar maps one spare color beyond the four-color bound.
const DefaultPalette = 5

// maxPalette bounds the palette so domains fit one machine word.
const maxPalette = 64

// Option configures coloring behavior via functional arguments.
// If an Option is invalid (e.g. palette < 1), it is recorded internally
// and surfaced as ErrOptionViolation when Color is invoked.
type Option func(*Options)

// Options holds parameters customizing the CSP search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Palette is the number of colors; the domain is [0, Palette).
	Palette int

	// MaxNodes, if > 0, aborts the search with ErrNoSolution after this
	// many search nodes. A value of 0 disables the node budget.
	MaxNodes int64

	// TimeLimit, if > 0, aborts the search with ErrNoSolution once the
	// wall-clock budget is spent. A value of 0 disables the time budget.
	TimeLimit time.Duration

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Palette = DefaultPalette (5)
//   - no node budget, no time budget.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Palette:   DefaultPalette,
		MaxNodes:  0,
		TimeLimit: 0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPalette sets the number of colors.
//
//	1 ≤ k ≤ 64: use k colors
//	otherwise: invalid option → ErrOptionViolation
func WithPalette(k int) Option {
	return func(o *Options) {
		if k < 1 || k > maxPalette {
			o.err = fmt.Errorf("%w: palette must be in [1,%d], got %d", ErrOptionViolation, maxPalette, k)
			return
		}
		o.Palette = k
	}
}

// WithMaxNodes bounds the number of search nodes.
//
//	n > 0: abort with ErrNoSolution after n nodes
//	n == 0: explicit no node budget
//	n < 0: invalid option → ErrOptionViolation
func WithMaxNodes(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxNodes cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxNodes = n
	}
}

// WithTimeLimit bounds the wall-clock search time.
//
//	d > 0: abort with ErrNoSolution after d
//	d == 0: explicit no time budget
//	d < 0: invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// Assignment holds the outcome of a coloring:
//   - Colors: region ID → color index in [0, Palette).
//   - Palette: the palette size the search used.
//   - Nodes: search nodes expanded (useful for tuning budgets).
type Assignment struct {
	Colors  map[string]int
	Palette int
	Nodes   int64
}

// Validate checks the assignment against the graph: every region must be
// colored within the palette, and bordering regions must differ.
// Returns nil for a proper coloring, ErrInvalidAssignment otherwise.
// Complexity: O(V + E).
func (a *Assignment) Validate(g *adjacency.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	for _, id := range g.RegionIDs() {
		c, ok := a.Colors[id]
		if !ok {
			return fmt.Errorf("%w: region %q is uncolored", ErrInvalidAssignment, id)
		}
		if c < 0 || c >= a.Palette {
			return fmt.Errorf("%w: region %q has out-of-palette color %d", ErrInvalidAssignment, id, c)
		}
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return err
		}
		for _, n := range nbrs {
			if a.Colors[n] == c {
				return fmt.Errorf("%w: border %s|%s shares color %d", ErrInvalidAssignment, id, n, c)
			}
		}
	}

	return nil
}
