// Package color — backtracking CSP search with forward checking and MRV.
//
// Color enumerates partial colorings depth-first. Assigning a color to a
// region prunes that color from every unassigned neighbor's domain
// (forward checking); a neighbor left with an empty domain kills the
// branch before it is entered. The next region to color is always one
// with the fewest remaining colors (MRV), lowest index on ties, so the
// search fails fast where the graph is tightest.
package color

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/statmaps/geochroma/adjacency"
)

// cspEngine holds all search data and policies.
// A dedicated engine struct (instead of closures) keeps dependencies
// explicit, testing simpler, and hot-path state predictable.
type cspEngine struct {
	// Configuration / policy
	n int // variables (regions)
	k int // palette size

	// Budgets
	maxNodes    int64
	useDeadline bool
	deadline    time.Time
	steps       int // sparse check counter

	// Graph data: ids sorted, neighbors by index
	ids  []string
	nbrs [][]int

	// Current search state
	domain   []uint64 // bitmask of colors still allowed per variable
	assigned []int    // color per variable, -1 when unassigned
	left     int      // variables still unassigned

	// trail records forward-checking prunes for undo: (variable, color)
	trail []pruneRecord

	// Counters / outcome
	nodes   int64
	stopErr error // budget or cancellation verdict, checked sparsely
	opts    Options
}

// pruneRecord is one undone-on-backtrack domain removal.
type pruneRecord struct {
	v int
	c int
}

// fullDomain returns the bitmask with the low k bits set.
func fullDomain(k int) uint64 {
	if k >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << k) - 1
}

// budgetCheck performs a rare budget/cancellation test (on the first
// node event, then every 1024) and records the verdict in stopErr.
func (e *cspEngine) budgetCheck() bool {
	if e.stopErr != nil {
		return true
	}
	e.steps++
	if (e.steps & 1023) != 1 {
		return false
	}
	select {
	case <-e.opts.Ctx.Done():
		e.stopErr = e.opts.Ctx.Err()
		return true
	default:
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.stopErr = fmt.Errorf("%w: time budget %v exhausted after %d nodes",
			ErrNoSolution, e.opts.TimeLimit, e.nodes)
		return true
	}

	return false
}

// pickVar returns the unassigned variable with the fewest remaining
// colors (MRV), lowest index on ties.
func (e *cspEngine) pickVar() int {
	best, bestSize := -1, e.k+1
	for v := 0; v < e.n; v++ {
		if e.assigned[v] >= 0 {
			continue
		}
		if size := bits.OnesCount64(e.domain[v]); size < bestSize {
			best, bestSize = v, size
			if size <= 1 {
				break // cannot do better than a forced variable
			}
		}
	}

	return best
}

// assign fixes color c on variable v and forward-checks its neighbors,
// pruning c from each unassigned neighbor's domain. It returns false
// (leaving the trail for the caller to unwind) when a neighbor's domain
// empties, and the trail length before the prunes otherwise.
func (e *cspEngine) assign(v, c int) (mark int, ok bool) {
	e.assigned[v] = c
	e.left--
	mark = len(e.trail)
	bit := uint64(1) << c
	for _, u := range e.nbrs[v] {
		if e.assigned[u] >= 0 || e.domain[u]&bit == 0 {
			continue
		}
		e.domain[u] &^= bit
		e.trail = append(e.trail, pruneRecord{v: u, c: c})
		if e.domain[u] == 0 {
			return mark, false
		}
	}

	return mark, true
}

// unassign rolls back an assign: restores pruned domains and frees v.
func (e *cspEngine) unassign(v int, mark int) {
	for i := len(e.trail) - 1; i >= mark; i-- {
		p := e.trail[i]
		e.domain[p.v] |= uint64(1) << p.c
	}
	e.trail = e.trail[:mark]
	e.assigned[v] = -1
	e.left++
}

// search runs the depth-first backtracking loop. It returns true once a
// complete conflict-free coloring is reached, false when this subtree is
// exhausted or a budget verdict was recorded.
func (e *cspEngine) search() bool {
	if e.budgetCheck() {
		return false
	}
	if e.left == 0 {
		return true
	}

	v := e.pickVar()
	for c := 0; c < e.k; c++ {
		if e.domain[v]&(uint64(1)<<c) == 0 {
			continue
		}
		e.nodes++
		if e.maxNodes > 0 && e.nodes > e.maxNodes {
			e.stopErr = fmt.Errorf("%w: node budget %d exhausted",
				ErrNoSolution, e.maxNodes)
			return false
		}

		mark, ok := e.assign(v, c)
		if ok && e.search() {
			return true
		}
		e.unassign(v, mark)
		if e.stopErr != nil {
			return false
		}
	}

	return false
}

// Color computes a conflict-free coloring of g's regions, applying any
// number of functional Options. It is a pure function: g is not mutated
// and no I/O is performed.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad
// options, ErrNoSolution when the palette cannot color the graph or a
// search budget runs out, or the context's error on cancellation.
//
// Two runs on the same graph both return valid colorings; callers must
// not rely on any particular one across implementations.
func Color(g *adjacency.Graph, opts ...Option) (*Assignment, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Variables in sorted-ID order for deterministic branching.
	ids := g.RegionIDs()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	e := &cspEngine{
		n:        n,
		k:        o.Palette,
		maxNodes: o.MaxNodes,
		ids:      ids,
		nbrs:     make([][]int, n),
		domain:   make([]uint64, n),
		assigned: make([]int, n),
		left:     n,
		opts:     o,
	}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}
	full := fullDomain(e.k)
	for i, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		row := make([]int, 0, len(nbrs))
		for _, nb := range nbrs {
			row = append(row, index[nb])
		}
		e.nbrs[i] = row
		e.domain[i] = full
		e.assigned[i] = -1
	}

	if !e.search() {
		if e.stopErr != nil {
			return nil, e.stopErr
		}
		return nil, fmt.Errorf("%w: palette of %d colors, %d regions, %d borders",
			ErrNoSolution, e.k, g.RegionCount(), g.EdgeCount())
	}

	colors := make(map[string]int, n)
	for i, id := range ids {
		colors[id] = e.assigned[i]
	}

	return &Assignment{Colors: colors, Palette: e.k, Nodes: e.nodes}, nil
}
