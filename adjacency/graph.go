package adjacency

import (
	"fmt"
	"sort"
)

// Graph is an undirected simple graph over region IDs.
//
// Symmetry is structural: AddBorder stores both directions, so A∈N(B)
// iff B∈N(A) for every pair. Self-loops are rejected at insertion.
// Iteration is deterministic: RegionIDs and NeighborIDs return sorted slices.
type Graph struct {
	// adj[regionID] = set of neighboring region IDs
	adj map[string]map[string]struct{}

	// edgeCount tracks undirected edges (each pair counted once).
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]struct{})}
}

// AddRegion inserts an isolated region node. Re-adding an existing
// region is a no-op. Returns ErrEmptyRegionID for the empty string.
// Complexity: O(1).
func (g *Graph) AddRegion(id string) error {
	if id == "" {
		return ErrEmptyRegionID
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]struct{})
	}

	return nil
}

// HasRegion reports whether id is a node of the graph.
// Complexity: O(1).
func (g *Graph) HasRegion(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// AddBorder records that regions a and b share a border, inserting
// either region first if absent. Both directions are stored, keeping the
// adjacency relation symmetric. Returns ErrSelfBorder when a == b and
// ErrEmptyRegionID for empty IDs. Re-adding an existing border is a no-op.
// Complexity: O(1).
func (g *Graph) AddBorder(a, b string) error {
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfBorder, a)
	}
	if err := g.AddRegion(a); err != nil {
		return err
	}
	if err := g.AddRegion(b); err != nil {
		return err
	}
	if _, ok := g.adj[a][b]; ok {
		return nil
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
	g.edgeCount++

	return nil
}

// HasBorder reports whether a and b are adjacent.
// Complexity: O(1).
func (g *Graph) HasBorder(a, b string) bool {
	_, ok := g.adj[a][b]

	return ok
}

// RegionIDs returns all region IDs in sorted order.
// Complexity: O(V·log V).
func (g *Graph) RegionIDs() []string {
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NeighborIDs returns the sorted neighbor IDs of the given region, or
// ErrRegionNotFound if the region is absent.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	set, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRegionNotFound, id)
	}
	nbrs := make([]string, 0, len(set))
	for n := range set {
		nbrs = append(nbrs, n)
	}
	sort.Strings(nbrs)

	return nbrs, nil
}

// Degree returns the number of neighbors of the given region.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	set, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrRegionNotFound, id)
	}

	return len(set), nil
}

// RegionCount returns the number of regions.
// Complexity: O(1).
func (g *Graph) RegionCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected borders.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// AdjacencyList returns a sorted copy of the full adjacency relation.
// Mutating the returned map does not affect the graph.
// Complexity: O(V + E·log E).
func (g *Graph) AdjacencyList() map[string][]string {
	out := make(map[string][]string, len(g.adj))
	for id := range g.adj {
		nbrs, _ := g.NeighborIDs(id)
		out[id] = nbrs
	}

	return out
}

// Clone returns a deep copy of the graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	c.edgeCount = g.edgeCount
	for id, set := range g.adj {
		cp := make(map[string]struct{}, len(set))
		for n := range set {
			cp[n] = struct{}{}
		}
		c.adj[id] = cp
	}

	return c
}
