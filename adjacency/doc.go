// Package adjacency derives a region-adjacency graph from polygon
// boundary geometries: nodes are regions, edges connect regions that
// share a border.
//
// The package provides two pieces:
//
//   - Graph — an undirected simple graph keyed by region ID. Symmetry is
//     structural (AddBorder always stores both directions) and self-loops
//     are rejected, so the two invariants map coloring relies on cannot be
//     violated by construction. All iteration is deterministic: RegionIDs
//     and NeighborIDs return sorted slices.
//
//   - Build — the border-graph builder. Given a set of Regions it
//     validates each geometry, indexes bounding boxes in an R-tree, and
//     runs the exact shared-boundary test only on candidate pairs whose
//     boxes overlap.
//
// Malformed geometries never abort the build and are never silently
// dropped: each one is excluded from the graph and recorded in the
// returned Report with an error wrapping ErrInvalidGeometry.
//
// Adjacency policy:
//
//   - PolicySharedEdge (default) — regions are adjacent only when their
//     boundaries overlap along a segment. Corner contact (the "four
//     corners" configuration) does not create an edge, so no spurious
//     diagonal constraints reach the colorer.
//   - PolicySharedVertex — any boundary contact, including a single
//     point, creates an edge.
//
// Cancellation: pass WithContext to abort long builds; the builder checks
// the context once per region.
//
// Complexity: O(V·log V) for indexing plus O(candidates · n·m) for exact
// tests, where candidate pairs are those with overlapping bounding boxes.
package adjacency
