// Package geom provides the planar geometry primitives that back
// region-adjacency analysis: points, rings, polygons and multipolygons,
// together with validity checks and boundary-contact predicates.
//
// The model is deliberately small:
//
//   - Point   — a planar coordinate pair (X east, Y north).
//   - Ring    — a closed sequence of points; first and last must coincide.
//   - Polygon — one exterior ring plus zero or more interior rings (holes).
//   - MultiPolygon — a set of polygons treated as one region boundary.
//
// Both Polygon and MultiPolygon satisfy the Geometry interface, which is
// what the adjacency builder consumes.
//
// Validity (Validate):
//
//   - every ring is closed and has at least 4 points (triangle + closure)
//   - every coordinate is finite (no NaN/±Inf)
//   - the exterior ring does not properly self-intersect
//
// Contact predicates:
//
//   - SharedBoundary(a, b, tol) — the boundaries overlap along a segment of
//     length > tol. This is the "shared border" notion used for map
//     adjacency: two regions meeting only at a corner do NOT share a
//     boundary under this predicate.
//   - Touches(a, b, tol) — the boundaries meet anywhere at all, including
//     a single corner point.
//
// All predicates are exact up to the caller-supplied tolerance; no
// floating-point epsilon is hidden inside the package.
//
// Complexity: validation is O(n²) in ring size (pairwise segment test);
// contact predicates are O(n·m) over the two boundaries' segment counts.
// Callers with many regions should prune candidate pairs by bounding box
// first (see Bounds and Rect.Intersects); the adjacency builder does this
// with an R-tree.
package geom
