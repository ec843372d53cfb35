// Package geochroma turns polygon boundary data into colored maps — it
// builds a region-adjacency graph from geometries and assigns each region
// one of a small palette of colors so that no two bordering regions match.
//
// 🚀 What is geochroma?
//
//	A small, pure-Go library that brings together:
//		• Geometry primitives: rings, polygons, multipolygons + validation
//		• Adjacency: shared-border detection with R-tree candidate pruning
//		• Coloring: CSP backtracking with forward checking and MRV ordering
//		• GeoJSON: decode region collections, attach colors to features
//
// ✨ Why choose geochroma?
//
//   - Deterministic – sorted iteration and index tie-breaks everywhere
//   - Rock-solid guarantees – symmetric adjacency, no self-loops, validated colorings
//   - Pure functions – no I/O during builds or solves, context cancellation built in
//   - Honest errors – malformed geometries are reported, never silently dropped
//
// Everything is organized under four subpackages:
//
//	geom/      — points, rings, polygons, validity and shared-boundary tests
//	adjacency/ — Region, Graph, and the border-graph Builder
//	color/     — the CSP colorer and the default five-label palette
//	geojson/   — FeatureCollection decoding and color property injection
//
// Quick ASCII example:
//
//	A───B
//	│   │      A,B,C,D are regions on a 2×2 map; each borders two others,
//	C───D      so a 2-coloring {A,D}=0, {B,C}=1 already suffices.
//
// Dive into the package docs for full examples and the adjacency-policy
// and search-budget knobs.
package geochroma
