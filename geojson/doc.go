// Package geojson bridges FeatureCollections and the adjacency/color
// pipeline: it extracts regions from decoded GeoJSON and writes coloring
// results back as a feature property.
//
// The types mirror the GeoJSON wire format (RFC 7946) for the two
// geometry kinds boundary data uses, Polygon and MultiPolygon.
// Coordinates are held as raw JSON and only decoded on demand, so a
// collection round-trips byte-for-byte through Colorize.
//
// Typical flow:
//
//	fc := &geojson.FeatureCollection{}
//	_ = json.Unmarshal(data, fc)
//
//	regions, _ := geojson.Regions(fc, "CSDUID", map[string]string{
//		"PRNAME": "Saskatchewan", "CSDTYPE": "RM",
//	})
//	g, report, _ := adjacency.Build(regions)
//	assignment, _ := color.Color(g)
//	colored, _ := geojson.Colorize(fc, "CSDUID", assignment)
//
// Regions applies equality filters on feature properties before
// extraction, matching the attribute-filter workflow of boundary
// datasets (filter a national file down to one province, one region
// type, then color).
//
// Colorize never drops a feature: features whose ID has no assigned
// color — filtered out, excluded for invalid geometry, or simply absent —
// receive the sentinel color -1. color.Hex maps that sentinel to a
// neutral gray for rendering.
//
// The package performs no I/O and no coordinate reprojection; callers
// own reading, writing, and CRS concerns.
package geojson
