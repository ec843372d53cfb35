package geojson

import (
	"encoding/json"
	"fmt"

	"github.com/statmaps/geochroma/adjacency"
	"github.com/statmaps/geochroma/geom"
)

// toRing converts one GeoJSON linear ring ([ [x,y], ... ]) to a geom.Ring.
// Extra ordinates beyond x,y (altitude) are ignored; fewer than two is an error.
func toRing(coords [][]float64) (geom.Ring, error) {
	rg := make(geom.Ring, 0, len(coords))
	for _, pos := range coords {
		if len(pos) < 2 {
			return nil, fmt.Errorf("%w: position with %d ordinates", ErrBadCoordinates, len(pos))
		}
		rg = append(rg, geom.Point{X: pos[0], Y: pos[1]})
	}

	return rg, nil
}

// toPolygon converts GeoJSON polygon coordinates to a geom.Polygon.
func toPolygon(coords [][][]float64) (geom.Polygon, error) {
	p := make(geom.Polygon, 0, len(coords))
	for _, ring := range coords {
		rg, err := toRing(ring)
		if err != nil {
			return nil, err
		}
		p = append(p, rg)
	}

	return p, nil
}

// decodeGeometry turns a wire Geometry into a geom.Geometry.
// Only Polygon and MultiPolygon are supported; anything else is
// ErrUnsupportedGeometry. The result is NOT validated here — validity is
// the adjacency builder's concern, so malformed rings are excluded and
// reported there instead of aborting the decode.
func decodeGeometry(g Geometry) (geom.Geometry, error) {
	switch g.Type {
	case "Polygon":
		var coords [][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadCoordinates, err)
		}

		return toPolygon(coords)

	case "MultiPolygon":
		var coords [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadCoordinates, err)
		}
		mp := make(geom.MultiPolygon, 0, len(coords))
		for _, pc := range coords {
			p, err := toPolygon(pc)
			if err != nil {
				return nil, err
			}
			mp = append(mp, p)
		}

		return mp, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGeometry, g.Type)
	}
}

// matches reports whether the feature's properties satisfy every
// equality filter (stringified comparison).
func matches(f Feature, filters map[string]string) bool {
	for key, want := range filters {
		v, ok := f.Properties[key]
		if !ok || propertyString(v) != want {
			return false
		}
	}

	return true
}

// Regions extracts adjacency.Regions from a FeatureCollection.
//
// idProperty names the feature property holding the unique region
// identifier (e.g. "CSDUID" in Statistics Canada subdivisions); a feature
// lacking it fails with ErrMissingProperty. filters keeps only features
// whose properties equal every given value, the usual way a national
// boundary file is narrowed to one province or region type; pass nil to
// keep everything.
//
// Geometry validity is deliberately not checked here — invalid rings are
// excluded and reported by adjacency.Build, never silently dropped.
// Complexity: O(F·C) over features and their coordinate counts.
func Regions(fc *FeatureCollection, idProperty string, filters map[string]string) ([]adjacency.Region, error) {
	if fc == nil {
		return nil, ErrNilCollection
	}

	regions := make([]adjacency.Region, 0, len(fc.Features))
	for i, f := range fc.Features {
		if !matches(f, filters) {
			continue
		}
		idVal, ok := f.Properties[idProperty]
		if !ok {
			return nil, fmt.Errorf("%w: feature %d lacks %q", ErrMissingProperty, i, idProperty)
		}

		gm, err := decodeGeometry(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}

		regions = append(regions, adjacency.Region{
			ID:       propertyString(idVal),
			Geometry: gm,
		})
	}

	return regions, nil
}
