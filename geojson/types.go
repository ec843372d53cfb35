// Package geojson defines the wire types and sentinel errors
// for the geojson subpackage of github.com/statmaps/geochroma.
package geojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for GeoJSON handling.
var (
	// ErrNilCollection indicates a nil FeatureCollection pointer.
	ErrNilCollection = errors.New("geojson: feature collection is nil")

	// ErrMissingProperty indicates a feature lacks the requested ID property.
	ErrMissingProperty = errors.New("geojson: missing ID property")

	// ErrNilAssignment indicates Colorize was given a nil assignment.
	ErrNilAssignment = errors.New("geojson: assignment is nil")

	// ErrUnsupportedGeometry indicates a geometry type other than
	// Polygon or MultiPolygon.
	ErrUnsupportedGeometry = errors.New("geojson: unsupported geometry type")

	// ErrBadCoordinates indicates coordinates that do not decode for the
	// declared geometry type.
	ErrBadCoordinates = errors.New("geojson: malformed coordinates")
)

// FeatureCollection is the top-level GeoJSON container.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single region row: free-form properties plus geometry.
type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

// Geometry keeps coordinates raw so unsupported or irrelevant shapes
// round-trip untouched; Polygon and MultiPolygon decode on demand.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// propertyString renders a decoded JSON property value the way boundary
// datasets expect identifiers to compare: strings as-is, numbers without
// a float suffix (4711066, not 4.711066e+06).
func propertyString(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
