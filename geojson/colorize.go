package geojson

import (
	"github.com/statmaps/geochroma/color"
)

// ColorProperty is the feature property Colorize writes.
const ColorProperty = "color"

// Uncolored is the sentinel written for features with no assigned color.
const Uncolored = -1

// Colorize returns a copy of the FeatureCollection with each feature's
// ColorProperty set from the assignment, keyed by the idProperty value.
//
// Every feature is kept: those whose ID has no assigned color — filtered
// out before building, excluded for invalid geometry, or missing the ID
// property altogether — receive Uncolored (-1), so downstream renderers
// can still draw them (see color.Hex's gray fallback).
//
// The input collection is not mutated; geometries are shared, property
// maps are copied.
// Complexity: O(F·P) over features and their property counts.
func Colorize(fc *FeatureCollection, idProperty string, a *color.Assignment) (*FeatureCollection, error) {
	if fc == nil {
		return nil, ErrNilCollection
	}
	if a == nil {
		return nil, ErrNilAssignment
	}

	out := &FeatureCollection{
		Type:     fc.Type,
		Features: make([]Feature, len(fc.Features)),
	}
	for i, f := range fc.Features {
		props := make(map[string]interface{}, len(f.Properties)+1)
		for k, v := range f.Properties {
			props[k] = v
		}

		c := Uncolored
		if idVal, ok := f.Properties[idProperty]; ok {
			if assigned, colored := a.Colors[propertyString(idVal)]; colored {
				c = assigned
			}
		}
		props[ColorProperty] = c

		out.Features[i] = Feature{
			Type:       f.Type,
			Properties: props,
			Geometry:   f.Geometry,
		}
	}

	return out, nil
}
