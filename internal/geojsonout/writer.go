// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

// Package geojsonout turns an optimiser Result back into a GeoJSON
// feature for downstream mapping tools, keeping the track/league
// packages ignorant of any output format.
package geojsonout

import (
	"github.com/paulmach/go.geojson"
	"github.com/xcflight/xcopt/league"
	"github.com/xcflight/xcopt/track"
)

// Feature builds a GeoJSON LineString feature for a single shape
// result, resolving each chosen fix index back to its lat/lon via
// fixes (the same slice NewTrack built r's track from). The feature
// carries "shape" and "distance_km" properties.
func Feature(shape track.RouteShape, r track.Result, fixes []track.Fix) *geojson.Feature {
	coords := make([][]float64, 0, len(r.Indices))
	for _, idx := range r.Indices {
		if idx < 0 || idx >= len(fixes) {
			continue
		}
		f := fixes[idx]
		lon := float64(f.Lon) / 60000.0
		lat := float64(f.Lat) / 60000.0
		coords = append(coords, []float64{lon, lat})
	}

	feat := geojson.NewLineStringFeature(coords)
	feat.SetProperty("shape", shape.String())
	feat.SetProperty("distance_km", r.Distance*track.R)
	return feat
}

// FeatureCollection builds one feature per result in results, skipping
// any that never beat their bound.
func FeatureCollection(results []league.ShapeResult, fixes []track.Fix) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, sr := range results {
		if !sr.Result.Beaten() {
			continue
		}
		fc.AddFeature(Feature(sr.Shape, sr.Result, fixes))
	}
	return fc
}
