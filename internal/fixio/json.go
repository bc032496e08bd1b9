// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

// Package fixio loads flight tracks from the JSON fix-sequence format
// IGC replay tools commonly emit: an array of objects carrying lat/lon
// in degrees, a Unix timestamp, and optional GPS/baro altitude.
package fixio

import (
	"fmt"

	"github.com/valyala/fastjson"
	"golang.org/x/exp/slices"

	"github.com/xcflight/xcopt/track"
)

// LoadFixesJSON parses a JSON array of fix objects from data. Each
// object must carry "lat" and "lon" in degrees and "time" as Unix
// seconds; "alt_gps", "alt_baro", "valid" and "name" are optional.
func LoadFixesJSON(data []byte) ([]track.Fix, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("fixio: parsing fix JSON: %w", err)
	}

	arr, err := v.Array()
	if err != nil {
		return nil, fmt.Errorf("fixio: fix JSON must be an array: %w", err)
	}

	fixes := slices.Grow([]track.Fix(nil), len(arr))
	for _, item := range arr {
		lat := item.GetFloat64("lat")
		lon := item.GetFloat64("lon")
		t := item.GetInt64("time")

		fix := track.Fix{
			Lat:         int32(lat * 60000),
			Lon:         int32(lon * 60000),
			TimeUnixSec: t,
			AltGPS:      int32(item.GetInt("alt_gps")),
			AltBaro:     int32(item.GetInt("alt_baro")),
			Valid:       true,
		}

		if b := item.Get("valid"); b != nil {
			fix.Valid = b.GetBool()
		}
		if nameVal := item.Get("name"); nameVal != nil {
			if s, err := nameVal.StringBytes(); err == nil {
				fix.Name = string(s)
			}
		}

		if !fix.Valid {
			continue
		}

		fixes = append(fixes, fix)
	}

	return fixes, nil
}
