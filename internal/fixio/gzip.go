// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package fixio

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/xcflight/xcopt/track"
)

// LoadFixesJSONGz decompresses r as gzip and parses the result as a
// fix-sequence JSON array, for IGC.gz-sized fixtures that aren't worth
// keeping uncompressed on disk.
func LoadFixesJSONGz(r io.Reader) ([]track.Fix, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("fixio: opening gzip stream: %w", err)
	}
	defer gz.Close()

	data, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("fixio: reading gzip stream: %w", err)
	}

	return LoadFixesJSON(data)
}
