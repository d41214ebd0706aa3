// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jmorley-dev/catalogus/internal/logging"
	"github.com/jmorley-dev/catalogus/internal/metrics"
	"github.com/jmorley-dev/catalogus/internal/models"
)

// Load reads and normalizes the catalog from a CSV file.
//
// On any failure to read the source (missing file, malformed CSV, header
// without the required columns) it returns an empty Catalog together with
// a *LoadError. Missing values inside a well-formed source are not errors;
// they are repaired by Normalize.
func Load(path string) (models.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		metrics.RecordCatalogLoad("error")
		return models.Catalog{}, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		metrics.RecordCatalogLoad("error")
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return models.Catalog{}, le
		}
		return models.Catalog{}, &LoadError{Path: path, Err: err}
	}

	metrics.RecordCatalogLoad("success")
	metrics.SetCatalogSize(len(c))
	logging.Info().Str("path", path).Int("records", len(c)).Msg("Catalog loaded")
	return c, nil
}

// Read reads and normalizes a CSV catalog from r.
// The first row must be a header containing all RequiredColumns; extra
// columns are ignored. Returns an empty Catalog and a *LoadError when the
// structure is unreadable.
func Read(r io.Reader) (models.Catalog, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return models.Catalog{}, &LoadError{Err: fmt.Errorf("reading header: %w", err)}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return models.Catalog{}, &LoadError{
			Err: fmt.Errorf("%w: %v", ErrMissingColumns, missing),
		}
	}

	var raw []RawRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.Catalog{}, &LoadError{Err: fmt.Errorf("reading row: %w", err)}
		}

		rec := make(RawRecord, len(RequiredColumns))
		for _, col := range RequiredColumns {
			if i := index[col]; i < len(row) {
				rec[col] = row[i]
			}
		}
		raw = append(raw, rec)
	}

	return Normalize(raw), nil
}
