// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package catalog

import (
	"errors"
	"fmt"
)

// ErrMissingColumns indicates the source header lacks required columns.
var ErrMissingColumns = errors.New("missing required columns")

// LoadError reports an unreadable catalog source: a missing file, an
// unparsable structure, or a header without the required columns.
//
// A LoadError is recoverable: Load pairs it with an empty Catalog so the
// caller can detect emptiness and degrade instead of aborting.
type LoadError struct {
	// Path is the source path, empty when reading from a stream.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("catalog load failed: %v", e.Err)
	}
	return fmt.Sprintf("catalog load failed for %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
