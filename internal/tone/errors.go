// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package tone

import (
	"errors"
	"fmt"
)

// ErrClassifierDisabled is returned when tone analysis is requested but
// no classifier endpoint is configured.
var ErrClassifierDisabled = errors.New("tone classifier is disabled")

// ClassificationError reports a failed classifier exchange. It is
// recoverable: callers report the tone as unavailable instead of failing
// the surrounding request.
type ClassificationError struct {
	Op  string
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("tone classification %s: %v", e.Op, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}
