// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package catalog

import (
	"sync/atomic"

	"github.com/jmorley-dev/catalogus/internal/metrics"
	"github.com/jmorley-dev/catalogus/internal/models"
)

// Store holds the current catalog snapshot. The catalog itself is
// immutable; Replace swaps the whole snapshot atomically so concurrent
// readers either see the old catalog or the new one, never a partial mix.
//
// The store is constructed once in main and passed explicitly to callers;
// there is no ambient process-wide catalog cache.
type Store struct {
	current atomic.Pointer[models.Catalog]
}

// NewStore creates a store holding the given catalog snapshot.
func NewStore(c models.Catalog) *Store {
	s := &Store{}
	s.Replace(c)
	return s
}

// Current returns the current catalog snapshot. Callers must treat the
// returned slice as read-only.
func (s *Store) Current() models.Catalog {
	return *s.current.Load()
}

// Replace swaps in a new catalog snapshot wholesale.
func (s *Store) Replace(c models.Catalog) {
	s.current.Store(&c)
	metrics.SetCatalogSize(len(c))
}
