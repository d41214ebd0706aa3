// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package countries

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single known code", "US", "United States"},
		{"multiple codes", "US,JP,CA", "United States, Japan, Canada"},
		{"whitespace and case", " US, jp ", "United States, Japan"},
		{"unknown code passes through", "US,XX", "United States, XX"},
		{"sentinel passes through", "Unknown Country", "Unknown Country"},
		{"empty input", "", ""},
		{"trailing comma keeps empty token", "US,", "United States, "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.input); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	input := "US, jp"
	first := Resolve(input)
	second := Resolve(input)
	if first != second {
		t.Errorf("Resolve not deterministic: %q vs %q", first, second)
	}
}
