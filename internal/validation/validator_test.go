// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package validation

import (
	"strings"
	"testing"
)

type summaryRequest struct {
	Buckets   int     `validate:"min=1,max=100"`
	MinRating float64 `validate:"gte=0,lte=10"`
}

func TestValidateStructPasses(t *testing.T) {
	req := summaryRequest{Buckets: 20, MinRating: 5.0}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestValidateStructSingleFailure(t *testing.T) {
	req := summaryRequest{Buckets: 0, MinRating: 5.0}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if len(err.Fields) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(err.Fields))
	}
	if err.Fields[0].Field != "Buckets" {
		t.Errorf("expected Buckets field, got %s", err.Fields[0].Field)
	}
	if !strings.Contains(err.Error(), "at least 1") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestValidateStructMultipleFailures(t *testing.T) {
	req := summaryRequest{Buckets: 500, MinRating: 12.0}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if len(err.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Fields))
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("expected combined message, got %s", err.Error())
	}
}

func TestGetValidatorIsSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("expected the same validator instance")
	}
}
