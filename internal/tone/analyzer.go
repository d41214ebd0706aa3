// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package tone

import (
	"context"

	"github.com/jmorley-dev/catalogus/internal/logging"
)

// Result is the reader-facing tone of a title's genre text.
type Result struct {
	Label       Label   `json:"label"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// Analyzer turns genre text into a tone Result. A nil classifier means
// the feature is disabled and every call returns ErrClassifierDisabled.
type Analyzer struct {
	classifier Classifier
}

// NewAnalyzer creates an Analyzer over the given classifier. Passing nil
// disables tone analysis.
func NewAnalyzer(classifier Classifier) *Analyzer {
	return &Analyzer{classifier: classifier}
}

// Enabled reports whether tone analysis is available.
func (a *Analyzer) Enabled() bool {
	return a.classifier != nil
}

// Analyze classifies the genre text and interprets the model's label.
// Classifier failures return a zero Result alongside the error; a failed
// classification is "tone unavailable", never a verdict.
func (a *Analyzer) Analyze(ctx context.Context, genreText string) (Result, error) {
	if a.classifier == nil {
		return Result{}, ErrClassifierDisabled
	}

	pred, err := a.classifier.Classify(ctx, genreText)
	if err != nil {
		logging.Warn().Err(err).Msg("Tone classification failed")
		return Result{}, err
	}

	label, description := Interpret(pred.Label)
	return Result{Label: label, Score: pred.Score, Description: description}, nil
}
