// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package tone

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifier struct {
	pred Prediction
	err  error
}

func (s *stubClassifier) Classify(_ context.Context, _ string) (Prediction, error) {
	return s.pred, s.err
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     Label
		wantDesc string
	}{
		{"positive", "POSITIVE", LabelPositive, "The genre tone suggests a generally enjoyable or light-hearted experience."},
		{"negative", "NEGATIVE", LabelNegative, "The genre tone suggests a more intense, dramatic, or serious theme."},
		{"unknown", "NEUTRAL", LabelOther, "The genre tone is neutral or mixed."},
		{"empty", "", LabelOther, "The genre tone is neutral or mixed."},
		{"lowercase is not recognized", "positive", LabelOther, "The genre tone is neutral or mixed."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, desc := Interpret(tt.raw)
			assert.Equal(t, tt.want, label)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}

func TestAnalyzeMapsPrediction(t *testing.T) {
	a := NewAnalyzer(&stubClassifier{pred: Prediction{Label: "NEGATIVE", Score: 0.87}})

	res, err := a.Analyze(context.Background(), "Crime, Thriller")
	require.NoError(t, err)
	assert.Equal(t, LabelNegative, res.Label)
	assert.InDelta(t, 0.87, res.Score, 1e-9)
	assert.Equal(t, "The genre tone suggests a more intense, dramatic, or serious theme.", res.Description)
}

func TestAnalyzePropagatesClassifierError(t *testing.T) {
	wantErr := &ClassificationError{Op: "request", Err: errors.New("boom")}
	a := NewAnalyzer(&stubClassifier{err: wantErr})

	_, err := a.Analyze(context.Background(), "Drama")
	var ce *ClassificationError
	require.ErrorAs(t, err, &ce)
}

func TestAnalyzeDisabled(t *testing.T) {
	a := NewAnalyzer(nil)
	assert.False(t, a.Enabled())

	_, err := a.Analyze(context.Background(), "Drama")
	assert.ErrorIs(t, err, ErrClassifierDisabled)
}

func TestAnalyzeFailureYieldsNoVerdict(t *testing.T) {
	a := NewAnalyzer(&stubClassifier{err: &ClassificationError{Op: "request", Err: errors.New("down")}})

	res, err := a.Analyze(context.Background(), "Drama")
	require.Error(t, err)
	assert.Zero(t, res, "a failed classification carries no label or description")
}
