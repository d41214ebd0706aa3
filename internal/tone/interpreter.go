// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package tone

// Label is the sentiment class assigned to a title's genre text.
type Label string

// Classifier labels. The upstream model emits POSITIVE or NEGATIVE;
// anything else is mapped to LabelOther.
const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"
	LabelOther    Label = "OTHER"
)

// Descriptions shown to the reader for each label. The wording is part
// of the product surface and must not drift.
const (
	descPositive = "The genre tone suggests a generally enjoyable or light-hearted experience."
	descNegative = "The genre tone suggests a more intense, dramatic, or serious theme."
	descNeutral  = "The genre tone is neutral or mixed."
)

// Interpret folds an arbitrary classifier label down to one of the three
// supported labels and pairs it with its reader-facing description.
func Interpret(raw string) (Label, string) {
	switch Label(raw) {
	case LabelPositive:
		return LabelPositive, descPositive
	case LabelNegative:
		return LabelNegative, descNegative
	default:
		return LabelOther, descNeutral
	}
}
