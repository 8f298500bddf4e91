//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Package feedback classifies human feedback labels into numeric accuracy scores.
package feedback

import (
	"errors"
	"fmt"
)

// The three accuracy classes an operator can assign.
const (
	LabelAccurate          = "Accurate"
	LabelPartiallyAccurate = "Partially accurate"
	LabelInaccurate        = "Inaccurate"
)

// The canonical accuracy scores the classifier writes. These are the only
// values AccuracyScore may hold, which is why exact float comparison is safe
// downstream.
const (
	ScoreAccurate          = 1.0
	ScorePartiallyAccurate = 0.5
	ScoreInaccurate        = 0.0
)

// ErrInvalidLabel reports a feedback label outside the fixed set.
var ErrInvalidLabel = errors.New("invalid feedback label")

// Classify maps a feedback label to its numeric accuracy score. Unrecognized
// labels fail with ErrInvalidLabel; there is no silent default.
func Classify(label string) (float64, error) {
	switch label {
	case LabelAccurate:
		return ScoreAccurate, nil
	case LabelPartiallyAccurate:
		return ScorePartiallyAccurate, nil
	case LabelInaccurate:
		return ScoreInaccurate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
}

// Combine joins the label with an optional free-text comment for storage.
// The comment never affects the numeric score.
func Combine(label, comment string) string {
	if comment == "" {
		return label
	}
	return label + ": " + comment
}

// LabelForScore returns the accuracy class name for a canonical score.
func LabelForScore(score float64) (string, bool) {
	switch score {
	case ScoreAccurate:
		return LabelAccurate, true
	case ScorePartiallyAccurate:
		return LabelPartiallyAccurate, true
	case ScoreInaccurate:
		return LabelInaccurate, true
	default:
		return "", false
	}
}
