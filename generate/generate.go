//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Package generate defines the text-generation backend contract.
package generate

import (
	"context"
	"errors"
)

// ErrGeneration reports a failure of the generation backend. A failed
// generation never produces an interaction record.
var ErrGeneration = errors.New("generation failed")

// Result is a generated answer together with its measured latency.
type Result struct {
	// Answer is the generated answer text.
	Answer string
	// ResponseTimeSeconds is the wall-clock latency of the generation call.
	ResponseTimeSeconds float64
}

// Generator produces an answer for a question and measures the latency.
type Generator interface {
	// Generate returns an answer for the question. Errors wrap ErrGeneration.
	Generate(ctx context.Context, question string) (*Result, error)
}
