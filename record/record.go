//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Package record defines the logged question/answer interaction and its store contract.
package record

import (
	"context"

	"github.com/answerlog/answerlog/epochtime"
)

// Interaction represents one logged question/answer exchange together with
// its automated metrics and, once submitted, the human feedback.
//
// Optional numeric metrics are pointers: nil means "not evaluable" (for
// example no reference answer exists yet), which is distinct from a genuine
// zero score. Aggregation relies on that distinction.
type Interaction struct {
	// ID uniquely identifies this interaction. Assigned by the store on append.
	ID string `json:"id,omitempty"`
	// Timestamp when this interaction was created.
	Timestamp *epochtime.EpochTime `json:"timestamp,omitempty"`
	// Question is the user question sent to the generation backend.
	Question string `json:"question,omitempty"`
	// Answer is the generated answer text.
	Answer string `json:"answer,omitempty"`
	// FeedbackLabel is the human judgment, optionally suffixed with a comment.
	FeedbackLabel string `json:"feedbackLabel,omitempty"`
	// CorrectAnswer is an optional human-supplied reference answer.
	CorrectAnswer string `json:"correctAnswer,omitempty"`
	// AccuracyScore is derived from the feedback label. Present iff feedback was given.
	AccuracyScore *float64 `json:"accuracyScore,omitempty"`
	// ResponseTimeSeconds is the generation latency measured by the backend.
	ResponseTimeSeconds float64 `json:"responseTimeSeconds"`
	// WordCount is the whitespace-delimited token count of the answer.
	WordCount int `json:"wordCount"`
	// BLEUScore is the n-gram overlap against CorrectAnswer. Nil without a reference.
	BLEUScore *float64 `json:"bleuScore,omitempty"`
	// SimilarityScore is the semantic closeness to CorrectAnswer. Nil without a reference.
	SimilarityScore *float64 `json:"similarityScore,omitempty"`
	// RelevanceScore is the topical overlap between answer and question.
	RelevanceScore *float64 `json:"relevanceScore,omitempty"`
}

// HasFeedback reports whether human feedback has been attached. A record with
// feedback is terminal: no further field mutation is allowed.
func (r *Interaction) HasFeedback() bool {
	return r != nil && r.FeedbackLabel != "" && r.AccuracyScore != nil
}

// Store defines durable persistence for interaction records.
//
// A record is written at most twice: Append at creation and Update when
// feedback is attached. All returns records in insertion order.
type Store interface {
	// Append stores a new interaction and returns its assigned ID.
	Append(ctx context.Context, interaction *Interaction) (string, error)
	// Update replaces a stored interaction, identified by its ID.
	// It is only legal as the feedback-attach write.
	Update(ctx context.Context, interaction *Interaction) error
	// All returns every stored interaction in insertion order.
	All(ctx context.Context) ([]*Interaction, error)
	// Count returns the number of stored interactions.
	Count(ctx context.Context) (int, error)
	// Clear removes every stored interaction and reports whether it succeeded.
	Clear(ctx context.Context) (bool, error)
}
