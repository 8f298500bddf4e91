//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

package scoring

import (
	"strings"

	"github.com/answerlog/answerlog/record"
)

// Scorer populates the automated-metrics subset of interaction records.
//
// Scoring happens in two stages: right after generation only the answer and
// question are known, so word count and relevance are computed; once a
// reference answer arrives with feedback, BLEU and similarity are computed
// against it. Both stages are idempotent and never regress a previously
// computed value.
type Scorer struct {
}

// NewScorer creates a record scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// ScoreGeneration fills the metrics derivable without a reference answer.
// Already-present values are left untouched.
func (s *Scorer) ScoreGeneration(interaction *record.Interaction) {
	if interaction == nil {
		return
	}
	if interaction.WordCount == 0 {
		interaction.WordCount = WordCount(interaction.Answer)
	}
	if interaction.RelevanceScore == nil {
		relevance := Relevance(interaction.Answer, interaction.Question)
		interaction.RelevanceScore = &relevance
	}
}

// ScoreReference recomputes the reference-dependent metrics once a correct
// answer is present. Word count and relevance are not touched. Without a
// reference the call is a no-op and BLEU/similarity stay absent.
func (s *Scorer) ScoreReference(interaction *record.Interaction) {
	if interaction == nil || strings.TrimSpace(interaction.CorrectAnswer) == "" {
		return
	}
	interaction.BLEUScore = BLEU(interaction.Answer, interaction.CorrectAnswer)
	interaction.SimilarityScore = Similarity(interaction.Answer, interaction.CorrectAnswer)
}
