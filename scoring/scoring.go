//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Package scoring provides deterministic text quality metrics for generated answers.
package scoring

import (
	"math"
	"strings"
)

// maxBLEUOrder is the largest n-gram order used by BLEU.
const maxBLEUOrder = 4

// WordCount returns the count of whitespace-delimited tokens. Empty or
// blank text counts as zero.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// BLEU computes an n-gram precision overlap between candidate and reference
// with a brevity penalty for candidates shorter than the reference. The
// score is in [0, 1]. It returns nil when the reference is absent: a zero
// would wrongly read as "no overlap" instead of "not evaluable".
func BLEU(candidate, reference string) *float64 {
	refTokens := tokenize(reference)
	if len(refTokens) == 0 {
		return nil
	}
	candTokens := tokenize(candidate)
	if len(candTokens) == 0 {
		return ptr(0.0)
	}

	maxN := maxBLEUOrder
	if len(candTokens) < maxN {
		maxN = len(candTokens)
	}
	if len(refTokens) < maxN {
		maxN = len(refTokens)
	}

	var logPrecisionSum float64
	for n := 1; n <= maxN; n++ {
		precision := clippedPrecision(candTokens, refTokens, n)
		if precision == 0 {
			return ptr(0.0)
		}
		logPrecisionSum += math.Log(precision)
	}
	score := math.Exp(logPrecisionSum / float64(maxN))

	// Brevity penalty for candidates shorter than the reference.
	if len(candTokens) < len(refTokens) {
		score *= math.Exp(1 - float64(len(refTokens))/float64(len(candTokens)))
	}
	return ptr(clamp01(score))
}

// clippedPrecision computes the modified n-gram precision: candidate n-gram
// counts are clipped at the reference counts.
func clippedPrecision(candTokens, refTokens []string, n int) float64 {
	candNGrams := ngramCounts(candTokens, n)
	refNGrams := ngramCounts(refTokens, n)
	if len(candNGrams) == 0 {
		return 0
	}
	var matched, total int
	for key, cnt := range candNGrams {
		total += cnt
		if refCnt, ok := refNGrams[key]; ok {
			if cnt < refCnt {
				matched += cnt
			} else {
				matched += refCnt
			}
		}
	}
	return float64(matched) / float64(total)
}

// Similarity computes token-frequency cosine similarity between candidate
// and reference. It is symmetric and returns 1.0 for identical non-empty
// strings. It returns nil when the reference is absent.
func Similarity(candidate, reference string) *float64 {
	if strings.TrimSpace(reference) == "" {
		return nil
	}
	if candidate == reference {
		return ptr(1.0)
	}
	candCounts := tokenCounts(tokenize(candidate))
	refCounts := tokenCounts(tokenize(reference))
	if len(candCounts) == 0 || len(refCounts) == 0 {
		return ptr(0.0)
	}
	var dot, candNorm, refNorm float64
	for token, cnt := range candCounts {
		candNorm += float64(cnt) * float64(cnt)
		if refCnt, ok := refCounts[token]; ok {
			dot += float64(cnt) * float64(refCnt)
		}
	}
	for _, cnt := range refCounts {
		refNorm += float64(cnt) * float64(cnt)
	}
	return ptr(clamp01(dot / (math.Sqrt(candNorm) * math.Sqrt(refNorm))))
}

// Relevance computes the topical overlap between answer and question as the
// Jaccard index over distinct normalized tokens. It is always computable and
// returns 0 when either text has no tokens.
func Relevance(answer, question string) float64 {
	answerSet := tokenSet(tokenize(answer))
	questionSet := tokenSet(tokenize(question))
	if len(answerSet) == 0 || len(questionSet) == 0 {
		return 0
	}
	var intersection int
	for token := range answerSet {
		if _, ok := questionSet[token]; ok {
			intersection++
		}
	}
	union := len(answerSet) + len(questionSet) - intersection
	return clamp01(float64(intersection) / float64(union))
}

// ptr returns a pointer to v.
func ptr(v float64) *float64 {
	return &v
}

// clamp01 clamps v into [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
