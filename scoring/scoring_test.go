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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \t\n"))
	assert.Equal(t, 1, WordCount("hello"))
	assert.Equal(t, 4, WordCount("the  sky   is blue"))
}

func TestTokenizeNormalization(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, tokenize("Hello, World!"))
	assert.Equal(t, []string{"a", "b", "c"}, tokenize("a...b---c"))
	assert.Empty(t, tokenize("?!,."))
	assert.Empty(t, tokenize(""))
}

func TestBLEUAbsentReference(t *testing.T) {
	assert.Nil(t, BLEU("some answer", ""))
	assert.Nil(t, BLEU("some answer", "   "))
	assert.Nil(t, BLEU("some answer", "?!"))
}

func TestBLEUEmptyCandidate(t *testing.T) {
	score := BLEU("", "the reference answer")
	require.NotNil(t, score)
	assert.Zero(t, *score)
}

func TestBLEUIdentical(t *testing.T) {
	score := BLEU("Paris is the capital of France.", "Paris is the capital of France.")
	require.NotNil(t, score)
	assert.InDelta(t, 1.0, *score, 1e-9)
}

func TestBLEUCaseAndPunctuationInsensitive(t *testing.T) {
	score := BLEU("paris is the capital of france", "Paris, is the capital of France!")
	require.NotNil(t, score)
	assert.InDelta(t, 1.0, *score, 1e-9)
}

func TestBLEUNoOverlap(t *testing.T) {
	score := BLEU("alpha beta gamma delta", "one two three four")
	require.NotNil(t, score)
	assert.Zero(t, *score)
}

func TestBLEUPartialOverlapOrdering(t *testing.T) {
	ref := "the quick brown fox jumps over the lazy dog"
	better := BLEU("the quick brown fox jumps over a lazy dog", ref)
	worse := BLEU("a quick fox jumps somewhere over a sleepy dog", ref)
	require.NotNil(t, better)
	require.NotNil(t, worse)
	assert.Greater(t, *better, *worse)
	assert.Greater(t, *better, 0.0)
	assert.LessOrEqual(t, *better, 1.0)
}

func TestBLEUShortCandidatePenalized(t *testing.T) {
	ref := "the quick brown fox jumps over the lazy dog"
	full := BLEU(ref, ref)
	truncated := BLEU("the quick brown fox", ref)
	require.NotNil(t, full)
	require.NotNil(t, truncated)
	assert.Less(t, *truncated, *full)
}

func TestDoubledReferenceNotWorseThanPartialMatch(t *testing.T) {
	ref := "the cat sat on the mat"
	doubled := ref + " " + ref
	partial := "a dog stood near a rug"

	doubledBLEU := BLEU(doubled, ref)
	partialBLEU := BLEU(partial, ref)
	require.NotNil(t, doubledBLEU)
	require.NotNil(t, partialBLEU)
	assert.GreaterOrEqual(t, *doubledBLEU, *partialBLEU)

	doubledSim := Similarity(doubled, ref)
	partialSim := Similarity(partial, ref)
	require.NotNil(t, doubledSim)
	require.NotNil(t, partialSim)
	assert.GreaterOrEqual(t, *doubledSim, *partialSim)
	// Doubling only scales token frequencies, so the cosine stays 1.
	assert.InDelta(t, 1.0, *doubledSim, 1e-9)
}

func TestSimilarityAbsentReference(t *testing.T) {
	assert.Nil(t, Similarity("an answer", ""))
	assert.Nil(t, Similarity("an answer", "  \t"))
}

func TestSimilarityIdentical(t *testing.T) {
	score := Similarity("water boils at 100 degrees", "water boils at 100 degrees")
	require.NotNil(t, score)
	assert.Equal(t, 1.0, *score)
}

func TestSimilaritySymmetric(t *testing.T) {
	a, b := "the capital of France is Paris", "Paris is the capital city"
	left := Similarity(a, b)
	right := Similarity(b, a)
	require.NotNil(t, left)
	require.NotNil(t, right)
	assert.InDelta(t, *left, *right, 1e-9)
	assert.Greater(t, *left, 0.0)
	assert.Less(t, *left, 1.0)
}

func TestSimilarityDisjoint(t *testing.T) {
	score := Similarity("alpha beta", "gamma delta")
	require.NotNil(t, score)
	assert.Zero(t, *score)
}

func TestSimilarityEmptyCandidate(t *testing.T) {
	score := Similarity("", "a real reference")
	require.NotNil(t, score)
	assert.Zero(t, *score)
}

func TestRelevance(t *testing.T) {
	assert.InDelta(t, 1.0, Relevance("is the sky blue", "the sky is blue?"), 1e-9)
	assert.Zero(t, Relevance("", "what is the capital of France"))
	assert.Zero(t, Relevance("some answer", ""))
	assert.Zero(t, Relevance("alpha beta", "gamma delta"))

	// 2 shared tokens out of 6 distinct.
	got := Relevance("paris france europe city", "capital paris france country")
	assert.InDelta(t, 2.0/6.0, got, 1e-9)
}

func TestRelevanceBounded(t *testing.T) {
	got := Relevance(
		"the answer repeats the the the question words",
		"which words does the answer repeat",
	)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 1.0)
}
