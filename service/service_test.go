//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/answerlog/answerlog/feedback"
	"github.com/answerlog/answerlog/generate"
	"github.com/answerlog/answerlog/record/inmemory"
)

type fakeGenerator struct {
	answer              string
	responseTimeSeconds float64
	err                 error
	calls               int
}

func (f *fakeGenerator) Generate(_ context.Context, _ string) (*generate.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &generate.Result{
		Answer:              f.answer,
		ResponseTimeSeconds: f.responseTimeSeconds,
	}, nil
}

func newTestService(t *testing.T, gen *fakeGenerator, opt ...Option) *Service {
	t.Helper()
	svc, err := New(gen, inmemory.New(), opt...)
	require.NoError(t, err)
	return svc
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, inmemory.New())
	assert.Error(t, err)

	_, err = New(&fakeGenerator{}, nil)
	assert.Error(t, err)
}

func TestAsk(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{
		answer:              "The capital of France is Paris.",
		responseTimeSeconds: 1.2,
	}
	svc := newTestService(t, gen)

	interaction, err := svc.Ask(ctx, "What is the capital of France?")
	require.NoError(t, err)
	assert.NotEmpty(t, interaction.ID)
	assert.Equal(t, gen.answer, interaction.Answer)
	assert.Equal(t, 1.2, interaction.ResponseTimeSeconds)
	assert.Equal(t, 6, interaction.WordCount)
	require.NotNil(t, interaction.RelevanceScore)
	require.NotNil(t, interaction.Timestamp)

	// The record is stored without feedback and without reference metrics.
	assert.Nil(t, interaction.AccuracyScore)
	assert.Nil(t, interaction.BLEUScore)
	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAskEmptyQuestion(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newTestService(t, gen)

	_, err := svc.Ask(context.Background(), "   ")
	require.Error(t, err)
	assert.Zero(t, gen.calls)
}

func TestAskGenerationFailureStoresNothing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeGenerator{err: errors.New("backend down")})

	_, err := svc.Ask(ctx, "a question")
	require.Error(t, err)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSubmitFeedback(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{answer: "Water boils at 90 degrees.", responseTimeSeconds: 0.9}
	svc := newTestService(t, gen)

	asked, err := svc.Ask(ctx, "What is the boiling point of water?")
	require.NoError(t, err)

	updated, err := svc.SubmitFeedback(ctx, asked.ID,
		feedback.LabelPartiallyAccurate, "wrong temperature",
		"Water boils at 100 degrees Celsius.")
	require.NoError(t, err)

	assert.Equal(t, "Partially accurate: wrong temperature", updated.FeedbackLabel)
	require.NotNil(t, updated.AccuracyScore)
	assert.Equal(t, 0.5, *updated.AccuracyScore)
	assert.True(t, updated.HasFeedback())

	// Reference metrics appear once the correct answer is known.
	require.NotNil(t, updated.BLEUScore)
	require.NotNil(t, updated.SimilarityScore)

	all, err := svc.History(ctx, nil, 1)
	require.NoError(t, err)
	require.Len(t, all.Records, 1)
	assert.True(t, all.Records[0].HasFeedback())
}

func TestSubmitFeedbackInvalidLabel(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeGenerator{answer: "a"})

	asked, err := svc.Ask(ctx, "a question")
	require.NoError(t, err)

	_, err = svc.SubmitFeedback(ctx, asked.ID, "Mostly fine", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, feedback.ErrInvalidLabel)
}

func TestSubmitFeedbackUnknownID(t *testing.T) {
	svc := newTestService(t, &fakeGenerator{answer: "a"})
	_, err := svc.SubmitFeedback(context.Background(), "ghost", feedback.LabelAccurate, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSubmitFeedbackIsTerminal(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeGenerator{answer: "a"})

	asked, err := svc.Ask(ctx, "a question")
	require.NoError(t, err)

	_, err = svc.SubmitFeedback(ctx, asked.ID, feedback.LabelAccurate, "", "")
	require.NoError(t, err)

	_, err = svc.SubmitFeedback(ctx, asked.ID, feedback.LabelInaccurate, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already has feedback")
}

func TestSubmitFeedbackWithoutCorrectAnswer(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeGenerator{answer: "an answer"})

	asked, err := svc.Ask(ctx, "a question")
	require.NoError(t, err)

	updated, err := svc.SubmitFeedback(ctx, asked.ID, feedback.LabelAccurate, "", "")
	require.NoError(t, err)
	assert.True(t, updated.HasFeedback())
	assert.Nil(t, updated.BLEUScore)
	assert.Nil(t, updated.SimilarityScore)
}

func TestHistoryFilterAndPagination(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeGenerator{answer: "an answer"}, WithPageSize(3))

	ids := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		asked, err := svc.Ask(ctx, "a question")
		require.NoError(t, err)
		ids = append(ids, asked.ID)
	}
	for _, id := range ids[:4] {
		_, err := svc.SubmitFeedback(ctx, id, feedback.LabelAccurate, "", "")
		require.NoError(t, err)
	}

	page, err := svc.History(ctx, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 7, page.TotalRecords)
	assert.Len(t, page.Records, 3)

	accurate := 1.0
	filtered, err := svc.History(ctx, &accurate, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, filtered.TotalRecords)
	assert.Equal(t, 2, filtered.TotalPages)
}

func TestAnalytics(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeGenerator{
		answer:              "The capital of France is Paris.",
		responseTimeSeconds: 1.0,
	})

	asked, err := svc.Ask(ctx, "What is the capital of France?")
	require.NoError(t, err)
	_, err = svc.SubmitFeedback(ctx, asked.ID,
		feedback.LabelAccurate, "", "Paris is the capital of France.")
	require.NoError(t, err)

	report, err := svc.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.EvaluatedCount)
	assert.Equal(t, 1, report.Distribution[feedback.LabelAccurate])
	require.Len(t, report.Efficiency, 1)
	assert.Equal(t, asked.ID, report.Efficiency[0].ID)
}

func TestAnalyticsEmpty(t *testing.T) {
	svc := newTestService(t, &fakeGenerator{})
	report, err := svc.Analytics(context.Background())
	require.NotNil(t, report)
	assert.Zero(t, report.EvaluatedCount)
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeGenerator{answer: "a"})

	_, err := svc.Ask(ctx, "a question")
	require.NoError(t, err)

	cleared, err := svc.Clear(ctx)
	require.NoError(t, err)
	assert.True(t, cleared)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
