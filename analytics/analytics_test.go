//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/answerlog/answerlog/feedback"
	"github.com/answerlog/answerlog/record"
)

func ptr(v float64) *float64 {
	return &v
}

// evaluatedRecord builds a feedback-bearing record with all metrics present.
func evaluatedRecord(id string, accuracy, responseTime float64) *record.Interaction {
	return &record.Interaction{
		ID:                  id,
		Question:            "q " + id,
		Answer:              "a " + id,
		AccuracyScore:       ptr(accuracy),
		ResponseTimeSeconds: responseTime,
		WordCount:           10,
		BLEUScore:           ptr(0.4),
		SimilarityScore:     ptr(0.6),
		RelevanceScore:      ptr(0.3),
	}
}

func TestEvaluatedFiltersUnscored(t *testing.T) {
	records := []*record.Interaction{
		evaluatedRecord("a", 1.0, 1.0),
		{ID: "pending"},
		nil,
		evaluatedRecord("b", 0.5, 2.0),
	}
	evaluated := Evaluated(records)
	require.Len(t, evaluated, 2)
	assert.Equal(t, "a", evaluated[0].ID)
	assert.Equal(t, "b", evaluated[1].ID)
}

func TestDistribution(t *testing.T) {
	records := []*record.Interaction{
		evaluatedRecord("a", 1.0, 1.0),
		evaluatedRecord("b", 1.0, 2.0),
		evaluatedRecord("c", 0.5, 1.0),
		evaluatedRecord("d", 0.0, 1.0),
		{ID: "pending"},
	}
	distribution := Distribution(records)
	assert.Equal(t, map[string]int{
		feedback.LabelAccurate:          2,
		feedback.LabelPartiallyAccurate: 1,
		feedback.LabelInaccurate:        1,
	}, distribution)
}

func TestDistributionEmpty(t *testing.T) {
	assert.Empty(t, Distribution(nil))
	assert.Empty(t, Distribution([]*record.Interaction{{ID: "pending"}}))
}

func TestLatencyPairs(t *testing.T) {
	withMetric := evaluatedRecord("a", 1.0, 1.5)
	withoutMetric := evaluatedRecord("b", 0.5, 2.5)
	withoutMetric.BLEUScore = nil

	points, err := LatencyPairs([]*record.Interaction{withMetric, withoutMetric}, MetricBLEUScore)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 1.5, points[0].ResponseTimeSeconds)
	assert.Equal(t, 0.4, points[0].MetricValue)
	assert.Equal(t, feedback.LabelAccurate, points[0].AccuracyLabel)
}

func TestLatencyPairsUnknownMetric(t *testing.T) {
	_, err := LatencyPairs([]*record.Interaction{evaluatedRecord("a", 1.0, 1.0)}, "nonsense")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestLatencyPairsWordCountAlwaysPresent(t *testing.T) {
	rec := evaluatedRecord("a", 0.0, 0.5)
	rec.WordCount = 0
	points, err := LatencyPairs([]*record.Interaction{rec}, MetricWordCount)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Zero(t, points[0].MetricValue)
}

func TestGroupedAverages(t *testing.T) {
	first := evaluatedRecord("a", 1.0, 1.0)
	second := evaluatedRecord("b", 1.0, 3.0)
	third := evaluatedRecord("c", 0.0, 2.0)
	third.BLEUScore = nil
	third.SimilarityScore = nil

	averages := GroupedAverages([]*record.Interaction{first, second, third})
	require.Contains(t, averages, feedback.LabelAccurate)
	require.Contains(t, averages, feedback.LabelInaccurate)

	accurate := averages[feedback.LabelAccurate]
	assert.InDelta(t, 2.0, accurate[MetricResponseTime], 1e-9)
	assert.InDelta(t, 0.4, accurate[MetricBLEUScore], 1e-9)

	// Columns absent for every record in a class are omitted.
	inaccurate := averages[feedback.LabelInaccurate]
	assert.NotContains(t, inaccurate, MetricBLEUScore)
	assert.NotContains(t, inaccurate, MetricSimilarityScore)
	assert.InDelta(t, 2.0, inaccurate[MetricResponseTime], 1e-9)
}

func TestEfficiencyRankingFixedPoints(t *testing.T) {
	// 1.0 / (0.0 + 0.1) and 0.5 / (1.9 + 0.1) are exact in float64.
	fast := evaluatedRecord("fast", 1.0, 0.0)
	slow := evaluatedRecord("slow", 0.5, 1.9)

	entries := EfficiencyRanking([]*record.Interaction{slow, fast})
	require.Len(t, entries, 2)
	assert.Equal(t, "fast", entries[0].ID)
	assert.Equal(t, 10.0, entries[0].EfficiencyScore)
	assert.Equal(t, "slow", entries[1].ID)
	assert.Equal(t, 0.25, entries[1].EfficiencyScore)
}

func TestEfficiencyRankingOrder(t *testing.T) {
	records := []*record.Interaction{
		evaluatedRecord("mid", 0.5, 2.0),   // 0.5/2.1 = 0.238...
		evaluatedRecord("best", 1.0, 1.0),  // 1.0/1.1 = 0.909...
		evaluatedRecord("worst", 0.0, 0.5), // 0.0
	}
	entries := EfficiencyRanking(records)
	require.Len(t, entries, 3)
	assert.Equal(t, "best", entries[0].ID)
	assert.Equal(t, "mid", entries[1].ID)
	assert.Equal(t, "worst", entries[2].ID)
	assert.InDelta(t, 1.0/1.1, entries[0].EfficiencyScore, 1e-9)
	assert.InDelta(t, 0.5/2.1, entries[1].EfficiencyScore, 1e-9)
	assert.Zero(t, entries[2].EfficiencyScore)
}

func TestEfficiencyRankingTruncatesAndBreaksTies(t *testing.T) {
	records := make([]*record.Interaction, 0, 12)
	for i := 0; i < 12; i++ {
		// All identical scores: ordering falls back to ID ascending.
		records = append(records, evaluatedRecord(fmt.Sprintf("rec-%02d", i), 1.0, 1.0))
	}
	entries := EfficiencyRanking(records)
	require.Len(t, entries, 10)
	assert.Equal(t, "rec-00", entries[0].ID)
	assert.Equal(t, "rec-09", entries[9].ID)
}

func TestEfficiencyRankingEmpty(t *testing.T) {
	assert.Empty(t, EfficiencyRanking(nil))
	assert.Empty(t, EfficiencyRanking([]*record.Interaction{{ID: "pending"}}))
}
