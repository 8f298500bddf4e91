//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Package analytics aggregates scored interaction records into audit views.
//
// Every view is a pure fold over the input collection and only considers
// records that carry human feedback. Views are independent: a view with no
// eligible data reports its own unavailable state without affecting siblings.
package analytics

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/answerlog/answerlog/feedback"
	"github.com/answerlog/answerlog/record"
)

// Metric column identifiers accepted by the per-metric views.
const (
	MetricBLEUScore       = "bleuScore"
	MetricSimilarityScore = "similarityScore"
	MetricRelevanceScore  = "relevanceScore"
	MetricWordCount       = "wordCount"
	MetricResponseTime    = "responseTimeSeconds"
)

// efficiencyOffset keeps the efficiency score finite at zero latency and
// caps the maximum attainable score at accuracy/0.1.
const efficiencyOffset = 0.1

// rankingSize is the number of entries the efficiency ranking returns.
const rankingSize = 10

var (
	// ErrUnavailable reports that a view has zero eligible records.
	ErrUnavailable = errors.New("analytics view unavailable")
	// ErrUnknownMetric reports a metric name outside the fixed column set.
	ErrUnknownMetric = errors.New("unknown metric")
)

// PairMetrics lists the metric columns selectable for latency pairing.
func PairMetrics() []string {
	return []string{MetricBLEUScore, MetricSimilarityScore, MetricRelevanceScore, MetricWordCount}
}

// statColumns lists the metric columns covered by descriptive statistics and
// grouped averages, in display order.
var statColumns = []string{
	MetricResponseTime,
	MetricBLEUScore,
	MetricSimilarityScore,
	MetricWordCount,
	MetricRelevanceScore,
}

// Evaluated returns the records carrying an accuracy score. All analytics
// views operate on this subset only; records without feedback are excluded
// outright, not approximated.
func Evaluated(records []*record.Interaction) []*record.Interaction {
	out := make([]*record.Interaction, 0, len(records))
	for _, rec := range records {
		if rec != nil && rec.AccuracyScore != nil {
			out = append(out, rec)
		}
	}
	return out
}

// accuracyLabel maps an accuracy score to its class name for display.
func accuracyLabel(score float64) string {
	if label, ok := feedback.LabelForScore(score); ok {
		return label
	}
	return strconv.FormatFloat(score, 'f', 1, 64)
}

// metricValue extracts one metric column value from a record. The second
// return value is false when the value is absent for this record.
func metricValue(rec *record.Interaction, metric string) (float64, bool) {
	switch metric {
	case MetricBLEUScore:
		if rec.BLEUScore == nil {
			return 0, false
		}
		return *rec.BLEUScore, true
	case MetricSimilarityScore:
		if rec.SimilarityScore == nil {
			return 0, false
		}
		return *rec.SimilarityScore, true
	case MetricRelevanceScore:
		if rec.RelevanceScore == nil {
			return 0, false
		}
		return *rec.RelevanceScore, true
	case MetricWordCount:
		return float64(rec.WordCount), true
	case MetricResponseTime:
		return rec.ResponseTimeSeconds, true
	default:
		return 0, false
	}
}

// validMetric reports whether name is a known metric column.
func validMetric(name string) bool {
	switch name {
	case MetricBLEUScore, MetricSimilarityScore, MetricRelevanceScore,
		MetricWordCount, MetricResponseTime:
		return true
	}
	return false
}

// Distribution counts evaluated records per accuracy class. An empty
// collection yields an empty distribution, not an error.
func Distribution(records []*record.Interaction) map[string]int {
	distribution := make(map[string]int)
	for _, rec := range Evaluated(records) {
		distribution[accuracyLabel(*rec.AccuracyScore)]++
	}
	return distribution
}

// LatencyPoint pairs the response latency of one record with one of its
// metric values, tagged with the record's accuracy class.
type LatencyPoint struct {
	// ResponseTimeSeconds is the generation latency.
	ResponseTimeSeconds float64 `json:"responseTimeSeconds"`
	// MetricValue is the selected metric's value for the record.
	MetricValue float64 `json:"metricValue"`
	// AccuracyLabel is the accuracy class of the record.
	AccuracyLabel string `json:"accuracyLabel"`
}

// LatencyPairs produces (latency, metric, accuracy class) triples for the
// selected metric. Records missing the metric value are dropped from this
// view only.
func LatencyPairs(records []*record.Interaction, metric string) ([]LatencyPoint, error) {
	if !validMetric(metric) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
	}
	var points []LatencyPoint
	for _, rec := range Evaluated(records) {
		value, ok := metricValue(rec, metric)
		if !ok {
			continue
		}
		points = append(points, LatencyPoint{
			ResponseTimeSeconds: rec.ResponseTimeSeconds,
			MetricValue:         value,
			AccuracyLabel:       accuracyLabel(*rec.AccuracyScore),
		})
	}
	return points, nil
}

// GroupedAverages returns the mean of each metric column grouped by accuracy
// class. Classes with zero records and columns with zero present values are
// omitted entirely.
func GroupedAverages(records []*record.Interaction) map[string]map[string]float64 {
	type sums struct {
		total map[string]float64
		count map[string]int
	}
	groups := make(map[string]*sums)
	for _, rec := range Evaluated(records) {
		label := accuracyLabel(*rec.AccuracyScore)
		group, ok := groups[label]
		if !ok {
			group = &sums{total: make(map[string]float64), count: make(map[string]int)}
			groups[label] = group
		}
		for _, column := range statColumns {
			value, present := metricValue(rec, column)
			if !present {
				continue
			}
			group.total[column] += value
			group.count[column]++
		}
	}
	averages := make(map[string]map[string]float64, len(groups))
	for label, group := range groups {
		columns := make(map[string]float64, len(group.count))
		for column, count := range group.count {
			columns[column] = group.total[column] / float64(count)
		}
		averages[label] = columns
	}
	return averages
}

// EfficiencyEntry ranks one record by accuracy per unit latency.
type EfficiencyEntry struct {
	// ID identifies the record.
	ID string `json:"id"`
	// AccuracyScore is the record's accuracy score.
	AccuracyScore float64 `json:"accuracyScore"`
	// ResponseTimeSeconds is the generation latency.
	ResponseTimeSeconds float64 `json:"responseTimeSeconds"`
	// EfficiencyScore is accuracyScore / (responseTimeSeconds + 0.1).
	EfficiencyScore float64 `json:"efficiencyScore"`
}

// EfficiencyRanking returns the top 10 evaluated records by efficiency score
// descending, ties broken by record ID ascending for determinism.
func EfficiencyRanking(records []*record.Interaction) []EfficiencyEntry {
	evaluated := Evaluated(records)
	entries := make([]EfficiencyEntry, 0, len(evaluated))
	for _, rec := range evaluated {
		entries = append(entries, EfficiencyEntry{
			ID:                  rec.ID,
			AccuracyScore:       *rec.AccuracyScore,
			ResponseTimeSeconds: rec.ResponseTimeSeconds,
			EfficiencyScore:     *rec.AccuracyScore / (rec.ResponseTimeSeconds + efficiencyOffset),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].EfficiencyScore != entries[j].EfficiencyScore {
			return entries[i].EfficiencyScore > entries[j].EfficiencyScore
		}
		return entries[i].ID < entries[j].ID
	})
	if len(entries) > rankingSize {
		entries = entries[:rankingSize]
	}
	return entries
}
