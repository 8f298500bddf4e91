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
	"math"
	"sort"

	"github.com/answerlog/answerlog/record"
)

// ColumnStats holds descriptive statistics for one metric column.
type ColumnStats struct {
	// Count is the number of present values.
	Count int `json:"count"`
	// Mean is the arithmetic mean.
	Mean float64 `json:"mean"`
	// StdDev is the sample standard deviation. Zero when fewer than two values exist.
	StdDev float64 `json:"stdDev"`
	// Min is the smallest value.
	Min float64 `json:"min"`
	// Q1 is the first quartile (25th percentile).
	Q1 float64 `json:"q1"`
	// Median is the second quartile (50th percentile).
	Median float64 `json:"median"`
	// Q3 is the third quartile (75th percentile).
	Q3 float64 `json:"q3"`
	// Max is the largest value.
	Max float64 `json:"max"`
}

// Describe computes descriptive statistics for every metric column with at
// least one present value over the evaluated records. Columns with zero
// present values are omitted entirely.
func Describe(records []*record.Interaction) map[string]ColumnStats {
	evaluated := Evaluated(records)
	stats := make(map[string]ColumnStats)
	for _, column := range statColumns {
		values := make([]float64, 0, len(evaluated))
		for _, rec := range evaluated {
			if value, ok := metricValue(rec, column); ok {
				values = append(values, value)
			}
		}
		if len(values) == 0 {
			continue
		}
		stats[column] = describeColumn(values)
	}
	return stats
}

// describeColumn computes statistics for one non-empty value slice.
func describeColumn(values []float64) ColumnStats {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	var stdDev float64
	if len(sorted) > 1 {
		var squares float64
		for _, v := range sorted {
			diff := v - mean
			squares += diff * diff
		}
		stdDev = math.Sqrt(squares / float64(len(sorted)-1))
	}

	return ColumnStats{
		Count:  len(sorted),
		Mean:   mean,
		StdDev: stdDev,
		Min:    sorted[0],
		Q1:     percentile(sorted, 0.25),
		Median: percentile(sorted, 0.50),
		Q3:     percentile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// percentile computes the p-th percentile of a sorted slice using linear
// interpolation between closest ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	fraction := rank - float64(lower)
	return sorted[lower] + fraction*(sorted[upper]-sorted[lower])
}
