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

	"github.com/hashicorp/go-multierror"

	"github.com/answerlog/answerlog/record"
)

// Report bundles every analytics view over one record collection.
//
// Views are computed independently: a view with zero eligible records leaves
// its field empty and contributes an ErrUnavailable-wrapped entry to the
// returned error, without aborting the sibling views.
type Report struct {
	// EvaluatedCount is the number of feedback-bearing records considered.
	EvaluatedCount int `json:"evaluatedCount"`
	// Distribution counts records per accuracy class.
	Distribution map[string]int `json:"distribution,omitempty"`
	// LatencyPairs holds latency/metric triples per selectable metric.
	LatencyPairs map[string][]LatencyPoint `json:"latencyPairs,omitempty"`
	// Stats holds descriptive statistics per metric column.
	Stats map[string]ColumnStats `json:"stats,omitempty"`
	// GroupedAverages holds per-accuracy-class column means.
	GroupedAverages map[string]map[string]float64 `json:"groupedAverages,omitempty"`
	// Efficiency is the top records by efficiency score.
	Efficiency []EfficiencyEntry `json:"efficiency,omitempty"`
}

// BuildReport computes all analytics views over the record collection. The
// returned report is always usable; the error, when non-nil, is a
// multierror listing the views that had no eligible data.
func BuildReport(records []*record.Interaction) (*Report, error) {
	evaluated := Evaluated(records)
	report := &Report{EvaluatedCount: len(evaluated)}
	if len(evaluated) == 0 {
		return report, multierror.Append(nil,
			fmt.Errorf("%w: no evaluated records", ErrUnavailable))
	}

	var errs *multierror.Error
	report.Distribution = Distribution(evaluated)

	report.LatencyPairs = make(map[string][]LatencyPoint)
	for _, metric := range PairMetrics() {
		points, err := LatencyPairs(evaluated, metric)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if len(points) == 0 {
			errs = multierror.Append(errs,
				fmt.Errorf("%w: no %s values for latency pairing", ErrUnavailable, metric))
			continue
		}
		report.LatencyPairs[metric] = points
	}

	report.Stats = Describe(evaluated)
	if len(report.Stats) == 0 {
		errs = multierror.Append(errs,
			fmt.Errorf("%w: no metric columns for statistics", ErrUnavailable))
	}

	report.GroupedAverages = GroupedAverages(evaluated)

	report.Efficiency = EfficiencyRanking(evaluated)
	if len(report.Efficiency) == 0 {
		errs = multierror.Append(errs,
			fmt.Errorf("%w: no records for efficiency ranking", ErrUnavailable))
	}

	return report, errs.ErrorOrNil()
}
