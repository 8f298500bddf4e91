//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Package history filters and paginates the interaction record collection for display.
package history

import (
	"github.com/answerlog/answerlog/record"
)

// defaultPageSize is the number of records per page.
const defaultPageSize = 5

// Options configure pagination.
type Options struct {
	PageSize int // PageSize is the number of records per page.
}

// NewOptions constructs Options with the default values.
func NewOptions(opts ...Option) *Options {
	options := &Options{
		PageSize: defaultPageSize,
	}
	for _, o := range opts {
		o(options)
	}
	if options.PageSize <= 0 {
		options.PageSize = defaultPageSize
	}
	return options
}

// Option is a functional option for configuring pagination.
type Option func(*Options)

// WithPageSize sets the number of records per page.
func WithPageSize(size int) Option {
	return func(o *Options) {
		o.PageSize = size
	}
}

// Page is one bounded slice of the filtered record collection.
type Page struct {
	// Records are the records on this page, in insertion order.
	Records []*record.Interaction `json:"records"`
	// Number is the clamped 1-indexed page number. Zero when no records match.
	Number int `json:"number"`
	// TotalPages is the number of pages available.
	TotalPages int `json:"totalPages"`
	// TotalRecords is the size of the filtered collection.
	TotalRecords int `json:"totalRecords"`
	// Start is the 1-indexed position of the first record on this page.
	Start int `json:"start"`
	// End is the 1-indexed position of the last record on this page.
	End int `json:"end"`
}

// Empty reports whether the filtered collection had no records. This is the
// explicit empty-result state, distinct from "no filter applied".
func (p Page) Empty() bool {
	return p.TotalRecords == 0
}

// Filter returns the records whose accuracy score matches exactly. A nil
// accuracy means no filter: every record is returned. Exact float comparison
// is safe because the classifier only ever writes the three canonical values.
func Filter(records []*record.Interaction, accuracy *float64) []*record.Interaction {
	if accuracy == nil {
		return records
	}
	filtered := make([]*record.Interaction, 0, len(records))
	for _, rec := range records {
		if rec != nil && rec.AccuracyScore != nil && *rec.AccuracyScore == *accuracy {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// Paginate slices the filtered collection into the requested 1-indexed page.
// The page number is clamped into [1, totalPages]: a request beyond the last
// page returns the last page rather than failing.
func Paginate(filtered []*record.Interaction, page int, opt ...Option) Page {
	opts := NewOptions(opt...)
	total := len(filtered)
	if total == 0 {
		return Page{Records: []*record.Interaction{}}
	}
	totalPages := (total + opts.PageSize - 1) / opts.PageSize
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * opts.PageSize
	end := start + opts.PageSize
	if end > total {
		end = total
	}
	return Page{
		Records:      filtered[start:end],
		Number:       page,
		TotalPages:   totalPages,
		TotalRecords: total,
		Start:        start + 1,
		End:          end,
	}
}
