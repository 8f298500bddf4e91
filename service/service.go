//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Package service orchestrates generation, scoring, feedback, and analytics
// over a record store.
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/answerlog/answerlog/analytics"
	"github.com/answerlog/answerlog/epochtime"
	"github.com/answerlog/answerlog/feedback"
	"github.com/answerlog/answerlog/generate"
	"github.com/answerlog/answerlog/history"
	"github.com/answerlog/answerlog/log"
	"github.com/answerlog/answerlog/record"
	"github.com/answerlog/answerlog/scoring"
)

// Service wires the generation backend, the record scorer, and the store
// into the ask/feedback/audit flow. It holds no per-question session state;
// the presentation layer owns that.
type Service struct {
	generator generate.Generator
	store     record.Store
	scorer    *scoring.Scorer
	opts      *Options
}

// Options configure the service.
type Options struct {
	PageSize int // PageSize is the history page size.
}

// Option is a functional option for configuring the service.
type Option func(*Options)

// WithPageSize sets the history page size.
func WithPageSize(size int) Option {
	return func(o *Options) {
		o.PageSize = size
	}
}

// New creates a service over the given generation backend and store.
func New(generator generate.Generator, store record.Store, opt ...Option) (*Service, error) {
	if generator == nil {
		return nil, errors.New("generator is nil")
	}
	if store == nil {
		return nil, errors.New("store is nil")
	}
	opts := &Options{}
	for _, o := range opt {
		o(opts)
	}
	return &Service{
		generator: generator,
		store:     store,
		scorer:    scoring.NewScorer(),
		opts:      opts,
	}, nil
}

// Ask sends the question to the generation backend, scores the answer, and
// appends the resulting record. A generation failure creates no record.
func (s *Service) Ask(ctx context.Context, question string) (*record.Interaction, error) {
	if strings.TrimSpace(question) == "" {
		return nil, errors.New("question is empty")
	}
	result, err := s.generator.Generate(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}
	interaction := &record.Interaction{
		Timestamp:           epochtime.Now(),
		Question:            question,
		Answer:              result.Answer,
		ResponseTimeSeconds: result.ResponseTimeSeconds,
	}
	s.scorer.ScoreGeneration(interaction)
	id, err := s.store.Append(ctx, interaction)
	if err != nil {
		return nil, fmt.Errorf("append interaction: %w", err)
	}
	interaction.ID = id
	log.Debugf("recorded interaction %s (%.2fs, %d words)",
		id, interaction.ResponseTimeSeconds, interaction.WordCount)
	return interaction, nil
}

// SubmitFeedback attaches human feedback to a stored record, classifies the
// label into an accuracy score, and recomputes the reference-dependent
// metrics when a correct answer is supplied. The record reaches its terminal
// state: further feedback is rejected.
func (s *Service) SubmitFeedback(
	ctx context.Context, id, label, comment, correctAnswer string,
) (*record.Interaction, error) {
	score, err := feedback.Classify(label)
	if err != nil {
		return nil, err
	}
	interaction, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if interaction.HasFeedback() {
		return nil, fmt.Errorf("interaction %s already has feedback", id)
	}
	interaction.FeedbackLabel = feedback.Combine(label, comment)
	interaction.AccuracyScore = &score
	interaction.CorrectAnswer = correctAnswer
	s.scorer.ScoreReference(interaction)
	if err := s.store.Update(ctx, interaction); err != nil {
		return nil, fmt.Errorf("update interaction %s: %w", id, err)
	}
	return interaction, nil
}

// find loads one record by ID.
func (s *Service) find(ctx context.Context, id string) (*record.Interaction, error) {
	if id == "" {
		return nil, errors.New("interaction id is empty")
	}
	records, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	for _, rec := range records {
		if rec != nil && rec.ID == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: interaction %s", os.ErrNotExist, id)
}

// History returns one page of the record collection, optionally filtered by
// an exact accuracy score.
func (s *Service) History(ctx context.Context, accuracy *float64, page int) (history.Page, error) {
	records, err := s.store.All(ctx)
	if err != nil {
		return history.Page{}, fmt.Errorf("load interactions: %w", err)
	}
	var opt []history.Option
	if s.opts.PageSize > 0 {
		opt = append(opt, history.WithPageSize(s.opts.PageSize))
	}
	return history.Paginate(history.Filter(records, accuracy), page, opt...), nil
}

// Analytics computes the full analytics report over the record collection.
func (s *Service) Analytics(ctx context.Context) (*analytics.Report, error) {
	records, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	return analytics.BuildReport(records)
}

// Count returns the number of stored records.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// Clear removes every stored record.
func (s *Service) Clear(ctx context.Context) (bool, error) {
	cleared, err := s.store.Clear(ctx)
	if err != nil {
		return false, fmt.Errorf("clear interactions: %w", err)
	}
	log.Infof("cleared interaction history")
	return cleared, nil
}
