//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Package sample seeds a record store with evaluation data so that the
// analytics views have something to show before any live traffic arrives.
package sample

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/answerlog/answerlog/epochtime"
	"github.com/answerlog/answerlog/record"
	"github.com/answerlog/answerlog/scoring"
)

const defaultParallelism = 4

// Options configure seeding.
type Options struct {
	Parallelism int // Parallelism is the scoring pool size.
}

// Option is a functional option for configuring seeding.
type Option func(*Options)

// WithParallelism sets the scoring pool size.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

type seedEntry struct {
	question            string
	answer              string
	correctAnswer       string
	feedbackLabel       string
	accuracyScore       float64
	responseTimeSeconds float64
}

// entries mimic a short evaluation session with mixed feedback outcomes.
var entries = []seedEntry{
	{
		question:            "What is the capital of France?",
		answer:              "The capital of France is Paris.",
		correctAnswer:       "Paris is the capital of France.",
		feedbackLabel:       "Accurate",
		accuracyScore:       1.0,
		responseTimeSeconds: 0.8,
	},
	{
		question:            "Who wrote the novel 1984?",
		answer:              "1984 was written by George Orwell and published in 1949.",
		correctAnswer:       "George Orwell wrote 1984.",
		feedbackLabel:       "Accurate",
		accuracyScore:       1.0,
		responseTimeSeconds: 1.4,
	},
	{
		question:            "How many moons does Mars have?",
		answer:              "Mars has two moons, Phobos and Deimos.",
		correctAnswer:       "Mars has two moons: Phobos and Deimos.",
		feedbackLabel:       "Accurate",
		accuracyScore:       1.0,
		responseTimeSeconds: 0.6,
	},
	{
		question:            "What is the boiling point of water at sea level?",
		answer:              "Water boils at 90 degrees Celsius at sea level.",
		correctAnswer:       "Water boils at 100 degrees Celsius at sea level.",
		feedbackLabel:       "Partially accurate: wrong temperature",
		accuracyScore:       0.5,
		responseTimeSeconds: 1.1,
	},
	{
		question:            "When did the first human land on the Moon?",
		answer:              "The first Moon landing happened in 1969 during the Apollo program.",
		correctAnswer:       "Apollo 11 landed the first humans on the Moon in July 1969.",
		feedbackLabel:       "Partially accurate: missing the mission name",
		accuracyScore:       0.5,
		responseTimeSeconds: 2.3,
	},
	{
		question:            "What is the largest planet in the solar system?",
		answer:              "Saturn is the largest planet in the solar system.",
		correctAnswer:       "Jupiter is the largest planet in the solar system.",
		feedbackLabel:       "Inaccurate: the answer names the wrong planet",
		accuracyScore:       0.0,
		responseTimeSeconds: 0.9,
	},
	{
		question:            "Which element has the chemical symbol Au?",
		answer:              "Au is the chemical symbol for gold.",
		correctAnswer:       "Gold has the chemical symbol Au.",
		feedbackLabel:       "Accurate",
		accuracyScore:       1.0,
		responseTimeSeconds: 0.7,
	},
	{
		question:            "What language has the most native speakers?",
		answer:              "English has the most native speakers worldwide.",
		correctAnswer:       "Mandarin Chinese has the most native speakers.",
		feedbackLabel:       "Inaccurate",
		accuracyScore:       0.0,
		responseTimeSeconds: 1.8,
	},
	{
		question:            "How long does light take to travel from the Sun to Earth?",
		answer:              "Sunlight takes about eight minutes to reach Earth.",
		correctAnswer:       "Light from the Sun takes about 8 minutes and 20 seconds to reach Earth.",
		feedbackLabel:       "Accurate",
		accuracyScore:       1.0,
		responseTimeSeconds: 1.2,
	},
	{
		question:            "What is the smallest prime number?",
		answer:              "The smallest prime number is 1.",
		correctAnswer:       "The smallest prime number is 2.",
		feedbackLabel:       "Inaccurate: 1 is not prime",
		accuracyScore:       0.0,
		responseTimeSeconds: 0.5,
	},
	{
		question:            "Who painted the Mona Lisa?",
		answer:              "The Mona Lisa was painted by Leonardo da Vinci.",
		correctAnswer:       "Leonardo da Vinci painted the Mona Lisa.",
		feedbackLabel:       "Accurate",
		accuracyScore:       1.0,
		responseTimeSeconds: 1.0,
	},
	{
		question:            "What is the longest river in the world?",
		answer:              "The Nile is usually considered the longest river in the world.",
		correctAnswer:       "The Nile is generally regarded as the longest river, though some measurements favor the Amazon.",
		feedbackLabel:       "Partially accurate: does not mention the Amazon dispute",
		accuracyScore:       0.5,
		responseTimeSeconds: 1.6,
	},
}

type scoreParam struct {
	idx     int
	records []*record.Interaction
	scorer  *scoring.Scorer
	wg      *sync.WaitGroup
}

func (p *scoreParam) reset() {
	p.idx = 0
	p.records = nil
	p.scorer = nil
	p.wg = nil
}

var scoreParamPool = &sync.Pool{
	New: func() any { return new(scoreParam) },
}

func createScorePool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*scoreParam)
		if !ok {
			panic("sample score pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			scoreParamPool.Put(param)
		}()
		rec := param.records[param.idx]
		param.scorer.ScoreGeneration(rec)
		param.scorer.ScoreReference(rec)
	})
	if err != nil {
		return nil, fmt.Errorf("create sample score pool: %w", err)
	}
	return pool, nil
}

// Seed scores the sample records concurrently and appends them to the store
// in their original order. It returns the number of records appended.
func Seed(ctx context.Context, store record.Store, opt ...Option) (int, error) {
	if store == nil {
		return 0, errors.New("store is nil")
	}
	opts := &Options{Parallelism: defaultParallelism}
	for _, o := range opt {
		o(opts)
	}

	records := make([]*record.Interaction, len(entries))
	for i, e := range entries {
		score := e.accuracyScore
		records[i] = &record.Interaction{
			Timestamp:           epochtime.Now(),
			Question:            e.question,
			Answer:              e.answer,
			CorrectAnswer:       e.correctAnswer,
			FeedbackLabel:       e.feedbackLabel,
			AccuracyScore:       &score,
			ResponseTimeSeconds: e.responseTimeSeconds,
		}
	}

	pool, err := createScorePool(opts.Parallelism)
	if err != nil {
		return 0, err
	}
	defer pool.Release()

	scorer := scoring.NewScorer()
	var wg sync.WaitGroup
	for i := range records {
		wg.Add(1)
		param := scoreParamPool.Get().(*scoreParam)
		param.idx = i
		param.records = records
		param.scorer = scorer
		param.wg = &wg
		if err := pool.Invoke(param); err != nil {
			wg.Done()
			param.reset()
			scoreParamPool.Put(param)
			return 0, fmt.Errorf("invoke sample score pool: %w", err)
		}
	}
	wg.Wait()

	for i, rec := range records {
		if _, err := store.Append(ctx, rec); err != nil {
			return i, fmt.Errorf("append sample record: %w", err)
		}
	}
	return len(records), nil
}
