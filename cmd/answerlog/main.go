//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Command answerlog records question/answer exchanges, scores them, and
// prints the analytics views over the accumulated history.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/answerlog/answerlog/generate"
	"github.com/answerlog/answerlog/generate/openai"
	"github.com/answerlog/answerlog/log"
	"github.com/answerlog/answerlog/record"
	"github.com/answerlog/answerlog/record/inmemory"
	"github.com/answerlog/answerlog/record/local"
	"github.com/answerlog/answerlog/record/mysql"
	"github.com/answerlog/answerlog/sample"
	"github.com/answerlog/answerlog/scoring"
	"github.com/answerlog/answerlog/service"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Fatalf("answerlog: %v", err)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log.SetLevel(cfg.LogLevel)

	store, err := buildStore(cfg)
	if err != nil {
		return err
	}
	svc, err := service.New(buildGenerator(cfg), store, service.WithPageSize(cfg.PageSize))
	if err != nil {
		return err
	}

	if cfg.Seed {
		count, err := store.Count(ctx)
		if err != nil {
			return err
		}
		if count == 0 {
			seeded, err := sample.Seed(ctx, store)
			if err != nil {
				return fmt.Errorf("seed sample records: %w", err)
			}
			log.Infof("seeded %d sample interactions", seeded)
		}
	}

	if question := strings.TrimSpace(strings.Join(args, " ")); question != "" {
		interaction, err := svc.Ask(ctx, question)
		if err != nil {
			return err
		}
		fmt.Printf("Q: %s\nA: %s\n(interaction %s, %.2fs)\n\n",
			interaction.Question, interaction.Answer,
			interaction.ID, interaction.ResponseTimeSeconds)
	}

	if err := printReport(ctx, svc); err != nil {
		return err
	}
	return printHistory(ctx, svc)
}

func buildStore(cfg *config) (record.Store, error) {
	switch cfg.StoreBackend {
	case "inmemory":
		return inmemory.New(), nil
	case "local":
		return local.New(
			record.WithBaseDir(cfg.BaseDir),
			record.WithAppName(cfg.AppName),
		), nil
	case "mysql":
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("mysql store requires ANSWERLOG_MYSQL_DSN")
		}
		return mysql.New(
			mysql.WithDSN(cfg.MySQLDSN),
			mysql.WithAppName(cfg.AppName),
		)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func buildGenerator(cfg *config) generate.Generator {
	var opts []openai.Option
	if cfg.OpenAIModel != "" {
		opts = append(opts, openai.WithModel(cfg.OpenAIModel))
	}
	if cfg.OpenAIBaseURL != "" {
		clientConfig := goopenai.DefaultConfig(cfg.OpenAIAPIKey)
		clientConfig.BaseURL = cfg.OpenAIBaseURL
		return openai.NewWithConfig(clientConfig, opts...)
	}
	return openai.New(cfg.OpenAIAPIKey, opts...)
}

func printReport(ctx context.Context, svc *service.Service) error {
	report, err := svc.Analytics(ctx)
	if report == nil {
		return err
	}
	if err != nil {
		log.Warnf("partial analytics: %v", err)
	}

	fmt.Printf("=== Analytics (%d evaluated) ===\n", report.EvaluatedCount)

	fmt.Println("Accuracy distribution:")
	for _, label := range sortedKeys(report.Distribution) {
		fmt.Printf("  %-20s %d\n", label, report.Distribution[label])
	}

	fmt.Println("Metric statistics:")
	for _, column := range sortedKeys(report.Stats) {
		s := report.Stats[column]
		fmt.Printf("  %-20s count=%d mean=%.3f std=%.3f min=%.3f median=%.3f max=%.3f\n",
			column, s.Count, s.Mean, s.StdDev, s.Min, s.Median, s.Max)
	}

	fmt.Println("Averages by accuracy:")
	for _, label := range sortedKeys(report.GroupedAverages) {
		columns := report.GroupedAverages[label]
		parts := make([]string, 0, len(columns))
		for _, column := range sortedKeys(columns) {
			parts = append(parts, fmt.Sprintf("%s=%.3f", column, columns[column]))
		}
		fmt.Printf("  %-20s %s\n", label, strings.Join(parts, " "))
	}

	fmt.Println("Top efficiency:")
	for _, entry := range report.Efficiency {
		fmt.Printf("  %-36s accuracy=%.1f time=%.2fs efficiency=%.3f\n",
			entry.ID, entry.AccuracyScore, entry.ResponseTimeSeconds, entry.EfficiencyScore)
	}

	descriptions := scoring.Descriptions()
	fmt.Println("Metric guide:")
	for _, name := range sortedKeys(descriptions) {
		fmt.Printf("  %-18s %s\n", name, descriptions[name])
	}
	fmt.Println()
	return nil
}

func printHistory(ctx context.Context, svc *service.Service) error {
	page, err := svc.History(ctx, nil, 1)
	if err != nil {
		return err
	}
	if page.Empty() {
		fmt.Println("No interactions recorded yet.")
		return nil
	}
	fmt.Printf("=== History (page %d of %d, records %d-%d of %d) ===\n",
		page.Number, page.TotalPages, page.Start, page.End, page.TotalRecords)
	for _, rec := range page.Records {
		fmt.Printf("[%s] %s\n", rec.ID, rec.Question)
		fmt.Printf("  %s\n", rec.Answer)
		if rec.HasFeedback() {
			fmt.Printf("  feedback: %s (accuracy %.1f)\n", rec.FeedbackLabel, *rec.AccuracyScore)
		}
	}
	return nil
}

func sortedKeys[M map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
