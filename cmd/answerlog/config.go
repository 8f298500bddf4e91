//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type config struct {
	// Storage
	StoreBackend string `env:"ANSWERLOG_STORE" envDefault:"inmemory"` // inmemory, local, mysql
	BaseDir      string `env:"ANSWERLOG_BASE_DIR" envDefault:"."`
	AppName      string `env:"ANSWERLOG_APP_NAME" envDefault:"answerlog"`
	MySQLDSN     string `env:"ANSWERLOG_MYSQL_DSN"`

	// Generation
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Presentation
	PageSize int    `env:"ANSWERLOG_PAGE_SIZE" envDefault:"5"`
	LogLevel string `env:"ANSWERLOG_LOG_LEVEL" envDefault:"info"`
	Seed     bool   `env:"ANSWERLOG_SEED" envDefault:"true"`
}

func loadConfig() (*config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load(".env")
	cfg := &config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
