//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Package openai provides an OpenAI-compatible generation backend.
package openai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/answerlog/answerlog/generate"
)

// defaultModel is the chat model used when none is configured.
const defaultModel = "gpt-4o-mini"

// completionAPI is the subset of the OpenAI client the generator needs.
// Narrowed for testability.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator implements generate.Generator on top of an OpenAI-compatible
// chat completion API, measuring wall-clock latency per call.
type Generator struct {
	client       completionAPI
	model        string
	systemPrompt string
	now          func() time.Time
}

// Option is a functional option for configuring the generator.
type Option func(*Generator)

// WithModel sets the chat model.
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// WithSystemPrompt sets an optional system prompt prepended to every question.
func WithSystemPrompt(prompt string) Option {
	return func(g *Generator) {
		g.systemPrompt = prompt
	}
}

// New creates an OpenAI-backed generator.
func New(apiKey string, opt ...Option) *Generator {
	g := &Generator{
		model: defaultModel,
		now:   time.Now,
	}
	for _, o := range opt {
		o(g)
	}
	if g.client == nil {
		g.client = openai.NewClient(apiKey)
	}
	return g
}

// NewWithConfig creates a generator from an explicit client config, for
// OpenAI-compatible endpoints with a custom base URL.
func NewWithConfig(config openai.ClientConfig, opt ...Option) *Generator {
	g := &Generator{
		model:  defaultModel,
		now:    time.Now,
		client: openai.NewClientWithConfig(config),
	}
	for _, o := range opt {
		o(g)
	}
	return g
}

// Generate sends the question to the chat completion API and returns the
// answer with its measured latency.
func (g *Generator) Generate(ctx context.Context, question string) (*generate.Result, error) {
	if question == "" {
		return nil, fmt.Errorf("%w: question is empty", generate.ErrGeneration)
	}
	var messages []openai.ChatCompletionMessage
	if g.systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: g.systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: question,
	})

	start := g.now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: messages,
	})
	elapsed := g.now().Sub(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generate.ErrGeneration, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion response", generate.ErrGeneration)
	}
	return &generate.Result{
		Answer:              resp.Choices[0].Message.Content,
		ResponseTimeSeconds: elapsed.Seconds(),
	}, nil
}

var _ generate.Generator = (*Generator)(nil)
