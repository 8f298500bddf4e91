//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory store implementation for interaction records.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/answerlog/answerlog/internal/clone"
	"github.com/answerlog/answerlog/record"
)

// store implements record.Store using in-memory storage.
//
// The store keeps records in insertion order. Each API returns deep-cloned
// objects to avoid accidental mutation by callers.
type store struct {
	mu      sync.RWMutex
	order   []string
	records map[string]*record.Interaction
}

// New creates a new in-memory interaction store.
func New() record.Store {
	return &store{
		records: make(map[string]*record.Interaction),
	}
}

// Append stores a new interaction and returns its assigned ID.
func (s *store) Append(ctx context.Context, interaction *record.Interaction) (string, error) {
	_ = ctx
	if interaction == nil {
		return "", errors.New("interaction is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := interaction.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, exists := s.records[id]; exists {
		return "", fmt.Errorf("interaction %s already exists", id)
	}
	cloned, err := clone.Clone(interaction)
	if err != nil {
		return "", fmt.Errorf("clone interaction %s: %w", id, err)
	}
	cloned.ID = id
	s.records[id] = cloned
	s.order = append(s.order, id)
	return id, nil
}

// Update replaces a stored interaction identified by its ID.
func (s *store) Update(ctx context.Context, interaction *record.Interaction) error {
	_ = ctx
	if interaction == nil {
		return errors.New("interaction is nil")
	}
	if interaction.ID == "" {
		return errors.New("interaction.ID is empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, exists := s.records[interaction.ID]
	if !exists {
		return fmt.Errorf("%w: interaction %s", os.ErrNotExist, interaction.ID)
	}
	if stored.HasFeedback() {
		return fmt.Errorf("interaction %s already has feedback", interaction.ID)
	}
	cloned, err := clone.Clone(interaction)
	if err != nil {
		return fmt.Errorf("clone interaction %s: %w", interaction.ID, err)
	}
	s.records[interaction.ID] = cloned
	return nil
}

// All returns every stored interaction in insertion order.
func (s *store) All(ctx context.Context) ([]*record.Interaction, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	ordered := make([]*record.Interaction, 0, len(s.order))
	for _, id := range s.order {
		ordered = append(ordered, s.records[id])
	}
	cloned, err := clone.CloneSlice(ordered)
	if err != nil {
		return nil, fmt.Errorf("clone interactions: %w", err)
	}
	return cloned, nil
}

// Count returns the number of stored interactions.
func (s *store) Count(ctx context.Context) (int, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}

// Clear removes every stored interaction.
func (s *store) Clear(ctx context.Context) (bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.records = make(map[string]*record.Interaction)
	return true, nil
}
