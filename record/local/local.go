//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local file store implementation for interaction records.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/answerlog/answerlog/record"
)

const (
	defaultTempFileSuffix = ".tmp"
	defaultDirPermission  = 0o755
	defaultFilePermission = 0o644
)

// historyFile is the on-disk representation of the record collection.
type historyFile struct {
	// Records contains every interaction in insertion order.
	Records []*record.Interaction `json:"records"`
}

// store implements record.Store backed by the local filesystem.
type store struct {
	mu      sync.RWMutex
	baseDir string
	appName string
	locator record.Locator
}

// New creates a local file interaction store.
func New(opt ...record.Option) record.Store {
	opts := record.NewOptions(opt...)
	return &store{
		baseDir: opts.BaseDir,
		appName: opts.AppName,
		locator: opts.Locator,
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
	history, err := s.load()
	if err != nil {
		return "", fmt.Errorf("load history for app %s: %w", s.appName, err)
	}
	id := interaction.ID
	if id == "" {
		id = uuid.NewString()
	}
	for _, existing := range history.Records {
		if existing != nil && existing.ID == id {
			return "", fmt.Errorf("interaction %s already exists", id)
		}
	}
	stored := *interaction
	stored.ID = id
	history.Records = append(history.Records, &stored)
	if err := s.save(history); err != nil {
		return "", fmt.Errorf("store history for app %s: %w", s.appName, err)
	}
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
	history, err := s.load()
	if err != nil {
		return fmt.Errorf("load history for app %s: %w", s.appName, err)
	}
	for i, existing := range history.Records {
		if existing == nil || existing.ID != interaction.ID {
			continue
		}
		if existing.HasFeedback() {
			return fmt.Errorf("interaction %s already has feedback", interaction.ID)
		}
		updated := *interaction
		history.Records[i] = &updated
		if err := s.save(history); err != nil {
			return fmt.Errorf("store history for app %s: %w", s.appName, err)
		}
		return nil
	}
	return fmt.Errorf("%w: interaction %s", os.ErrNotExist, interaction.ID)
}

// All returns every stored interaction in insertion order.
func (s *store) All(ctx context.Context) ([]*record.Interaction, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	history, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("load history for app %s: %w", s.appName, err)
	}
	return history.Records, nil
}

// Count returns the number of stored interactions.
func (s *store) Count(ctx context.Context) (int, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	history, err := s.load()
	if err != nil {
		return 0, fmt.Errorf("load history for app %s: %w", s.appName, err)
	}
	return len(history.Records), nil
}

// Clear removes every stored interaction by deleting the history file.
func (s *store) Clear(ctx context.Context) (bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	path := s.locator.Build(s.baseDir, s.appName)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("remove history file %s: %w", path, err)
	}
	return true, nil
}

// load reads the history file. A missing file yields an empty history.
func (s *store) load() (*historyFile, error) {
	path := s.locator.Build(s.baseDir, s.appName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &historyFile{Records: []*record.Interaction{}}, nil
		}
		return nil, err
	}
	var history historyFile
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("unmarshal history file %s: %w", path, err)
	}
	if history.Records == nil {
		history.Records = []*record.Interaction{}
	}
	return &history, nil
}

// save writes the history file atomically via a temp file rename.
func (s *store) save(history *historyFile) error {
	path := s.locator.Build(s.baseDir, s.appName)
	if err := os.MkdirAll(filepath.Dir(path), defaultDirPermission); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	tmpPath := path + defaultTempFileSuffix
	if err := os.WriteFile(tmpPath, data, defaultFilePermission); err != nil {
		return fmt.Errorf("write temp history file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename history file %s: %w", path, err)
	}
	return nil
}
