//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Package mysql provides a MySQL-backed store implementation for interaction records.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/answerlog/answerlog/record"
)

// sqlCreateInteractionsTable is the schema for the interactions table.
const sqlCreateInteractionsTable = `CREATE TABLE IF NOT EXISTS %s (
  seq BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  app_name VARCHAR(128) NOT NULL,
  interaction_id VARCHAR(64) NOT NULL,
  payload JSON NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (seq),
  UNIQUE KEY uniq_interactions_app_id (app_name, interaction_id)
)`

var _ record.Store = (*store)(nil)

// store implements record.Store backed by MySQL. Records are stored as JSON
// payloads; the auto-increment seq column preserves insertion order.
type store struct {
	opts  options
	db    *sql.DB
	table string
}

// New creates a MySQL-backed interaction store.
func New(opt ...Option) (record.Store, error) {
	opts := newOptions(opt...)
	if opts.dsn == "" {
		return nil, errors.New("mysql dsn is empty")
	}
	db, err := sql.Open("mysql", opts.dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql connection: %w", err)
	}
	s := newWithDB(db, opts)
	if !opts.skipDBInit {
		if err := s.ensureSchema(context.Background()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init database: %w", err)
		}
	}
	return s, nil
}

// newWithDB wires a store onto an existing database handle.
func newWithDB(db *sql.DB, opts *options) *store {
	return &store{
		opts:  *opts,
		db:    db,
		table: opts.tablePrefix + defaultTableName,
	}
}

// Close closes the underlying database handle.
func (s *store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ensureSchema creates the interactions table when it does not exist.
func (s *store) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(sqlCreateInteractionsTable, s.table))
	if err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}
	return nil
}

// Append stores a new interaction and returns its assigned ID.
func (s *store) Append(ctx context.Context, interaction *record.Interaction) (string, error) {
	if interaction == nil {
		return "", errors.New("interaction is nil")
	}
	id := interaction.ID
	if id == "" {
		id = uuid.NewString()
	}
	stored := *interaction
	stored.ID = id
	payload, err := json.Marshal(&stored)
	if err != nil {
		return "", fmt.Errorf("marshal interaction %s: %w", id, err)
	}
	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (app_name, interaction_id, payload) VALUES (?, ?, ?)", s.table)
	if _, err := s.db.ExecContext(ctx, insertSQL, s.opts.appName, id, payload); err != nil {
		return "", fmt.Errorf("insert interaction %s: %w", id, err)
	}
	return id, nil
}

// Update replaces a stored interaction identified by its ID.
func (s *store) Update(ctx context.Context, interaction *record.Interaction) error {
	if interaction == nil {
		return errors.New("interaction is nil")
	}
	if interaction.ID == "" {
		return errors.New("interaction.ID is empty")
	}
	existing, err := s.get(ctx, interaction.ID)
	if err != nil {
		return err
	}
	if existing.HasFeedback() {
		return fmt.Errorf("interaction %s already has feedback", interaction.ID)
	}
	payload, err := json.Marshal(interaction)
	if err != nil {
		return fmt.Errorf("marshal interaction %s: %w", interaction.ID, err)
	}
	updateSQL := fmt.Sprintf(
		"UPDATE %s SET payload = ? WHERE app_name = ? AND interaction_id = ?", s.table)
	if _, err := s.db.ExecContext(ctx, updateSQL, payload, s.opts.appName, interaction.ID); err != nil {
		return fmt.Errorf("update interaction %s: %w", interaction.ID, err)
	}
	return nil
}

// get loads a single interaction payload.
func (s *store) get(ctx context.Context, id string) (*record.Interaction, error) {
	var payload []byte
	selectSQL := fmt.Sprintf(
		"SELECT payload FROM %s WHERE app_name = ? AND interaction_id = ?", s.table)
	err := s.db.QueryRowContext(ctx, selectSQL, s.opts.appName, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: interaction %s", os.ErrNotExist, id)
		}
		return nil, fmt.Errorf("get interaction %s: %w", id, err)
	}
	var interaction record.Interaction
	if err := json.Unmarshal(payload, &interaction); err != nil {
		return nil, fmt.Errorf("unmarshal interaction %s: %w", id, err)
	}
	return &interaction, nil
}

// All returns every stored interaction in insertion order.
func (s *store) All(ctx context.Context) ([]*record.Interaction, error) {
	listSQL := fmt.Sprintf(
		"SELECT payload FROM %s WHERE app_name = ? ORDER BY seq ASC", s.table)
	rows, err := s.db.QueryContext(ctx, listSQL, s.opts.appName)
	if err != nil {
		return nil, fmt.Errorf("list interactions for app %s: %w", s.opts.appName, err)
	}
	defer rows.Close()
	var interactions []*record.Interaction
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan interaction payload: %w", err)
		}
		var interaction record.Interaction
		if err := json.Unmarshal(payload, &interaction); err != nil {
			return nil, fmt.Errorf("unmarshal interaction: %w", err)
		}
		interactions = append(interactions, &interaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interactions for app %s: %w", s.opts.appName, err)
	}
	if interactions == nil {
		interactions = []*record.Interaction{}
	}
	return interactions, nil
}

// Count returns the number of stored interactions.
func (s *store) Count(ctx context.Context) (int, error) {
	var count int
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE app_name = ?", s.table)
	if err := s.db.QueryRowContext(ctx, countSQL, s.opts.appName).Scan(&count); err != nil {
		return 0, fmt.Errorf("count interactions for app %s: %w", s.opts.appName, err)
	}
	return count, nil
}

// Clear removes every stored interaction for the app.
func (s *store) Clear(ctx context.Context) (bool, error) {
	deleteSQL := fmt.Sprintf("DELETE FROM %s WHERE app_name = ?", s.table)
	if _, err := s.db.ExecContext(ctx, deleteSQL, s.opts.appName); err != nil {
		return false, fmt.Errorf("clear interactions for app %s: %w", s.opts.appName, err)
	}
	return true, nil
}
