//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

package mysql

const (
	// defaultTableName is the base table name for interaction records.
	defaultTableName = "answerlog_interactions"
	// defaultAppName is the default application namespace.
	defaultAppName = "answerlog"
)

// options configure the MySQL-backed interaction store.
type options struct {
	dsn         string
	appName     string
	tablePrefix string
	skipDBInit  bool
}

// newOptions constructs options with the default values.
func newOptions(opts ...Option) *options {
	o := &options{
		appName: defaultAppName,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option is a functional option for configuring the store.
type Option func(*options)

// WithDSN sets the MySQL data source name.
func WithDSN(dsn string) Option {
	return func(o *options) {
		o.dsn = dsn
	}
}

// WithAppName sets the application namespace.
func WithAppName(appName string) Option {
	return func(o *options) {
		o.appName = appName
	}
}

// WithTablePrefix sets a prefix applied to the interactions table name.
func WithTablePrefix(prefix string) Option {
	return func(o *options) {
		o.tablePrefix = prefix
	}
}

// WithSkipDBInit skips schema creation on startup.
func WithSkipDBInit(skip bool) Option {
	return func(o *options) {
		o.skipDBInit = skip
	}
}
