//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

package record

const (
	// defaultBaseDir is the default base directory for history files.
	defaultBaseDir = "."
	// defaultAppName is the default application namespace.
	defaultAppName = "answerlog"
)

// Options configure the file-backed interaction store.
type Options struct {
	BaseDir string  // BaseDir is the base directory for history files.
	AppName string  // AppName namespaces the history file.
	Locator Locator // Locator is the locator for history files.
}

// NewOptions constructs Options with the default values.
func NewOptions(opts ...Option) *Options {
	options := &Options{
		BaseDir: defaultBaseDir,
		AppName: defaultAppName,
		Locator: &locator{},
	}
	for _, o := range opts {
		o(options)
	}
	return options
}

// Option is a functional option for configuring the store.
type Option func(*Options)

// WithBaseDir sets the root directory for storing history JSON files.
func WithBaseDir(dir string) Option {
	return func(o *Options) {
		o.BaseDir = dir
	}
}

// WithAppName sets the application namespace.
func WithAppName(appName string) Option {
	return func(o *Options) {
		o.AppName = appName
	}
}

// WithLocator sets the locator.
func WithLocator(l Locator) Option {
	return func(o *Options) {
		o.Locator = l
	}
}
