//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

package record

import "path/filepath"

// defaultHistoryFileSuffix is the default suffix for history files.
const defaultHistoryFileSuffix = ".history.json"

// Locator builds the path of the history file for an app.
type Locator interface {
	// Build builds the path of the history file for the given appName.
	Build(baseDir, appName string) string
}

// locator is the default Locator implementation.
type locator struct {
}

// Build builds the path of the history file.
func (l *locator) Build(baseDir, appName string) string {
	return filepath.Join(baseDir, appName+defaultHistoryFileSuffix)
}
