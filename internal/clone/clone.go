//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

// Package clone provides deep-copy helpers for store boundaries.
package clone

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Clone performs a deep copy on src.
func Clone[T any](src *T) (*T, error) {
	if src == nil {
		return nil, fmt.Errorf("nil input")
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(src); err != nil {
		return nil, err
	}
	var dst T
	if err := gob.NewDecoder(&buf).Decode(&dst); err != nil {
		return nil, err
	}
	return &dst, nil
}

// CloneSlice deep-copies a slice of pointers, skipping nil elements.
func CloneSlice[T any](src []*T) ([]*T, error) {
	out := make([]*T, 0, len(src))
	for _, item := range src {
		if item == nil {
			continue
		}
		cloned, err := Clone(item)
		if err != nil {
			return nil, err
		}
		out = append(out, cloned)
	}
	return out, nil
}
