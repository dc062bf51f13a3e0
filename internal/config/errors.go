// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by the per-phase config views when required
// settings are missing or invalid.
var (
	// ErrInvalidInputConfigs indicates invalid input settings (for example,
	// a missing structure path or a structure read from stdin).
	ErrInvalidInputConfigs = errors.New("invalid input configuration")
	// ErrInvalidOutputConfigs indicates invalid output settings (for
	// example, a missing structure path or one pointing at a standard stream).
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidHashConfigs indicates an unknown hash function or a keyed
	// hash function without a key.
	ErrInvalidHashConfigs = errors.New("invalid hash configuration")
)
