// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrDuplicateRow is returned by a strict build when two data rows share
	// a canonical key.
	ErrDuplicateRow = errors.New("duplicate row in dataset")

	// ErrHashMismatch is returned when a structure was built with a
	// different hash function (or hash key) than the one configured.
	ErrHashMismatch = errors.New("delta structure hash function mismatch")
)
