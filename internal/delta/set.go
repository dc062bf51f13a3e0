// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package delta implements the delta structure: an exact-membership set of
// canonical row keys that is built once from the server dataset, shrunk by
// the client check and read by the server check.
//
// A Set is owned by exactly one phase at a time and is not safe for
// concurrent use.
package delta

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrKeyNotFound is returned by [Set.Remove] when the key is absent.
	ErrKeyNotFound = errors.New("key not found in delta structure")
	// ErrCorruptStructure is returned when a persisted structure can't be decoded.
	ErrCorruptStructure = errors.New("corrupt delta structure")
)

// Set is a set of canonical keys together with the identity of the hasher
// that produced them.
type Set struct {
	hashName    string
	fingerprint []byte
	keys        map[string]struct{}
}

// NewSet returns an empty set for keys produced by the named hasher.
// fingerprint identifies the hasher's secret and may be nil.
func NewSet(hashName string, fingerprint []byte) *Set {
	return &Set{
		hashName:    hashName,
		fingerprint: bytes.Clone(fingerprint),
		keys:        make(map[string]struct{}),
	}
}

// HashName returns the identifier of the hasher the keys were built with.
func (s *Set) HashName() string {
	return s.hashName
}

// Fingerprint returns the key fingerprint of the hasher, if any.
func (s *Set) Fingerprint() []byte {
	return s.fingerprint
}

// Insert adds key and reports whether it was not already present.
// Inserting an existing key is a no-op.
func (s *Set) Insert(key []byte) bool {
	if _, ok := s.keys[string(key)]; ok {
		return false
	}
	s.keys[string(key)] = struct{}{}
	return true
}

// Contains reports whether key is in the set.
func (s *Set) Contains(key []byte) bool {
	_, ok := s.keys[string(key)]
	return ok
}

// Remove deletes key from the set. It fails with [ErrKeyNotFound] and leaves
// the set untouched if the key is absent.
func (s *Set) Remove(key []byte) error {
	if _, ok := s.keys[string(key)]; !ok {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, shortHex(key))
	}
	delete(s.keys, string(key))
	return nil
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	return len(s.keys)
}

// All iterates over the keys in no particular order. The yielded slices must
// not be retained past the iteration step.
func (s *Set) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for k := range s.keys {
			if !yield([]byte(k)) {
				return
			}
		}
	}
}

func shortHex(key []byte) string {
	const maxBytes = 16
	if len(key) > maxBytes {
		return hex.EncodeToString(key[:maxBytes]) + "..."
	}
	return hex.EncodeToString(key)
}
