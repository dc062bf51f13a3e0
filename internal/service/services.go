// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the three phases of the dataset reconciliation
// protocol: build, client check and server check.
//
// Each phase streams its dataset exactly once and owns the delta structure
// for its whole run. Any error aborts the phase.
package service

import (
	"bytes"
	"fmt"

	"github.com/MKhiriev/go-csv-delta/internal/delta"
	"github.com/MKhiriev/go-csv-delta/internal/hasher"
	"github.com/MKhiriev/go-csv-delta/internal/logger"
)

// Services groups the protocol phases.
type Services struct {
	BuildService       BuildService
	ClientCheckService ClientCheckService
	ServerCheckService ServerCheckService
}

// NewServices wires every phase with the given logger.
func NewServices(log *logger.Logger) *Services {
	return &Services{
		BuildService:       NewBuildService(log),
		ClientCheckService: NewClientCheckService(log),
		ServerCheckService: NewServerCheckService(log),
	}
}

// CheckCompatible verifies that set was built with h: same hash identifier
// and, for keyed hashers, the same key.
func CheckCompatible(set *delta.Set, h hasher.Hasher) error {
	if set.HashName() != h.Name() {
		return fmt.Errorf("%w: structure uses %q, configured %q", ErrHashMismatch, set.HashName(), h.Name())
	}
	if !bytes.Equal(set.Fingerprint(), h.Fingerprint()) {
		return fmt.Errorf("%w: structure was built with a different %s key", ErrHashMismatch, h.Name())
	}
	return nil
}
