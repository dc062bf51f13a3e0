// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app runs the phases of the dataset reconciliation protocol as
// command-line programs: it validates paths, opens datasets and structures,
// drives the phase service and publishes outputs only when the phase
// succeeds.
//
// All Msg* constants are human-readable message strings used as error
// prefixes and log messages. Keeping them in one place ensures consistent
// wording across the three tools.
package app

const (
	// MsgInvalidPaths prefixes path validation failures detected before any
	// work starts (missing inputs, existing outputs, gzip outputs).
	MsgInvalidPaths = "invalid paths"

	// MsgInvalidHash is used when the configured hash function cannot be
	// constructed or does not match the input structure.
	MsgInvalidHash = "invalid hash configuration"

	// MsgOpenDatasetFailed is used when the input dataset cannot be opened.
	MsgOpenDatasetFailed = "cannot open dataset"

	// MsgLoadStructureFailed is used when the input structure cannot be read.
	MsgLoadStructureFailed = "cannot load structure"

	// MsgSaveStructureFailed is used when the output structure cannot be
	// written.
	MsgSaveStructureFailed = "cannot save structure"

	// MsgCreateOutputFailed is used when the output dataset cannot be
	// created.
	MsgCreateOutputFailed = "cannot create output"

	// MsgCommitOutputFailed is used when a finished output cannot be
	// published under its final name.
	MsgCommitOutputFailed = "cannot commit output"

	// MsgRollbackFailed is logged when an already published output could not
	// be removed after a later failure.
	MsgRollbackFailed = "rollback failed"

	// MsgBuildFailed, MsgClientCheckFailed and MsgServerCheckFailed prefix
	// errors returned by the phase services.
	MsgBuildFailed       = "build failed"
	MsgClientCheckFailed = "client check failed"
	MsgServerCheckFailed = "server check failed"

	// MsgBuildDone, MsgClientCheckDone and MsgServerCheckDone are logged with
	// the phase report on success.
	MsgBuildDone       = "structure built"
	MsgClientCheckDone = "client dataset pruned"
	MsgServerCheckDone = "removed rows reported"
)
