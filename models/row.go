// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Row is a single line of a CSV dataset after surrounding whitespace has been
// trimmed. Rows are compared purely by Text; columns are never parsed.
type Row struct {
	// Line is the 1-based line number of the row in its source stream.
	Line int
	// Text is the trimmed content of the line.
	Text string
	// Header reports whether the row is the dataset's column header.
	Header bool
}

// Phase identifies one step of the reconciliation protocol.
type Phase int

const (
	// PhaseBuild snapshots the server dataset into a delta structure.
	PhaseBuild Phase = iota
	// PhaseClientCheck prunes known rows from the client dataset.
	PhaseClientCheck
	// PhaseServerCheck reports rows the client no longer has.
	PhaseServerCheck
)

func (p Phase) String() string {
	switch p {
	case PhaseBuild:
		return "build"
	case PhaseClientCheck:
		return "client-check"
	case PhaseServerCheck:
		return "server-check"
	default:
		return "unknown"
	}
}
