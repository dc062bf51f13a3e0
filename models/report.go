// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildReport summarizes a build run.
type BuildReport struct {
	// Rows is the number of data rows read (header excluded).
	Rows int `json:"rows"`
	// Inserted is the number of distinct keys stored in the structure.
	Inserted int `json:"inserted"`
	// Duplicates is the number of rows whose key was already stored.
	Duplicates int `json:"duplicates"`
}

// ClientCheckReport summarizes a client check run.
type ClientCheckReport struct {
	// Rows is the number of data rows read (header excluded).
	Rows int `json:"rows"`
	// Unchanged is the number of rows matched and removed from the structure.
	Unchanged int `json:"unchanged"`
	// Changed is the number of new or modified rows written to the pruned CSV.
	Changed int `json:"changed"`
	// Remaining is the number of keys left in the structure afterwards,
	// i.e. the deletion candidates.
	Remaining int `json:"remaining"`
}

// ServerCheckReport summarizes a server check run.
type ServerCheckReport struct {
	// Rows is the number of data rows read (header excluded).
	Rows int `json:"rows"`
	// Removed is the number of distinct rows reported as deleted.
	Removed int `json:"removed"`
}
