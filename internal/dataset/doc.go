// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dataset streams line-oriented CSV datasets one row at a time.
//
// Rows are never parsed into columns: a row is its trimmed line text. The
// first non-blank row is the header unless a header sentinel is configured,
// in which case every row containing the sentinel is treated as a header.
// Inputs may be gzip-compressed and may be given as the stdin alias.
package dataset
