// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	structureMetaTable = "structure_meta"
	structureKeysTable = "structure_keys"

	// sqliteFormatVersion is stored in structure_meta and checked on load.
	sqliteFormatVersion = 1
)

// Queries against SQLite structure files. SQLite uses "?" placeholders,
// which is squirrel's default format.
var (
	insertStructureMeta = sq.Insert(structureMetaTable).
				Columns("hash_name", "fingerprint", "format_version")

	insertStructureKey = sq.Insert(structureKeysTable).
				Columns("key").
				Values(sq.Expr("?"))

	selectStructureMeta = sq.Select("hash_name", "fingerprint", "format_version").
				From(structureMetaTable).
				Limit(1)

	selectStructureKeys = sq.Select("key").
				From(structureKeysTable)
)
