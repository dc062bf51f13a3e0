// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-csv-delta/internal/delta"
	"github.com/MKhiriev/go-csv-delta/internal/logger"
	"github.com/MKhiriev/go-csv-delta/migrations"
)

// sqliteSuffixes select the SQLite backend in [NewStructureStore].
var sqliteSuffixes = []string{".db", ".sqlite", ".sqlite3"}

// IsSQLitePath reports whether path is named like a SQLite structure file.
func IsSQLitePath(path string) bool {
	lower := strings.ToLower(path)
	for _, suffix := range sqliteSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// sqliteStructureStore keeps a delta structure in a SQLite file with one row
// per key. Unlike the blob format, such a file can be inspected with any
// SQLite client.
type sqliteStructureStore struct {
	logger *logger.Logger
}

// NewSQLiteStructureStore constructs a [StructureStore] backed by SQLite
// files.
func NewSQLiteStructureStore(log *logger.Logger) StructureStore {
	return &sqliteStructureStore{logger: log}
}

// Save implements [StructureStore]. The database is built in a temporary
// file that is moved into place once the transaction has committed.
func (s *sqliteStructureStore) Save(ctx context.Context, path string, set *delta.Set) error {
	if err := CheckOutput(path); err != nil {
		return err
	}

	tmp, err := createTemp(path)
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err = s.writeDB(ctx, tmpPath, set); err != nil {
		removeSQLiteFiles(tmpPath)
		return fmt.Errorf("%w: %w", ErrStructureNotSaved, err)
	}
	if err = commitTemp(tmpPath, path); err != nil {
		removeSQLiteFiles(tmpPath)
		return fmt.Errorf("%w: %w", ErrStructureNotSaved, err)
	}

	logger.FromContextOr(ctx, s.logger).Debug().
		Str("path", path).
		Int("keys", set.Len()).
		Msg("delta structure saved to sqlite")
	return nil
}

func (s *sqliteStructureStore) writeDB(ctx context.Context, path string, set *delta.Set) (err error) {
	db, err := openSQLite(ctx, path, false)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing database: %w", closeErr)
		}
	}()

	if err = migrations.Migrate(db); err != nil {
		return err
	}
	return saveSet(ctx, db, set)
}

// Load implements [StructureStore].
func (s *sqliteStructureStore) Load(ctx context.Context, path string) (*delta.Set, error) {
	if err := CheckInput(path); err != nil {
		return nil, err
	}

	db, err := openSQLite(ctx, path, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructureNotLoaded, err)
	}
	defer db.Close()

	set, err := loadSet(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStructureNotLoaded, path, err)
	}

	logger.FromContextOr(ctx, s.logger).Debug().
		Str("path", path).
		Str("hash", set.HashName()).
		Int("keys", set.Len()).
		Msg("delta structure loaded from sqlite")
	return set, nil
}

func openSQLite(ctx context.Context, path string, readOnly bool) (*sql.DB, error) {
	dsn := "file:" + (&url.URL{Path: path}).EscapedPath()
	if readOnly {
		dsn += "?mode=ro"
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database %s: %w", path, err)
	}
	// a single connection keeps the whole run on one SQLite handle
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error connecting database %s: %w", path, err)
	}
	return conn, nil
}

// saveSet writes the metadata row and every key of set in one transaction.
func saveSet(ctx context.Context, db *sql.DB, set *delta.Set) (err error) {
	metaQuery, metaArgs, err := insertStructureMeta.
		Values(set.HashName(), set.Fingerprint(), sqliteFormatVersion).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}
	keyQuery, _, err := insertStructureKey.ToSql()
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, metaQuery, metaArgs...); err != nil {
		return fmt.Errorf("failed to insert structure metadata: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, keyQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for key := range set.All() {
		if _, err = stmt.ExecContext(ctx, key); err != nil {
			return fmt.Errorf("failed to insert structure key: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// loadSet rebuilds a set from the metadata row and key table.
func loadSet(ctx context.Context, db *sql.DB) (*delta.Set, error) {
	metaQuery, _, err := selectStructureMeta.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	var (
		hashName    string
		fingerprint []byte
		version     int
	)
	err = db.QueryRowContext(ctx, metaQuery).Scan(&hashName, &fingerprint, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no structure metadata", delta.ErrCorruptStructure)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read structure metadata: %w", err)
	}
	if version != sqliteFormatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", delta.ErrCorruptStructure, version)
	}

	keysQuery, _, err := selectStructureKeys.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}
	rows, err := db.QueryContext(ctx, keysQuery)
	if err != nil {
		return nil, fmt.Errorf("error executing sql query: %w", err)
	}
	defer rows.Close()

	set := delta.NewSet(hashName, fingerprint)
	for rows.Next() {
		var key []byte
		if err = rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan structure key: %w", err)
		}
		set.Insert(key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan structure keys: %w", err)
	}

	return set, nil
}

func removeSQLiteFiles(path string) {
	for _, suffix := range []string{"", "-journal", "-wal", "-shm"} {
		os.Remove(path + suffix)
	}
}
