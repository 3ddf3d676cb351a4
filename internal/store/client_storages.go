// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/favsync/internal/config"
	"github.com/MKhiriev/favsync/internal/logger"
)

// Repositories is the set of repositories bound to one query target.
type Repositories struct {
	Library   LibraryRepository
	Snapshots SnapshotRepository
}

func newRepositories(q sqlx.ExtContext) *Repositories {
	return &Repositories{
		Library:   NewLibraryRepository(q),
		Snapshots: NewSnapshotRepository(q),
	}
}

// ClientStorages groups the local library repositories together with the
// transaction primitive the sync engine runs its local effects in.
type ClientStorages struct {
	*Repositories
	db *DB
}

// NewClientStorages opens the SQLite library at cfg.DSN, applies pending
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewClientStoragesFromDB(db), nil
}

// NewClientStoragesFromDB wires the repositories onto an already migrated
// database.
func NewClientStoragesFromDB(db *DB) *ClientStorages {
	return &ClientStorages{
		Repositories: newRepositories(db.DB),
		db:           db,
	}
}

// RunInTransaction implements [Transactor]. Repositories passed to fn are
// bound to the transaction and must not be used after fn returns. A panic
// inside fn rolls the transaction back before propagating.
func (s *ClientStorages) RunInTransaction(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	return runInTx(ctx, s.db.DB, func(tx *sqlx.Tx) error {
		return fn(ctx, newRepositories(tx))
	})
}

// Close closes the underlying database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}

func runInTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "runInTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).Str("func", "runInTx").Msg("failed to roll back transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "runInTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
