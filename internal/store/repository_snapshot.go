package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/models"
)

type snapshotRepository struct {
	q sqlx.ExtContext
}

// NewSnapshotRepository returns a [SnapshotRepository] running its statements
// on q. When q is the database itself, ReplaceSnapshot opens its own
// transaction.
func NewSnapshotRepository(q sqlx.ExtContext) SnapshotRepository {
	return &snapshotRepository{q: q}
}

func (r *snapshotRepository) GetSnapshot(ctx context.Context) ([]models.FavoriteIdentity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSnapshotQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entries []models.FavoriteIdentity
	if err = sqlx.SelectContext(ctx, r.q, &entries, query, args...); err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.GetSnapshot").
			Msg("failed to query snapshot")
		return nil, fmt.Errorf("%w: snapshot: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

func (r *snapshotRepository) ReplaceSnapshot(ctx context.Context, entries []models.FavoriteIdentity) error {
	db, ok := r.q.(*sqlx.DB)
	if !ok {
		return replaceSnapshot(ctx, r.q, entries)
	}

	return runInTx(ctx, db, func(tx *sqlx.Tx) error {
		return replaceSnapshot(ctx, tx, entries)
	})
}

func replaceSnapshot(ctx context.Context, q sqlx.ExtContext, entries []models.FavoriteIdentity) error {
	log := logger.FromContext(ctx)

	if err := clearSnapshot(ctx, q); err != nil {
		return err
	}

	for start := 0; start < len(entries); start += snapshotInsertBatch {
		end := min(start+snapshotInsertBatch, len(entries))

		query, args, err := buildInsertSnapshotQuery(entries[start:end])
		if err != nil {
			return err
		}

		if _, err = q.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "snapshotRepository.ReplaceSnapshot").
				Int("entries", end-start).
				Msg("failed to insert snapshot entries")
			return fmt.Errorf("%w: insert snapshot: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *snapshotRepository) ClearSnapshot(ctx context.Context) error {
	return clearSnapshot(ctx, r.q)
}

func clearSnapshot(ctx context.Context, q sqlx.ExtContext) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSnapshotQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ClearSnapshot").
			Msg("failed to delete snapshot")
		return fmt.Errorf("%w: delete snapshot: %w", ErrExecutingStatement, err)
	}

	return nil
}
