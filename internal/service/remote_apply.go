package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/favsync/internal/adapter"
	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/models"
)

const msgRemoteRemovalFailed = "Unable to delete galleries from the remote servers!"

// remoteApplier pushes a local ChangeSet to the remote favorites list.
type remoteApplier struct {
	mutator  adapter.FavoritesMutator
	throttle *Throttler
	status   *StatusPublisher
	retry    RetryPolicy
	strict   bool
}

// Apply removes in one bulk request, then adds item by item. A failed bulk
// removal publishes an Error status and aborts the run; failed additions are
// returned as messages.
func (a *remoteApplier) Apply(ctx context.Context, changes models.ChangeSet) ([]string, error) {
	log := logger.FromContext(ctx)

	if len(changes.Removed) > 0 {
		a.status.publish(models.StatusProcessing(fmt.Sprintf("Removing %d galleries from the remote servers", len(changes.Removed)), false))

		ids := make([]string, 0, len(changes.Removed))
		for _, entry := range changes.Removed {
			ids = append(ids, entry.RemoteID)
		}
		err := retryBounded(ctx, a.retry, func(ctx context.Context) error {
			return a.mutator.RemoveFavorites(ctx, ids)
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Error().Str("func", "remoteApplier.Apply").Err(err).Int("count", len(ids)).Msg("bulk removal failed")
			a.status.publish(models.StatusError(msgRemoteRemovalFailed))
			return nil, errAlreadyReported
		}
	}

	if len(changes.Added) == 0 {
		return nil, nil
	}

	var failures []string
	a.throttle.Reset()
	for i, entry := range changes.Added {
		a.status.publish(models.StatusProcessing(
			fmt.Sprintf("Adding gallery %d of %d to the remote server", i+1, len(changes.Added)),
			a.throttle.NeedsWarning(),
		))

		if err := a.throttle.Throttle(ctx); err != nil {
			return nil, err
		}

		err := retryBounded(ctx, a.retry, func(ctx context.Context) error {
			return a.mutator.AddFavorite(ctx, entry.RemoteID, entry.RemoteSecret, entry.CategoryIndex, "")
		})
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		msg := fmt.Sprintf("Unable to add gallery to remote server: '%s' (GID: %s)!", entry.Title, entry.RemoteID)
		log.Warn().Str("func", "remoteApplier.Apply").Err(err).Msg(msg)
		if a.strict {
			a.status.publish(models.StatusError(msg))
			return nil, errAlreadyReported
		}
		failures = append(failures, msg)
	}
	return failures, nil
}
