package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/flock"

	"github.com/MKhiriev/favsync/internal/adapter"
	"github.com/MKhiriev/favsync/internal/clock"
	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/internal/store"
	"github.com/MKhiriev/favsync/internal/utils"
	"github.com/MKhiriev/favsync/models"
)

const (
	msgNotLoggedIn        = "Please log in!"
	msgFetchFailed        = "Failed to fetch favorites from remote server!"
	msgAnotherSyncRunning = "Another sync is already running!"
)

// SyncOptions configures a favoritesSyncService.
type SyncOptions struct {
	// ReadOnly skips computing and pushing local changes.
	ReadOnly bool
	// Strict fails the run on the first per-gallery failure.
	Strict bool
	// Source is the site newly imported galleries are addressed on.
	Source models.SourceKind
	// LockFile guards against concurrent runs across processes. Empty
	// disables the guard.
	LockFile string

	Retry    RetryPolicy
	Throttle ThrottleOptions
	Clock    clock.Clock
}

type favoritesSyncService struct {
	remote   adapter.FavoritesAdapter
	storage  store.Transactor
	importer GalleryImporter

	status   *StatusPublisher
	throttle *Throttler
	lock     *flock.Flock
	ids      utils.UUIDGenerator
	opts     SyncOptions

	logger *logger.Logger
}

// NewFavoritesSyncService creates the sync orchestrator.
func NewFavoritesSyncService(
	remote adapter.FavoritesAdapter,
	storage store.Transactor,
	importer GalleryImporter,
	opts SyncOptions,
	log *logger.Logger,
) FavoritesSyncService {
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Retry.Attempts <= 0 {
		opts.Retry = DefaultRetryPolicy()
	}
	if opts.Throttle == (ThrottleOptions{}) {
		opts.Throttle = DefaultThrottleOptions()
	}
	if opts.Source == models.SourceOther {
		opts.Source = models.SourceEHentai
	}

	s := &favoritesSyncService{
		remote:   remote,
		storage:  storage,
		importer: importer,
		status:   NewStatusPublisher(),
		throttle: NewThrottler(opts.Clock, opts.Throttle),
		opts:     opts,
		logger:   log,
	}
	if opts.LockFile != "" {
		s.lock = flock.New(opts.LockFile)
	}
	return s
}

func (s *favoritesSyncService) Status() models.SyncStatus {
	return s.status.Current()
}

func (s *favoritesSyncService) Subscribe() <-chan models.SyncStatus {
	return s.status.Subscribe()
}

func (s *favoritesSyncService) Unsubscribe(ch <-chan models.SyncStatus) {
	s.status.Unsubscribe(ch)
}

func (s *favoritesSyncService) ClearSnapshots(ctx context.Context) error {
	if s.status.Current().IsRunning() {
		return ErrSyncInProgress
	}
	return s.storage.RunInTransaction(ctx, func(ctx context.Context, repos *store.Repositories) error {
		return NewSnapshotStore(repos.Library, repos.Snapshots).ClearSnapshots(ctx)
	})
}

func (s *favoritesSyncService) RunSync(ctx context.Context) error {
	if !s.status.tryBegin() {
		s.logger.Warn().Str("func", "favoritesSyncService.RunSync").Msg("sync requested while another run is active")
		return ErrSyncInProgress
	}

	runID := s.ids.Generate()
	log := &logger.Logger{Logger: s.logger.With().Str("run_id", runID).Logger()}
	ctx = log.WithContext(utils.WithRunID(ctx, runID))

	log.Info().Str("func", "favoritesSyncService.RunSync").Msg("sync started")
	failures, err := s.run(ctx)
	return s.finish(ctx, failures, err)
}

func (s *favoritesSyncService) run(ctx context.Context) ([]string, error) {
	if s.lock != nil {
		locked, err := s.lock.TryLock()
		if err != nil || !locked {
			logger.FromContext(ctx).Warn().Err(err).Str("lock", s.opts.LockFile).Msg("lock file is held")
			s.status.publish(models.StatusError(msgAnotherSyncRunning))
			return nil, errAlreadyReported
		}
		defer func() { _ = s.lock.Unlock() }()
	}

	s.step(ctx, "Verifying login")
	if !s.remote.IsLoggedIn() {
		s.status.publish(models.StatusError(msgNotLoggedIn))
		return nil, errAlreadyReported
	}

	s.step(ctx, "Downloading favorites from remote server")
	remote, err := s.remote.FetchFavorites(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.FromContext(ctx).Error().Err(err).Msg("fetching remote favorites failed")
		s.status.publish(models.StatusError(msgFetchFailed))
		return nil, errAlreadyReported
	}

	var failures []string
	err = s.storage.RunInTransaction(ctx, func(ctx context.Context, repos *store.Repositories) error {
		snapshots := NewSnapshotStore(repos.Library, repos.Snapshots)

		conflict, err := snapshots.MultiCategoryFavorite(ctx)
		if err != nil {
			return err
		}
		if conflict != nil {
			s.status.publish(models.StatusError(conflict.Message()))
			return errAlreadyReported
		}

		s.step(ctx, "Calculating remote changes")
		remoteChanges, err := snapshots.ChangedRemoteEntries(ctx, remote)
		if err != nil {
			return err
		}

		var localChanges models.ChangeSet
		if !s.opts.ReadOnly {
			s.step(ctx, "Calculating local changes")
			if localChanges, err = snapshots.ChangedLocalEntries(ctx); err != nil {
				return err
			}
		}

		s.step(ctx, "Updating category names")
		categories, err := NewCategoryReconciler(repos.Library).Reconcile(ctx, remote.CategoryNames)
		if err != nil {
			return err
		}

		logger.FromContext(ctx).Info().
			Int("remote_added", len(remoteChanges.Added)).
			Int("remote_removed", len(remoteChanges.Removed)).
			Int("local_added", len(localChanges.Added)).
			Int("local_removed", len(localChanges.Removed)).
			Msg("changes calculated")

		local := &localApplier{
			library:  repos.Library,
			importer: s.importer,
			throttle: s.throttle,
			status:   s.status,
			source:   s.opts.Source,
			strict:   s.opts.Strict,
		}
		localFailures, err := local.Apply(ctx, remoteChanges, categories)
		if err != nil {
			return err
		}
		failures = append(failures, localFailures...)

		if !s.opts.ReadOnly {
			pusher := &remoteApplier{
				mutator:  s.remote,
				throttle: s.throttle,
				status:   s.status,
				retry:    s.opts.Retry,
				strict:   s.opts.Strict,
			}
			remoteFailures, err := pusher.Apply(ctx, localChanges)
			if err != nil {
				return err
			}
			failures = append(failures, remoteFailures...)
		}

		s.step(ctx, "Cleaning up")
		return snapshots.SnapshotEntries(ctx)
	})
	return failures, err
}

func (s *favoritesSyncService) step(ctx context.Context, msg string) {
	logger.FromContext(ctx).Debug().Str("func", "favoritesSyncService.step").Msg(msg)
	s.status.publish(models.StatusProcessing(msg, false))
}

func (s *favoritesSyncService) finish(ctx context.Context, failures []string, err error) error {
	log := logger.FromContext(ctx)

	switch {
	case err == nil:
		log.Info().Str("func", "favoritesSyncService.finish").Int("failures", len(failures)).Msg("sync complete")
		s.status.publish(models.StatusComplete(failures))
		return nil
	case errors.Is(err, errAlreadyReported):
		msg := s.status.Current().Message
		log.Error().Str("func", "favoritesSyncService.finish").Str("status", msg).Msg("sync failed")
		return &SyncFailedError{Message: msg}
	default:
		msg := fmt.Sprintf("Unknown error: %s", err)
		log.Error().Str("func", "favoritesSyncService.finish").Err(err).Msg("sync failed")
		s.status.publish(models.StatusError(msg))
		return &SyncFailedError{Message: msg, Err: err}
	}
}
