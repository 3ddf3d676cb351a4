package service

import (
	"context"
	"time"

	"github.com/MKhiriev/favsync/models"
)

// FavoritesSyncService defines the contract of the favorites sync engine. A run
// reconciles the remote favorites list with the local library in both
// directions, using the snapshot recorded by the previous successful run as
// the common ancestor.
type FavoritesSyncService interface {
	// RunSync executes one full sync pass. It returns ErrSyncInProgress
	// without side effects when a previous run is still active. A run that
	// ends in the Error state returns a *SyncFailedError; per-item failures
	// do not fail the run and are reported through the Complete status.
	RunSync(ctx context.Context) error

	// Status returns the most recently published status.
	Status() models.SyncStatus

	// Subscribe registers a new status observer. The returned channel first
	// receives the current status, then every subsequent transition. Slow
	// observers lose intermediate Processing updates, never the latest one.
	Subscribe() <-chan models.SyncStatus

	// Unsubscribe removes the observer and closes its channel.
	Unsubscribe(ch <-chan models.SyncStatus)

	// ClearSnapshots erases the stored snapshot so that the next run treats
	// every favorite on both sides as new. Returns ErrSyncInProgress while a
	// run is active.
	ClearSnapshots(ctx context.Context) error
}

// FavoritesSyncJob runs the sync service periodically in the background.
type FavoritesSyncJob interface {
	// Start launches a goroutine that runs a sync immediately and then
	// every interval until ctx is cancelled or Stop is called. A previously
	// started job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and waits for it to exit.
	Stop()
}

// GalleryImporter resolves a gallery URL to a library entry ready to be
// stored. Failures are returned as *ImportError or wrap
// ErrUnrecognizedGalleryURL.
type GalleryImporter interface {
	ImportByURL(ctx context.Context, url string) (models.Gallery, error)
}
