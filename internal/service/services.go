package service

import (
	"net/url"

	"github.com/MKhiriev/favsync/internal/adapter"
	"github.com/MKhiriev/favsync/internal/config"
	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/internal/store"
	"github.com/MKhiriev/favsync/models"
)

type Services struct {
	SyncService FavoritesSyncService
	SyncJob     FavoritesSyncJob
}

func NewServices(cfg *config.StructuredConfig, storage store.Transactor, remote adapter.FavoritesAdapter, log *logger.Logger) *Services {
	opts := SyncOptionsFromConfig(cfg)
	syncSvc := NewFavoritesSyncService(remote, storage, NewGalleryImporter(remote, opts.Clock), opts, log)

	return &Services{
		SyncService: syncSvc,
		SyncJob:     NewFavoritesSyncJob(syncSvc, log),
	}
}

// SyncOptionsFromConfig maps the loaded configuration onto SyncOptions.
func SyncOptionsFromConfig(cfg *config.StructuredConfig) SyncOptions {
	return SyncOptions{
		ReadOnly: cfg.Sync.ReadOnly,
		Strict:   cfg.Sync.Strict,
		Source:   sourceForBaseURL(cfg.Adapter.BaseURL),
		LockFile: cfg.LockFilePath(),
		Retry: RetryPolicy{
			Attempts: cfg.Sync.RetryAttempts,
			Delay:    cfg.Sync.RetryDelay,
		},
		Throttle: ThrottleOptions{
			Step:    cfg.Sync.ThrottleStep,
			Max:     cfg.Sync.ThrottleMax,
			Warning: cfg.Sync.ThrottleWarn,
		},
	}
}

func sourceForBaseURL(baseURL string) models.SourceKind {
	u, err := url.Parse(baseURL)
	if err == nil && u.Host == models.SourceExHentai.Host() {
		return models.SourceExHentai
	}
	return models.SourceEHentai
}
