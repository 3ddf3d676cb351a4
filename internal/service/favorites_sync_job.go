// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/favsync/internal/logger"
)

type favoritesSyncJob struct {
	syncService FavoritesSyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFavoritesSyncJob creates a favoritesSyncJob that calls syncService.RunSync
// on a ticker. The job is idle until Start is called.
func NewFavoritesSyncJob(syncService FavoritesSyncService, log *logger.Logger) FavoritesSyncJob {
	return &favoritesSyncJob{syncService: syncService, logger: log}
}

// Start implements FavoritesSyncJob. It stops any previously running job, then
// launches a background goroutine that syncs once right away and then every
// interval. If interval is zero or negative it defaults to one hour. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *favoritesSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.runOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

func (j *favoritesSyncJob) runOnce(ctx context.Context) {
	if err := j.syncService.RunSync(ctx); err != nil {
		j.logger.Warn().Str("func", "favoritesSyncJob.runOnce").Err(err).Msg("scheduled sync did not complete")
	}
}

// Stop implements FavoritesSyncJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *favoritesSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
