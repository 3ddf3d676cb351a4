package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/MKhiriev/favsync/internal/adapter"
	"github.com/MKhiriev/favsync/internal/config"
	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/internal/service"
	"github.com/MKhiriev/favsync/internal/store"
	"github.com/MKhiriev/favsync/internal/tui"
	"github.com/MKhiriev/favsync/models"
)

var _ Client = (*App)(nil)

type App struct {
	cfg      *config.StructuredConfig
	storages *store.ClientStorages
	services *service.Services
	tui      *tui.TUI
	out      io.Writer
	logger   *logger.Logger
}

// NewApp opens the local library and builds every service from cfg.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	remote, err := adapter.NewHTTPFavoritesAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return newApp(cfg, storages, service.NewServices(cfg, storages, remote, log), buildInfo, log)
}

func newApp(cfg *config.StructuredConfig, storages *store.ClientStorages, services *service.Services, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	ui, err := tui.New(services.SyncService, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		tui:      ui,
		out:      os.Stdout,
		logger:   log,
	}, nil
}

// SetOutput redirects plain-text output.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

func (a *App) Sync(ctx context.Context, plain bool) error {
	if !plain {
		return a.tui.SyncFlow(ctx)
	}

	svc := a.services.SyncService
	updates := svc.Subscribe()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.printStatuses(updates)
	}()

	err := svc.RunSync(ctx)
	svc.Unsubscribe(updates)
	wg.Wait()

	return err
}

// printStatuses writes one line per transition until updates is closed.
func (a *App) printStatuses(updates <-chan models.SyncStatus) {
	var last string
	for s := range updates {
		if s.State == models.SyncIdle || s.State == models.SyncInitializing {
			continue
		}

		line := s.Message
		switch s.State {
		case models.SyncProcessing:
			if s.ThrottleWarning {
				line += " (throttling)"
			}
		default:
			line = s.Text()
		}
		if line == last {
			continue
		}
		last = line

		fmt.Fprintln(a.out, line)
		for _, e := range s.Errors {
			fmt.Fprintln(a.out, "  - "+e)
		}
	}
}

func (a *App) Watch(ctx context.Context) error {
	svc := a.services.SyncService
	updates := svc.Subscribe()
	defer svc.Unsubscribe(updates)

	a.services.SyncJob.Start(ctx, a.cfg.Sync.Interval)
	defer a.services.SyncJob.Stop()

	a.logger.Info().Str("func", "App.Watch").Dur("interval", a.cfg.Sync.Interval).Msg("watching favorites")
	for {
		select {
		case <-ctx.Done():
			return nil
		case s := <-updates:
			switch s.State {
			case models.SyncComplete:
				a.logger.Info().Str("func", "App.Watch").Strs("errors", s.Errors).Msg(s.Text())
			case models.SyncError:
				a.logger.Error().Str("func", "App.Watch").Msg(s.Text())
			}
		}
	}
}

func (a *App) ClearSnapshots(ctx context.Context) error {
	if err := a.services.SyncService.ClearSnapshots(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Snapshot cleared. The next sync will treat every favorite as new.")
	return nil
}

func (a *App) Close() error {
	return a.storages.Close()
}
