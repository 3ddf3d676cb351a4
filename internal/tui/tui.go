// Package tui renders the interactive progress screen of a sync run.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/internal/service"
	"github.com/MKhiriev/favsync/models"
)

type TUI struct {
	syncService service.FavoritesSyncService
	buildInfo   models.AppBuildInfo
	logger      *logger.Logger
}

func New(syncService service.FavoritesSyncService, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{syncService: syncService, buildInfo: buildInfo, logger: log}, nil
}

// SyncFlow runs one sync pass behind a full-screen progress view and returns
// the RunSync result once the user closes the screen. Leaving the screen
// before the run ends cancels it and returns ErrUserQuit.
func (t *TUI) SyncFlow(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := t.syncService.Subscribe()
	defer t.syncService.Unsubscribe(updates)

	model := newSyncModel(ctx, t.syncService, updates, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(syncModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Warn().Str("func", "TUI.SyncFlow").Msg("sync screen closed before the run finished")
		return ErrUserQuit
	}
	return result.err
}
