package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/favsync/internal/service"
	"github.com/MKhiriev/favsync/models"
)

const visibleErrors = 8

// syncModel runs one sync pass and renders its status stream.
type syncModel struct {
	ctx     context.Context
	svc     service.FavoritesSyncService
	updates <-chan models.SyncStatus

	spinner spinner.Model
	status  models.SyncStatus
	done    bool
	err     error
	offset  int

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

func newSyncModel(ctx context.Context, svc service.FavoritesSyncService, updates <-chan models.SyncStatus, info models.AppBuildInfo) syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncModel{
		ctx:       ctx,
		svc:       svc,
		updates:   updates,
		spinner:   s,
		status:    svc.Status(),
		buildInfo: info,
	}
}

func (m syncModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runSync(m.ctx, m.svc), waitForStatus(m.updates))
}

func runSync(ctx context.Context, svc service.FavoritesSyncService) tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{err: svc.RunSync(ctx)}
	}
}

func waitForStatus(updates <-chan models.SyncStatus) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return updatesClosedMsg{}
		}
		return statusMsg{status: s}
	}
}

func (m syncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case statusMsg:
		if m.done {
			return m, nil
		}
		m.status = msg.status
		return m, waitForStatus(m.updates)

	case syncDoneMsg:
		m.done = true
		m.err = msg.err
		m.status = m.svc.Status()
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m syncModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = !m.done
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = !m.showBuildInfo
	case m.showBuildInfo && msg.String() == "esc":
		m.showBuildInfo = false
	case m.done && key.Matches(msg, keys.close):
		return m, tea.Quit
	case key.Matches(msg, keys.scrollUp):
		m.offset = max(m.offset-1, 0)
	case key.Matches(msg, keys.scrollDn):
		m.offset = min(m.offset+1, max(len(m.status.Errors)-visibleErrors, 0))
	}
	return m, nil
}

func (m syncModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	switch {
	case !m.done:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.progressText())
	case m.status.State == models.SyncComplete && len(m.status.Errors) == 0:
		b.WriteString(successStyle.Render(m.status.Text()))
	case m.status.State == models.SyncComplete:
		b.WriteString(warningStyle.Render(m.status.Text()))
		b.WriteString("\n\n")
		b.WriteString(m.errorList())
	case m.err != nil:
		b.WriteString(overlayStyle.Render(errorStyle.Render("Sync failed") + "\n\n" + humanizeSyncError(m.err)))
	default:
		b.WriteString(m.status.Text())
	}

	hotKeys := "v: about"
	if m.done {
		hotKeys = "enter / q: close  ↑/↓: scroll  " + hotKeys
	}
	return renderPage("FAVORITES SYNC", b.String(), hotKeys)
}

func (m syncModel) progressText() string {
	switch m.status.State {
	case models.SyncIdle, models.SyncInitializing:
		return "Starting sync..."
	case models.SyncProcessing:
		text := m.status.Message
		if m.status.ThrottleWarning {
			text += warningStyle.Render(models.ThrottleWarningSuffix)
		}
		return text
	default:
		return m.status.Text()
	}
}

func (m syncModel) errorList() string {
	errs := m.status.Errors
	end := min(m.offset+visibleErrors, len(errs))

	var b strings.Builder
	for _, e := range errs[m.offset:end] {
		b.WriteString("• ")
		b.WriteString(fitText(e, 96))
		b.WriteString("\n")
	}
	if len(errs) > visibleErrors {
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d-%d of %d", m.offset+1, end, len(errs))))
	}
	return strings.TrimRight(b.String(), "\n")
}
