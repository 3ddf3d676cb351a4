package tui

import "github.com/MKhiriev/favsync/models"

type statusMsg struct {
	status models.SyncStatus
}

type syncDoneMsg struct {
	err error
}

type updatesClosedMsg struct{}
