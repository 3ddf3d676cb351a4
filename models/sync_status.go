// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ThrottleWarningSuffix is appended to a progress message while the sync is
// slowed down by request throttling.
const ThrottleWarningSuffix = "\n\nSync is currently throttling (to avoid being banned from the remote server) and may take a long time to complete."

// SyncState enumerates the lifecycle states of a favorites sync run.
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncInitializing
	SyncProcessing
	SyncError
	SyncComplete
)

func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncInitializing:
		return "initializing"
	case SyncProcessing:
		return "processing"
	case SyncError:
		return "error"
	case SyncComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// SyncStatus is the observable state of the sync engine.
//
// Message is set for Processing and Error, ThrottleWarning only for
// Processing, and Errors holds the per-item failures of a Complete run.
type SyncStatus struct {
	State           SyncState
	Message         string
	ThrottleWarning bool
	Errors          []string
}

func StatusIdle() SyncStatus { return SyncStatus{State: SyncIdle} }

func StatusInitializing() SyncStatus { return SyncStatus{State: SyncInitializing} }

func StatusProcessing(message string, throttleWarning bool) SyncStatus {
	return SyncStatus{State: SyncProcessing, Message: message, ThrottleWarning: throttleWarning}
}

func StatusError(message string) SyncStatus {
	return SyncStatus{State: SyncError, Message: message}
}

func StatusComplete(errs []string) SyncStatus {
	return SyncStatus{State: SyncComplete, Errors: errs}
}

// IsTerminal reports whether the run that produced this status has ended.
func (s SyncStatus) IsTerminal() bool {
	return s.State == SyncError || s.State == SyncComplete
}

// IsRunning reports whether a run is in progress.
func (s SyncStatus) IsRunning() bool {
	return s.State == SyncInitializing || s.State == SyncProcessing
}

// Text renders the status as user-facing text.
func (s SyncStatus) Text() string {
	switch s.State {
	case SyncIdle:
		return "Waiting for sync to start"
	case SyncInitializing:
		return "Initializing sync"
	case SyncProcessing:
		if s.ThrottleWarning {
			return s.Message + ThrottleWarningSuffix
		}
		return s.Message
	case SyncError:
		return "Sync failed: " + s.Message
	case SyncComplete:
		if len(s.Errors) == 0 {
			return "Sync complete!"
		}
		return "Sync complete with errors"
	default:
		return ""
	}
}
