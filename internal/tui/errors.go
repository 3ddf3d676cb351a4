// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/favsync/internal/service"
)

var ErrUserQuit = errors.New("sync interrupted by user")

// humanizeSyncError turns a RunSync error into the text shown to the user.
func humanizeSyncError(err error) string {
	if err == nil {
		return ""
	}

	var failed *service.SyncFailedError
	if errors.As(err, &failed) {
		return failed.Message
	}
	if errors.Is(err, service.ErrSyncInProgress) {
		return "Another sync is already running!"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the remote server is unavailable"
	}

	return err.Error()
}
