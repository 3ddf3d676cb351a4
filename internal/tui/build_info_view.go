// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/favsync/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Application", "favsync"},
		{"Version", info.Version},
		{"Date", info.Date},
		{"Commit", info.Commit},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		v := strings.TrimSpace(r[1])
		if v == "" {
			v = "N/A"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", r[0], v))
	}

	return renderPage("ABOUT", overlayStyle.Render(strings.Join(lines, "\n")), "esc: back")
}
