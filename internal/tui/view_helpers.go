package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const pageWidth = 72

var dividerStyle = lipgloss.NewStyle().Faint(true)

// renderPage lays out a titled page: body between two dividers, key help
// underneath.
func renderPage(title, body, hotKeys string) string {
	divider := dividerStyle.Render(strings.Repeat("─", pageWidth))

	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	help := []string{"ctrl+c: quit"}
	if strings.TrimSpace(hotKeys) != "" {
		help = append([]string{hotKeys}, help...)
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		divider,
		"",
		body,
		"",
		divider,
		helpStyle.Render(strings.Join(help, " • ")),
	))
}

// fitText shortens v to at most max runes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
