package ui

import (
	"strings"
)

// renderHeader renders the top status bar: identity, connection state
// and the help hint.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	snapshot := m.opts.Store.Snapshot()

	parts := []string{
		styles.Logo.Render("chalk"),
		styles.Text.Render(m.principal.Name) + styles.MutedText.Render(" ("+string(m.principal.Role)+")"),
	}

	if snapshot.IsOffline() {
		parts = append(parts, styles.DangerText.Render("● offline"))
	} else if snapshot.LastError != nil {
		parts = append(parts, styles.WarningText.Render("retrying…"))
	} else if snapshot.HasData {
		parts = append(parts, styles.SuccessText.Render("● connected"))
	}

	parts = append(parts, styles.FaintText.Render("? help · L logout · ctrl+c quit"))

	return styles.Header.Width(m.width).Render(strings.Join(parts, styles.FaintText.Render("  ·  ")))
}

// renderTabs renders the screen switcher line.
func (m Model) renderTabs() string {
	styles := m.theme.Styles()
	parts := make([]string, 0, len(m.screens))
	for i, s := range m.screens {
		label := s.title()
		if i < 9 {
			label = itoa(i+1) + " " + label
		}
		if i == m.active {
			parts = append(parts, styles.TabActive.Render(label))
		} else {
			parts = append(parts, styles.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}
