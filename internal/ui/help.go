package ui

import "strings"

// renderHelp renders the key binding overlay. Any key dismisses it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Navigation", [][2]string{
			{"tab / shift+tab", "next / previous screen"},
			{"1-9", "jump to screen"},
			{"j / k", "move selection"},
			{"g / G", "first / last row"},
			{"h / l", "previous / next page"},
		}},
		{"Lists", [][2]string{
			{"/", "search (debounced)"},
			{"f, F", "cycle filters"},
			{"r", "reload"},
			{"n", "new record"},
			{"enter / e", "edit selected"},
			{"d", "delete selected (asks to confirm)"},
			{"m", "extra action (amend entry, record grade)"},
		}},
		{"Session", [][2]string{
			{"T", "cycle theme"},
			{"L", "logout"},
			{"ctrl+c", "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Keys"))
	b.WriteString("\n\n")
	for _, section := range sections {
		b.WriteString(styles.WarningText.Render(section.title))
		b.WriteString("\n")
		for _, pair := range section.keys {
			b.WriteString("  ")
			b.WriteString(styles.Text.Render(pad(pair[0], 18)))
			b.WriteString(styles.MutedText.Render(pair[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.FaintText.Render("press any key to close"))

	return centered(styles.Box.Render(b.String()), m.width, m.height)
}
