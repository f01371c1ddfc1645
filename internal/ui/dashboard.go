package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitby/chalk/internal/state"
)

// dashboardScreen shows the headline totals the background poller keeps
// fresh in the store. It owns no list state of its own.
type dashboardScreen struct {
	store *state.Store
}

func newDashboardScreen(store *state.Store) screen {
	return &dashboardScreen{store: store}
}

func (s *dashboardScreen) id() string                           { return "dashboard" }
func (s *dashboardScreen) title() string                        { return "Dashboard" }
func (s *dashboardScreen) init() tea.Cmd                        { return nil }
func (s *dashboardScreen) update(tea.Msg) tea.Cmd               { return nil }
func (s *dashboardScreen) handleKey(tea.KeyMsg) (tea.Cmd, bool) { return nil, false }
func (s *dashboardScreen) capturing() bool                      { return false }

func (s *dashboardScreen) view(width, height int, th Theme) string {
	styles := th.Styles()
	snapshot := s.store.Snapshot()

	if !snapshot.HasData {
		if snapshot.LastError != nil {
			return styles.DangerText.Render("Dashboard unavailable: ") +
				styles.MutedText.Render(truncate(snapshot.LastError.Error(), width-24))
		}
		return styles.MutedText.Render("Gathering numbers…")
	}

	counts := snapshot.Counts
	tile := func(label string, value int, valueStyle lipgloss.Style) string {
		return styles.Box.Width(18).Render(
			valueStyle.Render(fmt.Sprintf("%d", value)) + "\n" + styles.MutedText.Render(label))
	}

	tiles := []string{
		tile("Students", counts.Students, styles.AccentText),
		tile("Teachers", counts.Teachers, styles.AccentText),
		tile("Classes", counts.Classes, styles.Text),
		tile("Subjects", counts.Subjects, styles.Text),
		tile("Fees pending", counts.FeesPending, styles.WarningText),
		tile("Fees overdue", counts.FeesOverdue, styles.DangerText),
	}

	var b strings.Builder
	b.WriteString(joinTiles(tiles, width))
	b.WriteString("\n\n")

	updated := snapshot.LastUpdated.Format("15:04:05")
	if time.Since(snapshot.LastUpdated) < time.Minute {
		updated += " (now)"
	}
	b.WriteString(styles.FaintText.Render("updated " + updated))
	if snapshot.IsOffline() {
		b.WriteString("  ")
		b.WriteString(styles.DangerText.Render("API unreachable"))
	}
	return b.String()
}

// joinTiles lays tiles out horizontally, wrapping to fit the width.
func joinTiles(tiles []string, width int) string {
	perRow := max(width/20, 1)
	var lines []string
	for start := 0; start < len(tiles); start += perRow {
		end := min(start+perRow, len(tiles))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, tiles[start:end]...))
	}
	return strings.Join(lines, "\n")
}
