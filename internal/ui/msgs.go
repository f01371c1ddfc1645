package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhitby/chalk/internal/resource"
	"github.com/mwhitby/chalk/internal/session"
)

// Messages shared across screens. Page results are generic and live in
// screen.go; everything here is screen-agnostic.

type tickMsg time.Time

// debounceMsg fires when a search edit's quiet period elapses. The
// token decides whether the edit is still the latest one.
type debounceMsg struct {
	screenID string
	token    uint64
}

// mutationMsg is a resolved create/update/delete submission.
type mutationMsg struct {
	screenID string
	intent   resource.Intent
	err      error
}

// optionsMsg delivers dynamically loaded filter options (class and
// teacher selectors).
type optionsMsg struct {
	screenID string
	filters  []filterDef
	err      error
}

// detailMsg delivers a single entity's fields for form pre-population.
type detailMsg struct {
	screenID string
	entityID string
	values   map[string]string
	err      error
}

// loginMsg is a resolved credential exchange.
type loginMsg struct {
	principal session.Principal
	err       error
}

// loggedOutMsg asks the root model to drop to the login view.
type loggedOutMsg struct {
	reason string
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func debounceCmd(screenID string, spec resource.DebounceSpec) tea.Cmd {
	return tea.Tick(spec.Delay, func(time.Time) tea.Msg {
		return debounceMsg{screenID: screenID, token: spec.Token}
	})
}
