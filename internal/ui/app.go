package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/prefs"
	"github.com/mwhitby/chalk/internal/session"
	"github.com/mwhitby/chalk/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *api.Client
	Session   *session.Session
	Store     *state.Store
	PageSize  int
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

type rootView int

const (
	viewLogin rootView = iota
	viewConsole
)

// Model is the root application state for Bubble Tea.
type Model struct {
	opts Options

	theme  Theme
	width  int
	height int
	ready  bool

	view      rootView
	login     loginModel
	principal session.Principal

	screens []screen
	inited  []bool
	active  int

	showHelp bool
	notice   string
}

// New creates the root Bubble Tea model.
func New(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.PollTick <= 0 {
		opts.PollTick = time.Second
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Slate"
	}
	if opts.PrefsPath == "" {
		opts.PrefsPath = prefs.DefaultPath()
	}
	return Model{
		opts:  opts,
		theme: GetTheme(themeName),
		view:  viewLogin,
		login: newLoginModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tickCmd(time.Second))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case loginMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = msg.err.Error()
			return m, nil
		}
		m.principal = msg.principal
		m.view = viewConsole
		m.buildScreens()
		return m, m.activateScreen(0)

	case loggedOutMsg:
		m.logout(msg.reason)
		return m, nil
	}

	// Everything else belongs to the screens: fetch pages, debounce
	// expiries, mutation results, selector options.
	return m, m.broadcast(msg)
}

// broadcast hands a message to every screen; each screen ignores
// messages that are not addressed to it.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range m.screens {
		if cmd := s.update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(time.Second)}

	// A token that expired mid-session drops the user back to login.
	if m.view == viewConsole && !m.opts.Session.Authenticated() {
		m.logout("session expired")
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) logout(reason string) {
	m.opts.Session.Logout()
	m.opts.Client.ClearToken()
	m.opts.Store.Reset()
	m.view = viewLogin
	m.login = newLoginModel()
	m.login.errMsg = reason
	m.screens = nil
	m.inited = nil
	m.active = 0
	m.showHelp = false
}

func (m *Model) buildScreens() {
	d := deps{
		ctx:      m.opts.Context,
		client:   m.opts.Client,
		session:  m.opts.Session,
		pageSize: m.opts.PageSize,
	}

	dashboard := newDashboardScreen(m.opts.Store)

	switch m.principal.Role {
	case session.RoleAdmin:
		m.screens = []screen{
			dashboard,
			newStudentsScreen(d),
			newTeachersScreen(d),
			newClassesScreen(d),
			newSubjectsScreen(d),
			newAttendanceScreen(d),
			newFeesScreen(d, nil),
			newTimetableScreen(d),
			newExamsScreen(d),
			newAssignmentsScreen(d, ""),
		}
	case session.RoleTeacher:
		m.screens = []screen{
			dashboard,
			newAttendanceScreen(d),
			newExamsScreen(d),
			newTimetableScreen(d),
			newAssignmentsScreen(d, m.principal.ID),
		}
	case session.RoleStudent:
		m.screens = []screen{
			dashboard,
			newFeesScreen(d, map[string]string{"studentId": m.principal.ID}),
			newTimetableScreen(d),
		}
	default:
		// Unknown roles never reach here; session.Login rejects them.
		m.screens = nil
	}
	m.inited = make([]bool, len(m.screens))
	m.active = 0
}

// activateScreen switches tabs, lazily running the screen's first
// fetch.
func (m *Model) activateScreen(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.screens) {
		return nil
	}
	m.active = idx
	if !m.inited[idx] {
		m.inited[idx] = true
		return m.screens[idx].init()
	}
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.view == viewLogin {
		return m.handleLoginKey(msg)
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	active := m.activeScreen()

	// Text inputs and modals get the keyboard before global shortcuts.
	if active != nil && active.capturing() {
		cmd, _ := active.handleKey(msg)
		return m, cmd
	}

	switch msg.String() {
	case "?":
		m.showHelp = true
		return m, nil
	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		_ = prefs.Save(m.opts.PrefsPath, prefs.Prefs{Theme: m.theme.Name, PageSize: m.opts.PageSize})
		return m, nil
	case "tab":
		return m, m.activateScreen((m.active + 1) % max(len(m.screens), 1))
	case "shift+tab":
		return m, m.activateScreen((m.active - 1 + len(m.screens)) % max(len(m.screens), 1))
	case "L":
		m.logout("")
		return m, nil
	}

	if idx, ok := digitIndex(msg.String()); ok && idx < len(m.screens) {
		return m, m.activateScreen(idx)
	}

	if active != nil {
		if cmd, handled := active.handleKey(msg); handled {
			return m, cmd
		}
	}
	return m, nil
}

func digitIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}

func (m Model) activeScreen() screen {
	if m.active < 0 || m.active >= len(m.screens) {
		return nil
	}
	return m.screens[m.active]
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.view == viewLogin {
		return m.renderLogin()
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	if active := m.activeScreen(); active != nil {
		content = active.view(m.width, m.height-3, m.theme)
	}
	return m.renderHeader() + "\n" + m.renderTabs() + "\n" + content
}
