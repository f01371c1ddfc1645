package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhitby/chalk/internal/api"
)

// loginModel is the credential form shown while the session is
// anonymous.
type loginModel struct {
	email      textinput.Model
	password   textinput.Model
	focus      int
	errMsg     string
	submitting bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	return loginModel{email: email, password: password}
}

func (l *loginModel) toggleFocus() {
	if l.focus == 0 {
		l.focus = 1
		l.email.Blur()
		l.password.Focus()
	} else {
		l.focus = 0
		l.password.Blur()
		l.email.Focus()
	}
}

func (l *loginModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if l.focus == 0 {
		l.email, cmd = l.email.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return cmd
}

// loginCmd runs the credential exchange: token first, then the
// principal via /me. The role in the /me response decides access; an
// unrecognized role tears the exchange down and denies entry.
func (m *Model) loginCmd(email, password string) tea.Cmd {
	ctx := m.opts.Context
	client := m.opts.Client
	sess := m.opts.Session
	return func() tea.Msg {
		token, err := client.Login(ctx, api.Credentials{Email: email, Password: password})
		if err != nil {
			return loginMsg{err: err}
		}
		client.SetToken(token)
		principal, err := client.Me(ctx)
		if err != nil {
			client.ClearToken()
			return loginMsg{err: err}
		}
		identity, err := sess.Login(token, principal)
		if err != nil {
			client.ClearToken()
			return loginMsg{err: err}
		}
		return loginMsg{principal: identity}
	}
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.submitting {
		return m, nil
	}
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.login.toggleFocus()
		return m, nil
	case "enter":
		email := strings.TrimSpace(m.login.email.Value())
		password := m.login.password.Value()
		m.login.submitting = true
		m.login.errMsg = ""
		return m, m.loginCmd(email, password)
	}
	return m, m.login.updateFocused(msg)
}

func (m Model) renderLogin() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Logo.Render("chalk"))
	b.WriteString(styles.MutedText.Render("  school console"))
	b.WriteString("\n\n")

	labels := []string{"Email", "Password"}
	inputs := []string{m.login.email.View(), m.login.password.View()}
	for i := range labels {
		if i == m.login.focus {
			b.WriteString(styles.AccentText.Render("› " + labels[i]))
		} else {
			b.WriteString(styles.MutedText.Render("  " + labels[i]))
		}
		b.WriteString("\n  ")
		b.WriteString(inputs[i])
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.login.submitting:
		b.WriteString(styles.WarningText.Render("Signing in..."))
	case m.login.errMsg != "":
		b.WriteString(styles.DangerText.Render(truncate(m.login.errMsg, 56)))
	default:
		b.WriteString(styles.FaintText.Render("enter sign in · ctrl+c quit"))
	}

	box := styles.BoxFocus.Width(min(m.width-4, 60)).Render(b.String())
	return centered(box, m.width, m.height)
}
