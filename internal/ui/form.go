package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField describes one input in a modal form.
type formField struct {
	key         string
	label       string
	placeholder string
	required    bool
	secret      bool
}

// formModel is a controlled form bound to a single entity. It knows
// nothing about HTTP; submission is delegated to the owning screen.
// Form state is keyed by entity identity: binding a different entity
// rebuilds every input so stale values never leak between edit
// sessions.
type formModel struct {
	title    string
	fields   []formField
	inputs   []textinput.Model
	focus    int
	entityID string // empty means create
	errMsg   string
}

func newFormModel(title string, fields []formField, entityID string, values map[string]string) formModel {
	form := formModel{
		title:    title,
		fields:   fields,
		entityID: entityID,
	}
	form.rebuild(values)
	return form
}

func (f *formModel) rebuild(values map[string]string) {
	f.inputs = make([]textinput.Model, len(f.fields))
	for i, field := range f.fields {
		input := textinput.New()
		input.Placeholder = field.placeholder
		input.CharLimit = 200
		input.SetValue(values[field.key])
		if field.secret {
			input.EchoMode = textinput.EchoPassword
		}
		f.inputs[i] = input
	}
	f.focus = 0
	f.errMsg = ""
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
}

// bind switches the form to a different entity, fully resetting field
// state when the identity differs.
func (f *formModel) bind(entityID string, values map[string]string) {
	if f.entityID == entityID {
		return
	}
	f.entityID = entityID
	f.rebuild(values)
}

func (f *formModel) values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for i, field := range f.fields {
		values[field.key] = strings.TrimSpace(f.inputs[i].Value())
	}
	return values
}

func (f *formModel) focusNext() {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *formModel) focusPrev() {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *formModel) updateFocused(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f formModel) view(th Theme, width int, submitting bool) string {
	styles := th.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render(f.title))
	b.WriteString("\n\n")

	for i, field := range f.fields {
		label := field.label
		if field.required {
			label += " *"
		}
		if i == f.focus {
			b.WriteString(styles.AccentText.Render("› " + label))
		} else {
			b.WriteString(styles.MutedText.Render("  " + label))
		}
		b.WriteString("\n  ")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(truncate(f.errMsg, width-6)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if submitting {
		b.WriteString(styles.WarningText.Render("Saving..."))
	} else {
		b.WriteString(styles.FaintText.Render("enter save · tab next field · esc cancel"))
	}

	boxWidth := min(width-4, 64)
	return styles.BoxFocus.Width(boxWidth).Render(b.String())
}

// centered places content in the middle of the available area.
func centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
