package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/resource"
	"github.com/mwhitby/chalk/internal/session"
)

// screen is one tab of the console.
type screen interface {
	id() string
	title() string
	init() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	handleKey(msg tea.KeyMsg) (tea.Cmd, bool)
	view(width, height int, th Theme) string
	// capturing reports that a text input or modal owns the keyboard,
	// so global shortcuts must stand down.
	capturing() bool
}

// deps are the shared collaborators screens need.
type deps struct {
	ctx      context.Context
	client   *api.Client
	session  *session.Session
	pageSize int
}

type column struct {
	title string
	width int
}

type filterOption struct {
	value string
	label string
}

// filterDef is a discrete filter cycled from the keyboard. The empty
// value means "all".
type filterDef struct {
	name    string
	label   string
	options []filterOption
}

// extraForm is a secondary modal bound to the selected row, e.g. grade
// entry on an exam.
type extraForm struct {
	key    string
	label  string
	fields []formField
	submit func(ctx context.Context, id string, values map[string]string) error
}

// listConfig describes one resource's screen: how to fetch, render and
// mutate it. Nil mutation funcs disable the matching action.
type listConfig[E any] struct {
	screenID string
	name     string

	columns  []column
	cells    func(E) []string
	rowID    func(E) string
	rowLabel func(E) string

	searchable bool
	filters    []filterDef
	// loadOptions replaces filter placeholder options with live ones
	// (class and teacher selectors).
	loadOptions func(ctx context.Context) ([]filterDef, error)
	// requireFilter holds fetches until the named filter has a value.
	requireFilter string

	fetch func(ctx context.Context, q resource.Query) ([]E, api.Meta, error)

	formTitle  string
	formFields []formField
	formValues func(E) map[string]string
	// detail pre-populates the edit form from the server instead of the
	// row, for resources whose list rows are abridged.
	detail func(ctx context.Context, id string) (map[string]string, error)

	create func(ctx context.Context, values map[string]string) error
	update func(ctx context.Context, id string, values map[string]string) error
	remove func(ctx context.Context, id string) error

	extras []extraForm
}

type formMode int

const (
	formClosed formMode = iota
	formCreate
	formUpdate
	formExtra
)

// pageMsg delivers a resolved fetch to its owning screen.
type pageMsg[E any] struct {
	screenID string
	res      resource.FetchResult[E]
}

// listScreen hosts one ListController and its table, search box, modal
// form and delete confirmation.
type listScreen[E any] struct {
	cfg  listConfig[E]
	deps deps

	ctrl *resource.ListController[E]
	mut  resource.Mutator
	gate resource.DeleteGate

	selected  int
	search    textinput.Model
	searching bool

	form      formModel
	mode      formMode
	extraIdx  int
	confirmID string

	filterIdx map[string]int
	notice    string
	noticeErr bool
}

func newListScreen[E any](d deps, cfg listConfig[E]) *listScreen[E] {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 80

	return &listScreen[E]{
		cfg:       cfg,
		deps:      d,
		ctrl:      resource.NewListController[E](d.pageSize),
		search:    search,
		filterIdx: map[string]int{},
	}
}

func (s *listScreen[E]) id() string    { return s.cfg.screenID }
func (s *listScreen[E]) title() string { return s.cfg.name }

func (s *listScreen[E]) capturing() bool {
	return s.searching || s.mode != formClosed || s.confirmID != ""
}

func (s *listScreen[E]) init() tea.Cmd {
	var cmds []tea.Cmd
	if s.cfg.loadOptions != nil {
		cmds = append(cmds, s.optionsCmd())
	}
	if cmd := s.reload(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// reload issues a fetch for the controller's current parameters, unless
// a mandatory filter is still unset.
func (s *listScreen[E]) reload() tea.Cmd {
	if s.cfg.requireFilter != "" && s.ctrl.Filter(s.cfg.requireFilter) == "" {
		return nil
	}
	return s.fetchCmd(s.ctrl.Reload())
}

func (s *listScreen[E]) fetchCmd(spec resource.FetchSpec) tea.Cmd {
	ctx := s.deps.ctx
	return func() tea.Msg {
		rows, meta, err := s.cfg.fetch(ctx, spec.Query)
		return pageMsg[E]{
			screenID: s.cfg.screenID,
			res:      resource.FetchResult[E]{Seq: spec.Seq, Rows: rows, Meta: meta, Err: err},
		}
	}
}

func (s *listScreen[E]) optionsCmd() tea.Cmd {
	ctx := s.deps.ctx
	load := s.cfg.loadOptions
	return func() tea.Msg {
		filters, err := load(ctx)
		return optionsMsg{screenID: s.cfg.screenID, filters: filters, err: err}
	}
}

func (s *listScreen[E]) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pageMsg[E]:
		if msg.screenID != s.cfg.screenID {
			return nil
		}
		if !s.ctrl.Apply(msg.res) {
			return nil // superseded fetch, result discarded
		}
		if msg.res.Err != nil {
			if api.IsUnauthorized(msg.res.Err) {
				return func() tea.Msg { return loggedOutMsg{reason: "session expired"} }
			}
			s.setNotice(msg.res.Err.Error(), true)
			slog.Warn("list fetch failed", "screen", s.cfg.screenID, "error", msg.res.Err)
		} else {
			s.clampSelection()
			s.notice = ""
		}
		return nil

	case debounceMsg:
		if msg.screenID != s.cfg.screenID {
			return nil
		}
		if spec, ok := s.ctrl.ResolveSearch(msg.token); ok {
			return s.fetchCmd(spec)
		}
		return nil

	case optionsMsg:
		if msg.screenID != s.cfg.screenID {
			return nil
		}
		if msg.err != nil {
			s.setNotice("load selectors: "+msg.err.Error(), true)
			return nil
		}
		s.cfg.filters = msg.filters
		return nil

	case detailMsg:
		if msg.screenID != s.cfg.screenID {
			return nil
		}
		if msg.err != nil {
			s.setNotice(msg.err.Error(), true)
			return nil
		}
		s.openForm(formUpdate, msg.entityID, msg.values)
		return nil

	case mutationMsg:
		if msg.screenID != s.cfg.screenID {
			return nil
		}
		s.mut.Finish()
		if msg.err != nil {
			if api.IsUnauthorized(msg.err) {
				return func() tea.Msg { return loggedOutMsg{reason: "session expired"} }
			}
			if s.mode != formClosed {
				s.form.errMsg = msg.err.Error()
			} else {
				s.setNotice(msg.err.Error(), true)
			}
			slog.Warn("mutation failed", "screen", s.cfg.screenID, "intent", msg.intent.String(), "error", msg.err)
			return nil
		}
		s.mode = formClosed
		s.setNotice(msg.intent.String()+" ok", false)
		// Reload at the current (filters, page, limit) tuple; never
		// patch rows locally.
		return s.reload()
	}
	return nil
}

func (s *listScreen[E]) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if s.confirmID != "" {
		return s.handleConfirmKey(msg), true
	}
	if s.mode != formClosed {
		return s.handleFormKey(msg), true
	}
	if s.searching {
		return s.handleSearchKey(msg), true
	}
	return s.handleListKey(msg)
}

func (s *listScreen[E]) handleListKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	rows := s.ctrl.Rows()
	switch msg.String() {
	case "j", "down":
		if s.selected < len(rows)-1 {
			s.selected++
		}
		return nil, true
	case "k", "up":
		if s.selected > 0 {
			s.selected--
		}
		return nil, true
	case "g", "home":
		s.selected = 0
		return nil, true
	case "G", "end":
		if len(rows) > 0 {
			s.selected = len(rows) - 1
		}
		return nil, true
	case "l", "right":
		if spec, ok := s.ctrl.NextPage(); ok {
			return s.fetchCmd(spec), true
		}
		return nil, true
	case "h", "left":
		if spec, ok := s.ctrl.PrevPage(); ok {
			return s.fetchCmd(spec), true
		}
		return nil, true
	case "r":
		return s.reload(), true
	case "/":
		if s.cfg.searchable {
			s.searching = true
			s.search.Focus()
			return textinput.Blink, true
		}
		return nil, false
	case "f":
		return s.cycleFilter(0), true
	case "F":
		return s.cycleFilter(1), true
	case "n":
		if s.cfg.create != nil {
			s.openForm(formCreate, "", nil)
			return textinput.Blink, true
		}
		return nil, false
	case "enter", "e":
		return s.startEdit(), true
	case "d", "delete":
		if s.cfg.remove == nil {
			return nil, false
		}
		if row, ok := s.selectedRow(); ok {
			id := s.cfg.rowID(row)
			s.gate.Request(id)
			s.confirmID = id
		}
		return nil, true
	}

	for i, extra := range s.cfg.extras {
		if msg.String() == extra.key {
			if row, ok := s.selectedRow(); ok {
				s.openForm(formExtra, s.cfg.rowID(row), nil)
				s.extraIdx = i
				s.form.title = extra.label
				s.form.fields = extra.fields
				s.form.rebuild(nil)
				return textinput.Blink, true
			}
			return nil, true
		}
	}
	return nil, false
}

func (s *listScreen[E]) startEdit() tea.Cmd {
	if s.cfg.update == nil {
		return nil
	}
	row, ok := s.selectedRow()
	if !ok {
		return nil
	}
	id := s.cfg.rowID(row)
	if s.cfg.detail != nil {
		ctx, load := s.deps.ctx, s.cfg.detail
		screenID := s.cfg.screenID
		return func() tea.Msg {
			values, err := load(ctx, id)
			return detailMsg{screenID: screenID, entityID: id, values: values, err: err}
		}
	}
	var values map[string]string
	if s.cfg.formValues != nil {
		values = s.cfg.formValues(row)
	}
	s.openForm(formUpdate, id, values)
	return textinput.Blink
}

func (s *listScreen[E]) openForm(mode formMode, entityID string, values map[string]string) {
	title := s.cfg.formTitle
	switch mode {
	case formCreate:
		title = "New " + title
	case formUpdate:
		title = "Edit " + title
	}
	s.form = newFormModel(title, s.cfg.formFields, entityID, values)
	s.mode = mode
}

func (s *listScreen[E]) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		s.searching = false
		s.search.Blur()
		return nil
	}
	var cmds []tea.Cmd
	if cmd := func() tea.Cmd {
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		return cmd
	}(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if spec, ok := s.ctrl.SetSearch(strings.TrimSpace(s.search.Value())); ok {
		cmds = append(cmds, debounceCmd(s.cfg.screenID, spec))
	}
	return tea.Batch(cmds...)
}

func (s *listScreen[E]) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	if s.mut.InFlight() {
		// The form is locked until the submission resolves.
		return nil
	}
	switch msg.String() {
	case "esc":
		s.mode = formClosed
		return nil
	case "tab", "down":
		s.form.focusNext()
		return nil
	case "shift+tab", "up":
		s.form.focusPrev()
		return nil
	case "enter":
		return s.submitForm()
	}
	return s.form.updateFocused(msg)
}

func (s *listScreen[E]) submitForm() tea.Cmd {
	values := s.form.values()
	entityID := s.form.entityID
	ctx := s.deps.ctx
	screenID := s.cfg.screenID

	switch s.mode {
	case formCreate:
		if !s.mut.Begin(resource.IntentCreate) {
			return nil
		}
		create := s.cfg.create
		return func() tea.Msg {
			return mutationMsg{screenID: screenID, intent: resource.IntentCreate, err: create(ctx, values)}
		}
	case formUpdate:
		if !s.mut.Begin(resource.IntentUpdate) {
			return nil
		}
		update := s.cfg.update
		return func() tea.Msg {
			return mutationMsg{screenID: screenID, intent: resource.IntentUpdate, err: update(ctx, entityID, values)}
		}
	case formExtra:
		if !s.mut.Begin(resource.IntentUpdate) {
			return nil
		}
		submit := s.cfg.extras[s.extraIdx].submit
		return func() tea.Msg {
			return mutationMsg{screenID: screenID, intent: resource.IntentUpdate, err: submit(ctx, entityID, values)}
		}
	}
	return nil
}

func (s *listScreen[E]) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		id := s.confirmID
		s.confirmID = ""
		if !s.gate.Confirm(id) {
			return nil
		}
		if !s.mut.Begin(resource.IntentDelete) {
			return nil
		}
		ctx, remove := s.deps.ctx, s.cfg.remove
		screenID := s.cfg.screenID
		return func() tea.Msg {
			return mutationMsg{screenID: screenID, intent: resource.IntentDelete, err: remove(ctx, id)}
		}
	case "n", "N", "esc":
		s.gate.Cancel()
		s.confirmID = ""
		return nil
	}
	return nil
}

func (s *listScreen[E]) cycleFilter(idx int) tea.Cmd {
	if idx >= len(s.cfg.filters) {
		return nil
	}
	def := s.cfg.filters[idx]
	if len(def.options) == 0 {
		return nil
	}
	next := (s.filterIdx[def.name] + 1) % len(def.options)
	s.filterIdx[def.name] = next
	if spec, ok := s.ctrl.SetFilter(def.name, def.options[next].value); ok {
		return s.fetchCmd(spec)
	}
	return nil
}

func (s *listScreen[E]) selectedRow() (E, bool) {
	var zero E
	rows := s.ctrl.Rows()
	if s.selected < 0 || s.selected >= len(rows) {
		return zero, false
	}
	return rows[s.selected], true
}

func (s *listScreen[E]) clampSelection() {
	count := len(s.ctrl.Rows())
	if count == 0 {
		s.selected = 0
		return
	}
	if s.selected >= count {
		s.selected = count - 1
	}
}

func (s *listScreen[E]) setNotice(text string, isErr bool) {
	s.notice = text
	s.noticeErr = isErr
}

func (s *listScreen[E]) view(width, height int, th Theme) string {
	styles := th.Styles()

	if s.mode != formClosed {
		return centered(s.form.view(th, width, s.mut.InFlight()), width, height)
	}
	if s.confirmID != "" {
		return centered(s.confirmView(th, width), width, height)
	}

	var b strings.Builder
	b.WriteString(s.statusLine(th, width))
	b.WriteString("\n")
	b.WriteString(s.tableView(th, width))

	if s.notice != "" {
		b.WriteString("\n")
		if s.noticeErr {
			b.WriteString(styles.DangerText.Render(truncate(s.notice, width-2)))
		} else {
			b.WriteString(styles.SuccessText.Render(truncate(s.notice, width-2)))
		}
	}
	return b.String()
}

func (s *listScreen[E]) statusLine(th Theme, width int) string {
	styles := th.Styles()
	meta := s.ctrl.Meta()

	parts := []string{}
	if s.ctrl.Loading() {
		parts = append(parts, styles.WarningText.Render("loading…"))
	}
	if meta.TotalPages > 0 {
		parts = append(parts, styles.MutedText.Render(
			fmt.Sprintf("page %d/%d · %d total", meta.Page, meta.TotalPages, meta.Total)))
	}
	for _, def := range s.cfg.filters {
		value := s.ctrl.Filter(def.name)
		label := "all"
		for _, opt := range def.options {
			if opt.value == value && value != "" {
				label = opt.label
			}
		}
		parts = append(parts, styles.FaintText.Render(def.label+": ")+styles.Text.Render(label))
	}
	if s.searching {
		parts = append(parts, styles.AccentText.Render("/"+s.search.Value()+"▌"))
	} else if q := s.ctrl.Query(); q.Search != "" {
		parts = append(parts, styles.AccentText.Render("/"+q.Search))
	}
	if s.cfg.requireFilter != "" && s.ctrl.Filter(s.cfg.requireFilter) == "" {
		parts = append(parts, styles.WarningText.Render("press f to choose a "+s.cfg.requireFilter))
	}
	return truncate(strings.Join(parts, styles.FaintText.Render("  ·  ")), width*3)
}

func (s *listScreen[E]) tableView(th Theme, width int) string {
	styles := th.Styles()
	rows := s.ctrl.Rows()

	header := make([]string, len(s.cfg.columns))
	for i, col := range s.cfg.columns {
		header[i] = pad(col.title, col.width)
	}
	var b strings.Builder
	b.WriteString(styles.MutedText.Bold(true).Render(truncate(strings.Join(header, "  "), width)))
	b.WriteString("\n")

	if len(rows) == 0 {
		if s.ctrl.Phase() == resource.PhaseReady {
			b.WriteString(styles.FaintText.Render("no records"))
		}
		return b.String()
	}

	for i, row := range rows {
		cells := s.cfg.cells(row)
		line := make([]string, len(s.cfg.columns))
		for c := range s.cfg.columns {
			value := ""
			if c < len(cells) {
				value = cells[c]
			}
			line[c] = pad(value, s.cfg.columns[c].width)
		}
		text := truncate(strings.Join(line, "  "), width)
		if i == s.selected {
			b.WriteString(styles.Selected.Render(text))
		} else {
			b.WriteString(styles.Text.Render(text))
		}
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *listScreen[E]) confirmView(th Theme, width int) string {
	styles := th.Styles()
	label := s.confirmID
	if row, ok := s.selectedRow(); ok && s.cfg.rowLabel != nil {
		label = s.cfg.rowLabel(row)
	}
	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Delete " + label + "?"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("y confirm · n cancel"))
	return styles.BoxFocus.Width(min(width-4, 48)).Render(b.String())
}
