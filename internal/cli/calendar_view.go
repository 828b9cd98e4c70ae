package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Tanudin/Happy-Child/internal/calendar"
	"github.com/Tanudin/Happy-Child/internal/cli/formatter"
	"github.com/Tanudin/Happy-Child/internal/domain"
	"github.com/Tanudin/Happy-Child/internal/selection"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// monthLoadedMsg signals that a month's activities and schedules have
// been fetched.
type monthLoadedMsg struct {
	res selection.Result
	err error
}

// actionDoneMsg signals that a store mutation finished. When reload is
// set the model rehydrates the visible month.
type actionDoneMsg struct {
	err    error
	reload bool
	status string
}

type calendarKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Enter     key.Binding
	Delete    key.Binding
	Confirm   key.Binding
	Schedule  key.Binding
	Reload    key.Binding
	Quit      key.Binding
}

func newCalendarKeyMap() calendarKeyMap {
	return calendarKeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("]", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add/edit")),
		Delete:    key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Confirm:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "confirm all")),
		Schedule:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "custody")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type formMode int

const (
	formNone formMode = iota
	formActivity
	formSchedule
)

// calendarModel is the interactive month view for one child.
type calendarModel struct {
	app     *App
	session *selection.Session
	child   *domain.Child
	keys    calendarKeyMap

	year   int
	month  time.Month
	cursor domain.CalDate
	today  domain.CalDate

	loading bool
	status  string
	err     error

	// active form state
	mode      formMode
	form      *huh.Form
	formValue string
	formInput scheduleInput
	pending   *selection.PendingInput
}

func newCalendarModel(app *App, child *domain.Child, year int, month time.Month) *calendarModel {
	today := domain.DateOf(time.Now())
	cursor := domain.NewCalDate(year, month, 1)
	if today.Year == year && today.Month == month {
		cursor = today
	}
	return &calendarModel{
		app:     app,
		session: selection.NewSession(app.Events, app.Custody),
		child:   child,
		keys:    newCalendarKeyMap(),
		year:    year,
		month:   month,
		cursor:  cursor,
		today:   today,
		loading: true,
	}
}

func (m *calendarModel) Init() tea.Cmd {
	return m.hydrate()
}

// hydrate issues a fresh request for the visible month and returns the
// command that fetches it.
func (m *calendarModel) hydrate() tea.Cmd {
	req := m.session.Hydrate(m.child.ID, m.year, m.month)
	session := m.session
	return func() tea.Msg {
		res, err := session.Fetch(context.Background(), req)
		return monthLoadedMsg{res: res, err: err}
	}
}

func (m *calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case monthLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.session.Apply(msg.res)
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = msg.status
		if msg.reload {
			m.loading = true
			return m, m.hydrate()
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode != formNone {
			return m.updateForm(msg)
		}
		return m.updateNormal(msg)
	}

	if m.mode != formNone {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m *calendarModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(7)

	case key.Matches(msg, m.keys.PrevMonth):
		return m.gotoMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		return m.gotoMonth(1)

	case key.Matches(msg, m.keys.Today):
		m.cursor = m.today
		if m.today.Year != m.year || m.today.Month != m.month {
			m.year, m.month = m.today.Year, m.today.Month
			m.loading = true
			return m, m.hydrate()
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.beginActivityInput()

	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.session.Entry(m.cursor); !ok {
			return m, nil
		}
		return m, m.runAction(func(ctx context.Context) (string, error) {
			return "Removed", m.session.Remove(ctx, m.cursor)
		}, false)

	case key.Matches(msg, m.keys.Confirm):
		if m.session.Len() == 0 {
			return m, nil
		}
		n := m.session.Len()
		return m, m.runAction(func(ctx context.Context) (string, error) {
			return fmt.Sprintf("Confirmed %d activities", n), m.session.ConfirmAll(ctx)
		}, true)

	case key.Matches(msg, m.keys.Schedule):
		m.mode = formSchedule
		m.formInput = scheduleInput{ParentType: "mom", Color: "#4285f4"}
		m.form = scheduleForm(&m.formInput)
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, m.hydrate()
	}
	return m, nil
}

// moveCursor shifts the cursor by days, hopping to the adjacent month
// when it crosses a month boundary.
func (m *calendarModel) moveCursor(days int) (tea.Model, tea.Cmd) {
	next := m.cursor.AddDays(days)
	m.cursor = next
	if next.Year != m.year || next.Month != m.month {
		m.year, m.month = next.Year, next.Month
		m.loading = true
		return m, m.hydrate()
	}
	return m, nil
}

func (m *calendarModel) gotoMonth(delta int) (tea.Model, tea.Cmd) {
	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.Local).AddDate(0, delta, 0)
	m.year, m.month = first.Year(), first.Month()

	day := m.cursor.Day
	if last := calendar.DaysInMonth(m.year, m.month); day > last {
		day = last
	}
	m.cursor = domain.NewCalDate(m.year, m.month, day)

	m.loading = true
	return m, m.hydrate()
}

func (m *calendarModel) beginActivityInput() (tea.Model, tea.Cmd) {
	var pending *selection.PendingInput
	var err error
	title := fmt.Sprintf("Activity on %s", m.cursor)

	if entry, ok := m.session.Entry(m.cursor); ok {
		pending, err = m.session.BeginEdit(m.cursor)
		m.formValue = entry.Activity
		title = fmt.Sprintf("Rename activity on %s", m.cursor)
	} else {
		pending, err = m.session.BeginAdd(m.cursor)
		m.formValue = ""
	}
	if err != nil {
		m.err = err
		return m, nil
	}

	m.mode = formActivity
	m.pending = pending
	m.form = activityForm(title, &m.formValue)
	return m, m.form.Init()
}

func (m *calendarModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.cancelForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submitForm()
	case huh.StateAborted:
		m.cancelForm()
		return m, nil
	}
	return m, cmd
}

func (m *calendarModel) cancelForm() {
	if m.pending != nil {
		m.pending.Cancel()
	}
	m.mode = formNone
	m.form = nil
	m.pending = nil
}

func (m *calendarModel) submitForm() (tea.Model, tea.Cmd) {
	mode := m.mode
	m.mode = formNone
	m.form = nil

	switch mode {
	case formActivity:
		pending := m.pending
		m.pending = nil
		value := strings.TrimSpace(m.formValue)
		return m, m.runAction(func(ctx context.Context) (string, error) {
			return fmt.Sprintf("Saved %q", value), pending.Commit(ctx, value)
		}, false)

	case formSchedule:
		in := m.formInput
		child := m.child
		custody := m.app.Custody
		return m, m.runAction(func(ctx context.Context) (string, error) {
			s := &domain.CustodySchedule{
				ChildID:    child.ID,
				DaysOfWeek: in.Days,
				ParentName: in.ParentName,
				ParentType: domain.ParentType(in.ParentType),
				Color:      in.Color,
				CreatedAt:  time.Now(),
			}
			return fmt.Sprintf("Assigned %s", formatter.FormatWeekdays(s.SortedDays())), custody.Create(ctx, s)
		}, true)
	}
	return m, nil
}

// runAction executes a store mutation off the update loop and reports
// back through actionDoneMsg.
func (m *calendarModel) runAction(fn func(context.Context) (string, error), reload bool) tea.Cmd {
	return func() tea.Msg {
		status, err := fn(context.Background())
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: status, reload: reload}
	}
}

func (m *calendarModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Bold(m.child.Name) + "\n\n")

	if m.loading {
		b.WriteString("  " + formatter.Dim("Loading calendar...") + "\n")
		return b.String()
	}

	grid := calendar.BuildMonthGrid(m.year, m.month)
	view := formatter.BuildMonthView(grid, func(d domain.CalDate) (string, bool) {
		entry, ok := m.session.Entry(d)
		return entry.Activity, ok
	}, m.session.Schedules(), m.today)

	for _, line := range strings.Split(formatter.RenderMonth(view, m.cursor), "\n") {
		b.WriteString("  " + line + "\n")
	}

	if legend := formatter.Legend(m.session.Schedules()); legend != "" {
		b.WriteString("\n  " + legend + "\n")
	}

	if entry, ok := m.session.Entry(m.cursor); ok {
		b.WriteString("\n  " + formatter.Bold(entry.Activity) + formatter.Dim(" on "+entry.Date.Key()) + "\n")
	} else {
		b.WriteString("\n  " + formatter.Dim("Nothing planned on "+m.cursor.Key()) + "\n")
	}

	if m.mode != formNone && m.form != nil {
		b.WriteString("\n" + m.form.View() + "\n")
		return b.String()
	}

	if m.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString("\n  " + formatter.StyleGreen.Render(m.status) + "\n")
	}

	b.WriteString("\n  " + formatter.Dim(m.helpLine()) + "\n")
	return b.String()
}

func (m *calendarModel) helpLine() string {
	bindings := []key.Binding{
		m.keys.Enter, m.keys.Delete, m.keys.Confirm, m.keys.Schedule,
		m.keys.PrevMonth, m.keys.NextMonth, m.keys.Today, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s", kb.Help().Key, kb.Help().Desc))
	}
	return strings.Join(parts, "  ·  ")
}
