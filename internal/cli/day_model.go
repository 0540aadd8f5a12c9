package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/service"
	"github.com/alexanderramin/tempo/internal/timegrid"
)

type dayKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	Reconcile key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

var dayKeys = dayKeyMap{
	Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
	PrevDay:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "prev day")),
	NextDay:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "next day")),
	Reconcile: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reconcile")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type dayLoadedMsg struct {
	view *service.DayView
	err  error
}

type reconcileDoneMsg struct {
	created int
	err     error
}

// dayModel is the interactive day browser.
type dayModel struct {
	app     *App
	date    time.Time
	width   int
	cursor  int
	view    *service.DayView
	status  string
	err     error
	loading bool
}

func newDayModel(app *App, date time.Time, width int) *dayModel {
	return &dayModel{
		app:     app,
		date:    date,
		width:   width,
		cursor:  time.Now().In(app.Loc).Hour(),
		loading: true,
	}
}

func (m *dayModel) Init() tea.Cmd {
	return m.load()
}

func (m *dayModel) load() tea.Cmd {
	app, date := m.app, m.date
	return func() tea.Msg {
		view, err := app.DayView.View(context.Background(), app.UserID, date)
		return dayLoadedMsg{view: view, err: err}
	}
}

func (m *dayModel) reconcile() tea.Cmd {
	app, date := m.app, m.date
	return func() tea.Msg {
		result, err := app.Reconcile.Reconcile(context.Background(), app.UserID, date, false)
		if err != nil {
			return reconcileDoneMsg{err: err}
		}
		return reconcileDoneMsg{created: len(result.Created)}
	}
}

func (m *dayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dayLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.view = msg.view
		return m, nil

	case reconcileDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = fmt.Sprintf("reconciled: %d new entries", msg.created)
		return m, m.load()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, dayKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, dayKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, dayKeys.Down):
			if m.cursor < 23 {
				m.cursor++
			}
		case key.Matches(msg, dayKeys.PrevDay):
			m.date = m.date.AddDate(0, 0, -1)
			m.status = ""
			return m, m.load()
		case key.Matches(msg, dayKeys.NextDay):
			m.date = m.date.AddDate(0, 0, 1)
			m.status = ""
			return m, m.load()
		case key.Matches(msg, dayKeys.Refresh):
			return m, m.load()
		case key.Matches(msg, dayKeys.Reconcile):
			m.status = "reconciling..."
			return m, m.reconcile()
		}
	}
	return m, nil
}

func (m *dayModel) View() string {
	if m.loading {
		return "loading...\n"
	}
	if m.err != nil {
		return formatter.StyleRed.Render("error: "+m.err.Error()) + "\n"
	}

	grid := formatter.DayGrid{
		Date:      m.view.Date,
		Plans:     m.view.Plans,
		Actuals:   m.view.Actuals,
		LaneWidth: m.width,
		Loc:       m.app.Loc,
		Selected:  m.cursor,
	}

	var b strings.Builder
	b.WriteString(grid.Render())
	b.WriteString("\n")
	b.WriteString(m.hourDetail())
	if m.status != "" {
		b.WriteString(formatter.StyleGreen.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(formatter.StyleDim.Render("j/k move · h/l day · R reconcile · r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}

// hourDetail lists the entries covering the selected hour.
func (m *dayModel) hourDetail() string {
	slotStart := m.view.Date.Add(time.Duration(m.cursor) * time.Hour)
	slotEnd := slotStart.Add(time.Hour)

	var lines []string
	collect := func(cells []*timegrid.TimeCell[*domain.Entry]) {
		for _, c := range cells {
			if timegrid.OverlapDuration(c.Start(), c.End(), slotStart, slotEnd) == 0 {
				continue
			}
			e := c.Record
			lines = append(lines, fmt.Sprintf("%s %s  %s  %s",
				formatter.EntryMarker(e),
				formatter.TruncID(e.ID),
				formatter.EntrySpan(e, m.app.Loc),
				e.Summary))
		}
	}
	collect(m.view.Plans)
	collect(m.view.Actuals)

	if len(lines) == 0 {
		return formatter.StyleDim.Render("nothing in this hour") + "\n\n"
	}
	return strings.Join(lines, "\n") + "\n\n"
}
