package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bedtimecalc/internal/bedtime"
	"bedtimecalc/internal/clock"
)

// Field is the input control that currently has focus.
type Field int

const (
	FieldWake Field = iota
	FieldSleep
	FieldCoffee
	fieldCount
)

// Model is the main Bubbletea model
type Model struct {
	session *bedtime.Session
	style   clock.Style
	focus   Field
	keys    keyMap
	help    help.Model
	version string
	width   int
}

// New creates the form around a fresh session.
func New(est *bedtime.Estimator, defaults bedtime.Defaults, version string) Model {
	return Model{
		session: bedtime.NewSession(est, defaults),
		style:   est.Style(),
		focus:   FieldWake,
		keys:    defaultKeyMap(),
		help:    help.New(),
		version: version,
	}
}

// Run starts the form and blocks until the user quits.
func Run(est *bedtime.Estimator, defaults bedtime.Defaults, version string) error {
	p := tea.NewProgram(New(est, defaults, version), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Session exposes the underlying session state.
func (m Model) Session() *bedtime.Session { return m.session }

// Focus reports which field is selected.
func (m Model) Focus() Field { return m.focus }

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % fieldCount
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	case key.Matches(msg, m.keys.HourInc):
		m.shiftWake(clock.SecondsPerHour)
	case key.Matches(msg, m.keys.HourDec):
		m.shiftWake(-clock.SecondsPerHour)
	case key.Matches(msg, m.keys.Inc):
		m.adjust(1)
	case key.Matches(msg, m.keys.Dec):
		m.adjust(-1)
	}
	return m, nil
}

// adjust moves the focused control one step in dir.
func (m Model) adjust(dir int) {
	switch m.focus {
	case FieldWake:
		m.shiftWake(dir * clock.SecondsPerMinute)
	case FieldSleep:
		if dir > 0 {
			m.session.IncrementSleep()
		} else {
			m.session.DecrementSleep()
		}
	case FieldCoffee:
		if dir > 0 {
			m.session.IncrementCaffeine()
		} else {
			m.session.DecrementCaffeine()
		}
	}
}

func (m Model) shiftWake(sec int) {
	c, _ := m.session.Wake().Add(sec)
	m.session.SetWake(c)
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("BetterRest"))
	b.WriteString("\n")

	m.section(&b, FieldWake, "When do you want to wake up?", m.session.Wake().Format(m.style))
	m.section(&b, FieldSleep, "Desired amount of sleep", m.session.SleepLabel())
	m.section(&b, FieldCoffee, "Daily coffee intake", m.session.CaffeineLabel())

	res := m.session.Result()
	if res.OK {
		body := fmt.Sprintf("%s %s", res.Title, BedtimeStyle.Render(res.Message))
		if res.PreviousDay {
			body += DimmedStyle.Render(" (the night before)")
		}
		b.WriteString(ResultBoxStyle.Render(body))
	} else {
		b.WriteString(ErrorBoxStyle.Render(ErrorStyle.Render(res.Title) + "\n" + res.Message))
	}
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	if m.version != "" {
		b.WriteString(DimmedStyle.Render("bedtimecalc v" + m.version))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) section(b *strings.Builder, f Field, heading, value string) {
	cursor := "  "
	valueStyle := ValueStyle
	if m.focus == f {
		cursor = FocusedStyle.Render("› ")
		valueStyle = FocusedStyle
	}
	b.WriteString(HeadingStyle.Render(heading))
	b.WriteString("\n")
	b.WriteString(cursor)
	b.WriteString(DimmedStyle.Render("‹ "))
	b.WriteString(valueStyle.Render(value))
	b.WriteString(DimmedStyle.Render(" ›"))
	b.WriteString("\n\n")
}
