package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/nomina/internal/period"
)

type monthChoice int

const (
	monthCurrent monthChoice = iota
	monthPrevious
	monthNext
	monthCustom
)

func (c monthChoice) label(now period.Month) string {
	switch c {
	case monthCurrent:
		return "Current month (" + now.Label() + ")"
	case monthPrevious:
		return "Previous month (" + now.Prev().Label() + ")"
	case monthNext:
		return "Next month (" + now.Next().Label() + ")"
	case monthCustom:
		return "Other month..."
	}

	return "Unknown"
}

func (c monthChoice) month(now period.Month) period.Month {
	switch c {
	case monthPrevious:
		return now.Prev()
	case monthNext:
		return now.Next()
	}

	return now
}

// MonthSelectedMsg is emitted when the user has picked a payroll month.
type MonthSelectedMsg struct {
	Month period.Month
}

type monthState int

const (
	monthStateSelect monthState = iota
	monthStateCustom
)

// MonthPicker is a reusable component for selecting a payroll month.
type MonthPicker struct {
	state    monthState
	selected monthChoice
	now      period.Month

	input textinput.Model
	err   error
}

func NewMonthPicker() MonthPicker {
	in := textinput.New()
	in.Placeholder = "YYYY-MM"
	in.CharLimit = 7
	in.Width = 10
	in.Prompt = "Month: "

	return MonthPicker{
		state: monthStateSelect,
		now:   period.Current(),
		input: in,
	}
}

func (m MonthPicker) Init() tea.Cmd {
	return nil
}

func (m MonthPicker) Update(msg tea.Msg) (MonthPicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.state == monthStateCustom {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)

			return m, cmd
		}

		return m, nil
	}

	if m.state == monthStateSelect {
		return m.updateSelect(keyMsg)
	}

	return m.updateCustom(keyMsg)
}

func (m MonthPicker) updateSelect(msg tea.KeyMsg) (MonthPicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > monthCurrent {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < monthCustom {
			m.selected++
		}
	case tea.KeyEnter:
		if m.selected == monthCustom {
			m.state = monthStateCustom
			m.input.Focus()

			return m, textinput.Blink
		}

		month := m.selected.month(m.now)

		return m, func() tea.Msg {
			return MonthSelectedMsg{Month: month}
		}
	}

	return m, nil
}

func (m MonthPicker) updateCustom(msg tea.KeyMsg) (MonthPicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		month, err := period.Parse(m.input.Value())
		if err != nil {
			m.err = err
			return m, nil
		}

		m.err = nil

		return m, func() tea.Msg {
			return MonthSelectedMsg{Month: month}
		}
	case tea.KeyEsc:
		m.state = monthStateSelect
		m.err = nil

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m MonthPicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = errorStyle.Render(fmt.Sprintf("\n\nError: %v", m.err))
	}

	if m.state == monthStateCustom {
		return fmt.Sprintf(
			"Enter payroll month:\n\n%s\n\n(Enter to confirm, Esc to back)%s",
			m.input.View(),
			errStr,
		)
	}

	s := "Select payroll month:\n\n"

	for c := monthCurrent; c <= monthCustom; c++ {
		cursor := " "
		if m.selected == c {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, c.label(m.now))
	}

	s += "\n(Enter to select, Esc to back)"

	return lipgloss.NewStyle().Render(s + errStr)
}

// IsSelecting returns true if the picker is in the selection state (not custom input).
func (m MonthPicker) IsSelecting() bool {
	return m.state == monthStateSelect
}

// Reset returns the picker to its initial selection state.
func (m *MonthPicker) Reset() {
	m.state = monthStateSelect
	m.selected = monthCurrent
	m.err = nil
	m.input.SetValue("")
}
