package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/settings"
)

// rateField binds one editable rate to a form input.
type rateField struct {
	title string
	get   func(r settings.Rates) decimal.Decimal
	set   func(r *settings.Rates, d decimal.Decimal)
	input string
}

type SettingsModel struct {
	CommonModel
	settingsService *settings.Service

	rates  settings.Rates
	fields []*rateField
	form   *huh.Form

	loading bool
	status  string
	err     error
}

func NewSettingsModel(svc *settings.Service) SettingsModel {
	return SettingsModel{
		settingsService: svc,
		loading:         true,
	}
}

func (m SettingsModel) Title() string { return "Rates" }

func (m SettingsModel) ShortHelp() string {
	return "Esc: back | Enter/Tab: navigate form | ctrl+r: restore defaults"
}

func (m SettingsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ratesMsg:
		m.loading = false
		m.err = msg.err
		m.status = msg.status

		if msg.err != nil {
			return m, nil
		}

		m.rates = msg.rates
		m.form = m.buildForm()

		return m, m.form.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "ctrl+r":
			m.loading = true
			return m, m.resetCmd()
		}
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.loading = true

	return m, m.saveCmd()
}

func (m *SettingsModel) buildForm() *huh.Form {
	m.fields = []*rateField{
		{
			title: "Salud (%)",
			get:   func(r settings.Rates) decimal.Decimal { return r.Health },
			set:   func(r *settings.Rates, d decimal.Decimal) { r.Health = d },
		},
		{
			title: "Pensión (%)",
			get:   func(r settings.Rates) decimal.Decimal { return r.Pension },
			set:   func(r *settings.Rates, d decimal.Decimal) { r.Pension = d },
		},
		{
			title: "Solidaridad (%)",
			get:   func(r settings.Rates) decimal.Decimal { return r.Solidarity },
			set:   func(r *settings.Rates, d decimal.Decimal) { r.Solidarity = d },
		},
		{
			title: "Auxilio de transporte",
			get:   func(r settings.Rates) decimal.Decimal { return r.TransportAllowance },
			set:   func(r *settings.Rates, d decimal.Decimal) { r.TransportAllowance = d },
		},
		{
			title: "Salario mínimo",
			get:   func(r settings.Rates) decimal.Decimal { return r.MinimumSalary },
			set:   func(r *settings.Rates, d decimal.Decimal) { r.MinimumSalary = d },
		},
		{
			title: "Hora ordinaria",
			get:   func(r settings.Rates) decimal.Decimal { return r.OrdinaryHour },
			set:   func(r *settings.Rates, d decimal.Decimal) { r.OrdinaryHour = d },
		},
		{
			title: "Hora extra",
			get:   func(r settings.Rates) decimal.Decimal { return r.OvertimeHour },
			set:   func(r *settings.Rates, d decimal.Decimal) { r.OvertimeHour = d },
		},
		{
			title: "Recargo nocturno",
			get:   func(r settings.Rates) decimal.Decimal { return r.NightSurcharge },
			set:   func(r *settings.Rates, d decimal.Decimal) { r.NightSurcharge = d },
		},
		{
			title: "Día festivo",
			get:   func(r settings.Rates) decimal.Decimal { return r.HolidayDay },
			set:   func(r *settings.Rates, d decimal.Decimal) { r.HolidayDay = d },
		},
	}

	inputs := make([]huh.Field, len(m.fields))

	for i, f := range m.fields {
		f.input = f.get(m.rates).String()
		inputs[i] = huh.NewInput().
			Title(f.title).
			Value(&f.input).
			Validate(func(s string) error {
				d, err := decimal.NewFromString(strings.TrimSpace(s))
				if err != nil || d.IsNegative() {
					return fmt.Errorf("enter a non-negative number")
				}
				return nil
			})
	}

	return huh.NewForm(huh.NewGroup(inputs...)).WithWidth(40).WithShowHelp(false)
}

func (m SettingsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading rates...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	content := m.form.View()
	if m.status != "" {
		content = successStyle.Render(m.status) + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type ratesMsg struct {
	rates  settings.Rates
	status string
	err    error
}

func (m SettingsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rates, err := m.settingsService.Get(ctx)

		return ratesMsg{rates: rates, err: err}
	}
}

func (m SettingsModel) saveCmd() tea.Cmd {
	rates := m.rates
	for _, f := range m.fields {
		d, _ := decimal.NewFromString(strings.TrimSpace(f.input))
		f.set(&rates, d)
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		saved, err := m.settingsService.Update(ctx, rates)
		if err != nil {
			return ratesMsg{err: err}
		}

		return ratesMsg{rates: saved, status: "Rates saved."}
	}
}

func (m SettingsModel) resetCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rates, err := m.settingsService.Reset(ctx)
		if err != nil {
			return ratesMsg{err: err}
		}

		return ratesMsg{rates: rates, status: "Defaults restored."}
	}
}
