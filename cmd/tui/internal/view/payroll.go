package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/nomina/internal/payroll"
	"github.com/MrJamesThe3rd/nomina/internal/period"
)

type payrollState int

const (
	payrollStateMonth payrollState = iota
	payrollStateTable
)

// PayrollModel calculates a month and shows one row per employee.
type PayrollModel struct {
	CommonModel
	payrollService *payroll.Service

	state       payrollState
	monthPicker MonthPicker
	month       period.Month
	table       table.Model
	run         *payroll.Run

	loading bool
	err     error
}

func NewPayrollModel(svc *payroll.Service) PayrollModel {
	columns := []table.Column{
		{Title: "Empleado", Width: 22},
		{Title: "Cédula", Width: 12},
		{Title: "Contrato", Width: 8},
		{Title: "Días", Width: 6},
		{Title: "Bruto", Width: 14},
		{Title: "Auxilio", Width: 12},
		{Title: "Bonif.", Width: 12},
		{Title: "Deducciones", Width: 14},
		{Title: "Neto", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return PayrollModel{
		payrollService: svc,
		monthPicker:    NewMonthPicker(),
		table:          t,
	}
}

func (m PayrollModel) Title() string { return "Payroll" }

func (m PayrollModel) ShortHelp() string {
	if m.state == payrollStateMonth {
		return "Esc: back | Enter: select"
	}

	return "Esc: back | m: change month | r: recalculate"
}

func (m PayrollModel) Init() tea.Cmd {
	return nil
}

func (m PayrollModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MonthSelectedMsg:
		m.month = msg.Month
		m.state = payrollStateTable
		m.loading = true

		return m, m.runCmd()

	case payrollRunMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.run = msg.run
			m.refreshTable()
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 14)
		return m, nil
	}

	if m.state == payrollStateMonth {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.monthPicker.IsSelecting() {
			return m, Back
		}

		var cmd tea.Cmd
		m.monthPicker, cmd = m.monthPicker.Update(msg)

		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "m":
			m.state = payrollStateMonth
			m.monthPicker.Reset()

			return m, nil
		case "r":
			m.loading = true
			return m, m.runCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *PayrollModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.run.Calculations))

	for i := range m.run.Calculations {
		c := &m.run.Calculations[i]

		net := FormatMoney(c.NetSalary)
		if c.NegativeNet() {
			net = "! " + net
		}

		rows = append(rows, table.Row{
			c.Employee.Name,
			c.Employee.Cedula,
			string(c.Employee.ContractType),
			fmt.Sprintf("%s/%d", c.WorkedDays, c.DaysInMonth),
			FormatMoney(c.GrossSalary),
			FormatMoney(c.TransportAllowance),
			FormatMoney(c.BonusTotal),
			FormatMoney(c.Deductions.Total),
			net,
		})
	}

	m.table.SetRows(rows)
}

func (m PayrollModel) View() string {
	if m.state == payrollStateMonth {
		return lipgloss.NewStyle().Padding(1).Render(m.monthPicker.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Calculating payroll for " + m.month.Label() + "...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf("Nómina %s  [m] change month", activeStyle(m.run.Month.Label()))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	s := m.run.Summary
	footer := fmt.Sprintf(
		"Empleados: %d | Bruto: %s | Deducciones: %s | Adelantos: %s | Neto: %s",
		s.Employees,
		FormatMoney(s.GrossSalary),
		FormatMoney(s.Deductions),
		FormatMoney(s.Advances),
		activeStyle(FormatMoney(s.NetSalary)),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		footer,
	)

	if s.NegativeNet > 0 {
		content += "\n" + warnStyle.Render(fmt.Sprintf("%d employee(s) with negative net pay", s.NegativeNet))
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type payrollRunMsg struct {
	run *payroll.Run
	err error
}

func (m PayrollModel) runCmd() tea.Cmd {
	month := m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		run, err := m.payrollService.Run(ctx, month)

		return payrollRunMsg{run: run, err: err}
	}
}
