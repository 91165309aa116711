package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/employee"
)

type employeesState int

const (
	employeesStateBrowse employeesState = iota
	employeesStateForm
	employeesStateDelete
)

type EmployeesModel struct {
	CommonModel
	employeeService *employee.Service

	state     employeesState
	table     table.Model
	employees []*employee.Employee
	form      *huh.Form
	editing   *employee.Employee

	loading bool
	err     error
	status  string

	// Form bindings
	formName     string
	formCedula   string
	formContract employee.ContractType
	formSalary   string
	formHired    string
	formConfirm  bool
}

func NewEmployeesModel(svc *employee.Service) EmployeesModel {
	columns := []table.Column{
		{Title: "Nombre", Width: 26},
		{Title: "Cédula", Width: 12},
		{Title: "Contrato", Width: 8},
		{Title: "Salario", Width: 14},
		{Title: "Ingreso", Width: 12},
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

	return EmployeesModel{
		employeeService: svc,
		table:           t,
		loading:         true,
	}
}

func (m EmployeesModel) Title() string { return "Employees" }

func (m EmployeesModel) ShortHelp() string {
	if m.state != employeesStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n: new | e: edit | x: delete | r: refresh"
}

func (m EmployeesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m EmployeesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadEmployeesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.employees = msg.employees
		m.refreshTable()

		return m, nil

	case employeeSaveMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		m.state = employeesStateBrowse
		m.form = nil
		m.editing = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == employeesStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m EmployeesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.enterForm(nil)
		case "e":
			if e := m.current(); e != nil {
				return m.enterForm(e)
			}

			return m, nil
		case "x":
			return m.enterDelete()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m EmployeesModel) current() *employee.Employee {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.employees) {
		return nil
	}

	return m.employees[idx]
}

func (m EmployeesModel) enterForm(e *employee.Employee) (tea.Model, tea.Cmd) {
	m.editing = e
	m.formName, m.formCedula, m.formSalary, m.formHired = "", "", "", ""
	m.formContract = employee.ContractNomina

	if e != nil {
		m.formName = e.Name
		m.formCedula = e.Cedula
		m.formContract = e.ContractType
		m.formSalary = e.Salary.String()

		if !e.CreatedDate.IsZero() {
			m.formHired = FormatDate(e.CreatedDate)
		}
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("cedula").
				Title("Cédula").
				Value(&m.formCedula),

			huh.NewSelect[employee.ContractType]().
				Key("contract").
				Title("Contract").
				Options(
					huh.NewOption("Nómina", employee.ContractNomina),
					huh.NewOption("OPS", employee.ContractOPS),
				).
				Value(&m.formContract),

			huh.NewInput().
				Key("salary").
				Title("Monthly salary (COP)").
				Value(&m.formSalary).
				Validate(func(s string) error {
					d, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil || d.IsNegative() {
						return fmt.Errorf("enter a non-negative amount")
					}
					return nil
				}),

			huh.NewInput().
				Key("hired").
				Title("Hire date").
				Placeholder("YYYY-MM-DD (optional)").
				Value(&m.formHired).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}

					if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = employeesStateForm
	m.table.Blur()

	return m, m.form.Init()
}

func (m EmployeesModel) enterDelete() (tea.Model, tea.Cmd) {
	e := m.current()
	if e == nil {
		return m, nil
	}

	m.editing = e
	m.formConfirm = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove %s from the roster?", e.Name)).
				Affirmative("Yes").
				Negative("No").
				Value(&m.formConfirm),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = employeesStateDelete
	m.table.Blur()

	return m, m.form.Init()
}

func (m EmployeesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = employeesStateBrowse
		m.form = nil
		m.editing = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == employeesStateDelete {
		return m, m.deleteCmd()
	}

	return m, m.saveCmd()
}

func (m EmployeesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading employees...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	content := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	if m.state != employeesStateBrowse && m.form != nil {
		title := "New Employee"
		if m.editing != nil {
			title = m.editing.Name
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(title + "\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *EmployeesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.employees))

	for _, e := range m.employees {
		hired := ""
		if !e.CreatedDate.IsZero() {
			hired = FormatDate(e.CreatedDate)
		}

		rows = append(rows, table.Row{
			e.Name,
			e.Cedula,
			string(e.ContractType),
			FormatMoney(e.Salary),
			hired,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadEmployeesMsg struct {
	employees []*employee.Employee
	err       error
}

type employeeSaveMsg struct {
	status string
	err    error
}

func (m EmployeesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		employees, err := m.employeeService.List(ctx)

		return loadEmployeesMsg{employees: employees, err: err}
	}
}

func (m EmployeesModel) saveCmd() tea.Cmd {
	editing := m.editing
	name := strings.TrimSpace(m.formName)
	cedula := strings.TrimSpace(m.formCedula)
	contract := m.formContract
	salary, _ := decimal.NewFromString(strings.TrimSpace(m.formSalary))

	var hired time.Time
	if s := strings.TrimSpace(m.formHired); s != "" {
		hired, _ = time.Parse(time.DateOnly, s)
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if editing == nil {
			e, err := m.employeeService.Create(ctx, employee.CreateParams{
				Name:         name,
				Cedula:       cedula,
				ContractType: contract,
				Salary:       salary,
				CreatedDate:  hired,
			})
			if err != nil {
				return employeeSaveMsg{err: err}
			}

			return employeeSaveMsg{status: "Created " + e.Name + "."}
		}

		updated := *editing
		updated.Name = name
		updated.Cedula = cedula
		updated.ContractType = contract
		updated.Salary = salary
		updated.CreatedDate = hired

		if err := m.employeeService.Update(ctx, &updated); err != nil {
			return employeeSaveMsg{err: err}
		}

		return employeeSaveMsg{status: "Saved " + updated.Name + "."}
	}
}

func (m EmployeesModel) deleteCmd() tea.Cmd {
	target := m.editing
	confirmed := m.formConfirm

	return func() tea.Msg {
		if !confirmed || target == nil {
			return employeeSaveMsg{}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.employeeService.Delete(ctx, target.ID); err != nil {
			return employeeSaveMsg{err: err}
		}

		return employeeSaveMsg{status: "Removed " + target.Name + "."}
	}
}
