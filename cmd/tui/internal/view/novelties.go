package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/employee"
	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/period"
	"github.com/MrJamesThe3rd/nomina/internal/report"
)

type noveltiesState int

const (
	noveltiesStateMonth noveltiesState = iota
	noveltiesStateList
	noveltiesStateForm
)

// noveltyItem wraps a novelty to implement list.Item.
type noveltyItem struct {
	n *novelty.Novelty
}

func (i noveltyItem) Title() string {
	kind := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.n.Type.Kind()))

	return fmt.Sprintf("%s  %s  %s (%s)  %s",
		FormatDate(i.n.Date), i.n.EmployeeName, i.n.Type.Label(), report.Quantity(i.n), kind)
}

func (i noveltyItem) Description() string {
	var tags []string
	if i.n.Recurring {
		tags = append(tags, "recurring since "+i.n.StartMonth.String())
	}

	if i.n.AutoApplied {
		tags = append(tags, "auto-applied")
	}

	if i.n.Description != "" {
		tags = append(tags, i.n.Description)
	}

	return strings.Join(tags, " | ")
}

func (i noveltyItem) FilterValue() string {
	return i.n.EmployeeName + " " + i.n.Type.Label()
}

type NoveltiesModel struct {
	CommonModel
	noveltyService  *novelty.Service
	employeeService *employee.Service

	state       noveltiesState
	monthPicker MonthPicker
	month       period.Month
	list        list.Model
	form        *huh.Form
	employees   []*employee.Employee

	loading bool
	status  string

	// Form bindings
	formEmployee  uuid.UUID
	formType      novelty.Type
	formDate      string
	formQuantity  string
	formDesc      string
	formRecurring bool
}

func NewNoveltiesModel(noveltySvc *novelty.Service, employeeSvc *employee.Service) NoveltiesModel {
	l := list.New([]list.Item{}, noveltyDelegate{}, 0, 0)
	l.Title = "Novedades"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return NoveltiesModel{
		noveltyService:  noveltySvc,
		employeeService: employeeSvc,
		monthPicker:     NewMonthPicker(),
		list:            l,
	}
}

func (m NoveltiesModel) Title() string { return "Novelties" }

func (m NoveltiesModel) ShortHelp() string {
	switch m.state {
	case noveltiesStateMonth:
		return "Esc: back | Enter: select"
	case noveltiesStateList:
		return "Esc: back | n: new | x: delete | a: apply recurring | /: filter"
	case noveltiesStateForm:
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return ""
}

func (m NoveltiesModel) Init() tea.Cmd {
	return nil
}

func (m NoveltiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MonthSelectedMsg:
		m.month = msg.Month
		m.list.Title = "Novedades " + msg.Month.Label()
		m.state = noveltiesStateList
		m.loading = true

		return m, m.loadCmd()

	case loadNoveltiesMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.employees = msg.employees
		items := make([]list.Item, len(msg.novelties))

		for i, n := range msg.novelties {
			items[i] = noveltyItem{n: n}
		}

		m.list.SetItems(items)

		if len(items) == 0 {
			m.status = "No novelties for " + m.month.Label() + "."
		}

		return m, nil

	case noveltyActionMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		m.state = noveltiesStateList
		m.form = nil

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case noveltiesStateMonth:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.monthPicker.IsSelecting() {
			return m, Back
		}

		var cmd tea.Cmd
		m.monthPicker, cmd = m.monthPicker.Update(msg)

		return m, cmd
	case noveltiesStateList:
		return m.updateList(msg)
	case noveltiesStateForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m NoveltiesModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "n":
			return m.startForm()
		case "x":
			if item, ok := m.list.SelectedItem().(noveltyItem); ok {
				return m, m.deleteCmd(item.n)
			}

			return m, nil
		case "a":
			return m, m.applyRecurringCmd()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m NoveltiesModel) startForm() (tea.Model, tea.Cmd) {
	if len(m.employees) == 0 {
		m.status = "Add employees before registering novelties."
		return m, nil
	}

	employeeOpts := make([]huh.Option[uuid.UUID], len(m.employees))
	for i, e := range m.employees {
		employeeOpts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", e.Name, e.Cedula), e.ID)
	}

	typeOpts := make([]huh.Option[novelty.Type], 0, len(novelty.Types()))
	for _, t := range novelty.Types() {
		typeOpts = append(typeOpts, huh.NewOption(fmt.Sprintf("%s [%s]", t.Label(), t.Unit()), t))
	}

	m.formEmployee = m.employees[0].ID
	m.formType = novelty.TypeAbsence
	m.formDate = FormatDate(m.month.FirstDay())
	m.formQuantity = ""
	m.formDesc = ""
	m.formRecurring = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[uuid.UUID]().
				Title("Employee").
				Options(employeeOpts...).
				Value(&m.formEmployee),

			huh.NewSelect[novelty.Type]().
				Title("Type").
				Options(typeOpts...).
				Value(&m.formType),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewInput().
				Title("Quantity (days, hours or COP)").
				Value(&m.formQuantity).
				Validate(func(s string) error {
					d, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil || d.IsNegative() {
						return fmt.Errorf("enter a non-negative number")
					}
					return nil
				}),

			huh.NewInput().
				Title("Description (optional)").
				Value(&m.formDesc),

			huh.NewConfirm().
				Title("Repeat every month?").
				Affirmative("Yes").
				Negative("No").
				Value(&m.formRecurring),
		),
	).WithWidth(60).WithShowHelp(false)

	m.state = noveltiesStateForm

	return m, m.form.Init()
}

func (m NoveltiesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = noveltiesStateList
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.createCmd()
}

func (m NoveltiesModel) View() string {
	switch m.state {
	case noveltiesStateMonth:
		return lipgloss.NewStyle().Padding(1).Render(m.monthPicker.View())

	case noveltiesStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading novelties...")
		}

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View())

	case noveltiesStateForm:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render("New novelty for " + m.month.Label() + "\n\n" + m.form.View())
	}

	return ""
}

// Messages

type loadNoveltiesMsg struct {
	novelties []*novelty.Novelty
	employees []*employee.Employee
	err       error
}

type noveltyActionMsg struct {
	status string
	err    error
}

func (m NoveltiesModel) loadCmd() tea.Cmd {
	month := m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		ns, err := m.noveltyService.ListMonth(ctx, month)
		if err != nil {
			return loadNoveltiesMsg{err: err}
		}

		employees, err := m.employeeService.List(ctx)

		return loadNoveltiesMsg{novelties: ns, employees: employees, err: err}
	}
}

func (m NoveltiesModel) createCmd() tea.Cmd {
	var name string

	for _, e := range m.employees {
		if e.ID == m.formEmployee {
			name = e.Name
		}
	}

	date, _ := time.Parse(time.DateOnly, strings.TrimSpace(m.formDate))
	qty, _ := decimal.NewFromString(strings.TrimSpace(m.formQuantity))

	params := novelty.CreateParams{
		EmployeeID:   m.formEmployee,
		EmployeeName: name,
		Type:         m.formType,
		Date:         date,
		Quantity:     m.formType.Quantity(qty),
		Description:  strings.TrimSpace(m.formDesc),
		Recurring:    m.formRecurring,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		n, err := m.noveltyService.Create(ctx, params)
		if err != nil {
			return noveltyActionMsg{err: err}
		}

		return noveltyActionMsg{status: fmt.Sprintf("Registered %s for %s.", n.Type.Label(), n.EmployeeName)}
	}
}

func (m NoveltiesModel) deleteCmd(n *novelty.Novelty) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.noveltyService.Delete(ctx, n.ID); err != nil {
			return noveltyActionMsg{err: err}
		}

		return noveltyActionMsg{status: "Deleted " + n.Type.Label() + "."}
	}
}

func (m NoveltiesModel) applyRecurringCmd() tea.Cmd {
	month := m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		created, err := m.noveltyService.ApplyRecurring(ctx, month)
		if err != nil {
			return noveltyActionMsg{err: err}
		}

		return noveltyActionMsg{status: fmt.Sprintf("Applied %d recurring novelties.", len(created))}
	}
}

// noveltyDelegate renders items in the list.
type noveltyDelegate struct{}

func (d noveltyDelegate) Height() int                             { return 2 }
func (d noveltyDelegate) Spacing() int                            { return 0 }
func (d noveltyDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d noveltyDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(noveltyItem)
	if !ok {
		return
	}

	title := i.Title()
	desc := i.Description()

	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)

	if desc == "" {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(desc))
}
