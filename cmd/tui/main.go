package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/nomina/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/nomina/internal/advance"
	advanceStore "github.com/MrJamesThe3rd/nomina/internal/advance/store"
	"github.com/MrJamesThe3rd/nomina/internal/config"
	"github.com/MrJamesThe3rd/nomina/internal/database"
	"github.com/MrJamesThe3rd/nomina/internal/employee"
	employeeStore "github.com/MrJamesThe3rd/nomina/internal/employee/store"
	"github.com/MrJamesThe3rd/nomina/internal/export"
	"github.com/MrJamesThe3rd/nomina/internal/importer"
	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	noveltyStore "github.com/MrJamesThe3rd/nomina/internal/novelty/store"
	"github.com/MrJamesThe3rd/nomina/internal/payroll"
	"github.com/MrJamesThe3rd/nomina/internal/settings"
	settingsStore "github.com/MrJamesThe3rd/nomina/internal/settings/store"
)

type model struct {
	employeeService *employee.Service
	noveltyService  *novelty.Service
	settingsService *settings.Service
	payrollService  *payroll.Service
	importService   *importer.Service
	exportService   *export.Service

	currentView View

	payrollView   view.PayrollModel
	employeesView view.EmployeesModel
	noveltiesView view.NoveltiesModel
	importView    view.ImportModel
	exportView    view.ExportModel
	settingsView  view.SettingsModel
}

type View int

const (
	ViewMenu      View = 0
	ViewPayroll   View = 1
	ViewEmployees View = 2
	ViewNovelties View = 3
	ViewImport    View = 4
	ViewExport    View = 5
	ViewSettings  View = 6
)

func initialModel() model {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString(), cfg.DatabaseOptions())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	empSvc := employee.NewService(employeeStore.New(db))
	novSvc := novelty.NewService(noveltyStore.New(db))
	advSvc := advance.NewService(advanceStore.New(db))
	setSvc := settings.NewService(settingsStore.New(db))
	paySvc := payroll.NewService(empSvc, novSvc, advSvc, setSvc)
	impSvc := importer.NewService(empSvc, novSvc, advSvc)
	expSvc := export.NewService(paySvc)

	return model{
		employeeService: empSvc,
		noveltyService:  novSvc,
		settingsService: setSvc,
		payrollService:  paySvc,
		importService:   impSvc,
		exportService:   expSvc,
		currentView:     ViewMenu,
		payrollView:     view.NewPayrollModel(paySvc),
		employeesView:   view.NewEmployeesModel(empSvc),
		noveltiesView:   view.NewNoveltiesModel(novSvc, empSvc),
		importView:      view.NewImportModel(impSvc),
		exportView:      view.NewExportModel(expSvc),
		settingsView:    view.NewSettingsModel(setSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewPayroll
				m.payrollView = view.NewPayrollModel(m.payrollService)

				return m, m.payrollView.Init()
			case "2":
				m.currentView = ViewEmployees
				m.employeesView = view.NewEmployeesModel(m.employeeService)

				return m, m.employeesView.Init()
			case "3":
				m.currentView = ViewNovelties
				m.noveltiesView = view.NewNoveltiesModel(m.noveltyService, m.employeeService)

				return m, m.noveltiesView.Init()
			case "4":
				m.currentView = ViewImport
				return m, m.importView.Init()
			case "5":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			case "6":
				m.currentView = ViewSettings
				m.settingsView = view.NewSettingsModel(m.settingsService)

				return m, m.settingsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewPayroll:
		var newModel tea.Model
		newModel, cmd = m.payrollView.Update(msg)
		m.payrollView = newModel.(view.PayrollModel)
	case ViewEmployees:
		var newModel tea.Model
		newModel, cmd = m.employeesView.Update(msg)
		m.employeesView = newModel.(view.EmployeesModel)
	case ViewNovelties:
		var newModel tea.Model
		newModel, cmd = m.noveltiesView.Update(msg)
		m.noveltiesView = newModel.(view.NoveltiesModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	case ViewSettings:
		var newModel tea.Model
		newModel, cmd = m.settingsView.Update(msg)
		m.settingsView = newModel.(view.SettingsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Nómina TUI\n\n" +
				"1. Calculate Payroll\n" +
				"2. Employees\n" +
				"3. Novelties\n" +
				"4. Import Spreadsheet\n" +
				"5. Export Reports\n" +
				"6. Rates\n\n" +
				"q. Quit",
		)
	case ViewPayroll:
		return m.payrollView.View()
	case ViewEmployees:
		return m.employeesView.View()
	case ViewNovelties:
		return m.noveltiesView.View()
	case ViewImport:
		return m.importView.View()
	case ViewExport:
		return m.exportView.View()
	case ViewSettings:
		return m.settingsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
