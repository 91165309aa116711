package view

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/nomina/internal/importer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateKindSelect importState = iota
	importStateFilePick
	importStateImporting
	importStateResult
)

type importKind int

const (
	importNovelties importKind = iota
	importAdvances
)

func (k importKind) String() string {
	if k == importAdvances {
		return "Adelantos"
	}

	return "Novedades"
}

type ImportModel struct {
	CommonModel
	importService *importer.Service

	state      importState
	filePicker filepicker.Model
	kinds      []importKind
	kindCursor int
	kind       importKind

	warnings viewport.Model

	status string
	err    error
}

func NewImportModel(svc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		importService: svc,
		filePicker:    fp,
		kinds:         []importKind{importNovelties, importAdvances},
		warnings:      viewport.New(90, 12),
	}
}

func (m ImportModel) Title() string { return "Import Spreadsheet" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateResult {
		return "Esc: back | ↑/↓: scroll warnings"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateKindSelect {
			return m.updateKindSelect(msg)
		}

	case importResultMsg:
		m.state = importStateResult
		m.err = msg.err

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d %s.", msg.created, strings.ToLower(m.kind.String()))
		m.warnings.SetContent(renderWarnings(msg.warnings))
		m.warnings.GotoTop()

		return m, nil
	}

	switch m.state {
	case importStateFilePick:
		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
			m.state = importStateImporting
			m.status = fmt.Sprintf("Importing from %s...", path)

			return m, m.importCmd(path)
		}

		return m, cmd
	case importStateResult:
		var cmd tea.Cmd
		m.warnings, cmd = m.warnings.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick:
		m.state = importStateKindSelect
		return m, nil
	case importStateResult:
		m.state = importStateKindSelect
		m.err = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateKindSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.kindCursor > 0 {
			m.kindCursor--
		}
	case tea.KeyDown:
		if m.kindCursor < len(m.kinds)-1 {
			m.kindCursor++
		}
	case tea.KeyEnter:
		m.kind = m.kinds[m.kindCursor]
		m.state = importStateFilePick

		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateKindSelect:
		return m.viewKindSelect()
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select %s spreadsheet:\n\n%s", strings.ToLower(m.kind.String()), m.filePicker.View()),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewKindSelect() string {
	s := "What are you importing?\n\n"

	for i, kind := range m.kinds {
		cursor := " "
		if i == m.kindCursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, kind)
	}

	return lipgloss.NewStyle().Padding(2).Render(s)
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(errorStyle.Render(m.status) + "\n\n(Esc to go back)")
	}

	return style.Render(
		successStyle.Render(m.status) + "\n\n" + m.warnings.View() + "\n\n(Esc to go back)",
	)
}

func renderWarnings(ws []importer.Warning) string {
	if len(ws) == 0 {
		return "No warnings."
	}

	var b strings.Builder

	b.WriteString(warnStyle.Render(fmt.Sprintf("%d warning(s):", len(ws))))
	b.WriteString("\n")

	for _, w := range ws {
		b.WriteString("  " + w.String() + "\n")
	}

	return b.String()
}

// Messages

type importResultMsg struct {
	created  int
	warnings []importer.Warning
	err      error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	kind := m.kind

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		if kind == importAdvances {
			res, err := m.importService.ImportAdvances(ctx, f)
			if err != nil {
				return importResultMsg{err: err}
			}

			return importResultMsg{created: len(res.Created), warnings: res.Warnings}
		}

		res, err := m.importService.ImportNovelties(ctx, f)
		if err != nil {
			return importResultMsg{err: err}
		}

		return importResultMsg{created: len(res.Created), warnings: res.Warnings}
	}
}
