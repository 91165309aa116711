package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/nomina/internal/payroll"
	"github.com/MrJamesThe3rd/nomina/internal/period"
	"github.com/MrJamesThe3rd/nomina/internal/report"
)

// Format is an output format of the payroll report.
type Format string

const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

func Formats() []Format {
	return []Format{FormatText, FormatCSV, FormatPDF}
}

// Runner calculates the payroll of a month.
type Runner interface {
	Run(ctx context.Context, month period.Month) (*payroll.Run, error)
}

// File is a single written report.
type File struct {
	Format Format
	Path   string
	Size   int
}

// Service writes payroll reports to disk.
type Service struct {
	runs Runner
}

func NewService(runs Runner) *Service {
	return &Service{runs: runs}
}

// Export calculates month and writes one file per format into outputDir.
// processedOn is printed in the report headers.
func (s *Service) Export(
	ctx context.Context,
	month period.Month,
	formats []Format,
	outputDir string,
	processedOn time.Time,
) (*payroll.Run, []File, error) {
	if len(formats) == 0 {
		return nil, nil, fmt.Errorf("no export format selected")
	}

	run, err := s.runs.Run(ctx, month)
	if err != nil {
		return nil, nil, fmt.Errorf("calculating payroll: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating output directory: %w", err)
	}

	files := make([]File, 0, len(formats))

	for _, f := range formats {
		var buf bytes.Buffer

		switch f {
		case FormatText:
			buf.WriteString(report.Text(run, processedOn))
		case FormatCSV:
			err = report.CSV(&buf, run)
		case FormatPDF:
			err = report.Payslips(&buf, run, processedOn)
		default:
			return nil, nil, fmt.Errorf("unknown export format %q", f)
		}

		if err != nil {
			return nil, nil, fmt.Errorf("rendering %s: %w", f, err)
		}

		path := filepath.Join(outputDir, Filename(month, f))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return nil, nil, fmt.Errorf("writing file: %w", err)
		}

		files = append(files, File{Format: f, Path: path, Size: buf.Len()})
	}

	return run, files, nil
}

// Filename is the name a report of month is saved under, e.g. nomina-2024-04.pdf.
func Filename(month period.Month, f Format) string {
	return fmt.Sprintf("nomina-%s.%s", month, f)
}

// GenerateSummary lists the written files followed by the run totals.
func (s *Service) GenerateSummary(run *payroll.Run, files []File) string {
	var sb strings.Builder

	for _, f := range files {
		sb.WriteString(fmt.Sprintf("* %s | %d bytes\n", f.Path, f.Size))
	}

	sb.WriteString(fmt.Sprintf("\n%s: %d empleados, neto %s\n",
		run.Month.Label(), run.Summary.Employees, report.Money(run.Summary.NetSalary)))

	if run.Summary.NegativeNet > 0 {
		sb.WriteString(fmt.Sprintf("ATENCIÓN: %d empleado(s) con salario neto negativo\n", run.Summary.NegativeNet))
	}

	return sb.String()
}
