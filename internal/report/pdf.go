package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/payroll"
)

// Payslips writes a PDF with one payslip page per calculation of run.
func Payslips(w io.Writer, run *payroll.Run, processedOn time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Nomina "+run.Month.String(), true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if len(run.Calculations) == 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(0, 10, tr("NOMINA - "+run.Month.Label()))
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, tr("Sin empleados para el periodo."))
	}

	for i := range run.Calculations {
		payslip(pdf, tr, run, &run.Calculations[i], processedOn)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}

	return nil
}

func payslip(pdf *gofpdf.Fpdf, tr func(string) string, run *payroll.Run, c *payroll.Calculation, processedOn time.Time) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Desprendible de pago - "+run.Month.Label()))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr("Empleado: "+c.Employee.Name))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr("Cédula: "+c.Employee.Cedula))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr("Contrato: "+string(c.Employee.ContractType)))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Días trabajados: %s/%d", c.WorkedDays, c.DaysInMonth)))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr("Fecha de procesamiento: "+processedOn.Format("02/01/2006")))
	pdf.Ln(10)

	section(pdf, tr, "Devengado")
	line(pdf, tr, "Salario básico", c.BaseSalary)
	line(pdf, tr, "Salario bruto", c.GrossSalary)
	line(pdf, tr, "Auxilio de transporte", c.TransportAllowance)

	for _, l := range c.Additions {
		line(pdf, tr, l.Label, l.Amount)
	}

	pdf.Ln(4)

	d := c.Deductions

	section(pdf, tr, "Deducciones")
	line(pdf, tr, fmt.Sprintf("Salud (%s%%)", run.Rates.Health), d.Health)
	line(pdf, tr, fmt.Sprintf("Pensión (%s%%)", run.Rates.Pension), d.Pension)

	if d.Solidarity.IsPositive() {
		line(pdf, tr, fmt.Sprintf("Solidaridad (%s%%)", run.Rates.Solidarity), d.Solidarity)
	}

	if d.Advance.IsPositive() {
		line(pdf, tr, "Adelantos", d.Advance)
	}

	for _, l := range d.Novelties {
		line(pdf, tr, l.Label, l.Amount)
	}

	line(pdf, tr, "Total deducciones", d.Total)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(120, 9, tr("Neto a pagar"), "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 9, tr(Money(c.NetSalary)), "T", 1, "R", false, 0, "")
}

func section(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(180, 8, tr(title), "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func line(pdf *gofpdf.Fpdf, tr func(string) string, label string, amount decimal.Decimal) {
	pdf.CellFormat(120, 7, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, tr(Money(amount)), "", 1, "R", false, 0, "")
}
