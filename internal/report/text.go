package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/nomina/internal/payroll"
)

const dateLayout = "2006-01-02"

// Text renders the printable payroll of a run. The output depends only on
// run and processedOn, so the same inputs always give the same bytes.
func Text(run *payroll.Run, processedOn time.Time) string {
	var sb strings.Builder

	r := run.Rates

	fmt.Fprintf(&sb, "NOMINA - %s\n", run.Month.Label())
	fmt.Fprintf(&sb, "Fecha de procesamiento: %s\n", processedOn.Format("02/01/2006"))
	sb.WriteString("Configuración de deducciones:\n")
	fmt.Fprintf(&sb, "  - Salud: %s%%\n", r.Health)
	fmt.Fprintf(&sb, "  - Pensión: %s%%\n", r.Pension)
	fmt.Fprintf(&sb, "  - Solidaridad: %s%%\n", r.Solidarity)
	fmt.Fprintf(&sb, "  - Auxilio de Transporte: %s\n", Money(r.TransportAllowance))
	fmt.Fprintf(&sb, "  - Salario Mínimo: %s\n", Money(r.MinimumSalary))
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	for i := range run.Calculations {
		writeCalculation(&sb, i+1, &run.Calculations[i], run)
		sb.WriteString("\n" + strings.Repeat("-", 50) + "\n\n")
	}

	s := run.Summary

	sb.WriteString("RESUMEN:\n")
	fmt.Fprintf(&sb, "Empleados: %d\n", s.Employees)
	fmt.Fprintf(&sb, "Total Salarios Brutos: %s\n", Money(s.GrossSalary))
	fmt.Fprintf(&sb, "Total Deducciones: %s\n", Money(s.Deductions))
	fmt.Fprintf(&sb, "Total Adelantos: %s\n", Money(s.Advances))
	fmt.Fprintf(&sb, "TOTAL NÓMINA NETA: %s\n", Money(s.NetSalary))

	if s.NegativeNet > 0 {
		fmt.Fprintf(&sb, "ATENCIÓN: %d empleado(s) con salario neto negativo\n", s.NegativeNet)
	}

	return sb.String()
}

func writeCalculation(sb *strings.Builder, n int, c *payroll.Calculation, run *payroll.Run) {
	r := run.Rates
	d := c.Deductions

	fmt.Fprintf(sb, "%d. %s\n", n, c.Employee.Name)
	fmt.Fprintf(sb, "   Cédula: %s\n", c.Employee.Cedula)
	fmt.Fprintf(sb, "   Contrato: %s\n", c.Employee.ContractType)
	fmt.Fprintf(sb, "   Salario Base: %s\n", Money(c.BaseSalary))
	fmt.Fprintf(sb, "   Días Trabajados: %s/%d\n", c.WorkedDays, c.DaysInMonth)
	fmt.Fprintf(sb, "   Días Descontados: %s\n", c.DiscountedDays)
	fmt.Fprintf(sb, "   Salario Bruto: %s\n", Money(c.GrossSalary))
	fmt.Fprintf(sb, "   Auxilio Transporte: %s\n", Money(c.TransportAllowance))

	if c.BonusTotal.IsPositive() {
		fmt.Fprintf(sb, "   Bonificaciones: %s\n", Money(c.BonusTotal))

		for _, l := range c.Additions {
			fmt.Fprintf(sb, "     + %s: %s\n", l.Label, Money(l.Amount))
		}
	}

	sb.WriteString("   Deducciones:\n")
	fmt.Fprintf(sb, "     - Salud (%s%%): %s\n", r.Health, Money(d.Health))
	fmt.Fprintf(sb, "     - Pensión (%s%%): %s\n", r.Pension, Money(d.Pension))

	if d.Solidarity.IsPositive() {
		fmt.Fprintf(sb, "     - Solidaridad (%s%%): %s\n", r.Solidarity, Money(d.Solidarity))
	}

	if d.Advance.IsPositive() {
		fmt.Fprintf(sb, "     - Adelantos: %s\n", Money(d.Advance))
	}

	for _, l := range d.Novelties {
		if l.Amount.IsPositive() {
			fmt.Fprintf(sb, "     - %s: %s\n", l.Label, Money(l.Amount))
		}
	}

	fmt.Fprintf(sb, "     - Total Deducciones: %s\n", Money(d.Total))
	fmt.Fprintf(sb, "   SALARIO NETO: %s\n", Money(c.NetSalary))

	if len(c.Novelties) > 0 {
		sb.WriteString("   Novedades:\n")

		for i := range c.Novelties {
			nv := &c.Novelties[i]
			fmt.Fprintf(sb, "     - %s: %s (%s) - %s\n",
				nv.Date.Format(dateLayout), nv.Type.Label(), Quantity(nv), describe(nv.Description))
		}
	}

	if len(c.Advances) > 0 {
		sb.WriteString("   Adelantos del mes:\n")

		for _, a := range c.Advances {
			fmt.Fprintf(sb, "     - %s: %s - %s\n", advanceDate(a.Date), Money(a.Amount), describe(a.Description))
		}
	}
}

func describe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Sin descripción"
	}

	return s
}

func advanceDate(t time.Time) string {
	if t.IsZero() {
		return "sin fecha"
	}

	return t.Format(dateLayout)
}
