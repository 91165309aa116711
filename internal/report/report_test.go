package report_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/nomina/internal/advance"
	"github.com/MrJamesThe3rd/nomina/internal/employee"
	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/payroll"
	"github.com/MrJamesThe3rd/nomina/internal/period"
	"github.com/MrJamesThe3rd/nomina/internal/report"
	"github.com/MrJamesThe3rd/nomina/internal/settings"
)

func sampleRun(t *testing.T) *payroll.Run {
	t.Helper()

	april := period.MustParse("2024-04")
	rates := settings.Defaults()

	ana := &employee.Employee{
		ID:           uuid.New(),
		Name:         "Ana Gómez",
		Cedula:       "1020304050",
		ContractType: employee.ContractNomina,
		Salary:       decimal.NewFromInt(1300000),
		CreatedDate:  time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	luis := &employee.Employee{
		ID:           uuid.New(),
		Name:         "Luis Peña",
		Cedula:       "79888777",
		ContractType: employee.ContractOPS,
		Salary:       decimal.NewFromInt(6000000),
		CreatedDate:  time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	novelties := []*novelty.Novelty{
		{
			ID: uuid.New(), EmployeeID: ana.ID, Type: novelty.TypeAbsence,
			Date: time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC), Quantity: novelty.DaysOf(decimal.NewFromInt(2)),
		},
		{
			ID: uuid.New(), EmployeeID: luis.ID, Type: novelty.TypeMultas,
			Date: time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC), Quantity: novelty.MoneyOf(decimal.NewFromInt(20000)),
			Description: "Uniforme",
		},
	}
	advances := []*advance.Advance{{
		ID: uuid.New(), EmployeeID: luis.ID, Amount: decimal.NewFromInt(500000),
		Date: time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC), Month: april,
	}}

	calcs := payroll.Calculate([]*employee.Employee{ana, luis}, novelties, advances, rates, april)
	require.Len(t, calcs, 2)

	return &payroll.Run{
		Month:        april,
		Rates:        rates,
		Calculations: calcs,
		Summary:      payroll.Summarize(calcs),
		CalculatedAt: time.Date(2024, 4, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestText(t *testing.T) {
	run := sampleRun(t)
	processed := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	got := report.Text(run, processed)

	assert.True(t, strings.HasPrefix(got, "NOMINA - Abril 2024\n"))
	assert.Contains(t, got, "Fecha de procesamiento: 30/04/2024\n")
	assert.Contains(t, got, "  - Salud: 4%\n")
	assert.Contains(t, got, strings.Repeat("=", 80)+"\n\n")
	assert.Contains(t, got, "1. Ana Gómez\n")
	assert.Contains(t, got, "   Cédula: 1020304050\n")
	assert.Contains(t, got, "   Contrato: NOMINA\n")
	assert.Contains(t, got, "   Días Trabajados: 28/30\n")
	assert.Contains(t, got, "   Días Descontados: 2\n")
	assert.Contains(t, got, "     - 2024-04-08: Ausencia (2 días) - Sin descripción\n")
	assert.Contains(t, got, "2. Luis Peña\n")
	assert.Contains(t, got, "     - Solidaridad (1%): ")
	assert.Contains(t, got, "     - Multas: ")
	assert.Contains(t, got, "   Adelantos del mes:\n")
	assert.Contains(t, got, "     - 2024-03-28: ")
	assert.Contains(t, got, "\n"+strings.Repeat("-", 50)+"\n\n")
	assert.Contains(t, got, "RESUMEN:\n")
	assert.Contains(t, got, "TOTAL NÓMINA NETA: ")
	assert.NotContains(t, got, "ATENCIÓN")

	// Ana's block has no solidarity, advances, or bonuses.
	anaBlock := got[strings.Index(got, "1. Ana Gómez"):strings.Index(got, "2. Luis Peña")]
	assert.NotContains(t, anaBlock, "Solidaridad (")
	assert.NotContains(t, anaBlock, "Adelantos")
	assert.NotContains(t, anaBlock, "Bonificaciones")
}

func TestText_Reproducible(t *testing.T) {
	run := sampleRun(t)
	processed := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, report.Text(run, processed), report.Text(run, processed))
}

func TestText_FlagsNegativeNet(t *testing.T) {
	run := sampleRun(t)
	run.Calculations[0].NetSalary = decimal.NewFromInt(-10)
	run.Summary = payroll.Summarize(run.Calculations)

	got := report.Text(run, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, got, "ATENCIÓN: 1 empleado(s) con salario neto negativo\n")
}

func TestMoney(t *testing.T) {
	assert.True(t, strings.HasPrefix(report.Money(decimal.NewFromInt(62000)), "$62"))
	assert.True(t, strings.HasPrefix(report.Money(decimal.NewFromInt(-5)), "-$"))
	assert.Equal(t, "$0", report.Money(decimal.Zero))
}

func TestCSV(t *testing.T) {
	run := sampleRun(t)

	var buf bytes.Buffer
	require.NoError(t, report.CSV(&buf, run))

	r := csv.NewReader(&buf)
	r.Comma = ';'

	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, "mes", header[0])
	assert.Equal(t, "salario_neto", header[len(header)-1])

	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}

		t.Fatalf("missing column %s", name)

		return -1
	}

	ana := records[1]
	assert.Equal(t, "2024-04", ana[col("mes")])
	assert.Equal(t, "1020304050", ana[col("cedula")])
	assert.Equal(t, "28", ana[col("dias_trabajados")])
	assert.Equal(t, "1213333.33", ana[col("salario_bruto")])
	assert.Equal(t, "151200.00", ana[col("auxilio_transporte")])
	assert.Equal(t, "97066.67", ana[col("total_deducciones")])
	assert.Equal(t, "1267466.66", ana[col("salario_neto")])

	luis := records[2]
	assert.Equal(t, "60000.00", luis[col("solidaridad")])
	assert.Equal(t, "500000.00", luis[col("adelantos")])
	assert.Equal(t, "20000.00", luis[col("otras_deducciones")])
}

func TestPayslips(t *testing.T) {
	run := sampleRun(t)

	var buf bytes.Buffer
	require.NoError(t, report.Payslips(&buf, run, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPayslips_EmptyRun(t *testing.T) {
	run := &payroll.Run{Month: period.MustParse("2024-04"), Rates: settings.Defaults()}

	var buf bytes.Buffer
	require.NoError(t, report.Payslips(&buf, run, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
