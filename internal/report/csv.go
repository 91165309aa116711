package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/payroll"
)

// row is one line of the spreadsheet export. Amounts use a dot as decimal
// separator so spreadsheets in any locale can re-import them.
type row struct {
	Mes             string `csv:"mes"`
	Cedula          string `csv:"cedula"`
	Nombre          string `csv:"nombre"`
	Contrato        string `csv:"contrato"`
	SalarioBase     string `csv:"salario_base"`
	DiasMes         int    `csv:"dias_mes"`
	DiasTrabajados  string `csv:"dias_trabajados"`
	DiasDescontados string `csv:"dias_descontados"`
	SalarioBruto    string `csv:"salario_bruto"`
	AuxTransporte   string `csv:"auxilio_transporte"`
	Bonificaciones  string `csv:"bonificaciones"`
	Salud           string `csv:"salud"`
	Pension         string `csv:"pension"`
	Solidaridad     string `csv:"solidaridad"`
	Adelantos       string `csv:"adelantos"`
	OtrasDeduc      string `csv:"otras_deducciones"`
	TotalDeduc      string `csv:"total_deducciones"`
	SalarioNeto     string `csv:"salario_neto"`
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// CSV writes one semicolon separated row per calculation of run.
func CSV(w io.Writer, run *payroll.Run) error {
	rows := make([]*row, 0, len(run.Calculations))

	for i := range run.Calculations {
		c := &run.Calculations[i]

		rows = append(rows, &row{
			Mes:             run.Month.String(),
			Cedula:          c.Employee.Cedula,
			Nombre:          c.Employee.Name,
			Contrato:        string(c.Employee.ContractType),
			SalarioBase:     amount(c.BaseSalary),
			DiasMes:         c.DaysInMonth,
			DiasTrabajados:  c.WorkedDays.String(),
			DiasDescontados: c.DiscountedDays.String(),
			SalarioBruto:    amount(c.GrossSalary),
			AuxTransporte:   amount(c.TransportAllowance),
			Bonificaciones:  amount(c.BonusTotal),
			Salud:           amount(c.Deductions.Health),
			Pension:         amount(c.Deductions.Pension),
			Solidaridad:     amount(c.Deductions.Solidarity),
			Adelantos:       amount(c.Deductions.Advance),
			OtrasDeduc:      amount(c.Deductions.NoveltyTotal),
			TotalDeduc:      amount(c.Deductions.Total),
			SalarioNeto:     amount(c.NetSalary),
		})
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = ';'

	if err := gocsv.MarshalCSV(rows, csvWriter); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	return nil
}
