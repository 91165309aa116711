package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/advance"
	"github.com/MrJamesThe3rd/nomina/internal/employee"
	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/period"
	"github.com/MrJamesThe3rd/nomina/internal/settings"
)

// Line is one itemized addition or deduction coming from novelties of a single type.
type Line struct {
	Type   novelty.Type
	Label  string
	Amount decimal.Decimal
}

type Deductions struct {
	Health     decimal.Decimal
	Pension    decimal.Decimal
	Solidarity decimal.Decimal
	Advance    decimal.Decimal

	// Novelties itemizes deduction novelties (fines, fund withholdings...).
	Novelties    []Line
	NoveltyTotal decimal.Decimal

	Total decimal.Decimal
}

// Calculation is the payroll of one employee for one month.
// Every amount is rounded to cents.
type Calculation struct {
	Employee employee.Employee

	DaysInMonth    int
	WorkedDays     decimal.Decimal
	DiscountedDays decimal.Decimal

	BaseSalary         decimal.Decimal
	DailyRate          decimal.Decimal
	GrossSalary        decimal.Decimal
	TransportAllowance decimal.Decimal

	Additions  []Line
	BonusTotal decimal.Decimal

	Deductions Deductions
	NetSalary  decimal.Decimal

	Novelties []novelty.Novelty
	Advances  []advance.Advance
}

// NegativeNet flags a payroll whose deductions exceed what is earned.
func (c *Calculation) NegativeNet() bool {
	return c.NetSalary.IsNegative()
}

// Summary holds run-wide totals.
type Summary struct {
	Employees          int
	GrossSalary        decimal.Decimal
	TransportAllowance decimal.Decimal
	Bonuses            decimal.Decimal
	Deductions         decimal.Decimal
	Advances           decimal.Decimal
	NetSalary          decimal.Decimal
	NegativeNet        int
}

// Run is everything needed to render the payroll of a month.
type Run struct {
	Month        period.Month
	Rates        settings.Rates
	Calculations []Calculation
	Summary      Summary
	CalculatedAt time.Time
}

func Summarize(calcs []Calculation) Summary {
	s := Summary{
		Employees:          len(calcs),
		GrossSalary:        decimal.Zero,
		TransportAllowance: decimal.Zero,
		Bonuses:            decimal.Zero,
		Deductions:         decimal.Zero,
		Advances:           decimal.Zero,
		NetSalary:          decimal.Zero,
	}

	for i := range calcs {
		c := &calcs[i]

		s.GrossSalary = s.GrossSalary.Add(c.GrossSalary)
		s.TransportAllowance = s.TransportAllowance.Add(c.TransportAllowance)
		s.Bonuses = s.Bonuses.Add(c.BonusTotal)
		s.Deductions = s.Deductions.Add(c.Deductions.Total)
		s.Advances = s.Advances.Add(c.Deductions.Advance)
		s.NetSalary = s.NetSalary.Add(c.NetSalary)

		if c.NegativeNet() {
			s.NegativeNet++
		}
	}

	return s
}
