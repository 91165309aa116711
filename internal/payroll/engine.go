package payroll

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/advance"
	"github.com/MrJamesThe3rd/nomina/internal/employee"
	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/period"
	"github.com/MrJamesThe3rd/nomina/internal/settings"
)

// payrollMonthDays is the fixed length of a payroll month used to derive
// daily amounts, whatever the calendar length of the month.
const payrollMonthDays = 30

const cents = 2

var (
	thirty = decimal.NewFromInt(payrollMonthDays)
	two    = decimal.NewFromInt(2)
	four   = decimal.NewFromInt(4)
)

// Calculate computes the payroll of month for every employee hired by its
// last day, in roster order. Novelties outside month and advances recovered
// in another month are ignored. Inputs are never modified.
func Calculate(
	employees []*employee.Employee,
	novelties []*novelty.Novelty,
	advances []*advance.Advance,
	rates settings.Rates,
	month period.Month,
) []Calculation {
	noveltiesByEmployee := make(map[uuid.UUID][]*novelty.Novelty)

	for _, n := range novelties {
		if month.Contains(n.Date) {
			noveltiesByEmployee[n.EmployeeID] = append(noveltiesByEmployee[n.EmployeeID], n)
		}
	}

	advancesByEmployee := make(map[uuid.UUID][]*advance.Advance)

	for _, a := range advances {
		if a.Month == month {
			advancesByEmployee[a.EmployeeID] = append(advancesByEmployee[a.EmployeeID], a)
		}
	}

	lastDay := month.LastDay()
	calcs := make([]Calculation, 0, len(employees))

	for _, e := range employees {
		if !e.HiredBy(lastDay) {
			continue
		}

		calcs = append(calcs, calculateEmployee(e, noveltiesByEmployee[e.ID], advancesByEmployee[e.ID], rates, month))
	}

	return calcs
}

func calculateEmployee(
	e *employee.Employee,
	novelties []*novelty.Novelty,
	advances []*advance.Advance,
	rates settings.Rates,
	month period.Month,
) Calculation {
	c := Calculation{
		Employee:    *e,
		DaysInMonth: month.Days(),
		BaseSalary:  e.Salary,
	}

	c.DiscountedDays = decimal.Zero
	for _, n := range novelties {
		c.DiscountedDays = c.DiscountedDays.Add(n.DiscountDays())
		c.Novelties = append(c.Novelties, *n)
	}

	c.WorkedDays = decimal.Max(decimal.Zero, decimal.NewFromInt(int64(c.DaysInMonth)).Sub(c.DiscountedDays))

	c.DailyRate = e.Salary.Div(thirty).Round(cents)
	c.GrossSalary = prorate(e.Salary, c.WorkedDays)

	c.TransportAllowance = decimal.Zero
	if e.ContractType == employee.ContractNomina && e.Salary.LessThan(rates.MinimumSalary.Mul(two)) {
		c.TransportAllowance = prorate(rates.TransportAllowance, c.WorkedDays)
	}

	c.Additions = itemize(novelties, novelty.KindAddition, rates)
	c.BonusTotal = sumLines(c.Additions)

	c.Deductions = deduct(e, c.GrossSalary, novelties, advances, rates)

	for _, a := range advances {
		c.Advances = append(c.Advances, *a)
	}

	c.NetSalary = c.GrossSalary.
		Add(c.TransportAllowance).
		Add(c.BonusTotal).
		Sub(c.Deductions.Total)

	return c
}

// prorate returns amount * days / 30, rounded to cents.
func prorate(amount, days decimal.Decimal) decimal.Decimal {
	return amount.Mul(days).Div(thirty).Round(cents)
}

// deduct computes statutory deductions from the rounded gross salary. The
// total is rounded once from the unrounded parts so that it does not drift
// by a cent from the sum of the statutory percentages.
func deduct(
	e *employee.Employee,
	gross decimal.Decimal,
	novelties []*novelty.Novelty,
	advances []*advance.Advance,
	rates settings.Rates,
) Deductions {
	health := gross.Mul(settings.Fraction(rates.Health))
	pension := gross.Mul(settings.Fraction(rates.Pension))

	solidarity := decimal.Zero
	if e.Salary.GreaterThanOrEqual(rates.MinimumSalary.Mul(four)) {
		solidarity = gross.Mul(settings.Fraction(rates.Solidarity))
	}

	d := Deductions{
		Health:     health.Round(cents),
		Pension:    pension.Round(cents),
		Solidarity: solidarity.Round(cents),
		Advance:    advance.Total(advances).Round(cents),
		Novelties:  itemize(novelties, novelty.KindDeduction, rates),
	}

	d.NoveltyTotal = sumLines(d.Novelties)

	d.Total = health.
		Add(pension).
		Add(solidarity).
		Add(d.Advance).
		Add(d.NoveltyTotal).
		Round(cents)

	return d
}

// itemize groups the money value of novelties of kind k by type, in catalog order.
func itemize(novelties []*novelty.Novelty, k novelty.Kind, rates settings.Rates) []Line {
	subtotals := make(map[novelty.Type]decimal.Decimal)

	for _, n := range novelties {
		if n.Type.Kind() != k {
			continue
		}

		subtotals[n.Type] = subtotals[n.Type].Add(n.MoneyValue(rates))
	}

	if len(subtotals) == 0 {
		return nil
	}

	lines := make([]Line, 0, len(subtotals))

	for _, t := range novelty.TypesOfKind(k) {
		amount, ok := subtotals[t]
		if !ok {
			continue
		}

		lines = append(lines, Line{Type: t, Label: t.Label(), Amount: amount.Round(cents)})
	}

	return lines
}

func sumLines(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}

	return total
}
