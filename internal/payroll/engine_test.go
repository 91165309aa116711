package payroll_test

import (
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
	"github.com/MrJamesThe3rd/nomina/internal/settings"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func newEmployee(name string, contract employee.ContractType, salary int64) *employee.Employee {
	return &employee.Employee{
		ID:           uuid.New(),
		Name:         name,
		Cedula:       "10" + name,
		ContractType: contract,
		Salary:       decimal.NewFromInt(salary),
		CreatedDate:  date(2023, 1, 10),
	}
}

func days(e *employee.Employee, typ novelty.Type, d time.Time, n int64) *novelty.Novelty {
	return &novelty.Novelty{ID: uuid.New(), EmployeeID: e.ID, Type: typ, Date: d, Quantity: novelty.DaysOf(decimal.NewFromInt(n))}
}

func hours(e *employee.Employee, typ novelty.Type, d time.Time, n int64) *novelty.Novelty {
	return &novelty.Novelty{ID: uuid.New(), EmployeeID: e.ID, Type: typ, Date: d, Quantity: novelty.HoursOf(decimal.NewFromInt(n))}
}

func money(e *employee.Employee, typ novelty.Type, d time.Time, n int64) *novelty.Novelty {
	return &novelty.Novelty{ID: uuid.New(), EmployeeID: e.ID, Type: typ, Date: d, Quantity: novelty.MoneyOf(decimal.NewFromInt(n))}
}

func TestCalculate_EndToEnd(t *testing.T) {
	ana := newEmployee("Ana", employee.ContractNomina, 1300000)
	april := period.MustParse("2024-04")

	calcs := payroll.Calculate(
		[]*employee.Employee{ana},
		[]*novelty.Novelty{days(ana, novelty.TypeAbsence, date(2024, 4, 8), 2)},
		nil,
		settings.Defaults(),
		april,
	)
	require.Len(t, calcs, 1)

	c := calcs[0]
	assert.Equal(t, 30, c.DaysInMonth)
	assertAmount(t, "2", c.DiscountedDays)
	assertAmount(t, "28", c.WorkedDays)
	assertAmount(t, "1300000", c.BaseSalary)
	assertAmount(t, "43333.33", c.DailyRate)
	assertAmount(t, "1213333.33", c.GrossSalary)
	assertAmount(t, "151200", c.TransportAllowance)
	assertAmount(t, "0", c.BonusTotal)
	assertAmount(t, "48533.33", c.Deductions.Health)
	assertAmount(t, "48533.33", c.Deductions.Pension)
	assertAmount(t, "0", c.Deductions.Solidarity)
	assertAmount(t, "0", c.Deductions.Advance)
	assertAmount(t, "97066.67", c.Deductions.Total)
	assertAmount(t, "1267466.66", c.NetSalary)
	assert.False(t, c.NegativeNet())
	require.Len(t, c.Novelties, 1)
	assert.Equal(t, novelty.TypeAbsence, c.Novelties[0].Type)
}

func TestCalculate_DeductionTotalFromFullPrecision(t *testing.T) {
	ana := newEmployee("Ana", employee.ContractNomina, 1300000)

	calcs := payroll.Calculate(
		[]*employee.Employee{ana},
		[]*novelty.Novelty{days(ana, novelty.TypeAbsence, date(2024, 4, 8), 2)},
		nil,
		settings.Defaults(),
		period.MustParse("2024-04"),
	)
	require.Len(t, calcs, 1)

	d := calcs[0].Deductions

	// 4% + 4% of 1 213 333.33 is 97 066.6664: the lines round down, the total rounds up.
	assertAmount(t, "97066.66", d.Health.Add(d.Pension))
	assertAmount(t, "97066.67", d.Total)
	assertAmount(t, "1267466.66", calcs[0].GrossSalary.Add(calcs[0].TransportAllowance).Sub(d.Total))
}

func TestCalculate_Deterministic(t *testing.T) {
	ana := newEmployee("Ana", employee.ContractNomina, 1300000)
	luis := newEmployee("Luis", employee.ContractOPS, 5400000)
	april := period.MustParse("2024-04")

	novelties := []*novelty.Novelty{
		days(ana, novelty.TypeAbsence, date(2024, 4, 8), 1),
		hours(ana, novelty.TypeNightShift, date(2024, 4, 9), 7),
		money(luis, novelty.TypeMultas, date(2024, 4, 2), 30000),
		money(luis, novelty.TypeSalesBonus, date(2024, 4, 20), 250000),
	}
	advances := []*advance.Advance{
		{ID: uuid.New(), EmployeeID: luis.ID, Amount: decimal.NewFromInt(100000), Month: april},
	}

	first := payroll.Calculate([]*employee.Employee{ana, luis}, novelties, advances, settings.Defaults(), april)
	second := payroll.Calculate([]*employee.Employee{ana, luis}, novelties, advances, settings.Defaults(), april)

	assert.Equal(t, first, second)
}

func TestCalculate_Eligibility(t *testing.T) {
	april := period.MustParse("2024-04")

	before := newEmployee("Antes", employee.ContractNomina, 1300000)
	lastDay := newEmployee("Ultimo", employee.ContractNomina, 1300000)
	lastDay.CreatedDate = date(2024, 4, 30)
	after := newEmployee("Despues", employee.ContractNomina, 1300000)
	after.CreatedDate = date(2024, 5, 1)
	unknown := newEmployee("Sin fecha", employee.ContractOPS, 1300000)
	unknown.CreatedDate = time.Time{}

	calcs := payroll.Calculate(
		[]*employee.Employee{after, before, lastDay, unknown},
		nil, nil, settings.Defaults(), april,
	)

	require.Len(t, calcs, 3)
	assert.Equal(t, "Antes", calcs[0].Employee.Name)
	assert.Equal(t, "Ultimo", calcs[1].Employee.Name)
	assert.Equal(t, "Sin fecha", calcs[2].Employee.Name)
}

func TestCalculate_DaysInMonth(t *testing.T) {
	e := newEmployee("Ana", employee.ContractOPS, 3000000)

	tests := []struct {
		month     string
		wantDays  int
		wantGross string
	}{
		{month: "2024-02", wantDays: 29, wantGross: "2900000"},
		{month: "2023-02", wantDays: 28, wantGross: "2800000"},
		{month: "2024-04", wantDays: 30, wantGross: "3000000"},
		// Salary is always divided by 30, so a full 31 day month pays 31 days.
		{month: "2024-01", wantDays: 31, wantGross: "3100000"},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			calcs := payroll.Calculate([]*employee.Employee{e}, nil, nil, settings.Defaults(), period.MustParse(tt.month))
			require.Len(t, calcs, 1)
			assert.Equal(t, tt.wantDays, calcs[0].DaysInMonth)
			assertAmount(t, tt.wantGross, calcs[0].GrossSalary)
		})
	}
}

func TestCalculate_WorkedDaysFloor(t *testing.T) {
	e := newEmployee("Ana", employee.ContractNomina, 1300000)
	april := period.MustParse("2024-04")

	calcs := payroll.Calculate(
		[]*employee.Employee{e},
		[]*novelty.Novelty{
			days(e, novelty.TypeMedicalLeave, date(2024, 4, 1), 20),
			days(e, novelty.TypeVacation, date(2024, 4, 21), 15),
		},
		nil, settings.Defaults(), april,
	)
	require.Len(t, calcs, 1)

	c := calcs[0]
	assertAmount(t, "35", c.DiscountedDays)
	assertAmount(t, "0", c.WorkedDays)
	assertAmount(t, "0", c.GrossSalary)
	assertAmount(t, "0", c.TransportAllowance)
	assertAmount(t, "0", c.NetSalary)
}

func TestCalculate_TransportAllowance(t *testing.T) {
	april := period.MustParse("2024-04")

	tests := []struct {
		name     string
		contract employee.ContractType
		salary   int64
		want     string
	}{
		{name: "Nomina Below Threshold", contract: employee.ContractNomina, salary: 2599999, want: "162000"},
		{name: "Nomina At Threshold", contract: employee.ContractNomina, salary: 2600000, want: "0"},
		{name: "OPS Low Salary", contract: employee.ContractOPS, salary: 1000000, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEmployee("X", tt.contract, tt.salary)
			calcs := payroll.Calculate([]*employee.Employee{e}, nil, nil, settings.Defaults(), april)
			require.Len(t, calcs, 1)
			assertAmount(t, tt.want, calcs[0].TransportAllowance)
		})
	}
}

func TestCalculate_SolidarityBoundary(t *testing.T) {
	april := period.MustParse("2024-04")

	tests := []struct {
		name   string
		salary int64
		want   string
	}{
		{name: "At Threshold", salary: 5200000, want: "52000"},
		{name: "Just Below", salary: 5199999, want: "0"},
		{name: "Above", salary: 8000000, want: "80000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEmployee("X", employee.ContractOPS, tt.salary)
			calcs := payroll.Calculate([]*employee.Employee{e}, nil, nil, settings.Defaults(), april)
			require.Len(t, calcs, 1)
			assertAmount(t, tt.want, calcs[0].Deductions.Solidarity)
		})
	}
}

func TestCalculate_AdvanceMonthBinding(t *testing.T) {
	e := newEmployee("Ana", employee.ContractNomina, 1300000)
	march := period.MustParse("2024-03")
	april := period.MustParse("2024-04")

	advances := []*advance.Advance{{
		ID:         uuid.New(),
		EmployeeID: e.ID,
		Amount:     decimal.NewFromInt(200000),
		Date:       date(2024, 3, 15),
		Month:      april,
	}}

	marchRun := payroll.Calculate([]*employee.Employee{e}, nil, advances, settings.Defaults(), march)
	require.Len(t, marchRun, 1)
	assertAmount(t, "0", marchRun[0].Deductions.Advance)
	assert.Empty(t, marchRun[0].Advances)

	aprilRun := payroll.Calculate([]*employee.Employee{e}, nil, advances, settings.Defaults(), april)
	require.Len(t, aprilRun, 1)
	assertAmount(t, "200000", aprilRun[0].Deductions.Advance)
	require.Len(t, aprilRun[0].Advances, 1)

	// 52000 + 52000 + 200000
	assertAmount(t, "304000", aprilRun[0].Deductions.Total)
}

func TestCalculate_BonusMonetization(t *testing.T) {
	e := newEmployee("Ana", employee.ContractOPS, 2000000)
	april := period.MustParse("2024-04")

	rates := settings.Defaults()
	rates.OrdinaryHour = decimal.NewFromInt(6200)

	calcs := payroll.Calculate(
		[]*employee.Employee{e},
		[]*novelty.Novelty{hours(e, novelty.TypeFixedOvertime, date(2024, 4, 12), 10)},
		nil, rates, april,
	)
	require.Len(t, calcs, 1)
	assertAmount(t, "62000", calcs[0].BonusTotal)
	require.Len(t, calcs[0].Additions, 1)
	assert.Equal(t, "Horas extra fijas", calcs[0].Additions[0].Label)
}

func TestCalculate_AdditionsItemized(t *testing.T) {
	e := newEmployee("Ana", employee.ContractOPS, 2000000)
	april := period.MustParse("2024-04")

	calcs := payroll.Calculate(
		[]*employee.Employee{e},
		[]*novelty.Novelty{
			money(e, novelty.TypeGasAllowance, date(2024, 4, 3), 80000),
			days(e, novelty.TypeSundayWork, date(2024, 4, 7), 2),
			hours(e, novelty.TypeOvertime, date(2024, 4, 9), 3),
			money(e, novelty.TypeFixedComp, date(2024, 4, 10), 50000),
			money(e, novelty.TypeFixedComp, date(2024, 4, 25), 25000),
			// Outside the month.
			money(e, novelty.TypeSalesBonus, date(2024, 5, 1), 999999),
		},
		nil, settings.Defaults(), april,
	)
	require.Len(t, calcs, 1)

	c := calcs[0]
	require.Len(t, c.Additions, 4)
	assert.Equal(t, novelty.TypeFixedComp, c.Additions[0].Type)
	assertAmount(t, "75000", c.Additions[0].Amount)
	assert.Equal(t, novelty.TypeOvertime, c.Additions[1].Type)
	assertAmount(t, "20313", c.Additions[1].Amount)
	assert.Equal(t, novelty.TypeSundayWork, c.Additions[2].Type)
	assertAmount(t, "151666", c.Additions[2].Amount)
	assert.Equal(t, novelty.TypeGasAllowance, c.Additions[3].Type)
	assertAmount(t, "80000", c.Additions[3].Amount)

	assertAmount(t, "326979", c.BonusTotal)
	assert.Len(t, c.Novelties, 5)

	// Bonuses do not change the base of statutory deductions.
	assertAmount(t, "80000", c.Deductions.Health)
}

func TestCalculate_DeductionNovelties(t *testing.T) {
	e := newEmployee("Ana", employee.ContractOPS, 2000000)
	april := period.MustParse("2024-04")

	calcs := payroll.Calculate(
		[]*employee.Employee{e},
		[]*novelty.Novelty{
			money(e, novelty.TypeCarteraEmpleados, date(2024, 4, 3), 40000),
			money(e, novelty.TypeMultas, date(2024, 4, 5), 20000),
			money(e, novelty.TypePlanCorporativo, date(2024, 4, 6), 55000),
		},
		nil, settings.Defaults(), april,
	)
	require.Len(t, calcs, 1)

	d := calcs[0].Deductions
	require.Len(t, d.Novelties, 3)
	assert.Equal(t, novelty.TypePlanCorporativo, d.Novelties[0].Type)
	assert.Equal(t, novelty.TypeMultas, d.Novelties[1].Type)
	assert.Equal(t, novelty.TypeCarteraEmpleados, d.Novelties[2].Type)
	assertAmount(t, "115000", d.NoveltyTotal)

	// Statutory deductions come from the gross salary before discretionary deductions.
	assertAmount(t, "80000", d.Health)
	assertAmount(t, "80000", d.Pension)
	assertAmount(t, "275000", d.Total)
	assertAmount(t, "1725000", calcs[0].NetSalary)
	assertAmount(t, "0", calcs[0].BonusTotal)
}

func TestCalculate_NegativeNet(t *testing.T) {
	e := newEmployee("Ana", employee.ContractOPS, 1000000)
	april := period.MustParse("2024-04")

	calcs := payroll.Calculate(
		[]*employee.Employee{e},
		[]*novelty.Novelty{days(e, novelty.TypeAbsence, date(2024, 4, 1), 25)},
		[]*advance.Advance{{ID: uuid.New(), EmployeeID: e.ID, Amount: decimal.NewFromInt(500000), Month: april}},
		settings.Defaults(), april,
	)
	require.Len(t, calcs, 1)

	c := calcs[0]
	assertAmount(t, "166666.67", c.GrossSalary)
	assert.True(t, c.NetSalary.IsNegative())
	assert.True(t, c.NegativeNet())
}

func TestCalculate_DoesNotMutateInputs(t *testing.T) {
	e := newEmployee("Ana", employee.ContractNomina, 1300000)
	n := days(e, novelty.TypeAbsence, date(2024, 4, 8), 2)
	a := &advance.Advance{ID: uuid.New(), EmployeeID: e.ID, Amount: decimal.NewFromInt(1000), Month: period.MustParse("2024-04")}

	employeeBefore, noveltyBefore, advanceBefore := *e, *n, *a

	calcs := payroll.Calculate([]*employee.Employee{e}, []*novelty.Novelty{n}, []*advance.Advance{a}, settings.Defaults(), period.MustParse("2024-04"))
	require.Len(t, calcs, 1)

	calcs[0].Employee.Name = "changed"
	calcs[0].Novelties[0].Description = "changed"

	assert.Equal(t, employeeBefore, *e)
	assert.Equal(t, noveltyBefore, *n)
	assert.Equal(t, advanceBefore, *a)
}

func TestCalculate_ToleratesEmptyQuantities(t *testing.T) {
	e := newEmployee("Ana", employee.ContractOPS, 1500000)
	april := period.MustParse("2024-04")

	// Stored records with a missing or mismatched quantity contribute nothing.
	calcs := payroll.Calculate(
		[]*employee.Employee{e},
		[]*novelty.Novelty{
			{ID: uuid.New(), EmployeeID: e.ID, Type: novelty.TypeFixedOvertime, Date: date(2024, 4, 4)},
			{ID: uuid.New(), EmployeeID: e.ID, Type: novelty.TypeAbsence, Date: date(2024, 4, 4), Quantity: novelty.HoursOf(decimal.NewFromInt(8))},
		},
		nil, settings.Defaults(), april,
	)
	require.Len(t, calcs, 1)
	assertAmount(t, "30", calcs[0].WorkedDays)
	assertAmount(t, "0", calcs[0].BonusTotal)
}

func TestSummarize(t *testing.T) {
	ana := newEmployee("Ana", employee.ContractNomina, 1300000)
	luis := newEmployee("Luis", employee.ContractOPS, 2000000)
	april := period.MustParse("2024-04")

	calcs := payroll.Calculate(
		[]*employee.Employee{ana, luis},
		[]*novelty.Novelty{
			days(ana, novelty.TypeAbsence, date(2024, 4, 8), 2),
			money(luis, novelty.TypeSalesBonus, date(2024, 4, 8), 100000),
		},
		[]*advance.Advance{{ID: uuid.New(), EmployeeID: luis.ID, Amount: decimal.NewFromInt(300000), Month: april}},
		settings.Defaults(), april,
	)

	s := payroll.Summarize(calcs)
	assert.Equal(t, 2, s.Employees)
	assertAmount(t, "3213333.33", s.GrossSalary)
	assertAmount(t, "151200", s.TransportAllowance)
	assertAmount(t, "100000", s.Bonuses)
	assertAmount(t, "300000", s.Advances)
	// 97066.67 + (80000 + 80000 + 300000)
	assertAmount(t, "557066.67", s.Deductions)
	assertAmount(t, "2907466.66", s.NetSalary)
	assert.Equal(t, 0, s.NegativeNet)

	empty := payroll.Summarize(nil)
	assert.Equal(t, 0, empty.Employees)
	assertAmount(t, "0", empty.NetSalary)
}
