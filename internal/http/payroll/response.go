package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/employee"
	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/payroll"
	"github.com/MrJamesThe3rd/nomina/internal/period"
)

type lineResponse struct {
	Type   novelty.Type    `json:"type"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type deductionsResponse struct {
	Health       decimal.Decimal `json:"health"`
	Pension      decimal.Decimal `json:"pension"`
	Solidarity   decimal.Decimal `json:"solidarity"`
	Advance      decimal.Decimal `json:"advance"`
	Novelties    []lineResponse  `json:"novelties"`
	NoveltyTotal decimal.Decimal `json:"novelty_total"`
	Total        decimal.Decimal `json:"total"`
}

type calculationResponse struct {
	EmployeeID         uuid.UUID             `json:"employee_id"`
	Name               string                `json:"name"`
	Cedula             string                `json:"cedula"`
	ContractType       employee.ContractType `json:"contract_type"`
	DaysInMonth        int                   `json:"days_in_month"`
	WorkedDays         decimal.Decimal       `json:"worked_days"`
	DiscountedDays     decimal.Decimal       `json:"discounted_days"`
	BaseSalary         decimal.Decimal       `json:"base_salary"`
	DailyRate          decimal.Decimal       `json:"daily_rate"`
	GrossSalary        decimal.Decimal       `json:"gross_salary"`
	TransportAllowance decimal.Decimal       `json:"transport_allowance"`
	Additions          []lineResponse        `json:"additions"`
	BonusTotal         decimal.Decimal       `json:"bonus_total"`
	Deductions         deductionsResponse    `json:"deductions"`
	NetSalary          decimal.Decimal       `json:"net_salary"`
	NegativeNet        bool                  `json:"negative_net"`
	NoveltyIDs         []uuid.UUID           `json:"novelty_ids"`
	AdvanceIDs         []uuid.UUID           `json:"advance_ids"`
}

type summaryResponse struct {
	Employees          int             `json:"employees"`
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	Bonuses            decimal.Decimal `json:"bonuses"`
	Deductions         decimal.Decimal `json:"deductions"`
	Advances           decimal.Decimal `json:"advances"`
	NetSalary          decimal.Decimal `json:"net_salary"`
	NegativeNet        int             `json:"negative_net"`
}

type runResponse struct {
	Month        period.Month          `json:"month"`
	Label        string                `json:"label"`
	Calculations []calculationResponse `json:"calculations"`
	Summary      summaryResponse       `json:"summary"`
	CalculatedAt time.Time             `json:"calculated_at"`
}

func toLines(lines []payroll.Line) []lineResponse {
	out := make([]lineResponse, len(lines))
	for i, l := range lines {
		out[i] = lineResponse{Type: l.Type, Label: l.Label, Amount: l.Amount}
	}

	return out
}

func toCalculation(c *payroll.Calculation) calculationResponse {
	resp := calculationResponse{
		EmployeeID:         c.Employee.ID,
		Name:               c.Employee.Name,
		Cedula:             c.Employee.Cedula,
		ContractType:       c.Employee.ContractType,
		DaysInMonth:        c.DaysInMonth,
		WorkedDays:         c.WorkedDays,
		DiscountedDays:     c.DiscountedDays,
		BaseSalary:         c.BaseSalary,
		DailyRate:          c.DailyRate,
		GrossSalary:        c.GrossSalary,
		TransportAllowance: c.TransportAllowance,
		Additions:          toLines(c.Additions),
		BonusTotal:         c.BonusTotal,
		Deductions: deductionsResponse{
			Health:       c.Deductions.Health,
			Pension:      c.Deductions.Pension,
			Solidarity:   c.Deductions.Solidarity,
			Advance:      c.Deductions.Advance,
			Novelties:    toLines(c.Deductions.Novelties),
			NoveltyTotal: c.Deductions.NoveltyTotal,
			Total:        c.Deductions.Total,
		},
		NetSalary:   c.NetSalary,
		NegativeNet: c.NegativeNet(),
		NoveltyIDs:  make([]uuid.UUID, len(c.Novelties)),
		AdvanceIDs:  make([]uuid.UUID, len(c.Advances)),
	}

	for i := range c.Novelties {
		resp.NoveltyIDs[i] = c.Novelties[i].ID
	}

	for i := range c.Advances {
		resp.AdvanceIDs[i] = c.Advances[i].ID
	}

	return resp
}

func toRunResponse(run *payroll.Run) runResponse {
	resp := runResponse{
		Month:        run.Month,
		Label:        run.Month.Label(),
		Calculations: make([]calculationResponse, len(run.Calculations)),
		Summary: summaryResponse{
			Employees:          run.Summary.Employees,
			GrossSalary:        run.Summary.GrossSalary,
			TransportAllowance: run.Summary.TransportAllowance,
			Bonuses:            run.Summary.Bonuses,
			Deductions:         run.Summary.Deductions,
			Advances:           run.Summary.Advances,
			NetSalary:          run.Summary.NetSalary,
			NegativeNet:        run.Summary.NegativeNet,
		},
		CalculatedAt: run.CalculatedAt,
	}

	for i := range run.Calculations {
		resp.Calculations[i] = toCalculation(&run.Calculations[i])
	}

	return resp
}
