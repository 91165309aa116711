package advance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/advance"
	"github.com/MrJamesThe3rd/nomina/internal/period"
)

type advanceResponse struct {
	ID           uuid.UUID       `json:"id"`
	EmployeeID   uuid.UUID       `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Date         *string         `json:"date,omitempty"`
	Month        period.Month    `json:"month"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toResponse(a *advance.Advance) advanceResponse {
	resp := advanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Amount:       a.Amount,
		Month:        a.Month,
		Description:  a.Description,
		CreatedAt:    a.CreatedAt,
	}

	if !a.Date.IsZero() {
		resp.Date = new(a.Date.Format(time.DateOnly))
	}

	return resp
}

func toResponseList(as []*advance.Advance) []advanceResponse {
	out := make([]advanceResponse, len(as))
	for i, a := range as {
		out[i] = toResponse(a)
	}

	return out
}
