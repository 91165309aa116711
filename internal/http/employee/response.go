package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/employee"
)

type employeeResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Cedula       string                `json:"cedula"`
	ContractType employee.ContractType `json:"contract_type"`
	Salary       decimal.Decimal       `json:"salary"`
	CreatedDate  *string               `json:"created_date,omitempty"`
	WorkedDays   int                   `json:"worked_days"`
	DateOfBirth  *string               `json:"date_of_birth,omitempty"`
	Phone        string                `json:"phone,omitempty"`
	Email        string                `json:"email,omitempty"`
	EPS          string                `json:"eps,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    *time.Time            `json:"updated_at,omitempty"`
}

func dateString(t time.Time) *string {
	if t.IsZero() {
		return nil
	}

	return new(t.Format(time.DateOnly))
}

func toResponse(e *employee.Employee) employeeResponse {
	resp := employeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Cedula:       e.Cedula,
		ContractType: e.ContractType,
		Salary:       e.Salary,
		CreatedDate:  dateString(e.CreatedDate),
		WorkedDays:   e.WorkedDays,
		Phone:        e.Phone,
		Email:        e.Email,
		EPS:          e.EPS,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}

	if e.DateOfBirth != nil {
		resp.DateOfBirth = dateString(*e.DateOfBirth)
	}

	return resp
}

func toResponseList(es []*employee.Employee) []employeeResponse {
	resp := make([]employeeResponse, len(es))
	for i, e := range es {
		resp[i] = toResponse(e)
	}

	return resp
}
