package advance

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/period"
)

var (
	ErrNotFound        = errors.New("advance not found")
	ErrInvalidAmount   = errors.New("advance amount must be greater than zero")
	ErrMissingEmployee = errors.New("advance must reference an employee")
	ErrMissingMonth    = errors.New("advance payroll month is required")
)

// Advance is cash paid ahead of payroll. It is recovered from the payroll of
// Month, whatever its disbursement Date.
type Advance struct {
	ID           uuid.UUID
	EmployeeID   uuid.UUID
	EmployeeName string
	Amount       decimal.Decimal
	Date         time.Time
	Month        period.Month
	Description  string
	CreatedAt    time.Time
}

func (a *Advance) Validate() error {
	if a.EmployeeID == uuid.Nil {
		return ErrMissingEmployee
	}

	if !a.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if a.Month.IsZero() {
		return ErrMissingMonth
	}

	return nil
}
