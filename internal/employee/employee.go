package employee

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound            = errors.New("employee not found")
	ErrMissingName         = errors.New("employee name is required")
	ErrInvalidContractType = errors.New("contract type must be OPS or NOMINA")
	ErrNegativeSalary      = errors.New("salary cannot be negative")
	ErrDuplicateCedula     = errors.New("an employee with this cedula already exists")
)

// ContractType classifies how an employee is hired.
type ContractType string

const (
	// ContractOPS is an independent contractor (orden de prestación de servicios).
	ContractOPS ContractType = "OPS"
	// ContractNomina is a payroll employee, eligible for the transport allowance.
	ContractNomina ContractType = "NOMINA"
)

func (c ContractType) Valid() bool {
	return c == ContractOPS || c == ContractNomina
}

// Employee is a member of the roster.
type Employee struct {
	ID           uuid.UUID
	Name         string
	Cedula       string
	ContractType ContractType
	Salary       decimal.Decimal // Monthly base salary in COP
	CreatedDate  time.Time       // Hire date; zero means "always eligible"
	WorkedDays   int
	DateOfBirth  *time.Time
	Phone        string
	Email        string
	EPS          string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Validate checks the roster invariants.
func (e *Employee) Validate() error {
	if e.Name == "" {
		return ErrMissingName
	}

	if !e.ContractType.Valid() {
		return ErrInvalidContractType
	}

	if e.Salary.IsNegative() {
		return ErrNegativeSalary
	}

	return nil
}

// HiredBy reports whether the employee was already hired on day t.
func (e *Employee) HiredBy(t time.Time) bool {
	if e.CreatedDate.IsZero() {
		return true
	}

	y, m, d := e.CreatedDate.Date()
	hired := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	y, m, d = t.Date()

	return !hired.After(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
