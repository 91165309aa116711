package novelty

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/period"
	"github.com/MrJamesThe3rd/nomina/internal/settings"
)

var (
	ErrNotFound         = errors.New("novelty not found")
	ErrUnknownType      = errors.New("unknown novelty type")
	ErrUnitMismatch     = errors.New("quantity unit does not match novelty type")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrMissingEmployee  = errors.New("novelty must reference an employee")
	ErrMissingDate      = errors.New("novelty date is required")
)

// Quantity is the single measured value of a novelty: a number of days,
// hours or COP, tagged with its unit.
type Quantity struct {
	unit  Unit
	value decimal.Decimal
}

func DaysOf(d decimal.Decimal) Quantity  { return Quantity{unit: UnitDays, value: d} }
func HoursOf(h decimal.Decimal) Quantity { return Quantity{unit: UnitHours, value: h} }
func MoneyOf(m decimal.Decimal) Quantity { return Quantity{unit: UnitMoney, value: m} }

// NewQuantity rebuilds a quantity from its stored unit and value.
func NewQuantity(u Unit, v decimal.Decimal) (Quantity, error) {
	switch u {
	case UnitDays, UnitHours, UnitMoney:
		return Quantity{unit: u, value: v}, nil
	}

	return Quantity{}, fmt.Errorf("unknown unit %q", u)
}

func (q Quantity) Unit() Unit             { return q.unit }
func (q Quantity) Value() decimal.Decimal { return q.value }

func (q Quantity) of(u Unit) decimal.Decimal {
	if q.unit != u {
		return decimal.Zero
	}

	return q.value
}

// Novelty is a dated event affecting one employee's pay.
type Novelty struct {
	ID           uuid.UUID
	EmployeeID   uuid.UUID
	EmployeeName string
	Type         Type
	Date         time.Time
	Quantity     Quantity
	Description  string

	// Recurring novelties are re-applied every month from StartMonth on.
	Recurring  bool
	StartMonth period.Month

	// AutoApplied marks instances synthesized from a recurring novelty.
	AutoApplied bool
	SourceID    *uuid.UUID

	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (n *Novelty) Validate() error {
	if n.EmployeeID == uuid.Nil {
		return ErrMissingEmployee
	}

	if !n.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, n.Type)
	}

	if n.Date.IsZero() {
		return ErrMissingDate
	}

	if n.Quantity.unit != n.Type.Unit() {
		return fmt.Errorf("%w: %s is measured in %s, got %s", ErrUnitMismatch, n.Type, n.Type.Unit(), n.Quantity.unit)
	}

	if n.Quantity.value.IsNegative() {
		return ErrNegativeQuantity
	}

	return nil
}

// Month is the payroll month the novelty is dated in.
func (n *Novelty) Month() period.Month {
	return period.Of(n.Date)
}

// DiscountDays is the number of days removed from worked days.
func (n *Novelty) DiscountDays() decimal.Decimal {
	if n.Type.Kind() != KindDiscount {
		return decimal.Zero
	}

	return n.Quantity.of(UnitDays)
}

// BonusAmount is the money amount of money denominated novelties,
// whether they add to or deduct from pay.
func (n *Novelty) BonusAmount() decimal.Decimal {
	return n.Quantity.of(UnitMoney)
}

func (n *Novelty) Hours() decimal.Decimal {
	return n.Quantity.of(UnitHours)
}

// Days is the day count of day denominated additions such as Sunday work.
func (n *Novelty) Days() decimal.Decimal {
	if n.Type.Kind() == KindDiscount {
		return decimal.Zero
	}

	return n.Quantity.of(UnitDays)
}

// MoneyValue converts the novelty into COP using the configured rates.
// Discount novelties act through worked days and have no money value of their own.
func (n *Novelty) MoneyValue(r settings.Rates) decimal.Decimal {
	if n.Quantity.unit != n.Type.Unit() {
		return decimal.Zero
	}

	switch n.Type.Kind() {
	case KindDiscount:
		return decimal.Zero
	case KindAddition, KindDeduction:
		if n.Quantity.unit == UnitMoney {
			return n.Quantity.value
		}

		return n.Quantity.value.Mul(n.Type.Rate(r))
	}

	return decimal.Zero
}
