package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound    = errors.New("rates not configured")
	ErrInvalidRate = errors.New("invalid rate")
)

// Rates is the process-wide payroll configuration. Percentages are expressed
// on a 0-100 scale; every other field is an amount in COP.
type Rates struct {
	Health     decimal.Decimal
	Pension    decimal.Decimal
	Solidarity decimal.Decimal

	TransportAllowance decimal.Decimal
	MinimumSalary      decimal.Decimal

	// Monetization of hour and day denominated novelties.
	OrdinaryHour   decimal.Decimal
	OvertimeHour   decimal.Decimal
	NightSurcharge decimal.Decimal
	HolidayDay     decimal.Decimal

	UpdatedAt *time.Time
}

// Defaults returns the 2024 statutory values.
func Defaults() Rates {
	return Rates{
		Health:             decimal.NewFromInt(4),
		Pension:            decimal.NewFromInt(4),
		Solidarity:         decimal.NewFromInt(1),
		TransportAllowance: decimal.NewFromInt(162000),
		MinimumSalary:      decimal.NewFromInt(1300000),
		OrdinaryHour:       decimal.NewFromInt(5417),
		OvertimeHour:       decimal.NewFromInt(6771),
		NightSurcharge:     decimal.NewFromInt(1896),
		HolidayDay:         decimal.NewFromInt(75833),
	}
}

var hundred = decimal.NewFromInt(100)

func (r Rates) Validate() error {
	percentages := []struct {
		name  string
		value decimal.Decimal
	}{
		{"health", r.Health},
		{"pension", r.Pension},
		{"solidarity", r.Solidarity},
	}

	for _, p := range percentages {
		if p.value.IsNegative() || p.value.GreaterThan(hundred) {
			return fmt.Errorf("%w: %s must be between 0 and 100, got %s", ErrInvalidRate, p.name, p.value)
		}
	}

	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"transport allowance", r.TransportAllowance},
		{"minimum salary", r.MinimumSalary},
		{"ordinary hour", r.OrdinaryHour},
		{"overtime hour", r.OvertimeHour},
		{"night surcharge", r.NightSurcharge},
		{"holiday day", r.HolidayDay},
	}

	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative, got %s", ErrInvalidRate, a.name, a.value)
		}
	}

	return nil
}

// Fraction converts a 0-100 percentage into a multiplier.
func Fraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}
