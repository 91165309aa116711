package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/nomina/internal/advance"
	"github.com/MrJamesThe3rd/nomina/internal/employee"
	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/period"
	"github.com/MrJamesThe3rd/nomina/internal/settings"
)

//go:generate mockgen -source=service.go -destination=source_mock.go -package=payroll
type EmployeeSource interface {
	List(ctx context.Context) ([]*employee.Employee, error)
}

type NoveltySource interface {
	ListMonth(ctx context.Context, month period.Month) ([]*novelty.Novelty, error)
}

type AdvanceSource interface {
	ListMonth(ctx context.Context, month period.Month) ([]*advance.Advance, error)
}

type RateSource interface {
	Get(ctx context.Context) (settings.Rates, error)
}

// Service snapshots the ledgers and runs the engine over them.
type Service struct {
	employees EmployeeSource
	novelties NoveltySource
	advances  AdvanceSource
	rates     RateSource
	now       func() time.Time
}

func NewService(employees EmployeeSource, novelties NoveltySource, advances AdvanceSource, rates RateSource) *Service {
	return &Service{
		employees: employees,
		novelties: novelties,
		advances:  advances,
		rates:     rates,
		now:       time.Now,
	}
}

// Run calculates the payroll of month from the current state of the ledgers.
func (s *Service) Run(ctx context.Context, month period.Month) (*Run, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}

	novelties, err := s.novelties.ListMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("listing novelties: %w", err)
	}

	advances, err := s.advances.ListMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("listing advances: %w", err)
	}

	rates, err := s.rates.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting rates: %w", err)
	}

	calcs := Calculate(employees, novelties, advances, rates, month)

	return &Run{
		Month:        month,
		Rates:        rates,
		Calculations: calcs,
		Summary:      Summarize(calcs),
		CalculatedAt: s.now(),
	}, nil
}
