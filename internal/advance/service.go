package advance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=advance
type Repository interface {
	CreateAdvance(ctx context.Context, a *Advance) error
	GetAdvance(ctx context.Context, id uuid.UUID) (*Advance, error)
	DeleteAdvance(ctx context.Context, id uuid.UUID) error
	ListAdvances(ctx context.Context, filter ListFilter) ([]*Advance, error)

	BeginBatch(ctx context.Context) (BatchTx, error)
}

type BatchTx interface {
	CreateAdvances(ctx context.Context, as []*Advance) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	EmployeeID   uuid.UUID
	EmployeeName string
	Amount       decimal.Decimal
	Date         time.Time
	Month        period.Month
	Description  string
}

type ListFilter struct {
	EmployeeID *uuid.UUID
	Month      *period.Month
}

func (p CreateParams) advance() *Advance {
	a := &Advance{
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Amount:       p.Amount,
		Date:         p.Date,
		Month:        p.Month,
		Description:  p.Description,
	}

	if a.Month.IsZero() && !a.Date.IsZero() {
		a.Month = period.Of(a.Date)
	}

	return a
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Advance, error) {
	a := params.advance()
	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateAdvance(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// CreateBatch stores all advances or none of them.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Advance, error) {
	if len(params) == 0 {
		return nil, nil
	}

	advances := make([]*Advance, len(params))
	for i, p := range params {
		a := p.advance()
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("advance %d: %w", i+1, err)
		}

		advances[i] = a
	}

	btx, err := s.repo.BeginBatch(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin batch: %w", err)
	}
	defer btx.Rollback()

	if err := btx.CreateAdvances(ctx, advances); err != nil {
		return nil, fmt.Errorf("create advances: %w", err)
	}

	if err := btx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	return advances, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Advance, error) {
	return s.repo.GetAdvance(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Advance, error) {
	return s.repo.ListAdvances(ctx, filter)
}

// ListMonth returns the advances recovered by the payroll of month.
func (s *Service) ListMonth(ctx context.Context, month period.Month) ([]*Advance, error) {
	return s.repo.ListAdvances(ctx, ListFilter{Month: &month})
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAdvance(ctx, id)
}

// Total sums the amounts of advances.
func Total(advances []*Advance) decimal.Decimal {
	total := decimal.Zero
	for _, a := range advances {
		total = total.Add(a.Amount)
	}

	return total
}
