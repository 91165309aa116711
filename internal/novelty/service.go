package novelty

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nomina/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=novelty
type Repository interface {
	CreateNovelty(ctx context.Context, n *Novelty) error
	GetNovelty(ctx context.Context, id uuid.UUID) (*Novelty, error)
	UpdateNovelty(ctx context.Context, n *Novelty) error
	DeleteNovelty(ctx context.Context, id uuid.UUID) error

	ListNovelties(ctx context.Context, filter ListFilter) ([]*Novelty, error)

	// BeginReconcile opens a transaction that holds the reconciliation lock for month.
	BeginReconcile(ctx context.Context, month period.Month) (ReconcileTx, error)
}

type ReconcileTx interface {
	// ListCandidates returns the recurring novelties that apply to month
	// together with every novelty already dated in month.
	ListCandidates(ctx context.Context, month period.Month) ([]*Novelty, error)
	CreateNovelties(ctx context.Context, ns []*Novelty) error
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
	Type         Type
	Date         time.Time
	Quantity     Quantity
	Description  string
	Recurring    bool
	StartMonth   period.Month
}

type ListFilter struct {
	EmployeeID *uuid.UUID
	Month      *period.Month
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Novelty, error) {
	n := &Novelty{
		EmployeeID:   params.EmployeeID,
		EmployeeName: params.EmployeeName,
		Type:         params.Type,
		Date:         params.Date,
		Quantity:     params.Quantity,
		Description:  params.Description,
		Recurring:    params.Recurring,
		StartMonth:   params.StartMonth,
	}

	if n.Recurring && n.StartMonth.IsZero() {
		n.StartMonth = period.Of(n.Date)
	}

	if err := n.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateNovelty(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Novelty, error) {
	return s.repo.GetNovelty(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Novelty, error) {
	return s.repo.ListNovelties(ctx, filter)
}

// ListMonth returns every novelty dated in month.
func (s *Service) ListMonth(ctx context.Context, month period.Month) ([]*Novelty, error) {
	return s.repo.ListNovelties(ctx, ListFilter{Month: &month})
}

func (s *Service) Update(ctx context.Context, n *Novelty) error {
	if n.Recurring && n.StartMonth.IsZero() {
		n.StartMonth = period.Of(n.Date)
	}

	if err := n.Validate(); err != nil {
		return err
	}

	return s.repo.UpdateNovelty(ctx, n)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteNovelty(ctx, id)
}

// ApplyRecurring inserts the instances recurring novelties are missing for month.
// It is safe to run repeatedly: instances that already exist are left alone.
func (s *Service) ApplyRecurring(ctx context.Context, month period.Month) ([]*Novelty, error) {
	rtx, err := s.repo.BeginReconcile(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("begin reconcile: %w", err)
	}
	defer rtx.Rollback()

	candidates, err := rtx.ListCandidates(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	missing := Reconcile(candidates, month)
	if len(missing) == 0 {
		return nil, nil
	}

	if err := rtx.CreateNovelties(ctx, missing); err != nil {
		return nil, fmt.Errorf("create novelties: %w", err)
	}

	if err := rtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reconcile: %w", err)
	}

	slog.Info("applied recurring novelties", "month", month.String(), "count", len(missing))

	return missing, nil
}
