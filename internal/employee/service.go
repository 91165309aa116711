package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=employee
type Repository interface {
	CreateEmployee(ctx context.Context, e *Employee) error
	GetEmployee(ctx context.Context, id uuid.UUID) (*Employee, error)
	GetEmployeeByCedula(ctx context.Context, cedula string) (*Employee, error)
	UpdateEmployee(ctx context.Context, e *Employee) error
	DeleteEmployee(ctx context.Context, id uuid.UUID) error

	// ListEmployees returns the roster ordered by creation.
	ListEmployees(ctx context.Context) ([]*Employee, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string
	Cedula       string
	ContractType ContractType
	Salary       decimal.Decimal
	CreatedDate  time.Time
	DateOfBirth  *time.Time
	Phone        string
	Email        string
	EPS          string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Employee, error) {
	e := &Employee{
		Name:         params.Name,
		Cedula:       params.Cedula,
		ContractType: params.ContractType,
		Salary:       params.Salary,
		CreatedDate:  params.CreatedDate,
		DateOfBirth:  params.DateOfBirth,
		Phone:        params.Phone,
		Email:        params.Email,
		EPS:          params.EPS,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if e.Cedula != "" {
		existing, err := s.repo.GetEmployeeByCedula(ctx, e.Cedula)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("checking cedula: %w", err)
		}

		if existing != nil {
			return nil, ErrDuplicateCedula
		}
	}

	if err := s.repo.CreateEmployee(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Employee, error) {
	return s.repo.GetEmployee(ctx, id)
}

func (s *Service) FindByCedula(ctx context.Context, cedula string) (*Employee, error) {
	return s.repo.GetEmployeeByCedula(ctx, cedula)
}

func (s *Service) List(ctx context.Context) ([]*Employee, error) {
	return s.repo.ListEmployees(ctx)
}

func (s *Service) Update(ctx context.Context, e *Employee) error {
	if err := e.Validate(); err != nil {
		return err
	}

	return s.repo.UpdateEmployee(ctx, e)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEmployee(ctx, id)
}
