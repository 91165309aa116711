package settings

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settings
type Repository interface {
	GetRates(ctx context.Context) (*Rates, error)
	SaveRates(ctx context.Context, r *Rates) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored rates, or the defaults when nothing was saved yet.
func (s *Service) Get(ctx context.Context) (Rates, error) {
	r, err := s.repo.GetRates(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Defaults(), nil
		}

		return Rates{}, fmt.Errorf("getting rates: %w", err)
	}

	return *r, nil
}

func (s *Service) Update(ctx context.Context, r Rates) (Rates, error) {
	if err := r.Validate(); err != nil {
		return Rates{}, err
	}

	if err := s.repo.SaveRates(ctx, &r); err != nil {
		return Rates{}, fmt.Errorf("saving rates: %w", err)
	}

	return r, nil
}

// Reset overwrites the stored rates with the defaults.
func (s *Service) Reset(ctx context.Context) (Rates, error) {
	return s.Update(ctx, Defaults())
}
