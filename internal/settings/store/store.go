package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/nomina/internal/settings"
)

// Rates live in a single row keyed by settingsRowID.
const settingsRowID = 1

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetRates(ctx context.Context) (*settings.Rates, error) {
	query := `
		SELECT health, pension, solidarity, transport_allowance, minimum_salary,
			ordinary_hour, overtime_hour, night_surcharge, holiday_day, updated_at
		FROM payroll_settings
		WHERE id = $1
	`

	var r settings.Rates

	err := s.db.QueryRowContext(ctx, query, settingsRowID).Scan(
		&r.Health, &r.Pension, &r.Solidarity, &r.TransportAllowance, &r.MinimumSalary,
		&r.OrdinaryHour, &r.OvertimeHour, &r.NightSurcharge, &r.HolidayDay, &r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settings.ErrNotFound
		}

		return nil, fmt.Errorf("getting rates: %w", err)
	}

	return &r, nil
}

func (s *Store) SaveRates(ctx context.Context, r *settings.Rates) error {
	query := `
		INSERT INTO payroll_settings (id, health, pension, solidarity, transport_allowance, minimum_salary,
			ordinary_hour, overtime_hour, night_surcharge, holiday_day, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (id) DO UPDATE SET
			health = EXCLUDED.health,
			pension = EXCLUDED.pension,
			solidarity = EXCLUDED.solidarity,
			transport_allowance = EXCLUDED.transport_allowance,
			minimum_salary = EXCLUDED.minimum_salary,
			ordinary_hour = EXCLUDED.ordinary_hour,
			overtime_hour = EXCLUDED.overtime_hour,
			night_surcharge = EXCLUDED.night_surcharge,
			holiday_day = EXCLUDED.holiday_day,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query, settingsRowID,
		r.Health,
		r.Pension,
		r.Solidarity,
		r.TransportAllowance,
		r.MinimumSalary,
		r.OrdinaryHour,
		r.OvertimeHour,
		r.NightSurcharge,
		r.HolidayDay,
	).Scan(&r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving rates: %w", err)
	}

	return nil
}
