package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nomina/internal/advance"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAdvance(s scanner) (*advance.Advance, error) {
	var a advance.Advance

	var desc sql.NullString

	if err := s.Scan(
		&a.ID, &a.EmployeeID, &a.EmployeeName, &a.Amount, &a.Date, &a.Month, &desc, &a.CreatedAt,
	); err != nil {
		return nil, err
	}

	a.Description = desc.String

	return &a, nil
}

const selectAdvanceColumns = `
	a.id, a.employee_id, e.name AS employee_name, a.amount, a.date, a.month, a.description, a.created_at
`

const insertAdvance = `
	INSERT INTO advances (employee_id, amount, date, month, description, created_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	RETURNING id, created_at
`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insert(ctx context.Context, db queryRower, a *advance.Advance) error {
	return db.QueryRowContext(ctx, insertAdvance,
		a.EmployeeID,
		a.Amount,
		a.Date,
		a.Month,
		a.Description,
	).Scan(&a.ID, &a.CreatedAt)
}

func (s *Store) CreateAdvance(ctx context.Context, a *advance.Advance) error {
	if err := insert(ctx, s.db, a); err != nil {
		return fmt.Errorf("creating advance: %w", err)
	}

	return nil
}

func (s *Store) GetAdvance(ctx context.Context, id uuid.UUID) (*advance.Advance, error) {
	query := `SELECT ` + selectAdvanceColumns + `
		FROM advances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1 AND a.deleted_at IS NULL`

	a, err := scanAdvance(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, advance.ErrNotFound
		}

		return nil, fmt.Errorf("getting advance: %w", err)
	}

	return a, nil
}

func (s *Store) ListAdvances(ctx context.Context, filter advance.ListFilter) ([]*advance.Advance, error) {
	query := `SELECT ` + selectAdvanceColumns + `
		FROM advances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)

		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Month != nil {
		query += fmt.Sprintf(" AND a.month = $%d", argIdx)

		args = append(args, *filter.Month)
		argIdx++
	}

	query += " ORDER BY a.date ASC, a.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing advances: %w", err)
	}
	defer rows.Close()

	var advances []*advance.Advance

	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning advance: %w", err)
		}

		advances = append(advances, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating advance rows: %w", err)
	}

	return advances, nil
}

func (s *Store) DeleteAdvance(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE advances
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting advance: %w", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return advance.ErrNotFound
	}

	return nil
}

type batchTx struct {
	tx *sql.Tx
}

func (s *Store) BeginBatch(ctx context.Context) (advance.BatchTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning batch tx: %w", err)
	}

	return &batchTx{tx: dbTx}, nil
}

func (btx *batchTx) Commit() error   { return btx.tx.Commit() }
func (btx *batchTx) Rollback() error { return btx.tx.Rollback() }

func (btx *batchTx) CreateAdvances(ctx context.Context, as []*advance.Advance) error {
	for _, a := range as {
		if err := insert(ctx, btx.tx, a); err != nil {
			return fmt.Errorf("creating advance: %w", err)
		}
	}

	return nil
}
