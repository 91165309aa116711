package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/period"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanNovelty expects the columns of selectNoveltyColumns.
func scanNovelty(s scanner) (*novelty.Novelty, error) {
	var n novelty.Novelty

	var typeStr, unitStr string

	var value decimal.Decimal

	var desc sql.NullString

	if err := s.Scan(
		&n.ID, &n.EmployeeID, &n.EmployeeName, &typeStr, &n.Date, &unitStr, &value, &desc,
		&n.Recurring, &n.StartMonth, &n.AutoApplied, &n.SourceID,
		&n.CreatedAt, &n.UpdatedAt,
	); err != nil {
		return nil, err
	}

	q, err := novelty.NewQuantity(novelty.Unit(unitStr), value)
	if err != nil {
		return nil, err
	}

	n.Type = novelty.Type(typeStr)
	n.Quantity = q
	n.Description = desc.String

	return &n, nil
}

const selectNoveltyColumns = `
	n.id, n.employee_id, e.name AS employee_name, n.type, n.date, n.unit, n.quantity, n.description,
	n.recurring, n.start_month, n.auto_applied, n.source_id, n.created_at, n.updated_at
`

const fromNovelties = `
	FROM novelties n
	JOIN employees e ON e.id = n.employee_id
`

const insertNovelty = `
	INSERT INTO novelties (employee_id, type, date, unit, quantity, description,
		recurring, start_month, auto_applied, source_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	RETURNING id, created_at, updated_at
`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insert(ctx context.Context, db queryRower, n *novelty.Novelty) error {
	return db.QueryRowContext(ctx, insertNovelty,
		n.EmployeeID,
		n.Type,
		n.Date,
		n.Quantity.Unit(),
		n.Quantity.Value(),
		n.Description,
		n.Recurring,
		n.StartMonth,
		n.AutoApplied,
		n.SourceID,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

func (s *Store) CreateNovelty(ctx context.Context, n *novelty.Novelty) error {
	if err := insert(ctx, s.db, n); err != nil {
		return fmt.Errorf("creating novelty: %w", err)
	}

	return nil
}

func (s *Store) GetNovelty(ctx context.Context, id uuid.UUID) (*novelty.Novelty, error) {
	query := `SELECT ` + selectNoveltyColumns + fromNovelties + `
		WHERE n.id = $1 AND n.deleted_at IS NULL`

	n, err := scanNovelty(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, novelty.ErrNotFound
		}

		return nil, fmt.Errorf("getting novelty: %w", err)
	}

	return n, nil
}

func (s *Store) ListNovelties(ctx context.Context, filter novelty.ListFilter) ([]*novelty.Novelty, error) {
	query := `SELECT ` + selectNoveltyColumns + fromNovelties + `
		WHERE n.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND n.employee_id = $%d", argIdx)

		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Month != nil {
		query += fmt.Sprintf(" AND n.date >= $%d AND n.date <= $%d", argIdx, argIdx+1)

		args = append(args, filter.Month.FirstDay(), filter.Month.LastDay())
		argIdx += 2
	}

	query += " ORDER BY n.date ASC, n.created_at ASC"

	return queryNovelties(ctx, s.db, query, args...)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryNovelties(ctx context.Context, db querier, query string, args ...any) ([]*novelty.Novelty, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing novelties: %w", err)
	}
	defer rows.Close()

	var novelties []*novelty.Novelty

	for rows.Next() {
		n, err := scanNovelty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning novelty: %w", err)
		}

		novelties = append(novelties, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating novelty rows: %w", err)
	}

	return novelties, nil
}

func (s *Store) UpdateNovelty(ctx context.Context, n *novelty.Novelty) error {
	query := `
		UPDATE novelties
		SET type = $1, date = $2, unit = $3, quantity = $4, description = $5,
			recurring = $6, start_month = $7, updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query,
		n.Type,
		n.Date,
		n.Quantity.Unit(),
		n.Quantity.Value(),
		n.Description,
		n.Recurring,
		n.StartMonth,
		n.ID,
	)
	if err != nil {
		return fmt.Errorf("updating novelty: %w", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return novelty.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteNovelty(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE novelties
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting novelty: %w", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return novelty.ErrNotFound
	}

	return nil
}

func reconcileLockKey(month period.Month) int64 {
	h := fnv.New64a()
	h.Write([]byte("novelty-reconcile"))
	h.Write([]byte{0})
	h.Write([]byte(month.String()))

	return int64(h.Sum64())
}

type reconcileTx struct {
	tx *sql.Tx
}

func (s *Store) BeginReconcile(ctx context.Context, month period.Month) (novelty.ReconcileTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning reconcile tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", reconcileLockKey(month)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring reconcile lock: %w", err)
	}

	return &reconcileTx{tx: dbTx}, nil
}

func (rtx *reconcileTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *reconcileTx) Rollback() error { return rtx.tx.Rollback() }

func (rtx *reconcileTx) ListCandidates(ctx context.Context, month period.Month) ([]*novelty.Novelty, error) {
	query := `SELECT ` + selectNoveltyColumns + fromNovelties + `
		WHERE n.deleted_at IS NULL AND e.deleted_at IS NULL
			AND ((n.recurring AND n.start_month <= $1) OR (n.date >= $2 AND n.date <= $3))
		ORDER BY n.created_at ASC`

	return queryNovelties(ctx, rtx.tx, query, month.String(), month.FirstDay(), month.LastDay())
}

func (rtx *reconcileTx) CreateNovelties(ctx context.Context, ns []*novelty.Novelty) error {
	for _, n := range ns {
		if err := insert(ctx, rtx.tx, n); err != nil {
			return fmt.Errorf("creating novelty: %w", err)
		}
	}

	return nil
}
