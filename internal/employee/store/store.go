package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nomina/internal/employee"
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

// Expected column order matches selectEmployeeColumns.
func scanEmployee(s scanner) (*employee.Employee, error) {
	var e employee.Employee

	var contract string

	var createdDate, dob sql.NullTime

	var phone, email, eps sql.NullString

	if err := s.Scan(
		&e.ID, &e.Name, &e.Cedula, &contract, &e.Salary, &createdDate, &e.WorkedDays,
		&dob, &phone, &email, &eps,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.ContractType = employee.ContractType(contract)
	e.Phone = phone.String
	e.Email = email.String
	e.EPS = eps.String

	if createdDate.Valid {
		e.CreatedDate = createdDate.Time
	}

	if dob.Valid {
		e.DateOfBirth = &dob.Time
	}

	return &e, nil
}

const selectEmployeeColumns = `
	id, name, cedula, contract_type, salary, created_date, worked_days,
	date_of_birth, phone, email, eps, created_at, updated_at
`

func nullDate(e *employee.Employee) sql.NullTime {
	if e.CreatedDate.IsZero() {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: e.CreatedDate, Valid: true}
}

func (s *Store) CreateEmployee(ctx context.Context, e *employee.Employee) error {
	query := `
		INSERT INTO employees (name, cedula, contract_type, salary, created_date, worked_days,
			date_of_birth, phone, email, eps, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Name,
		e.Cedula,
		e.ContractType,
		e.Salary,
		nullDate(e),
		e.WorkedDays,
		e.DateOfBirth,
		e.Phone,
		e.Email,
		e.EPS,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating employee: %w", err)
	}

	return nil
}

func (s *Store) GetEmployee(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + `
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL`

	e, err := scanEmployee(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employee.ErrNotFound
		}

		return nil, fmt.Errorf("getting employee: %w", err)
	}

	return e, nil
}

func (s *Store) GetEmployeeByCedula(ctx context.Context, cedula string) (*employee.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + `
		FROM employees
		WHERE cedula = $1 AND deleted_at IS NULL`

	e, err := scanEmployee(s.db.QueryRowContext(ctx, query, cedula))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employee.ErrNotFound
		}

		return nil, fmt.Errorf("getting employee by cedula: %w", err)
	}

	return e, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]*employee.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + `
		FROM employees
		WHERE deleted_at IS NULL
		ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*employee.Employee

	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}

		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employee rows: %w", err)
	}

	return employees, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, e *employee.Employee) error {
	query := `
		UPDATE employees
		SET name = $1, cedula = $2, contract_type = $3, salary = $4, created_date = $5,
			worked_days = $6, date_of_birth = $7, phone = $8, email = $9, eps = $10, updated_at = NOW()
		WHERE id = $11 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query,
		e.Name,
		e.Cedula,
		e.ContractType,
		e.Salary,
		nullDate(e),
		e.WorkedDays,
		e.DateOfBirth,
		e.Phone,
		e.Email,
		e.EPS,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return employee.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE employees
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return employee.ErrNotFound
	}

	return nil
}
