package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/MrJamesThe3rd/nomina/internal/advance"
	"github.com/MrJamesThe3rd/nomina/internal/employee"
	"github.com/MrJamesThe3rd/nomina/internal/importer/sheet"
	"github.com/MrJamesThe3rd/nomina/internal/novelty"
)

type Service struct {
	employees EmployeeFinder
	novelties NoveltyCreator
	advances  AdvanceCreator
}

func NewService(employees EmployeeFinder, novelties NoveltyCreator, advances AdvanceCreator) *Service {
	return &Service{
		employees: employees,
		novelties: novelties,
		advances:  advances,
	}
}

// ImportNovelties creates one novelty per usable row of the spreadsheet.
// Unknown employees and rows rejected by validation become warnings.
func (s *Service) ImportNovelties(ctx context.Context, r io.Reader) (*NoveltyResult, error) {
	rows, warnings, err := sheet.ParseNovelties(r)
	if err != nil {
		return nil, err
	}

	res := &NoveltyResult{Warnings: warnings}
	resolver := s.resolver()

	for _, row := range rows {
		emp, w, err := resolver(ctx, row.Row, row.Cedula)
		if err != nil {
			return nil, err
		}

		if w != nil {
			res.Warnings = append(res.Warnings, *w)
			continue
		}

		n, err := s.novelties.Create(ctx, novelty.CreateParams{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Type:         row.Type,
			Date:         row.Date,
			Quantity:     row.Quantity,
			Description:  row.Description,
			Recurring:    row.Recurring,
		})
		if err != nil {
			if isValidation(err) {
				res.Warnings = append(res.Warnings, Warning{
					Row: row.Row, Column: "Valor", Value: row.Quantity.Value().String(), Message: err.Error(),
				})

				continue
			}

			return nil, fmt.Errorf("row %d: creating novelty: %w", row.Row, err)
		}

		res.Created = append(res.Created, n)
	}

	slog.Info("novelties imported", "created", len(res.Created), "warnings", len(res.Warnings))

	return res, nil
}

// ImportAdvances creates every usable advance of the spreadsheet in a
// single batch: either all of them are stored or none is.
func (s *Service) ImportAdvances(ctx context.Context, r io.Reader) (*AdvanceResult, error) {
	rows, warnings, err := sheet.ParseAdvances(r)
	if err != nil {
		return nil, err
	}

	res := &AdvanceResult{Warnings: warnings}
	resolver := s.resolver()
	params := make([]advance.CreateParams, 0, len(rows))

	for _, row := range rows {
		if !row.Amount.IsPositive() {
			res.Warnings = append(res.Warnings, Warning{
				Row: row.Row, Column: "Monto", Value: row.Amount.String(), Message: "el monto debe ser mayor a 0, fila omitida",
			})

			continue
		}

		emp, w, err := resolver(ctx, row.Row, row.Cedula)
		if err != nil {
			return nil, err
		}

		if w != nil {
			res.Warnings = append(res.Warnings, *w)
			continue
		}

		params = append(params, advance.CreateParams{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Amount:       row.Amount,
			Date:         row.Date,
			Month:        row.Month,
			Description:  row.Description,
		})
	}

	if len(params) > 0 {
		created, err := s.advances.CreateBatch(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("creating advances: %w", err)
		}

		res.Created = created
	}

	slog.Info("advances imported", "created", len(res.Created), "warnings", len(res.Warnings))

	return res, nil
}

type resolveFunc func(ctx context.Context, row int, cedula string) (*employee.Employee, *Warning, error)

// resolver looks employees up by cédula, caching answers for the duration of one import.
func (s *Service) resolver() resolveFunc {
	cache := make(map[string]*employee.Employee)

	return func(ctx context.Context, row int, cedula string) (*employee.Employee, *Warning, error) {
		if emp, ok := cache[cedula]; ok {
			if emp == nil {
				return nil, unknownEmployee(row, cedula), nil
			}

			return emp, nil, nil
		}

		emp, err := s.employees.FindByCedula(ctx, cedula)
		if errors.Is(err, employee.ErrNotFound) {
			cache[cedula] = nil
			return nil, unknownEmployee(row, cedula), nil
		}

		if err != nil {
			return nil, nil, fmt.Errorf("row %d: finding employee %s: %w", row, cedula, err)
		}

		cache[cedula] = emp

		return emp, nil, nil
	}
}

func unknownEmployee(row int, cedula string) *Warning {
	return &Warning{Row: row, Column: "Cédula", Value: cedula, Message: "empleado no encontrado, fila omitida"}
}

func isValidation(err error) bool {
	return errors.Is(err, novelty.ErrUnitMismatch) ||
		errors.Is(err, novelty.ErrNegativeQuantity) ||
		errors.Is(err, novelty.ErrUnknownType) ||
		errors.Is(err, novelty.ErrMissingDate)
}
