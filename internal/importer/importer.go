package importer

import (
	"context"

	"github.com/MrJamesThe3rd/nomina/internal/advance"
	"github.com/MrJamesThe3rd/nomina/internal/employee"
	"github.com/MrJamesThe3rd/nomina/internal/importer/sheet"
	"github.com/MrJamesThe3rd/nomina/internal/novelty"
)

//go:generate mockgen -source=importer.go -destination=importer_mock.go -package=importer
type EmployeeFinder interface {
	FindByCedula(ctx context.Context, cedula string) (*employee.Employee, error)
}

type NoveltyCreator interface {
	Create(ctx context.Context, params novelty.CreateParams) (*novelty.Novelty, error)
}

type AdvanceCreator interface {
	CreateBatch(ctx context.Context, params []advance.CreateParams) ([]*advance.Advance, error)
}

// Warning is re-exported so callers need not import the sheet parser.
type Warning = sheet.Warning

type NoveltyResult struct {
	Created  []*novelty.Novelty
	Warnings []Warning
}

type AdvanceResult struct {
	Created  []*advance.Advance
	Warnings []Warning
}
