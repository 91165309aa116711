package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/nomina/internal/advance"
	"github.com/MrJamesThe3rd/nomina/internal/employee"
	"github.com/MrJamesThe3rd/nomina/internal/importer"
	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/period"
)

type mocks struct {
	employees *importer.MockEmployeeFinder
	novelties *importer.MockNoveltyCreator
	advances  *importer.MockAdvanceCreator
}

func newService(t *testing.T) (*importer.Service, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		employees: importer.NewMockEmployeeFinder(ctrl),
		novelties: importer.NewMockNoveltyCreator(ctrl),
		advances:  importer.NewMockAdvanceCreator(ctrl),
	}

	return importer.NewService(m.employees, m.novelties, m.advances), m
}

func TestService_ImportNovelties(t *testing.T) {
	ana := &employee.Employee{ID: uuid.New(), Name: "Ana Gómez", Cedula: "1020304050"}

	type testCase struct {
		name         string
		csv          string
		setupMock    func(m mocks)
		wantCreated  int
		wantWarnings int
		wantErr      bool
	}

	tests := []testCase{
		{
			name: "Success",
			csv: "Cédula;Tipo;Fecha;Valor\n" +
				"1020304050;Ausencia;2024-04-08;2\n" +
				"1020304050;Horas extra fijas;2024-04-10;4\n",
			setupMock: func(m mocks) {
				// Cached after the first lookup.
				m.employees.EXPECT().FindByCedula(gomock.Any(), "1020304050").Return(ana, nil).Times(1)
				m.novelties.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p novelty.CreateParams) (*novelty.Novelty, error) {
						assert.Equal(t, ana.ID, p.EmployeeID)
						assert.Equal(t, "Ana Gómez", p.EmployeeName)

						return &novelty.Novelty{ID: uuid.New(), EmployeeID: p.EmployeeID, Type: p.Type}, nil
					}).
					Times(2)
			},
			wantCreated: 2,
		},
		{
			name: "UnknownEmployeeIsWarning",
			csv: "Cédula;Tipo;Fecha;Valor\n" +
				"999;Ausencia;2024-04-08;2\n" +
				"999;Ausencia;2024-04-09;1\n",
			setupMock: func(m mocks) {
				m.employees.EXPECT().FindByCedula(gomock.Any(), "999").Return(nil, employee.ErrNotFound).Times(1)
			},
			wantWarnings: 2,
		},
		{
			name: "ValidationErrorIsWarning",
			csv:  "Cédula;Tipo;Fecha;Valor\n1020304050;Ausencia;2024-04-08;-2\n",
			setupMock: func(m mocks) {
				m.employees.EXPECT().FindByCedula(gomock.Any(), "1020304050").Return(ana, nil)
				m.novelties.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, novelty.ErrNegativeQuantity)
			},
			wantWarnings: 1,
		},
		{
			name: "LookupFailure",
			csv:  "Cédula;Tipo;Fecha;Valor\n1020304050;Ausencia;2024-04-08;2\n",
			setupMock: func(m mocks) {
				m.employees.EXPECT().FindByCedula(gomock.Any(), "1020304050").Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name:    "UnknownLayout",
			csv:     "a;b\n1;2\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			res, err := svc.ImportNovelties(context.Background(), strings.NewReader(tt.csv))

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, res)

				return
			}

			require.NoError(t, err)
			assert.Len(t, res.Created, tt.wantCreated)
			assert.Len(t, res.Warnings, tt.wantWarnings)
		})
	}
}

func TestService_ImportAdvances(t *testing.T) {
	ana := &employee.Employee{ID: uuid.New(), Name: "Ana Gómez", Cedula: "1020304050"}

	svc, m := newService(t)

	m.employees.EXPECT().FindByCedula(gomock.Any(), "1020304050").Return(ana, nil)
	m.employees.EXPECT().FindByCedula(gomock.Any(), "555").Return(nil, employee.ErrNotFound)
	m.advances.EXPECT().
		CreateBatch(gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, params []advance.CreateParams) ([]*advance.Advance, error) {
			p := params[0]
			assert.Equal(t, ana.ID, p.EmployeeID)
			assert.True(t, p.Amount.Equal(decimal.NewFromInt(200000)))
			assert.Equal(t, period.MustParse("2024-04"), p.Month)

			return []*advance.Advance{{ID: uuid.New(), EmployeeID: p.EmployeeID, Amount: p.Amount, Month: p.Month}}, nil
		})

	csv := "Cédula;Monto;Fecha;Mes\n" +
		"1020304050;200.000;2024-03-28;2024-04\n" +
		"555;100.000;2024-03-28;2024-04\n" +
		"1020304050;0;2024-03-29;2024-04\n"

	res, err := svc.ImportAdvances(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, res.Created, 1)
	require.Len(t, res.Warnings, 2)
	assert.Equal(t, "Cédula", res.Warnings[0].Column)
	assert.Equal(t, "Monto", res.Warnings[1].Column)
}

func TestService_ImportAdvances_NothingToCreate(t *testing.T) {
	svc, _ := newService(t)

	res, err := svc.ImportAdvances(context.Background(), strings.NewReader("Cédula;Monto;Fecha\n1;abc;2024-04-01\n"))
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	// One for the malformed number, one for the resulting zero amount.
	assert.Len(t, res.Warnings, 2)
}

func TestService_ImportAdvances_BatchFails(t *testing.T) {
	ana := &employee.Employee{ID: uuid.New(), Cedula: "1"}
	svc, m := newService(t)

	m.employees.EXPECT().FindByCedula(gomock.Any(), "1").Return(ana, nil)
	m.advances.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil, errors.New("tx aborted"))

	_, err := svc.ImportAdvances(context.Background(), strings.NewReader("Cédula;Monto;Fecha\n1;5000;2024-04-01\n"))
	assert.Error(t, err)
}
