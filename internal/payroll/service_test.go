package payroll_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/nomina/internal/advance"
	"github.com/MrJamesThe3rd/nomina/internal/employee"
	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/payroll"
	"github.com/MrJamesThe3rd/nomina/internal/period"
	"github.com/MrJamesThe3rd/nomina/internal/settings"
)

type sources struct {
	employees *payroll.MockEmployeeSource
	novelties *payroll.MockNoveltySource
	advances  *payroll.MockAdvanceSource
	rates     *payroll.MockRateSource
}

func TestService_Run(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(s sources)
		wantErr   bool
		check     func(t *testing.T, run *payroll.Run)
	}

	april := period.MustParse("2024-04")
	ana := newEmployee("Ana", employee.ContractNomina, 1300000)
	boom := errors.New("db down")

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(s sources) {
				s.employees.EXPECT().List(gomock.Any()).Return([]*employee.Employee{ana}, nil)
				s.novelties.EXPECT().ListMonth(gomock.Any(), april).Return([]*novelty.Novelty{
					days(ana, novelty.TypeAbsence, date(2024, 4, 8), 2),
				}, nil)
				s.advances.EXPECT().ListMonth(gomock.Any(), april).Return([]*advance.Advance{
					{ID: uuid.New(), EmployeeID: ana.ID, Amount: decimal.NewFromInt(100000), Month: april},
				}, nil)
				s.rates.EXPECT().Get(gomock.Any()).Return(settings.Defaults(), nil)
			},
			check: func(t *testing.T, run *payroll.Run) {
				assert.Equal(t, april, run.Month)
				require.Len(t, run.Calculations, 1)
				assertAmount(t, "1167466.66", run.Calculations[0].NetSalary)
				assert.Equal(t, 1, run.Summary.Employees)
				assertAmount(t, "100000", run.Summary.Advances)
				assert.False(t, run.CalculatedAt.IsZero())
				assertAmount(t, "162000", run.Rates.TransportAllowance)
			},
		},
		{
			name: "EmptyRoster",
			setupMock: func(s sources) {
				s.employees.EXPECT().List(gomock.Any()).Return(nil, nil)
				s.novelties.EXPECT().ListMonth(gomock.Any(), april).Return(nil, nil)
				s.advances.EXPECT().ListMonth(gomock.Any(), april).Return(nil, nil)
				s.rates.EXPECT().Get(gomock.Any()).Return(settings.Defaults(), nil)
			},
			check: func(t *testing.T, run *payroll.Run) {
				assert.Empty(t, run.Calculations)
				assert.Equal(t, 0, run.Summary.Employees)
			},
		},
		{
			name: "EmployeesError",
			setupMock: func(s sources) {
				s.employees.EXPECT().List(gomock.Any()).Return(nil, boom)
			},
			wantErr: true,
		},
		{
			name: "NoveltiesError",
			setupMock: func(s sources) {
				s.employees.EXPECT().List(gomock.Any()).Return(nil, nil)
				s.novelties.EXPECT().ListMonth(gomock.Any(), april).Return(nil, boom)
			},
			wantErr: true,
		},
		{
			name: "AdvancesError",
			setupMock: func(s sources) {
				s.employees.EXPECT().List(gomock.Any()).Return(nil, nil)
				s.novelties.EXPECT().ListMonth(gomock.Any(), april).Return(nil, nil)
				s.advances.EXPECT().ListMonth(gomock.Any(), april).Return(nil, boom)
			},
			wantErr: true,
		},
		{
			name: "RatesError",
			setupMock: func(s sources) {
				s.employees.EXPECT().List(gomock.Any()).Return(nil, nil)
				s.novelties.EXPECT().ListMonth(gomock.Any(), april).Return(nil, nil)
				s.advances.EXPECT().ListMonth(gomock.Any(), april).Return(nil, nil)
				s.rates.EXPECT().Get(gomock.Any()).Return(settings.Rates{}, boom)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := sources{
				employees: payroll.NewMockEmployeeSource(ctrl),
				novelties: payroll.NewMockNoveltySource(ctrl),
				advances:  payroll.NewMockAdvanceSource(ctrl),
				rates:     payroll.NewMockRateSource(ctrl),
			}
			tt.setupMock(s)

			svc := payroll.NewService(s.employees, s.novelties, s.advances, s.rates)
			run, err := svc.Run(context.Background(), april)

			if tt.wantErr {
				assert.ErrorIs(t, err, boom)
				assert.Nil(t, run)

				return
			}

			require.NoError(t, err)
			tt.check(t, run)
		})
	}
}

func TestService_Run_ReflectsLatestLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	april := period.MustParse("2024-04")
	ana := newEmployee("Ana", employee.ContractOPS, 3000000)

	employees := payroll.NewMockEmployeeSource(ctrl)
	novelties := payroll.NewMockNoveltySource(ctrl)
	advances := payroll.NewMockAdvanceSource(ctrl)
	rates := payroll.NewMockRateSource(ctrl)

	employees.EXPECT().List(gomock.Any()).Return([]*employee.Employee{ana}, nil).Times(2)
	advances.EXPECT().ListMonth(gomock.Any(), april).Return(nil, nil).Times(2)
	rates.EXPECT().Get(gomock.Any()).Return(settings.Defaults(), nil).Times(2)

	gomock.InOrder(
		novelties.EXPECT().ListMonth(gomock.Any(), april).Return(nil, nil),
		novelties.EXPECT().ListMonth(gomock.Any(), april).Return([]*novelty.Novelty{
			days(ana, novelty.TypeAbsence, date(2024, 4, 3), 3),
		}, nil),
	)

	svc := payroll.NewService(employees, novelties, advances, rates)

	first, err := svc.Run(context.Background(), april)
	require.NoError(t, err)
	assertAmount(t, "3000000", first.Calculations[0].GrossSalary)

	second, err := svc.Run(context.Background(), april)
	require.NoError(t, err)
	assertAmount(t, "2700000", second.Calculations[0].GrossSalary)

	// The earlier run is a snapshot and is not rewritten.
	assertAmount(t, "3000000", first.Calculations[0].GrossSalary)
}
