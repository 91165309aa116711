package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/nomina/internal/settings"
)

func TestService_Get(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *settings.MockRepository)
		want      settings.Rates
		wantErr   bool
	}

	stored := settings.Defaults()
	stored.Health = decimal.NewFromInt(5)

	tests := []testCase{
		{
			name: "Stored",
			setupMock: func(m *settings.MockRepository) {
				m.EXPECT().GetRates(gomock.Any()).Return(&stored, nil)
			},
			want: stored,
		},
		{
			name: "FallsBackToDefaults",
			setupMock: func(m *settings.MockRepository) {
				m.EXPECT().GetRates(gomock.Any()).Return(nil, settings.ErrNotFound)
			},
			want: settings.Defaults(),
		},
		{
			name: "RepoError",
			setupMock: func(m *settings.MockRepository) {
				m.EXPECT().GetRates(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := settings.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := settings.NewService(repo).Get(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Health.Equal(got.Health))
			assert.True(t, tt.want.TransportAllowance.Equal(got.TransportAllowance))
		})
	}
}

func TestService_Update(t *testing.T) {
	type testCase struct {
		name      string
		mutate    func(r *settings.Rates)
		setupMock func(m *settings.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			mutate: func(r *settings.Rates) { r.OrdinaryHour = decimal.NewFromInt(6200) },
			setupMock: func(m *settings.MockRepository) {
				m.EXPECT().
					SaveRates(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *settings.Rates) error {
						assert.True(t, r.OrdinaryHour.Equal(decimal.NewFromInt(6200)))
						return nil
					})
			},
		},
		{
			name:    "PercentageAboveHundred",
			mutate:  func(r *settings.Rates) { r.Health = decimal.NewFromInt(101) },
			wantErr: settings.ErrInvalidRate,
		},
		{
			name:    "NegativeAllowance",
			mutate:  func(r *settings.Rates) { r.TransportAllowance = decimal.NewFromInt(-1) },
			wantErr: settings.ErrInvalidRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := settings.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			r := settings.Defaults()
			tt.mutate(&r)

			_, err := settings.NewService(repo).Update(context.Background(), r)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settings.NewMockRepository(ctrl)
	repo.EXPECT().
		SaveRates(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *settings.Rates) error {
			assert.True(t, r.Health.Equal(decimal.NewFromInt(4)))
			assert.True(t, r.Pension.Equal(decimal.NewFromInt(4)))
			assert.True(t, r.Solidarity.Equal(decimal.NewFromInt(1)))
			return nil
		})

	got, err := settings.NewService(repo).Reset(context.Background())
	require.NoError(t, err)
	assert.True(t, got.MinimumSalary.Equal(decimal.NewFromInt(1300000)))
}
