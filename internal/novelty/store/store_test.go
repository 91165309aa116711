package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/novelty/store"
)

func TestStore_DeleteNovelty(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock, id uuid.UUID)
		wantErr   error
		anyErr    bool
	}

	tests := []testCase{
		{
			name: "Deleted",
			setupMock: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectExec("UPDATE novelties").WithArgs(id.String()).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "UnknownID",
			setupMock: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectExec("UPDATE novelties").WithArgs(id.String()).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: novelty.ErrNotFound,
		},
		{
			name: "ExecFails",
			setupMock: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectExec("UPDATE novelties").WithArgs(id.String()).WillReturnError(errors.New("connection reset"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)

			defer db.Close()

			id := uuid.New()
			tt.setupMock(mock, id)

			err = store.New(db).DeleteNovelty(context.Background(), id)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, novelty.ErrNotFound)
			default:
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
