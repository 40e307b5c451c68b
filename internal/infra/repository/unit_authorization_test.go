//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"resource-booking-api/internal/domain/unit"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/repository"
	"resource-booking-api/internal/infra/sqlq"
	repositorymock "resource-booking-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUnitAuthorizationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockUnitAuthorizationQueries, sqlq.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: authorization created",
			setupMock: func(mock *repositorymock.MockUnitAuthorizationQueries, tx sqlq.DBTX) {
				mock.EXPECT().CreateUnitAuthorization(ctx, tx, gomock.Any()).Return(nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockUnitAuthorizationQueries, tx sqlq.DBTX) {
				mock.EXPECT().CreateUnitAuthorization(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate authorization",
			setupMock: func(mock *repositorymock.MockUnitAuthorizationQueries, tx sqlq.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateUnitAuthorization(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: unknown unit or user",
			setupMock: func(mock *repositorymock.MockUnitAuthorizationQueries, tx sqlq.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateUnitAuthorization(ctx, tx, gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockUnitAuthorizationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUnitAuthorizationRepository(mockQueries)

			auth, err := unit.NewUnitAuthorization("tprek:41683", uuid.New(), unit.LevelManager)
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Create(ctx, mockDB, auth)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestUnitAuthorizationRepository_LevelsFor(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		setupMock      func(*repositorymock.MockUnitAuthorizationQueries, sqlq.DBTX)
		expectedLevels []unit.AuthorizationLevel
		expectedError  bool
	}{
		{
			name: "success: every stored level parsed",
			setupMock: func(mock *repositorymock.MockUnitAuthorizationQueries, tx sqlq.DBTX) {
				mock.EXPECT().GetAuthorizationLevels(ctx, tx, gomock.Any()).
					Return([]string{"viewer", "manager"}, nil)
			},
			expectedLevels: []unit.AuthorizationLevel{unit.LevelViewer, unit.LevelManager},
		},
		{
			name: "success: no grants yields empty set",
			setupMock: func(mock *repositorymock.MockUnitAuthorizationQueries, tx sqlq.DBTX) {
				mock.EXPECT().GetAuthorizationLevels(ctx, tx, gomock.Any()).Return(nil, nil)
			},
			expectedLevels: []unit.AuthorizationLevel{},
		},
		{
			name: "error: unknown level in store",
			setupMock: func(mock *repositorymock.MockUnitAuthorizationQueries, tx sqlq.DBTX) {
				mock.EXPECT().GetAuthorizationLevels(ctx, tx, gomock.Any()).
					Return([]string{"owner"}, nil)
			},
			expectedError: true,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockUnitAuthorizationQueries, tx sqlq.DBTX) {
				mock.EXPECT().GetAuthorizationLevels(ctx, tx, gomock.Any()).
					Return(nil, errors.New("database connection error"))
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockUnitAuthorizationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUnitAuthorizationRepository(mockQueries)

			tc.setupMock(mockQueries, mockDB)

			levels, actualError := repo.LevelsFor(ctx, mockDB, "tprek:41683", uuid.New())

			if tc.expectedError {
				require.Error(t, actualError)
			} else {
				require.NoError(t, actualError)
				assert.ElementsMatch(t, tc.expectedLevels, levels)
			}
		})
	}
}

// mockDBTX is a placeholder DBTX handed to repositories under test; the query
// mocks intercept every call before it would reach the database.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	panic("mockDBTX.Exec was called unexpectedly. Use query mock instead.")
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("mockDBTX.Query was called unexpectedly. Use query mock instead.")
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use query mock instead.")
}
