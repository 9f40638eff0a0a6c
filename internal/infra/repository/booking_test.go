//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/repository"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/tests/common/builder"
	repositorymock "hotel-booking-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		setupMock      func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectedError  bool
		expectKind     infra.RepositoryErrorKind
		expectConflict bool
	}{
		{
			name: "success: header and every room line inserted",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().CreateBookingRoom(ctx, tx, gomock.Any()).Return(nil).Times(2)
			},
		},
		{
			name: "error: overlapping room line violates exclusion constraint",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				overlap := &pgconn.PgError{Code: "23P01", ConstraintName: "booking_rooms_no_overlap"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().CreateBookingRoom(ctx, tx, gomock.Any()).Return(overlap)
			},
			expectedError:  true,
			expectKind:     infra.KindExclusionViolated,
			expectConflict: true,
		},
		{
			name: "error: duplicate payment reference",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
				bb.Prices = []int64{1_000_000, 800_000}
			}).BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Create(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Equal(t, tc.expectConflict, errs.Is(actualError, errs.ErrAvailabilityConflict))
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// FindForUpdate Tests
// =============================================================================

func TestBookingRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: aggregate rebuilt from rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		row, lines, err := builder.NewBookingBuilder().BuildInfra()
		require.NoError(t, err)
		row.PaidAmount = 900_000
		row.PaymentStatus = booking.PaymentDepositPaid.String()
		row.Status = booking.StatusConfirmed.String()

		mockQueries.EXPECT().GetBookingByIDForUpdate(ctx, mockDB, row.ID).Return(row, nil)
		mockQueries.EXPECT().ListBookingRooms(ctx, mockDB, row.ID).Return(lines, nil)

		got, err := repo.FindForUpdate(ctx, mockDB, row.ID)
		require.NoError(t, err)

		assert.Equal(t, row.ID, got.ID())
		assert.Equal(t, booking.StatusConfirmed, got.Status())
		assert.Equal(t, booking.PaymentDepositPaid, got.PaymentStatus())
		assert.Equal(t, int64(3_000_000), got.TotalAmount())
		assert.Equal(t, int64(900_000), got.PaidAmount())
		assert.Equal(t, 3, got.Period().Nights())
		require.Len(t, got.Rooms(), 1)
		assert.Equal(t, lines[0].RoomID, got.Rooms()[0].RoomID())
		assert.Empty(t, got.PendingHistory())
	})

	t.Run("error: booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().GetBookingByIDForUpdate(ctx, mockDB, id).Return(sqlc.Bookings{}, pgx.ErrNoRows)

		got, err := repo.FindForUpdate(ctx, mockDB, id)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

// =============================================================================
// UpdateState / AddPaidAmount Tests
// =============================================================================

func TestBookingRepository_UpdateState(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: row updated", affected: 1},
		{name: "error: row missing", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("connection reset"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().UpdateBookingState(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingStateParams) (int64, error) {
					assert.Equal(t, b.ID(), arg.ID)
					assert.Equal(t, "pending", arg.Status)
					assert.False(t, arg.CancelledAt.Valid)
					return tc.affected, tc.queryErr
				})

			err = repo.UpdateState(ctx, mockDB, b)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingRepository_AddPaidAmount(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries, mockDB)

	id := uuid.New()
	at := time.Date(2025, 11, 20, 9, 5, 0, 0, time.UTC)

	mockQueries.EXPECT().AddBookingPaidAmount(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.AddBookingPaidAmountParams) (int64, error) {
			assert.Equal(t, id, arg.ID)
			assert.Equal(t, int64(-200_000), arg.Delta)
			assert.True(t, arg.UpdatedAt.Time.Equal(at))
			return 1_000_000, nil
		})

	paid, err := repo.AddPaidAmount(ctx, mockDB, id, -200_000, at)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), paid)
}

// =============================================================================
// Helper Functions
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
