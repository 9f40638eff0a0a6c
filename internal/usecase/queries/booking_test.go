//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/ptr"
	"hotel-booking-engine/internal/usecase/queries"
	queriesmock "hotel-booking-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// GetByID / GetByToken Tests
// =============================================================================

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name      string
		setupMock func(*queriesmock.MockBookingReadStore)
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, id).Return(&queries.BookingView{ID: id}, nil)
			},
		},
		{
			name: "missing row maps to booking not found",
			setupMock: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound))
			},
			wantErr: booking.ErrBookingNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockBookingReadStore(ctrl)
			tc.setupMock(store)
			q := queries.NewBookingQueries(store, queriesmock.NewMockBookingTokenParser(ctrl))

			view, err := q.GetByID(ctx, id)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, view.ID)
		})
	}
}

func TestBookingQueries_GetByToken(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("valid token resolves booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockBookingReadStore(ctrl)
		tokens := queriesmock.NewMockBookingTokenParser(ctrl)
		tokens.EXPECT().ParseBookingToken("tok").Return(id, nil)
		store.EXPECT().FindByID(ctx, id).Return(&queries.BookingView{ID: id}, nil)

		view, err := queries.NewBookingQueries(store, tokens).GetByToken(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, id, view.ID)
	})

	t.Run("bad token is an authorization error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockBookingReadStore(ctrl)
		tokens := queriesmock.NewMockBookingTokenParser(ctrl)
		tokens.EXPECT().ParseBookingToken("expired").Return(uuid.Nil, errors.New("token is expired"))

		view, err := queries.NewBookingQueries(store, tokens).GetByToken(ctx, "expired")

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAuthorization))
		assert.Nil(t, view)
	})
}

// =============================================================================
// List Tests
// =============================================================================

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)

	items := func(n int) []*queries.BookingListItem {
		out := make([]*queries.BookingListItem, n)
		for i := range out {
			out[i] = &queries.BookingListItem{ID: uuid.New(), CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
		}
		return out
	}

	t.Run("first page with more rows returns next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rows := items(3)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindFirstPage(ctx, (*string)(nil), int32(3)).Return(rows, nil)

		got, next, err := queries.NewBookingQueries(store, nil).List(ctx, nil, nil, 2)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)
		ts, lastID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, lastID)
		assert.True(t, rows[1].CreatedAt.Equal(ts))
	})

	t.Run("keyset page without more rows has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(base, lastID)}
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindKeyset(ctx, ptr.Of("confirmed"), gomock.Any(), lastID, int32(queries.DefaultListLimit+1)).Return(items(1), nil)

		got, next, err := queries.NewBookingQueries(store, nil).List(ctx, ptr.Of("confirmed"), cursor, 0)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("status filter is normalized before reaching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindFirstPage(ctx, ptr.Of("pending"), int32(11)).Return(items(1), nil)

		got, _, err := queries.NewBookingQueries(store, nil).List(ctx, ptr.Of(" Pending "), nil, 10)

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, _, err := queries.NewBookingQueries(queriesmock.NewMockBookingReadStore(ctrl), nil).List(ctx, ptr.Of("archived"), nil, 10)

		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, _, err := queries.NewBookingQueries(queriesmock.NewMockBookingReadStore(ctrl), nil).List(ctx, nil, &queries.Cursor{After: "%%%"}, 10)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

// =============================================================================
// Cursor Tests
// =============================================================================

func TestCursor_RoundTripKeepsMicroseconds(t *testing.T) {
	at := time.Date(2025, 11, 20, 9, 0, 0, 123456789, time.UTC)
	id := uuid.New()

	ts, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, at.Truncate(time.Microsecond).UnixMicro(), ts.UnixMicro())
}

func TestValidateLimit(t *testing.T) {
	testCases := []struct {
		in   int
		want int
	}{
		{in: 0, want: queries.DefaultListLimit},
		{in: -5, want: queries.DefaultListLimit},
		{in: 50, want: 50},
		{in: 1000, want: queries.MaxListLimit},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, queries.ValidateLimit(tc.in))
	}
}
