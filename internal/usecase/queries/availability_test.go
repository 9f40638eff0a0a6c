//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/inventory"
	"hotel-booking-engine/internal/domain/stay"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/internal/usecase/shared"
	queriesmock "hotel-booking-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	dec1  = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	dec4  = time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC)
	nov20 = time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)
)

func testPolicy() shared.Policy {
	return shared.Policy{
		PaymentWindow: 15 * time.Minute,
		HoldWarning:   10 * time.Minute,
		CheckInGrace:  24 * time.Hour,
		GuestTokenTTL: 30 * 24 * time.Hour,
		Location:      time.UTC,
	}
}

func deluxe(total int) inventory.RoomType {
	return inventory.RoomType{
		ID:                uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name:              "Deluxe",
		Code:              "DLX",
		BasePricePerNight: 1_000_000,
		MaxOccupancy:      2,
		TotalRoomCount:    total,
	}
}

// =============================================================================
// CheckAvailability Tests
// =============================================================================

func TestAvailabilityQueries_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	rt := deluxe(5)

	testCases := []struct {
		name          string
		reqs          []inventory.Request
		checkIn       time.Time
		checkOut      time.Time
		setupMock     func(*queriesmock.MockAvailabilityReadStore)
		wantCount     int
		wantAvailable bool
		wantErr       error
	}{
		{
			name:     "two of five booked leaves three",
			reqs:     []inventory.Request{{RoomTypeID: rt.ID, Quantity: 2}},
			checkIn:  dec1,
			checkOut: dec4,
			setupMock: func(m *queriesmock.MockAvailabilityReadStore) {
				m.EXPECT().RoomTypesByIDs(ctx, []uuid.UUID{rt.ID}).Return([]inventory.RoomType{rt}, nil)
				m.EXPECT().CountUnavailable(ctx, []uuid.UUID{rt.ID}, gomock.Any()).Return(map[uuid.UUID]int{rt.ID: 2}, nil)
			},
			wantCount:     3,
			wantAvailable: true,
		},
		{
			name:     "quantity above remaining is not available",
			reqs:     []inventory.Request{{RoomTypeID: rt.ID, Quantity: 4}},
			checkIn:  dec1,
			checkOut: dec4,
			setupMock: func(m *queriesmock.MockAvailabilityReadStore) {
				m.EXPECT().RoomTypesByIDs(ctx, []uuid.UUID{rt.ID}).Return([]inventory.RoomType{rt}, nil)
				m.EXPECT().CountUnavailable(ctx, []uuid.UUID{rt.ID}, gomock.Any()).Return(map[uuid.UUID]int{rt.ID: 2}, nil)
			},
			wantCount:     3,
			wantAvailable: false,
		},
		{
			name:     "more unavailable than total clamps to zero",
			reqs:     []inventory.Request{{RoomTypeID: rt.ID, Quantity: 1}},
			checkIn:  dec1,
			checkOut: dec4,
			setupMock: func(m *queriesmock.MockAvailabilityReadStore) {
				m.EXPECT().RoomTypesByIDs(ctx, gomock.Any()).Return([]inventory.RoomType{rt}, nil)
				m.EXPECT().CountUnavailable(ctx, gomock.Any(), gomock.Any()).Return(map[uuid.UUID]int{rt.ID: 7}, nil)
			},
			wantCount:     0,
			wantAvailable: false,
		},
		{
			name:      "check-out not after check-in",
			reqs:      []inventory.Request{{RoomTypeID: rt.ID, Quantity: 1}},
			checkIn:   dec4,
			checkOut:  dec4,
			setupMock: func(m *queriesmock.MockAvailabilityReadStore) {},
			wantErr:   stay.ErrInvalidPeriod,
		},
		{
			name:      "zero quantity",
			reqs:      []inventory.Request{{RoomTypeID: rt.ID, Quantity: 0}},
			checkIn:   dec1,
			checkOut:  dec4,
			setupMock: func(m *queriesmock.MockAvailabilityReadStore) {},
			wantErr:   inventory.ErrInvalidQuantity,
		},
		{
			name:      "empty request list",
			reqs:      nil,
			checkIn:   dec1,
			checkOut:  dec4,
			setupMock: func(m *queriesmock.MockAvailabilityReadStore) {},
			wantErr:   inventory.ErrNoRequests,
		},
		{
			name:      "check-in older than grace",
			reqs:      []inventory.Request{{RoomTypeID: rt.ID, Quantity: 1}},
			checkIn:   time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC),
			checkOut:  time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC),
			setupMock: func(m *queriesmock.MockAvailabilityReadStore) {},
			wantErr:   inventory.ErrCheckInInPast,
		},
		{
			name:     "unknown room type",
			reqs:     []inventory.Request{{RoomTypeID: uuid.New(), Quantity: 1}},
			checkIn:  dec1,
			checkOut: dec4,
			setupMock: func(m *queriesmock.MockAvailabilityReadStore) {
				m.EXPECT().RoomTypesByIDs(ctx, gomock.Any()).Return([]inventory.RoomType{}, nil)
				m.EXPECT().CountUnavailable(ctx, gomock.Any(), gomock.Any()).Return(map[uuid.UUID]int{}, nil)
			},
			wantErr: inventory.ErrRoomTypeNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockAvailabilityReadStore(ctrl)
			tc.setupMock(store)
			q := queries.NewAvailabilityQueries(store, clock.NewMockClock(nov20), testPolicy())

			got, err := q.CheckAvailability(ctx, tc.reqs, tc.checkIn, tc.checkOut)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tc.wantCount, got[0].AvailableCount)
			assert.Equal(t, tc.wantAvailable, got[0].IsAvailable)
			assert.Equal(t, rt.BasePricePerNight, got[0].BasePricePerNight)
		})
	}
}

func TestAvailabilityQueries_CheckAvailability_StoreError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := deluxe(5)
	boom := errors.New("pool exhausted")
	store := queriesmock.NewMockAvailabilityReadStore(ctrl)
	store.EXPECT().RoomTypesByIDs(ctx, gomock.Any()).Return([]inventory.RoomType{rt}, nil)
	store.EXPECT().CountUnavailable(ctx, gomock.Any(), gomock.Any()).Return(nil, boom)

	q := queries.NewAvailabilityQueries(store, clock.NewMockClock(nov20), testPolicy())
	_, err := q.CheckAvailability(ctx, []inventory.Request{{RoomTypeID: rt.ID, Quantity: 1}}, dec1, dec4)

	assert.ErrorIs(t, err, boom)
}

// =============================================================================
// ListAvailableRooms Tests
// =============================================================================

func TestAvailabilityQueries_ListAvailableRooms(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	floor := 2
	filters := queries.RoomFilters{Floor: &floor}
	store := queriesmock.NewMockAvailabilityReadStore(ctrl)
	store.EXPECT().ListAvailableRooms(ctx, gomock.Any(), filters).
		DoAndReturn(func(_ context.Context, p stay.Period, _ queries.RoomFilters) ([]*queries.AvailableRoomView, error) {
			assert.Equal(t, 3, p.Nights())
			return []*queries.AvailableRoomView{{RoomNumber: "201", Floor: 2}}, nil
		})

	q := queries.NewAvailabilityQueries(store, clock.NewMockClock(nov20), testPolicy())
	got, err := q.ListAvailableRooms(ctx, dec1, dec4, filters)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "201", got[0].RoomNumber)
}
