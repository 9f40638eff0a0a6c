//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/customer"
	"hotel-booking-engine/internal/domain/inventory"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/shared"
	sharedmock "hotel-booking-engine/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var deluxeID = uuid.MustParse("6f1c4a52-3d0e-4f7a-9b8e-1a2b3c4d5e6f")

func deluxeType() inventory.RoomType {
	return inventory.RoomType{
		ID:                deluxeID,
		Name:              "Deluxe",
		Code:              "DLX",
		BasePricePerNight: 1_000_000,
		MaxOccupancy:      2,
		TotalRoomCount:    5,
	}
}

func deluxeRoom(number string) inventory.Room {
	return inventory.Room{
		ID:                uuid.New(),
		RoomTypeID:        deluxeID,
		RoomNumber:        number,
		Floor:             1,
		OperationalStatus: inventory.StatusAvailable,
		BasePricePerNight: 1_000_000,
	}
}

func guest() commands.GuestInfo {
	return commands.GuestInfo{
		FullName: "Nguyen Van An",
		Phone:    "+84901234567",
		Email:    "an.nguyen@example.com",
	}
}

func newReservation(f *txFixture) commands.ReservationCommands {
	return commands.NewReservationUseCase(f.uow, f.gateway, f.tokens, f.clock, testPolicy(), f.metrics)
}

// =============================================================================
// CreateOnlineBooking Tests
// =============================================================================

func TestReservation_CreateOnlineBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("allocates lowest room numbers and returns a hold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTxFixture(ctrl)
		events := f.expectEvents()
		customerID := uuid.New()

		f.inventory.EXPECT().LockRoomsOfTypes(gomock.Any(), gomock.Any(), []uuid.UUID{deluxeID}).Return(nil)
		f.inventory.EXPECT().RoomTypesByIDs(gomock.Any(), gomock.Any(), []uuid.UUID{deluxeID}).
			Return([]inventory.RoomType{deluxeType()}, nil)
		f.inventory.EXPECT().FreeRooms(gomock.Any(), gomock.Any(), gomock.Any(), shared.RoomFilter{RoomTypeIDs: []uuid.UUID{deluxeID}}).
			Return([]inventory.Room{deluxeRoom("110"), deluxeRoom("102"), deluxeRoom("9")}, nil)
		f.customers.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, p customer.Profile) (uuid.UUID, error) {
				assert.Equal(t, "an.nguyen@example.com", p.Email)
				return customerID, nil
			})

		var stored *booking.Booking
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				stored = b
				return nil
			})
		f.tokens.EXPECT().IssueBookingToken(gomock.Any(), nov20.Add(30*24*time.Hour)).Return("guest-token", nil)
		f.gateway.EXPECT().PaymentInstruction(gomock.Any(), int64(1_800_000), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ref string, amount int64, _ string, _ uuid.UUID) (commands.PaymentInstruction, error) {
				return commands.PaymentInstruction{Reference: ref, Amount: amount, QRPayload: "qr"}, nil
			})

		res, err := newReservation(f).CreateOnlineBooking(ctx, commands.OnlineBookingRequest{
			Guest:    guest(),
			CheckIn:  dec1,
			CheckOut: dec4,
			Rooms:    []inventory.Request{{RoomTypeID: deluxeID, Quantity: 2}},
		})

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID(), res.BookingID)
		assert.Equal(t, booking.StatusPending, res.Status)
		assert.Equal(t, booking.PaymentUnpaid, res.PaymentStatus)
		assert.Equal(t, int64(6_000_000), res.TotalAmount)
		assert.Equal(t, int64(1_800_000), res.DepositAmount)
		assert.Equal(t, nov20.Add(15*time.Minute), res.PaymentDeadline)
		assert.Equal(t, nov20.Add(10*time.Minute), res.HoldWarningAt)
		assert.Equal(t, "guest-token", res.AccessToken)
		assert.Equal(t, res.PaymentReference, res.Payment.Reference)
		assert.Regexp(t, `^HB[0-9A-F]{10}$`, res.PaymentReference)
		require.Len(t, res.Rooms, 2)
		assert.Equal(t, "9", res.Rooms[0].RoomNumber)
		assert.Equal(t, "102", res.Rooms[1].RoomNumber)
		assert.Equal(t, &customerID, stored.CustomerID())
		assert.Equal(t, []string{commands.EventBookingCreated}, *events)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingsCreated.WithLabelValues("online")))
	})

	t.Run("guest token outlives a stay booked far ahead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTxFixture(ctrl)
		f.expectEvents()

		checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		checkOut := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

		f.inventory.EXPECT().LockRoomsOfTypes(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.inventory.EXPECT().RoomTypesByIDs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]inventory.RoomType{deluxeType()}, nil)
		f.inventory.EXPECT().FreeRooms(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]inventory.Room{deluxeRoom("101")}, nil)
		f.customers.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.tokens.EXPECT().IssueBookingToken(gomock.Any(), checkOut.Add(24*time.Hour)).Return("guest-token", nil)
		f.gateway.EXPECT().PaymentInstruction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.PaymentInstruction{QRPayload: "qr"}, nil)

		res, err := newReservation(f).CreateOnlineBooking(ctx, commands.OnlineBookingRequest{
			Guest:    guest(),
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Rooms:    []inventory.Request{{RoomTypeID: deluxeID, Quantity: 1}},
		})

		require.NoError(t, err)
		assert.Equal(t, "guest-token", res.AccessToken)
	})

	t.Run("not enough free rooms is an availability conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTxFixture(ctrl)

		f.inventory.EXPECT().LockRoomsOfTypes(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.inventory.EXPECT().RoomTypesByIDs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]inventory.RoomType{deluxeType()}, nil)
		f.inventory.EXPECT().FreeRooms(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]inventory.Room{deluxeRoom("101")}, nil)

		res, err := newReservation(f).CreateOnlineBooking(ctx, commands.OnlineBookingRequest{
			Guest:    guest(),
			CheckIn:  dec1,
			CheckOut: dec4,
			Rooms:    []inventory.Request{{RoomTypeID: deluxeID, Quantity: 2}},
		})

		require.Error(t, err)
		assert.Nil(t, res)
		assert.True(t, errs.Is(err, errs.ErrAvailabilityConflict))
		assert.Equal(t, errs.KindAvailabilityConflict, errs.KindOf(err))
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AvailabilityConflicts))
	})

	t.Run("exclusion violation on insert surfaces as conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTxFixture(ctrl)
		f.expectEvents()

		f.inventory.EXPECT().LockRoomsOfTypes(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.inventory.EXPECT().RoomTypesByIDs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]inventory.RoomType{deluxeType()}, nil)
		f.inventory.EXPECT().FreeRooms(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]inventory.Room{deluxeRoom("101")}, nil)
		f.customers.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errs.Mark(errors.New("23P01 booking_rooms_no_overlap"), errs.ErrAvailabilityConflict))

		_, err := newReservation(f).CreateOnlineBooking(ctx, commands.OnlineBookingRequest{
			Guest:    guest(),
			CheckIn:  dec1,
			CheckOut: dec4,
			Rooms:    []inventory.Request{{RoomTypeID: deluxeID, Quantity: 1}},
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAvailabilityConflict))
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AvailabilityConflicts))
	})

	t.Run("unknown room type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTxFixture(ctrl)

		f.inventory.EXPECT().LockRoomsOfTypes(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.inventory.EXPECT().RoomTypesByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.inventory.EXPECT().FreeRooms(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := newReservation(f).CreateOnlineBooking(ctx, commands.OnlineBookingRequest{
			Guest:    guest(),
			CheckIn:  dec1,
			CheckOut: dec4,
			Rooms:    []inventory.Request{{RoomTypeID: uuid.New(), Quantity: 1}},
		})

		assert.ErrorIs(t, err, inventory.ErrRoomTypeNotFound)
	})
}

func TestReservation_CreateOnlineBooking_RejectsBeforeTransaction(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		req     commands.OnlineBookingRequest
		wantErr error
	}{
		{
			name: "check-out not after check-in",
			req: commands.OnlineBookingRequest{
				Guest: guest(), CheckIn: dec4, CheckOut: dec1,
				Rooms: []inventory.Request{{RoomTypeID: deluxeID, Quantity: 1}},
			},
			wantErr: errs.ErrValidation,
		},
		{
			name: "check-in before grace window",
			req: commands.OnlineBookingRequest{
				Guest:    guest(),
				CheckIn:  time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC),
				CheckOut: dec1,
				Rooms:    []inventory.Request{{RoomTypeID: deluxeID, Quantity: 1}},
			},
			wantErr: inventory.ErrCheckInInPast,
		},
		{
			name: "no rooms requested",
			req: commands.OnlineBookingRequest{
				Guest: guest(), CheckIn: dec1, CheckOut: dec4,
			},
			wantErr: inventory.ErrNoRequests,
		},
		{
			name: "zero quantity",
			req: commands.OnlineBookingRequest{
				Guest: guest(), CheckIn: dec1, CheckOut: dec4,
				Rooms: []inventory.Request{{RoomTypeID: deluxeID, Quantity: 0}},
			},
			wantErr: inventory.ErrInvalidQuantity,
		},
		{
			name: "guest without email",
			req: commands.OnlineBookingRequest{
				Guest:    commands.GuestInfo{FullName: "An", Phone: "+84901234567"},
				CheckIn:  dec1,
				CheckOut: dec4,
				Rooms:    []inventory.Request{{RoomTypeID: deluxeID, Quantity: 1}},
			},
			wantErr: customer.ErrInvalidEmail,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no Within expectation: touching the store fails the test
			uow := sharedmock.NewMockUnitOfWork(ctrl)
			f := newTxFixture(gomock.NewController(t))
			uc := commands.NewReservationUseCase(uow, f.gateway, f.tokens, f.clock, testPolicy(), f.metrics)

			res, err := uc.CreateOnlineBooking(ctx, tc.req)

			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errs.Is(err, tc.wantErr))
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	}
}

// =============================================================================
// CreateOfflineBooking Tests
// =============================================================================

func TestReservation_CreateOfflineBooking(t *testing.T) {
	ctx := context.Background()
	staff := commands.StaffActor(uuid.New())

	t.Run("staff picks rooms and may override the price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTxFixture(ctrl)
		events := f.expectEvents()

		r101, r102 := deluxeRoom("101"), deluxeRoom("102")
		discounted := int64(800_000)

		f.inventory.EXPECT().LockRooms(gomock.Any(), gomock.Any(), gomock.Len(2)).
			Return([]inventory.Room{r102, r101}, nil)
		f.inventory.EXPECT().FreeRooms(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]inventory.Room{r101, r102}, nil)
		f.customers.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		var stored *booking.Booking
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				stored = b
				return nil
			})
		f.tokens.EXPECT().IssueBookingToken(gomock.Any(), gomock.Any()).Return("t", nil)
		f.gateway.EXPECT().PaymentInstruction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.PaymentInstruction{}, nil)

		res, err := newReservation(f).CreateOfflineBooking(ctx, commands.OfflineBookingRequest{
			Guest:    guest(),
			CheckIn:  dec1,
			CheckOut: dec4,
			Rooms: []commands.OfflineRoom{
				{RoomID: r101.ID},
				{RoomID: r102.ID, PricePerNight: &discounted},
			},
		}, staff)

		require.NoError(t, err)
		assert.Equal(t, int64(5_400_000), res.TotalAmount)
		assert.Equal(t, booking.ChannelOffline, stored.Channel())
		assert.Equal(t, staff.String(), stored.CreatedBy())
		require.Len(t, res.Rooms, 2)
		assert.Equal(t, "101", res.Rooms[0].RoomNumber)
		assert.Equal(t, int64(800_000), res.Rooms[1].PricePerNight)
		assert.Equal(t, []string{commands.EventBookingCreated}, *events)
	})

	t.Run("room held by another booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTxFixture(ctrl)
		r101 := deluxeRoom("101")

		f.inventory.EXPECT().LockRooms(gomock.Any(), gomock.Any(), gomock.Any()).Return([]inventory.Room{r101}, nil)
		f.inventory.EXPECT().FreeRooms(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := newReservation(f).CreateOfflineBooking(ctx, commands.OfflineBookingRequest{
			Guest: guest(), CheckIn: dec1, CheckOut: dec4,
			Rooms: []commands.OfflineRoom{{RoomID: r101.ID}},
		}, staff)

		assert.ErrorIs(t, err, inventory.ErrRoomUnavailable)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AvailabilityConflicts))
	})

	t.Run("unknown room id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTxFixture(ctrl)

		f.inventory.EXPECT().LockRooms(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := newReservation(f).CreateOfflineBooking(ctx, commands.OfflineBookingRequest{
			Guest: guest(), CheckIn: dec1, CheckOut: dec4,
			Rooms: []commands.OfflineRoom{{RoomID: uuid.New()}},
		}, staff)

		assert.ErrorIs(t, err, inventory.ErrRoomNotFound)
	})

	t.Run("same room twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTxFixture(ctrl)
		id := uuid.New()

		_, err := newReservation(f).CreateOfflineBooking(ctx, commands.OfflineBookingRequest{
			Guest: guest(), CheckIn: dec1, CheckOut: dec4,
			Rooms: []commands.OfflineRoom{{RoomID: id}, {RoomID: id}},
		}, staff)

		assert.ErrorIs(t, err, booking.ErrDuplicateRoom)
	})
}
