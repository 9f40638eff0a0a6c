//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/tests/common/dbtest"
	"hotel-booking-engine/tests/common/httptest"
	"hotel-booking-engine/tests/e2e"
	"hotel-booking-engine/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// =============================================================================
// TestAvailability - counting free rooms against live bookings
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("two of five rooms held for overlapping nights leaves three", func() {
		t := s.T()
		rt := seedDeluxe(t, &s.SharedSuite, 5)
		createOnline(t, &s.SharedSuite, rt.ID, 2, day(&s.SharedSuite, 1), day(&s.SharedSuite, 3))

		got := checkAvailability(t, &s.SharedSuite, rt.ID, 3, day(&s.SharedSuite, 2), day(&s.SharedSuite, 4))

		expected := &response.RoomTypeAvailabilityResponse{
			RoomTypeID:        rt.ID.String(),
			Name:              "DLX",
			Code:              "DLX",
			Quantity:          3,
			AvailableCount:    3,
			IsAvailable:       true,
			BasePricePerNight: deluxePrice,
		}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("availability mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("asking for more rooms than are free is reported, not an error", func() {
		t := s.T()
		rt := seedDeluxe(t, &s.SharedSuite, 5)
		createOnline(t, &s.SharedSuite, rt.ID, 2, day(&s.SharedSuite, 1), day(&s.SharedSuite, 3))

		got := checkAvailability(t, &s.SharedSuite, rt.ID, 4, day(&s.SharedSuite, 2), day(&s.SharedSuite, 4))

		assert.Equal(t, 3, got.AvailableCount)
		assert.False(t, got.IsAvailable)
	})

	s.Run("back-to-back stays do not collide", func() {
		t := s.T()
		rt := seedDeluxe(t, &s.SharedSuite, 1)
		createOnline(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 3))

		got := checkAvailability(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 3), day(&s.SharedSuite, 5))

		assert.True(t, got.IsAvailable)
	})

	s.Run("maintenance blocks and dirty rooms are excluded", func() {
		t := s.T()
		rt := seedDeluxe(t, &s.SharedSuite, 3)
		dbtest.BlockRoom(t, s.DB, rt.RoomIDs[0], day(&s.SharedSuite, 2), day(&s.SharedSuite, 3))
		dbtest.SetRoomStatus(t, s.DB, rt.RoomIDs[1], "out_of_service")

		got := checkAvailability(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 4))

		assert.Equal(t, 1, got.AvailableCount)
	})

	s.Run("reversed dates are a validation error", func() {
		t := s.T()
		rt := seedDeluxe(t, &s.SharedSuite, 1)

		w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, availabilityURL,
			availabilityBody(rt.ID, 1, day(&s.SharedSuite, 3), day(&s.SharedSuite, 1)), "")

		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}

// =============================================================================
// TestCreateOnlineBooking - guest reservation with a payment hold
// =============================================================================

func (s *BookingSuite) TestCreateOnlineBooking() {
	s.Run("holds rooms and asks for a thirty percent deposit", func() {
		t := s.T()
		rt := seedDeluxe(t, &s.SharedSuite, 2)
		now := s.App.Clock.Now()

		created := createOnline(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 3))

		assert.Equal(t, "pending", created.Status)
		assert.Equal(t, "unpaid", created.PaymentStatus)
		assert.Equal(t, int64(2_000_000), created.TotalAmount)
		assert.Equal(t, int64(600_000), created.DepositAmount)
		assert.True(t, created.PaymentDeadline.Equal(now.Add(15*time.Minute)))
		assert.True(t, created.HoldWarningAt.Equal(now.Add(10*time.Minute)))
		assert.NotEmpty(t, created.AccessToken)
		require.NotNil(t, created.Payment)
		assert.Equal(t, created.PaymentReference, created.Payment.Reference)
		assert.Equal(t, int64(600_000), created.Payment.Amount)
		require.Len(t, created.Rooms, 1)
		assert.Equal(t, 2, created.Rooms[0].Nights)
	})

	s.Run("guest reads the booking back with its token", func() {
		t := s.T()
		rt := seedDeluxe(t, &s.SharedSuite, 1)
		created := createOnline(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 2))

		w := httptest.PerformRequestWithHeaders(t, s.App.Router, http.MethodGet, guestBookingURL, nil,
			map[string]string{"X-Booking-Token": created.AccessToken})

		var view response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		assert.Equal(t, created.BookingID, view.ID)
		assert.Empty(t, view.History)
	})

	s.Run("not enough rooms is a distinct conflict", func() {
		t := s.T()
		rt := seedDeluxe(t, &s.SharedSuite, 1)
		createOnline(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 3))

		w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, bookingsURL,
			onlineBookingBody(rt.ID, 1, day(&s.SharedSuite, 2), day(&s.SharedSuite, 4)), "")

		httptest.AssertErrorCode(t, w, http.StatusConflict, "ROOM_NOT_AVAILABLE")
	})

	s.Run("check-in long past is rejected", func() {
		t := s.T()
		rt := seedDeluxe(t, &s.SharedSuite, 1)

		w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, bookingsURL,
			onlineBookingBody(rt.ID, 1, day(&s.SharedSuite, -3), day(&s.SharedSuite, -1)), "")

		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("guest cancels an unpaid hold and the room frees up", func() {
		t := s.T()
		rt := seedDeluxe(t, &s.SharedSuite, 1)
		created := createOnline(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 3))

		w := httptest.PerformRequestWithHeaders(t, s.App.Router, http.MethodPost, guestCancelURL, nil,
			map[string]string{"X-Booking-Token": created.AccessToken})
		var cancelled response.CancelResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		assert.Equal(t, "cancelled", cancelled.Status)
		assert.Nil(t, cancelled.Refund)

		got := checkAvailability(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 3))
		assert.True(t, got.IsAvailable)
	})
}

// =============================================================================
// TestConcurrentBooking - the last room goes to exactly one caller
// =============================================================================

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("parallel requests for the last room", func() {
		t := s.T()
		rt := seedDeluxe(t, &s.SharedSuite, 1)
		body := onlineBookingBody(rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 3))

		const callers = 8
		codes := make([]int, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = httptest.PerformRequest(t, s.App.Router, http.MethodPost, bookingsURL, body, "").Code
			}()
		}
		wg.Wait()

		var created, conflicts int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		assert.Equal(t, 1, created)
		assert.Equal(t, callers-1, conflicts)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "booking_rooms", "active"))
	})
}

// =============================================================================
// TestExpirySweep - unpaid holds lapse after the payment window
// =============================================================================

func (s *BookingSuite) TestExpirySweep() {
	s.Run("hold survives inside the window and lapses after it", func() {
		t := s.T()
		ctx := context.Background()
		token := helper.StaffToken(t, s.App.Config, staff.RoleFrontDesk)
		rt := seedDeluxe(t, &s.SharedSuite, 1)
		created := createOnline(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 3))

		s.App.Clock.Add(14 * time.Minute)
		n, err := s.App.Expiry.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		s.App.Clock.Add(2 * time.Minute)
		n, err = s.App.Expiry.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		view := getBooking(t, &s.SharedSuite, token, created.BookingID)
		assert.Equal(t, "cancelled", view.Status)
		assert.Equal(t, "unpaid", view.PaymentStatus)
		require.NotNil(t, view.CancelledBy)
		assert.Equal(t, "system", *view.CancelledBy)

		got := checkAvailability(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 3))
		assert.True(t, got.IsAvailable)
	})

	s.Run("a paid deposit keeps the booking", func() {
		t := s.T()
		ctx := context.Background()
		token := helper.StaffToken(t, s.App.Config, staff.RoleFrontDesk)
		rt := seedDeluxe(t, &s.SharedSuite, 1)
		created := createOnline(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 3))
		recordPayment(t, &s.SharedSuite, token, created.BookingID, created.DepositAmount, "deposit")

		s.App.Clock.Add(time.Hour)
		n, err := s.App.Expiry.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		assert.Equal(t, "confirmed", getBooking(t, &s.SharedSuite, token, created.BookingID).Status)
	})

	s.Run("expiry and creation are queued for notification", func() {
		t := s.T()
		ctx := context.Background()
		rt := seedDeluxe(t, &s.SharedSuite, 1)
		createOnline(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 3))
		s.App.Clock.Add(16 * time.Minute)
		_, err := s.App.Expiry.SweepExpired(ctx)
		require.NoError(t, err)

		sent, err := s.App.Relay.RelayPending(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Zero(t, dbtest.CountRows(t, s.DB, "notification_jobs", "status = 'queued'"))
	})
}

// =============================================================================
// TestStaffListing - back-office list with filter
// =============================================================================

func (s *BookingSuite) TestStaffListing() {
	s.Run("filters by status", func() {
		t := s.T()
		token := helper.StaffToken(t, s.App.Config, staff.RoleFrontDesk)
		rt := seedDeluxe(t, &s.SharedSuite, 2)
		kept := createOnline(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 2))
		recordPayment(t, &s.SharedSuite, token, kept.BookingID, kept.DepositAmount, "deposit")
		createOnline(t, &s.SharedSuite, rt.ID, 1, day(&s.SharedSuite, 1), day(&s.SharedSuite, 2))

		w := httptest.PerformRequest(t, s.App.Router, http.MethodGet, staffBookingsURL+"?status=confirmed", nil, token)
		var res struct {
			Bookings []*response.BookingListItemResponse `json:"bookings"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		expected := []*response.BookingListItemResponse{{
			ID:            kept.BookingID,
			Channel:       "online",
			Status:        "confirmed",
			PaymentStatus: "deposit_paid",
			TotalAmount:   deluxePrice,
			PaidAmount:    kept.DepositAmount,
		}}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingListItemResponse{}, "CheckInDate", "CheckOutDate", "CustomerName", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, res.Bookings, opts...); diff != "" {
			t.Errorf("list mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("staff routes need a token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.App.Router, http.MethodGet, staffBookingsURL, nil, "")
		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	s.Run("unknown booking id", func() {
		t := s.T()
		token := helper.StaffToken(t, s.App.Config, staff.RoleFrontDesk)
		w := httptest.PerformRequest(t, s.App.Router, http.MethodGet, fmt.Sprintf(staffBookingURL, "00000000-0000-0000-0000-000000000001"), nil, token)
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
	})
}
