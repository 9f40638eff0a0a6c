//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/tests/common/dbtest"
	"hotel-booking-engine/tests/common/httptest"
	"hotel-booking-engine/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	availabilityURL  = "/api/availability"
	bookingsURL      = "/api/bookings"
	guestBookingURL  = "/api/bookings/me"
	guestCancelURL   = "/api/bookings/me/cancel"
	webhookURL       = "/api/payments/webhook"
	staffBookingsURL = "/api/staff/bookings"
	staffBookingURL  = "/api/staff/bookings/%s"
	paymentsURL      = "/api/staff/bookings/%s/payments"
	cancelURL        = "/api/staff/bookings/%s/cancel"
	checkInURL       = "/api/staff/bookings/%s/check-in"
	chargesURL       = "/api/staff/bookings/%s/service-charges"
	previewURL       = "/api/staff/bookings/%s/checkout-preview"
	checkoutURL      = "/api/staff/bookings/%s/checkout"

	deluxePrice = int64(1_000_000)
)

// day returns the calendar date n days after the frozen clock's date.
func day(s *e2e.SharedSuite, n int) time.Time {
	now := s.App.Clock.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func ymd(t time.Time) string {
	return t.Format("2006-01-02")
}

func guestBody() map[string]any {
	return map[string]any{
		"full_name": "Nguyen Van A",
		"phone":     "0901234567",
		"email":     "guest@example.com",
	}
}

func onlineBookingBody(roomTypeID uuid.UUID, quantity int, checkIn, checkOut time.Time) map[string]any {
	return map[string]any{
		"check_in":  ymd(checkIn),
		"check_out": ymd(checkOut),
		"guest":     guestBody(),
		"rooms":     []map[string]any{{"room_type_id": roomTypeID, "quantity": quantity}},
	}
}

func availabilityBody(roomTypeID uuid.UUID, quantity int, checkIn, checkOut time.Time) map[string]any {
	return map[string]any{
		"check_in":  ymd(checkIn),
		"check_out": ymd(checkOut),
		"rooms":     []map[string]any{{"room_type_id": roomTypeID, "quantity": quantity}},
	}
}

func createOnline(t *testing.T, s *e2e.SharedSuite, roomTypeID uuid.UUID, quantity int, checkIn, checkOut time.Time) response.CreateBookingResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, bookingsURL, onlineBookingBody(roomTypeID, quantity, checkIn, checkOut), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreateBookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func createOffline(t *testing.T, s *e2e.SharedSuite, token string, roomID uuid.UUID, checkIn, checkOut time.Time) response.CreateBookingResponse {
	t.Helper()

	body := map[string]any{
		"check_in":  ymd(checkIn),
		"check_out": ymd(checkOut),
		"guest":     guestBody(),
		"rooms":     []map[string]any{{"room_id": roomID}},
	}
	w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, staffBookingsURL, body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreateBookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func checkAvailability(t *testing.T, s *e2e.SharedSuite, roomTypeID uuid.UUID, quantity int, checkIn, checkOut time.Time) *response.RoomTypeAvailabilityResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, availabilityURL, availabilityBody(roomTypeID, quantity, checkIn, checkOut), "")
	var res response.AvailabilityResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.Len(t, res.RoomTypes, 1)
	return res.RoomTypes[0]
}

func getBooking(t *testing.T, s *e2e.SharedSuite, token, id string) response.BookingResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.App.Router, http.MethodGet, fmt.Sprintf(staffBookingURL, id), nil, token)
	var res response.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}

func recordPayment(t *testing.T, s *e2e.SharedSuite, token, id string, amount int64, paymentType string) response.PaymentResponse {
	t.Helper()

	body := map[string]any{"amount": amount, "method": "cash", "type": paymentType}
	w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, fmt.Sprintf(paymentsURL, id), body, token)
	var res response.PaymentResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

func seedDeluxe(t *testing.T, s *e2e.SharedSuite, rooms int) dbtest.RoomTypeFixture {
	t.Helper()
	return dbtest.CreateRoomType(t, s.DB, "DLX", deluxePrice, rooms, 101)
}
