//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/inventory"
	"hotel-booking-engine/internal/handler/api"
	"hotel-booking-engine/internal/handler/middleware"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/tests/common/httptest"
	"hotel-booking-engine/tests/common/testutil"
	commandsmock "hotel-booking-engine/tests/mock/commands"
	queriesmock "hotel-booking-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockReservations *commandsmock.MockReservationCommands
	mockCommands     *commandsmock.MockBookingCommands
	mockQueries      *queriesmock.MockBookingQueries
	now              time.Time
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestEngine(s.T())
	s.now = time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockReservations, s.mockCommands, s.mockQueries, config.NewTestConfig(), clock.NewMockClock(s.now))

	s.router.POST("/api/bookings", h.CreateOnline)
	s.router.GET("/api/bookings/me", middleware.RequireGuestToken(), h.GetMine)
	s.router.POST("/api/bookings/me/cancel", middleware.RequireGuestToken(), h.CancelMine)

	staffGroup := s.router.Group("/api/staff", fakeStaffAuth)
	staffGroup.POST("/bookings", h.CreateOffline)
	staffGroup.GET("/bookings", h.List)
	staffGroup.GET("/bookings/:id", h.Get)
	staffGroup.POST("/bookings/:id/payments", h.RecordPayment)
	staffGroup.POST("/bookings/:id/cancel", h.Cancel)
	staffGroup.POST("/bookings/:id/check-in", h.CheckIn)
	staffGroup.POST("/bookings/:id/service-charges", h.AddServiceCharge)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func onlineBookingBody() map[string]any {
	return map[string]any{
		"check_in":  "2025-12-01",
		"check_out": "2025-12-04",
		"guest": map[string]any{
			"full_name": "Nguyen Van A",
			"phone":     "0901234567",
			"email":     "guest@example.com",
		},
		"rooms": []map[string]any{
			{"room_type_id": uuid.NewString(), "quantity": 2},
		},
	}
}

func (s *BookingHandlerTestSuite) createResult() *commands.CreateBookingResult {
	return &commands.CreateBookingResult{
		BookingID:        uuid.New(),
		Status:           booking.StatusPending,
		PaymentStatus:    booking.PaymentUnpaid,
		CheckIn:          time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:         time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC),
		TotalAmount:      6_000_000,
		DepositAmount:    3_000_000,
		PaymentReference: "HB0123456789",
		PaymentDeadline:  s.now.Add(15 * time.Minute),
		HoldWarningAt:    s.now.Add(10 * time.Minute),
		AccessToken:      "guest-token",
		Payment: commands.PaymentInstruction{
			Reference:  "HB0123456789",
			Amount:     3_000_000,
			PaymentURL: "https://qr.example.test/img",
		},
	}
}

// ================================================================================
// TestCreateOnline
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateOnline() {
	url := "/api/bookings"

	invalid := []testCaseBooking{
		{name: "missing check_in", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
		{name: "malformed check_out", mutate: testutil.Field("check_out", "04/12/2025"), expectCode: http.StatusBadRequest},
		{name: "missing guest", mutate: testutil.Field("guest", nil), expectCode: http.StatusBadRequest},
		{name: "empty rooms", mutate: testutil.Field("rooms", []any{}), expectCode: http.StatusBadRequest},
		{name: "zero quantity", mutate: testutil.Field("rooms", []map[string]any{{"room_type_id": uuid.NewString(), "quantity": 0}}), expectCode: http.StatusBadRequest},
		{name: "bad guest email", mutate: testutil.Field("guest", map[string]any{"full_name": "A", "phone": "1", "email": "nope"}), expectCode: http.StatusBadRequest},
	}

	s.Run("success: 201 with token cookie and payment instructions", func() {
		result := s.createResult()
		s.mockReservations.EXPECT().
			CreateOnlineBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.OnlineBookingRequest) (*commands.CreateBookingResult, error) {
				s.Equal("guest@example.com", req.Guest.Email)
				s.Equal(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), req.CheckIn)
				s.Require().Len(req.Rooms, 1)
				s.Equal(2, req.Rooms[0].Quantity)
				return result, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, onlineBookingBody(), "")

		var got resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(result.BookingID.String(), got.BookingID)
		s.Equal("pending", got.Status)
		s.Equal(int64(3_000_000), got.DepositAmount)
		s.Require().NotNil(got.Payment)
		s.Equal("HB0123456789", got.Payment.Reference)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/me"})

		cookie := httptest.ExtractCookie(rec, "booking_token")
		s.Require().NotNil(cookie)
		s.Equal("guest-token", cookie.Value)
		s.True(cookie.HttpOnly)
	})

	s.Run("availability conflict: 409 ROOM_NOT_AVAILABLE", func() {
		s.mockReservations.EXPECT().
			CreateOnlineBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(inventory.ErrNotEnoughRooms, "allocate"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, onlineBookingBody(), "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, string(errs.KindAvailabilityConflict))
	})

	s.Run("domain validation: 400", func() {
		s.mockReservations.EXPECT().
			CreateOnlineBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.Validation("check-out must be after check-in"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, onlineBookingBody(), "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})

	for _, tc := range invalid {
		s.Run("validation: "+tc.name, func() {
			body := testutil.DtoMap(s.T(), onlineBookingBody(), tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}
}

// ================================================================================
// TestCreateOffline
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateOffline() {
	url := "/api/staff/bookings"
	roomID := uuid.New()
	price := int64(900_000)
	body := map[string]any{
		"check_in":  "2025-12-01",
		"check_out": "2025-12-02",
		"guest": map[string]any{
			"full_name": "Walk In",
			"phone":     "0900000000",
			"email":     "walkin@example.com",
		},
		"rooms": []map[string]any{{"room_id": roomID.String(), "price_per_night": price}},
	}

	s.Run("success: staff actor and explicit price are forwarded", func() {
		result := s.createResult()
		result.Status = booking.StatusConfirmed
		s.mockReservations.EXPECT().
			CreateOfflineBooking(gomock.Any(), gomock.Any(), commands.StaffActor(testStaffID)).
			DoAndReturn(func(_ any, req commands.OfflineBookingRequest, _ commands.Actor) (*commands.CreateBookingResult, error) {
				s.Require().Len(req.Rooms, 1)
				s.Equal(roomID, req.Rooms[0].RoomID)
				s.Require().NotNil(req.Rooms[0].PricePerNight)
				s.Equal(price, *req.Rooms[0].PricePerNight)
				return result, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, staffToken)
		var got resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal("confirmed", got.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/staff/bookings/" + result.BookingID.String()})
	})

	s.Run("unauthenticated: 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("room taken: 409", func() {
		s.mockReservations.EXPECT().
			CreateOfflineBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, inventory.ErrRoomUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, staffToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, string(errs.KindAvailabilityConflict))
	})
}

// ================================================================================
// TestGuestSelfService
// ================================================================================

func (s *BookingHandlerTestSuite) TestGuestSelfService() {
	view := &queries.BookingView{
		ID:      uuid.New(),
		Status:  "pending",
		History: []queries.HistoryView{{ChangeType: "status", ChangedBy: "guest"}},
	}

	s.Run("get by header token hides history", func() {
		s.mockQueries.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(view, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/api/bookings/me", nil,
			map[string]string{middleware.BookingTokenHeader: "tok-1"})
		var got map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.ID.String(), got["id"])
		s.Empty(got["history"])
	})

	s.Run("get by cookie token", func() {
		s.mockQueries.EXPECT().GetByToken(gomock.Any(), "tok-cookie").Return(view, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/bookings/me", nil,
			[]*http.Cookie{{Name: "booking_token", Value: "tok-cookie"}}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing token: 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/me", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, string(errs.KindAuthorization))
	})

	s.Run("expired token: 401", func() {
		s.mockQueries.EXPECT().GetByToken(gomock.Any(), "stale").
			Return(nil, errs.Mark(errs.New("token expired"), queries.ErrInvalidBookingToken))

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/api/bookings/me", nil,
			map[string]string{middleware.BookingTokenHeader: "stale"})
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("cancel without body", func() {
		s.mockCommands.EXPECT().CancelByToken(gomock.Any(), "tok-1", "").
			Return(&commands.CancelResult{BookingID: view.ID, Status: booking.StatusCancelled}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/api/bookings/me/cancel", nil,
			map[string]string{middleware.BookingTokenHeader: "tok-1"})
		var got resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("cancelled", got.Status)
		s.Nil(got.Refund)
	})

	s.Run("cancel after check-in: 409", func() {
		s.mockCommands.EXPECT().CancelByToken(gomock.Any(), "tok-1", "plans changed").
			Return(nil, booking.ErrNotCancellable)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/api/bookings/me/cancel",
			map[string]any{"reason": "plans changed"},
			map[string]string{middleware.BookingTokenHeader: "tok-1"})
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, string(errs.KindStateConflict))
	})
}

// ================================================================================
// TestGetAndList
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetAndList() {
	id := uuid.New()

	s.Run("get includes history", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(&queries.BookingView{
			ID:      id,
			History: []queries.HistoryView{{ChangeType: "status", ChangedBy: "system"}},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/staff/bookings/"+id.String(), nil, staffToken)
		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Len(got.History, 1)
	})

	s.Run("get unknown: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, booking.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/staff/bookings/"+id.String(), nil, staffToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, string(errs.KindNotFound))
	})

	s.Run("get malformed id: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/staff/bookings/not-a-uuid", nil, staffToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("list passes filter, limit and cursor", func() {
		status := "confirmed"
		s.mockQueries.EXPECT().
			List(gomock.Any(), &status, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.BookingListItem{{ID: id, Status: status}}, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/staff/bookings?status=confirmed&limit=5&after=abc", nil, staffToken)
		var got struct {
			Bookings   []resdto.BookingListItemResponse `json:"bookings"`
			NextCursor string                           `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Len(got.Bookings, 1)
		s.Equal("next", got.NextCursor)
	})

	s.Run("list bad limit: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/staff/bookings?limit=ten", nil, staffToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestRecordPayment
// ================================================================================

func (s *BookingHandlerTestSuite) TestRecordPayment() {
	id := uuid.New()
	url := "/api/staff/bookings/" + id.String() + "/payments"
	body := map[string]any{"amount": 3_000_000, "method": "cash", "type": "deposit", "reference": "DESK-1"}

	invalid := []testCaseBooking{
		{name: "zero amount", mutate: testutil.Field("amount", 0), expectCode: http.StatusBadRequest},
		{name: "unknown method", mutate: testutil.Field("method", "barter"), expectCode: http.StatusBadRequest},
		{name: "unknown type", mutate: testutil.Field("type", "tip"), expectCode: http.StatusBadRequest},
		{name: "missing method", mutate: testutil.Field("method", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("new payment: 201", func() {
		s.mockCommands.EXPECT().
			RecordPayment(gomock.Any(), commands.RecordPaymentInput{
				BookingID: id, Amount: 3_000_000, Method: "cash", Type: "deposit", Reference: "DESK-1",
			}, commands.StaffActor(testStaffID)).
			Return(&commands.PaymentResult{
				BookingID:     id,
				Status:        booking.StatusConfirmed,
				PaymentStatus: booking.PaymentDepositPaid,
				PaidAmount:    3_000_000,
				Transaction:   &booking.Transaction{ID: uuid.New(), Amount: 3_000_000, Method: booking.MethodCash},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, staffToken)
		var got resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal("deposit_paid", got.PaymentStatus)
		s.Require().NotNil(got.Transaction)
		s.Equal("cash", got.Transaction.Method)
	})

	s.Run("replayed reference: 200", func() {
		s.mockCommands.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.PaymentResult{BookingID: id, Duplicate: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, staffToken)
		var got resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Duplicate)
	})

	s.Run("overpayment: 422", func() {
		s.mockCommands.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, booking.ErrOverpayment)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, staffToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, string(errs.KindPayment))
	})

	for _, tc := range invalid {
		s.Run("validation: "+tc.name, func() {
			req := testutil.DtoMap(s.T(), body, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, staffToken)
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}
}

// ================================================================================
// TestStaffLifecycle
// ================================================================================

func (s *BookingHandlerTestSuite) TestStaffLifecycle() {
	id := uuid.New()
	base := "/api/staff/bookings/" + id.String()

	s.Run("cancel returns pending refund", func() {
		s.mockCommands.EXPECT().
			CancelBooking(gomock.Any(), id, "no show", commands.StaffActor(testStaffID)).
			Return(&commands.CancelResult{
				BookingID: id,
				Status:    booking.StatusCancelled,
				Refund:    &booking.Transaction{ID: uuid.New(), Amount: 500_000, Status: booking.TransactionPending, Type: booking.TransactionRefund},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/cancel", map[string]any{"reason": "no show"}, staffToken)
		var got resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().NotNil(got.Refund)
		s.Equal("pending", got.Refund.Status)
	})

	s.Run("check-in: 204", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id, commands.StaffActor(testStaffID)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/check-in", nil, staffToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("check-in on pending booking: 409", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id, gomock.Any()).Return(booking.ErrNotConfirmed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/check-in", nil, staffToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, string(errs.KindStateConflict))
	})

	s.Run("service charge: 201", func() {
		s.mockCommands.EXPECT().
			AddServiceCharge(gomock.Any(), commands.ServiceChargeInput{
				BookingID: id, Description: "Minibar", Quantity: 2, UnitPrice: 50_000,
			}, commands.StaffActor(testStaffID)).
			Return(&booking.ServiceCharge{ID: uuid.New(), BookingID: id, Description: "Minibar", Quantity: 2, UnitPrice: 50_000}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/service-charges",
			map[string]any{"description": "Minibar", "quantity": 2, "unit_price": 50_000}, staffToken)
		var got resdto.ServiceChargeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(int64(100_000), got.Amount)
	})

	s.Run("service charge missing description: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/service-charges",
			map[string]any{"quantity": 1, "unit_price": 1}, staffToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
