//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/handler/api"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/tests/common/httptest"
	commandsmock "hotel-booking-engine/tests/mock/commands"
	queriesmock "hotel-booking-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockCheckoutQueries
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	s.router = newTestEngine(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCheckoutQueries(s.mockCtrl)
	h := api.NewCheckoutHandler(s.mockCommands, s.mockQueries)

	staffGroup := s.router.Group("/api/staff", fakeStaffAuth)
	staffGroup.GET("/bookings/:id/checkout-preview", h.Preview)
	staffGroup.POST("/bookings/:id/checkout", h.Commit)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func sampleSettlement(departure time.Time) booking.Settlement {
	return booking.Settlement{
		Departure: departure,
		Lines: []booking.SettlementLine{
			{BookingRoomID: uuid.New(), RoomID: uuid.New(), RoomNumber: "204", PricePerNight: 1_000_000, PlannedNights: 3, Nights: 2, SubTotal: 2_000_000},
		},
		Charges:      []booking.ServiceCharge{{ID: uuid.New(), Description: "Laundry", Quantity: 1, UnitPrice: 150_000}},
		RoomTotal:    2_000_000,
		ServiceTotal: 150_000,
		GrandTotal:   2_150_000,
		PaidAmount:   1_500_000,
		AmountDue:    650_000,
	}
}

// ================================================================================
// TestPreview
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestPreview() {
	id := uuid.New()
	base := "/api/staff/bookings/" + id.String() + "/checkout-preview"
	departure := time.Date(2025, 12, 3, 10, 30, 0, 0, time.UTC)

	s.Run("explicit departure", func() {
		settlement := sampleSettlement(departure)
		s.mockQueries.EXPECT().PreviewCheckout(gomock.Any(), id, &departure).Return(&settlement, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?departure=2025-12-03T10:30:00Z", nil, staffToken)
		var got resdto.SettlementResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(int64(650_000), got.AmountDue)
		s.Require().Len(got.Lines, 1)
		s.Equal(2, got.Lines[0].Nights)
		s.Len(got.ServiceCharges, 1)
	})

	s.Run("departure defaults to now", func() {
		settlement := sampleSettlement(departure)
		s.mockQueries.EXPECT().PreviewCheckout(gomock.Any(), id, (*time.Time)(nil)).Return(&settlement, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, staffToken)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("malformed departure: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?departure=noon", nil, staffToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("not checked in: 409", func() {
		s.mockQueries.EXPECT().PreviewCheckout(gomock.Any(), id, gomock.Any()).Return(nil, booking.ErrCheckoutClosed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, staffToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, string(errs.KindStateConflict))
	})
}

// ================================================================================
// TestCommit
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestCommit() {
	id := uuid.New()
	url := "/api/staff/bookings/" + id.String() + "/checkout"
	departure := time.Date(2025, 12, 3, 10, 30, 0, 0, time.UTC)

	s.Run("balance collected", func() {
		s.mockCommands.EXPECT().
			CommitCheckout(gomock.Any(), commands.CheckoutInput{BookingID: id, Method: "card", Reference: "POS-77"}, commands.StaffActor(testStaffID)).
			Return(&booking.CheckoutResult{
				Settlement: sampleSettlement(departure),
				Balance:    &booking.Transaction{ID: uuid.New(), Amount: 650_000, Method: booking.MethodCard, Type: booking.TransactionBalance, Status: booking.TransactionCompleted},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"method": "card", "reference": " POS-77 "}, staffToken)
		var got resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().NotNil(got.Balance)
		s.Equal(int64(650_000), got.Balance.Amount)
		s.Nil(got.Refund)
	})

	s.Run("overpaid stay yields pending refund", func() {
		settlement := sampleSettlement(departure)
		settlement.PaidAmount, settlement.AmountDue, settlement.Overpaid = 2_500_000, 0, 350_000
		s.mockCommands.EXPECT().CommitCheckout(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&booking.CheckoutResult{
				Settlement: settlement,
				Refund:     &booking.Transaction{ID: uuid.New(), Amount: 350_000, Type: booking.TransactionRefund, Status: booking.TransactionPending},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"method": "cash", "departure": departure.Format(time.RFC3339)}, staffToken)
		var got resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Nil(got.Balance)
		s.Require().NotNil(got.Refund)
		s.Equal(int64(350_000), got.Settlement.Overpaid)
	})

	s.Run("missing method: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, staffToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("second checkout: 409", func() {
		s.mockCommands.EXPECT().CommitCheckout(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, booking.ErrNotCheckedIn)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"method": "cash"}, staffToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, string(errs.KindStateConflict))
	})
}
