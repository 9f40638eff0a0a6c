//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/handler/api"
	"hotel-booking-engine/internal/handler/middleware"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/tests/common/httptest"
	"hotel-booking-engine/tests/common/testutil"
	commandsmock "hotel-booking-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	authHeader   map[string]string
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	s.router = newTestEngine(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)

	cfg := config.NewTestConfig()
	h := api.NewPaymentHandler(s.mockCommands, cfg)
	s.router.POST("/api/payments/webhook", middleware.RequireWebhookSecret(cfg.Gateway.WebhookSecret), h.Webhook)
	s.authHeader = map[string]string{"Authorization": "Apikey " + cfg.Gateway.WebhookSecret}
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func webhookBody() map[string]any {
	return map[string]any{
		"id":               92704,
		"gateway":          "MBBank",
		"transaction_date": "2025-11-20 09:05:00",
		"account_number":   "0001112223",
		"content":          "CK HB0A1B2C3D4E thanh toan coc",
		"transfer_type":    "in",
		"transfer_amount":  3_000_000,
		"reference_code":   "FT25324001",
	}
}

// ================================================================================
// TestWebhook
// ================================================================================

func (s *PaymentHandlerTestSuite) TestWebhook() {
	url := "/api/payments/webhook"
	bookingID := uuid.New()
	confirmed := &commands.PaymentResult{
		BookingID:     bookingID,
		Status:        booking.StatusConfirmed,
		PaymentStatus: booking.PaymentDepositPaid,
		PaidAmount:    3_000_000,
	}

	referenceCases := []struct {
		name   string
		mutate func(m map[string]any)
		expect commands.GatewayNotification
	}{
		{
			name:   "reference extracted from transfer content",
			mutate: func(map[string]any) {},
			expect: commands.GatewayNotification{PaymentReference: "HB0A1B2C3D4E", Amount: 3_000_000, GatewayCode: "BANK_TRANSFER", TransactionRef: "FT25324001"},
		},
		{
			name:   "lower-case content is normalised",
			mutate: testutil.Field("content", "ck hb0a1b2c3d4e"),
			expect: commands.GatewayNotification{PaymentReference: "HB0A1B2C3D4E", Amount: 3_000_000, GatewayCode: "BANK_TRANSFER", TransactionRef: "FT25324001"},
		},
		{
			name:   "gateway code wins over content",
			mutate: testutil.Field("code", "HBFFFFFFFFFF"),
			expect: commands.GatewayNotification{PaymentReference: "HBFFFFFFFFFF", Amount: 3_000_000, GatewayCode: "BANK_TRANSFER", TransactionRef: "FT25324001"},
		},
		{
			name:   "gateway id backs a missing reference code",
			mutate: testutil.Field("reference_code", nil),
			expect: commands.GatewayNotification{PaymentReference: "HB0A1B2C3D4E", Amount: 3_000_000, GatewayCode: "BANK_TRANSFER", TransactionRef: "GW-92704"},
		},
		{
			name:   "explicit method code",
			mutate: testutil.Field("method", "EWALLET"),
			expect: commands.GatewayNotification{PaymentReference: "HB0A1B2C3D4E", Amount: 3_000_000, GatewayCode: "EWALLET", TransactionRef: "FT25324001"},
		},
	}

	for _, tc := range referenceCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().RecordGatewayPayment(gomock.Any(), tc.expect).Return(confirmed, nil)

			body := testutil.DtoMap(s.T(), webhookBody(), tc.mutate)
			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, s.authHeader)

			var got struct {
				Success bool `json:"success"`
				Payment struct {
					PaymentStatus string `json:"payment_status"`
				} `json:"payment"`
			}
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
			s.True(got.Success)
			s.Equal("deposit_paid", got.Payment.PaymentStatus)
		})
	}

	ignored := []struct {
		name   string
		mutate func(m map[string]any)
		err    error
	}{
		{name: "outgoing transfer", mutate: testutil.Field("transfer_type", "out")},
		{name: "no reference in content", mutate: testutil.Field("content", "chuyen tien")},
		{name: "unknown reference", mutate: func(map[string]any) {}, err: booking.ErrBookingNotFound},
	}

	for _, tc := range ignored {
		s.Run("acknowledged and ignored: "+tc.name, func() {
			if tc.err != nil {
				s.mockCommands.EXPECT().RecordGatewayPayment(gomock.Any(), gomock.Any()).Return(nil, tc.err)
			}
			body := testutil.DtoMap(s.T(), webhookBody(), tc.mutate)
			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, s.authHeader)

			var got map[string]any
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
			s.Equal(true, got["success"])
			s.NotEmpty(got["ignored"])
		})
	}

	s.Run("payment on a closed booking: 409", func() {
		s.mockCommands.EXPECT().RecordGatewayPayment(gomock.Any(), gomock.Any()).Return(nil, booking.ErrBookingTerminal)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, webhookBody(), s.authHeader)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, string(errs.KindStateConflict))
	})

	s.Run("bad transfer type: 400", func() {
		body := testutil.DtoMap(s.T(), webhookBody(), testutil.Field("transfer_type", "sideways"))
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, s.authHeader)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	authCases := []struct {
		name    string
		headers map[string]string
	}{
		{name: "no header", headers: nil},
		{name: "wrong secret", headers: map[string]string{"Authorization": "Apikey guess"}},
		{name: "bearer scheme", headers: map[string]string{"Authorization": "Bearer webhook-secret"}},
	}
	for _, tc := range authCases {
		s.Run("unauthorized: "+tc.name, func() {
			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, webhookBody(), tc.headers)
			httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, string(errs.KindAuthorization))
		})
	}
}
