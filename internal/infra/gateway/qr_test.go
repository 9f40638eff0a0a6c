//go:build unit

package gateway_test

import (
	"net/url"
	"strings"
	"testing"

	"hotel-booking-engine/internal/infra/gateway"
	"hotel-booking-engine/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRGateway_PaymentInstruction(t *testing.T) {
	cfg := config.NewTestConfig().Gateway
	bookingID := uuid.New()

	testCases := []struct {
		name        string
		cfg         config.GatewayConfig
		reference   string
		amount      int64
		description string
		wantNote    string
		wantErr     bool
	}{
		{
			name:        "reference used as transfer note",
			cfg:         cfg,
			reference:   "HB1A2B3C4D5E",
			amount:      600_000,
			description: "HB1A2B3C4D5E",
			wantNote:    "HB1A2B3C4D5E",
		},
		{
			name:        "punctuation stripped but reference kept",
			cfg:         cfg,
			reference:   "HB1A2B3C4D5E",
			amount:      600_000,
			description: "hb1a2b3c4d5e - deposit!",
			wantNote:    "HB1A2B3C4D5E DEPOSIT",
		},
		{
			name:        "description losing the reference falls back to it",
			cfg:         cfg,
			reference:   "HB1A2B3C4D5E",
			amount:      600_000,
			description: "deposit for room 101",
			wantNote:    "HB1A2B3C4D5E",
		},
		{
			name:      "zero amount",
			cfg:       cfg,
			reference: "HB1A2B3C4D5E",
			wantErr:   true,
		},
		{
			name:      "no account configured",
			cfg:       config.GatewayConfig{BankCode: "MB"},
			reference: "HB1A2B3C4D5E",
			amount:    1,
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gateway.NewQRGateway(tc.cfg).PaymentInstruction(tc.reference, tc.amount, tc.description, bookingID)

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.reference, got.Reference)
			assert.Equal(t, tc.wantNote, got.Description)

			u, err := url.Parse(got.PaymentURL)
			require.NoError(t, err)
			assert.Equal(t, "0001112223", u.Query().Get("acc"))
			assert.Equal(t, "600000", u.Query().Get("amount"))
			assert.Equal(t, tc.wantNote, u.Query().Get("des"))

			assert.True(t, strings.HasPrefix(got.QRPayload, "000201010212"))
			assert.Contains(t, got.QRPayload, "5303704")
			assert.Contains(t, got.QRPayload, "5406600000")
			assert.Regexp(t, `6304[0-9A-F]{4}$`, got.QRPayload)
		})
	}
}
