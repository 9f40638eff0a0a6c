//go:build e2e

package helper

import (
	"testing"

	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// StaffToken mints a back-office access token the same way bookingctl does.
func StaffToken(t *testing.T, cfg config.Config, role staff.Role) string {
	t.Helper()

	token, err := jwt.NewService(cfg.JWT.Secret, cfg.JWT.StaffDuration).GenerateToken(uuid.New(), role.String())
	require.NoError(t, err)
	return token
}

// WebhookHeaders authenticates a gateway callback.
func WebhookHeaders(cfg config.Config) map[string]string {
	return map[string]string{"Authorization": "Apikey " + cfg.Gateway.WebhookSecret}
}
