package bootstrap

import (
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewPolicy,
	),
)

// NewPolicy collects the booking rules the use cases read from config.
func NewPolicy(cfg config.Config) shared.Policy {
	return shared.Policy{
		PaymentWindow:   cfg.Booking.PaymentWindow,
		HoldWarning:     cfg.Booking.HoldWarning,
		CheckInGrace:    cfg.Booking.CheckInGrace,
		GuestTokenTTL:   cfg.JWT.GuestTokenTTL,
		Location:        cfg.Booking.Location(),
		ReferencePrefix: cfg.Gateway.ReferencePfx,
		SweepBatchSize:  cfg.Sweeper.BatchSize,
	}
}
