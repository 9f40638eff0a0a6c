package components

import (
	"hotel-booking-engine/internal/infra/gateway"
	"hotel-booking-engine/internal/infra/notify"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) commands.PaymentGateway {
		return gateway.NewQRGateway(cfg.Gateway)
	},
	NewEventPublisher,
	func(cfg config.Config) commands.RelayConfig {
		return commands.RelayConfig{
			BatchSize:   cfg.Outbox.BatchSize,
			MaxAttempts: cfg.Outbox.MaxAttempts,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewBookingUseCase,
		commands.NewCheckoutUseCase,
		commands.NewExpiryUseCase,
		commands.NewRelayUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewCheckoutQueries,
	),
)

// NewEventPublisher appends to the Redis stream when a client is configured
// and falls back to logging otherwise.
func NewEventPublisher(cfg config.Config, client *redis.Client) commands.EventPublisher {
	if client == nil {
		return notify.NewLogPublisher()
	}
	return notify.NewStreamPublisher(client, cfg.Redis.Stream)
}
