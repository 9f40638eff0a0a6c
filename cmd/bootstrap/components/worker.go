package components

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(
		startExpirySweeper,
		startOutboxRelay,
	),
)

func startExpirySweeper(lc fx.Lifecycle, cfg config.Config, expiry commands.ExpiryCommands, logger *slog.Logger) {
	if !cfg.Sweeper.Enabled {
		logger.Info("expiry sweeper disabled")
		return
	}
	register(lc, worker.NewPeriodic("expiry-sweeper", cfg.Sweeper.Interval, expiry.SweepExpired, logger))
}

func startOutboxRelay(lc fx.Lifecycle, cfg config.Config, relay commands.RelayCommands, logger *slog.Logger) {
	register(lc, worker.NewPeriodic("outbox-relay", cfg.Outbox.Interval, relay.RelayPending, logger))
}

func register(lc fx.Lifecycle, p *worker.Periodic) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// the hook context ends with startup; the loop owns its lifetime
			p.Start(context.Background())
			return nil
		},
		OnStop: p.Stop,
	})
}
