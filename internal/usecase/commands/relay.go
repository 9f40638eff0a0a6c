package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/metrics"
	"hotel-booking-engine/internal/usecase/shared"
)

const maxRelayBackoff = 10 * time.Minute

type RelayConfig struct {
	BatchSize   int32
	MaxAttempts int32
}

type RelayCommands interface {
	// RelayPending publishes due outbox jobs and returns how many were sent.
	RelayPending(ctx context.Context) (int, error)
}

type relayUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
	cfg       RelayConfig
	metrics   *metrics.Metrics
}

func NewRelayUseCase(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, cfg RelayConfig, m *metrics.Metrics) RelayCommands {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &relayUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		metrics:   m,
	}
}

// RelayPending holds the claimed rows locked while publishing, so two relays
// never deliver the same job. Delivery is at least once.
func (u *relayUseCaseImpl) RelayPending(ctx context.Context) (int, error) {
	sent := 0
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := u.clock.Now()
		jobs, err := tx.Notifications().ClaimPending(ctx, tx.DB(), now, u.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			status, runAt, lastErr := shared.JobStatusSent, now, (*string)(nil)
			if pubErr := u.publisher.Publish(ctx, job); pubErr != nil {
				msg := pubErr.Error()
				lastErr = &msg
				status, runAt = u.retryPlan(job, now)
				slog.Warn("failed to publish notification",
					"job_id", job.ID,
					"kind", job.Kind,
					"attempt", job.Attempts+1,
					"next_status", status,
					"error", pubErr)
			} else {
				sent++
			}

			if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, lastErr, runAt); err != nil {
				return err
			}
			u.metrics.IncRelayed(status)
		}
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "relay notifications")
	}
	return sent, nil
}

// retryPlan requeues with exponential backoff until attempts run out.
func (u *relayUseCaseImpl) retryPlan(job shared.NotificationJob, now time.Time) (string, time.Time) {
	attempt := job.Attempts + 1
	if attempt >= u.cfg.MaxAttempts {
		return shared.JobStatusFailed, now
	}
	backoff := time.Duration(1<<attempt) * time.Second
	if backoff > maxRelayBackoff {
		backoff = maxRelayBackoff
	}
	return shared.JobStatusQueued, now.Add(backoff)
}
