package commands

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/metrics"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const expiryReason = "payment timeout"

type ExpiryCommands interface {
	// SweepExpired cancels unpaid holds past their deadline and returns how
	// many were released.
	SweepExpired(ctx context.Context) (int, error)
}

type expiryUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	policy  shared.Policy
	metrics *metrics.Metrics
}

func NewExpiryUseCase(uow shared.UnitOfWork, clk clock.Clock, policy shared.Policy, m *metrics.Metrics) ExpiryCommands {
	return &expiryUseCaseImpl{
		uow:     uow,
		clock:   clk,
		policy:  policy,
		metrics: m,
	}
}

func (u *expiryUseCaseImpl) SweepExpired(ctx context.Context) (int, error) {
	now := u.clock.Now()
	limit := u.policy.SweepBatchSize
	if limit <= 0 {
		limit = 100
	}

	var ids []uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Bookings().ListExpiredIDs(ctx, tx.DB(), now, limit)
		if err != nil {
			return err
		}
		ids = found
		return nil
	})
	if err != nil {
		u.metrics.ObserveSweep(0, err)
		return 0, errs.Wrap(err, "list expired bookings")
	}

	expired := 0
	var sweepErr error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			sweepErr = err
			break
		}
		released, err := u.expireOne(ctx, id)
		if err != nil {
			// one bad row must not stall the rest of the batch
			slog.Error("failed to expire booking", "booking_id", id, "error", err)
			sweepErr = err
			continue
		}
		if released {
			expired++
			u.metrics.IncCancelled(ActorSystem)
		}
	}

	u.metrics.ObserveSweep(expired, sweepErr)
	if expired > 0 {
		slog.Info("expired unpaid bookings", "count", expired, "candidates", len(ids))
	}
	return expired, sweepErr
}

// expireOne re-checks the hold under its row lock. A payment that landed after
// the listing wins and the booking is skipped.
func (u *expiryUseCaseImpl) expireOne(ctx context.Context, id uuid.UUID) (bool, error) {
	released := false
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		now := u.clock.Now()
		if err := b.Expire(SystemActor().String(), expiryReason, now); err != nil {
			return err
		}
		if err := releaseBooking(ctx, tx, b, nil, expiryReason, now); err != nil {
			return err
		}
		released = true
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrStateConflict) || errs.Is(err, errs.ErrNotFound) {
			slog.Debug("skipping booking no longer eligible for expiry", "booking_id", id, "reason", err)
			return false, nil
		}
		return false, err
	}
	return released, nil
}
