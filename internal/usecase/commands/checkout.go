package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/inventory"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/metrics"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutInput struct {
	BookingID uuid.UUID
	// nil means the current hotel wall-clock time
	Departure *time.Time
	Method    string
	Reference string
	Note      string
}

type CheckoutCommands interface {
	CommitCheckout(ctx context.Context, in CheckoutInput, actor Actor) (*booking.CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	policy  shared.Policy
	metrics *metrics.Metrics
}

func NewCheckoutUseCase(uow shared.UnitOfWork, clk clock.Clock, policy shared.Policy, m *metrics.Metrics) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:     uow,
		clock:   clk,
		policy:  policy,
		metrics: m,
	}
}

func (u *checkoutUseCaseImpl) CommitCheckout(ctx context.Context, in CheckoutInput, actor Actor) (*booking.CheckoutResult, error) {
	method, err := booking.ParseMethod(in.Method)
	if err != nil {
		return nil, err
	}

	var res booking.CheckoutResult
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := lockBooking(ctx, tx, in.BookingID)
		if err != nil {
			return err
		}
		charges, err := tx.ServiceCharges().ListByBooking(ctx, tx.DB(), b.ID())
		if err != nil {
			return err
		}

		now := u.clock.Now()
		departure := now
		if in.Departure != nil {
			departure = *in.Departure
		}

		res, err = b.CompleteCheckout(booking.CheckoutParams{
			Departure: u.policy.WallClock(departure),
			Charges:   charges,
			Method:    method,
			Note:      in.Note,
			Reference: in.Reference,
			Actor:     actor.String(),
			Now:       now,
		})
		if err != nil {
			return err
		}

		if res.Balance != nil {
			if err := tx.Payments().Create(ctx, tx.DB(), *res.Balance); err != nil {
				return err
			}
			if err := addPaid(ctx, tx, b, res.Balance.Delta(), now); err != nil {
				return err
			}
		}
		if res.Refund != nil {
			if err := tx.Payments().Create(ctx, tx.DB(), *res.Refund); err != nil {
				return err
			}
		}
		if err := persistState(ctx, tx, b); err != nil {
			return err
		}
		if err := tx.Inventory().SetOperationalStatus(ctx, tx.DB(), b.RoomIDs(), inventory.StatusCleaning); err != nil {
			return err
		}

		if err := enqueueEvent(ctx, tx, EventCheckedOut, b, res.Settlement.GrandTotal, "", now); err != nil {
			return err
		}
		if res.Refund != nil {
			return enqueueEvent(ctx, tx, EventRefundDue, b, res.Refund.Amount, res.Refund.Note, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.metrics.IncCheckout()
	slog.Info("checkout committed",
		"booking_id", in.BookingID,
		"grand_total", res.Settlement.GrandTotal,
		"amount_due", res.Settlement.AmountDue,
		"overpaid", res.Settlement.Overpaid)
	return &res, nil
}
