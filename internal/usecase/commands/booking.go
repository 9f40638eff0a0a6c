package commands

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/inventory"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/metrics"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type RecordPaymentInput struct {
	BookingID uuid.UUID
	Amount    int64
	Method    string
	Type      string
	Reference string
	Note      string
}

// GatewayNotification is what the bank gateway posts once a transfer lands.
type GatewayNotification struct {
	PaymentReference string
	Amount           int64
	GatewayCode      string
	TransactionRef   string
}

type PaymentResult struct {
	BookingID     uuid.UUID
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	PaidAmount    int64
	Transaction   *booking.Transaction
	// true when the reference was already applied and nothing changed
	Duplicate bool
}

type CancelResult struct {
	BookingID uuid.UUID
	Status    booking.Status
	Refund    *booking.Transaction
}

type ServiceChargeInput struct {
	BookingID     uuid.UUID
	BookingRoomID *uuid.UUID
	Description   string
	Quantity      int
	UnitPrice     int64
}

type BookingCommands interface {
	RecordPayment(ctx context.Context, in RecordPaymentInput, actor Actor) (*PaymentResult, error)
	RecordGatewayPayment(ctx context.Context, n GatewayNotification) (*PaymentResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, reason string, actor Actor) (*CancelResult, error)
	// CancelByToken is the guest self-service path; the token names the booking.
	CancelByToken(ctx context.Context, token, reason string) (*CancelResult, error)
	CheckIn(ctx context.Context, bookingID uuid.UUID, actor Actor) error
	AddServiceCharge(ctx context.Context, in ServiceChargeInput, actor Actor) (*booking.ServiceCharge, error)
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	tokens  BookingTokens
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewBookingUseCase(uow shared.UnitOfWork, tokens BookingTokens, clk clock.Clock, m *metrics.Metrics) BookingCommands {
	return &bookingUseCaseImpl{
		uow:     uow,
		tokens:  tokens,
		clock:   clk,
		metrics: m,
	}
}

func (u *bookingUseCaseImpl) RecordPayment(ctx context.Context, in RecordPaymentInput, actor Actor) (*PaymentResult, error) {
	method, err := booking.ParseMethod(in.Method)
	if err != nil {
		return nil, err
	}
	txType, err := booking.ParseTransactionType(in.Type)
	if err != nil {
		return nil, err
	}
	resolve := func(context.Context, shared.Tx) (uuid.UUID, error) { return in.BookingID, nil }
	return u.applyPayment(ctx, resolve, func(*booking.Booking) booking.PaymentParams {
		return booking.PaymentParams{
			Amount:      in.Amount,
			Method:      method,
			Type:        txType,
			Reference:   in.Reference,
			Note:        in.Note,
			ProcessedBy: actor.String(),
		}
	})
}

func (u *bookingUseCaseImpl) RecordGatewayPayment(ctx context.Context, n GatewayNotification) (*PaymentResult, error) {
	method, err := booking.MethodFromGatewayCode(n.GatewayCode)
	if err != nil {
		return nil, err
	}

	reference := n.TransactionRef
	if reference == "" {
		reference = n.PaymentReference
	}
	resolve := func(ctx context.Context, tx shared.Tx) (uuid.UUID, error) {
		id, err := tx.Bookings().FindIDByPaymentReference(ctx, tx.DB(), n.PaymentReference)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, errs.Wrapf(booking.ErrBookingNotFound, "payment reference %q", n.PaymentReference)
			}
			return uuid.Nil, err
		}
		return id, nil
	}
	return u.applyPayment(ctx, resolve, func(b *booking.Booking) booking.PaymentParams {
		txType := booking.TransactionBalance
		if b.Status() == booking.StatusPending {
			txType = booking.TransactionDeposit
		}
		return booking.PaymentParams{
			Amount:      n.Amount,
			Method:      method,
			Type:        txType,
			Reference:   reference,
			Note:        "gateway " + n.GatewayCode,
			ProcessedBy: SystemActor().String(),
		}
	})
}

// applyPayment runs one payment against the locked booking. params sees the
// locked aggregate so gateway callbacks can pick deposit or balance.
func (u *bookingUseCaseImpl) applyPayment(
	ctx context.Context,
	resolve func(context.Context, shared.Tx) (uuid.UUID, error),
	params func(*booking.Booking) booking.PaymentParams,
) (*PaymentResult, error) {
	var res *PaymentResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookingID, err := resolve(ctx, tx)
		if err != nil {
			return err
		}
		b, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		p := params(b)
		if p.Reference != "" {
			existing, err := tx.Payments().FindByReference(ctx, tx.DB(), b.ID(), p.Reference)
			if err != nil {
				return err
			}
			if existing != nil {
				res = paymentResult(b, existing, true)
				return nil
			}
		}

		charges, err := tx.ServiceCharges().ListByBooking(ctx, tx.DB(), b.ID())
		if err != nil {
			return err
		}
		now := u.clock.Now()
		p.ServiceChargeTotal = booking.SumCharges(charges)
		p.Now = now

		wasPending := b.Status() == booking.StatusPending
		t, err := b.ApplyPayment(p)
		if err != nil {
			return err
		}

		if err := tx.Payments().Create(ctx, tx.DB(), t); err != nil {
			return err
		}
		if err := addPaid(ctx, tx, b, t.Delta(), now); err != nil {
			return err
		}
		if err := persistState(ctx, tx, b); err != nil {
			return err
		}

		if err := enqueueEvent(ctx, tx, EventPaymentReceived, b, t.Amount, t.Type.String(), now); err != nil {
			return err
		}
		if wasPending && b.Status() == booking.StatusConfirmed {
			if err := enqueueEvent(ctx, tx, EventBookingConfirmed, b, 0, "", now); err != nil {
				return err
			}
		}
		res = paymentResult(b, &t, false)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !res.Duplicate {
		u.metrics.IncPayment(res.Transaction.Type.String(), res.Transaction.Method.String())
		slog.Info("payment recorded",
			"booking_id", res.BookingID,
			"type", res.Transaction.Type,
			"amount", res.Transaction.Amount,
			"payment_status", res.PaymentStatus)
	}
	return res, nil
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, reason string, actor Actor) (*CancelResult, error) {
	return u.cancel(ctx, bookingID, reason, actor)
}

func (u *bookingUseCaseImpl) CancelByToken(ctx context.Context, token, reason string) (*CancelResult, error) {
	bookingID, err := u.tokens.ParseBookingToken(token)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "booking token"), errs.ErrAuthorization)
	}
	if reason == "" {
		reason = "cancelled by guest"
	}
	return u.cancel(ctx, bookingID, reason, GuestActor())
}

func (u *bookingUseCaseImpl) cancel(ctx context.Context, bookingID uuid.UUID, reason string, actor Actor) (*CancelResult, error) {
	var res *CancelResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		now := u.clock.Now()
		refund, err := b.Cancel(booking.CancelParams{
			Reason:       reason,
			Actor:        actor.String(),
			Now:          now,
			RefundMethod: refundMethod(b.Channel()),
		})
		if err != nil {
			return err
		}

		if err := releaseBooking(ctx, tx, b, refund, reason, now); err != nil {
			return err
		}
		res = &CancelResult{BookingID: b.ID(), Status: b.Status(), Refund: refund}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.metrics.IncCancelled(actor.Kind)
	slog.Info("booking cancelled", "booking_id", bookingID, "actor", actor.String(), "refund_due", res.Refund != nil)
	return res, nil
}

func (u *bookingUseCaseImpl) CheckIn(ctx context.Context, bookingID uuid.UUID, actor Actor) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		now := u.clock.Now()
		if err := b.CheckIn(actor.String(), now); err != nil {
			return err
		}
		if err := persistState(ctx, tx, b); err != nil {
			return err
		}
		if err := tx.Inventory().SetOperationalStatus(ctx, tx.DB(), b.RoomIDs(), inventory.StatusOccupied); err != nil {
			return err
		}
		return enqueueEvent(ctx, tx, EventCheckedIn, b, 0, "", now)
	})
}

func (u *bookingUseCaseImpl) AddServiceCharge(ctx context.Context, in ServiceChargeInput, actor Actor) (*booking.ServiceCharge, error) {
	var created *booking.ServiceCharge
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := lockBooking(ctx, tx, in.BookingID)
		if err != nil {
			return err
		}

		c, err := booking.NewServiceCharge(b.ID(), in.BookingRoomID, in.Description, in.Quantity, in.UnitPrice, actor.String(), u.clock.Now())
		if err != nil {
			return err
		}
		if err := b.AddServiceCharge(c); err != nil {
			return err
		}
		if err := tx.ServiceCharges().Create(ctx, tx.DB(), c); err != nil {
			return err
		}
		if err := appendHistory(ctx, tx, b); err != nil {
			return err
		}
		created = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
