package commands

import (
	"context"
	"encoding/json"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// EventTopic is the outbox topic every booking event is published under.
const EventTopic = "booking-events"

const (
	EventBookingCreated   = "booking_created"
	EventPaymentReceived  = "payment_received"
	EventBookingConfirmed = "booking_confirmed"
	EventBookingCancelled = "booking_cancelled"
	EventRefundDue        = "refund_due"
	EventCheckedIn        = "checked_in"
	EventCheckedOut       = "checked_out"
)

type BookingEvent struct {
	Type          string    `json:"type"`
	BookingID     uuid.UUID `json:"booking_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   int64     `json:"total_amount"`
	PaidAmount    int64     `json:"paid_amount"`
	Amount        int64     `json:"amount,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func enqueueEvent(ctx context.Context, tx shared.Tx, kind string, b *booking.Booking, amount int64, reason string, now time.Time) error {
	payload, err := json.Marshal(BookingEvent{
		Type:          kind,
		BookingID:     b.ID(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		TotalAmount:   b.TotalAmount(),
		PaidAmount:    b.PaidAmount(),
		Amount:        amount,
		Reason:        reason,
		OccurredAt:    now,
	})
	if err != nil {
		return errs.Wrap(err, "marshal booking event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, EventTopic, payload, now)
}

func appendHistory(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	entries := b.PendingHistory()
	if len(entries) == 0 {
		return nil
	}
	return tx.History().Append(ctx, tx.DB(), entries)
}

// lockBooking loads the aggregate under a row lock.
func lockBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// persistState writes status columns, room lines and the pending audit trail.
func persistState(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	if err := tx.Bookings().UpdateState(ctx, tx.DB(), b); err != nil {
		return err
	}
	if err := tx.Bookings().UpdateRoomLines(ctx, tx.DB(), b); err != nil {
		return err
	}
	return appendHistory(ctx, tx, b)
}

// addPaid applies delta in SQL and checks the stored total agrees with the
// aggregate, which catches a writer that bypassed the row lock.
func addPaid(ctx context.Context, tx shared.Tx, b *booking.Booking, delta int64, at time.Time) error {
	if delta == 0 {
		return nil
	}
	stored, err := tx.Bookings().AddPaidAmount(ctx, tx.DB(), b.ID(), delta, at)
	if err != nil {
		return err
	}
	if stored != b.PaidAmount() {
		return errs.Mark(errs.Newf("paid amount drift on booking %s: stored %d, expected %d", b.ID(), stored, b.PaidAmount()), errs.ErrServer)
	}
	return nil
}

// releaseBooking persists a cancellation and queues its events.
func releaseBooking(ctx context.Context, tx shared.Tx, b *booking.Booking, refund *booking.Transaction, reason string, now time.Time) error {
	if err := persistState(ctx, tx, b); err != nil {
		return err
	}
	if err := enqueueEvent(ctx, tx, EventBookingCancelled, b, 0, reason, now); err != nil {
		return err
	}
	if refund == nil {
		return nil
	}
	if err := tx.Payments().Create(ctx, tx.DB(), *refund); err != nil {
		return err
	}
	return enqueueEvent(ctx, tx, EventRefundDue, b, refund.Amount, refund.Note, now)
}

// refundMethod sends money back the way it usually arrived.
func refundMethod(ch booking.Channel) booking.Method {
	if ch == booking.ChannelOnline {
		return booking.MethodBankTransfer
	}
	return booking.MethodCash
}

func paymentResult(b *booking.Booking, t *booking.Transaction, duplicate bool) *PaymentResult {
	return &PaymentResult{
		BookingID:     b.ID(),
		Status:        b.Status(),
		PaymentStatus: b.PaymentStatus(),
		PaidAmount:    b.PaidAmount(),
		Transaction:   t,
		Duplicate:     duplicate,
	}
}
