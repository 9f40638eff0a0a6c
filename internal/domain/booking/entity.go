package booking

import (
	"strconv"
	"strings"
	"time"

	"hotel-booking-engine/internal/domain/stay"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const DefaultPaymentWindow = 15 * time.Minute

var (
	ErrNoRooms           = errs.Validation("booking needs at least one room")
	ErrDuplicateRoom     = errs.Validation("room listed more than once")
	ErrNegativePrice     = errs.Validation("price per night cannot be negative")
	ErrBookingNotFound   = errs.NotFound("booking not found")
	ErrBookingTerminal   = errs.StateConflict("booking is closed")
	ErrNotCancellable    = errs.StateConflict("only pending or confirmed bookings can be cancelled")
	ErrNotConfirmed      = errs.StateConflict("only confirmed bookings can be checked in")
	ErrNotCheckedIn      = errs.StateConflict("only checked-in bookings can be checked out")
	ErrPaymentNotExpired = errs.StateConflict("booking is no longer awaiting payment")
	ErrCheckoutClosed    = errs.StateConflict("checkout is not available for this booking")
	ErrChargesClosed     = errs.StateConflict("service charges need a confirmed or checked-in booking")
)

// Allocation is one room assigned to a new booking with its price snapshot.
type Allocation struct {
	RoomID        uuid.UUID
	RoomTypeID    uuid.UUID
	RoomNumber    string
	PricePerNight int64
}

type NewParams struct {
	ID               uuid.UUID
	CustomerID       *uuid.UUID
	Channel          Channel
	Period           stay.Period
	Rooms            []Allocation
	SpecialRequests  string
	PaymentReference string
	CreatedBy        string
	Now              time.Time
	PaymentWindow    time.Duration
}

type Booking struct {
	id                 uuid.UUID
	customerID         *uuid.UUID
	channel            Channel
	period             stay.Period
	totalAmount        int64
	depositAmount      int64
	paidAmount         int64
	finalAmount        *int64
	status             Status
	paymentStatus      PaymentStatus
	specialRequests    string
	paymentReference   string
	paymentDeadline    time.Time
	cancelledAt        *time.Time
	cancelledBy        *string
	cancellationReason *string
	createdBy          string
	createdAt          time.Time
	updatedAt          time.Time
	rooms              []*RoomLine

	pending []HistoryEntry
}

func NewBooking(p NewParams) (*Booking, error) {
	if !p.Channel.IsValid() {
		return nil, ErrInvalidChannel
	}
	if p.Period.IsZero() {
		return nil, stay.ErrInvalidPeriod
	}
	if len(p.Rooms) == 0 {
		return nil, ErrNoRooms
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	window := p.PaymentWindow
	if window <= 0 {
		window = DefaultPaymentWindow
	}

	nights := p.Period.Nights()
	seen := make(map[uuid.UUID]struct{}, len(p.Rooms))
	lines := make([]*RoomLine, 0, len(p.Rooms))
	var total int64
	for _, a := range p.Rooms {
		if _, dup := seen[a.RoomID]; dup {
			return nil, ErrDuplicateRoom
		}
		seen[a.RoomID] = struct{}{}
		if a.PricePerNight < 0 {
			return nil, ErrNegativePrice
		}

		sub := a.PricePerNight * int64(nights)
		total += sub
		lines = append(lines, &RoomLine{
			id:            uuid.New(),
			roomID:        a.RoomID,
			roomTypeID:    a.RoomTypeID,
			roomNumber:    a.RoomNumber,
			pricePerNight: a.PricePerNight,
			plannedNights: nights,
			subTotal:      sub,
			status:        LineReserved,
			period:        p.Period,
			active:        true,
		})
	}

	b := &Booking{
		id:               id,
		customerID:       p.CustomerID,
		channel:          p.Channel,
		period:           p.Period,
		totalAmount:      total,
		depositAmount:    DepositFor(total),
		status:           StatusPending,
		paymentStatus:    PaymentUnpaid,
		specialRequests:  strings.TrimSpace(p.SpecialRequests),
		paymentReference: p.PaymentReference,
		paymentDeadline:  p.Now.Add(window),
		createdBy:        p.CreatedBy,
		createdAt:        p.Now,
		updatedAt:        p.Now,
		rooms:            lines,
	}
	b.record(ChangeCreated, "", StatusPending.String(), "", p.CreatedBy, p.Now)
	return b, nil
}

// Snapshot carries persisted state back into an aggregate.
type Snapshot struct {
	ID                 uuid.UUID
	CustomerID         *uuid.UUID
	Channel            Channel
	Period             stay.Period
	TotalAmount        int64
	DepositAmount      int64
	PaidAmount         int64
	FinalAmount        *int64
	Status             Status
	PaymentStatus      PaymentStatus
	SpecialRequests    string
	PaymentReference   string
	PaymentDeadline    time.Time
	CancelledAt        *time.Time
	CancelledBy        *string
	CancellationReason *string
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Rooms              []RoomLineSnapshot
}

func Reconstruct(s Snapshot) *Booking {
	lines := make([]*RoomLine, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		lines = append(lines, reconstructLine(r))
	}
	return &Booking{
		id:                 s.ID,
		customerID:         s.CustomerID,
		channel:            s.Channel,
		period:             s.Period,
		totalAmount:        s.TotalAmount,
		depositAmount:      s.DepositAmount,
		paidAmount:         s.PaidAmount,
		finalAmount:        s.FinalAmount,
		status:             s.Status,
		paymentStatus:      s.PaymentStatus,
		specialRequests:    s.SpecialRequests,
		paymentReference:   s.PaymentReference,
		paymentDeadline:    s.PaymentDeadline,
		cancelledAt:        s.CancelledAt,
		cancelledBy:        s.CancelledBy,
		cancellationReason: s.CancellationReason,
		createdBy:          s.CreatedBy,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
		rooms:              lines,
	}
}

type PaymentParams struct {
	Amount      int64
	Method      Method
	Type        TransactionType
	Reference   string
	Note        string
	ProcessedBy string
	// service charges already posted; they extend what may be paid
	ServiceChargeTotal int64
	Now                time.Time
}

// ApplyPayment records money received (or an explicit refund) and derives the
// payment and booking status.
func (b *Booking) ApplyPayment(p PaymentParams) (Transaction, error) {
	if b.status.IsTerminal() {
		return Transaction{}, errs.Wrapf(ErrBookingTerminal, "booking is %s", b.status)
	}
	if p.Amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	if !p.Method.IsValid() {
		return Transaction{}, ErrUnknownMethod
	}

	switch p.Type {
	case TransactionDeposit, TransactionBalance:
		outstanding := b.totalAmount + p.ServiceChargeTotal - b.paidAmount
		if p.Amount > outstanding {
			return Transaction{}, errs.Wrapf(ErrOverpayment, "outstanding %d, received %d", outstanding, p.Amount)
		}
	case TransactionRefund:
		if p.Amount > b.paidAmount {
			return Transaction{}, ErrRefundExceedsPaid
		}
	default:
		return Transaction{}, ErrUnknownTransactionType
	}

	tx := Transaction{
		ID:          uuid.New(),
		BookingID:   b.id,
		Amount:      p.Amount,
		Method:      p.Method,
		Type:        p.Type,
		Status:      TransactionCompleted,
		Reference:   p.Reference,
		Note:        p.Note,
		ProcessedAt: p.Now,
		ProcessedBy: p.ProcessedBy,
	}

	oldPaid := b.paidAmount
	b.paidAmount += tx.Delta()
	b.paymentStatus = DerivePaymentStatus(b.paidAmount, b.depositAmount, b.totalAmount)
	b.record(ChangePayment, formatAmount(oldPaid), formatAmount(b.paidAmount), p.Type.String()+" via "+p.Method.String(), p.ProcessedBy, p.Now)

	if b.status == StatusPending && b.paidAmount >= b.depositAmount {
		b.transition(StatusConfirmed, "deposit received", p.ProcessedBy, p.Now)
	}
	b.updatedAt = p.Now
	return tx, nil
}

type CancelParams struct {
	Reason string
	Actor  string
	Now    time.Time
	// method used for the refund obligation when money was received
	RefundMethod Method
}

// Cancel closes a pending or confirmed booking and releases its rooms. When
// money was received it returns a pending refund obligation.
func (b *Booking) Cancel(p CancelParams) (*Transaction, error) {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return nil, errs.Wrapf(ErrNotCancellable, "booking is %s", b.status)
	}

	reason := strings.TrimSpace(p.Reason)
	actor := p.Actor
	at := p.Now
	b.cancelledAt = &at
	b.cancelledBy = &actor
	if reason != "" {
		b.cancellationReason = &reason
	}
	for _, l := range b.rooms {
		l.active = false
	}

	old := b.status
	b.status = StatusCancelled
	b.record(ChangeCancellation, old.String(), StatusCancelled.String(), reason, actor, p.Now)
	b.updatedAt = p.Now

	if b.paidAmount <= 0 {
		return nil, nil
	}

	method := p.RefundMethod
	if !method.IsValid() {
		method = MethodCash
	}
	b.paymentStatus = PaymentRefunded
	return &Transaction{
		ID:          uuid.New(),
		BookingID:   b.id,
		Amount:      b.paidAmount,
		Method:      method,
		Type:        TransactionRefund,
		Status:      TransactionPending,
		Note:        "refund due on cancellation",
		ProcessedAt: p.Now,
		ProcessedBy: actor,
	}, nil
}

// IsPaymentExpired reports whether the unpaid hold ran past its deadline.
func (b *Booking) IsPaymentExpired(now time.Time) bool {
	return b.status == StatusPending && b.paymentStatus == PaymentUnpaid && b.paymentDeadline.Before(now)
}

// Expire cancels an unpaid hold on behalf of the system.
func (b *Booking) Expire(actor, reason string, now time.Time) error {
	if !b.IsPaymentExpired(now) {
		return errs.Wrapf(ErrPaymentNotExpired, "booking is %s/%s", b.status, b.paymentStatus)
	}
	_, err := b.Cancel(CancelParams{Reason: reason, Actor: actor, Now: now})
	return err
}

func (b *Booking) CheckIn(actor string, now time.Time) error {
	if b.status != StatusConfirmed {
		return errs.Wrapf(ErrNotConfirmed, "booking is %s", b.status)
	}
	for _, l := range b.rooms {
		l.status = LineCheckedIn
	}
	old := b.status
	b.status = StatusCheckedIn
	b.record(ChangeCheckIn, old.String(), StatusCheckedIn.String(), "", actor, now)
	b.updatedAt = now
	return nil
}

func (b *Booking) AddServiceCharge(c ServiceCharge) error {
	if b.status != StatusConfirmed && b.status != StatusCheckedIn {
		return errs.Wrapf(ErrChargesClosed, "booking is %s", b.status)
	}
	if c.BookingRoomID != nil && b.line(*c.BookingRoomID) == nil {
		return ErrUnknownBookingRoom
	}
	b.record(ChangeServiceCharge, "", formatAmount(c.Amount()), c.Description, c.CreatedBy, c.CreatedAt)
	b.updatedAt = c.CreatedAt
	return nil
}

func (b *Booking) transition(to Status, reason, actor string, now time.Time) {
	from := b.status
	b.status = to
	b.record(ChangeStatus, from.String(), to.String(), reason, actor, now)
}

func (b *Booking) record(ct ChangeType, oldValue, newValue, reason, actor string, at time.Time) {
	b.pending = append(b.pending, HistoryEntry{
		BookingID:  b.id,
		ChangeType: ct,
		OldValue:   oldValue,
		NewValue:   newValue,
		Reason:     reason,
		ChangedAt:  at,
		ChangedBy:  actor,
	})
}

// PendingHistory returns entries recorded since load and clears them.
func (b *Booking) PendingHistory() []HistoryEntry {
	out := b.pending
	b.pending = nil
	return out
}

func (b *Booking) line(id uuid.UUID) *RoomLine {
	for _, l := range b.rooms {
		if l.id == id {
			return l
		}
	}
	return nil
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) CustomerID() *uuid.UUID       { return b.customerID }
func (b *Booking) Channel() Channel             { return b.channel }
func (b *Booking) Period() stay.Period          { return b.period }
func (b *Booking) TotalAmount() int64           { return b.totalAmount }
func (b *Booking) DepositAmount() int64         { return b.depositAmount }
func (b *Booking) PaidAmount() int64            { return b.paidAmount }
func (b *Booking) FinalAmount() *int64          { return b.finalAmount }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) SpecialRequests() string      { return b.specialRequests }
func (b *Booking) PaymentReference() string     { return b.paymentReference }
func (b *Booking) PaymentDeadline() time.Time   { return b.paymentDeadline }
func (b *Booking) CancelledAt() *time.Time      { return b.cancelledAt }
func (b *Booking) CancelledBy() *string         { return b.cancelledBy }
func (b *Booking) CancellationReason() *string  { return b.cancellationReason }
func (b *Booking) CreatedBy() string            { return b.createdBy }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

func (b *Booking) Rooms() []RoomLine {
	out := make([]RoomLine, len(b.rooms))
	for i, l := range b.rooms {
		out[i] = *l
	}
	return out
}

func (b *Booking) RoomIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(b.rooms))
	for i, l := range b.rooms {
		ids[i] = l.roomID
	}
	return ids
}

func formatAmount(v int64) string {
	return strconv.FormatInt(v, 10)
}
