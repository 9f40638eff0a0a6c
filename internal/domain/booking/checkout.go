package booking

import (
	"strings"
	"time"

	"hotel-booking-engine/internal/domain/stay"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCharge      = errs.Validation("service charge needs a description, positive quantity and non-negative price")
	ErrUnknownBookingRoom = errs.NotFound("room line does not belong to this booking")
)

// ServiceCharge is an additive line item (minibar, laundry, ...) posted against
// a booking or one of its rooms. It never changes totalAmount.
type ServiceCharge struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	BookingRoomID *uuid.UUID
	Description   string
	Quantity      int
	UnitPrice     int64
	CreatedAt     time.Time
	CreatedBy     string
}

func NewServiceCharge(bookingID uuid.UUID, bookingRoomID *uuid.UUID, description string, quantity int, unitPrice int64, actor string, now time.Time) (ServiceCharge, error) {
	description = strings.TrimSpace(description)
	if description == "" || quantity <= 0 || unitPrice < 0 {
		return ServiceCharge{}, ErrInvalidCharge
	}
	return ServiceCharge{
		ID:            uuid.New(),
		BookingID:     bookingID,
		BookingRoomID: bookingRoomID,
		Description:   description,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CreatedAt:     now,
		CreatedBy:     actor,
	}, nil
}

func (c ServiceCharge) Amount() int64 {
	return int64(c.Quantity) * c.UnitPrice
}

func SumCharges(charges []ServiceCharge) int64 {
	var total int64
	for _, c := range charges {
		total += c.Amount()
	}
	return total
}

type SettlementLine struct {
	BookingRoomID uuid.UUID
	RoomID        uuid.UUID
	RoomNumber    string
	PricePerNight int64
	PlannedNights int
	Nights        int
	SubTotal      int64
}

type Settlement struct {
	Departure    time.Time
	Lines        []SettlementLine
	Charges      []ServiceCharge
	RoomTotal    int64
	ServiceTotal int64
	GrandTotal   int64
	PaidAmount   int64
	AmountDue    int64
	// money received beyond the grand total; owed back to the guest
	Overpaid int64
}

// ComputeSettlement prices every room line for the given departure. departure
// is hotel wall-clock time expressed in UTC.
func ComputeSettlement(b *Booking, departure time.Time, charges []ServiceCharge) Settlement {
	s := Settlement{
		Departure:  departure,
		Lines:      make([]SettlementLine, 0, len(b.rooms)),
		Charges:    charges,
		PaidAmount: b.paidAmount,
	}

	for _, l := range b.rooms {
		nights := stay.ChargeableNights(l.period.CheckIn(), departure)
		sub := l.pricePerNight * int64(nights)
		s.Lines = append(s.Lines, SettlementLine{
			BookingRoomID: l.id,
			RoomID:        l.roomID,
			RoomNumber:    l.roomNumber,
			PricePerNight: l.pricePerNight,
			PlannedNights: l.plannedNights,
			Nights:        nights,
			SubTotal:      sub,
		})
		s.RoomTotal += sub
	}

	s.ServiceTotal = SumCharges(charges)
	s.GrandTotal = s.RoomTotal + s.ServiceTotal
	if diff := s.GrandTotal - s.PaidAmount; diff > 0 {
		s.AmountDue = diff
	} else {
		s.Overpaid = -diff
	}
	return s
}

// PreviewCheckout is a read-only settlement for any booking still open.
func (b *Booking) PreviewCheckout(departure time.Time, charges []ServiceCharge) (Settlement, error) {
	if b.status.IsTerminal() {
		return Settlement{}, errs.Wrapf(ErrCheckoutClosed, "booking is %s", b.status)
	}
	return ComputeSettlement(b, departure, charges), nil
}

type CheckoutParams struct {
	Departure time.Time
	Charges   []ServiceCharge
	Method    Method
	Note      string
	Reference string
	Actor     string
	Now       time.Time
}

type CheckoutResult struct {
	Settlement Settlement
	// completed balance payment; nil when nothing was due
	Balance *Transaction
	// pending refund; nil unless the guest overpaid
	Refund *Transaction
}

// CompleteCheckout settles the stay and closes the booking.
func (b *Booking) CompleteCheckout(p CheckoutParams) (CheckoutResult, error) {
	if b.status != StatusCheckedIn {
		return CheckoutResult{}, errs.Wrapf(ErrNotCheckedIn, "booking is %s", b.status)
	}
	if !p.Method.IsValid() {
		return CheckoutResult{}, ErrUnknownMethod
	}

	s := ComputeSettlement(b, p.Departure, p.Charges)
	settled := make(map[uuid.UUID]SettlementLine, len(s.Lines))
	for _, sl := range s.Lines {
		settled[sl.BookingRoomID] = sl
	}
	for _, l := range b.rooms {
		sl := settled[l.id]
		nights := sl.Nights
		sub := sl.SubTotal
		l.actualNights = &nights
		l.settledSubTotal = &sub
		l.status = LineCheckedOut
		l.period = l.period.Truncate(p.Departure)
	}

	res := CheckoutResult{Settlement: s}
	if s.AmountDue > 0 {
		res.Balance = &Transaction{
			ID:          uuid.New(),
			BookingID:   b.id,
			Amount:      s.AmountDue,
			Method:      p.Method,
			Type:        TransactionBalance,
			Status:      TransactionCompleted,
			Reference:   p.Reference,
			Note:        p.Note,
			ProcessedAt: p.Now,
			ProcessedBy: p.Actor,
		}
		oldPaid := b.paidAmount
		b.paidAmount += s.AmountDue
		b.record(ChangePayment, formatAmount(oldPaid), formatAmount(b.paidAmount), "balance at checkout", p.Actor, p.Now)
	}
	if s.Overpaid > 0 {
		res.Refund = &Transaction{
			ID:          uuid.New(),
			BookingID:   b.id,
			Amount:      s.Overpaid,
			Method:      p.Method,
			Type:        TransactionRefund,
			Status:      TransactionPending,
			Note:        "overpayment at checkout",
			ProcessedAt: p.Now,
			ProcessedBy: p.Actor,
		}
	}

	final := s.GrandTotal
	b.finalAmount = &final
	b.paymentStatus = PaymentFullyPaid
	old := b.status
	b.status = StatusCheckedOut
	b.record(ChangeCheckout, old.String(), StatusCheckedOut.String(), "final "+formatAmount(final), p.Actor, p.Now)
	b.updatedAt = p.Now
	return res, nil
}
