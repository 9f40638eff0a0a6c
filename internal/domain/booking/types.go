package booking

import (
	"strings"

	"hotel-booking-engine/internal/pkg/errs"
)

var (
	ErrInvalidStatus  = errs.Validation("invalid booking status")
	ErrInvalidChannel = errs.Validation("invalid booking channel")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further mutation is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type PaymentStatus string

const (
	PaymentUnpaid      PaymentStatus = "unpaid"
	PaymentDepositPaid PaymentStatus = "deposit_paid"
	PaymentFullyPaid   PaymentStatus = "fully_paid"
	PaymentRefunded    PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentUnpaid, PaymentDepositPaid, PaymentFullyPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

type Channel string

const (
	ChannelOnline  Channel = "online"
	ChannelOffline Channel = "offline"
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	return c == ChannelOnline || c == ChannelOffline
}

func ParseChannel(s string) (Channel, error) {
	c := Channel(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidChannel
	}
	return c, nil
}

type LineStatus string

const (
	LineReserved   LineStatus = "reserved"
	LineCheckedIn  LineStatus = "checked_in"
	LineCheckedOut LineStatus = "checked_out"
)

func (s LineStatus) String() string {
	return string(s)
}
