package booking

import (
	"time"

	"github.com/google/uuid"
)

type ChangeType string

const (
	ChangeCreated       ChangeType = "created"
	ChangePayment       ChangeType = "payment"
	ChangeStatus        ChangeType = "status"
	ChangeCancellation  ChangeType = "cancellation"
	ChangeCheckIn       ChangeType = "check_in"
	ChangeCheckout      ChangeType = "checkout"
	ChangeServiceCharge ChangeType = "service_charge"
)

// HistoryEntry is an append-only audit row.
type HistoryEntry struct {
	BookingID  uuid.UUID
	ChangeType ChangeType
	OldValue   string
	NewValue   string
	Reason     string
	ChangedAt  time.Time
	ChangedBy  string
}
