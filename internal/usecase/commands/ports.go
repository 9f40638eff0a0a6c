package commands

import (
	"context"
	"time"

	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// PaymentInstruction tells the guest how to pay the deposit.
type PaymentInstruction struct {
	Reference   string
	Amount      int64
	Description string
	PaymentURL  string
	QRPayload   string
}

type PaymentGateway interface {
	PaymentInstruction(reference string, amount int64, description string, bookingID uuid.UUID) (PaymentInstruction, error)
}

// BookingTokens issues and reads guest access tokens.
type BookingTokens interface {
	IssueBookingToken(bookingID uuid.UUID, expiresAt time.Time) (string, error)
	ParseBookingToken(token string) (uuid.UUID, error)
}

// EventPublisher delivers one outbox job to the notification channel.
type EventPublisher interface {
	Publish(ctx context.Context, job shared.NotificationJob) error
}

const (
	ActorGuest  = "guest"
	ActorStaff  = "staff"
	ActorSystem = "system"
)

// Actor identifies who triggered a change. ID is empty for guests and the system.
type Actor struct {
	Kind string
	ID   string
}

func GuestActor() Actor  { return Actor{Kind: ActorGuest} }
func SystemActor() Actor { return Actor{Kind: ActorSystem} }

func StaffActor(id uuid.UUID) Actor {
	return Actor{Kind: ActorStaff, ID: id.String()}
}

// String is the value stored in created_by / changed_by columns.
func (a Actor) String() string {
	if a.ID == "" {
		return a.Kind
	}
	return a.Kind + ":" + a.ID
}
