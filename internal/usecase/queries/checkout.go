package queries

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutQueries interface {
	// PreviewCheckout prices a departure without changing anything. A nil
	// departure means now.
	PreviewCheckout(ctx context.Context, bookingID uuid.UUID, departure *time.Time) (*booking.Settlement, error)
}

type checkoutQueriesImpl struct {
	store  BookingReadStore
	clock  clock.Clock
	policy shared.Policy
}

func NewCheckoutQueries(store BookingReadStore, clk clock.Clock, policy shared.Policy) CheckoutQueries {
	return &checkoutQueriesImpl{
		store:  store,
		clock:  clk,
		policy: policy,
	}
}

func (q *checkoutQueriesImpl) PreviewCheckout(ctx context.Context, bookingID uuid.UUID, departure *time.Time) (*booking.Settlement, error) {
	b, charges, err := q.store.LoadAggregate(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}

	at := q.clock.Now()
	if departure != nil {
		at = *departure
	}

	s, err := b.PreviewCheckout(q.policy.WallClock(at), charges)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
