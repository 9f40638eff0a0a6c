package queries

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/ptr"

	"github.com/google/uuid"
)

var ErrInvalidBookingToken = errs.Authorization("invalid or expired booking token")

type BookingTokenParser interface {
	ParseBookingToken(token string) (uuid.UUID, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindFirstPage(ctx context.Context, status *string, limit int32) ([]*BookingListItem, error)
	FindKeyset(ctx context.Context, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
	// LoadAggregate rebuilds the booking and its service charges without locking.
	LoadAggregate(ctx context.Context, id uuid.UUID) (*booking.Booking, []booking.ServiceCharge, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	GetByToken(ctx context.Context, token string) (*BookingView, error)
	List(ctx context.Context, status *string, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	store  BookingReadStore
	tokens BookingTokenParser
}

func NewBookingQueries(store BookingReadStore, tokens BookingTokenParser) BookingQueries {
	return &bookingQueriesImpl{
		store:  store,
		tokens: tokens,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

// GetByToken resolves a guest access token to its booking.
func (q *bookingQueriesImpl) GetByToken(ctx context.Context, token string) (*BookingView, error) {
	id, err := q.tokens.ParseBookingToken(token)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "parse booking token"), ErrInvalidBookingToken)
	}
	return q.GetByID(ctx, id)
}

func (q *bookingQueriesImpl) List(ctx context.Context, status *string, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	if status != nil {
		st, err := booking.ParseStatus(*status)
		if err != nil {
			return nil, nil, err
		}
		status = ptr.Of(st.String())
	}

	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindFirstPage(ctx, status, int32(limit+1)) // #nosec G115 -- limit capped by ValidateLimit
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.FindKeyset(ctx, status, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
