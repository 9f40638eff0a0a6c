package repository

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/repository/converter"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	CreateBookingRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingRoomParams) error
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingRooms(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.ListBookingRoomsRow, error)
	UpdateBookingState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStateParams) (int64, error)
	UpdateBookingRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingRoomParams) (int64, error)
	AddBookingPaidAmount(ctx context.Context, db sqlc.DBTX, arg sqlc.AddBookingPaidAmountParams) (int64, error)
	ListExpiredBookingIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiredBookingIDsParams) ([]uuid.UUID, error)
	GetBookingIDByPaymentReference(ctx context.Context, db sqlc.DBTX, paymentReference string) (uuid.UUID, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the booking header and every room line. An overlapping active
// line surfaces as KindExclusionViolated.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	for _, line := range b.Rooms() {
		if err := r.queries.CreateBookingRoom(ctx, tx, converter.RoomLineToCreateParams(b.ID(), line)); err != nil {
			return infra.WrapRepoErr("failed to create booking room", err)
		}
	}
	return nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	lines, err := r.queries.ListBookingRooms(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking rooms", err)
	}
	b, err := converter.BookingFromRows(row, lines)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rebuild booking", err)
	}
	return b, nil
}

func (r *BookingRepository) UpdateState(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingState(ctx, tx, converter.BookingToStateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) AddPaidAmount(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, delta int64, at time.Time) (int64, error) {
	paid, err := r.queries.AddBookingPaidAmount(ctx, tx, sqlc.AddBookingPaidAmountParams{
		Delta:     delta,
		UpdatedAt: pgconv.TimeToPgtype(at),
		ID:        id,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to add paid amount", err)
	}
	return paid, nil
}

func (r *BookingRepository) UpdateRoomLines(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	for _, line := range b.Rooms() {
		n, err := r.queries.UpdateBookingRoom(ctx, tx, converter.RoomLineToUpdateParams(line))
		if err != nil {
			return infra.WrapRepoErr("failed to update booking room", err)
		}
		if n == 0 {
			return infra.WrapRepoErr("booking room not found", nil, infra.KindNotFound)
		}
	}
	return nil
}

func (r *BookingRepository) ListExpiredIDs(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListExpiredBookingIDs(ctx, tx, sqlc.ListExpiredBookingIDsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired bookings", err)
	}
	return ids, nil
}

func (r *BookingRepository) FindIDByPaymentReference(ctx context.Context, tx sqlc.DBTX, reference string) (uuid.UUID, error) {
	id, err := r.queries.GetBookingIDByPaymentReference(ctx, tx, reference)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to find booking by payment reference", err)
	}
	return id, nil
}
