//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/stay"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	CustomerID *uuid.UUID
	Channel    booking.Channel
	CheckIn    time.Time
	CheckOut   time.Time
	Prices     []int64
	Reference  string
	CreatedBy  string
	Now        time.Time
}

// NewBookingBuilder defaults to a three night online stay in one room.
func NewBookingBuilder() *BookingBuilder {
	customerID := uuid.New()
	return &BookingBuilder{
		ID:         uuid.New(),
		CustomerID: &customerID,
		Channel:    booking.ChannelOnline,
		CheckIn:    time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC),
		Prices:     []int64{1_000_000},
		Reference:  "HBTEST0001",
		CreatedBy:  "guest",
		Now:        time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := stay.NewPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	rooms := make([]booking.Allocation, 0, len(b.Prices))
	for i, price := range b.Prices {
		rooms = append(rooms, booking.Allocation{
			RoomID:        uuid.New(),
			RoomTypeID:    uuid.New(),
			RoomNumber:    roomNumber(i),
			PricePerNight: price,
		})
	}
	return booking.NewBooking(booking.NewParams{
		ID:               b.ID,
		CustomerID:       b.CustomerID,
		Channel:          b.Channel,
		Period:           period,
		Rooms:            rooms,
		PaymentReference: b.Reference,
		CreatedBy:        b.CreatedBy,
		Now:              b.Now,
	})
}

// BuildInfra returns the rows a freshly created booking is stored as.
func (b *BookingBuilder) BuildInfra() (sqlc.Bookings, []sqlc.ListBookingRoomsRow, error) {
	dom, err := b.BuildDomain()
	if err != nil {
		return sqlc.Bookings{}, nil, err
	}

	row := sqlc.Bookings{
		ID:               dom.ID(),
		CustomerID:       pgconv.UUIDPtrToPgtype(dom.CustomerID()),
		Channel:          dom.Channel().String(),
		CheckInDate:      pgconv.DateToPgtype(b.CheckIn),
		CheckOutDate:     pgconv.DateToPgtype(b.CheckOut),
		TotalAmount:      dom.TotalAmount(),
		DepositAmount:    dom.DepositAmount(),
		PaidAmount:       dom.PaidAmount(),
		Status:           dom.Status().String(),
		PaymentStatus:    dom.PaymentStatus().String(),
		PaymentReference: dom.PaymentReference(),
		PaymentDeadline:  pgconv.TimeToPgtype(dom.PaymentDeadline()),
		CreatedBy:        dom.CreatedBy(),
		CreatedAt:        pgconv.TimeToPgtype(dom.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(dom.UpdatedAt()),
	}

	lines := make([]sqlc.ListBookingRoomsRow, 0, len(dom.Rooms()))
	for _, l := range dom.Rooms() {
		lines = append(lines, sqlc.ListBookingRoomsRow{
			ID:            l.ID(),
			BookingID:     dom.ID(),
			RoomID:        l.RoomID(),
			RoomTypeID:    l.RoomTypeID(),
			RoomNumber:    l.RoomNumber(),
			RoomTypeName:  "Deluxe",
			PricePerNight: l.PricePerNight(),
			PlannedNights: int32(l.PlannedNights()), // #nosec G115
			SubTotal:      l.SubTotal(),
			Status:        l.Status().String(),
			CheckInDate:   pgconv.DateToPgtype(b.CheckIn),
			CheckOutDate:  pgconv.DateToPgtype(b.CheckOut),
			Active:        l.Active(),
		})
	}
	return row, lines, nil
}

func roomNumber(i int) string {
	return strconv.Itoa(101 + i)
}
