package converter

import (
	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/stay"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:               b.ID(),
		CustomerID:       pgconv.UUIDPtrToPgtype(b.CustomerID()),
		Channel:          b.Channel().String(),
		CheckInDate:      pgconv.DateToPgtype(b.Period().CheckIn()),
		CheckOutDate:     pgconv.DateToPgtype(b.Period().CheckOut()),
		TotalAmount:      b.TotalAmount(),
		DepositAmount:    b.DepositAmount(),
		PaidAmount:       b.PaidAmount(),
		Status:           b.Status().String(),
		PaymentStatus:    b.PaymentStatus().String(),
		SpecialRequests:  b.SpecialRequests(),
		PaymentReference: b.PaymentReference(),
		PaymentDeadline:  pgconv.TimeToPgtype(b.PaymentDeadline()),
		CreatedBy:        b.CreatedBy(),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func RoomLineToCreateParams(bookingID uuid.UUID, l booking.RoomLine) sqlc.CreateBookingRoomParams {
	return sqlc.CreateBookingRoomParams{
		ID:            l.ID(),
		BookingID:     bookingID,
		RoomID:        l.RoomID(),
		RoomTypeID:    l.RoomTypeID(),
		PricePerNight: l.PricePerNight(),
		PlannedNights: int32(l.PlannedNights()), // #nosec G115 -- stay length is bounded by the period check
		SubTotal:      l.SubTotal(),
		Status:        l.Status().String(),
		CheckInDate:   pgconv.DateToPgtype(l.Period().CheckIn()),
		CheckOutDate:  pgconv.DateToPgtype(l.Period().CheckOut()),
		Active:        l.Active(),
	}
}

func BookingToStateParams(b *booking.Booking) sqlc.UpdateBookingStateParams {
	return sqlc.UpdateBookingStateParams{
		Status:             b.Status().String(),
		PaymentStatus:      b.PaymentStatus().String(),
		FinalAmount:        pgconv.Int64PtrToPgtype(b.FinalAmount()),
		CancelledAt:        pgconv.TimePtrToPgtype(b.CancelledAt()),
		CancelledBy:        pgconv.StringPtrToPgtype(b.CancelledBy()),
		CancellationReason: pgconv.StringPtrToPgtype(b.CancellationReason()),
		UpdatedAt:          pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:                 b.ID(),
	}
}

func RoomLineToUpdateParams(l booking.RoomLine) sqlc.UpdateBookingRoomParams {
	params := sqlc.UpdateBookingRoomParams{
		Status:          l.Status().String(),
		SettledSubTotal: pgconv.Int64PtrToPgtype(l.SettledSubTotal()),
		CheckOutDate:    pgconv.DateToPgtype(l.Period().CheckOut()),
		Active:          l.Active(),
		ID:              l.ID(),
	}
	if n := l.ActualNights(); n != nil {
		params.ActualNights = pgtype.Int4{Int32: int32(*n), Valid: true} // #nosec G115 -- nights fit in int32
	}
	return params
}

// BookingFromRows rebuilds the aggregate from its header row and room lines.
func BookingFromRows(row sqlc.Bookings, lines []sqlc.ListBookingRoomsRow) (*booking.Booking, error) {
	period, err := stay.NewPeriod(pgconv.DateFromPgtype(row.CheckInDate), pgconv.DateFromPgtype(row.CheckOutDate))
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s has a corrupt stay period", row.ID)
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	channel, err := booking.ParseChannel(row.Channel)
	if err != nil {
		return nil, err
	}

	snap := booking.Snapshot{
		ID:                 row.ID,
		CustomerID:         pgconv.UUIDPtrFromPgtype(row.CustomerID),
		Channel:            channel,
		Period:             period,
		TotalAmount:        row.TotalAmount,
		DepositAmount:      row.DepositAmount,
		PaidAmount:         row.PaidAmount,
		FinalAmount:        pgconv.Int64PtrFromPgtype(row.FinalAmount),
		Status:             status,
		PaymentStatus:      booking.PaymentStatus(row.PaymentStatus),
		SpecialRequests:    row.SpecialRequests,
		PaymentReference:   row.PaymentReference,
		PaymentDeadline:    pgconv.TimeFromPgtype(row.PaymentDeadline),
		CancelledAt:        pgconv.TimePtrFromPgtype(row.CancelledAt),
		CancelledBy:        pgconv.StringPtrFromPgtype(row.CancelledBy),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CreatedBy:          row.CreatedBy,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
		Rooms:              make([]booking.RoomLineSnapshot, 0, len(lines)),
	}

	for _, l := range lines {
		lp, err := stay.NewPeriod(pgconv.DateFromPgtype(l.CheckInDate), pgconv.DateFromPgtype(l.CheckOutDate))
		if err != nil {
			return nil, errs.Wrapf(err, "booking room %s has a corrupt stay period", l.ID)
		}
		var actual *int
		if l.ActualNights.Valid {
			n := int(l.ActualNights.Int32)
			actual = &n
		}
		snap.Rooms = append(snap.Rooms, booking.RoomLineSnapshot{
			ID:              l.ID,
			RoomID:          l.RoomID,
			RoomTypeID:      l.RoomTypeID,
			RoomNumber:      l.RoomNumber,
			PricePerNight:   l.PricePerNight,
			PlannedNights:   int(l.PlannedNights),
			ActualNights:    actual,
			SubTotal:        l.SubTotal,
			SettledSubTotal: pgconv.Int64PtrFromPgtype(l.SettledSubTotal),
			Status:          booking.LineStatus(l.Status),
			Period:          lp,
			Active:          l.Active,
		})
	}

	return booking.Reconstruct(snap), nil
}
