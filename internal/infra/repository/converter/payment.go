package converter

import (
	"hotel-booking-engine/internal/domain/booking"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"
)

func TransactionToCreateParams(t booking.Transaction) sqlc.CreatePaymentTransactionParams {
	return sqlc.CreatePaymentTransactionParams{
		ID:          t.ID,
		BookingID:   t.BookingID,
		Amount:      t.Amount,
		Method:      t.Method.String(),
		Type:        t.Type.String(),
		Status:      t.Status.String(),
		Reference:   pgconv.EmptyAsNull(t.Reference),
		Note:        pgconv.EmptyAsNull(t.Note),
		ProcessedAt: pgconv.TimeToPgtype(t.ProcessedAt),
		ProcessedBy: t.ProcessedBy,
	}
}

func TransactionFromRow(row sqlc.PaymentTransactions) booking.Transaction {
	return booking.Transaction{
		ID:          row.ID,
		BookingID:   row.BookingID,
		Amount:      row.Amount,
		Method:      booking.Method(row.Method),
		Type:        booking.TransactionType(row.Type),
		Status:      booking.TransactionStatus(row.Status),
		Reference:   pgconv.StringFromPgtype(row.Reference),
		Note:        pgconv.StringFromPgtype(row.Note),
		ProcessedAt: pgconv.TimeFromPgtype(row.ProcessedAt),
		ProcessedBy: row.ProcessedBy,
	}
}

func ServiceChargeToCreateParams(c booking.ServiceCharge) sqlc.CreateServiceChargeParams {
	return sqlc.CreateServiceChargeParams{
		ID:            c.ID,
		BookingID:     c.BookingID,
		BookingRoomID: pgconv.UUIDPtrToPgtype(c.BookingRoomID),
		Description:   c.Description,
		Quantity:      int32(c.Quantity), // #nosec G115 -- validated positive and small
		UnitPrice:     c.UnitPrice,
		CreatedAt:     pgconv.TimeToPgtype(c.CreatedAt),
		CreatedBy:     c.CreatedBy,
	}
}

func ServiceChargeFromRow(row sqlc.ServiceCharges) booking.ServiceCharge {
	return booking.ServiceCharge{
		ID:            row.ID,
		BookingID:     row.BookingID,
		BookingRoomID: pgconv.UUIDPtrFromPgtype(row.BookingRoomID),
		Description:   row.Description,
		Quantity:      int(row.Quantity),
		UnitPrice:     row.UnitPrice,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		CreatedBy:     row.CreatedBy,
	}
}

func HistoryToCreateParams(h booking.HistoryEntry) sqlc.CreateBookingHistoryParams {
	return sqlc.CreateBookingHistoryParams{
		BookingID:  h.BookingID,
		ChangeType: string(h.ChangeType),
		OldValue:   pgconv.EmptyAsNull(h.OldValue),
		NewValue:   pgconv.EmptyAsNull(h.NewValue),
		Reason:     pgconv.EmptyAsNull(h.Reason),
		ChangedAt:  pgconv.TimeToPgtype(h.ChangedAt),
		ChangedBy:  h.ChangedBy,
	}
}
