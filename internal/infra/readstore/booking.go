package readstore

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/repository/converter"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingDetailRow, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingRooms(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.ListBookingRoomsRow, error)
	ListPaymentTransactions(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.PaymentTransactions, error)
	ListServiceCharges(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.ServiceCharges, error)
	ListBookingHistory(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingHistory, error)
	ListBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsFirstPageParams) ([]sqlc.ListBookingsFirstPageRow, error)
	ListBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsKeysetParams) ([]sqlc.ListBookingsKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking detail", err)
	}

	rooms, err := r.queries.ListBookingRooms(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking rooms", err)
	}
	payments, err := r.queries.ListPaymentTransactions(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment transactions", err)
	}
	charges, err := r.queries.ListServiceCharges(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service charges", err)
	}
	history, err := r.queries.ListBookingHistory(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking history", err)
	}

	view := toBookingView(row)
	view.Rooms = make([]queries.BookingRoomView, len(rooms))
	for i, l := range rooms {
		view.Rooms[i] = queries.BookingRoomView{
			ID:              l.ID,
			RoomID:          l.RoomID,
			RoomNumber:      l.RoomNumber,
			RoomTypeID:      l.RoomTypeID,
			RoomTypeName:    l.RoomTypeName,
			PricePerNight:   l.PricePerNight,
			PlannedNights:   l.PlannedNights,
			ActualNights:    pgconv.Int32PtrFromPgtype(l.ActualNights),
			SubTotal:        l.SubTotal,
			SettledSubTotal: pgconv.Int64PtrFromPgtype(l.SettledSubTotal),
			Status:          l.Status,
			CheckInDate:     pgconv.DateFromPgtype(l.CheckInDate),
			CheckOutDate:    pgconv.DateFromPgtype(l.CheckOutDate),
			Active:          l.Active,
		}
	}
	view.Payments = make([]queries.PaymentView, len(payments))
	for i, p := range payments {
		view.Payments[i] = queries.PaymentView{
			ID:          p.ID,
			Amount:      p.Amount,
			Method:      p.Method,
			Type:        p.Type,
			Status:      p.Status,
			Reference:   pgconv.StringPtrFromPgtype(p.Reference),
			Note:        pgconv.StringPtrFromPgtype(p.Note),
			ProcessedAt: pgconv.TimeFromPgtype(p.ProcessedAt),
			ProcessedBy: p.ProcessedBy,
		}
	}
	view.ServiceCharges = make([]queries.ServiceChargeView, len(charges))
	for i, c := range charges {
		view.ServiceCharges[i] = queries.ServiceChargeView{
			ID:            c.ID,
			BookingRoomID: pgconv.UUIDPtrFromPgtype(c.BookingRoomID),
			Description:   c.Description,
			Quantity:      c.Quantity,
			UnitPrice:     c.UnitPrice,
			Amount:        int64(c.Quantity) * c.UnitPrice,
			CreatedAt:     pgconv.TimeFromPgtype(c.CreatedAt),
			CreatedBy:     c.CreatedBy,
		}
	}
	view.History = make([]queries.HistoryView, len(history))
	for i, h := range history {
		view.History[i] = queries.HistoryView{
			ChangeType: h.ChangeType,
			OldValue:   pgconv.StringPtrFromPgtype(h.OldValue),
			NewValue:   pgconv.StringPtrFromPgtype(h.NewValue),
			Reason:     pgconv.StringPtrFromPgtype(h.Reason),
			ChangedAt:  pgconv.TimeFromPgtype(h.ChangedAt),
			ChangedBy:  h.ChangedBy,
		}
	}
	return view, nil
}

func (r *BookingReadStore) FindFirstPage(ctx context.Context, status *string, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsFirstPage(ctx, r.db, sqlc.ListBookingsFirstPageParams{
		Status: pgconv.StringPtrToPgtype(status),
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err)
	}
	return mapBookingListRows(rows), nil
}

func (r *BookingReadStore) FindKeyset(ctx context.Context, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsKeyset(ctx, r.db, sqlc.ListBookingsKeysetParams{
		Status:    pgconv.StringPtrToPgtype(status),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err)
	}
	firstPage := make([]sqlc.ListBookingsFirstPageRow, len(rows))
	for i, row := range rows {
		firstPage[i] = sqlc.ListBookingsFirstPageRow(row)
	}
	return mapBookingListRows(firstPage), nil
}

func (r *BookingReadStore) LoadAggregate(ctx context.Context, id uuid.UUID) (*booking.Booking, []booking.ServiceCharge, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, nil, infra.WrapRepoErr("failed to get booking", err)
	}
	lines, err := r.queries.ListBookingRooms(ctx, r.db, id)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to list booking rooms", err)
	}
	b, err := converter.BookingFromRows(row, lines)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to rebuild booking", err)
	}

	rows, err := r.queries.ListServiceCharges(ctx, r.db, id)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to list service charges", err)
	}
	charges := make([]booking.ServiceCharge, len(rows))
	for i, c := range rows {
		charges[i] = converter.ServiceChargeFromRow(c)
	}
	return b, charges, nil
}

func toBookingView(row sqlc.GetBookingDetailRow) *queries.BookingView {
	view := &queries.BookingView{
		ID:                 row.ID,
		Channel:            row.Channel,
		Status:             row.Status,
		PaymentStatus:      row.PaymentStatus,
		CheckInDate:        pgconv.DateFromPgtype(row.CheckInDate),
		CheckOutDate:       pgconv.DateFromPgtype(row.CheckOutDate),
		TotalAmount:        row.TotalAmount,
		DepositAmount:      row.DepositAmount,
		PaidAmount:         row.PaidAmount,
		FinalAmount:        pgconv.Int64PtrFromPgtype(row.FinalAmount),
		SpecialRequests:    row.SpecialRequests,
		PaymentReference:   row.PaymentReference,
		PaymentDeadline:    pgconv.TimeFromPgtype(row.PaymentDeadline),
		CancelledAt:        pgconv.TimePtrFromPgtype(row.CancelledAt),
		CancelledBy:        pgconv.StringPtrFromPgtype(row.CancelledBy),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CreatedBy:          row.CreatedBy,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.CustomerID.Valid {
		view.Customer = &queries.CustomerView{
			ID:       row.CustomerID.Bytes,
			FullName: pgconv.StringFromPgtype(row.CustomerName),
			Phone:    pgconv.StringFromPgtype(row.CustomerPhone),
			Email:    pgconv.StringFromPgtype(row.CustomerEmail),
		}
	}
	return view
}

func mapBookingListRows(rows []sqlc.ListBookingsFirstPageRow) []*queries.BookingListItem {
	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingListItem{
			ID:            row.ID,
			Channel:       row.Channel,
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			CheckInDate:   pgconv.DateFromPgtype(row.CheckInDate),
			CheckOutDate:  pgconv.DateFromPgtype(row.CheckOutDate),
			TotalAmount:   row.TotalAmount,
			PaidAmount:    row.PaidAmount,
			CustomerName:  pgconv.StringPtrFromPgtype(row.CustomerName),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
