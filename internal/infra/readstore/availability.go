package readstore

import (
	"context"

	"hotel-booking-engine/internal/domain/inventory"
	"hotel-booking-engine/internal/domain/stay"
	"hotel-booking-engine/internal/infra"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadQueries interface {
	ListRoomTypes(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListRoomTypesRow, error)
	GetRoomTypesByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.GetRoomTypesByIDsRow, error)
	CountUnavailableRoomsByType(ctx context.Context, db sqlc.DBTX, arg sqlc.CountUnavailableRoomsByTypeParams) ([]sqlc.CountUnavailableRoomsByTypeRow, error)
	ListAvailableRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableRoomsParams) ([]sqlc.ListAvailableRoomsRow, error)
}

// AvailabilityReadStore reads the ledger straight from the pool; it never
// joins a write transaction.
type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) ListRoomTypes(ctx context.Context) ([]*queries.RoomTypeView, error) {
	rows, err := r.queries.ListRoomTypes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	result := make([]*queries.RoomTypeView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RoomTypeView{
			ID:                row.ID,
			Name:              row.Name,
			Code:              row.Code,
			BasePricePerNight: row.BasePricePerNight,
			MaxOccupancy:      row.MaxOccupancy,
			TotalRoomCount:    row.TotalRoomCount,
		}
	}
	return result, nil
}

func (r *AvailabilityReadStore) RoomTypesByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.RoomType, error) {
	rows, err := r.queries.GetRoomTypesByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room types", err)
	}
	result := make([]inventory.RoomType, len(rows))
	for i, row := range rows {
		result[i] = inventory.RoomType{
			ID:                row.ID,
			Name:              row.Name,
			Code:              row.Code,
			BasePricePerNight: row.BasePricePerNight,
			MaxOccupancy:      int(row.MaxOccupancy),
			TotalRoomCount:    int(row.TotalRoomCount),
		}
	}
	return result, nil
}

func (r *AvailabilityReadStore) CountUnavailable(ctx context.Context, roomTypeIDs []uuid.UUID, period stay.Period) (map[uuid.UUID]int, error) {
	rows, err := r.queries.CountUnavailableRoomsByType(ctx, r.db, sqlc.CountUnavailableRoomsByTypeParams{
		RoomTypeIds: roomTypeIDs,
		CheckIn:     pgconv.DateToPgtype(period.CheckIn()),
		CheckOut:    pgconv.DateToPgtype(period.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count unavailable rooms", err)
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.RoomTypeID] = int(row.UnavailableCount)
	}
	return counts, nil
}

func (r *AvailabilityReadStore) ListAvailableRooms(ctx context.Context, period stay.Period, filters queries.RoomFilters) ([]*queries.AvailableRoomView, error) {
	params := sqlc.ListAvailableRoomsParams{
		Floor:        toPgInt4(filters.Floor),
		MinOccupancy: toPgInt4(filters.MinOccupancy),
		CheckIn:      pgconv.DateToPgtype(period.CheckIn()),
		CheckOut:     pgconv.DateToPgtype(period.CheckOut()),
	}
	if filters.RoomTypeID != nil {
		params.RoomTypeIds = []uuid.UUID{*filters.RoomTypeID}
	}

	rows, err := r.queries.ListAvailableRooms(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}
	result := make([]*queries.AvailableRoomView, len(rows))
	for i, row := range rows {
		result[i] = &queries.AvailableRoomView{
			ID:                row.ID,
			RoomNumber:        row.RoomNumber,
			Floor:             row.Floor,
			OperationalStatus: row.OperationalStatus,
			RoomTypeID:        row.RoomTypeID,
			RoomTypeName:      row.RoomTypeName,
			RoomTypeCode:      row.RoomTypeCode,
			BasePricePerNight: row.BasePricePerNight,
			MaxOccupancy:      row.MaxOccupancy,
		}
	}
	return result, nil
}

func toPgInt4(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true} // #nosec G115 -- small filter values
}
