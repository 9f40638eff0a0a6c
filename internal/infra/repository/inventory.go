package repository

import (
	"context"

	"hotel-booking-engine/internal/domain/inventory"
	"hotel-booking-engine/internal/domain/stay"
	"hotel-booking-engine/internal/infra"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InventoryWriteQueries interface {
	GetRoomTypesByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.GetRoomTypesByIDsRow, error)
	LockRoomsByType(ctx context.Context, db sqlc.DBTX, roomTypeIds []uuid.UUID) ([]uuid.UUID, error)
	LockRoomsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.LockRoomsByIDsRow, error)
	ListAvailableRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableRoomsParams) ([]sqlc.ListAvailableRoomsRow, error)
	UpdateRoomOperationalStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomOperationalStatusParams) (int64, error)
}

type InventoryRepository struct {
	queries InventoryWriteQueries
	db      sqlc.DBTX
}

func NewInventoryRepository(queries InventoryWriteQueries, db sqlc.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InventoryRepository) RoomTypesByIDs(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) ([]inventory.RoomType, error) {
	rows, err := r.queries.GetRoomTypesByIDs(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room types", err)
	}
	types := make([]inventory.RoomType, 0, len(rows))
	for _, row := range rows {
		types = append(types, inventory.RoomType{
			ID:                row.ID,
			Name:              row.Name,
			Code:              row.Code,
			BasePricePerNight: row.BasePricePerNight,
			MaxOccupancy:      int(row.MaxOccupancy),
			TotalRoomCount:    int(row.TotalRoomCount),
		})
	}
	return types, nil
}

func (r *InventoryRepository) LockRoomsOfTypes(ctx context.Context, tx sqlc.DBTX, roomTypeIDs []uuid.UUID) error {
	if _, err := r.queries.LockRoomsByType(ctx, tx, roomTypeIDs); err != nil {
		return infra.WrapRepoErr("failed to lock rooms", err)
	}
	return nil
}

func (r *InventoryRepository) LockRooms(ctx context.Context, tx sqlc.DBTX, roomIDs []uuid.UUID) ([]inventory.Room, error) {
	rows, err := r.queries.LockRoomsByIDs(ctx, tx, roomIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock rooms", err)
	}
	rooms := make([]inventory.Room, 0, len(rows))
	for _, row := range rows {
		rooms = append(rooms, inventory.Room{
			ID:                row.ID,
			RoomTypeID:        row.RoomTypeID,
			RoomNumber:        row.RoomNumber,
			OperationalStatus: inventory.OperationalStatus(row.OperationalStatus),
			BasePricePerNight: row.BasePricePerNight,
		})
	}
	return rooms, nil
}

// FreeRooms lists rooms with no overlapping booking or block for period,
// ordered by room number.
func (r *InventoryRepository) FreeRooms(ctx context.Context, tx sqlc.DBTX, period stay.Period, filter shared.RoomFilter) ([]inventory.Room, error) {
	rows, err := r.queries.ListAvailableRooms(ctx, tx, sqlc.ListAvailableRoomsParams{
		RoomTypeIds:  filter.RoomTypeIDs,
		RoomIds:      filter.RoomIDs,
		Floor:        intPtrToPgtype(filter.Floor),
		MinOccupancy: intPtrToPgtype(filter.MinOccupancy),
		CheckIn:      pgconv.DateToPgtype(period.CheckIn()),
		CheckOut:     pgconv.DateToPgtype(period.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list free rooms", err)
	}
	rooms := make([]inventory.Room, 0, len(rows))
	for _, row := range rows {
		rooms = append(rooms, inventory.Room{
			ID:                row.ID,
			RoomTypeID:        row.RoomTypeID,
			RoomNumber:        row.RoomNumber,
			Floor:             int(row.Floor),
			OperationalStatus: inventory.OperationalStatus(row.OperationalStatus),
			BasePricePerNight: row.BasePricePerNight,
		})
	}
	return rooms, nil
}

func (r *InventoryRepository) SetOperationalStatus(ctx context.Context, tx sqlc.DBTX, roomIDs []uuid.UUID, status inventory.OperationalStatus) error {
	if len(roomIDs) == 0 {
		return nil
	}
	_, err := r.queries.UpdateRoomOperationalStatus(ctx, tx, sqlc.UpdateRoomOperationalStatusParams{
		OperationalStatus: status.String(),
		Ids:               roomIDs,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	return nil
}

func intPtrToPgtype(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true} // #nosec G115 -- floor and occupancy are small
}
