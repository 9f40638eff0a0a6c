package repository

import (
	"context"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/repository/converter"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
)

type HistoryWriteQueries interface {
	CreateBookingHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingHistoryParams) error
}

type HistoryRepository struct {
	queries HistoryWriteQueries
	db      sqlc.DBTX
}

func NewHistoryRepository(queries HistoryWriteQueries, db sqlc.DBTX) *HistoryRepository {
	return &HistoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HistoryRepository) Append(ctx context.Context, tx sqlc.DBTX, entries []booking.HistoryEntry) error {
	for _, e := range entries {
		if err := r.queries.CreateBookingHistory(ctx, tx, converter.HistoryToCreateParams(e)); err != nil {
			return infra.WrapRepoErr("failed to append booking history", err)
		}
	}
	return nil
}
