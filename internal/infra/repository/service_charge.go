package repository

import (
	"context"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/repository/converter"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ServiceChargeWriteQueries interface {
	CreateServiceCharge(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceChargeParams) error
	ListServiceCharges(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.ServiceCharges, error)
}

type ServiceChargeRepository struct {
	queries ServiceChargeWriteQueries
	db      sqlc.DBTX
}

func NewServiceChargeRepository(queries ServiceChargeWriteQueries, db sqlc.DBTX) *ServiceChargeRepository {
	return &ServiceChargeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceChargeRepository) Create(ctx context.Context, tx sqlc.DBTX, c booking.ServiceCharge) error {
	if err := r.queries.CreateServiceCharge(ctx, tx, converter.ServiceChargeToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create service charge", err)
	}
	return nil
}

func (r *ServiceChargeRepository) ListByBooking(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) ([]booking.ServiceCharge, error) {
	rows, err := r.queries.ListServiceCharges(ctx, tx, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service charges", err)
	}
	charges := make([]booking.ServiceCharge, 0, len(rows))
	for _, row := range rows {
		charges = append(charges, converter.ServiceChargeFromRow(row))
	}
	return charges, nil
}
