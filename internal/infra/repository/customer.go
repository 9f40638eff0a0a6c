package repository

import (
	"context"

	"hotel-booking-engine/internal/domain/customer"
	"hotel-booking-engine/internal/infra"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CustomerWriteQueries interface {
	UpsertCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCustomerParams) (uuid.UUID, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

// FindOrCreate resolves the guest by (phone, email), refreshing the stored name
// and optional fields when the guest already exists.
func (r *CustomerRepository) FindOrCreate(ctx context.Context, tx sqlc.DBTX, p customer.Profile) (uuid.UUID, error) {
	id, err := r.queries.UpsertCustomer(ctx, tx, sqlc.UpsertCustomerParams{
		FullName:     p.FullName,
		Phone:        p.Phone,
		Email:        p.Email,
		IdentityCard: pgconv.StringPtrToPgtype(p.IdentityCard),
		Address:      pgconv.StringPtrToPgtype(p.Address),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert customer", err)
	}
	return id, nil
}
