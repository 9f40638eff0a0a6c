package repository

import (
	"context"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/repository/converter"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePaymentTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentTransactionParams) error
	GetPaymentTransactionByReference(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPaymentTransactionByReferenceParams) (sqlc.PaymentTransactions, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, t booking.Transaction) error {
	if err := r.queries.CreatePaymentTransaction(ctx, tx, converter.TransactionToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create payment transaction", err)
	}
	return nil
}

// FindByReference returns nil without error when the reference is unused.
func (r *PaymentRepository) FindByReference(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, reference string) (*booking.Transaction, error) {
	row, err := r.queries.GetPaymentTransactionByReference(ctx, tx, sqlc.GetPaymentTransactionByReferenceParams{
		BookingID: bookingID,
		Reference: pgconv.StringToPgtype(reference),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get payment transaction", err)
	}
	t := converter.TransactionFromRow(row)
	return &t, nil
}
