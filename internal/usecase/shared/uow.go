package shared

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/customer"
	"hotel-booking-engine/internal/domain/inventory"
	"hotel-booking-engine/internal/domain/stay"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Inventory() InventoryRepository
	Payments() PaymentRepository
	Customers() CustomerRepository
	ServiceCharges() ServiceChargeRepository
	History() HistoryRepository
	Notifications() NotificationRepository
	DB() sqlc.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// FindForUpdate loads the aggregate and holds its row lock until commit.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateState(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// AddPaidAmount applies delta in a single UPDATE and returns the stored total.
	AddPaidAmount(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, delta int64, at time.Time) (int64, error)
	UpdateRoomLines(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	ListExpiredIDs(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]uuid.UUID, error)
	FindIDByPaymentReference(ctx context.Context, tx sqlc.DBTX, reference string) (uuid.UUID, error)
}

type InventoryRepository interface {
	RoomTypesByIDs(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) ([]inventory.RoomType, error)
	// LockRoomsOfTypes takes row locks on every room of the given types in id order.
	LockRoomsOfTypes(ctx context.Context, tx sqlc.DBTX, roomTypeIDs []uuid.UUID) error
	LockRooms(ctx context.Context, tx sqlc.DBTX, roomIDs []uuid.UUID) ([]inventory.Room, error)
	FreeRooms(ctx context.Context, tx sqlc.DBTX, period stay.Period, filter RoomFilter) ([]inventory.Room, error)
	SetOperationalStatus(ctx context.Context, tx sqlc.DBTX, roomIDs []uuid.UUID, status inventory.OperationalStatus) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t booking.Transaction) error
	FindByReference(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, reference string) (*booking.Transaction, error)
}

type CustomerRepository interface {
	FindOrCreate(ctx context.Context, tx sqlc.DBTX, p customer.Profile) (uuid.UUID, error)
}

type ServiceChargeRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c booking.ServiceCharge) error
	ListByBooking(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) ([]booking.ServiceCharge, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, entries []booking.HistoryEntry) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimPending locks due jobs, skipping rows other relays hold.
	ClaimPending(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error
}
