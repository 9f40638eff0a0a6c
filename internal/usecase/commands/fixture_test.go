//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/metrics"
	"hotel-booking-engine/internal/usecase/shared"
	"hotel-booking-engine/tests/common/builder"
	commandsmock "hotel-booking-engine/tests/mock/commands"
	sharedmock "hotel-booking-engine/tests/mock/shared"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	nov20 = time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)
	dec1  = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	dec4  = time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC)
)

func testPolicy() shared.Policy {
	return shared.Policy{
		PaymentWindow:   15 * time.Minute,
		HoldWarning:     10 * time.Minute,
		CheckInGrace:    24 * time.Hour,
		GuestTokenTTL:   30 * 24 * time.Hour,
		Location:        time.UTC,
		ReferencePrefix: "HB",
		SweepBatchSize:  50,
	}
}

// txFixture wires a unit of work whose Within runs the callback against mocked
// repositories.
type txFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	bookings      *sharedmock.MockBookingRepository
	inventory     *sharedmock.MockInventoryRepository
	payments      *sharedmock.MockPaymentRepository
	customers     *sharedmock.MockCustomerRepository
	charges       *sharedmock.MockServiceChargeRepository
	history       *sharedmock.MockHistoryRepository
	notifications *sharedmock.MockNotificationRepository
	gateway       *commandsmock.MockPaymentGateway
	tokens        *commandsmock.MockBookingTokens
	publisher     *commandsmock.MockEventPublisher
	clock         *clock.MockClock
	metrics       *metrics.Metrics
}

func newTxFixture(ctrl *gomock.Controller) *txFixture {
	f := &txFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		inventory:     sharedmock.NewMockInventoryRepository(ctrl),
		payments:      sharedmock.NewMockPaymentRepository(ctrl),
		customers:     sharedmock.NewMockCustomerRepository(ctrl),
		charges:       sharedmock.NewMockServiceChargeRepository(ctrl),
		history:       sharedmock.NewMockHistoryRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		gateway:       commandsmock.NewMockPaymentGateway(ctrl),
		tokens:        commandsmock.NewMockBookingTokens(ctrl),
		publisher:     commandsmock.NewMockEventPublisher(ctrl),
		clock:         clock.NewMockClock(nov20),
		metrics:       metrics.NewNop(),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Inventory().Return(f.inventory).AnyTimes()
	f.tx.EXPECT().Payments().Return(f.payments).AnyTimes()
	f.tx.EXPECT().Customers().Return(f.customers).AnyTimes()
	f.tx.EXPECT().ServiceCharges().Return(f.charges).AnyTimes()
	f.tx.EXPECT().History().Return(f.history).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	return f
}

// expectEvents records the kinds of every queued outbox job.
func (f *txFixture) expectEvents() *[]string {
	kinds := &[]string{}
	f.notifications.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, kind, _ string, _ []byte, _ time.Time) error {
			*kinds = append(*kinds, kind)
			return nil
		}).AnyTimes()
	f.history.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return kinds
}

// expectPersist accepts the state writes every mutating command performs.
func (f *txFixture) expectPersist() {
	f.bookings.EXPECT().UpdateState(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.bookings.EXPECT().UpdateRoomLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// pendingBooking is a three night online hold, Dec 1-4 at 1,000,000 a night,
// created at nov20 with a 15 minute payment window.
func pendingBooking(t *testing.T, mutate ...func(*builder.BookingBuilder)) *booking.Booking {
	t.Helper()
	bb := builder.NewBookingBuilder()
	for _, m := range mutate {
		bb.With(m)
	}
	b, err := bb.BuildDomain()
	require.NoError(t, err)
	b.PendingHistory()
	return b
}

// confirmedBooking has the 900,000 deposit on file.
func confirmedBooking(t *testing.T, mutate ...func(*builder.BookingBuilder)) *booking.Booking {
	t.Helper()
	b := pendingBooking(t, mutate...)
	_, err := b.ApplyPayment(booking.PaymentParams{
		Amount:      b.DepositAmount(),
		Method:      booking.MethodBankTransfer,
		Type:        booking.TransactionDeposit,
		Reference:   "FT-DEPOSIT",
		ProcessedBy: "system",
		Now:         nov20.Add(5 * time.Minute),
	})
	require.NoError(t, err)
	b.PendingHistory()
	return b
}
