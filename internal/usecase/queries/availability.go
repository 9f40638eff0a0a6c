package queries

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/inventory"
	"hotel-booking-engine/internal/domain/stay"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityReadStore interface {
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	RoomTypesByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.RoomType, error)
	// CountUnavailable returns, per room type, how many rooms cannot be sold for period.
	CountUnavailable(ctx context.Context, roomTypeIDs []uuid.UUID, period stay.Period) (map[uuid.UUID]int, error)
	ListAvailableRooms(ctx context.Context, period stay.Period, filters RoomFilters) ([]*AvailableRoomView, error)
}

type AvailabilityQueries interface {
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	CheckAvailability(ctx context.Context, reqs []inventory.Request, checkIn, checkOut time.Time) ([]*RoomTypeAvailability, error)
	ListAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, filters RoomFilters) ([]*AvailableRoomView, error)
}

type availabilityQueriesImpl struct {
	store  AvailabilityReadStore
	clock  clock.Clock
	policy shared.Policy
}

func NewAvailabilityQueries(store AvailabilityReadStore, clk clock.Clock, policy shared.Policy) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:  store,
		clock:  clk,
		policy: policy,
	}
}

func (q *availabilityQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	return q.store.ListRoomTypes(ctx)
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, reqs []inventory.Request, checkIn, checkOut time.Time) ([]*RoomTypeAvailability, error) {
	period, err := q.window(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if err := inventory.ValidateRequests(reqs); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(reqs))
	for i, r := range reqs {
		ids[i] = r.RoomTypeID
	}

	types, err := q.store.RoomTypesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]inventory.RoomType, len(types))
	for _, rt := range types {
		byID[rt.ID] = rt
	}

	unavailable, err := q.store.CountUnavailable(ctx, ids, period)
	if err != nil {
		return nil, err
	}

	result := make([]*RoomTypeAvailability, 0, len(reqs))
	for _, req := range reqs {
		rt, ok := byID[req.RoomTypeID]
		if !ok {
			return nil, inventory.ErrRoomTypeNotFound
		}
		r := inventory.Evaluate(req, rt, unavailable[rt.ID])
		result = append(result, &RoomTypeAvailability{
			RoomTypeID:        rt.ID,
			Name:              rt.Name,
			Code:              rt.Code,
			Quantity:          req.Quantity,
			AvailableCount:    r.AvailableCount,
			IsAvailable:       r.IsAvailable,
			BasePricePerNight: r.BasePricePerNight,
		})
	}
	return result, nil
}

func (q *availabilityQueriesImpl) ListAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, filters RoomFilters) ([]*AvailableRoomView, error) {
	period, err := q.window(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return q.store.ListAvailableRooms(ctx, period, filters)
}

func (q *availabilityQueriesImpl) window(checkIn, checkOut time.Time) (stay.Period, error) {
	period, err := stay.NewPeriod(checkIn, checkOut)
	if err != nil {
		return stay.Period{}, err
	}
	if err := inventory.ValidateCheckIn(period.CheckIn(), q.policy.WallClock(q.clock.Now()), q.policy.CheckInGrace); err != nil {
		return stay.Period{}, err
	}
	return period, nil
}
