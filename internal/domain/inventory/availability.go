package inventory

import (
	"sort"
	"strconv"
	"time"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoRequests        = errs.Validation("at least one room request is required")
	ErrInvalidQuantity   = errs.Validation("quantity must be positive")
	ErrDuplicateRoomType = errs.Validation("room type requested more than once")
	ErrCheckInInPast     = errs.Validation("check-in date is in the past")
	ErrRoomTypeNotFound  = errs.NotFound("room type not found")
	ErrRoomNotFound      = errs.NotFound("room not found")
	ErrNotEnoughRooms    = errs.AvailabilityConflict("not enough rooms available")
	ErrRoomUnavailable   = errs.AvailabilityConflict("room is no longer available")
)

type Request struct {
	RoomTypeID uuid.UUID
	Quantity   int
}

type Result struct {
	RoomTypeID        uuid.UUID
	AvailableCount    int
	IsAvailable       bool
	BasePricePerNight int64
}

func ValidateRequests(reqs []Request) error {
	if len(reqs) == 0 {
		return ErrNoRequests
	}
	seen := make(map[uuid.UUID]struct{}, len(reqs))
	for _, r := range reqs {
		if r.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if _, dup := seen[r.RoomTypeID]; dup {
			return ErrDuplicateRoomType
		}
		seen[r.RoomTypeID] = struct{}{}
	}
	return nil
}

// ValidateCheckIn rejects check-in dates older than now minus grace. checkIn is
// a stay date and now a wall-clock instant in the hotel zone.
func ValidateCheckIn(checkIn, now time.Time, grace time.Duration) error {
	if checkIn.Before(now.Add(-grace)) {
		return ErrCheckInInPast
	}
	return nil
}

// Evaluate computes availability for one room type given how many of its rooms
// are unavailable in the window.
func Evaluate(req Request, rt RoomType, unavailable int) Result {
	count := rt.TotalRoomCount - unavailable
	if count < 0 {
		count = 0
	}
	return Result{
		RoomTypeID:        rt.ID,
		AvailableCount:    count,
		IsAvailable:       count >= req.Quantity,
		BasePricePerNight: rt.BasePricePerNight,
	}
}

// PickRooms chooses qty rooms from free, lowest room number first.
func PickRooms(free []Room, qty int) ([]Room, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	if len(free) < qty {
		return nil, ErrNotEnoughRooms
	}
	sorted := make([]Room, len(free))
	copy(sorted, free)
	SortByRoomNumber(sorted)
	return sorted[:qty], nil
}

// SortByRoomNumber orders numerically when both numbers parse, lexically
// otherwise, and by id on ties.
func SortByRoomNumber(rooms []Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		a, b := rooms[i], rooms[j]
		if a.RoomNumber != b.RoomNumber {
			return lessRoomNumber(a.RoomNumber, b.RoomNumber)
		}
		return a.ID.String() < b.ID.String()
	})
}

func lessRoomNumber(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
