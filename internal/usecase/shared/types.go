package shared

import (
	"time"

	"hotel-booking-engine/internal/domain/stay"

	"github.com/google/uuid"
)

// RoomFilter narrows free-room lookups. Empty slices and nil pointers match all.
type RoomFilter struct {
	RoomTypeIDs  []uuid.UUID
	RoomIDs      []uuid.UUID
	Floor        *int
	MinOccupancy *int
}

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}

// Policy holds the booking rules that vary per deployment.
type Policy struct {
	PaymentWindow   time.Duration
	HoldWarning     time.Duration
	CheckInGrace    time.Duration
	GuestTokenTTL   time.Duration
	Location        *time.Location
	ReferencePrefix string
	SweepBatchSize  int32
}

// WallClock expresses now in the hotel zone so it compares with stay dates.
func (p Policy) WallClock(now time.Time) time.Time {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	return stay.WallClock(now, loc)
}
