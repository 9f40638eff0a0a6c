package inventory

import (
	"strings"
	"time"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidOperationalStatus = errs.Validation("invalid room operational status")
	ErrInvalidRoomType          = errs.Validation("invalid room type")
	ErrInvalidRoom              = errs.Validation("invalid room")
)

type OperationalStatus string

const (
	StatusAvailable         OperationalStatus = "available"
	StatusMaintenance       OperationalStatus = "maintenance"
	StatusOutOfService      OperationalStatus = "out_of_service"
	StatusCleaning          OperationalStatus = "cleaning"
	StatusPendingInspection OperationalStatus = "pending_inspection"
	// UI marker set at check-in, never consulted by the night ledger
	StatusOccupied OperationalStatus = "occupied"
)

func (s OperationalStatus) String() string {
	return string(s)
}

func (s OperationalStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusOutOfService, StatusCleaning, StatusPendingInspection, StatusOccupied:
		return true
	default:
		return false
	}
}

// Blocks reports whether the status takes the room out of sellable inventory.
func (s OperationalStatus) Blocks() bool {
	return s == StatusMaintenance || s == StatusOutOfService
}

func ParseOperationalStatus(s string) (OperationalStatus, error) {
	st := OperationalStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidOperationalStatus
	}
	return st, nil
}

type RoomType struct {
	ID                uuid.UUID
	Name              string
	Code              string
	BasePricePerNight int64
	MaxOccupancy      int
	TotalRoomCount    int
}

func (t RoomType) Validate() error {
	if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Code) == "" {
		return errs.Wrap(ErrInvalidRoomType, "name and code are required")
	}
	if t.BasePricePerNight < 0 || t.MaxOccupancy <= 0 || t.TotalRoomCount < 0 {
		return errs.Wrap(ErrInvalidRoomType, "price, occupancy and room count must be positive")
	}
	return nil
}

type Room struct {
	ID                uuid.UUID
	RoomTypeID        uuid.UUID
	RoomNumber        string
	Floor             int
	OperationalStatus OperationalStatus
	// snapshot of the room type price at read time
	BasePricePerNight int64
}

func (r Room) Validate() error {
	if r.RoomTypeID == uuid.Nil || strings.TrimSpace(r.RoomNumber) == "" {
		return errs.Wrap(ErrInvalidRoom, "room type and room number are required")
	}
	if !r.OperationalStatus.IsValid() {
		return ErrInvalidOperationalStatus
	}
	return nil
}

// Block is a maintenance or out-of-service window on a room.
type Block struct {
	ID     uuid.UUID
	RoomID uuid.UUID
	From   time.Time
	To     time.Time
	Status OperationalStatus
	Reason string
}
