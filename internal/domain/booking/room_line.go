package booking

import (
	"hotel-booking-engine/internal/domain/stay"

	"github.com/google/uuid"
)

// RoomLine is one room held by a booking. pricePerNight is a snapshot taken
// at reservation time; actualNights is written once at checkout.
type RoomLine struct {
	id              uuid.UUID
	roomID          uuid.UUID
	roomTypeID      uuid.UUID
	roomNumber      string
	pricePerNight   int64
	plannedNights   int
	actualNights    *int
	subTotal        int64
	settledSubTotal *int64
	status          LineStatus
	period          stay.Period
	active          bool
}

type RoomLineSnapshot struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	RoomTypeID      uuid.UUID
	RoomNumber      string
	PricePerNight   int64
	PlannedNights   int
	ActualNights    *int
	SubTotal        int64
	SettledSubTotal *int64
	Status          LineStatus
	Period          stay.Period
	Active          bool
}

func reconstructLine(s RoomLineSnapshot) *RoomLine {
	return &RoomLine{
		id:              s.ID,
		roomID:          s.RoomID,
		roomTypeID:      s.RoomTypeID,
		roomNumber:      s.RoomNumber,
		pricePerNight:   s.PricePerNight,
		plannedNights:   s.PlannedNights,
		actualNights:    s.ActualNights,
		subTotal:        s.SubTotal,
		settledSubTotal: s.SettledSubTotal,
		status:          s.Status,
		period:          s.Period,
		active:          s.Active,
	}
}

func (l RoomLine) ID() uuid.UUID           { return l.id }
func (l RoomLine) RoomID() uuid.UUID       { return l.roomID }
func (l RoomLine) RoomTypeID() uuid.UUID   { return l.roomTypeID }
func (l RoomLine) RoomNumber() string      { return l.roomNumber }
func (l RoomLine) PricePerNight() int64    { return l.pricePerNight }
func (l RoomLine) PlannedNights() int      { return l.plannedNights }
func (l RoomLine) ActualNights() *int      { return l.actualNights }
func (l RoomLine) SubTotal() int64         { return l.subTotal }
func (l RoomLine) SettledSubTotal() *int64 { return l.settledSubTotal }
func (l RoomLine) Status() LineStatus      { return l.status }
func (l RoomLine) Period() stay.Period     { return l.period }
func (l RoomLine) Active() bool            { return l.active }
