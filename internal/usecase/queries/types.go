package queries

import (
	"time"

	"github.com/google/uuid"
)

type RoomTypeView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Code              string    `json:"code"`
	BasePricePerNight int64     `json:"base_price_per_night"`
	MaxOccupancy      int32     `json:"max_occupancy"`
	TotalRoomCount    int32     `json:"total_room_count"`
}

// RoomTypeAvailability answers one line of an availability request.
type RoomTypeAvailability struct {
	RoomTypeID        uuid.UUID `json:"room_type_id"`
	Name              string    `json:"name"`
	Code              string    `json:"code"`
	Quantity          int       `json:"quantity"`
	AvailableCount    int       `json:"available_count"`
	IsAvailable       bool      `json:"is_available"`
	BasePricePerNight int64     `json:"base_price_per_night"`
}

type AvailableRoomView struct {
	ID                uuid.UUID `json:"id"`
	RoomNumber        string    `json:"room_number"`
	Floor             int32     `json:"floor"`
	OperationalStatus string    `json:"operational_status"`
	RoomTypeID        uuid.UUID `json:"room_type_id"`
	RoomTypeName      string    `json:"room_type_name"`
	RoomTypeCode      string    `json:"room_type_code"`
	BasePricePerNight int64     `json:"base_price_per_night"`
	MaxOccupancy      int32     `json:"max_occupancy"`
}

type RoomFilters struct {
	RoomTypeID   *uuid.UUID
	Floor        *int
	MinOccupancy *int
}

type CustomerView struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
}

type BookingRoomView struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomNumber      string    `json:"room_number"`
	RoomTypeID      uuid.UUID `json:"room_type_id"`
	RoomTypeName    string    `json:"room_type_name"`
	PricePerNight   int64     `json:"price_per_night"`
	PlannedNights   int32     `json:"planned_nights"`
	ActualNights    *int32    `json:"actual_nights,omitempty"`
	SubTotal        int64     `json:"sub_total"`
	SettledSubTotal *int64    `json:"settled_sub_total,omitempty"`
	Status          string    `json:"status"`
	CheckInDate     time.Time `json:"check_in_date"`
	CheckOutDate    time.Time `json:"check_out_date"`
	Active          bool      `json:"active"`
}

type PaymentView struct {
	ID          uuid.UUID `json:"id"`
	Amount      int64     `json:"amount"`
	Method      string    `json:"method"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Reference   *string   `json:"reference,omitempty"`
	Note        *string   `json:"note,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
	ProcessedBy string    `json:"processed_by"`
}

type ServiceChargeView struct {
	ID            uuid.UUID  `json:"id"`
	BookingRoomID *uuid.UUID `json:"booking_room_id,omitempty"`
	Description   string     `json:"description"`
	Quantity      int32      `json:"quantity"`
	UnitPrice     int64      `json:"unit_price"`
	Amount        int64      `json:"amount"`
	CreatedAt     time.Time  `json:"created_at"`
	CreatedBy     string     `json:"created_by"`
}

type HistoryView struct {
	ChangeType string    `json:"change_type"`
	OldValue   *string   `json:"old_value,omitempty"`
	NewValue   *string   `json:"new_value,omitempty"`
	Reason     *string   `json:"reason,omitempty"`
	ChangedAt  time.Time `json:"changed_at"`
	ChangedBy  string    `json:"changed_by"`
}

// BookingView is the full read model of a booking with its ledger lines.
type BookingView struct {
	ID                 uuid.UUID           `json:"id"`
	Customer           *CustomerView       `json:"customer,omitempty"`
	Channel            string              `json:"channel"`
	Status             string              `json:"status"`
	PaymentStatus      string              `json:"payment_status"`
	CheckInDate        time.Time           `json:"check_in_date"`
	CheckOutDate       time.Time           `json:"check_out_date"`
	TotalAmount        int64               `json:"total_amount"`
	DepositAmount      int64               `json:"deposit_amount"`
	PaidAmount         int64               `json:"paid_amount"`
	FinalAmount        *int64              `json:"final_amount,omitempty"`
	SpecialRequests    string              `json:"special_requests"`
	PaymentReference   string              `json:"payment_reference"`
	PaymentDeadline    time.Time           `json:"payment_deadline"`
	CancelledAt        *time.Time          `json:"cancelled_at,omitempty"`
	CancelledBy        *string             `json:"cancelled_by,omitempty"`
	CancellationReason *string             `json:"cancellation_reason,omitempty"`
	CreatedBy          string              `json:"created_by"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
	Rooms              []BookingRoomView   `json:"rooms"`
	Payments           []PaymentView       `json:"payments"`
	ServiceCharges     []ServiceChargeView `json:"service_charges"`
	History            []HistoryView       `json:"history"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	Channel       string    `json:"channel"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CheckInDate   time.Time `json:"check_in_date"`
	CheckOutDate  time.Time `json:"check_out_date"`
	TotalAmount   int64     `json:"total_amount"`
	PaidAmount    int64     `json:"paid_amount"`
	CustomerName  *string   `json:"customer_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
