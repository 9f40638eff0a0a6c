package request

import (
	"strings"
	"time"

	"hotel-booking-engine/internal/domain/inventory"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type StayDates struct {
	CheckIn  string `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" binding:"required,datetime=2006-01-02"`
}

// Parse returns the dates as midnight UTC. Ordering is checked by the domain.
func (d StayDates) Parse() (time.Time, time.Time, error) {
	in, err := time.Parse(DateLayout, d.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Validationf("check_in %q is not a date", d.CheckIn)
	}
	out, err := time.Parse(DateLayout, d.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Validationf("check_out %q is not a date", d.CheckOut)
	}
	return in, out, nil
}

type RoomTypeQuantity struct {
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1,max=50"`
}

func toInventoryRequests(rooms []RoomTypeQuantity) []inventory.Request {
	out := make([]inventory.Request, len(rooms))
	for i, r := range rooms {
		out[i] = inventory.Request{RoomTypeID: r.RoomTypeID, Quantity: r.Quantity}
	}
	return out
}

type CheckAvailabilityRequest struct {
	StayDates
	Rooms []RoomTypeQuantity `json:"rooms" binding:"required,min=1,dive"`
}

func (r CheckAvailabilityRequest) Requests() []inventory.Request {
	return toInventoryRequests(r.Rooms)
}

type GuestRequest struct {
	FullName     string  `json:"full_name" binding:"required,max=200"`
	Phone        string  `json:"phone" binding:"required,max=20"`
	Email        string  `json:"email" binding:"required,email,max=254"`
	IdentityCard *string `json:"identity_card,omitempty" binding:"omitempty,max=50"`
	Address      *string `json:"address,omitempty" binding:"omitempty,max=500"`
}

func (g GuestRequest) ToGuestInfo() commands.GuestInfo {
	return commands.GuestInfo{
		FullName:     strings.TrimSpace(g.FullName),
		Phone:        strings.TrimSpace(g.Phone),
		Email:        strings.TrimSpace(g.Email),
		IdentityCard: trimmed(g.IdentityCard),
		Address:      trimmed(g.Address),
	}
}

type CreateOnlineBookingRequest struct {
	StayDates
	Guest           GuestRequest       `json:"guest" binding:"required"`
	Rooms           []RoomTypeQuantity `json:"rooms" binding:"required,min=1,dive"`
	SpecialRequests string             `json:"special_requests" binding:"max=1000"`
}

func (r CreateOnlineBookingRequest) ToCommand() (commands.OnlineBookingRequest, error) {
	in, out, err := r.Parse()
	if err != nil {
		return commands.OnlineBookingRequest{}, err
	}
	return commands.OnlineBookingRequest{
		Guest:           r.Guest.ToGuestInfo(),
		CheckIn:         in,
		CheckOut:        out,
		Rooms:           toInventoryRequests(r.Rooms),
		SpecialRequests: strings.TrimSpace(r.SpecialRequests),
	}, nil
}

type OfflineRoomRequest struct {
	RoomID        uuid.UUID `json:"room_id" binding:"required"`
	PricePerNight *int64    `json:"price_per_night,omitempty" binding:"omitempty,min=0"`
}

type CreateOfflineBookingRequest struct {
	StayDates
	Guest           GuestRequest         `json:"guest" binding:"required"`
	Rooms           []OfflineRoomRequest `json:"rooms" binding:"required,min=1,dive"`
	SpecialRequests string               `json:"special_requests" binding:"max=1000"`
}

func (r CreateOfflineBookingRequest) ToCommand() (commands.OfflineBookingRequest, error) {
	in, out, err := r.Parse()
	if err != nil {
		return commands.OfflineBookingRequest{}, err
	}
	rooms := make([]commands.OfflineRoom, len(r.Rooms))
	for i, room := range r.Rooms {
		rooms[i] = commands.OfflineRoom{RoomID: room.RoomID, PricePerNight: room.PricePerNight}
	}
	return commands.OfflineBookingRequest{
		Guest:           r.Guest.ToGuestInfo(),
		CheckIn:         in,
		CheckOut:        out,
		Rooms:           rooms,
		SpecialRequests: strings.TrimSpace(r.SpecialRequests),
	}, nil
}

type RecordPaymentRequest struct {
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Method    string `json:"method" binding:"required,payment_method"`
	Type      string `json:"type" binding:"required,payment_type"`
	Reference string `json:"reference" binding:"max=100"`
	Note      string `json:"note" binding:"max=500"`
}

func (r RecordPaymentRequest) ToInput(bookingID uuid.UUID) commands.RecordPaymentInput {
	return commands.RecordPaymentInput{
		BookingID: bookingID,
		Amount:    r.Amount,
		Method:    r.Method,
		Type:      r.Type,
		Reference: strings.TrimSpace(r.Reference),
		Note:      strings.TrimSpace(r.Note),
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ServiceChargeRequest struct {
	BookingRoomID *uuid.UUID `json:"booking_room_id,omitempty"`
	Description   string     `json:"description" binding:"required,max=200"`
	Quantity      int        `json:"quantity" binding:"required,min=1"`
	UnitPrice     int64      `json:"unit_price" binding:"min=0"`
}

func (r ServiceChargeRequest) ToInput(bookingID uuid.UUID) commands.ServiceChargeInput {
	return commands.ServiceChargeInput{
		BookingID:     bookingID,
		BookingRoomID: r.BookingRoomID,
		Description:   r.Description,
		Quantity:      r.Quantity,
		UnitPrice:     r.UnitPrice,
	}
}

type CheckoutRequest struct {
	// RFC 3339 instant; defaults to now
	Departure *time.Time `json:"departure,omitempty"`
	Method    string     `json:"method" binding:"required,payment_method"`
	Reference string     `json:"reference" binding:"max=100"`
	Note      string     `json:"note" binding:"max=500"`
}

func (r CheckoutRequest) ToInput(bookingID uuid.UUID) commands.CheckoutInput {
	return commands.CheckoutInput{
		BookingID: bookingID,
		Departure: r.Departure,
		Method:    r.Method,
		Reference: strings.TrimSpace(r.Reference),
		Note:      strings.TrimSpace(r.Note),
	}
}

// PaymentWebhookRequest is the bank transfer notification pushed by the
// payment gateway.
type PaymentWebhookRequest struct {
	ID              int64  `json:"id"`
	Gateway         string `json:"gateway"`
	TransactionDate string `json:"transaction_date"`
	AccountNumber   string `json:"account_number"`
	// payment reference detected by the gateway, if any
	Code           *string `json:"code"`
	Content        string  `json:"content"`
	TransferType   string  `json:"transfer_type" binding:"required,oneof=in out"`
	TransferAmount int64   `json:"transfer_amount" binding:"required,gt=0"`
	ReferenceCode  string  `json:"reference_code" binding:"max=100"`
	// gateway method code; bank transfer when empty
	Method string `json:"method"`
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
