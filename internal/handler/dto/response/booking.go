package response

import (
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

type RoomTypeAvailabilityResponse struct {
	RoomTypeID        string `json:"room_type_id"`
	Name              string `json:"name"`
	Code              string `json:"code"`
	Quantity          int    `json:"quantity"`
	AvailableCount    int    `json:"available_count"`
	IsAvailable       bool   `json:"is_available"`
	BasePricePerNight int64  `json:"base_price_per_night"`
}

type AvailabilityResponse struct {
	CheckIn      string                          `json:"check_in"`
	CheckOut     string                          `json:"check_out"`
	AllAvailable bool                            `json:"all_available"`
	RoomTypes    []*RoomTypeAvailabilityResponse `json:"room_types"`
}

func FromAvailability(checkIn, checkOut time.Time, lines []*queries.RoomTypeAvailability) *AvailabilityResponse {
	res := &AvailabilityResponse{
		CheckIn:      checkIn.Format(dateLayout),
		CheckOut:     checkOut.Format(dateLayout),
		AllAvailable: true,
		RoomTypes:    make([]*RoomTypeAvailabilityResponse, len(lines)),
	}
	for i, l := range lines {
		res.RoomTypes[i] = &RoomTypeAvailabilityResponse{
			RoomTypeID:        l.RoomTypeID.String(),
			Name:              l.Name,
			Code:              l.Code,
			Quantity:          l.Quantity,
			AvailableCount:    l.AvailableCount,
			IsAvailable:       l.IsAvailable,
			BasePricePerNight: l.BasePricePerNight,
		}
		res.AllAvailable = res.AllAvailable && l.IsAvailable
	}
	return res
}

type PaymentInstructionResponse struct {
	Reference   string `json:"reference"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	PaymentURL  string `json:"payment_url"`
	QRPayload   string `json:"qr_payload"`
}

type AllocatedRoomResponse struct {
	BookingRoomID string `json:"booking_room_id"`
	RoomID        string `json:"room_id"`
	RoomTypeID    string `json:"room_type_id"`
	RoomNumber    string `json:"room_number"`
	PricePerNight int64  `json:"price_per_night"`
	Nights        int    `json:"nights"`
	SubTotal      int64  `json:"sub_total"`
}

type CreateBookingResponse struct {
	BookingID        string                      `json:"booking_id"`
	Status           string                      `json:"status"`
	PaymentStatus    string                      `json:"payment_status"`
	CheckIn          string                      `json:"check_in"`
	CheckOut         string                      `json:"check_out"`
	TotalAmount      int64                       `json:"total_amount"`
	DepositAmount    int64                       `json:"deposit_amount"`
	PaymentReference string                      `json:"payment_reference"`
	PaymentDeadline  time.Time                   `json:"payment_deadline"`
	HoldWarningAt    time.Time                   `json:"hold_warning_at"`
	AccessToken      string                      `json:"access_token"`
	Payment          *PaymentInstructionResponse `json:"payment,omitempty"`
	Rooms            []*AllocatedRoomResponse    `json:"rooms"`
}

func FromCreateBooking(r *commands.CreateBookingResult) *CreateBookingResponse {
	res := &CreateBookingResponse{
		BookingID:        r.BookingID.String(),
		Status:           string(r.Status),
		PaymentStatus:    string(r.PaymentStatus),
		CheckIn:          r.CheckIn.Format(dateLayout),
		CheckOut:         r.CheckOut.Format(dateLayout),
		TotalAmount:      r.TotalAmount,
		DepositAmount:    r.DepositAmount,
		PaymentReference: r.PaymentReference,
		PaymentDeadline:  r.PaymentDeadline,
		HoldWarningAt:    r.HoldWarningAt,
		AccessToken:      r.AccessToken,
		Rooms:            make([]*AllocatedRoomResponse, len(r.Rooms)),
	}
	if r.Payment.Reference != "" {
		res.Payment = &PaymentInstructionResponse{}
		_ = copier.Copy(res.Payment, &r.Payment)
	}
	for i, room := range r.Rooms {
		res.Rooms[i] = &AllocatedRoomResponse{
			BookingRoomID: room.BookingRoomID.String(),
			RoomID:        room.RoomID.String(),
			RoomTypeID:    room.RoomTypeID.String(),
			RoomNumber:    room.RoomNumber,
			PricePerNight: room.PricePerNight,
			Nights:        room.Nights,
			SubTotal:      room.SubTotal,
		}
	}
	return res
}

type TransactionResponse struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount"`
	Method      string    `json:"method"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Reference   string    `json:"reference,omitempty"`
	Note        string    `json:"note,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
	ProcessedBy string    `json:"processed_by"`
}

func FromTransaction(t *booking.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}
	return &TransactionResponse{
		ID:          t.ID.String(),
		Amount:      t.Amount,
		Method:      string(t.Method),
		Type:        string(t.Type),
		Status:      string(t.Status),
		Reference:   t.Reference,
		Note:        t.Note,
		ProcessedAt: t.ProcessedAt,
		ProcessedBy: t.ProcessedBy,
	}
}

type PaymentResponse struct {
	BookingID     string               `json:"booking_id"`
	Status        string               `json:"status"`
	PaymentStatus string               `json:"payment_status"`
	PaidAmount    int64                `json:"paid_amount"`
	Duplicate     bool                 `json:"duplicate"`
	Transaction   *TransactionResponse `json:"transaction,omitempty"`
}

func FromPayment(r *commands.PaymentResult) *PaymentResponse {
	return &PaymentResponse{
		BookingID:     r.BookingID.String(),
		Status:        string(r.Status),
		PaymentStatus: string(r.PaymentStatus),
		PaidAmount:    r.PaidAmount,
		Duplicate:     r.Duplicate,
		Transaction:   FromTransaction(r.Transaction),
	}
}

type CancelResponse struct {
	BookingID string               `json:"booking_id"`
	Status    string               `json:"status"`
	Refund    *TransactionResponse `json:"refund,omitempty"`
}

func FromCancel(r *commands.CancelResult) *CancelResponse {
	return &CancelResponse{
		BookingID: r.BookingID.String(),
		Status:    string(r.Status),
		Refund:    FromTransaction(r.Refund),
	}
}

type ServiceChargeResponse struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"booking_id"`
	BookingRoomID *string   `json:"booking_room_id,omitempty"`
	Description   string    `json:"description"`
	Quantity      int       `json:"quantity"`
	UnitPrice     int64     `json:"unit_price"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by"`
}

func FromServiceCharge(c booking.ServiceCharge) *ServiceChargeResponse {
	res := &ServiceChargeResponse{
		ID:          c.ID.String(),
		BookingID:   c.BookingID.String(),
		Description: c.Description,
		Quantity:    c.Quantity,
		UnitPrice:   c.UnitPrice,
		Amount:      c.Amount(),
		CreatedAt:   c.CreatedAt,
		CreatedBy:   c.CreatedBy,
	}
	if c.BookingRoomID != nil {
		id := c.BookingRoomID.String()
		res.BookingRoomID = &id
	}
	return res
}

type SettlementLineResponse struct {
	BookingRoomID string `json:"booking_room_id"`
	RoomID        string `json:"room_id"`
	RoomNumber    string `json:"room_number"`
	PricePerNight int64  `json:"price_per_night"`
	PlannedNights int    `json:"planned_nights"`
	Nights        int    `json:"nights"`
	SubTotal      int64  `json:"sub_total"`
}

type SettlementResponse struct {
	Departure      time.Time                 `json:"departure"`
	Lines          []*SettlementLineResponse `json:"lines"`
	ServiceCharges []*ServiceChargeResponse  `json:"service_charges"`
	RoomTotal      int64                     `json:"room_total"`
	ServiceTotal   int64                     `json:"service_total"`
	GrandTotal     int64                     `json:"grand_total"`
	PaidAmount     int64                     `json:"paid_amount"`
	AmountDue      int64                     `json:"amount_due"`
	Overpaid       int64                     `json:"overpaid"`
}

func FromSettlement(s *booking.Settlement) *SettlementResponse {
	res := &SettlementResponse{
		Departure:      s.Departure,
		Lines:          make([]*SettlementLineResponse, len(s.Lines)),
		ServiceCharges: make([]*ServiceChargeResponse, len(s.Charges)),
		RoomTotal:      s.RoomTotal,
		ServiceTotal:   s.ServiceTotal,
		GrandTotal:     s.GrandTotal,
		PaidAmount:     s.PaidAmount,
		AmountDue:      s.AmountDue,
		Overpaid:       s.Overpaid,
	}
	for i, l := range s.Lines {
		res.Lines[i] = &SettlementLineResponse{
			BookingRoomID: l.BookingRoomID.String(),
			RoomID:        l.RoomID.String(),
			RoomNumber:    l.RoomNumber,
			PricePerNight: l.PricePerNight,
			PlannedNights: l.PlannedNights,
			Nights:        l.Nights,
			SubTotal:      l.SubTotal,
		}
	}
	for i, c := range s.Charges {
		res.ServiceCharges[i] = FromServiceCharge(c)
	}
	return res
}

type CheckoutResponse struct {
	Settlement *SettlementResponse  `json:"settlement"`
	Balance    *TransactionResponse `json:"balance,omitempty"`
	Refund     *TransactionResponse `json:"refund,omitempty"`
}

func FromCheckout(r *booking.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Settlement: FromSettlement(&r.Settlement),
		Balance:    FromTransaction(r.Balance),
		Refund:     FromTransaction(r.Refund),
	}
}
