package response

import (
	"time"

	"hotel-booking-engine/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// Read models are copied field by field so the wire shape can drift from the
// query layer without touching the stores.

type RoomTypeResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Code              string `json:"code"`
	BasePricePerNight int64  `json:"base_price_per_night"`
	MaxOccupancy      int32  `json:"max_occupancy"`
	TotalRoomCount    int32  `json:"total_room_count"`
}

type AvailableRoomResponse struct {
	ID                string `json:"id"`
	RoomNumber        string `json:"room_number"`
	Floor             int32  `json:"floor"`
	OperationalStatus string `json:"operational_status"`
	RoomTypeID        string `json:"room_type_id"`
	RoomTypeName      string `json:"room_type_name"`
	RoomTypeCode      string `json:"room_type_code"`
	BasePricePerNight int64  `json:"base_price_per_night"`
	MaxOccupancy      int32  `json:"max_occupancy"`
}

type CustomerResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type BookingRoomResponse struct {
	ID              string    `json:"id"`
	RoomID          string    `json:"room_id"`
	RoomNumber      string    `json:"room_number"`
	RoomTypeID      string    `json:"room_type_id"`
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

type PaymentViewResponse struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount"`
	Method      string    `json:"method"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Reference   *string   `json:"reference,omitempty"`
	Note        *string   `json:"note,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
	ProcessedBy string    `json:"processed_by"`
}

type ServiceChargeViewResponse struct {
	ID            string    `json:"id"`
	BookingRoomID *string   `json:"booking_room_id,omitempty"`
	Description   string    `json:"description"`
	Quantity      int32     `json:"quantity"`
	UnitPrice     int64     `json:"unit_price"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by"`
}

type HistoryResponse struct {
	ChangeType string    `json:"change_type"`
	OldValue   *string   `json:"old_value,omitempty"`
	NewValue   *string   `json:"new_value,omitempty"`
	Reason     *string   `json:"reason,omitempty"`
	ChangedAt  time.Time `json:"changed_at"`
	ChangedBy  string    `json:"changed_by"`
}

type BookingResponse struct {
	ID                 string                       `json:"id"`
	Customer           *CustomerResponse            `json:"customer,omitempty"`
	Channel            string                       `json:"channel"`
	Status             string                       `json:"status"`
	PaymentStatus      string                       `json:"payment_status"`
	CheckInDate        time.Time                    `json:"check_in_date"`
	CheckOutDate       time.Time                    `json:"check_out_date"`
	TotalAmount        int64                        `json:"total_amount"`
	DepositAmount      int64                        `json:"deposit_amount"`
	PaidAmount         int64                        `json:"paid_amount"`
	FinalAmount        *int64                       `json:"final_amount,omitempty"`
	SpecialRequests    string                       `json:"special_requests"`
	PaymentReference   string                       `json:"payment_reference"`
	PaymentDeadline    time.Time                    `json:"payment_deadline"`
	CancelledAt        *time.Time                   `json:"cancelled_at,omitempty"`
	CancelledBy        *string                      `json:"cancelled_by,omitempty"`
	CancellationReason *string                      `json:"cancellation_reason,omitempty"`
	CreatedBy          string                       `json:"created_by"`
	CreatedAt          time.Time                    `json:"created_at"`
	UpdatedAt          time.Time                    `json:"updated_at"`
	Rooms              []*BookingRoomResponse       `json:"rooms"`
	Payments           []*PaymentViewResponse       `json:"payments"`
	ServiceCharges     []*ServiceChargeViewResponse `json:"service_charges"`
	History            []*HistoryResponse           `json:"history,omitempty"`
}

type BookingListItemResponse struct {
	ID            string    `json:"id"`
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

var copyOpts = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuidType,
			DstType: copier.String,
			Fn:      uuidToString,
		},
		{
			SrcType: uuidPtrType,
			DstType: stringPtrType,
			Fn:      uuidPtrToString,
		},
	},
}

func mustCopy(to, from any) {
	if err := copier.CopyWithOption(to, from, copyOpts); err != nil {
		// field sets are static; a failure here is a programming error
		panic(err)
	}
}

func FromRoomTypes(views []*queries.RoomTypeView) []*RoomTypeResponse {
	res := make([]*RoomTypeResponse, 0, len(views))
	mustCopy(&res, &views)
	return res
}

func FromAvailableRooms(views []*queries.AvailableRoomView) []*AvailableRoomResponse {
	res := make([]*AvailableRoomResponse, 0, len(views))
	mustCopy(&res, &views)
	return res
}

// FromBookingView renders the staff view. Guests get the same shape without
// the audit trail.
func FromBookingView(v *queries.BookingView, withHistory bool) *BookingResponse {
	res := &BookingResponse{}
	mustCopy(res, v)
	if !withHistory {
		res.History = nil
	}
	return res
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListItemResponse {
	res := make([]*BookingListItemResponse, 0, len(items))
	mustCopy(&res, &items)
	return res
}
