package commands

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/customer"
	"hotel-booking-engine/internal/domain/inventory"
	"hotel-booking-engine/internal/domain/stay"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/metrics"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type GuestInfo struct {
	FullName     string
	Phone        string
	Email        string
	IdentityCard *string
	Address      *string
}

type OnlineBookingRequest struct {
	Guest           GuestInfo
	CheckIn         time.Time
	CheckOut        time.Time
	Rooms           []inventory.Request
	SpecialRequests string
}

type OfflineRoom struct {
	RoomID uuid.UUID
	// overrides the room type price when set
	PricePerNight *int64
}

type OfflineBookingRequest struct {
	Guest           GuestInfo
	CheckIn         time.Time
	CheckOut        time.Time
	Rooms           []OfflineRoom
	SpecialRequests string
}

type AllocatedRoom struct {
	BookingRoomID uuid.UUID
	RoomID        uuid.UUID
	RoomTypeID    uuid.UUID
	RoomNumber    string
	PricePerNight int64
	Nights        int
	SubTotal      int64
}

type CreateBookingResult struct {
	BookingID        uuid.UUID
	Status           booking.Status
	PaymentStatus    booking.PaymentStatus
	CheckIn          time.Time
	CheckOut         time.Time
	TotalAmount      int64
	DepositAmount    int64
	PaymentReference string
	PaymentDeadline  time.Time
	// presentation hint only; PaymentDeadline is what the sweeper enforces
	HoldWarningAt time.Time
	AccessToken   string
	Payment       PaymentInstruction
	Rooms         []AllocatedRoom
}

type ReservationCommands interface {
	CreateOnlineBooking(ctx context.Context, req OnlineBookingRequest) (*CreateBookingResult, error)
	CreateOfflineBooking(ctx context.Context, req OfflineBookingRequest, actor Actor) (*CreateBookingResult, error)
}

type reservationUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	tokens  BookingTokens
	clock   clock.Clock
	policy  shared.Policy
	metrics *metrics.Metrics
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	tokens BookingTokens,
	clk clock.Clock,
	policy shared.Policy,
	m *metrics.Metrics,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:     uow,
		gateway: gateway,
		tokens:  tokens,
		clock:   clk,
		policy:  policy,
		metrics: m,
	}
}

func (r *reservationUseCaseImpl) CreateOnlineBooking(ctx context.Context, req OnlineBookingRequest) (*CreateBookingResult, error) {
	period, profile, err := r.validateStay(req.CheckIn, req.CheckOut, req.Guest)
	if err != nil {
		return nil, err
	}
	if err := inventory.ValidateRequests(req.Rooms); err != nil {
		return nil, err
	}

	typeIDs := make([]uuid.UUID, len(req.Rooms))
	for i, rq := range req.Rooms {
		typeIDs[i] = rq.RoomTypeID
	}
	sortIDs(typeIDs)

	actor := GuestActor()
	var created *booking.Booking
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Inventory().LockRoomsOfTypes(ctx, tx.DB(), typeIDs); err != nil {
			return err
		}

		types, err := tx.Inventory().RoomTypesByIDs(ctx, tx.DB(), typeIDs)
		if err != nil {
			return err
		}
		known := make(map[uuid.UUID]inventory.RoomType, len(types))
		for _, rt := range types {
			known[rt.ID] = rt
		}

		free, err := tx.Inventory().FreeRooms(ctx, tx.DB(), period, shared.RoomFilter{RoomTypeIDs: typeIDs})
		if err != nil {
			return err
		}
		byType := make(map[uuid.UUID][]inventory.Room)
		for _, room := range free {
			byType[room.RoomTypeID] = append(byType[room.RoomTypeID], room)
		}

		var allocations []booking.Allocation
		for _, rq := range req.Rooms {
			rt, ok := known[rq.RoomTypeID]
			if !ok {
				return inventory.ErrRoomTypeNotFound
			}
			picked, err := inventory.PickRooms(byType[rt.ID], rq.Quantity)
			if err != nil {
				return errs.Wrapf(err, "room type %s", rt.Code)
			}
			for _, room := range picked {
				allocations = append(allocations, booking.Allocation{
					RoomID:        room.ID,
					RoomTypeID:    rt.ID,
					RoomNumber:    room.RoomNumber,
					PricePerNight: rt.BasePricePerNight,
				})
			}
		}

		b, err := r.insertBooking(ctx, tx, booking.ChannelOnline, period, profile, allocations, req.SpecialRequests, actor)
		if err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		r.observeFailure(err)
		return nil, err
	}
	return r.finish(created)
}

func (r *reservationUseCaseImpl) CreateOfflineBooking(ctx context.Context, req OfflineBookingRequest, actor Actor) (*CreateBookingResult, error) {
	period, profile, err := r.validateStay(req.CheckIn, req.CheckOut, req.Guest)
	if err != nil {
		return nil, err
	}
	if len(req.Rooms) == 0 {
		return nil, booking.ErrNoRooms
	}

	roomIDs := make([]uuid.UUID, 0, len(req.Rooms))
	overrides := make(map[uuid.UUID]*int64, len(req.Rooms))
	for _, rm := range req.Rooms {
		if _, dup := overrides[rm.RoomID]; dup {
			return nil, booking.ErrDuplicateRoom
		}
		overrides[rm.RoomID] = rm.PricePerNight
		roomIDs = append(roomIDs, rm.RoomID)
	}
	sortIDs(roomIDs)

	var created *booking.Booking
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rooms, err := tx.Inventory().LockRooms(ctx, tx.DB(), roomIDs)
		if err != nil {
			return err
		}
		if len(rooms) != len(roomIDs) {
			return inventory.ErrRoomNotFound
		}

		free, err := tx.Inventory().FreeRooms(ctx, tx.DB(), period, shared.RoomFilter{RoomIDs: roomIDs})
		if err != nil {
			return err
		}
		sellable := make(map[uuid.UUID]struct{}, len(free))
		for _, room := range free {
			sellable[room.ID] = struct{}{}
		}

		inventory.SortByRoomNumber(rooms)
		allocations := make([]booking.Allocation, 0, len(rooms))
		for _, room := range rooms {
			if _, ok := sellable[room.ID]; !ok {
				return errs.Wrapf(inventory.ErrRoomUnavailable, "room %s", room.RoomNumber)
			}
			price := room.BasePricePerNight
			if p := overrides[room.ID]; p != nil {
				price = *p
			}
			allocations = append(allocations, booking.Allocation{
				RoomID:        room.ID,
				RoomTypeID:    room.RoomTypeID,
				RoomNumber:    room.RoomNumber,
				PricePerNight: price,
			})
		}

		b, err := r.insertBooking(ctx, tx, booking.ChannelOffline, period, profile, allocations, req.SpecialRequests, actor)
		if err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		r.observeFailure(err)
		return nil, err
	}
	return r.finish(created)
}

func (r *reservationUseCaseImpl) validateStay(checkIn, checkOut time.Time, guest GuestInfo) (stay.Period, customer.Profile, error) {
	period, err := stay.NewPeriod(checkIn, checkOut)
	if err != nil {
		return stay.Period{}, customer.Profile{}, err
	}
	if err := inventory.ValidateCheckIn(period.CheckIn(), r.policy.WallClock(r.clock.Now()), r.policy.CheckInGrace); err != nil {
		return stay.Period{}, customer.Profile{}, err
	}
	profile, err := customer.NewProfile(guest.FullName, guest.Phone, guest.Email, guest.IdentityCard, guest.Address)
	if err != nil {
		return stay.Period{}, customer.Profile{}, err
	}
	return period, profile, nil
}

func (r *reservationUseCaseImpl) insertBooking(
	ctx context.Context,
	tx shared.Tx,
	channel booking.Channel,
	period stay.Period,
	profile customer.Profile,
	allocations []booking.Allocation,
	specialRequests string,
	actor Actor,
) (*booking.Booking, error) {
	customerID, err := tx.Customers().FindOrCreate(ctx, tx.DB(), profile)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	b, err := booking.NewBooking(booking.NewParams{
		ID:               id,
		CustomerID:       &customerID,
		Channel:          channel,
		Period:           period,
		Rooms:            allocations,
		SpecialRequests:  specialRequests,
		PaymentReference: paymentReference(r.policy.ReferencePrefix, id),
		CreatedBy:        actor.String(),
		Now:              r.clock.Now(),
		PaymentWindow:    r.policy.PaymentWindow,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
		return nil, err
	}
	if err := appendHistory(ctx, tx, b); err != nil {
		return nil, err
	}
	if err := enqueueEvent(ctx, tx, EventBookingCreated, b, b.DepositAmount(), "", r.clock.Now()); err != nil {
		return nil, err
	}
	return b, nil
}

// finish runs after commit: token and payment instruction never touch the store.
func (r *reservationUseCaseImpl) finish(b *booking.Booking) (*CreateBookingResult, error) {
	r.metrics.IncBookingCreated(b.Channel().String())
	slog.Info("booking created",
		"booking_id", b.ID(),
		"channel", b.Channel(),
		"period", b.Period().String(),
		"rooms", len(b.Rooms()),
		"total_amount", b.TotalAmount())

	token, err := r.tokens.IssueBookingToken(b.ID(), r.guestTokenExpiry(b))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "issue booking token"), errs.ErrServer)
	}
	instruction, err := r.gateway.PaymentInstruction(b.PaymentReference(), b.DepositAmount(), b.PaymentReference(), b.ID())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "build payment instruction"), errs.ErrServer)
	}

	lines := b.Rooms()
	rooms := make([]AllocatedRoom, len(lines))
	for i, l := range lines {
		rooms[i] = AllocatedRoom{
			BookingRoomID: l.ID(),
			RoomID:        l.RoomID(),
			RoomTypeID:    l.RoomTypeID(),
			RoomNumber:    l.RoomNumber(),
			PricePerNight: l.PricePerNight(),
			Nights:        l.PlannedNights(),
			SubTotal:      l.SubTotal(),
		}
	}

	return &CreateBookingResult{
		BookingID:        b.ID(),
		Status:           b.Status(),
		PaymentStatus:    b.PaymentStatus(),
		CheckIn:          b.Period().CheckIn(),
		CheckOut:         b.Period().CheckOut(),
		TotalAmount:      b.TotalAmount(),
		DepositAmount:    b.DepositAmount(),
		PaymentReference: b.PaymentReference(),
		PaymentDeadline:  b.PaymentDeadline(),
		HoldWarningAt:    b.CreatedAt().Add(r.policy.HoldWarning),
		AccessToken:      token,
		Payment:          instruction,
		Rooms:            rooms,
	}, nil
}

func (r *reservationUseCaseImpl) observeFailure(err error) {
	if errs.Is(err, errs.ErrAvailabilityConflict) {
		r.metrics.IncAvailabilityConflict()
		slog.Info("reservation lost the race for rooms", "error", err)
	}
}

// guestTokenExpiry is the later of createdAt+TTL and the day after check-out.
func (r *reservationUseCaseImpl) guestTokenExpiry(b *booking.Booking) time.Time {
	ttl := r.policy.GuestTokenTTL
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	exp := b.CreatedAt().Add(ttl)
	if end := b.Period().CheckOut().Add(24 * time.Hour); end.After(exp) {
		return end
	}
	return exp
}

// paymentReference is what the guest writes in the transfer description.
func paymentReference(prefix string, id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return strings.ToUpper(prefix + hex[:10])
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
}
