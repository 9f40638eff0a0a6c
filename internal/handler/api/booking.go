package api

import (
	"net/http"
	"time"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/handler/middleware"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/cookie"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	reservations commands.ReservationCommands
	cmds         commands.BookingCommands
	q            queries.BookingQueries
	cookieCfg    config.CookieConfig
	tokenTTL     time.Duration
	clock        clock.Clock
}

func NewBookingHandler(
	reservations commands.ReservationCommands,
	cmds commands.BookingCommands,
	q queries.BookingQueries,
	cfg config.Config,
	clk clock.Clock,
) *BookingHandler {
	return &BookingHandler{
		reservations: reservations,
		cmds:         cmds,
		q:            q,
		cookieCfg:    cfg.Cookie,
		tokenTTL:     cfg.JWT.GuestTokenTTL,
		clock:        clk,
	}
}

// @Summary Create online booking
// @Description Hold rooms for a guest and return deposit payment instructions
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOnlineBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "code ROOM_NOT_AVAILABLE"
// @Router /api/bookings [post]
func (h *BookingHandler) CreateOnline(c *gin.Context) {
	var req reqdto.CreateOnlineBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	result, err := h.reservations.CreateOnlineBooking(c.Request.Context(), cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	now := h.clock.Now()
	cookie.SetBookingToken(c, h.cookieCfg, result.AccessToken, now.Add(h.tokenTTL), now)
	c.Header("Location", "/api/bookings/me")
	c.JSON(http.StatusCreated, resdto.FromCreateBooking(result))
}

// @Summary Create offline booking
// @Description Front-desk booking for named rooms, confirmed without a payment window
// @Tags staff-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfflineBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response "code ROOM_NOT_AVAILABLE"
// @Router /api/staff/bookings [post]
func (h *BookingHandler) CreateOffline(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateOfflineBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	result, err := h.reservations.CreateOfflineBooking(c.Request.Context(), cmd, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/staff/bookings/"+result.BookingID.String())
	c.JSON(http.StatusCreated, resdto.FromCreateBooking(result))
}

// @Summary Get my booking
// @Description Guest lookup with the access token issued at booking time
// @Tags bookings
// @Produce json
// @Param X-Booking-Token header string false "Booking access token (or booking_token cookie)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/me [get]
func (h *BookingHandler) GetMine(c *gin.Context) {
	view, err := h.q.GetByToken(c.Request.Context(), middleware.GuestToken(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view, false))
}

// @Summary Cancel my booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Booking-Token header string false "Booking access token (or booking_token cookie)"
// @Param request body reqdto.CancelBookingRequest false "Reason"
// @Success 200 {object} resdto.CancelResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response "code STATE_CONFLICT"
// @Router /api/bookings/me/cancel [post]
func (h *BookingHandler) CancelMine(c *gin.Context) {
	var req reqdto.CancelBookingRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	result, err := h.cmds.CancelByToken(c.Request.Context(), middleware.GuestToken(c), req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancel(result))
}

// @Summary Get booking
// @Tags staff-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/staff/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view, true))
}

// @Summary List bookings
// @Description Newest first, keyset paginated
// @Tags staff-bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 400 {object} httperr.Response
// @Router /api/staff/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	n := queries.DefaultListLimit
	if limit != nil {
		n = queries.ValidateLimit(*limit)
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.List(c.Request.Context(), status, cursor, n)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp := gin.H{"bookings": resdto.FromBookingList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Record payment
// @Description Manual deposit, balance or refund entry. Replaying a reference is a no-op.
// @Tags staff-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 201 {object} resdto.PaymentResponse
// @Success 200 {object} resdto.PaymentResponse "duplicate reference"
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/staff/bookings/{id}/payments [post]
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.RecordPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.RecordPayment(c.Request.Context(), req.ToInput(id), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromPayment(result))
}

// @Summary Cancel booking
// @Tags staff-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Reason"
// @Success 200 {object} resdto.CancelResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "code STATE_CONFLICT"
// @Router /api/staff/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CancelBookingRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	result, err := h.cmds.CancelBooking(c.Request.Context(), id, req.Reason, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancel(result))
}

// @Summary Check in
// @Tags staff-bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "code STATE_CONFLICT"
// @Router /api/staff/bookings/{id}/check-in [post]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.CheckIn(c.Request.Context(), id, actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add service charge
// @Description Minibar, laundry and other extras settled at checkout
// @Tags staff-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ServiceChargeRequest true "Charge"
// @Success 201 {object} resdto.ServiceChargeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/staff/bookings/{id}/service-charges [post]
func (h *BookingHandler) AddServiceCharge(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ServiceChargeRequest
	if !bindJSON(c, &req) {
		return
	}

	charge, err := h.cmds.AddServiceCharge(c.Request.Context(), req.ToInput(id), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromServiceCharge(*charge))
}

func requireActor(c *gin.Context) (commands.Actor, bool) {
	actor, ok := middleware.StaffActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.Authorization("no staff in context"), "Unauthorized", nil)
		return commands.Actor{}, false
	}
	return actor, true
}
