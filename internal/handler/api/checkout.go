package api

import (
	"net/http"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
	q    queries.CheckoutQueries
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

// @Summary Preview checkout
// @Description Price the stay for a departure without changing anything
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param departure query string false "RFC 3339 departure instant, defaults to now"
// @Success 200 {object} resdto.SettlementResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/staff/bookings/{id}/checkout-preview [get]
func (h *CheckoutHandler) Preview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	departure, ok := queryInstant(c, "departure")
	if !ok {
		return
	}

	settlement, err := h.q.PreviewCheckout(c.Request.Context(), id, departure)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettlement(settlement))
}

// @Summary Commit checkout
// @Description Settle the stay, collect the balance and release the rooms
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CheckoutRequest true "Settlement payment"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "code STATE_CONFLICT"
// @Router /api/staff/bookings/{id}/checkout [post]
func (h *CheckoutHandler) Commit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.CommitCheckout(c.Request.Context(), req.ToInput(id), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckout(result))
}
