package api

import (
	"net/http"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Check availability
// @Description Answer whether each requested room type has enough free rooms for the stay
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Stay and room quantities"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/availability [post]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}
	checkIn, checkOut, err := req.Parse()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	lines, err := h.q.CheckAvailability(c.Request.Context(), req.Requests(), checkIn, checkOut)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(checkIn, checkOut, lines))
}

// @Summary List room types
// @Tags availability
// @Produce json
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /api/room-types [get]
func (h *AvailabilityHandler) ListRoomTypes(c *gin.Context) {
	types, err := h.q.ListRoomTypes(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypes(types))
}

// @Summary List available rooms
// @Description Concrete rooms free for the whole stay, for front-desk allocation
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param check_in query string true "YYYY-MM-DD"
// @Param check_out query string true "YYYY-MM-DD"
// @Param room_type_id query string false "Room type filter"
// @Param floor query int false "Floor filter"
// @Param min_occupancy query int false "Minimum occupancy"
// @Success 200 {array} resdto.AvailableRoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/staff/rooms/available [get]
func (h *AvailabilityHandler) ListAvailableRooms(c *gin.Context) {
	checkIn, ok := queryDate(c, "check_in")
	if !ok {
		return
	}
	checkOut, ok := queryDate(c, "check_out")
	if !ok {
		return
	}
	roomTypeID, ok := queryUUID(c, "room_type_id")
	if !ok {
		return
	}
	floor, ok := queryInt(c, "floor")
	if !ok {
		return
	}
	minOcc, ok := queryInt(c, "min_occupancy")
	if !ok {
		return
	}

	rooms, err := h.q.ListAvailableRooms(c.Request.Context(), checkIn, checkOut, queries.RoomFilters{
		RoomTypeID:   roomTypeID,
		Floor:        floor,
		MinOccupancy: minOcc,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailableRooms(rooms))
}
