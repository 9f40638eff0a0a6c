package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindJSON aborts with 400 and per-field detail when the body does not bind.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.ValidationDetail(err))
		return false
	}
	return true
}

// bindOptionalJSON accepts an empty body.
func bindOptionalJSON(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(c, req)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func queryUUID(c *gin.Context, key string) (*uuid.UUID, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	id, err := uuid.Parse(v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+key, nil)
		return nil, false
	}
	return &id, true
}

func queryInt(c *gin.Context, key string) (*int, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+key, nil)
		return nil, false
	}
	return &n, true
}

func queryDate(c *gin.Context, key string) (time.Time, bool) {
	v := c.Query(key)
	if v == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Validationf("%s is required", key), key+" is required", nil)
		return time.Time{}, false
	}
	t, err := time.Parse(reqdto.DateLayout, v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+key, nil)
		return time.Time{}, false
	}
	return t, true
}

func queryInstant(c *gin.Context, key string) (*time.Time, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+key, nil)
		return nil, false
	}
	return &t, true
}
