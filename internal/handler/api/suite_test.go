//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking-engine/internal/domain/staff"
	reqdto "hotel-booking-engine/internal/handler/dto/request"
	"hotel-booking-engine/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const staffToken = "staff-token"

var testStaffID = uuid.MustParse("8f7d1c2e-0000-4000-8000-000000000001")

// fakeStaffAuth stands in for the JWT middleware: any bearer header becomes
// the same front-desk user.
func fakeStaffAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "Unauthorized"}})
		return
	}
	c.Set("staff_id", testStaffID)
	c.Set("staff_role", staff.RoleFrontDesk)
	c.Next()
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, reqdto.RegisterValidators())
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	return engine
}
