package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/pkg/cookie"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase"
	"hotel-booking-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.StaffTokenValidator
}

const (
	ctxStaffIDKey   = "staff_id"
	ctxStaffRoleKey = "staff_role"
	ctxClaimsKey    = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.StaffTokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireStaff admits requests carrying a valid back-office token, read from
// the access cookie or the Authorization header.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)
		if token == "" {
			token = bearerToken(c)
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Authorization("missing token"), "Access token required", nil)
			return
		}

		staffID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("staff token rejected", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxStaffIDKey, staffID)
		c.Set(ctxStaffRoleKey, role)
		c.Set(ctxClaimsKey, map[string]any{
			"user_id": staffID.String(),
			"role":    string(role),
		})
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireStaff.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole staff.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetStaffRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("role missing from context"), "Internal server error", nil)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.Authorization("insufficient role"), "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetStaffID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxStaffIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetStaffRole(c *gin.Context) (staff.Role, bool) {
	v, exists := c.Get(ctxStaffRoleKey)
	if !exists {
		return "", false
	}

	role, ok := v.(staff.Role)
	return role, ok
}

// StaffActor names the authenticated staff member for audit columns.
func StaffActor(c *gin.Context) (commands.Actor, bool) {
	id, ok := GetStaffID(c)
	if !ok {
		return commands.Actor{}, false
	}
	return commands.StaffActor(id), true
}
