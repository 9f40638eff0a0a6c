package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// RequireWebhookSecret authenticates payment gateway callbacks. The gateway
// sends "Authorization: Apikey <secret>".
func RequireWebhookSecret(secret string) gin.HandlerFunc {
	want := []byte(secret)
	return func(c *gin.Context) {
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Apikey ")
		if !ok || secret == "" || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(got)), want) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Authorization("bad webhook credentials"), "Unauthorized", nil)
			return
		}
		c.Next()
	}
}
