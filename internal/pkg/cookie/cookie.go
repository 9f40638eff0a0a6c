package cookie

import (
	"net/http"
	"time"

	"hotel-booking-engine/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	BookingTokenCookieName = "booking_token"
)

// SetBookingToken stores the guest booking token for the lookup page.
func SetBookingToken(c *gin.Context, cfg config.CookieConfig, token string, expiresAt, now time.Time) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	maxAge := int(expiresAt.Sub(now).Seconds())
	if maxAge < 0 {
		maxAge = -1
	}

	c.SetCookie(
		BookingTokenCookieName,
		token,
		maxAge,
		"/api/bookings",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetBookingToken(c *gin.Context) string {
	token, _ := c.Cookie(BookingTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
