package middleware

import (
	"net/http"
	"sync"
	"time"

	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/cookie"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const BookingTokenHeader = "X-Booking-Token"

// GuestToken returns the booking access token from the header, falling back to
// the cookie set when the booking was created.
func GuestToken(c *gin.Context) string {
	if token := c.GetHeader(BookingTokenHeader); token != "" {
		return token
	}
	return cookie.GetBookingToken(c)
}

// RequireGuestToken rejects guest self-service calls that carry no token.
func RequireGuestToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GuestToken(c) == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Authorization("missing booking token"), "Booking token required", nil)
			return
		}
		c.Next()
	}
}

const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// GuestRateLimiter throttles the public endpoints per client IP.
type GuestRateLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
	lastGC   time.Time
}

func NewGuestRateLimiter(cfg config.RateLimitConfig) *GuestRateLimiter {
	return &GuestRateLimiter{
		limit:    rate.Limit(cfg.GuestRPS),
		burst:    cfg.GuestBurst,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

func (l *GuestRateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, errs.New("rate limit exceeded"), "Too many requests", nil)
			return
		}
		c.Next()
	}
}

func (l *GuestRateLimiter) allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	if now.Sub(l.lastGC) > limiterIdleTTL {
		for k, other := range l.visitors {
			if now.Sub(other.lastSeen) > limiterIdleTTL {
				delete(l.visitors, k)
			}
		}
		l.lastGC = now
	}
	l.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}
