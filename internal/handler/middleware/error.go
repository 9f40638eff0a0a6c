package middleware

import (
	"log/slog"
	"net/http"

	"hotel-booking-engine/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error a handler attached. Handlers that
// abort through httperr have already written, so this only catches stragglers.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors.ByType(gin.ErrorTypePrivate) {
			slog.Error("unhandled handler error", "error", e.Err, "path", c.FullPath())
		}
		if c.Writer.Written() {
			return
		}

		public := c.Errors.ByType(gin.ErrorTypePublic)
		for i := len(public) - 1; i >= 0; i-- {
			if resp, ok := public[i].Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) == 0 {
			if status := c.Writer.Status(); status != http.StatusOK {
				c.Status(status)
				c.Writer.WriteHeaderNow()
			}
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Internal())
	}
}

// CustomRecovery turns a panic into the standard SERVER_ERROR body.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
			}
		}()
		c.Next()
	}
}
