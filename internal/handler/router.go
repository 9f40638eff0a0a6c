package handler

import (
	"net/http"

	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/handler/api"
	"hotel-booking-engine/internal/handler/dto/request"
	"hotel-booking-engine/internal/handler/middleware"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Payment      *api.PaymentHandler
	Checkout     *api.CheckoutHandler
}

func NewHandlers(
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	payment *api.PaymentHandler,
	checkout *api.CheckoutHandler,
) Handlers {
	return Handlers{
		Availability: availability,
		Booking:      booking,
		Payment:      payment,
		Checkout:     checkout,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, registry *prometheus.Registry) error {
	if err := request.RegisterValidators(); err != nil {
		return errs.Wrap(err, "register request validators")
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware, registry)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, registry *prometheus.Registry) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limiter := middleware.NewGuestRateLimiter(cfg.RateLimit).Handler()
	guestToken := middleware.RequireGuestToken()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/availability", Handler: h.Availability.Check, Mw: []gin.HandlerFunc{limiter}},
			{Method: http.MethodGet, Path: "/room-types", Handler: h.Availability.ListRoomTypes},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.CreateOnline, Mw: []gin.HandlerFunc{limiter}},
			{Method: http.MethodGet, Path: "/bookings/me", Handler: h.Booking.GetMine, Mw: []gin.HandlerFunc{limiter, guestToken}},
			{Method: http.MethodPost, Path: "/bookings/me/cancel", Handler: h.Booking.CancelMine, Mw: []gin.HandlerFunc{limiter, guestToken}},
			{Method: http.MethodPost, Path: "/payments/webhook", Handler: h.Payment.Webhook, Mw: []gin.HandlerFunc{middleware.RequireWebhookSecret(cfg.Gateway.WebhookSecret)}},
		})

		staffGroup := apiGroup.Group("/staff")
		staffGroup.Use(authMiddleware.RequireStaff(), authMiddleware.RequireRoleAtLeast(staff.RoleFrontDesk))
		{
			addRoutes(staffGroup, []route{
				{Method: http.MethodGet, Path: "/rooms/available", Handler: h.Availability.ListAvailableRooms},
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.CreateOffline},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/bookings/:id/payments", Handler: h.Booking.RecordPayment},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/bookings/:id/check-in", Handler: h.Booking.CheckIn},
				{Method: http.MethodPost, Path: "/bookings/:id/service-charges", Handler: h.Booking.AddServiceCharge},
				{Method: http.MethodGet, Path: "/bookings/:id/checkout-preview", Handler: h.Checkout.Preview},
				{Method: http.MethodPost, Path: "/bookings/:id/checkout", Handler: h.Checkout.Commit},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
