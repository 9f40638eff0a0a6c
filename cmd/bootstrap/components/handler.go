package components

import (
	"hotel-booking-engine/internal/handler"
	"hotel-booking-engine/internal/handler/api"
	"hotel-booking-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewCheckoutHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
