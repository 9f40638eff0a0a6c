package bootstrap

import (
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/jwt"
	"hotel-booking-engine/internal/usecase"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		func(s *jwt.Service) commands.BookingTokens { return s },
		func(s *jwt.Service) queries.BookingTokenParser { return s },
		usecase.NewStaffTokenValidator,
	),
)

// NewJWTService signs both staff access tokens and guest booking tokens; the
// audience claim keeps them apart.
func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.JWT.StaffDuration <= 0 {
		panic("invalid JWT_STAFF_DURATION: must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.StaffDuration)
}
