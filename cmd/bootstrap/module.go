package bootstrap

import (
	"hotel-booking-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the HTTP server together with the background workers.
var Module = fx.Options(
	CoreModule,
	components.HandlerModule,
	components.WorkerModule,
)

// CoreModule is everything below the transport: config, storage and use
// cases. The CLI reuses it without the router.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	components.UseCaseModule,
)
