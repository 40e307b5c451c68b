package components

import (
	"resource-booking-api/internal/handler"
	"resource-booking-api/internal/handler/api"
	"resource-booking-api/internal/handler/middleware"
	"resource-booking-api/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewUnitHandler,
		api.NewReservationHandler,
		api.NewCalendarHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
