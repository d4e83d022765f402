package components

import (
	"pricing-admin-api/internal/handler"
	"pricing-admin-api/internal/handler/api"
	"pricing-admin-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPriceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
