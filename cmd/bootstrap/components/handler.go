package components

import (
	"keyvend/internal/handler"
	"keyvend/internal/handler/api"
	"keyvend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPurchaseHandler,
		api.NewAccountHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
