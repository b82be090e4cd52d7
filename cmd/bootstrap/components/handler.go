package components

import (
	"minibook/internal/handler"
	"minibook/internal/handler/api"
	"minibook/internal/handler/middleware"
	"minibook/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookHandler,
		api.NewSaleHandler,
		api.NewImageHandler,
		NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthMiddleware(cfg config.Config) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(cfg.Auth)
}
