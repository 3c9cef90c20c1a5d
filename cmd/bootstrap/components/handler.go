package components

import (
	"nightlife-feedback/internal/handler"
	"nightlife-feedback/internal/handler/api"
	"nightlife-feedback/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFeedbackHandler,
		api.NewPresenceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
