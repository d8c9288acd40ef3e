package components

import (
	"canteen-reservation/internal/handler"
	"canteen-reservation/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewStudentHandler,
		api.NewCanteenHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
