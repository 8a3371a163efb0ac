package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/medisage/medisage_backend/config"
	"github.com/medisage/medisage_backend/internal/api/http/router"
	"github.com/medisage/medisage_backend/internal/app"
)

func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		router.Module,
		Module,

		// Invoking *fiber.App forces its construction and with it the
		// OnStart listen hook.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	).Run()
}
