package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/medisage/medisage_backend/config"
	"github.com/medisage/medisage_backend/internal/api/http/handler"
	"github.com/medisage/medisage_backend/internal/api/http/middleware"
	"github.com/medisage/medisage_backend/internal/service/auth"
	"github.com/medisage/medisage_backend/internal/service/chat"
	"github.com/medisage/medisage_backend/internal/service/clinic"
	"github.com/medisage/medisage_backend/pkg/token"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg       *config.Config
	AuthSvc   auth.Service
	ClinicSvc clinic.Service
	ChatSvc   chat.Service
	TokenMgr  *token.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

// Register mounts every route. Paths are what the frontend calls; there is
// no version prefix.
func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	userOnly := middleware.RequireKind(r.p.TokenMgr, token.KindUser)
	clinicOnly := middleware.RequireKind(r.p.TokenMgr, token.KindClinic)

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	clinicH := handler.NewClinicHandler(r.p.AuthSvc, r.p.ClinicSvc)
	chatH := handler.NewChatHandler(r.p.ChatSvc)

	r.registerAuthRoutes(app, authH)
	r.registerClinicRoutes(app, clinicH, clinicOnly)
	r.registerChatRoutes(app, chatH, userOnly, clinicOnly)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
