package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/evanshaw/cadence_backend/config"
	"github.com/evanshaw/cadence_backend/internal/api/http/handler"
	"github.com/evanshaw/cadence_backend/internal/api/http/middleware"
	"github.com/evanshaw/cadence_backend/internal/service/actionitem"
	"github.com/evanshaw/cadence_backend/internal/service/auth"
	"github.com/evanshaw/cadence_backend/internal/service/billing"
	"github.com/evanshaw/cadence_backend/internal/service/client"
	"github.com/evanshaw/cadence_backend/internal/service/contact"
	"github.com/evanshaw/cadence_backend/internal/service/notification"
	"github.com/evanshaw/cadence_backend/internal/service/resource"
	"github.com/evanshaw/cadence_backend/internal/service/session"
	"github.com/evanshaw/cadence_backend/pkg/authorize"
	"github.com/evanshaw/cadence_backend/pkg/payments"
	"github.com/evanshaw/cadence_backend/pkg/token"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            *authorize.Authorizer
	Tokens          *token.Manager
	Stripe          *payments.Client
	AuthSvc         auth.Service
	ClientSvc       client.Service
	SessionSvc      session.Service
	ActionItemSvc   actionitem.Service
	ResourceSvc     resource.Service
	BillingSvc      billing.Service
	NotificationSvc notification.Service
	ContactSvc      contact.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.Tokens, r.p.Redis)
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	clientH := handler.NewClientHandler(r.p.ClientSvc)
	sessionH := handler.NewSessionHandler(r.p.SessionSvc)
	actionItemH := handler.NewActionItemHandler(r.p.ActionItemSvc)
	resourceH := handler.NewResourceHandler(r.p.ResourceSvc)
	billingH := handler.NewBillingHandler(r.p.BillingSvc, r.p.Stripe)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)
	contactH := handler.NewContactHandler(r.p.ContactSvc)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, authRequired)
	r.registerClientRoutes(api, clientH, authRequired, requirePerm)
	r.registerSessionRoutes(api, sessionH, authRequired, requirePerm)
	r.registerActionItemRoutes(api, actionItemH, authRequired, requirePerm)
	r.registerResourceRoutes(api, resourceH, authRequired, requirePerm)
	r.registerBillingRoutes(api, billingH, authRequired, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired, requirePerm)
	r.registerContactRoutes(api, contactH, authRequired, requirePerm)
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
