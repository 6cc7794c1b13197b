package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/evanshaw/cadence_backend/config"
	"github.com/evanshaw/cadence_backend/internal/api/http/middleware"
	"github.com/evanshaw/cadence_backend/internal/api/http/router"
	"github.com/evanshaw/cadence_backend/pkg/observability"
)

// Module provides the fiber app to the fx graph.
var Module = fx.Module("http", fx.Provide(NewServer))

// Worksheet and slide uploads go through multipart forms; everything else
// is small JSON.
const maxBodyBytes = 52 * 1024 * 1024

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Redis     *redis.Client
	Router    *router.Router
	OTel      *observability.Provider `optional:"true"`
}

func NewServer(p Params) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "cadence",
		BodyLimit:    maxBodyBytes,
		ReadTimeout:  time.Duration(p.Cfg.Server.TimeoutSeconds) * time.Second,
		ErrorHandler: errorHandler,
	})

	if p.OTel != nil && p.Cfg.Observability.Tracing.Enabled {
		app.Use(observability.FiberMiddleware(p.Cfg.Observability.ServiceName))
	}

	useGlobalMiddleware(app, p.Cfg, p.Redis)
	p.Router.Register(app)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Cfg.Server.Port)
			go func() {
				if err := app.Listen(addr); err != nil {
					slog.Error("HTTP server stopped", "error", err)
				}
			}()
			slog.Info("HTTP server listening", "addr", addr, "env", p.Cfg.Server.Environment)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}

func useGlobalMiddleware(app *fiber.App, cfg *config.Config, rdb *redis.Client) {
	app.Use(middleware.RequestID())
	app.Use(recoverer.New())

	if cfg.Server.Environment == "production" {
		app.Use(helmet.New())
		app.Use(middleware.NewLimiterWithRedis(rdb))
	}
	if cfg.Server.CORS.Enabled {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.CORS.AllowOrigins,
			AllowMethods: cfg.Server.CORS.AllowMethods,
			AllowHeaders: cfg.Server.CORS.AllowHeaders,
		}))
	}

	app.Use(logger.New(logger.Config{
		Format: "${ip} - [${time}] [req_id=${requestId}] ${method} ${url} ${status}\n",
	}))
}

// errorHandler turns errors that escape handlers into the standard JSON
// envelope instead of fiber's plain-text default.
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	msg := strings.ToLower(fiber.ErrInternalServerError.Message)
	if code < fiber.StatusInternalServerError {
		msg = err.Error()
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
