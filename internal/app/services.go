package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/evanshaw/cadence_backend/config"
	"github.com/evanshaw/cadence_backend/internal/repo"
	"github.com/evanshaw/cadence_backend/internal/service/actionitem"
	"github.com/evanshaw/cadence_backend/internal/service/auth"
	"github.com/evanshaw/cadence_backend/internal/service/billing"
	"github.com/evanshaw/cadence_backend/internal/service/client"
	"github.com/evanshaw/cadence_backend/internal/service/contact"
	"github.com/evanshaw/cadence_backend/internal/service/notification"
	"github.com/evanshaw/cadence_backend/internal/service/resource"
	"github.com/evanshaw/cadence_backend/internal/service/session"
	"github.com/evanshaw/cadence_backend/pkg/email"
	"github.com/evanshaw/cadence_backend/pkg/payments"
	"github.com/evanshaw/cadence_backend/pkg/storage"
	"github.com/evanshaw/cadence_backend/pkg/token"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideTokenManager,
		ProvideNotificationService,
		ProvideAuthService,
		ProvideClientService,
		ProvideSessionService,
		ProvideActionItemService,
		ProvideResourceService,
		ProvideBillingService,
		ProvideContactService,
	),
)

func ProvideTokenManager(cfg *config.Config) (*token.Manager, error) {
	return token.NewManager(cfg)
}

func ProvideNotificationService(db *repo.Client, mailer *email.Client) notification.Service {
	return notification.New(db, mailer)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	tokens *token.Manager,
	notifier notification.Service,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, tokens, notifier, cfg.Server.BaseURL)
}

func ProvideClientService(db *repo.Client) client.Service {
	return client.New(db)
}

func ProvideSessionService(db *repo.Client, notifier notification.Service, cfg *config.Config) session.Service {
	return session.New(db, notifier, cfg.Server.BaseURL)
}

func ProvideActionItemService(db *repo.Client, notifier notification.Service) actionitem.Service {
	return actionitem.New(db, notifier)
}

func ProvideResourceService(db *repo.Client, store *storage.Client, notifier notification.Service) resource.Service {
	return resource.New(db, store, notifier)
}

func ProvideBillingService(db *repo.Client, stripe *payments.Client, notifier notification.Service) billing.Service {
	return billing.New(db, stripe, notifier)
}

func ProvideContactService(db *repo.Client, notifier notification.Service) contact.Service {
	return contact.New(db, notifier)
}
