// Package clothingkit wires the clothing supply client together: durable
// storage, the HTTP client, the session store, the four domain stores, and
// the navigation guard. Consumers build one Kit and drive everything from
// its fields; there are no ambient globals.
package clothingkit

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lapiogga/clothing-opencode/internal/core/ports"
	"github.com/lapiogga/clothing-opencode/internal/core/service"
	"github.com/lapiogga/clothing-opencode/internal/infrastructure/rest"
	"github.com/lapiogga/clothing-opencode/internal/infrastructure/storage"
	"github.com/lapiogga/clothing-opencode/internal/nav"
	"github.com/lapiogga/clothing-opencode/internal/pkg/config"
	"github.com/lapiogga/clothing-opencode/pkg/logger"
)

// Re-exported types so consumers rarely need the internal import paths.
type (
	Config      = config.Config
	Navigator   = service.Navigator
	LoginResult = service.LoginResult
	Route       = nav.Route
	Decision    = nav.Decision
)

// Kit bundles the fully wired client stack.
type Kit struct {
	Config  *Config
	Log     zerolog.Logger
	Storage ports.KeyValue

	Session *service.SessionService
	Cart    *service.CartService
	Catalog *service.CatalogService
	Orders  *service.OrderService
	Users   *service.UserService

	Guard *nav.Guard
}

// Option customises Kit construction.
type Option func(*options)

type options struct {
	storage   ports.KeyValue
	navigator Navigator
}

// WithStorage replaces the config-selected storage backend, e.g. with an
// in-memory store in tests.
func WithStorage(kv ports.KeyValue) Option {
	return func(o *options) { o.storage = kv }
}

// WithNavigator installs the callback that receives the login redirect on
// forced deauthentication.
func WithNavigator(navigate Navigator) Option {
	return func(o *options) { o.navigator = navigate }
}

// New builds a Kit from cfg. The session is restored from storage when a
// previous run persisted one.
func New(ctx context.Context, cfg *Config, opts ...Option) (*Kit, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	kv := o.storage
	if kv == nil {
		var err error
		kv, err = openStorage(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	// The token source and 401 hook close over the session, which is only
	// constructed once the client and auth gateway exist.
	var session *service.SessionService
	client := rest.NewClient(cfg.APIBaseURL, cfg.APITimeout, log,
		rest.WithTokenSource(func() string {
			if session == nil {
				return ""
			}
			return session.Token()
		}),
		rest.WithUnauthorizedHook(func() {
			if session != nil {
				session.HandleUnauthorized()
			}
		}),
	)

	session = service.NewSessionService(rest.NewAuthGateway(client), kv, log)
	if o.navigator != nil {
		session.SetNavigator(o.navigator)
	}

	return &Kit{
		Config:  cfg,
		Log:     log,
		Storage: kv,
		Session: session,
		Cart:    service.NewCartService(rest.NewCartGateway(client), kv, log),
		Catalog: service.NewCatalogService(rest.NewCatalogGateway(client), log),
		Orders:  service.NewOrderService(rest.NewOrderGateway(client), log),
		Users:   service.NewUserService(rest.NewUserGateway(client), log),
		Guard:   nav.NewGuard(session, nav.Routes()),
	}, nil
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() *Config {
	return config.Load()
}

func openStorage(ctx context.Context, cfg *Config) (ports.KeyValue, error) {
	switch cfg.Storage.Backend {
	case "file", "":
		return storage.OpenFileStore(cfg.Storage.Path)
	case "redis":
		return storage.OpenRedisStore(ctx, storage.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
	default:
		return nil, fmt.Errorf("clothingkit: unknown storage backend %q", cfg.Storage.Backend)
	}
}
