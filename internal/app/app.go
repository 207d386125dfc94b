// Package app wires the client together: configuration, logging,
// durable storage, the API gateway and the state containers. The App is
// the single owner of all stores; embedding UIs receive it at the root
// and pass stores down, so nothing is process-global and tests get
// isolated instances.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fred1edm/jaguarexpress/internal/config"
	"github.com/fred1edm/jaguarexpress/internal/core/ports"
	"github.com/fred1edm/jaguarexpress/internal/core/store"
	"github.com/fred1edm/jaguarexpress/internal/infrastructure/gateway"
	"github.com/fred1edm/jaguarexpress/internal/infrastructure/storage"
	"github.com/fred1edm/jaguarexpress/pkg/logger"
)

// Options carries the external collaborators the embedding UI provides.
type Options struct {
	// Notifier surfaces transient notices. Defaults to a no-op.
	Notifier ports.Notifier
	// Geolocator is the platform geolocation capability; nil when the
	// platform has none.
	Geolocator ports.Geolocator
	// OnAuthExpired runs after a forced logout (any API call answered
	// 401) so the UI can route to the login entry point.
	OnAuthExpired func()
}

// App owns the stores and their shared collaborators.
type App struct {
	Log     zerolog.Logger
	Gateway *gateway.Client

	Session  *store.SessionStore
	Cart     *store.CartStore
	Orders   *store.OrdersStore
	Location *store.LocationStore
	UI       *store.UIStore

	storage ports.Storage
}

// New builds a fully wired App from cfg.
func New(ctx context.Context, cfg *config.Settings, opts Options) (*App, error) {
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	notifier := opts.Notifier
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}

	st, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a := &App{Log: log, storage: st}

	a.Gateway = gateway.New(gateway.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.Timeout,
		TokenSource: func() string {
			if a.Session == nil {
				return ""
			}
			return a.Session.Token()
		},
		Notifier: notifier,
		OnUnauthorized: func() {
			// 401 anywhere clears the session exactly like a logout,
			// then hands control to the UI for the login redirect.
			a.Session.Expire(context.Background())
			if opts.OnAuthExpired != nil {
				opts.OnAuthExpired()
			}
		},
		Logger: log.With().Str("component", "gateway").Logger(),
	})

	a.Session = store.NewSessionStore(a.Gateway.Auth(), st, notifier, log.With().Str("store", "session").Logger())
	a.Cart = store.NewCartStore(st, notifier, log.With().Str("store", "cart").Logger())
	a.Orders = store.NewOrdersStore(log.With().Str("store", "orders").Logger())
	a.Location = store.NewLocationStore(opts.Geolocator, log.With().Str("store", "location").Logger())
	a.UI = store.NewUIStore()

	return a, nil
}

// Bootstrap rehydrates the session from durable storage. Call once at
// startup, before the first render.
func (a *App) Bootstrap(ctx context.Context) {
	a.Session.CheckAuth(ctx)
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.storage.Close()
}

func openStorage(ctx context.Context, cfg *config.Settings) (ports.Storage, error) {
	if cfg.Redis.Addr != "" {
		st, err := storage.NewRedis(ctx, storage.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, fmt.Errorf("open redis storage: %w", err)
		}
		return st, nil
	}

	st, err := storage.NewFile(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open file storage: %w", err)
	}
	return st, nil
}
