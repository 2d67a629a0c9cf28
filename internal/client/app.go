package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bazarly/bazarly-go/internal/config"
	"github.com/bazarly/bazarly-go/internal/fetch"
	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/service"
	"github.com/bazarly/bazarly-go/internal/session"
	"github.com/bazarly/bazarly-go/internal/store"
	"github.com/bazarly/bazarly-go/internal/transport"
	"github.com/bazarly/bazarly-go/models"
)

// App is the assembled client runtime. Construct it with NewApp; the zero
// value is not usable.
type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	services *service.Services
	manager  *session.Manager
	refresh  session.RefreshJob
}

// NewApp wires the full client stack from configuration: credential store,
// transport with credential attachment, domain services, session manager, and
// the profile refresh job. The transport's session-expiry hook is pointed at
// the manager so an expired token resets the session everywhere at once.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	creds, err := store.NewCredentialStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create credential store: %w", err)
	}

	httpClient, err := transport.New(cfg.API, creds, log)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	services := service.NewServices(httpClient, log)
	manager := session.NewManager(services.Auth, creds, log)
	httpClient.SetSessionExpiredHook(manager.HandleSessionExpired)

	return &App{
		cfg:      cfg,
		logger:   log,
		services: services,
		manager:  manager,
		refresh:  session.NewProfileRefreshJob(services.Profile, manager, log),
	}, nil
}

// Services exposes the domain service façades.
func (a *App) Services() *service.Services { return a.services }

// Session exposes the session manager.
func (a *App) Session() *session.Manager { return a.manager }

// Run restores the persisted session, starts the background profile refresh
// job, runs the headless demo flow once, and blocks until ctx is cancelled.
// The refresh job is stopped before Run returns.
func (a *App) Run(ctx context.Context) error {
	a.manager.Rehydrate(ctx)
	a.logger.Info().
		Str("state", a.manager.State().String()).
		Msg("client started")

	a.refresh.Start(ctx, a.cfg.Workers.ProfileRefreshInterval)
	defer a.refresh.Stop()

	a.demo(ctx)

	<-ctx.Done()
	a.logger.Info().Msg("client shutting down")

	return nil
}

// demo exercises the public catalog through the async data hooks: the
// category tree once, then the first two item pages. Failures are logged and
// tolerated; the runtime stays up either way.
func (a *App) demo(ctx context.Context) {
	categories := fetch.NewFetcher(func(ctx context.Context, _ struct{}) ([]models.Category, error) {
		return a.services.Catalog.Categories(ctx)
	})
	if cats, err := categories.Execute(ctx, struct{}{}); err != nil {
		a.logger.Warn().Str("error", transport.MessageOf(err)).Msg("demo: categories fetch failed")
	} else {
		a.logger.Info().Int("count", len(cats)).Msg("demo: categories loaded")
	}

	items := fetch.NewPaginator(a.services.Items.SearchPage, 5)
	if _, err := items.Execute(ctx, url.Values{}, true); err != nil {
		a.logger.Warn().Str("error", transport.MessageOf(err)).Msg("demo: item page fetch failed")
		return
	}
	if _, err := items.LoadMore(ctx); err != nil {
		a.logger.Warn().Str("error", transport.MessageOf(err)).Msg("demo: item load-more failed")
		return
	}

	snap := items.Snapshot()
	a.logger.Info().
		Int("items", len(snap.Items)).
		Int("total", snap.TotalCount).
		Bool("has_more", snap.HasMore).
		Msg("demo: item pages loaded")
}
