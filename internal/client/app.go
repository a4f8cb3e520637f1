package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-share/internal/adapter"
	"github.com/MKhiriev/go-secret-share/internal/config"
	"github.com/MKhiriev/go-secret-share/internal/lifecycle"
	"github.com/MKhiriev/go-secret-share/internal/logger"
	"github.com/MKhiriev/go-secret-share/internal/service"
	"github.com/MKhiriev/go-secret-share/internal/store"
	"github.com/MKhiriev/go-secret-share/internal/workers"
)

// App owns every long-lived dependency of one client process.
type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	storages *store.ClientStorages

	Services *service.ClientServices
	Runner   *lifecycle.Runner
	Pruner   *workers.LedgerPruner
}

// NewApp opens the ledger, builds the adapter and the services. Close must
// be called when the app is no longer needed.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	api, err := adapter.NewHTTPSecretAPI(cfg.Adapter, logger)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create server adapter: %w", err), storages.Close())
	}

	services := service.NewClientServices(cfg.App, storages, api, logger)

	return &App{
		cfg:      cfg,
		logger:   logger,
		storages: storages,
		Services: services,
		Runner:   lifecycle.NewRunner(services.SubmissionService, services.BurnService),
		Pruner:   workers.NewLedgerPruner(storages.LedgerRepository, cfg.Workers.PruneInterval, logger),
	}, nil
}

// Origin is the public origin share links are composed with.
func (a *App) Origin() string {
	return a.cfg.App.Origin
}

// NewController returns a synchronous lifecycle for one-shot commands.
func (a *App) NewController() *lifecycle.Controller {
	return lifecycle.NewController(a.Runner, a.Services.SessionService.Authenticated())
}

// RunUI runs ui with the ledger pruner in the background and stops the
// pruner when ui returns.
func (a *App) RunUI(ctx context.Context, ui UI) error {
	ctx, cancel := context.WithCancel(ctx)
	ws := workers.NewWorkers(a.Pruner)
	ws.Run(ctx)
	defer func() {
		cancel()
		ws.Wait()
	}()

	if err := ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Close releases the ledger database.
func (a *App) Close() error {
	return a.storages.Close()
}
