// Package app holds the components shared by the terminal UI and the CLI:
// configuration, logging, the review API client, preferences and the
// localization catalog.
package app

import (
	"context"
	"log/slog"

	"github.com/sevigo/review-analyzer/internal/config"
	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/i18n"
	"github.com/sevigo/review-analyzer/internal/prefs"
	"github.com/sevigo/review-analyzer/internal/workflow"
)

// App holds the main application components.
type App struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Client  core.ReviewClient
	Prefs   *prefs.Manager
	Catalog *i18n.Catalog
}

// NewApp sets up the application with all its dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger, client core.ReviewClient, manager *prefs.Manager, catalog *i18n.Catalog) *App {
	current := manager.Current()
	logger.Info("review analyzer initialized",
		"api_url", cfg.API.BaseURL,
		"preferences", cfg.Preferences.Path,
		"theme", current.Theme,
		"language", current.Language)

	return &App{
		Cfg:     cfg,
		Logger:  logger,
		Client:  client,
		Prefs:   manager,
		Catalog: catalog,
	}
}

// NewWorkflow starts a submission workflow bound to ctx. Callers must Close it.
func (a *App) NewWorkflow(ctx context.Context) *workflow.Workflow {
	return workflow.New(ctx, a.Client, a.Catalog, a.Logger)
}

// Localize resolves key in the currently preferred language.
func (a *App) Localize(key i18n.Key) string {
	return a.Catalog.Resolve(a.Prefs.Current().Language, key)
}
