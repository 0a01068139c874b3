// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/sevigo/review-analyzer/internal/app"
	"github.com/sevigo/review-analyzer/internal/config"
	"github.com/sevigo/review-analyzer/internal/i18n"
	"github.com/sevigo/review-analyzer/internal/prefs"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	loggerConfig := provideLoggerConfig(cfg)
	logWriter, logCleanup, err := provideLogWriter(loggerConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log output: %w", err)
	}
	slogLogger := provideSlogLogger(loggerConfig, logWriter)

	// Review API client
	httpClient := provideHTTPClient()
	reviewClient := provideReviewClient(cfg, httpClient, slogLogger)

	// Preferences
	store := providePreferenceStore(cfg, slogLogger)
	manager := prefs.NewManager(store)

	// Localization
	catalog := i18n.NewCatalog()

	// App
	application := app.NewApp(cfg, slogLogger, reviewClient, manager, catalog)

	cleanup := func() {
		logCleanup()
	}

	return application, cleanup, nil
}
