package wire

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/wire"

	"github.com/sevigo/review-analyzer/internal/app"
	"github.com/sevigo/review-analyzer/internal/config"
	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/i18n"
	"github.com/sevigo/review-analyzer/internal/logger"
	"github.com/sevigo/review-analyzer/internal/prefs"
	"github.com/sevigo/review-analyzer/internal/reviewapi"
)

// LogWriter distinguishes the log destination from other writers in the graph.
type LogWriter io.Writer

var AppSet = wire.NewSet(
	app.NewApp,
	config.LoadConfig,
	i18n.NewCatalog,
	prefs.NewManager,
	provideLoggerConfig,
	provideLogWriter,
	provideSlogLogger,
	provideHTTPClient,
	provideReviewClient,
	providePreferenceStore,
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg logger.Config) (LogWriter, func(), error) {
	w, closeFn, err := logger.OpenOutput(cfg)
	if err != nil {
		return nil, nil, err
	}
	return w, closeFn, nil
}

func provideSlogLogger(cfg logger.Config, w LogWriter) *slog.Logger {
	return logger.NewLogger(cfg, w)
}

// provideHTTPClient sets connection timeouts only; an analysis may take as
// long as the server needs.
func provideHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}

func provideReviewClient(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) core.ReviewClient {
	return reviewapi.NewClient(cfg.API.BaseURL, httpClient, logger)
}

func providePreferenceStore(cfg *config.Config, logger *slog.Logger) prefs.Store {
	if cfg.Preferences.Path == "" {
		logger.Warn("no preferences path configured, preferences will not persist")
		return prefs.NewMemoryStore()
	}
	return prefs.NewFileStore(cfg.Preferences.Path, logger)
}
