package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/sevigo/review-analyzer/internal/logger"
)

// EnvPrefix namespaces environment variables, e.g. REVIEW_ANALYZER_API_URL.
const EnvPrefix = "REVIEW_ANALYZER"

// Keys understood in .env files, the environment and bound flags.
const (
	KeyAPIURL          = "API_URL"
	KeyLogLevel        = "LOG_LEVEL"
	KeyLogFormat       = "LOG_FORMAT"
	KeyLogOutput       = "LOG_OUTPUT"
	KeyLogFile         = "LOG_FILE"
	KeyPreferencesPath = "PREFERENCES_PATH"
	KeyFakeAPIPort     = "FAKE_API_PORT"
)

var validate = validator.New()

// Config holds the application's configuration values.
type Config struct {
	API         APIConfig
	Logging     logger.Config
	Preferences PreferencesConfig
	FakeAPI     FakeAPIConfig
}

// APIConfig locates the review analysis service.
type APIConfig struct {
	BaseURL string `validate:"required,http_url"`
}

// PreferencesConfig locates the preference file. An empty path keeps
// preferences in memory for the session only.
type PreferencesConfig struct {
	Path string
}

// FakeAPIConfig configures the stand-in analysis server.
type FakeAPIConfig struct {
	Port string `validate:"required,numeric"`
}

// LoadConfig reads configuration from a .env file and the environment, sets
// defaults and validates the result. Flags bound to the global Viper
// instance take precedence.
func LoadConfig() (*Config, error) {
	return load(viper.GetViper())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigFile(".env")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	v.SetDefault(KeyAPIURL, "http://localhost:6543/api")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogOutput, "file")
	v.SetDefault(KeyLogFile, "review-analyzer.log")
	v.SetDefault(KeyPreferencesPath, defaultPreferencesPath())
	v.SetDefault(KeyFakeAPIPort, "6543")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString(KeyAPIURL), "/"),
		},
		Logging: logger.Config{
			Level:  strings.ToLower(v.GetString(KeyLogLevel)),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
			Output: strings.ToLower(v.GetString(KeyLogOutput)),
			File:   v.GetString(KeyLogFile),
		},
		Preferences: PreferencesConfig{
			Path: v.GetString(KeyPreferencesPath),
		},
		FakeAPI: FakeAPIConfig{
			Port: v.GetString(KeyFakeAPIPort),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section against its struct tags.
func (c *Config) Validate() error {
	sections := []struct {
		name  string
		value any
	}{
		{"api", c.API},
		{"logging", c.Logging},
		{"fakeapi", c.FakeAPI},
	}
	for _, s := range sections {
		if err := validate.Struct(s.value); err != nil {
			return fmt.Errorf("invalid %s config: %w", s.name, err)
		}
	}
	return nil
}

func defaultPreferencesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "review-analyzer", "preferences.yml")
}
