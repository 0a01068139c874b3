package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/review-analyzer/internal/config"
)

var (
	apiURL   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "review-cli",
	Short: "review-cli submits product reviews for sentiment analysis.",
	Long: `A command-line client for the review analysis service. It submits reviews,
lists previously analyzed reviews and manages the preferences shared with the
terminal UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the review analysis API")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	flags := map[string]string{
		config.KeyAPIURL:   "api-url",
		config.KeyLogLevel: "log-level",
	}
	for key, name := range flags {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			slog.Error("Error binding flag", "flag", name, "error", err)
			os.Exit(1)
		}
	}
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
