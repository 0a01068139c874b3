package main

import (
	"errors"
	"log/slog"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if shouldLog(err) {
			slog.Error("cli failed to run", "error", err)
		}
		os.Exit(1)
	}
}

// shouldLog reports whether err still needs reporting. Commands that already
// printed a localized failure return errAnalysisFailed.
func shouldLog(err error) bool {
	return !errors.Is(err, errAnalysisFailed)
}
