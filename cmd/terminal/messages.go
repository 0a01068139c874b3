package main

import (
	"github.com/sevigo/review-analyzer/internal/app"
)

// Indicates that the core application services have been initialized.
type appInitializedMsg struct {
	app     *app.App
	cleanup func()
	err     error
}
