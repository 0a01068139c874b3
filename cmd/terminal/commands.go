package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/review-analyzer/internal/wire"
)

func initializeAppCmd() tea.Cmd {
	return func() tea.Msg {
		app, cleanup, err := wire.InitializeApp(context.Background())
		if err != nil {
			return appInitializedMsg{err: fmt.Errorf("failed to initialize app: %w", err)}
		}
		return appInitializedMsg{app: app, cleanup: cleanup}
	}
}
