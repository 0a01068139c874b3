package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/review-analyzer/internal/config"
	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/i18n"
	"github.com/sevigo/review-analyzer/internal/prefs"
	"github.com/sevigo/review-analyzer/internal/workflow"
	"github.com/sevigo/review-analyzer/mocks"
)

func newTestApp(t *testing.T) (*App, *mocks.MockReviewClient) {
	t.Helper()
	client := mocks.NewMockReviewClient(gomock.NewController(t))
	a := NewApp(
		&config.Config{API: config.APIConfig{BaseURL: "http://localhost:6543/api"}},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		client,
		prefs.NewManager(prefs.NewMemoryStore()),
		i18n.NewCatalog(),
	)
	return a, client
}

func TestApp_LocalizeFollowsLanguagePreference(t *testing.T) {
	a, _ := newTestApp(t)

	assert.Equal(t, a.Catalog.Resolve(core.LanguageID, i18n.KeyAnalyzeButton), a.Localize(i18n.KeyAnalyzeButton))

	a.Prefs.SetLanguage(core.LanguageEN)
	assert.Equal(t, a.Catalog.Resolve(core.LanguageEN, i18n.KeyAnalyzeButton), a.Localize(i18n.KeyAnalyzeButton))
}

func TestApp_NewWorkflowUsesClient(t *testing.T) {
	a, client := newTestApp(t)
	client.EXPECT().ListReviews(gomock.Any()).Return(nil, nil)

	w := a.NewWorkflow(context.Background())
	defer w.Close()

	cmd := w.Init()
	require.NotNil(t, cmd)
	assert.Nil(t, w.Update(cmd()))
	assert.Equal(t, workflow.HistoryEmpty, w.History().Status())
}
