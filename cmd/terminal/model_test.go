package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/review-analyzer/internal/app"
	"github.com/sevigo/review-analyzer/internal/config"
	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/i18n"
	"github.com/sevigo/review-analyzer/internal/prefs"
	"github.com/sevigo/review-analyzer/mocks"
)

func newTestModel(t *testing.T, override prefs.Theme, store prefs.Store) (*model, *mocks.MockReviewClient) {
	t.Helper()
	client := mocks.NewMockReviewClient(gomock.NewController(t))
	client.EXPECT().ListReviews(gomock.Any()).Return([]core.ReviewRecord{}, nil)

	a := app.NewApp(
		&config.Config{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		client,
		prefs.NewManager(store),
		i18n.NewCatalog(),
	)

	m := initialModel(override)
	_, cmd := m.Update(appInitializedMsg{app: a})
	require.NotNil(t, cmd)
	runCmd(m, cmd)
	t.Cleanup(m.shutdown)
	return m, client
}

func typeText(m *model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestModel_EmptyHistoryAfterInit(t *testing.T) {
	m, _ := newTestModel(t, "", prefs.NewMemoryStore())
	assert.Contains(t, m.View(), "Belum ada ulasan")
}

func TestModel_ShortReviewShowsErrorInActiveLanguage(t *testing.T) {
	m, _ := newTestModel(t, "", prefs.NewMemoryStore())

	typeText(m, "bad")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Ulasan harus terdiri dari minimal 10 karakter")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Contains(t, m.View(), "Review must be at least 10 characters long")
	assert.Equal(t, core.LanguageEN, m.app.Prefs.Current().Language)
}

func TestModel_FormIgnoresInputWhileSubmitting(t *testing.T) {
	m, client := newTestModel(t, "", prefs.NewMemoryStore())
	client.EXPECT().SubmitReview(gomock.Any(), gomock.Any()).
		Return(&core.AnalysisResult{Sentiment: core.SentimentPositive, ConfidenceScore: 0.9, ReviewText: "long enough review"}, nil)
	client.EXPECT().ListReviews(gomock.Any()).Return(nil, nil)

	typeText(m, "long enough review")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	require.True(t, m.flow.Submitting())

	typeText(m, "more")
	assert.Equal(t, "long enough review", m.review.Value())

	_, again := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, again, "second submit while in flight")

	// The submission, then the follow-up history refresh.
	runCmd(m, cmd)

	assert.False(t, m.flow.Submitting())
	assert.Empty(t, m.review.Value(), "draft cleared after success")
}

func TestModel_ThemeToggleIsPersisted(t *testing.T) {
	store := prefs.NewMemoryStore()
	m, _ := newTestModel(t, "", store)
	require.Equal(t, prefs.ThemeLight, m.theme)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.Equal(t, prefs.ThemeDark, m.theme)
	v, ok := store.Get(prefs.KeyTheme)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestModel_ThemeOverrideBeatsStoredTheme(t *testing.T) {
	store := prefs.NewMemoryStore()
	store.Set(prefs.KeyTheme, "dark")

	m, _ := newTestModel(t, prefs.ThemeLight, store)
	assert.Equal(t, prefs.ThemeLight, m.theme)

	m2, _ := newTestModel(t, "", store)
	assert.Equal(t, prefs.ThemeDark, m2.theme)
}

// runCmd executes cmd and feeds its messages back into the model until no
// work is left. Spinner ticks are dropped so the loop terminates.
func runCmd(m *model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			runCmd(m, c)
		}
	case spinner.TickMsg:
	default:
		_, next := m.Update(msg)
		runCmd(m, next)
	}
}
