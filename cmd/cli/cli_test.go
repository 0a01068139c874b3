package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-analyzer/internal/app"
	"github.com/sevigo/review-analyzer/internal/config"
	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/fakeapi"
	"github.com/sevigo/review-analyzer/internal/i18n"
	"github.com/sevigo/review-analyzer/internal/prefs"
	"github.com/sevigo/review-analyzer/internal/reviewapi"
	"github.com/sevigo/review-analyzer/internal/workflow"
)

func init() { //nolint:gochecknoinits // plain output for assertions
	color.NoColor = true
}

func newStandInApp(t *testing.T) *app.App {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(fakeapi.NewRouter(logger))
	t.Cleanup(srv.Close)

	return app.NewApp(
		&config.Config{API: config.APIConfig{BaseURL: srv.URL + "/api"}},
		logger,
		reviewapi.NewClient(srv.URL+"/api", srv.Client(), logger),
		prefs.NewManager(prefs.NewMemoryStore()),
		i18n.NewCatalog(),
	)
}

func TestAnalyze_Success(t *testing.T) {
	a := newStandInApp(t)

	st := analyze(context.Background(), a, "Great battery and I would recommend it", "Phone X", core.LanguageEN)

	require.Equal(t, workflow.PhaseShowingResult, st.Phase)
	assert.Equal(t, core.SentimentPositive, st.Result.Sentiment)
	assert.Equal(t, "Phone X", st.Result.ProductName)

	records, err := a.Client.ListReviews(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAnalyze_TooShort(t *testing.T) {
	a := newStandInApp(t)

	st := analyze(context.Background(), a, "meh", "", core.LanguageEN)

	require.NotNil(t, st.Failure)
	assert.Equal(t, workflow.FailureValidation, st.Failure.Kind)
	assert.Equal(t, "Review must be at least 10 characters long", st.Failure.Localized(a.Catalog, core.LanguageEN))

	records, err := a.Client.ListReviews(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records, "nothing was submitted")
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, i18n.NewCatalog(), core.LanguageEN, &core.AnalysisResult{
		Sentiment:       core.SentimentNegative,
		ConfidenceScore: 0.6,
		KeyPoints:       "- broke quickly",
		ReviewText:      "It broke quickly",
	})

	out := buf.String()
	assert.Contains(t, out, "Sentiment Analysis: NEGATIVE")
	assert.Contains(t, out, "Confidence: 60.00%")
	assert.Contains(t, out, "- broke quickly")
	assert.NotContains(t, out, "Product:")
}

func TestWriteReviewTable(t *testing.T) {
	var buf bytes.Buffer
	records := []core.ReviewRecord{
		{
			ID:             "42",
			AnalysisResult: core.AnalysisResult{Sentiment: core.SentimentPositive, ConfidenceScore: 0.9, ReviewText: "Bagus\nsekali", ProductName: "Kipas"},
			CreatedAt:      core.Timestamp{Time: time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)},
		},
		{ID: "43", AnalysisResult: core.AnalysisResult{Sentiment: "mixed", ReviewText: "Hmm"}},
	}

	require.NoError(t, writeReviewTable(&buf, i18n.NewCatalog(), core.LanguageID, records))

	out := buf.String()
	assert.Contains(t, out, "SENTIMENT")
	assert.Contains(t, out, "POSITIF")
	assert.Contains(t, out, "NETRAL")
	assert.Contains(t, out, "Bagus sekali")
	assert.Contains(t, out, "90.00%")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b", preview("  a\n\tb "))
	long := bytes.Repeat([]byte("x"), 100)
	assert.Len(t, []rune(preview(string(long))), previewRunes)
}

func TestShouldLog(t *testing.T) {
	assert.False(t, shouldLog(errAnalysisFailed), "failure already printed by analyze")
	assert.False(t, shouldLog(fmt.Errorf("run: %w", errAnalysisFailed)))
	assert.True(t, shouldLog(errors.New("failed to initialize app")))
}
