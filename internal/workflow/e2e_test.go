package workflow_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/fakeapi"
	"github.com/sevigo/review-analyzer/internal/i18n"
	"github.com/sevigo/review-analyzer/internal/reviewapi"
	"github.com/sevigo/review-analyzer/internal/workflow"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newWorkflow(t *testing.T, handler http.Handler) *workflow.Workflow {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := reviewapi.NewClient(srv.URL+"/api", srv.Client(), discard())
	w := workflow.New(context.Background(), client, i18n.NewCatalog(), discard())
	t.Cleanup(w.Close)
	return w
}

func drain(w *workflow.Workflow, cmd tea.Cmd) {
	for cmd != nil {
		cmd = w.Update(cmd())
	}
}

func TestE2E_PositiveSubmission(t *testing.T) {
	const text = "This product is absolutely wonderful and works great"
	var submits atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze-review", func(w http.ResponseWriter, r *http.Request) {
		submits.Add(1)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, text, body["review_text"])
		assert.NotContains(t, body, "product_name")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"sentiment":"positive","confidence_score":0.92,"key_points":"durable, great value","review_text":"`+text+`"}`)
	})
	mux.HandleFunc("GET /api/reviews", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	w := newWorkflow(t, mux)
	w.SetDraft(text)
	drain(w, w.Submit(core.LanguageEN))

	assert.Equal(t, int32(1), submits.Load())
	st := w.State()
	require.Equal(t, workflow.PhaseShowingResult, st.Phase)
	assert.Equal(t, &core.AnalysisResult{
		Sentiment:       core.SentimentPositive,
		ConfidenceScore: 0.92,
		KeyPoints:       "durable, great value",
		ReviewText:      text,
	}, st.Result)
	assert.Empty(t, w.Draft())
}

func TestE2E_ShortReviewMakesNoCalls(t *testing.T) {
	var calls atomic.Int32
	w := newWorkflow(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls.Add(1)
	}))

	w.SetDraft("bad")
	assert.Nil(t, w.Submit(core.LanguageEN))

	assert.Zero(t, calls.Load())
	require.NotNil(t, w.State().Failure)
	assert.Equal(t, "Review must be at least 10 characters long", w.State().Failure.Message)
}

func TestE2E_EmptyHistory(t *testing.T) {
	w := newWorkflow(t, fakeapi.NewRouter(discard()))

	drain(w, w.Init())

	h := w.History()
	assert.Equal(t, workflow.HistoryEmpty, h.Status())
	assert.True(t, h.Loaded)
	assert.Equal(t, workflow.PhaseIdle, w.State().Phase)
}

func TestE2E_AgainstStandInAPI(t *testing.T) {
	w := newWorkflow(t, fakeapi.NewRouter(discard()))
	drain(w, w.Init())

	w.SetProductName("Phone X")
	w.SetDraft("Baterai awet, layar bagus, saya puas")
	drain(w, w.Submit(core.LanguageID))

	st := w.State()
	require.Equal(t, workflow.PhaseShowingResult, st.Phase)
	assert.Equal(t, core.SentimentPositive, st.Result.Sentiment)
	assert.Equal(t, "Phone X", st.Result.ProductName)

	h := w.History()
	require.Len(t, h.Records, 1)
	assert.Equal(t, workflow.HistoryReady, h.Status())
	assert.Equal(t, st.Result.ReviewText, h.Records[0].ReviewText)

	w.SetDraft("ok")
	assert.Nil(t, w.Submit(core.LanguageID))
	assert.Equal(t, workflow.FailureValidation, w.State().Failure.Kind)
}

func TestE2E_ServerRejectionShownVerbatim(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze-review", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"error":"Ulasan mengandung kata terlarang"}`)
	})

	w := newWorkflow(t, mux)
	w.SetDraft("a perfectly long review")
	drain(w, w.Submit(core.LanguageEN))

	st := w.State()
	require.NotNil(t, st.Failure)
	assert.Equal(t, workflow.FailureAPI, st.Failure.Kind)
	assert.Equal(t, "Ulasan mengandung kata terlarang", st.Failure.Message)
	assert.Equal(t, "a perfectly long review", w.Draft())
}

func TestE2E_EmptySuccessBodyKeepsDraft(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze-review", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `null`)
	})

	w := newWorkflow(t, mux)
	w.SetDraft("long enough review text")
	drain(w, w.Submit(core.LanguageEN))

	st := w.State()
	assert.Equal(t, workflow.PhaseError, st.Phase)
	assert.Nil(t, st.Result)
	require.NotNil(t, st.Failure)
	assert.Equal(t, workflow.FailureTransport, st.Failure.Kind)
	assert.Equal(t, "An error occurred during analysis", st.Failure.Message)
	assert.Equal(t, "long enough review text", w.Draft())
}
