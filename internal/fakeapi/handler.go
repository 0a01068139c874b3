package fakeapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sevigo/review-analyzer/internal/core"
)

const maxRequestBody = 1 << 20

type handler struct {
	store    *memoryStore
	analyzer Analyzer
	now      func() time.Time
	logger   *slog.Logger
}

func (h *handler) listReviews(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.list())
}

func (h *handler) analyzeReview(w http.ResponseWriter, r *http.Request) {
	var sub core.ReviewSubmission
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&sub); err != nil {
		h.logger.Debug("rejecting malformed analyze request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := core.ValidateSubmission(sub); err != nil {
		if errors.Is(err, core.ErrReviewTooShort) {
			writeError(w, http.StatusBadRequest, "Review text must be at least 10 characters")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lang, ok := core.ParseLanguage(string(sub.Language))
	if !ok {
		lang = core.DefaultLanguage
	}

	analysis, err := h.analyzer.Analyze(r.Context(), sub.ReviewText, lang)
	if err != nil {
		h.logger.Error("review analysis failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze review")
		return
	}

	record := core.ReviewRecord{
		ID: core.RecordID(uuid.NewString()),
		AnalysisResult: core.AnalysisResult{
			Sentiment:       analysis.Sentiment,
			ConfidenceScore: analysis.ConfidenceScore,
			KeyPoints:       analysis.KeyPoints,
			ReviewText:      sub.ReviewText,
			ProductName:     strings.TrimSpace(sub.ProductName),
			Language:        lang,
		},
		CreatedAt: core.Timestamp{Time: h.now().UTC()},
	}
	h.store.add(record)

	h.logger.Info("review analyzed", "id", record.ID, "sentiment", record.Sentiment, "language", lang)
	writeJSON(w, http.StatusOK, record)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
