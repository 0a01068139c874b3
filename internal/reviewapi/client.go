// Package reviewapi implements core.ReviewClient over the analysis service's
// JSON HTTP API.
package reviewapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sevigo/review-analyzer/internal/core"
)

const (
	reviewsPath = "/reviews"
	analyzePath = "/analyze-review"

	// maxErrorBody bounds how much of a failed response is read when looking
	// for an error message.
	maxErrorBody = 64 << 10
)

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient returns a ReviewClient rooted at baseURL (for example
// "http://localhost:6543/api"). A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) core.ReviewClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// ListReviews fetches the review history.
func (c *client) ListReviews(ctx context.Context) ([]core.ReviewRecord, error) {
	const op = "list reviews"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+reviewsPath, nil)
	if err != nil {
		return nil, &core.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, &core.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil, &core.TransportError{Op: op, StatusCode: resp.StatusCode}
	}

	var records []core.ReviewRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &core.TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return records, nil
}

// SubmitReview posts a review for analysis.
func (c *client) SubmitReview(ctx context.Context, sub core.ReviewSubmission) (*core.AnalysisResult, error) {
	const op = "submit review"

	body, err := json.Marshal(sub)
	if err != nil {
		return nil, &core.TransportError{Op: op, Err: fmt.Errorf("failed to encode submission: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(body))
	if err != nil {
		return nil, &core.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, &core.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, errorFromResponse(op, resp)
	}

	var result *core.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &core.TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if result == nil || result.Sentiment == "" {
		return nil, &core.TransportError{Op: op, StatusCode: resp.StatusCode, Err: errEmptyResult}
	}
	if !result.ConfidenceInRange() {
		c.logger.Warn("analysis returned confidence outside [0,1]", "confidence_score", result.ConfidenceScore)
	}
	return result, nil
}

func (c *client) do(req *http.Request) (*http.Response, error) {
	c.logger.Debug("sending api request", "method", req.Method, "url", req.URL.String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("api request failed", "method", req.Method, "url", req.URL.String(), "error", err)
		return nil, err
	}
	c.logger.Debug("api response received", "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode)
	return resp, nil
}

// errEmptyResult marks a success status whose body carries no analysis.
var errEmptyResult = errors.New("empty response")

// errorPayload is the optional body of a failed request.
type errorPayload struct {
	Error string `json:"error"`
}

// errorFromResponse returns an *core.APIError when the body carries a
// non-empty error message and a *core.TransportError otherwise.
func errorFromResponse(op string, resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &core.TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	var payload errorPayload
	if err := json.Unmarshal(data, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Error); msg != "" {
			return &core.APIError{StatusCode: resp.StatusCode, Message: payload.Error}
		}
	}
	return &core.TransportError{Op: op, StatusCode: resp.StatusCode}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
