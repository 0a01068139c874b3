// Package workflow drives a review from the draft in the form to a rendered
// analysis, and keeps the review history in step with the server.
//
// A Workflow is owned by a single Bubble Tea model. Its methods must be called
// from the model's Update loop; the network calls run inside the returned
// tea.Cmd values and report back through SubmitDoneMsg and HistoryDoneMsg.
package workflow

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/i18n"
)

// SubmitDoneMsg reports the outcome of a submission.
type SubmitDoneMsg struct {
	Result *core.AnalysisResult
	Err    error

	seq  uint64
	lang core.Language
}

// HistoryDoneMsg reports the outcome of a history refresh.
type HistoryDoneMsg struct {
	Records []core.ReviewRecord
	Err     error
}

// Workflow is the submission state machine plus the history list.
type Workflow struct {
	ctx     context.Context
	cancel  context.CancelFunc
	client  core.ReviewClient
	catalog *i18n.Catalog
	logger  *slog.Logger

	state       State
	draft       string
	productName string
	history     History

	seq    uint64
	closed bool
}

// New returns an idle workflow. Cancelling ctx, or calling Close, aborts
// in-flight requests.
func New(ctx context.Context, client core.ReviewClient, catalog *i18n.Catalog, logger *slog.Logger) *Workflow {
	ctx, cancel := context.WithCancel(ctx)
	return &Workflow{
		ctx:     ctx,
		cancel:  cancel,
		client:  client,
		catalog: catalog,
		logger:  logger,
	}
}

// Init loads the history for the first time.
func (w *Workflow) Init() tea.Cmd {
	return w.RefreshHistory()
}

func (w *Workflow) State() State { return w.state }
func (w *Workflow) History() History { return w.history }
func (w *Workflow) Draft() string { return w.draft }
func (w *Workflow) ProductName() string { return w.productName }
func (w *Workflow) Submitting() bool { return w.state.Phase == PhaseSubmitting }

// SetDraft replaces the review text. It never clears an error or result.
func (w *Workflow) SetDraft(text string) { w.draft = text }

// SetProductName changes the optional product name. Like SetDraft it leaves
// any error or result on screen.
func (w *Workflow) SetProductName(name string) { w.productName = name }

// Submit validates the draft and, if it passes, starts the analysis request.
// It returns nil when nothing was sent: while another submission is in
// flight, after Close, or when validation fails.
func (w *Workflow) Submit(lang core.Language) tea.Cmd {
	if w.closed || w.state.Phase == PhaseSubmitting {
		return nil
	}
	w.state.Failure = nil

	sub := core.ReviewSubmission{
		ReviewText:  w.draft,
		ProductName: strings.TrimSpace(w.productName),
		Language:    lang,
	}
	if err := core.ValidateSubmission(sub); err != nil {
		w.logger.Debug("review rejected before submission", "error", err)
		// A previous result stays visible until a request actually starts.
		w.state.Phase = PhaseError
		w.state.Failure = &Failure{
			Kind:    FailureValidation,
			Message: w.catalog.Resolve(lang, i18n.KeyErrTooShort),
			key:     i18n.KeyErrTooShort,
		}
		return nil
	}

	w.seq++
	seq := w.seq
	w.state = State{Phase: PhaseSubmitting}

	ctx, client := w.ctx, w.client
	w.logger.Info("submitting review for analysis", "product", sub.ProductName, "language", lang, "length", len(sub.ReviewText))
	return func() tea.Msg {
		result, err := client.SubmitReview(ctx, sub)
		return SubmitDoneMsg{Result: result, Err: err, seq: seq, lang: lang}
	}
}

// RefreshHistory starts a history fetch. Refreshes may overlap; whichever
// completes last wins.
func (w *Workflow) RefreshHistory() tea.Cmd {
	if w.closed {
		return nil
	}
	w.history.pending++

	ctx, client := w.ctx, w.client
	return func() tea.Msg {
		records, err := client.ListReviews(ctx)
		return HistoryDoneMsg{Records: records, Err: err}
	}
}

// Update applies a completion message and returns any follow-up command.
// Messages it does not own are ignored.
func (w *Workflow) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SubmitDoneMsg:
		return w.submitDone(msg)
	case HistoryDoneMsg:
		w.historyDone(msg)
	}
	return nil
}

// Close stops the workflow. In-flight requests are cancelled and their
// results dropped.
func (w *Workflow) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.cancel()
}

func (w *Workflow) submitDone(msg SubmitDoneMsg) tea.Cmd {
	if w.closed || msg.seq != w.seq || w.state.Phase != PhaseSubmitting {
		w.logger.Debug("dropping stale submission result", "seq", msg.seq)
		return nil
	}

	err := msg.Err
	if err == nil && msg.Result == nil {
		err = &core.TransportError{Op: "submit review", Err: errors.New("empty response")}
	}
	if err != nil {
		w.logger.Error("review analysis failed", "error", err)
		w.state = State{Phase: PhaseError, Failure: w.failureFor(err, msg.lang)}
		return nil
	}

	w.logger.Info("review analyzed", "sentiment", msg.Result.Sentiment, "confidence_score", msg.Result.ConfidenceScore)
	w.state = State{Phase: PhaseShowingResult, Result: msg.Result}
	w.draft = ""
	return w.RefreshHistory()
}

func (w *Workflow) failureFor(err error, lang core.Language) *Failure {
	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		return &Failure{Kind: FailureAPI, Message: apiErr.Message}
	}
	return &Failure{
		Kind:    FailureTransport,
		Message: w.catalog.Resolve(lang, i18n.KeyErrGeneric),
		key:     i18n.KeyErrGeneric,
	}
}

func (w *Workflow) historyDone(msg HistoryDoneMsg) {
	if w.closed {
		return
	}
	if w.history.pending > 0 {
		w.history.pending--
	}
	if msg.Err != nil {
		w.logger.Warn("failed to refresh review history", "error", msg.Err)
		return
	}
	w.history.Records = msg.Records
	w.history.Loaded = true
}
