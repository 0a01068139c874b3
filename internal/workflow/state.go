package workflow

import (
	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/i18n"
)

// Phase is the macro-state of the submission path.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseError
	PhaseShowingResult
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseError:
		return "error"
	case PhaseShowingResult:
		return "showing_result"
	default:
		return "unknown"
	}
}

// FailureKind tells the renderer where an error message came from.
type FailureKind int

const (
	// FailureValidation is a local rejection; nothing was sent.
	FailureValidation FailureKind = iota + 1
	// FailureAPI carries the server's own message.
	FailureAPI
	// FailureTransport is any other failure, shown with a generic message.
	FailureTransport
)

// Failure is the user-visible error of the submission path. Message is
// resolved in the language active at submit time.
type Failure struct {
	Kind    FailureKind
	Message string

	key i18n.Key
}

// Localized returns the message in lang. Server-provided messages are
// returned verbatim.
func (f *Failure) Localized(catalog *i18n.Catalog, lang core.Language) string {
	if f.key == "" {
		return f.Message
	}
	return catalog.Resolve(lang, f.key)
}

// State is a snapshot of the submission path. Failure is set only in
// PhaseError. Result is set in PhaseShowingResult and may linger in
// PhaseError after a validation failure, since no request was started.
type State struct {
	Phase   Phase
	Failure *Failure
	Result  *core.AnalysisResult
}

// HistoryStatus is what the history panel should show.
type HistoryStatus int

const (
	HistoryLoading HistoryStatus = iota
	HistoryEmpty
	HistoryReady
)

// History is the server-sourced list of previous reviews.
type History struct {
	Records []core.ReviewRecord
	// Loaded is set after the first successful refresh.
	Loaded  bool
	pending int
}

// Refreshing reports whether a refresh is in flight.
func (h History) Refreshing() bool {
	return h.pending > 0
}

// Status reports the panel state. A list that is already on screen stays
// visible while a later refresh runs.
func (h History) Status() HistoryStatus {
	if len(h.Records) > 0 {
		return HistoryReady
	}
	if h.pending > 0 {
		return HistoryLoading
	}
	// A failed first load also lands here: an empty panel is a valid view.
	return HistoryEmpty
}
