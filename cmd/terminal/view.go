package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/i18n"
	"github.com/sevigo/review-analyzer/internal/workflow"
)

const (
	recordPreviewRunes = 160
	dateLayout         = "2006-01-02 15:04"
)

// localizer resolves UI strings in one language.
type localizer struct {
	catalog *i18n.Catalog
	lang    core.Language
}

func (l localizer) t(key i18n.Key) string {
	return l.catalog.Resolve(l.lang, key)
}

func formatConfidence(score float64) string {
	return fmt.Sprintf("%.2f%%", score*100)
}

func renderSentiment(loc localizer, s core.Sentiment) string {
	s = displaySentiment(s)
	label := strings.ToUpper(loc.t(i18n.SentimentKey(s)))
	return sentimentStyle(s).Render(sentimentEmoji[s] + " " + label)
}

// renderResult draws the analysis panel. markdown renders the key points and
// may be nil, in which case they are shown as plain text.
func renderResult(st styles, loc localizer, r *core.AnalysisResult, markdown func(string) string) string {
	var b strings.Builder
	b.WriteString(st.heading.Render(loc.t(i18n.KeyResultHeading)))
	b.WriteString("\n")
	b.WriteString(st.label.Render(loc.t(i18n.KeySentimentHeading)) + ": " + renderSentiment(loc, r.Sentiment))
	b.WriteString("\n")
	b.WriteString(st.label.Render(loc.t(i18n.KeyConfidence)) + ": " + formatConfidence(r.ConfidenceScore))
	b.WriteString("\n")

	if r.ProductName != "" {
		b.WriteString(st.label.Render(loc.t(i18n.KeyProduct)) + ": " + r.ProductName + "\n")
	}

	b.WriteString(st.label.Render(loc.t(i18n.KeyKeyPoints)))
	b.WriteString("\n")
	keyPoints := r.KeyPoints
	if markdown != nil {
		keyPoints = strings.TrimSpace(markdown(keyPoints))
	}
	b.WriteString(keyPoints)
	b.WriteString("\n")

	b.WriteString(st.label.Render(loc.t(i18n.KeyReviewText)))
	b.WriteString("\n")
	b.WriteString(st.inactive.Render(r.ReviewText))

	return st.panel.Render(b.String())
}

func historyTitle(st styles, loc localizer, h workflow.History) string {
	title := loc.t(i18n.KeyHistoryHeading)
	if len(h.Records) > 0 {
		title = fmt.Sprintf("%s (%d)", title, len(h.Records))
	}
	return st.heading.Render(title)
}

// renderHistory draws the body of the history panel for its current status.
func renderHistory(st styles, loc localizer, h workflow.History) string {
	switch h.Status() {
	case workflow.HistoryLoading:
		return st.inactive.Render(loc.t(i18n.KeyHistoryLoading))
	case workflow.HistoryEmpty:
		return st.inactive.Render(loc.t(i18n.KeyHistoryEmpty))
	}

	records := make([]string, 0, len(h.Records))
	for _, r := range h.Records {
		records = append(records, renderRecord(st, loc, r))
	}
	return lipgloss.JoinVertical(lipgloss.Left, records...)
}

func renderRecord(st styles, loc localizer, r core.ReviewRecord) string {
	parts := []string{renderSentiment(loc, r.Sentiment), formatConfidence(r.ConfidenceScore)}
	if r.ProductName != "" {
		parts = append(parts, st.label.Render(r.ProductName))
	}
	if !r.CreatedAt.IsZero() {
		parts = append(parts, st.inactive.Render(r.CreatedAt.Local().Format(dateLayout)))
	}

	return st.record.Render(strings.Join(parts, "  ") + "\n" + truncate(r.ReviewText, recordPreviewRunes))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
