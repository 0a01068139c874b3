package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/i18n"
)

// Color definitions
var (
	titleColor = color.New(color.FgCyan, color.Bold)
	errorColor = color.New(color.FgRed, color.Bold)
	dimColor   = color.New(color.FgHiBlack)
	boldColor  = color.New(color.Bold)
)

var sentimentColors = map[core.Sentiment]*color.Color{
	core.SentimentPositive: color.New(color.FgGreen, color.Bold),
	core.SentimentNegative: color.New(color.FgRed, color.Bold),
	core.SentimentNeutral:  color.New(color.FgHiBlack, color.Bold),
}

func formatConfidence(score float64) string {
	return fmt.Sprintf("%.2f%%", score*100)
}

func sentimentLabel(catalog *i18n.Catalog, lang core.Language, s core.Sentiment) string {
	c, ok := sentimentColors[s]
	if !ok {
		c = sentimentColors[core.SentimentNeutral]
	}
	return c.Sprint(strings.ToUpper(catalog.Resolve(lang, i18n.SentimentKey(s))))
}

func printResult(w io.Writer, catalog *i18n.Catalog, lang core.Language, r *core.AnalysisResult) {
	t := func(k i18n.Key) string { return catalog.Resolve(lang, k) }

	titleColor.Fprintln(w, t(i18n.KeyResultHeading))
	fmt.Fprintf(w, "%s: %s\n", boldColor.Sprint(t(i18n.KeySentimentHeading)), sentimentLabel(catalog, lang, r.Sentiment))
	fmt.Fprintf(w, "%s: %s\n", boldColor.Sprint(t(i18n.KeyConfidence)), formatConfidence(r.ConfidenceScore))
	if r.ProductName != "" {
		fmt.Fprintf(w, "%s: %s\n", boldColor.Sprint(t(i18n.KeyProduct)), r.ProductName)
	}
	boldColor.Fprintln(w, t(i18n.KeyKeyPoints))
	fmt.Fprintln(w, r.KeyPoints)
	boldColor.Fprintln(w, t(i18n.KeyReviewText))
	dimColor.Fprintln(w, r.ReviewText)
}
