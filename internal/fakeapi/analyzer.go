package fakeapi

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sevigo/review-analyzer/internal/core"
)

// Analyzer turns review text into a sentiment, a confidence score and key
// points.
type Analyzer interface {
	Analyze(ctx context.Context, text string, lang core.Language) (Analysis, error)
}

// Analysis is the output of an Analyzer.
type Analysis struct {
	Sentiment       core.Sentiment
	ConfidenceScore float64
	KeyPoints       string
}

// AnalyzerFunc adapts a function to the Analyzer interface.
type AnalyzerFunc func(ctx context.Context, text string, lang core.Language) (Analysis, error)

func (f AnalyzerFunc) Analyze(ctx context.Context, text string, lang core.Language) (Analysis, error) {
	return f(ctx, text, lang)
}

var keywords = map[core.Language]struct{ positive, negative []string }{
	core.LanguageID: {
		positive: []string{"bagus", "puas", "suka", "mantap", "tidak menyesal", "rekomendasi"},
		negative: []string{"buruk", "kecewa", "menyesal", "tidak puas", "jelek"},
	},
	core.LanguageEN: {
		positive: []string{"good", "great", "wonderful", "satisfied", "happy", "recommend", "excellent", "love"},
		negative: []string{"bad", "poor", "disappointed", "regret", "not satisfied", "broke", "terrible"},
	},
}

const maxKeyPoints = 5

var clauseSplitter = regexp.MustCompile(`[.!?;\n]+`)

// KeywordAnalyzer scores text by counting positive and negative keywords of
// the review's language. It stands in for a real model in tests and demos.
type KeywordAnalyzer struct{}

func (KeywordAnalyzer) Analyze(_ context.Context, text string, lang core.Language) (Analysis, error) {
	words, ok := keywords[lang]
	if !ok {
		words = keywords[core.DefaultLanguage]
	}
	lower := strings.ToLower(text)

	var pos, neg int
	for _, w := range words.positive {
		pos += strings.Count(lower, w)
	}
	for _, w := range words.negative {
		neg += strings.Count(lower, w)
	}
	// Negated phrases also contain the plain keyword; count them once.
	if lang == core.LanguageID || !ok {
		pos -= strings.Count(lower, "tidak puas")
		neg -= strings.Count(lower, "tidak menyesal")
	} else {
		pos -= strings.Count(lower, "not satisfied")
	}

	a := Analysis{Sentiment: core.SentimentNeutral, ConfidenceScore: 0.5, KeyPoints: keyPoints(text)}
	switch {
	case pos > neg:
		a.Sentiment = core.SentimentPositive
		a.ConfidenceScore = confidence(0.75, pos-neg)
	case neg > pos:
		a.Sentiment = core.SentimentNegative
		a.ConfidenceScore = confidence(0.6, neg-pos)
	}
	return a, nil
}

func confidence(base float64, margin int) float64 {
	c := base + 0.05*float64(margin-1)
	if c > 0.95 {
		return 0.95
	}
	return c
}

// keyPoints returns up to maxKeyPoints clauses of text as a Markdown list.
func keyPoints(text string) string {
	var b strings.Builder
	n := 0
	for _, clause := range clauseSplitter.Split(text, -1) {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		if n > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s", clause)
		n++
		if n == maxKeyPoints {
			break
		}
	}
	return b.String()
}
