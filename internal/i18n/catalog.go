// Package i18n holds the UI string tables and resolves keys against the
// active language.
package i18n

import (
	"github.com/sevigo/review-analyzer/internal/core"
)

// Key identifies a UI string.
type Key string

const (
	KeyTitle              Key = "title"
	KeySubtitle           Key = "subtitle"
	KeySubmitHeading      Key = "submit_heading"
	KeyProductLabel       Key = "product_label"
	KeyProductPlaceholder Key = "product_placeholder"
	KeyReviewLabel        Key = "review_label"
	KeyReviewPlaceholder  Key = "review_placeholder"
	KeyAnalyzeButton      Key = "analyze_button"
	KeyAnalyzing          Key = "analyzing"
	KeyErrorPrefix        Key = "error_prefix"
	KeyErrTooShort        Key = "err_too_short"
	KeyErrGeneric         Key = "err_generic"
	KeyResultHeading      Key = "result_heading"
	KeySentimentHeading   Key = "sentiment_heading"
	KeyConfidence         Key = "confidence"
	KeyKeyPoints          Key = "key_points"
	KeyReviewText         Key = "review_text"
	KeyProduct            Key = "product"
	KeyHistoryHeading     Key = "history_heading"
	KeyHistoryLoading     Key = "history_loading"
	KeyHistoryEmpty       Key = "history_empty"
	KeySentimentPositive  Key = "sentiment_positive"
	KeySentimentNegative  Key = "sentiment_negative"
	KeySentimentNeutral   Key = "sentiment_neutral"
	KeyThemeLight         Key = "theme_light"
	KeyThemeDark          Key = "theme_dark"
	KeyLanguageName       Key = "language_name"
	KeyHelp               Key = "help"
)

// Catalog maps languages to their string tables.
type Catalog struct {
	tables   map[core.Language]map[Key]string
	fallback core.Language
}

// NewCatalog returns the built-in Indonesian and English tables with
// Indonesian as the fallback.
func NewCatalog() *Catalog {
	return &Catalog{
		tables: map[core.Language]map[Key]string{
			core.LanguageID: indonesian,
			core.LanguageEN: english,
		},
		fallback: core.DefaultLanguage,
	}
}

// Resolve returns the string for key in lang. Unknown languages and missing
// keys fall back to the default language; a key missing everywhere resolves
// to itself so the gap is visible in the UI.
func (c *Catalog) Resolve(lang core.Language, key Key) string {
	if table, ok := c.tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := c.tables[c.fallback][key]; ok {
		return s
	}
	return string(key)
}

// Languages lists the languages with a table, primary first.
func (c *Catalog) Languages() []core.Language {
	return []core.Language{core.LanguageID, core.LanguageEN}
}

// SentimentKey maps a sentiment to its display string key. Unknown values
// are treated as neutral.
func SentimentKey(s core.Sentiment) Key {
	switch s {
	case core.SentimentPositive:
		return KeySentimentPositive
	case core.SentimentNegative:
		return KeySentimentNegative
	default:
		return KeySentimentNeutral
	}
}
