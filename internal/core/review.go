// Package core defines the domain types shared by the review client, the
// submission workflow and the renderers. It has no knowledge of HTTP or of
// the terminal UI.
package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Language is the language a review is written in and the UI is shown in.
type Language string

const (
	// LanguageID is Indonesian, the primary language.
	LanguageID Language = "id"
	// LanguageEN is English, the secondary language.
	LanguageEN Language = "en"
)

// DefaultLanguage is used whenever no valid language is known.
const DefaultLanguage = LanguageID

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LanguageID, LanguageEN:
		return Language(s), true
	default:
		return "", false
	}
}

// Other returns the language a toggle switches to.
func (l Language) Other() Language {
	if l == LanguageEN {
		return LanguageID
	}
	return LanguageEN
}

// Sentiment is the tone classification returned by the analysis service.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ReviewSubmission is the body of an analyze request.
type ReviewSubmission struct {
	ReviewText  string   `json:"review_text"`
	ProductName string   `json:"product_name,omitempty"`
	Language    Language `json:"language,omitempty"`
}

// AnalysisResult is the analysis service's answer to a submission.
type AnalysisResult struct {
	Sentiment       Sentiment `json:"sentiment"`
	ConfidenceScore float64   `json:"confidence_score"`
	KeyPoints       string    `json:"key_points"`
	ReviewText      string    `json:"review_text"`
	ProductName     string    `json:"product_name,omitempty"`
	Language        Language  `json:"language,omitempty"`
}

// ConfidenceInRange reports whether the score lies in [0,1].
func (r AnalysisResult) ConfidenceInRange() bool {
	return r.ConfidenceScore >= 0 && r.ConfidenceScore <= 1
}

// ReviewRecord is one entry of the server-side review history.
type ReviewRecord struct {
	ID RecordID `json:"id"`
	AnalysisResult
	CreatedAt Timestamp `json:"created_at"`
}

// RecordID is an opaque record identifier. The server may send it as a JSON
// number or a JSON string.
type RecordID string

// UnmarshalJSON accepts both numeric and string identifiers.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid record id: %w", err)
		}
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid record id %s: %w", data, err)
	}
	*id = RecordID(n.String())
	return nil
}

// MarshalJSON writes integer-looking identifiers back as numbers.
func (id RecordID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// timestampLayouts are tried in order. The zone-less forms are what Python's
// datetime.isoformat() writes for naive UTC values.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp is a creation time that tolerates zone-less ISO 8601 values,
// which are interpreted as UTC.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON parses RFC 3339 and zone-less ISO 8601 strings; null leaves
// the zero time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp format: %q", s)
}

// MarshalJSON writes RFC 3339, or null for the zero time.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
