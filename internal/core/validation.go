package core

import (
	"strings"
	"unicode/utf8"
)

// MinReviewLength is the minimum number of characters a trimmed review must
// contain before it is sent for analysis.
const MinReviewLength = 10

// ValidateSubmission checks a submission before it is sent. The server
// enforces the same rule and remains the authority.
func ValidateSubmission(sub ReviewSubmission) error {
	n := utf8.RuneCountInString(strings.TrimSpace(sub.ReviewText))
	if n < MinReviewLength {
		return &ValidationError{Field: "review_text", Min: MinReviewLength, Got: n}
	}
	return nil
}
