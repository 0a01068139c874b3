package core

import "context"

// ReviewClient talks to the review analysis API.
//
//go:generate mockgen -destination=../../mocks/mock_review_client.go -package=mocks . ReviewClient
type ReviewClient interface {
	// ListReviews returns the stored reviews in server order.
	ListReviews(ctx context.Context) ([]ReviewRecord, error)
	// SubmitReview sends a review for analysis. Failures are *APIError when
	// the server supplied a message and *TransportError otherwise.
	SubmitReview(ctx context.Context, sub ReviewSubmission) (*AnalysisResult, error)
}
