package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// ReviewService handles contract review operations
type ReviewService struct {
	client *Client
}

// CreateReviewOptions carries the optional upload form fields
type CreateReviewOptions struct {
	FreelancerType string
	USState        string
}

// Create uploads a contract PDF for analysis and waits for the result
func (s *ReviewService) Create(ctx context.Context, fileName string, fileData []byte, opts *CreateReviewOptions) (*Review, error) {
	fields := map[string]string{}
	if opts != nil {
		fields["freelancer_type"] = opts.FreelancerType
		fields["us_state"] = opts.USState
	}

	var rev Review
	if err := s.client.doUpload(ctx, "/api/v1/reviews", fileName, fileData, fields, &rev); err != nil {
		return nil, err
	}
	return &rev, nil
}

// List retrieves the caller's review history
func (s *ReviewService) List(ctx context.Context, page, pageSize int) ([]*Review, *Page, error) {
	path := "/api/v1/reviews"
	if page > 0 {
		path = fmt.Sprintf("%s?page=%d&page_size=%d", path, page, pageSize)
	}

	var p Page
	if err := s.client.doRequest(ctx, "GET", path, nil, &p); err != nil {
		return nil, nil, err
	}

	var reviews []*Review
	if len(p.Data) > 0 {
		if err := json.Unmarshal(p.Data, &reviews); err != nil {
			return nil, nil, fmt.Errorf("failed to parse reviews: %w", err)
		}
	}
	return reviews, &p, nil
}

// GetReport retrieves the plan-gated report for a review
func (s *ReviewService) GetReport(ctx context.Context, reviewID int64) (*Report, error) {
	var report Report
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/api/v1/reviews/%d", reviewID), nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Share creates or returns the public share token for a review
func (s *ReviewService) Share(ctx context.Context, reviewID int64) (string, error) {
	var resp struct {
		ShareToken string `json:"share_token"`
	}
	if err := s.client.doRequest(ctx, "POST", fmt.Sprintf("/api/v1/reviews/%d/share", reviewID), nil, &resp); err != nil {
		return "", err
	}
	return resp.ShareToken, nil
}

// GetShared retrieves the public limited view of a shared review
func (s *ReviewService) GetShared(ctx context.Context, token string) (*Report, error) {
	var report Report
	if err := s.client.doRequest(ctx, "GET", "/api/v1/shared/"+token, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Negotiate generates negotiation coaching for a flagged clause
func (s *ReviewService) Negotiate(ctx context.Context, reviewID, clauseID int64) (*Coaching, error) {
	req := map[string]int64{
		"clause_id": clauseID,
	}

	var coaching Coaching
	if err := s.client.doRequest(ctx, "POST", fmt.Sprintf("/api/v1/reviews/%d/negotiate", reviewID), req, &coaching); err != nil {
		return nil, err
	}
	return &coaching, nil
}

// Delete removes a review and its clauses
func (s *ReviewService) Delete(ctx context.Context, reviewID int64) error {
	return s.client.doRequest(ctx, "DELETE", fmt.Sprintf("/api/v1/reviews/%d", reviewID), nil, nil)
}
