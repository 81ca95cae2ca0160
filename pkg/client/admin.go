package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// AdminService handles the admin back-office
type AdminService struct {
	client *Client
}

// ListUsersOptions filters the admin user listing
type ListUsersOptions struct {
	Search   string
	Plan     string
	Page     int
	PageSize int
}

// ListUsers retrieves a filtered, paginated user listing
func (s *AdminService) ListUsers(ctx context.Context, opts *ListUsersOptions) ([]*User, *Page, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Search != "" {
			query.Set("search", opts.Search)
		}
		if opts.Plan != "" {
			query.Set("plan", opts.Plan)
		}
		if opts.Page > 0 {
			query.Set("page", fmt.Sprintf("%d", opts.Page))
			query.Set("page_size", fmt.Sprintf("%d", opts.PageSize))
		}
	}

	path := "/api/v1/admin/users"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var p Page
	if err := s.client.doRequest(ctx, "GET", path, nil, &p); err != nil {
		return nil, nil, err
	}

	var users []*User
	if len(p.Data) > 0 {
		if err := json.Unmarshal(p.Data, &users); err != nil {
			return nil, nil, fmt.Errorf("failed to parse users: %w", err)
		}
	}
	return users, &p, nil
}

// SetUserPlan changes a user's subscription plan
func (s *AdminService) SetUserPlan(ctx context.Context, userID int64, plan string) error {
	req := map[string]interface{}{
		"userId": userID,
		"plan":   plan,
	}
	return s.client.doRequest(ctx, "PATCH", "/api/v1/admin/users", req, nil)
}

// SetUserRole changes a user's role
func (s *AdminService) SetUserRole(ctx context.Context, userID int64, role string) error {
	req := map[string]interface{}{
		"userId": userID,
		"role":   role,
	}
	return s.client.doRequest(ctx, "PATCH", "/api/v1/admin/users", req, nil)
}

// ListReviewsOptions filters the admin review listing
type ListReviewsOptions struct {
	Search   string
	Status   string
	Page     int
	PageSize int
}

// ListReviews retrieves a filtered, paginated cross-user review listing
func (s *AdminService) ListReviews(ctx context.Context, opts *ListReviewsOptions) ([]*Review, *Page, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Search != "" {
			query.Set("search", opts.Search)
		}
		if opts.Status != "" {
			query.Set("status", opts.Status)
		}
		if opts.Page > 0 {
			query.Set("page", fmt.Sprintf("%d", opts.Page))
			query.Set("page_size", fmt.Sprintf("%d", opts.PageSize))
		}
	}

	path := "/api/v1/admin/reviews"
	if len(query) > 0 {
		path += "?" + query.Encode()
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

// DeleteReview removes any user's review
func (s *AdminService) DeleteReview(ctx context.Context, reviewID int64) error {
	req := map[string]int64{
		"reviewId": reviewID,
	}
	return s.client.doRequest(ctx, "DELETE", "/api/v1/admin/reviews", req, nil)
}

// GetStats retrieves the dashboard summary
func (s *AdminService) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := s.client.doRequest(ctx, "GET", "/api/v1/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
