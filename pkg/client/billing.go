package client

import "context"

// BillingService handles subscriptions and payments
type BillingService struct {
	client *Client
}

// ListPlans retrieves the public plan catalog
func (s *BillingService) ListPlans(ctx context.Context) ([]*Plan, error) {
	var plans []*Plan
	if err := s.client.doRequest(ctx, "GET", "/api/v1/billing/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// CreateCheckout starts a hosted checkout session and returns its URL
func (s *BillingService) CreateCheckout(ctx context.Context, plan string) (string, error) {
	req := map[string]string{
		"plan": plan,
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := s.client.doRequest(ctx, "POST", "/api/v1/billing/checkout", req, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// CreatePortal opens the customer billing portal and returns its URL
func (s *BillingService) CreatePortal(ctx context.Context) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := s.client.doRequest(ctx, "POST", "/api/v1/billing/portal", nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}
