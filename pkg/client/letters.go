package client

import "context"

// LetterService handles payment demand letters
type LetterService struct {
	client *Client
}

// DemandLetterRequest carries the overdue invoice details
type DemandLetterRequest struct {
	ClientName         string  `json:"clientName"`
	ProjectName        string  `json:"projectName"`
	ProjectDescription string  `json:"projectDescription,omitempty"`
	AmountOwed         float64 `json:"amountOwed"`
	PaymentDueDate     string  `json:"paymentDueDate"`
	PastDueDays        int     `json:"pastDueDays,omitempty"`
	FreelancerName     string  `json:"freelancerName"`
	USState            string  `json:"usState,omitempty"`
}

// Generate drafts a payment demand letter (Pro and Agency)
func (s *LetterService) Generate(ctx context.Context, req DemandLetterRequest) (string, error) {
	var resp struct {
		Letter string `json:"letter"`
	}
	if err := s.client.doRequest(ctx, "POST", "/api/v1/demand-letter", req, &resp); err != nil {
		return "", err
	}
	return resp.Letter, nil
}
