package client

import "context"

// Health checks whether the API is up
func (c *Client) Health(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	return c.doRequest(ctx, "GET", "/healthz", nil, &resp)
}
