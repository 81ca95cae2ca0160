package client

import (
	"context"
	"fmt"
)

// TemplateService handles the contract template library
type TemplateService struct {
	client *Client
}

// List retrieves the active template catalog
func (s *TemplateService) List(ctx context.Context) ([]*Template, error) {
	var templates []*Template
	if err := s.client.doRequest(ctx, "GET", "/api/v1/templates", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// Download retrieves a template rendered as a PDF (paid plans only)
func (s *TemplateService) Download(ctx context.Context, templateID int64) ([]byte, error) {
	return s.client.doDownload(ctx, fmt.Sprintf("/api/v1/templates/%d/download", templateID))
}
