package services

import (
	"context"

	"github.com/freelanceshield/api/internal/domain/template"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
)

// TemplateService implements template.Service
type TemplateService struct {
	repo   template.Repository
	logger *logger.Logger
}

// NewTemplateService creates a new template service
func NewTemplateService(repo template.Repository, log *logger.Logger) template.Service {
	return &TemplateService{
		repo:   repo,
		logger: log,
	}
}

// Create creates a template (admin)
func (s *TemplateService) Create(ctx context.Context, input template.CreateInput) (*template.Template, error) {
	if input.Name == "" || input.Content == "" {
		return nil, errors.BadRequest("name and content are required")
	}

	t := &template.Template{
		Name:           input.Name,
		Description:    input.Description,
		FreelancerType: input.FreelancerType,
		USState:        input.USState,
		Content:        input.Content,
		IsActive:       true,
	}
	if input.IsActive != nil {
		t.IsActive = *input.IsActive
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create template")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"template_id": t.ID,
		"name":        t.Name,
	}).Info("Template created")

	return t, nil
}

// GetByID retrieves a template
func (s *TemplateService) GetByID(ctx context.Context, id int64) (*template.Template, error) {
	return s.repo.GetByID(ctx, id)
}

// GetActive retrieves a template only when it is active
func (s *TemplateService) GetActive(ctx context.Context, id int64) (*template.Template, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.IsActive {
		return nil, errors.NotFound("Template")
	}
	return t, nil
}

// Update patches a template (admin)
func (s *TemplateService) Update(ctx context.Context, id int64, input template.UpdateInput) (*template.Template, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.FreelancerType != nil {
		t.FreelancerType = *input.FreelancerType
	}
	if input.USState != nil {
		t.USState = *input.USState
	}
	if input.Content != nil {
		t.Content = *input.Content
	}
	if input.IsActive != nil {
		t.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update template")
		return nil, err
	}
	return t, nil
}

// Delete removes a template (admin)
func (s *TemplateService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithFields(map[string]interface{}{"template_id": id}).Info("Template deleted")
	return nil
}

// List retrieves templates; activeOnly for user-facing listings
func (s *TemplateService) List(ctx context.Context, activeOnly bool) ([]*template.Template, error) {
	return s.repo.List(ctx, activeOnly)
}

// SeedDefaults inserts the built-in templates when the table is empty
func (s *TemplateService) SeedDefaults(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range builtinTemplates {
		t := &template.Template{
			Name:           seed.Name,
			Description:    seed.Description,
			FreelancerType: seed.FreelancerType,
			Content:        seed.Content,
			IsActive:       true,
		}
		if err := s.repo.Create(ctx, t); err != nil {
			return err
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"count": len(builtinTemplates),
	}).Info("Seeded built-in templates")
	return nil
}
