package services

import (
	"context"
	"strings"
	"testing"

	"github.com/freelanceshield/api/internal/domain/template"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/testutil"
)

func TestTemplateCreateValidation(t *testing.T) {
	repo := testutil.NewMockTemplateRepository()
	svc := NewTemplateService(repo, testLogger())

	tests := []struct {
		name  string
		input template.CreateInput
	}{
		{"missing name", template.CreateInput{Content: "body"}},
		{"missing content", template.CreateInput{Name: "NDA"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			appErr, ok := err.(*errors.AppError)
			if !ok || appErr.Code != errors.ErrCodeBadRequest {
				t.Fatalf("err = %v, want bad request", err)
			}
		})
	}
}

func TestTemplateCreateDefaultsActive(t *testing.T) {
	repo := testutil.NewMockTemplateRepository()
	svc := NewTemplateService(repo, testLogger())

	created, err := svc.Create(context.Background(), template.CreateInput{
		Name:    "Custom NDA",
		Content: "MUTUAL NDA\n\n1. CONFIDENTIALITY\nKeep it secret.",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !created.IsActive {
		t.Error("templates default to active")
	}

	inactive := false
	created2, err := svc.Create(context.Background(), template.CreateInput{
		Name:     "Draft",
		Content:  "DRAFT\n\nbody",
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created2.IsActive {
		t.Error("explicit is_active=false must be honored")
	}
}

func TestTemplateGetActive(t *testing.T) {
	repo := testutil.NewMockTemplateRepository()
	svc := NewTemplateService(repo, testLogger())

	inactive := false
	created, _ := svc.Create(context.Background(), template.CreateInput{
		Name: "Hidden", Content: "HIDDEN\n\nbody", IsActive: &inactive,
	})

	_, err := svc.GetActive(context.Background(), created.ID)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Fatalf("err = %v, want not found for inactive template", err)
	}
}

func TestTemplateUpdatePatchSemantics(t *testing.T) {
	repo := testutil.NewMockTemplateRepository()
	svc := NewTemplateService(repo, testLogger())

	created, _ := svc.Create(context.Background(), template.CreateInput{
		Name: "Web Dev Contract", Description: "original", Content: "BODY\n\ntext",
	})

	desc := "updated"
	got, err := svc.Update(context.Background(), created.ID, template.UpdateInput{Description: &desc})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Description != "updated" {
		t.Errorf("description = %q, want updated", got.Description)
	}
	if got.Name != "Web Dev Contract" {
		t.Errorf("untouched field changed: name = %q", got.Name)
	}
}

func TestSeedDefaults(t *testing.T) {
	repo := testutil.NewMockTemplateRepository()
	svc := NewTemplateService(repo, testLogger()).(*TemplateService)

	if err := svc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("SeedDefaults() error = %v", err)
	}
	templates, _ := repo.List(context.Background(), true)
	if len(templates) != 5 {
		t.Fatalf("seeded %d templates, want 5", len(templates))
	}
	for _, tpl := range templates {
		if !strings.Contains(tpl.Content, "SIGNATURES") {
			t.Errorf("%s lacks a signatures section", tpl.Name)
		}
		if !strings.Contains(tpl.Content, "[") {
			t.Errorf("%s lacks fillable placeholders", tpl.Name)
		}
	}

	// Seeding is idempotent once rows exist
	if err := svc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("second SeedDefaults() error = %v", err)
	}
	templates, _ = repo.List(context.Background(), true)
	if len(templates) != 5 {
		t.Errorf("re-seed duplicated templates: %d", len(templates))
	}
}
