package postgres_test

import (
	"context"
	"testing"

	"github.com/freelanceshield/api/internal/domain/template"
	"github.com/freelanceshield/api/internal/repository/postgres"
	"github.com/freelanceshield/api/internal/testutil"
)

func TestTemplateRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewTemplateRepository(db)
	ctx := context.Background()

	tpl := &template.Template{
		Name:           "Basic NDA",
		Description:    "A mutual NDA",
		FreelancerType: "developer",
		Content:        "MUTUAL NON-DISCLOSURE AGREEMENT\n\n1. DEFINITIONS",
		IsActive:       true,
	}
	if err := repo.Create(ctx, tpl); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Basic NDA" || got.FreelancerType != "developer" || !got.IsActive {
		t.Errorf("unexpected template: %+v", got)
	}
	if got.Content != tpl.Content {
		t.Errorf("content not persisted")
	}

	got.IsActive = false
	got.Description = "Retired"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}

	updated, err := repo.GetByID(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if updated.IsActive || updated.Description != "Retired" {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestTemplateListActiveOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewTemplateRepository(db)
	ctx := context.Background()

	seed := []struct {
		name   string
		active bool
	}{
		{"Active A", true},
		{"Active B", true},
		{"Retired", false},
	}
	for _, s := range seed {
		tpl := &template.Template{Name: s.name, Content: "body", IsActive: s.active}
		if err := repo.Create(ctx, tpl); err != nil {
			t.Fatalf("Create %s: %v", s.name, err)
		}
	}

	all, err := repo.List(ctx, false)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}

	active, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("List active: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("len(active) = %d, want 2", len(active))
	}
	for _, tpl := range active {
		if !tpl.IsActive {
			t.Errorf("inactive template %q in active listing", tpl.Name)
		}
	}

	total, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 3 {
		t.Errorf("Count = %d, want 3", total)
	}
}

func TestTemplateDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewTemplateRepository(db)
	ctx := context.Background()

	tpl := &template.Template{Name: "Gone", Content: "body", IsActive: true}
	if err := repo.Create(ctx, tpl); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, tpl.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, tpl.ID); err == nil {
		t.Fatal("expected template to be gone")
	}
}
