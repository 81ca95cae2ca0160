package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Auth.AccessTokenExpiry != 15*time.Minute {
		t.Errorf("Auth.AccessTokenExpiry = %v, want 15m", cfg.Auth.AccessTokenExpiry)
	}
	if cfg.PDF.MaxFileSize != 10*1024*1024 {
		t.Errorf("PDF.MaxFileSize = %d, want 10MB", cfg.PDF.MaxFileSize)
	}
	if cfg.LLM.Provider != "anthropic" {
		t.Errorf("LLM.Provider = %q, want anthropic", cfg.LLM.Provider)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	os.Clearenv()
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("LLM_PROVIDER", "openai")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("LLM.Provider = %q, want openai", cfg.LLM.Provider)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "default JWT secret in production",
			mutate:  func(c *Config) { c.Server.Environment = "production" },
			wantErr: true,
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "unsupported driver",
			mutate:  func(c *Config) { c.Database.Driver = "mysql" },
			wantErr: true,
		},
		{
			name:    "unsupported llm provider",
			mutate:  func(c *Config) { c.LLM.Provider = "gemini" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultPlans(t *testing.T) {
	plans := DefaultPlans()

	free := plans.LimitsFor(PlanFree)
	if free.ReviewsPerMonth != 1 {
		t.Errorf("free ReviewsPerMonth = %d, want 1", free.ReviewsPerMonth)
	}
	if free.FullClauses || free.SuggestedEdits || free.Coaching {
		t.Error("free plan should not have full clauses, edits, or coaching")
	}

	solo := plans.LimitsFor(PlanSolo)
	if solo.ReviewsPerMonth != -1 {
		t.Errorf("solo ReviewsPerMonth = %d, want -1", solo.ReviewsPerMonth)
	}
	if !solo.FullClauses || !solo.SuggestedEdits {
		t.Error("solo plan should have full clauses and suggested edits")
	}
	if solo.Coaching {
		t.Error("solo plan should not have coaching")
	}

	for _, plan := range []string{PlanPro, PlanAgency} {
		limits := plans.LimitsFor(plan)
		if !limits.Coaching {
			t.Errorf("%s plan should have coaching", plan)
		}
	}

	if plans.FreeClauseLimit != 3 {
		t.Errorf("FreeClauseLimit = %d, want 3", plans.FreeClauseLimit)
	}
	if plans.ReviewsPerHour != 10 {
		t.Errorf("ReviewsPerHour = %d, want 10", plans.ReviewsPerHour)
	}
}

func TestLimitsForUnknownPlan(t *testing.T) {
	plans := DefaultPlans()
	got := plans.LimitsFor("enterprise")
	if got.ReviewsPerMonth != 1 {
		t.Errorf("unknown plan should fall back to free, got %+v", got)
	}
}

func TestLoadPlansFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plans.yaml")
	content := `
free_clause_limit: 5
reviews_per_hour: 20
plans:
  free:
    reviews_per_month: 2
  solo:
    reviews_per_month: -1
    full_clauses: true
    suggested_edits: true
  pro:
    reviews_per_month: -1
    full_clauses: true
    suggested_edits: true
    coaching: true
  agency:
    reviews_per_month: -1
    full_clauses: true
    suggested_edits: true
    coaching: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	plans, err := LoadPlans(path)
	if err != nil {
		t.Fatalf("LoadPlans() error = %v", err)
	}
	if plans.FreeClauseLimit != 5 {
		t.Errorf("FreeClauseLimit = %d, want 5", plans.FreeClauseLimit)
	}
	if plans.LimitsFor(PlanFree).ReviewsPerMonth != 2 {
		t.Errorf("free ReviewsPerMonth = %d, want 2", plans.LimitsFor(PlanFree).ReviewsPerMonth)
	}
}

func TestLoadPlansMissingPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plans.yaml")
	if err := os.WriteFile(path, []byte("plans:\n  free:\n    reviews_per_month: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlans(path); err == nil {
		t.Error("LoadPlans() expected error for missing plans")
	}
}
