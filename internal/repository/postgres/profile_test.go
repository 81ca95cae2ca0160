package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/repository/postgres"
	"github.com/freelanceshield/api/internal/testutil"
)

func newProfile(email string) *profile.Profile {
	return &profile.Profile{
		Email:        email,
		PasswordHash: "$2a$12$hash",
		Plan:         config.PlanFree,
		Role:         profile.RoleUser,
	}
}

func TestProfileCreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(db)
	ctx := context.Background()

	p := newProfile("maria@example.com")
	p.FreelancerType = "designer"
	p.USState = "CA"
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected ID to be assigned")
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "maria@example.com" || got.FreelancerType != "designer" || got.USState != "CA" {
		t.Errorf("unexpected profile: %+v", got)
	}
	if got.Plan != config.PlanFree || got.Role != profile.RoleUser {
		t.Errorf("plan/role = %s/%s", got.Plan, got.Role)
	}

	byEmail, err := repo.GetByEmail(ctx, "maria@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.ID != p.ID {
		t.Errorf("GetByEmail ID = %d, want %d", byEmail.ID, p.ID)
	}
}

func TestProfileDuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, newProfile("dup@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := repo.Create(ctx, newProfile("dup@example.com"))
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestProfileGetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProfileUpdateAndStripeLookup(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(db)
	ctx := context.Background()

	p := newProfile("stripe@example.com")
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	customerID := "cus_123"
	subscriptionID := "sub_456"
	p.Plan = config.PlanPro
	p.StripeCustomerID = &customerID
	p.StripeSubscriptionID = &subscriptionID
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByStripeCustomerID(ctx, "cus_123")
	if err != nil {
		t.Fatalf("GetByStripeCustomerID: %v", err)
	}
	if got.ID != p.ID || got.Plan != config.PlanPro {
		t.Errorf("got ID=%d plan=%s", got.ID, got.Plan)
	}
	if got.StripeSubscriptionID == nil || *got.StripeSubscriptionID != "sub_456" {
		t.Errorf("subscription ID not persisted: %v", got.StripeSubscriptionID)
	}
}

func TestProfileUsageCounters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(db)
	ctx := context.Background()

	p := newProfile("usage@example.com")
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := repo.IncrementReviewsUsed(ctx, p.ID); err != nil {
			t.Fatalf("IncrementReviewsUsed: %v", err)
		}
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ReviewsUsedThisMonth != 3 {
		t.Errorf("ReviewsUsedThisMonth = %d, want 3", got.ReviewsUsedThisMonth)
	}

	before := time.Now().Add(-time.Minute)
	if err := repo.ResetMonthlyUsage(ctx, p.ID); err != nil {
		t.Fatalf("ResetMonthlyUsage: %v", err)
	}

	got, err = repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID after reset: %v", err)
	}
	if got.ReviewsUsedThisMonth != 0 {
		t.Errorf("ReviewsUsedThisMonth = %d after reset", got.ReviewsUsedThisMonth)
	}
	if got.ReviewsResetDate.Before(before) {
		t.Errorf("reset date %v not refreshed", got.ReviewsResetDate)
	}
}

func TestProfileListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(db)
	ctx := context.Background()

	emails := map[string]string{
		"alice@acme.com":  config.PlanFree,
		"bob@acme.com":    config.PlanSolo,
		"carol@other.org": config.PlanSolo,
	}
	for email, plan := range emails {
		p := newProfile(email)
		p.Plan = plan
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create %s: %v", email, err)
		}
	}

	tests := []struct {
		name      string
		filter    profile.ListFilter
		wantTotal int64
	}{
		{"all", profile.ListFilter{Limit: 10}, 3},
		{"email search", profile.ListFilter{EmailSearch: "acme", Limit: 10}, 2},
		{"plan filter", profile.ListFilter{Plan: config.PlanSolo, Limit: 10}, 2},
		{"combined", profile.ListFilter{EmailSearch: "acme", Plan: config.PlanSolo, Limit: 10}, 1},
		{"no match", profile.ListFilter{EmailSearch: "nobody", Limit: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles, total, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if int64(len(profiles)) != tt.wantTotal {
				t.Errorf("len(profiles) = %d, want %d", len(profiles), tt.wantTotal)
			}
		})
	}

	// Pagination keeps the full count
	page, total, err := repo.List(ctx, profile.ListFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List page: %v", err)
	}
	if len(page) != 2 || total != 3 {
		t.Errorf("page len=%d total=%d, want 2/3", len(page), total)
	}
}

func TestProfileDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(db)
	ctx := context.Background()

	p := newProfile("gone@example.com")
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.GetByID(ctx, p.ID); err == nil {
		t.Fatal("expected profile to be gone")
	}

	err := repo.Delete(ctx, p.ID)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
