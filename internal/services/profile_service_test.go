package services

import (
	"context"
	"testing"
	"time"

	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/testutil"
)

type stubCanceler struct {
	cancelled []string
	err       error
}

func (s *stubCanceler) CancelSubscription(ctx context.Context, subscriptionID string) error {
	s.cancelled = append(s.cancelled, subscriptionID)
	return s.err
}

func newProfileService(repo *testutil.MockProfileRepository, canceler *stubCanceler, notifier *testutil.FakeNotifier) profile.Service {
	return NewProfileService(repo, canceler, notifier,
		config.AuthConfig{BCryptCost: 4}, testLogger())
}

func TestRegister(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	notifier := &testutil.FakeNotifier{}
	svc := newProfileService(repo, &stubCanceler{}, notifier)

	p, err := svc.Register(context.Background(), profile.Credentials{
		Email:    "  Dana@Example.com ",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if p.Email != "dana@example.com" {
		t.Errorf("email = %q, want normalized lowercase", p.Email)
	}
	if p.Plan != config.PlanFree {
		t.Errorf("plan = %q, want free", p.Plan)
	}
	if p.Role != profile.RoleUser {
		t.Errorf("role = %q, want user", p.Role)
	}
	if p.PasswordHash == "correct-horse" || p.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if len(notifier.Welcomes) != 1 {
		t.Errorf("welcome emails = %d, want 1", len(notifier.Welcomes))
	}
}

func TestRegisterValidation(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	svc := newProfileService(repo, &stubCanceler{}, &testutil.FakeNotifier{})

	tests := []struct {
		name  string
		creds profile.Credentials
	}{
		{"missing email", profile.Credentials{Password: "longenough"}},
		{"missing password", profile.Credentials{Email: "a@b.com"}},
		{"short password", profile.Credentials{Email: "a@b.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tt.creds); err == nil {
				t.Error("Register() expected error")
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	svc := newProfileService(repo, &stubCanceler{}, &testutil.FakeNotifier{})

	creds := profile.Credentials{Email: "dup@example.com", Password: "correct-horse"}
	if _, err := svc.Register(context.Background(), creds); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	_, err := svc.Register(context.Background(), creds)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeConflict {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	svc := newProfileService(repo, &stubCanceler{}, &testutil.FakeNotifier{})

	creds := profile.Credentials{Email: "dana@example.com", Password: "correct-horse"}
	if _, err := svc.Register(context.Background(), creds); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), creds); err != nil {
		t.Errorf("Authenticate() with valid creds error = %v", err)
	}

	// Wrong password and unknown email return the same error
	_, errWrongPass := svc.Authenticate(context.Background(), profile.Credentials{Email: creds.Email, Password: "wrong"})
	_, errNoUser := svc.Authenticate(context.Background(), profile.Credentials{Email: "nobody@example.com", Password: "wrong"})
	if errWrongPass == nil || errNoUser == nil {
		t.Fatal("invalid credentials must fail")
	}
	if errWrongPass.Error() != errNoUser.Error() {
		t.Errorf("auth failures differ: %q vs %q", errWrongPass, errNoUser)
	}
}

func TestGetByIDLazyReset(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	svc := newProfileService(repo, &stubCanceler{}, &testutil.FakeNotifier{})

	p := &profile.Profile{
		Email:                "stale@example.com",
		Plan:                 config.PlanFree,
		ReviewsUsedThisMonth: 1,
		ReviewsResetDate:     time.Now().Add(-31 * 24 * time.Hour),
	}
	_ = repo.Create(context.Background(), p)

	got, err := svc.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.ReviewsUsedThisMonth != 0 {
		t.Errorf("usage = %d, want 0 after lazy reset", got.ReviewsUsedThisMonth)
	}
}

func TestUpdateNoFields(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	svc := newProfileService(repo, &stubCanceler{}, &testutil.FakeNotifier{})

	p := &profile.Profile{Email: "a@b.com", Plan: config.PlanFree}
	_ = repo.Create(context.Background(), p)

	_, err := svc.Update(context.Background(), p.ID, profile.UpdateInput{})
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeBadRequest {
		t.Fatalf("err = %v, want bad request", err)
	}
}

func TestUpdateMutableFields(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	svc := newProfileService(repo, &stubCanceler{}, &testutil.FakeNotifier{})

	p := &profile.Profile{Email: "a@b.com", Plan: config.PlanFree}
	_ = repo.Create(context.Background(), p)

	ftype := "developer"
	state := "CA"
	got, err := svc.Update(context.Background(), p.ID, profile.UpdateInput{
		FreelancerType: &ftype,
		USState:        &state,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.FreelancerType != "developer" || got.USState != "CA" {
		t.Errorf("got %q/%q, want developer/CA", got.FreelancerType, got.USState)
	}
}

func TestDeleteCancelsSubscription(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	canceler := &stubCanceler{}
	svc := newProfileService(repo, canceler, &testutil.FakeNotifier{})

	subID := "sub_123"
	p := &profile.Profile{Email: "a@b.com", Plan: config.PlanPro, StripeSubscriptionID: &subID}
	_ = repo.Create(context.Background(), p)

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(canceler.cancelled) != 1 || canceler.cancelled[0] != "sub_123" {
		t.Errorf("cancelled = %v, want [sub_123]", canceler.cancelled)
	}
	if len(repo.Profiles) != 0 {
		t.Error("profile not deleted")
	}
}

func TestDeleteContinuesOnCancelFailure(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	canceler := &stubCanceler{err: errors.ServiceUnavailable("stripe down")}
	svc := newProfileService(repo, canceler, &testutil.FakeNotifier{})

	subID := "sub_456"
	p := &profile.Profile{Email: "a@b.com", Plan: config.PlanPro, StripeSubscriptionID: &subID}
	_ = repo.Create(context.Background(), p)

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("Delete() must proceed past cancel failure, error = %v", err)
	}
	if len(repo.Profiles) != 0 {
		t.Error("profile not deleted")
	}
}

func TestSetPlanValidation(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	svc := newProfileService(repo, &stubCanceler{}, &testutil.FakeNotifier{})

	p := &profile.Profile{Email: "a@b.com", Plan: config.PlanFree}
	_ = repo.Create(context.Background(), p)

	if err := svc.SetPlan(context.Background(), p.ID, "platinum"); err == nil {
		t.Error("SetPlan() with unknown plan expected error")
	}
	if err := svc.SetPlan(context.Background(), p.ID, config.PlanAgency); err != nil {
		t.Errorf("SetPlan() error = %v", err)
	}
	if repo.Profiles[p.ID].Plan != config.PlanAgency {
		t.Errorf("plan = %q, want agency", repo.Profiles[p.ID].Plan)
	}
}
