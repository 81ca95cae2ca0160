package services

import (
	"context"
	"strings"
	"time"

	"github.com/freelanceshield/api/internal/auth"
	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
)

// SubscriptionCanceler cancels a billing-provider subscription. It is
// satisfied by BillingService and kept narrow so account deletion does
// not depend on the whole billing surface.
type SubscriptionCanceler interface {
	CancelSubscription(ctx context.Context, subscriptionID string) error
}

// ProfileService implements profile.Service
type ProfileService struct {
	repo     profile.Repository
	canceler SubscriptionCanceler
	notifier Notifier
	cfg      config.AuthConfig
	logger   *logger.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(repo profile.Repository, canceler SubscriptionCanceler, notifier Notifier, cfg config.AuthConfig, log *logger.Logger) profile.Service {
	return &ProfileService{
		repo:     repo,
		canceler: canceler,
		notifier: notifier,
		cfg:      cfg,
		logger:   log,
	}
}

// Register creates a new account on the free plan
func (s *ProfileService) Register(ctx context.Context, creds profile.Credentials) (*profile.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || creds.Password == "" {
		return nil, errors.BadRequest("Email and password are required")
	}
	if len(creds.Password) < 8 {
		return nil, errors.BadRequest("Password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(creds.Password, s.cfg.BCryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	p := &profile.Profile{
		Email:            email,
		PasswordHash:     hash,
		Plan:             config.PlanFree,
		Role:             profile.RoleUser,
		ReviewsResetDate: time.Now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": p.ID,
		"email":   p.Email,
	}).Info("User registered")

	s.notifier.SendWelcome(p.Email)

	return p, nil
}

// Authenticate verifies credentials. Failures are deliberately
// indistinguishable between unknown email and wrong password.
func (s *ProfileService) Authenticate(ctx context.Context, creds profile.Credentials) (*profile.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	p, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or password")
	}
	if !auth.CheckPassword(p.PasswordHash, creds.Password) {
		return nil, errors.Unauthorized("Invalid email or password")
	}
	return p, nil
}

// GetByID retrieves a profile, rolling the monthly usage counter over
// when 30 days have elapsed since the last reset.
func (s *ProfileService) GetByID(ctx context.Context, id int64) (*profile.Profile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.NeedsMonthlyReset(time.Now()) {
		if err := s.repo.ResetMonthlyUsage(ctx, p.ID); err != nil {
			s.logger.ErrorWithErr(err, "Failed to reset monthly usage")
		} else {
			p.ReviewsUsedThisMonth = 0
			p.ReviewsResetDate = time.Now()
		}
	}

	return p, nil
}

// Update applies the user-mutable fields only
func (s *ProfileService) Update(ctx context.Context, id int64, input profile.UpdateInput) (*profile.Profile, error) {
	if input.FreelancerType == nil && input.USState == nil {
		return nil, errors.BadRequest("No valid fields to update")
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FreelancerType != nil {
		p.FreelancerType = *input.FreelancerType
	}
	if input.USState != nil {
		p.USState = *input.USState
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete cancels any active subscription, then removes the account.
// A Stripe failure does not block deletion.
func (s *ProfileService) Delete(ctx context.Context, id int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if p.StripeSubscriptionID != nil && *p.StripeSubscriptionID != "" {
		if err := s.canceler.CancelSubscription(ctx, *p.StripeSubscriptionID); err != nil {
			s.logger.ErrorWithErr(err, "Failed to cancel subscription during account deletion")
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{"user_id": id}).Info("Account deleted")
	return nil
}

// SetPlan changes the subscription tier
func (s *ProfileService) SetPlan(ctx context.Context, id int64, plan string) error {
	if !config.IsValidPlan(plan) {
		return errors.BadRequest("Invalid plan")
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Plan = plan
	return s.repo.Update(ctx, p)
}

// SetRole changes the role (admin only)
func (s *ProfileService) SetRole(ctx context.Context, id int64, role string) error {
	if role != profile.RoleUser && role != profile.RoleAdmin {
		return errors.BadRequest("Invalid role")
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Role = role
	return s.repo.Update(ctx, p)
}

// List retrieves profiles for the admin back-office
func (s *ProfileService) List(ctx context.Context, filter profile.ListFilter) ([]*profile.Profile, int64, error) {
	return s.repo.List(ctx, filter)
}
