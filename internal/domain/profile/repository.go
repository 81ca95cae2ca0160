package profile

import (
	"context"
	"time"
)

// ListFilter narrows admin profile listings.
type ListFilter struct {
	EmailSearch string
	Plan        string
	Limit       int
	Offset      int
}

// Repository defines the interface for profile data access
type Repository interface {
	// Create creates a new profile
	Create(ctx context.Context, p *Profile) error

	// GetByID retrieves a profile by ID
	GetByID(ctx context.Context, id int64) (*Profile, error)

	// GetByEmail retrieves a profile by email
	GetByEmail(ctx context.Context, email string) (*Profile, error)

	// GetByStripeCustomerID retrieves a profile by its Stripe customer id
	GetByStripeCustomerID(ctx context.Context, customerID string) (*Profile, error)

	// Update updates a profile
	Update(ctx context.Context, p *Profile) error

	// Delete deletes a profile
	Delete(ctx context.Context, id int64) error

	// List retrieves profiles matching the filter with a total count
	List(ctx context.Context, filter ListFilter) ([]*Profile, int64, error)

	// IncrementReviewsUsed bumps the monthly usage counter
	IncrementReviewsUsed(ctx context.Context, id int64) error

	// ResetMonthlyUsage zeroes the counter and stamps a new reset date
	ResetMonthlyUsage(ctx context.Context, id int64) error

	// Count returns the total number of profiles
	Count(ctx context.Context) (int64, error)

	// CountCreatedSince returns profiles created after the given time
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
