package profile

import "context"

// Credentials carries a registration or login request.
type Credentials struct {
	Email    string
	Password string
}

// UpdateInput carries the user-mutable profile fields.
type UpdateInput struct {
	FreelancerType *string
	USState        *string
}

// Service defines the interface for profile business logic
type Service interface {
	// Register creates a new profile with a hashed password
	Register(ctx context.Context, creds Credentials) (*Profile, error)

	// Authenticate verifies credentials and returns the profile
	Authenticate(ctx context.Context, creds Credentials) (*Profile, error)

	// GetByID retrieves a profile, lazily resetting a stale monthly counter
	GetByID(ctx context.Context, id int64) (*Profile, error)

	// Update applies the user-mutable fields
	Update(ctx context.Context, id int64, input UpdateInput) (*Profile, error)

	// Delete removes the profile after cancelling any active subscription
	Delete(ctx context.Context, id int64) error

	// SetPlan changes the subscription tier (admin or billing reconciliation)
	SetPlan(ctx context.Context, id int64, plan string) error

	// SetRole changes the role (admin only)
	SetRole(ctx context.Context, id int64, role string) error

	// List retrieves profiles for the admin back-office
	List(ctx context.Context, filter ListFilter) ([]*Profile, int64, error)
}
