package template

import "context"

// CreateInput carries an admin template creation request.
type CreateInput struct {
	Name           string
	Description    string
	FreelancerType string
	USState        string
	Content        string
	IsActive       *bool // nil defaults to true
}

// UpdateInput carries an admin template patch; nil fields are untouched.
type UpdateInput struct {
	Name           *string
	Description    *string
	FreelancerType *string
	USState        *string
	Content        *string
	IsActive       *bool
}

// Service defines the interface for template business logic
type Service interface {
	// Create creates a template (admin)
	Create(ctx context.Context, input CreateInput) (*Template, error)

	// GetByID retrieves a template
	GetByID(ctx context.Context, id int64) (*Template, error)

	// GetActive retrieves a template only when it is active
	GetActive(ctx context.Context, id int64) (*Template, error)

	// Update patches a template (admin)
	Update(ctx context.Context, id int64, input UpdateInput) (*Template, error)

	// Delete removes a template (admin)
	Delete(ctx context.Context, id int64) error

	// List retrieves templates; activeOnly for user-facing listings
	List(ctx context.Context, activeOnly bool) ([]*Template, error)

	// SeedDefaults inserts the built-in templates when the table is empty
	SeedDefaults(ctx context.Context) error
}
