package template

import "context"

// Repository defines the interface for template data access
type Repository interface {
	// Create creates a new template
	Create(ctx context.Context, t *Template) error

	// GetByID retrieves a template by ID
	GetByID(ctx context.Context, id int64) (*Template, error)

	// Update updates a template
	Update(ctx context.Context, t *Template) error

	// Delete deletes a template
	Delete(ctx context.Context, id int64) error

	// List retrieves templates; activeOnly hides inactive ones
	List(ctx context.Context, activeOnly bool) ([]*Template, error)

	// Count returns the total number of templates
	Count(ctx context.Context) (int64, error)
}
