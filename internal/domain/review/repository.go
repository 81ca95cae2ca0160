package review

import (
	"context"
	"time"
)

// ListFilter narrows review listings.
type ListFilter struct {
	UserID         int64 // 0 means all users (admin)
	FileNameSearch string
	Status         Status
	Limit          int
	Offset         int
}

// Repository defines the interface for review data access
type Repository interface {
	// Create inserts a new review
	Create(ctx context.Context, r *Review) error

	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id int64) (*Review, error)

	// GetByShareToken retrieves a review by its share token
	GetByShareToken(ctx context.Context, token string) (*Review, error)

	// Update updates a review
	Update(ctx context.Context, r *Review) error

	// Delete removes a review and its clauses
	Delete(ctx context.Context, id int64) error

	// List retrieves reviews matching the filter with a total count
	List(ctx context.Context, filter ListFilter) ([]*Review, int64, error)

	// CountCreatedSince counts a user's reviews created after the given
	// time; used for the rolling-hour rate limit
	CountCreatedSince(ctx context.Context, userID int64, since time.Time) (int64, error)

	// Count returns the total number of reviews
	Count(ctx context.Context) (int64, error)

	// CreateClauses bulk-inserts clauses for a review
	CreateClauses(ctx context.Context, clauses []*Clause) error

	// GetClauses retrieves a review's clauses in report order
	GetClauses(ctx context.Context, reviewID int64) ([]*Clause, error)

	// GetClause retrieves a single clause
	GetClause(ctx context.Context, id int64) (*Clause, error)
}
