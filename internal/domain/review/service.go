package review

import "context"

// CreateInput carries an upload into the creation flow.
type CreateInput struct {
	UserID         int64
	FileName       string
	FileData       []byte
	FreelancerType string
	USState        string
}

// GatedClause is a clause as presented to a viewer, with suggested
// edits stripped when the plan does not include them.
type GatedClause struct {
	ID              int64   `json:"id"`
	ClauseType      string  `json:"clause_type"`
	OriginalText    string  `json:"original_text"`
	RiskLevel       string  `json:"risk_level"`
	PlainEnglish    string  `json:"plain_english"`
	SpecificConcern string  `json:"specific_concern"`
	SuggestedEdit   *string `json:"suggested_edit,omitempty"`
	SortOrder       int     `json:"sort_order"`
}

// Report is the plan-gated view of a completed review.
type Report struct {
	Review          *Review        `json:"review"`
	Clauses         []*GatedClause `json:"clauses"`
	TotalClauses    int            `json:"total_clauses"`
	HiddenClauses   int            `json:"hidden_clauses"`
	CoachingEnabled bool           `json:"coaching_enabled"`
}

// Coaching is the negotiation guidance for one clause.
type Coaching struct {
	TalkingPoints       []string `json:"talking_points"`
	YourPosition        string   `json:"your_position"`
	TheirLikelyResponse string   `json:"their_likely_response"`
	CounterArgument     string   `json:"counter_argument"`
	OpeningScript       string   `json:"opening_script"`
}

// Service defines the interface for review business logic
type Service interface {
	// Create runs the full upload→extract→analyze→persist flow and
	// returns the stored review
	Create(ctx context.Context, input CreateInput) (*Review, error)

	// GetReport returns the plan-gated report for an owned review
	GetReport(ctx context.Context, userID, reviewID int64) (*Report, error)

	// GetSharedReport returns the public clause-limited view by token
	GetSharedReport(ctx context.Context, token string) (*Report, error)

	// Share sets a share token on an owned review and returns it
	Share(ctx context.Context, userID, reviewID int64) (string, error)

	// Negotiate runs coaching for one owned clause (pro/agency only)
	Negotiate(ctx context.Context, userID, reviewID, clauseID int64) (*Coaching, error)

	// List returns the owner's review history
	List(ctx context.Context, userID int64, limit, offset int) ([]*Review, int64, error)

	// Delete removes an owned review and its clauses
	Delete(ctx context.Context, userID, reviewID int64) error
}
