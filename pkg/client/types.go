package client

import (
	"encoding/json"
	"time"
)

// User is the public view of an account
type User struct {
	ID                   int64     `json:"id"`
	Email                string    `json:"email"`
	FreelancerType       string    `json:"freelancer_type,omitempty"`
	USState              string    `json:"us_state,omitempty"`
	Plan                 string    `json:"plan"`
	Role                 string    `json:"role"`
	ReviewsUsedThisMonth int       `json:"reviews_used_this_month"`
	ReviewsResetDate     time.Time `json:"reviews_reset_date"`
	CreatedAt            time.Time `json:"created_at"`
}

// Review is a contract review record
type Review struct {
	ID               int64     `json:"id"`
	FileName         string    `json:"file_name"`
	FreelancerType   string    `json:"freelancer_type,omitempty"`
	USState          string    `json:"us_state,omitempty"`
	Status           string    `json:"status"`
	OverallRiskScore *int      `json:"overall_risk_score,omitempty"`
	RiskSummary      *string   `json:"risk_summary,omitempty"`
	ErrorMessage     *string   `json:"error_message,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Clause is a flagged contract clause in a report
type Clause struct {
	ID              int64   `json:"id"`
	ClauseType      string  `json:"clause_type"`
	OriginalText    string  `json:"original_text"`
	RiskLevel       string  `json:"risk_level"`
	PlainEnglish    string  `json:"plain_english"`
	SpecificConcern string  `json:"specific_concern"`
	SuggestedEdit   *string `json:"suggested_edit,omitempty"`
	SortOrder       int     `json:"sort_order"`
}

// Report is the plan-gated view of a completed review
type Report struct {
	Review          *Review   `json:"review"`
	Clauses         []*Clause `json:"clauses"`
	TotalClauses    int       `json:"total_clauses"`
	HiddenClauses   int       `json:"hidden_clauses"`
	CoachingEnabled bool      `json:"coaching_enabled"`
}

// Coaching is negotiation guidance for one clause
type Coaching struct {
	TalkingPoints       []string `json:"talking_points"`
	YourPosition        string   `json:"your_position"`
	TheirLikelyResponse string   `json:"their_likely_response"`
	CounterArgument     string   `json:"counter_argument"`
	OpeningScript       string   `json:"opening_script"`
}

// Template is a contract template catalog entry
type Template struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	FreelancerType string `json:"freelancer_type,omitempty"`
	USState        string `json:"us_state,omitempty"`
	IsActive       bool   `json:"is_active"`
}

// Plan is a subscription plan catalog entry
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PriceMonthly int      `json:"price_monthly"`
	Features     []string `json:"features"`
}

// Stats is the admin dashboard summary
type Stats struct {
	TotalUsers    int64     `json:"total_users"`
	TotalReviews  int64     `json:"total_reviews"`
	SoloUsers     int64     `json:"solo_users"`
	FreeUsers     int64     `json:"free_users"`
	RecentSignups []*User   `json:"recent_signups"`
	RecentReviews []*Review `json:"recent_reviews"`
}

// Page is a paginated listing
type Page struct {
	Data       json.RawMessage `json:"data"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalItems int64           `json:"total_items"`
	TotalPages int             `json:"total_pages"`
}
