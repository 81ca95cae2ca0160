package review

import (
	"sort"
	"time"
)

// Status is the lifecycle state of a review.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusComplete   Status = "complete"
	StatusError      Status = "error"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusComplete, StatusError:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is allowed.
// The lifecycle only moves forward: pending → processing → complete|error.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing
	case StatusProcessing:
		return next == StatusComplete || next == StatusError
	}
	return false
}

// Risk levels for clauses
const (
	RiskHigh   = "high"
	RiskMedium = "medium"
	RiskLow    = "low"
)

// Review represents one analyzed contract upload
type Review struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	FileName         string    `json:"file_name"`
	RawText          string    `json:"-"`
	FreelancerType   string    `json:"freelancer_type"`
	USState          string    `json:"us_state"`
	Status           Status    `json:"status"`
	OverallRiskScore *int      `json:"overall_risk_score,omitempty"`
	RiskSummary      *string   `json:"risk_summary,omitempty"`
	ErrorMessage     *string   `json:"error_message,omitempty"`
	ShareToken       *string   `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}

// Clause is one flagged passage inside a review
type Clause struct {
	ID              int64     `json:"id"`
	ReviewID        int64     `json:"review_id"`
	ClauseType      string    `json:"clause_type"`
	OriginalText    string    `json:"original_text"`
	RiskLevel       string    `json:"risk_level"`
	PlainEnglish    string    `json:"plain_english"`
	SpecificConcern string    `json:"specific_concern"`
	SuggestedEdit   *string   `json:"suggested_edit,omitempty"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
}

var riskRank = map[string]int{
	RiskHigh:   0,
	RiskMedium: 1,
	RiskLow:    2,
}

// SortClauses orders clauses high→medium→low, then by ascending
// sort_order within a level. This is the canonical report ordering.
func SortClauses(clauses []*Clause) {
	sort.SliceStable(clauses, func(i, j int) bool {
		ri, rj := riskRank[clauses[i].RiskLevel], riskRank[clauses[j].RiskLevel]
		if ri != rj {
			return ri < rj
		}
		return clauses[i].SortOrder < clauses[j].SortOrder
	})
}
