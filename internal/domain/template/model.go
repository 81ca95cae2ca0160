package template

import "time"

// Template represents a downloadable contract template
type Template struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	FreelancerType string    `json:"freelancer_type,omitempty"`
	USState        string    `json:"us_state,omitempty"`
	Content        string    `json:"content,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
