package profile

import "time"

// Profile represents a freelancer account in the system
type Profile struct {
	ID                   int64     `json:"id"`
	Email                string    `json:"email"`
	PasswordHash         string    `json:"-"` // Not exposed in JSON
	FreelancerType       string    `json:"freelancer_type,omitempty"`
	USState              string    `json:"us_state,omitempty"`
	Plan                 string    `json:"plan"`
	Role                 string    `json:"role"`
	StripeCustomerID     *string   `json:"-"`
	StripeSubscriptionID *string   `json:"-"`
	ReviewsUsedThisMonth int       `json:"reviews_used_this_month"`
	ReviewsResetDate     time.Time `json:"reviews_reset_date"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Profile roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// IsAdmin reports whether the profile has the admin role.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// NeedsMonthlyReset reports whether the usage counter is stale. The
// counter rolls over once 30 days have elapsed since the last reset,
// checked lazily before quota evaluation rather than by a scheduler.
func (p *Profile) NeedsMonthlyReset(now time.Time) bool {
	return now.Sub(p.ReviewsResetDate) >= 30*24*time.Hour
}
