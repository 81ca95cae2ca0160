// Package dto defines the request and response shapes of the HTTP API.
package dto

import (
	"time"

	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/domain/review"
	"github.com/freelanceshield/api/internal/domain/template"
)

// Auth

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries a refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthResponse is returned from login, register, and refresh
type AuthResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         *ProfileDTO `json:"user"`
}

// Profile

// ProfileDTO is the public view of a profile
type ProfileDTO struct {
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

// NewProfileDTO maps a domain profile to its public view
func NewProfileDTO(p *profile.Profile) *ProfileDTO {
	return &ProfileDTO{
		ID:                   p.ID,
		Email:                p.Email,
		FreelancerType:       p.FreelancerType,
		USState:              p.USState,
		Plan:                 p.Plan,
		Role:                 p.Role,
		ReviewsUsedThisMonth: p.ReviewsUsedThisMonth,
		ReviewsResetDate:     p.ReviewsResetDate,
		CreatedAt:            p.CreatedAt,
	}
}

// UpdateProfileRequest carries the user-mutable profile fields
type UpdateProfileRequest struct {
	FreelancerType *string `json:"freelancer_type"`
	USState        *string `json:"us_state"`
}

// Reviews

// ReviewDTO is the list/detail view of a review
type ReviewDTO struct {
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

// NewReviewDTO maps a domain review to its public view
func NewReviewDTO(r *review.Review) *ReviewDTO {
	return &ReviewDTO{
		ID:               r.ID,
		FileName:         r.FileName,
		FreelancerType:   r.FreelancerType,
		USState:          r.USState,
		Status:           string(r.Status),
		OverallRiskScore: r.OverallRiskScore,
		RiskSummary:      r.RiskSummary,
		ErrorMessage:     r.ErrorMessage,
		CreatedAt:        r.CreatedAt,
	}
}

// ReportResponse is the plan-gated report view
type ReportResponse struct {
	Review          *ReviewDTO            `json:"review"`
	Clauses         []*review.GatedClause `json:"clauses"`
	TotalClauses    int                   `json:"total_clauses"`
	HiddenClauses   int                   `json:"hidden_clauses"`
	CoachingEnabled bool                  `json:"coaching_enabled"`
}

// NewReportResponse maps a domain report to the API shape
func NewReportResponse(rep *review.Report) *ReportResponse {
	return &ReportResponse{
		Review:          NewReviewDTO(rep.Review),
		Clauses:         rep.Clauses,
		TotalClauses:    rep.TotalClauses,
		HiddenClauses:   rep.HiddenClauses,
		CoachingEnabled: rep.CoachingEnabled,
	}
}

// ShareResponse carries a review's share token
type ShareResponse struct {
	ShareToken string `json:"share_token"`
}

// NegotiateRequest selects a clause for coaching
type NegotiateRequest struct {
	ClauseID int64 `json:"clause_id"`
}

// Demand letters

// DemandLetterRequest carries the demand letter details
type DemandLetterRequest struct {
	ClientName         string  `json:"clientName"`
	ProjectName        string  `json:"projectName"`
	ProjectDescription string  `json:"projectDescription"`
	AmountOwed         float64 `json:"amountOwed"`
	PaymentDueDate     string  `json:"paymentDueDate"`
	PastDueDays        int     `json:"pastDueDays"`
	FreelancerName     string  `json:"freelancerName"`
	USState            string  `json:"usState"`
}

// DemandLetterResponse carries the generated letter text
type DemandLetterResponse struct {
	Letter string `json:"letter"`
}

// Billing

// CheckoutRequest selects a plan for checkout
type CheckoutRequest struct {
	Plan string `json:"plan" validate:"required"`
}

// CheckoutResponse carries the hosted checkout or portal URL
type CheckoutResponse struct {
	URL string `json:"url"`
}

// Templates

// TemplateDTO is the public view of a contract template
type TemplateDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	FreelancerType string `json:"freelancer_type,omitempty"`
	USState        string `json:"us_state,omitempty"`
	IsActive       bool   `json:"is_active"`
}

// NewTemplateDTO maps a domain template to its public view. Content is
// intentionally omitted; it is only delivered as a rendered PDF.
func NewTemplateDTO(t *template.Template) *TemplateDTO {
	return &TemplateDTO{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		FreelancerType: t.FreelancerType,
		USState:        t.USState,
		IsActive:       t.IsActive,
	}
}

// CreateTemplateRequest is the admin template creation payload
type CreateTemplateRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	FreelancerType string `json:"freelancer_type"`
	USState        string `json:"us_state"`
	Content        string `json:"content"`
	IsActive       *bool  `json:"is_active"`
}

// UpdateTemplateRequest is the admin template patch payload
type UpdateTemplateRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	FreelancerType *string `json:"freelancer_type"`
	USState        *string `json:"us_state"`
	Content        *string `json:"content"`
	IsActive       *bool   `json:"is_active"`
}

// Admin

// AdminUpdateUserRequest changes a user's plan or role
type AdminUpdateUserRequest struct {
	UserID int64  `json:"userId"`
	Plan   string `json:"plan"`
	Role   string `json:"role"`
}

// AdminDeleteReviewRequest removes a review by id
type AdminDeleteReviewRequest struct {
	ReviewID int64 `json:"reviewId"`
}
