package services

import (
	"context"

	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/domain/review"
	"github.com/freelanceshield/api/internal/pkg/logger"
)

// Stats is the admin dashboard summary.
type Stats struct {
	TotalUsers    int64              `json:"total_users"`
	TotalReviews  int64              `json:"total_reviews"`
	SoloUsers     int64              `json:"solo_users"`
	FreeUsers     int64              `json:"free_users"`
	RecentSignups []*profile.Profile `json:"recent_signups"`
	RecentReviews []*review.Review   `json:"recent_reviews"`
}

// AdminService backs the admin back-office: cross-user listings,
// moderation deletes, and the stats dashboard.
type AdminService struct {
	profiles profile.Repository
	reviews  review.Repository
	logger   *logger.Logger
}

// NewAdminService creates an admin service
func NewAdminService(profiles profile.Repository, reviews review.Repository, log *logger.Logger) *AdminService {
	return &AdminService{
		profiles: profiles,
		reviews:  reviews,
		logger:   log,
	}
}

// ListReviews lists reviews across all users
func (s *AdminService) ListReviews(ctx context.Context, filter review.ListFilter) ([]*review.Review, int64, error) {
	return s.reviews.List(ctx, filter)
}

// DeleteReview removes any user's review
func (s *AdminService) DeleteReview(ctx context.Context, reviewID int64) error {
	if _, err := s.reviews.GetByID(ctx, reviewID); err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	s.logger.WithFields(map[string]interface{}{"review_id": reviewID}).Info("Review deleted by admin")
	return nil
}

// GetStats assembles the dashboard summary
func (s *AdminService) GetStats(ctx context.Context) (*Stats, error) {
	totalUsers, err := s.profiles.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalReviews, err := s.reviews.Count(ctx)
	if err != nil {
		return nil, err
	}

	_, soloUsers, err := s.profiles.List(ctx, profile.ListFilter{Plan: config.PlanSolo, Limit: 1})
	if err != nil {
		return nil, err
	}
	_, freeUsers, err := s.profiles.List(ctx, profile.ListFilter{Plan: config.PlanFree, Limit: 1})
	if err != nil {
		return nil, err
	}

	recentSignups, _, err := s.profiles.List(ctx, profile.ListFilter{Limit: 5})
	if err != nil {
		return nil, err
	}
	recentReviews, _, err := s.reviews.List(ctx, review.ListFilter{Limit: 5})
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalUsers:    totalUsers,
		TotalReviews:  totalReviews,
		SoloUsers:     soloUsers,
		FreeUsers:     freeUsers,
		RecentSignups: recentSignups,
		RecentReviews: recentReviews,
	}, nil
}
