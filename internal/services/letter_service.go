package services

import (
	"context"

	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/llm"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
)

// User-facing messages for demand letter generation.
const (
	msgLetterGate = "Payment demand letters require a Pro plan or higher."
	msgLetterFail = "Failed to generate letter. Please try again."
)

// LetterService drafts payment demand letters for overdue invoices.
type LetterService struct {
	profiles profile.Repository
	analyzer llm.Analyzer
	plans    config.PlanConfig
	logger   *logger.Logger
}

// NewLetterService creates a demand letter service
func NewLetterService(profiles profile.Repository, analyzer llm.Analyzer, plans config.PlanConfig, log *logger.Logger) *LetterService {
	return &LetterService{
		profiles: profiles,
		analyzer: analyzer,
		plans:    plans,
		logger:   log,
	}
}

// Generate drafts a demand letter for the user. Coaching-tier plans
// gate this feature the same way they gate negotiation coaching.
func (s *LetterService) Generate(ctx context.Context, userID int64, input llm.DemandLetterInput) (string, error) {
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if !s.plans.LimitsFor(p.Plan).Coaching {
		return "", errors.Forbidden(msgLetterGate)
	}

	if input.ClientName == "" || input.ProjectName == "" || input.AmountOwed <= 0 ||
		input.PaymentDueDate == "" || input.FreelancerName == "" {
		return "", errors.BadRequest("Missing required fields")
	}

	if input.USState == "" {
		input.USState = "United States"
	}
	if input.PastDueDays < 0 {
		input.PastDueDays = 0
	}

	letter, err := s.analyzer.DemandLetter(ctx, input)
	if err != nil {
		s.logger.ErrorWithErr(err, "Demand letter generation failed")
		return "", errors.Upstream(msgLetterFail, err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": userID,
	}).Info("Demand letter generated")
	return letter, nil
}
