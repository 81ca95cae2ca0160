package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/domain/review"
	"github.com/freelanceshield/api/internal/llm"
	"github.com/freelanceshield/api/internal/pdf"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
	"github.com/freelanceshield/api/internal/pkg/metrics"
)

// minContractChars is the floor below which extracted text is treated
// as a scanned or image-only PDF.
const minContractChars = 50

// User-facing messages for the review flow.
const (
	msgQuotaExceeded = "You've used your 1 free review this month. Upgrade to Solo for unlimited reviews."
	msgRateLimited   = "Too many requests. Please wait before submitting another review."
	msgFileTooLarge  = "File too large. Maximum size is 10MB."
	msgNoTextInPDF   = "Could not extract text from this PDF. Please ensure it is a text-based PDF and not a scanned image."
	msgAnalysisFail  = "Analysis failed. Our AI service encountered an error. Please try again."
	msgNotAContract  = "This document doesn't look like a contract. FreelanceShield works best with service agreements, NDAs, and client contracts."
	msgCoachingGate  = "Negotiation coaching requires a Pro plan or higher."
	msgCoachingFail  = "Failed to generate coaching. Please try again."
)

// ReviewService implements review.Service
type ReviewService struct {
	repo      review.Repository
	profiles  profile.Repository
	analyzer  llm.Analyzer
	extractor pdf.Extractor
	notifier  Notifier
	plans     config.PlanConfig
	maxUpload int64
	logger    *logger.Logger

	// Coaching results are cached per clause so repeat requests don't
	// re-bill the model.
	coachingMu    sync.Mutex
	coachingCache map[string]*review.Coaching
}

// NewReviewService creates a new review service
func NewReviewService(
	repo review.Repository,
	profiles profile.Repository,
	analyzer llm.Analyzer,
	extractor pdf.Extractor,
	notifier Notifier,
	plans config.PlanConfig,
	maxUpload int64,
	log *logger.Logger,
) review.Service {
	return &ReviewService{
		repo:          repo,
		profiles:      profiles,
		analyzer:      analyzer,
		extractor:     extractor,
		notifier:      notifier,
		plans:         plans,
		maxUpload:     maxUpload,
		logger:        log,
		coachingCache: make(map[string]*review.Coaching),
	}
}

// Create runs the full upload flow: quota and rate checks, extraction,
// analysis, and persistence of the review with its clauses.
func (s *ReviewService) Create(ctx context.Context, input review.CreateInput) (*review.Review, error) {
	p, err := s.profiles.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if p.NeedsMonthlyReset(time.Now()) {
		if err := s.profiles.ResetMonthlyUsage(ctx, p.ID); err != nil {
			return nil, err
		}
		p.ReviewsUsedThisMonth = 0
	}

	limits := s.plans.LimitsFor(p.Plan)
	if limits.ReviewsPerMonth >= 0 && p.ReviewsUsedThisMonth >= limits.ReviewsPerMonth {
		return nil, errors.QuotaExceeded(msgQuotaExceeded)
	}

	recent, err := s.repo.CountCreatedSince(ctx, p.ID, time.Now().Add(-time.Hour))
	if err != nil {
		return nil, err
	}
	if recent >= int64(s.plans.ReviewsPerHour) {
		return nil, errors.RateLimited(msgRateLimited)
	}

	if s.maxUpload > 0 && int64(len(input.FileData)) > s.maxUpload {
		return nil, errors.PayloadTooLarge(msgFileTooLarge)
	}

	extracted, err := s.extractor.Extract(ctx, input.FileData)
	if err != nil {
		return nil, err
	}
	if extracted.CharCount < minContractChars {
		return nil, errors.Unprocessable(msgNoTextInPDF)
	}

	freelancerType := input.FreelancerType
	if freelancerType == "" {
		freelancerType = p.FreelancerType
	}
	usState := input.USState
	if usState == "" {
		usState = p.USState
	}

	// The row exists before analysis so a model failure leaves an
	// inspectable error record rather than a vanished upload.
	r := &review.Review{
		UserID:         p.ID,
		FileName:       input.FileName,
		RawText:        extracted.Text,
		FreelancerType: freelancerType,
		USState:        usState,
		Status:         review.StatusProcessing,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	result, err := s.analyzer.AnalyzeContract(ctx, extracted.Text, freelancerType, usState)
	if err != nil {
		s.markError(ctx, r, msgAnalysisFail)
		metrics.AnalysisFailures.Inc()
		s.logger.ErrorWithErr(err, "Contract analysis failed")
		return nil, errors.Upstream(msgAnalysisFail, err).WithDetails(map[string]interface{}{
			"review_id": r.ID,
		})
	}

	if !result.IsContract {
		s.markError(ctx, r, msgNotAContract)
		return nil, errors.Unprocessable(msgNotAContract).WithDetails(map[string]interface{}{
			"review_id": r.ID,
		})
	}

	clauses := make([]*review.Clause, 0, len(result.Clauses))
	for i, c := range result.Clauses {
		// Position in the response stands in when the model omits the field.
		sortOrder := i
		if c.SortOrder != nil {
			sortOrder = *c.SortOrder
		}
		clause := &review.Clause{
			ReviewID:        r.ID,
			ClauseType:      c.ClauseType,
			OriginalText:    c.OriginalText,
			RiskLevel:       c.RiskLevel,
			PlainEnglish:    c.PlainEnglish,
			SpecificConcern: c.SpecificConcern,
			SortOrder:       sortOrder,
		}
		if c.SuggestedEdit != "" {
			edit := c.SuggestedEdit
			clause.SuggestedEdit = &edit
		}
		clauses = append(clauses, clause)
	}
	if len(clauses) > 0 {
		if err := s.repo.CreateClauses(ctx, clauses); err != nil {
			s.markError(ctx, r, msgAnalysisFail)
			return nil, err
		}
	}

	score := result.OverallRiskScore
	summary := result.RiskSummary
	r.Status = review.StatusComplete
	r.OverallRiskScore = &score
	r.RiskSummary = &summary
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err := s.profiles.IncrementReviewsUsed(ctx, p.ID); err != nil {
		s.logger.ErrorWithErr(err, "Failed to increment usage counter")
	}

	metrics.ReviewsCompleted.Inc()
	s.logger.WithFields(map[string]interface{}{
		"review_id":  r.ID,
		"user_id":    p.ID,
		"risk_score": score,
		"clauses":    len(clauses),
	}).Info("Review completed")

	s.notifier.SendAnalysisComplete(p.Email, r.ID, score)

	return r, nil
}

func (s *ReviewService) markError(ctx context.Context, r *review.Review, message string) {
	if !r.Status.CanTransition(review.StatusError) {
		return
	}
	r.Status = review.StatusError
	r.ErrorMessage = &message
	if err := s.repo.Update(ctx, r); err != nil {
		s.logger.ErrorWithErr(err, "Failed to mark review as errored")
	}
}

// GetReport returns the plan-gated report for an owned review
func (s *ReviewService) GetReport(ctx context.Context, userID, reviewID int64) (*review.Report, error) {
	r, err := s.ownedReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	limits := s.plans.LimitsFor(p.Plan)
	return s.buildReport(ctx, r, limits)
}

// GetSharedReport returns the public view of a shared review. Shared
// links always get the limited rendition regardless of the owner's plan.
func (s *ReviewService) GetSharedReport(ctx context.Context, token string) (*review.Report, error) {
	r, err := s.repo.GetByShareToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if r.Status != review.StatusComplete {
		return nil, errors.NotFound("Review")
	}

	return s.buildReport(ctx, r, s.plans.LimitsFor(config.PlanFree))
}

func (s *ReviewService) buildReport(ctx context.Context, r *review.Review, limits config.PlanLimits) (*review.Report, error) {
	clauses, err := s.repo.GetClauses(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	total := len(clauses)
	visible := clauses
	if !limits.FullClauses && total > s.plans.FreeClauseLimit {
		visible = clauses[:s.plans.FreeClauseLimit]
	}

	gated := make([]*review.GatedClause, 0, len(visible))
	for _, c := range visible {
		g := &review.GatedClause{
			ID:              c.ID,
			ClauseType:      c.ClauseType,
			OriginalText:    c.OriginalText,
			RiskLevel:       c.RiskLevel,
			PlainEnglish:    c.PlainEnglish,
			SpecificConcern: c.SpecificConcern,
			SortOrder:       c.SortOrder,
		}
		if limits.SuggestedEdits {
			g.SuggestedEdit = c.SuggestedEdit
		}
		gated = append(gated, g)
	}

	return &review.Report{
		Review:          r,
		Clauses:         gated,
		TotalClauses:    total,
		HiddenClauses:   total - len(visible),
		CoachingEnabled: limits.Coaching,
	}, nil
}

// Share sets a share token on an owned review and returns it
func (s *ReviewService) Share(ctx context.Context, userID, reviewID int64) (string, error) {
	r, err := s.ownedReview(ctx, userID, reviewID)
	if err != nil {
		return "", err
	}
	if r.Status != review.StatusComplete {
		return "", errors.BadRequest("Only completed reviews can be shared")
	}
	if r.ShareToken != nil && *r.ShareToken != "" {
		return *r.ShareToken, nil
	}

	token := uuid.NewString()
	r.ShareToken = &token
	if err := s.repo.Update(ctx, r); err != nil {
		return "", err
	}
	return token, nil
}

// Negotiate runs coaching for one owned clause (pro/agency only)
func (s *ReviewService) Negotiate(ctx context.Context, userID, reviewID, clauseID int64) (*review.Coaching, error) {
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !s.plans.LimitsFor(p.Plan).Coaching {
		return nil, errors.Forbidden(msgCoachingGate)
	}

	r, err := s.ownedReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	clause, err := s.repo.GetClause(ctx, clauseID)
	if err != nil {
		return nil, err
	}
	if clause.ReviewID != r.ID {
		return nil, errors.NotFound("Clause")
	}

	cacheKey := fmt.Sprintf("%d:%d", reviewID, clauseID)
	s.coachingMu.Lock()
	if cached, ok := s.coachingCache[cacheKey]; ok {
		s.coachingMu.Unlock()
		return cached, nil
	}
	s.coachingMu.Unlock()

	result, err := s.analyzer.NegotiationCoaching(ctx, llm.CoachingInput{
		ClauseType:      clause.ClauseType,
		OriginalText:    clause.OriginalText,
		SpecificConcern: clause.SpecificConcern,
		FreelancerType:  r.FreelancerType,
		USState:         r.USState,
	})
	if err != nil {
		s.logger.ErrorWithErr(err, "Negotiation coaching failed")
		return nil, errors.Upstream(msgCoachingFail, err)
	}

	coaching := &review.Coaching{
		TalkingPoints:       result.TalkingPoints,
		YourPosition:        result.YourPosition,
		TheirLikelyResponse: result.TheirLikelyResponse,
		CounterArgument:     result.CounterArgument,
		OpeningScript:       result.OpeningScript,
	}

	s.coachingMu.Lock()
	s.coachingCache[cacheKey] = coaching
	s.coachingMu.Unlock()

	return coaching, nil
}

// List returns the owner's review history
func (s *ReviewService) List(ctx context.Context, userID int64, limit, offset int) ([]*review.Review, int64, error) {
	return s.repo.List(ctx, review.ListFilter{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
}

// Delete removes an owned review and its clauses
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID int64) error {
	if _, err := s.ownedReview(ctx, userID, reviewID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, reviewID)
}

// ownedReview loads a review and hides its existence from non-owners.
func (s *ReviewService) ownedReview(ctx context.Context, userID, reviewID int64) (*review.Review, error) {
	r, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if r.UserID != userID {
		return nil, errors.NotFound("Review")
	}
	return r, nil
}
