package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/domain/review"
	"github.com/freelanceshield/api/internal/llm"
	"github.com/freelanceshield/api/internal/pdf"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
	"github.com/freelanceshield/api/internal/testutil"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

type reviewFixture struct {
	profiles  *testutil.MockProfileRepository
	reviews   *testutil.MockReviewRepository
	analyzer  *testutil.FakeAnalyzer
	extractor *testutil.FakeExtractor
	notifier  *testutil.FakeNotifier
	service   review.Service
}

func newReviewFixture() *reviewFixture {
	f := &reviewFixture{
		profiles: testutil.NewMockProfileRepository(),
		reviews:  testutil.NewMockReviewRepository(),
		analyzer: &testutil.FakeAnalyzer{},
		extractor: &testutil.FakeExtractor{
			Result: &pdf.ExtractResult{
				Text:      "This agreement is made between the freelancer and the client for services rendered.",
				PageCount: 2,
				CharCount: 85,
			},
		},
		notifier: &testutil.FakeNotifier{},
	}
	f.service = NewReviewService(
		f.reviews, f.profiles, f.analyzer, f.extractor, f.notifier,
		config.DefaultPlans(), 10*1024*1024, testLogger(),
	)
	return f
}

func (f *reviewFixture) addUser(plan string, used int) *profile.Profile {
	p := &profile.Profile{
		Email:                fmt.Sprintf("user%d@example.com", f.profiles.NextID),
		Plan:                 plan,
		Role:                 profile.RoleUser,
		ReviewsUsedThisMonth: used,
		ReviewsResetDate:     time.Now(),
	}
	_ = f.profiles.Create(context.Background(), p)
	return p
}

func goodAnalysis() *llm.AnalysisResult {
	return &llm.AnalysisResult{
		IsContract:       true,
		OverallRiskScore: 7,
		RiskSummary:      "Several one-sided payment terms.",
		Clauses: []llm.AnalysisClause{
			{ClauseType: "payment", OriginalText: "Net 90", RiskLevel: review.RiskLow, PlainEnglish: "Slow payment", SpecificConcern: "Cash flow", SuggestedEdit: "Net 15"},
			{ClauseType: "ip", OriginalText: "All work for hire", RiskLevel: review.RiskHigh, PlainEnglish: "You lose your tools", SpecificConcern: "Pre-existing IP", SuggestedEdit: "Carve out prior work"},
			{ClauseType: "liability", OriginalText: "Unlimited liability", RiskLevel: review.RiskHigh, PlainEnglish: "No cap", SpecificConcern: "Unbounded exposure", SuggestedEdit: "Cap at fees paid"},
			{ClauseType: "termination", OriginalText: "Terminate anytime", RiskLevel: review.RiskMedium, PlainEnglish: "No notice", SpecificConcern: "Abandonment risk", SuggestedEdit: "14 days notice"},
		},
	}
}

func TestCreateHappyPath(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanSolo, 0)
	f.analyzer.AnalysisResult = goodAnalysis()

	r, err := f.service.Create(context.Background(), review.CreateInput{
		UserID:   u.ID,
		FileName: "contract.pdf",
		FileData: []byte("%PDF-1.4 fake"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if r.Status != review.StatusComplete {
		t.Errorf("status = %q, want complete", r.Status)
	}
	if r.OverallRiskScore == nil || *r.OverallRiskScore != 7 {
		t.Errorf("risk score = %v, want 7", r.OverallRiskScore)
	}
	if got := f.profiles.Profiles[u.ID].ReviewsUsedThisMonth; got != 1 {
		t.Errorf("reviews used = %d, want 1", got)
	}
	if len(f.notifier.Completions) != 1 {
		t.Errorf("completion emails = %d, want 1", len(f.notifier.Completions))
	}

	clauses, _ := f.reviews.GetClauses(context.Background(), r.ID)
	if len(clauses) != 4 {
		t.Fatalf("got %d clauses, want 4", len(clauses))
	}
	// High-risk clauses come first regardless of insertion order
	if clauses[0].RiskLevel != review.RiskHigh || clauses[1].RiskLevel != review.RiskHigh {
		t.Errorf("clauses not ordered by risk: %q, %q", clauses[0].RiskLevel, clauses[1].RiskLevel)
	}
	if clauses[3].RiskLevel != review.RiskLow {
		t.Errorf("last clause = %q, want low", clauses[3].RiskLevel)
	}
}

func TestCreateSortOrderDefaultsByPosition(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanSolo, 0)

	// The second clause carries an explicit 0; the others omit the field.
	zero := 0
	result := goodAnalysis()
	result.Clauses = result.Clauses[:3]
	result.Clauses[1].SortOrder = &zero
	f.analyzer.AnalysisResult = result

	r, err := f.service.Create(context.Background(), review.CreateInput{
		UserID:   u.ID,
		FileName: "contract.pdf",
		FileData: []byte("%PDF-1.4 fake"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	clauses, _ := f.reviews.GetClauses(context.Background(), r.ID)
	byType := make(map[string]int, len(clauses))
	for _, c := range clauses {
		byType[c.ClauseType] = c.SortOrder
	}
	if byType["ip"] != 0 {
		t.Errorf("explicit sort_order 0 clobbered, got %d", byType["ip"])
	}
	if byType["payment"] != 0 || byType["liability"] != 2 {
		t.Errorf("omitted sort_order should default to position: payment=%d liability=%d",
			byType["payment"], byType["liability"])
	}
}

func TestCreateFreeQuotaExceeded(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanFree, 1)
	f.analyzer.AnalysisResult = goodAnalysis()

	_, err := f.service.Create(context.Background(), review.CreateInput{
		UserID: u.ID, FileName: "contract.pdf", FileData: []byte("x"),
	})
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeQuotaExceeded {
		t.Fatalf("err = %v, want quota exceeded", err)
	}
	if len(f.reviews.Reviews) != 0 {
		t.Errorf("quota rejection must not persist a review, got %d rows", len(f.reviews.Reviews))
	}
}

func TestCreateRollingHourRateLimit(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanAgency, 0)
	f.analyzer.AnalysisResult = goodAnalysis()

	for i := 0; i < 10; i++ {
		_ = f.reviews.Create(context.Background(), &review.Review{
			UserID: u.ID, FileName: "prior.pdf", Status: review.StatusComplete,
		})
	}

	_, err := f.service.Create(context.Background(), review.CreateInput{
		UserID: u.ID, FileName: "contract.pdf", FileData: []byte("x"),
	})
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeRateLimited {
		t.Fatalf("err = %v, want rate limited", err)
	}
}

func TestCreateOversizedUpload(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanSolo, 0)

	_, err := f.service.Create(context.Background(), review.CreateInput{
		UserID: u.ID, FileName: "big.pdf", FileData: make([]byte, 11*1024*1024),
	})
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodePayloadTooLarge {
		t.Fatalf("err = %v, want payload too large", err)
	}
}

func TestCreateTooLittleText(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanSolo, 0)
	f.extractor.Result = &pdf.ExtractResult{Text: "scan", PageCount: 1, CharCount: 4}

	_, err := f.service.Create(context.Background(), review.CreateInput{
		UserID: u.ID, FileName: "scan.pdf", FileData: []byte("x"),
	})
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeUnprocessable {
		t.Fatalf("err = %v, want unprocessable", err)
	}
	if len(f.reviews.Reviews) != 0 {
		t.Errorf("scanned PDF must not leave a review row, got %d", len(f.reviews.Reviews))
	}
}

func TestCreateAnalysisFailureLeavesErrorRow(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanSolo, 0)
	f.analyzer.AnalysisError = fmt.Errorf("model timeout")

	_, err := f.service.Create(context.Background(), review.CreateInput{
		UserID: u.ID, FileName: "contract.pdf", FileData: []byte("x"),
	})
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeUpstream {
		t.Fatalf("err = %v, want upstream error", err)
	}
	if len(f.reviews.Reviews) != 1 {
		t.Fatalf("expected errored review row, got %d rows", len(f.reviews.Reviews))
	}
	for _, r := range f.reviews.Reviews {
		if r.Status != review.StatusError {
			t.Errorf("status = %q, want error", r.Status)
		}
		if r.ErrorMessage == nil {
			t.Error("error message not recorded")
		}
	}
	if got := f.profiles.Profiles[u.ID].ReviewsUsedThisMonth; got != 0 {
		t.Errorf("failed analysis must not consume quota, used = %d", got)
	}
}

func TestCreateNonContract(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanSolo, 0)
	f.analyzer.AnalysisResult = &llm.AnalysisResult{IsContract: false}

	_, err := f.service.Create(context.Background(), review.CreateInput{
		UserID: u.ID, FileName: "resume.pdf", FileData: []byte("x"),
	})
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeUnprocessable {
		t.Fatalf("err = %v, want unprocessable", err)
	}
	for _, r := range f.reviews.Reviews {
		if r.Status != review.StatusError {
			t.Errorf("status = %q, want error", r.Status)
		}
	}
	if len(f.reviews.Clauses) != 0 {
		t.Errorf("non-contract must not store clauses, got %d", len(f.reviews.Clauses))
	}
}

func TestCreateLazyMonthlyReset(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanFree, 1)
	u.ReviewsResetDate = time.Now().Add(-31 * 24 * time.Hour)
	f.analyzer.AnalysisResult = goodAnalysis()

	r, err := f.service.Create(context.Background(), review.CreateInput{
		UserID: u.ID, FileName: "contract.pdf", FileData: []byte("x"),
	})
	if err != nil {
		t.Fatalf("Create() after stale reset date error = %v", err)
	}
	if r.Status != review.StatusComplete {
		t.Errorf("status = %q, want complete", r.Status)
	}
}

func TestGetReportFreeGating(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanFree, 0)
	f.analyzer.AnalysisResult = goodAnalysis()

	r, err := f.service.Create(context.Background(), review.CreateInput{
		UserID: u.ID, FileName: "contract.pdf", FileData: []byte("x"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	report, err := f.service.GetReport(context.Background(), u.ID, r.ID)
	if err != nil {
		t.Fatalf("GetReport() error = %v", err)
	}
	if report.TotalClauses != 4 {
		t.Errorf("total clauses = %d, want 4", report.TotalClauses)
	}
	if len(report.Clauses) != 3 {
		t.Errorf("visible clauses = %d, want 3", len(report.Clauses))
	}
	if report.HiddenClauses != 1 {
		t.Errorf("hidden clauses = %d, want 1", report.HiddenClauses)
	}
	if report.CoachingEnabled {
		t.Error("coaching must be disabled on free")
	}
	for _, c := range report.Clauses {
		if c.SuggestedEdit != nil {
			t.Error("free plan must not see suggested edits")
		}
	}
}

func TestGetReportPaidPlanFullView(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanPro, 0)
	f.analyzer.AnalysisResult = goodAnalysis()

	r, _ := f.service.Create(context.Background(), review.CreateInput{
		UserID: u.ID, FileName: "contract.pdf", FileData: []byte("x"),
	})

	report, err := f.service.GetReport(context.Background(), u.ID, r.ID)
	if err != nil {
		t.Fatalf("GetReport() error = %v", err)
	}
	if len(report.Clauses) != 4 || report.HiddenClauses != 0 {
		t.Errorf("pro plan sees %d clauses (%d hidden), want 4 (0 hidden)", len(report.Clauses), report.HiddenClauses)
	}
	if !report.CoachingEnabled {
		t.Error("coaching must be enabled on pro")
	}
	if report.Clauses[0].SuggestedEdit == nil {
		t.Error("pro plan must see suggested edits")
	}
}

func TestGetReportOwnershipHidden(t *testing.T) {
	f := newReviewFixture()
	owner := f.addUser(config.PlanSolo, 0)
	other := f.addUser(config.PlanSolo, 0)
	f.analyzer.AnalysisResult = goodAnalysis()

	r, _ := f.service.Create(context.Background(), review.CreateInput{
		UserID: owner.ID, FileName: "contract.pdf", FileData: []byte("x"),
	})

	_, err := f.service.GetReport(context.Background(), other.ID, r.ID)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Fatalf("err = %v, want not found for non-owner", err)
	}
}

func TestShareAndSharedReport(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanAgency, 0)
	f.analyzer.AnalysisResult = goodAnalysis()

	r, _ := f.service.Create(context.Background(), review.CreateInput{
		UserID: u.ID, FileName: "contract.pdf", FileData: []byte("x"),
	})

	token, err := f.service.Share(context.Background(), u.ID, r.ID)
	if err != nil {
		t.Fatalf("Share() error = %v", err)
	}
	if token == "" {
		t.Fatal("Share() returned empty token")
	}

	again, err := f.service.Share(context.Background(), u.ID, r.ID)
	if err != nil || again != token {
		t.Errorf("second Share() = %q, %v; want same token", again, err)
	}

	report, err := f.service.GetSharedReport(context.Background(), token)
	if err != nil {
		t.Fatalf("GetSharedReport() error = %v", err)
	}
	// Shared links always get the limited rendition
	if len(report.Clauses) != 3 || report.HiddenClauses != 1 {
		t.Errorf("shared view shows %d clauses (%d hidden), want 3 (1 hidden)", len(report.Clauses), report.HiddenClauses)
	}
	for _, c := range report.Clauses {
		if c.SuggestedEdit != nil {
			t.Error("shared view must not include suggested edits")
		}
	}
}

func TestNegotiatePlanGate(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanSolo, 0)
	f.analyzer.AnalysisResult = goodAnalysis()

	r, _ := f.service.Create(context.Background(), review.CreateInput{
		UserID: u.ID, FileName: "contract.pdf", FileData: []byte("x"),
	})
	clauses, _ := f.reviews.GetClauses(context.Background(), r.ID)

	_, err := f.service.Negotiate(context.Background(), u.ID, r.ID, clauses[0].ID)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeForbidden {
		t.Fatalf("err = %v, want forbidden on solo plan", err)
	}
}

func TestNegotiateCachesResult(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanPro, 0)
	f.analyzer.AnalysisResult = goodAnalysis()
	f.analyzer.CoachingResult = &llm.CoachingResult{
		TalkingPoints: []string{"Cap liability at fees paid"},
		YourPosition:  "Standard industry practice",
		OpeningScript: "I'd like to revisit the liability clause.",
	}

	r, _ := f.service.Create(context.Background(), review.CreateInput{
		UserID: u.ID, FileName: "contract.pdf", FileData: []byte("x"),
	})
	clauses, _ := f.reviews.GetClauses(context.Background(), r.ID)

	first, err := f.service.Negotiate(context.Background(), u.ID, r.ID, clauses[0].ID)
	if err != nil {
		t.Fatalf("Negotiate() error = %v", err)
	}
	second, err := f.service.Negotiate(context.Background(), u.ID, r.ID, clauses[0].ID)
	if err != nil {
		t.Fatalf("second Negotiate() error = %v", err)
	}
	if f.analyzer.CoachingCalls != 1 {
		t.Errorf("coaching calls = %d, want 1 (cached)", f.analyzer.CoachingCalls)
	}
	if first != second {
		t.Error("cached coaching should be the same instance")
	}
}

func TestDeleteOwnedReview(t *testing.T) {
	f := newReviewFixture()
	u := f.addUser(config.PlanSolo, 0)
	f.analyzer.AnalysisResult = goodAnalysis()

	r, _ := f.service.Create(context.Background(), review.CreateInput{
		UserID: u.ID, FileName: "contract.pdf", FileData: []byte("x"),
	})

	if err := f.service.Delete(context.Background(), u.ID, r.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(f.reviews.Reviews) != 0 || len(f.reviews.Clauses) != 0 {
		t.Errorf("delete left %d reviews, %d clauses", len(f.reviews.Reviews), len(f.reviews.Clauses))
	}
}
