package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/freelanceshield/api/internal/domain/review"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/repository/postgres"
	"github.com/freelanceshield/api/internal/testutil"
)

func seedUser(t *testing.T, db *postgres.DB, email string) int64 {
	t.Helper()
	repo := postgres.NewProfileRepository(db)
	p := newProfile(email)
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p.ID
}

func newReview(userID int64, fileName string) *review.Review {
	return &review.Review{
		UserID:   userID,
		FileName: fileName,
		RawText:  "Contract text goes here.",
		Status:   review.StatusProcessing,
	}
}

func TestReviewCreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewReviewRepository(db)
	ctx := context.Background()
	userID := seedUser(t, db, "rev@example.com")

	rev := newReview(userID, "nda.pdf")
	rev.FreelancerType = "writer"
	if err := repo.Create(ctx, rev); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rev.ID == 0 {
		t.Fatal("expected ID to be assigned")
	}

	got, err := repo.GetByID(ctx, rev.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.UserID != userID || got.FileName != "nda.pdf" || got.Status != review.StatusProcessing {
		t.Errorf("unexpected review: %+v", got)
	}
	if got.OverallRiskScore != nil || got.ShareToken != nil {
		t.Errorf("expected nil score and token on fresh review")
	}
}

func TestReviewUpdateAndShareToken(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewReviewRepository(db)
	ctx := context.Background()
	userID := seedUser(t, db, "share@example.com")

	rev := newReview(userID, "contract.pdf")
	if err := repo.Create(ctx, rev); err != nil {
		t.Fatalf("Create: %v", err)
	}

	score := 7
	summary := "Several one-sided clauses."
	token := "tok-abc123"
	rev.Status = review.StatusComplete
	rev.OverallRiskScore = &score
	rev.RiskSummary = &summary
	rev.ShareToken = &token
	if err := repo.Update(ctx, rev); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByShareToken(ctx, "tok-abc123")
	if err != nil {
		t.Fatalf("GetByShareToken: %v", err)
	}
	if got.ID != rev.ID || got.Status != review.StatusComplete {
		t.Errorf("got ID=%d status=%s", got.ID, got.Status)
	}
	if got.OverallRiskScore == nil || *got.OverallRiskScore != 7 {
		t.Errorf("score not persisted: %v", got.OverallRiskScore)
	}

	if _, err := repo.GetByShareToken(ctx, "unknown"); err == nil {
		t.Fatal("expected not found for unknown token")
	}
}

func TestReviewClauses(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewReviewRepository(db)
	ctx := context.Background()
	userID := seedUser(t, db, "clauses@example.com")

	rev := newReview(userID, "msa.pdf")
	if err := repo.Create(ctx, rev); err != nil {
		t.Fatalf("Create: %v", err)
	}

	edit := "Cap liability at fees paid."
	clauses := []*review.Clause{
		{ReviewID: rev.ID, ClauseType: "payment_terms", OriginalText: "Net-90.", RiskLevel: review.RiskMedium, PlainEnglish: "You wait 90 days.", SpecificConcern: "Long payment window.", SortOrder: 0},
		{ReviewID: rev.ID, ClauseType: "ip_rights", OriginalText: "All work for hire.", RiskLevel: review.RiskLow, PlainEnglish: "Client owns the work.", SpecificConcern: "Standard.", SortOrder: 1},
		{ReviewID: rev.ID, ClauseType: "liability", OriginalText: "Unlimited liability.", RiskLevel: review.RiskHigh, PlainEnglish: "You carry all risk.", SpecificConcern: "No cap.", SuggestedEdit: &edit, SortOrder: 2},
	}
	if err := repo.CreateClauses(ctx, clauses); err != nil {
		t.Fatalf("CreateClauses: %v", err)
	}

	got, err := repo.GetClauses(ctx, rev.ID)
	if err != nil {
		t.Fatalf("GetClauses: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(clauses) = %d, want 3", len(got))
	}
	// Report order is high, medium, low
	if got[0].RiskLevel != review.RiskHigh || got[1].RiskLevel != review.RiskMedium || got[2].RiskLevel != review.RiskLow {
		t.Errorf("wrong order: %s, %s, %s", got[0].RiskLevel, got[1].RiskLevel, got[2].RiskLevel)
	}
	if got[0].SuggestedEdit == nil || *got[0].SuggestedEdit != edit {
		t.Errorf("suggested edit not persisted")
	}
	if got[1].SuggestedEdit != nil {
		t.Errorf("expected nil suggested edit on medium clause")
	}

	single, err := repo.GetClause(ctx, got[0].ID)
	if err != nil {
		t.Fatalf("GetClause: %v", err)
	}
	if single.ClauseType != "liability" {
		t.Errorf("GetClause type = %s", single.ClauseType)
	}

	_, err = repo.GetClause(ctx, 9999)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReviewDeleteCascadesClauses(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewReviewRepository(db)
	ctx := context.Background()
	userID := seedUser(t, db, "cascade@example.com")

	rev := newReview(userID, "del.pdf")
	if err := repo.Create(ctx, rev); err != nil {
		t.Fatalf("Create: %v", err)
	}
	clauses := []*review.Clause{
		{ReviewID: rev.ID, ClauseType: "scope", OriginalText: "x", RiskLevel: review.RiskLow, PlainEnglish: "x", SpecificConcern: "x"},
	}
	if err := repo.CreateClauses(ctx, clauses); err != nil {
		t.Fatalf("CreateClauses: %v", err)
	}

	if err := repo.Delete(ctx, rev.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.GetByID(ctx, rev.ID); err == nil {
		t.Fatal("expected review to be gone")
	}
	left, err := repo.GetClauses(ctx, rev.ID)
	if err != nil {
		t.Fatalf("GetClauses: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("expected clauses to cascade, %d left", len(left))
	}
}

func TestReviewListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewReviewRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	seed := []struct {
		userID   int64
		fileName string
		status   review.Status
	}{
		{alice, "nda.pdf", review.StatusComplete},
		{alice, "contract.pdf", review.StatusError},
		{bob, "nda-v2.pdf", review.StatusComplete},
	}
	for _, s := range seed {
		rev := newReview(s.userID, s.fileName)
		rev.Status = s.status
		if err := repo.Create(ctx, rev); err != nil {
			t.Fatalf("Create %s: %v", s.fileName, err)
		}
	}

	tests := []struct {
		name      string
		filter    review.ListFilter
		wantTotal int64
	}{
		{"all", review.ListFilter{Limit: 10}, 3},
		{"by user", review.ListFilter{UserID: alice, Limit: 10}, 2},
		{"by status", review.ListFilter{Status: review.StatusComplete, Limit: 10}, 2},
		{"by file name", review.ListFilter{FileNameSearch: "nda", Limit: 10}, 2},
		{"user and status", review.ListFilter{UserID: alice, Status: review.StatusComplete, Limit: 10}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews, total, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if int64(len(reviews)) != tt.wantTotal {
				t.Errorf("len = %d, want %d", len(reviews), tt.wantTotal)
			}
		})
	}
}

func TestReviewCountCreatedSince(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewReviewRepository(db)
	ctx := context.Background()
	userID := seedUser(t, db, "count@example.com")

	for i := 0; i < 2; i++ {
		if err := repo.Create(ctx, newReview(userID, "a.pdf")); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	n, err := repo.CountCreatedSince(ctx, userID, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("CountCreatedSince: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}

	n, err = repo.CountCreatedSince(ctx, userID, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("CountCreatedSince future: %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}
