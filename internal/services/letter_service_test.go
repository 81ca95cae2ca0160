package services

import (
	"context"
	"testing"

	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/llm"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/testutil"
)

func newLetterFixture(plan string) (*LetterService, *testutil.FakeAnalyzer, *profile.Profile) {
	repo := testutil.NewMockProfileRepository()
	analyzer := &testutil.FakeAnalyzer{Letter: "Dear Client,\n\nPayment is overdue."}
	p := &profile.Profile{Email: "a@b.com", Plan: plan}
	_ = repo.Create(context.Background(), p)
	return NewLetterService(repo, analyzer, config.DefaultPlans(), testLogger()), analyzer, p
}

func validLetterInput() llm.DemandLetterInput {
	return llm.DemandLetterInput{
		ClientName:     "Acme Corp",
		ProjectName:    "Website redesign",
		AmountOwed:     2500,
		PaymentDueDate: "2026-08-01",
		FreelancerName: "Dana Smith",
	}
}

func TestGenerateLetterPlanGate(t *testing.T) {
	svc, _, p := newLetterFixture(config.PlanSolo)

	_, err := svc.Generate(context.Background(), p.ID, validLetterInput())
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeForbidden {
		t.Fatalf("err = %v, want forbidden on solo plan", err)
	}
}

func TestGenerateLetterRequiredFields(t *testing.T) {
	svc, _, p := newLetterFixture(config.PlanPro)

	tests := []struct {
		name   string
		mutate func(*llm.DemandLetterInput)
	}{
		{"missing client", func(in *llm.DemandLetterInput) { in.ClientName = "" }},
		{"missing project", func(in *llm.DemandLetterInput) { in.ProjectName = "" }},
		{"zero amount", func(in *llm.DemandLetterInput) { in.AmountOwed = 0 }},
		{"missing due date", func(in *llm.DemandLetterInput) { in.PaymentDueDate = "" }},
		{"missing freelancer", func(in *llm.DemandLetterInput) { in.FreelancerName = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validLetterInput()
			tt.mutate(&input)
			_, err := svc.Generate(context.Background(), p.ID, input)
			appErr, ok := err.(*errors.AppError)
			if !ok || appErr.Code != errors.ErrCodeBadRequest {
				t.Fatalf("err = %v, want bad request", err)
			}
		})
	}
}

func TestGenerateLetter(t *testing.T) {
	svc, _, p := newLetterFixture(config.PlanAgency)

	letter, err := svc.Generate(context.Background(), p.ID, validLetterInput())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if letter == "" {
		t.Fatal("Generate() returned empty letter")
	}
}

func TestGenerateLetterUpstreamFailure(t *testing.T) {
	svc, analyzer, p := newLetterFixture(config.PlanPro)
	analyzer.LetterError = errors.ServiceUnavailable("model down")

	_, err := svc.Generate(context.Background(), p.ID, validLetterInput())
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeUpstream {
		t.Fatalf("err = %v, want upstream error", err)
	}
}
