package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/domain/review"
	"github.com/freelanceshield/api/internal/domain/template"
	"github.com/freelanceshield/api/internal/llm"
	"github.com/freelanceshield/api/internal/pdf"
	"github.com/freelanceshield/api/internal/pkg/errors"
)

// MockProfileRepository is a map-backed implementation of profile.Repository
type MockProfileRepository struct {
	Profiles    map[int64]*profile.Profile
	NextID      int64
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		Profiles: make(map[int64]*profile.Profile),
		NextID:   1,
	}
}

func (m *MockProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	for _, existing := range m.Profiles {
		if existing.Email == p.Email {
			return errors.Conflict("Email already registered")
		}
	}
	p.ID = m.NextID
	m.NextID++
	p.CreatedAt = time.Now()
	m.Profiles[p.ID] = p
	return nil
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id int64) (*profile.Profile, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	p, ok := m.Profiles[id]
	if !ok {
		return nil, errors.NotFound("Profile")
	}
	return p, nil
}

func (m *MockProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	for _, p := range m.Profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, errors.NotFound("Profile")
}

func (m *MockProfileRepository) GetByStripeCustomerID(ctx context.Context, customerID string) (*profile.Profile, error) {
	for _, p := range m.Profiles {
		if p.StripeCustomerID != nil && *p.StripeCustomerID == customerID {
			return p, nil
		}
	}
	return nil, errors.NotFound("Profile")
}

func (m *MockProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Profiles[p.ID]; !ok {
		return errors.NotFound("Profile")
	}
	m.Profiles[p.ID] = p
	return nil
}

func (m *MockProfileRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.Profiles[id]; !ok {
		return errors.NotFound("Profile")
	}
	delete(m.Profiles, id)
	return nil
}

func (m *MockProfileRepository) List(ctx context.Context, filter profile.ListFilter) ([]*profile.Profile, int64, error) {
	var matched []*profile.Profile
	for _, p := range m.Profiles {
		if filter.EmailSearch != "" && !strings.Contains(strings.ToLower(p.Email), strings.ToLower(filter.EmailSearch)) {
			continue
		}
		if filter.Plan != "" && p.Plan != filter.Plan {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[filter.Offset:]
		}
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (m *MockProfileRepository) IncrementReviewsUsed(ctx context.Context, id int64) error {
	p, ok := m.Profiles[id]
	if !ok {
		return errors.NotFound("Profile")
	}
	p.ReviewsUsedThisMonth++
	return nil
}

func (m *MockProfileRepository) ResetMonthlyUsage(ctx context.Context, id int64) error {
	p, ok := m.Profiles[id]
	if !ok {
		return errors.NotFound("Profile")
	}
	p.ReviewsUsedThisMonth = 0
	p.ReviewsResetDate = time.Now()
	return nil
}

func (m *MockProfileRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.Profiles)), nil
}

func (m *MockProfileRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	for _, p := range m.Profiles {
		if p.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

// MockReviewRepository is a map-backed implementation of review.Repository
type MockReviewRepository struct {
	Reviews      map[int64]*review.Review
	Clauses      map[int64]*review.Clause
	NextID       int64
	NextClauseID int64
	CreateError  error
	UpdateError  error
}

func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		Reviews:      make(map[int64]*review.Review),
		Clauses:      make(map[int64]*review.Clause),
		NextID:       1,
		NextClauseID: 1,
	}
}

func (m *MockReviewRepository) Create(ctx context.Context, r *review.Review) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	r.ID = m.NextID
	m.NextID++
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	m.Reviews[r.ID] = r
	return nil
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*review.Review, error) {
	r, ok := m.Reviews[id]
	if !ok {
		return nil, errors.NotFound("Review")
	}
	return r, nil
}

func (m *MockReviewRepository) GetByShareToken(ctx context.Context, token string) (*review.Review, error) {
	for _, r := range m.Reviews {
		if r.ShareToken != nil && *r.ShareToken == token {
			return r, nil
		}
	}
	return nil, errors.NotFound("Review")
}

func (m *MockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Reviews[r.ID]; !ok {
		return errors.NotFound("Review")
	}
	m.Reviews[r.ID] = r
	return nil
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.Reviews[id]; !ok {
		return errors.NotFound("Review")
	}
	for cid, c := range m.Clauses {
		if c.ReviewID == id {
			delete(m.Clauses, cid)
		}
	}
	delete(m.Reviews, id)
	return nil
}

func (m *MockReviewRepository) List(ctx context.Context, filter review.ListFilter) ([]*review.Review, int64, error) {
	var matched []*review.Review
	for _, r := range m.Reviews {
		if filter.UserID != 0 && r.UserID != filter.UserID {
			continue
		}
		if filter.FileNameSearch != "" && !strings.Contains(strings.ToLower(r.FileName), strings.ToLower(filter.FileNameSearch)) {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		matched = append(matched, r)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[filter.Offset:]
		}
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (m *MockReviewRepository) CountCreatedSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	var n int64
	for _, r := range m.Reviews {
		if r.UserID == userID && r.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

func (m *MockReviewRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.Reviews)), nil
}

func (m *MockReviewRepository) CreateClauses(ctx context.Context, clauses []*review.Clause) error {
	for _, c := range clauses {
		c.ID = m.NextClauseID
		m.NextClauseID++
		c.CreatedAt = time.Now()
		m.Clauses[c.ID] = c
	}
	return nil
}

func (m *MockReviewRepository) GetClauses(ctx context.Context, reviewID int64) ([]*review.Clause, error) {
	var clauses []*review.Clause
	for _, c := range m.Clauses {
		if c.ReviewID == reviewID {
			clauses = append(clauses, c)
		}
	}
	review.SortClauses(clauses)
	return clauses, nil
}

func (m *MockReviewRepository) GetClause(ctx context.Context, id int64) (*review.Clause, error) {
	c, ok := m.Clauses[id]
	if !ok {
		return nil, errors.NotFound("Clause")
	}
	return c, nil
}

// MockTemplateRepository is a map-backed implementation of template.Repository
type MockTemplateRepository struct {
	Templates   map[int64]*template.Template
	NextID      int64
	CreateError error
}

func NewMockTemplateRepository() *MockTemplateRepository {
	return &MockTemplateRepository{
		Templates: make(map[int64]*template.Template),
		NextID:    1,
	}
}

func (m *MockTemplateRepository) Create(ctx context.Context, t *template.Template) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	t.ID = m.NextID
	m.NextID++
	t.CreatedAt = time.Now()
	m.Templates[t.ID] = t
	return nil
}

func (m *MockTemplateRepository) GetByID(ctx context.Context, id int64) (*template.Template, error) {
	t, ok := m.Templates[id]
	if !ok {
		return nil, errors.NotFound("Template")
	}
	return t, nil
}

func (m *MockTemplateRepository) Update(ctx context.Context, t *template.Template) error {
	if _, ok := m.Templates[t.ID]; !ok {
		return errors.NotFound("Template")
	}
	m.Templates[t.ID] = t
	return nil
}

func (m *MockTemplateRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.Templates[id]; !ok {
		return errors.NotFound("Template")
	}
	delete(m.Templates, id)
	return nil
}

func (m *MockTemplateRepository) List(ctx context.Context, activeOnly bool) ([]*template.Template, error) {
	var templates []*template.Template
	for _, t := range m.Templates {
		if activeOnly && !t.IsActive {
			continue
		}
		templates = append(templates, t)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	return templates, nil
}

func (m *MockTemplateRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.Templates)), nil
}

// FakeAnalyzer is a canned-response implementation of llm.Analyzer
type FakeAnalyzer struct {
	AnalysisResult *llm.AnalysisResult
	AnalysisError  error
	CoachingResult *llm.CoachingResult
	CoachingError  error
	Letter         string
	LetterError    error
	CoachingCalls  int
}

func (f *FakeAnalyzer) AnalyzeContract(ctx context.Context, text, freelancerType, usState string) (*llm.AnalysisResult, error) {
	if f.AnalysisError != nil {
		return nil, f.AnalysisError
	}
	if f.AnalysisResult == nil {
		return nil, fmt.Errorf("no canned analysis result")
	}
	return f.AnalysisResult, nil
}

func (f *FakeAnalyzer) NegotiationCoaching(ctx context.Context, input llm.CoachingInput) (*llm.CoachingResult, error) {
	f.CoachingCalls++
	if f.CoachingError != nil {
		return nil, f.CoachingError
	}
	if f.CoachingResult == nil {
		return nil, fmt.Errorf("no canned coaching result")
	}
	return f.CoachingResult, nil
}

func (f *FakeAnalyzer) DemandLetter(ctx context.Context, input llm.DemandLetterInput) (string, error) {
	if f.LetterError != nil {
		return "", f.LetterError
	}
	return f.Letter, nil
}

// FakeExtractor is a canned-response implementation of pdf.Extractor
type FakeExtractor struct {
	Result *pdf.ExtractResult
	Err    error
}

func (f *FakeExtractor) Extract(ctx context.Context, data []byte) (*pdf.ExtractResult, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Result, nil
}

// FakeNotifier records sent notifications without dispatching anything
type FakeNotifier struct {
	Welcomes      []string
	Completions   []string
	PaymentFailed []string
}

func (f *FakeNotifier) SendWelcome(email string) { f.Welcomes = append(f.Welcomes, email) }

func (f *FakeNotifier) SendAnalysisComplete(email string, reviewID int64, riskScore int) {
	f.Completions = append(f.Completions, email)
}

func (f *FakeNotifier) SendPaymentFailed(email string) {
	f.PaymentFailed = append(f.PaymentFailed, email)
}

func (f *FakeNotifier) Close() {}
