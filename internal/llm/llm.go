// Package llm talks to hosted language models for contract analysis,
// negotiation coaching, and demand letter drafting.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/freelanceshield/api/internal/config"
)

// AnalysisClause is one flagged clause in an analysis result.
// SortOrder is a pointer so a model that omits the field can be told
// apart from one that sends an explicit 0.
type AnalysisClause struct {
	ClauseType      string `json:"clause_type"`
	OriginalText    string `json:"original_text"`
	RiskLevel       string `json:"risk_level"`
	PlainEnglish    string `json:"plain_english"`
	SpecificConcern string `json:"specific_concern"`
	SuggestedEdit   string `json:"suggested_edit"`
	SortOrder       *int   `json:"sort_order"`
}

// AnalysisResult is the structured output of a contract analysis.
type AnalysisResult struct {
	IsContract       bool             `json:"is_contract"`
	OverallRiskScore int              `json:"overall_risk_score"`
	RiskSummary      string           `json:"risk_summary"`
	Clauses          []AnalysisClause `json:"clauses"`
}

// CoachingResult is the structured output of negotiation coaching.
type CoachingResult struct {
	TalkingPoints       []string `json:"talking_points"`
	YourPosition        string   `json:"your_position"`
	TheirLikelyResponse string   `json:"their_likely_response"`
	CounterArgument     string   `json:"counter_argument"`
	OpeningScript       string   `json:"opening_script"`
}

// CoachingInput identifies the clause being negotiated.
type CoachingInput struct {
	ClauseType      string
	OriginalText    string
	SpecificConcern string
	FreelancerType  string
	USState         string
}

// DemandLetterInput carries the details for a payment demand letter.
type DemandLetterInput struct {
	ClientName         string
	ProjectName        string
	ProjectDescription string
	AmountOwed         float64
	PaymentDueDate     string
	PastDueDays        int
	FreelancerName     string
	USState            string
}

// Analyzer is the provider-independent interface over the hosted model.
type Analyzer interface {
	// AnalyzeContract runs clause-level risk analysis on contract text
	AnalyzeContract(ctx context.Context, text, freelancerType, usState string) (*AnalysisResult, error)

	// NegotiationCoaching generates coaching for one clause
	NegotiationCoaching(ctx context.Context, input CoachingInput) (*CoachingResult, error)

	// DemandLetter drafts a payment demand letter
	DemandLetter(ctx context.Context, input DemandLetterInput) (string, error)
}

// NewAnalyzer returns the configured Analyzer implementation.
func NewAnalyzer(cfg config.LLMConfig) (Analyzer, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicAnalyzer(cfg), nil
	case "openai":
		return NewOpenAIAnalyzer(cfg), nil
	}
	return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
}

var (
	crlfRe       = regexp.MustCompile(`\r\n?`)
	newlineRunRe = regexp.MustCompile(`\n{4,}`)
	spaceRunRe   = regexp.MustCompile(`[ \t]{3,}`)
	fenceRe      = regexp.MustCompile("```json\n?|\n?```")
)

// PreprocessContractText normalizes whitespace and truncates oversized
// documents before sending them to the model.
func PreprocessContractText(text string, maxChars int) string {
	cleaned := crlfRe.ReplaceAllString(text, "\n")
	cleaned = newlineRunRe.ReplaceAllString(cleaned, "\n\n\n")
	cleaned = spaceRunRe.ReplaceAllString(cleaned, "  ")
	cleaned = strings.TrimSpace(cleaned)

	if maxChars > 0 && len(cleaned) > maxChars {
		cleaned = cleaned[:maxChars]
	}
	return cleaned
}

// decodeJSON strips accidental markdown code fences and unmarshals the
// model output into v.
func decodeJSON(raw string, v interface{}) error {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		snippet := cleaned
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return fmt.Errorf("failed to parse model response: %s: %w", snippet, err)
	}
	return nil
}
