package llm

import (
	"context"
	"fmt"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/freelanceshield/api/internal/config"
)

// AnthropicAnalyzer implements Analyzer against the Anthropic API.
type AnthropicAnalyzer struct {
	client   *anthropic.Client
	model    string
	maxChars int
}

// NewAnthropicAnalyzer creates an Anthropic-backed analyzer
func NewAnthropicAnalyzer(cfg config.LLMConfig) *AnthropicAnalyzer {
	return &AnthropicAnalyzer{
		client:   anthropic.NewClient(cfg.AnthropicAPIKey),
		model:    cfg.AnthropicModel,
		maxChars: cfg.MaxContractLen,
	}
}

func (a *AnthropicAnalyzer) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	resp, err := a.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(a.model),
		MaxTokens: maxTokens,
		System:    system,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	for _, block := range resp.Content {
		if block.Type == anthropic.MessagesContentTypeText && block.Text != nil {
			return *block.Text, nil
		}
	}
	return "", fmt.Errorf("anthropic response contained no text")
}

// AnalyzeContract runs clause-level risk analysis on contract text
func (a *AnthropicAnalyzer) AnalyzeContract(ctx context.Context, text, freelancerType, usState string) (*AnalysisResult, error) {
	processed := PreprocessContractText(text, a.maxChars)
	system := buildAnalysisSystemPrompt(freelancerType, usState)

	raw, err := a.complete(ctx, system, "Analyze this contract:\n\n"+processed, 8000)
	if err != nil {
		return nil, err
	}

	var result AnalysisResult
	if err := decodeJSON(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// NegotiationCoaching generates coaching for one clause
func (a *AnthropicAnalyzer) NegotiationCoaching(ctx context.Context, input CoachingInput) (*CoachingResult, error) {
	system := buildCoachingSystemPrompt(input.FreelancerType, input.USState)

	raw, err := a.complete(ctx, system, buildCoachingUserPrompt(input), 2000)
	if err != nil {
		return nil, err
	}

	var result CoachingResult
	if err := decodeJSON(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DemandLetter drafts a payment demand letter
func (a *AnthropicAnalyzer) DemandLetter(ctx context.Context, input DemandLetterInput) (string, error) {
	return a.complete(ctx, demandLetterSystemPrompt, buildDemandLetterUserPrompt(input), 2000)
}
