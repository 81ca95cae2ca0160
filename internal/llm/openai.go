package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/freelanceshield/api/internal/config"
)

// OpenAIAnalyzer implements Analyzer against the OpenAI API.
type OpenAIAnalyzer struct {
	client   *openai.Client
	model    string
	maxChars int
}

// NewOpenAIAnalyzer creates an OpenAI-backed analyzer
func NewOpenAIAnalyzer(cfg config.LLMConfig) *OpenAIAnalyzer {
	return &OpenAIAnalyzer{
		client:   openai.NewClient(cfg.OpenAIAPIKey),
		model:    cfg.OpenAIModel,
		maxChars: cfg.MaxContractLen,
	}
}

func (a *OpenAIAnalyzer) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// AnalyzeContract runs clause-level risk analysis on contract text
func (a *OpenAIAnalyzer) AnalyzeContract(ctx context.Context, text, freelancerType, usState string) (*AnalysisResult, error) {
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
func (a *OpenAIAnalyzer) NegotiationCoaching(ctx context.Context, input CoachingInput) (*CoachingResult, error) {
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
func (a *OpenAIAnalyzer) DemandLetter(ctx context.Context, input DemandLetterInput) (string, error) {
	return a.complete(ctx, demandLetterSystemPrompt, buildDemandLetterUserPrompt(input), 2000)
}
