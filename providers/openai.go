package providers

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/CHEATEY13/Last/core"
)

const (
	openAIModel      = "gpt-4o-mini"
	replyMaxTokens   = 2000
	replyTemperature = 0.2
)

// OpenAI answers through the chat completions API. It implements
// core.Assistant; construction fails when the client cannot be built so
// availability is decided once, not per request.
type OpenAI struct {
	llm *openai.LLM
}

func NewOpenAI(apiKey string) (*OpenAI, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(openAIModel),
	)
	if err != nil {
		return nil, fmt.Errorf("openai client: %w", err)
	}
	return &OpenAI{llm: llm}, nil
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) complete(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, o.llm, prompt,
		llms.WithTemperature(replyTemperature),
		llms.WithMaxTokens(replyMaxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrProviderResponse, err)
	}
	return out, nil
}

func (o *OpenAI) Analyze(ctx context.Context, code, language string) (*core.AnalysisResult, error) {
	raw, err := o.complete(ctx, analyzePrompt(code, language))
	if err != nil {
		return nil, err
	}
	return parseAnalysis(raw, language), nil
}

func (o *OpenAI) Debug(ctx context.Context, code, language string) (*core.DebugResult, error) {
	raw, err := o.complete(ctx, debugPrompt(code, language))
	if err != nil {
		return nil, err
	}
	return parseDebug(raw, language), nil
}

func (o *OpenAI) Translate(ctx context.Context, code, language, target string) (*core.TranslationResult, error) {
	raw, err := o.complete(ctx, translatePrompt(code, language, target))
	if err != nil {
		return nil, err
	}
	return parseTranslation(raw, language, target), nil
}
