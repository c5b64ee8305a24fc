package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/CHEATEY13/Last/core"
)

const (
	geminiModel    = "gemini-1.5-flash"
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
)

// Gemini calls the generateContent REST API directly.
type Gemini struct {
	apiKey string
	client *http.Client
}

func NewGemini(apiKey string) *Gemini {
	return &Gemini{
		apiKey: apiKey,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *Gemini) Name() string { return "gemini" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenConfig{
			Temperature:     replyTemperature,
			MaxOutputTokens: replyMaxTokens,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf(geminiEndpoint, geminiModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", core.ErrProviderResponse, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", core.ErrProviderResponse, resp.StatusCode, truncate(body, 200))
	}

	var out geminiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: decode: %v", core.ErrProviderResponse, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates", core.ErrProviderResponse)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func (g *Gemini) Analyze(ctx context.Context, code, language string) (*core.AnalysisResult, error) {
	raw, err := g.complete(ctx, analyzePrompt(code, language))
	if err != nil {
		return nil, err
	}
	return parseAnalysis(raw, language), nil
}

func (g *Gemini) Debug(ctx context.Context, code, language string) (*core.DebugResult, error) {
	raw, err := g.complete(ctx, debugPrompt(code, language))
	if err != nil {
		return nil, err
	}
	return parseDebug(raw, language), nil
}

func (g *Gemini) Translate(ctx context.Context, code, language, target string) (*core.TranslationResult, error) {
	raw, err := g.complete(ctx, translatePrompt(code, language, target))
	if err != nil {
		return nil, err
	}
	return parseTranslation(raw, language, target), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
