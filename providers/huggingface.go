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
	huggingFaceModel    = "mistralai/Mistral-7B-Instruct-v0.3"
	huggingFaceEndpoint = "https://api-inference.huggingface.co/models/%s"
)

// HuggingFace calls the serverless inference API. Cold model starts can
// take a while, so the timeout is generous.
type HuggingFace struct {
	apiKey string
	client *http.Client
}

func NewHuggingFace(apiKey string) *HuggingFace {
	return &HuggingFace{
		apiKey: apiKey,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (h *HuggingFace) Name() string { return "huggingface" }

type hfRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		Temperature    float64 `json:"temperature"`
		MaxNewTokens   int     `json:"max_new_tokens"`
		ReturnFullText bool    `json:"return_full_text"`
	} `json:"parameters"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

func (h *HuggingFace) complete(ctx context.Context, prompt string) (string, error) {
	var reqBody hfRequest
	reqBody.Inputs = prompt
	reqBody.Parameters.Temperature = replyTemperature
	reqBody.Parameters.MaxNewTokens = replyMaxTokens
	reqBody.Parameters.ReturnFullText = false

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf(huggingFaceEndpoint, huggingFaceModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.client.Do(req)
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

	// The inference API answers with a one-element array for text
	// generation models.
	var out []hfGeneration
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: decode: %v", core.ErrProviderResponse, err)
	}
	if len(out) == 0 || out[0].GeneratedText == "" {
		return "", fmt.Errorf("%w: empty generation", core.ErrProviderResponse)
	}
	return out[0].GeneratedText, nil
}

func (h *HuggingFace) Analyze(ctx context.Context, code, language string) (*core.AnalysisResult, error) {
	raw, err := h.complete(ctx, analyzePrompt(code, language))
	if err != nil {
		return nil, err
	}
	return parseAnalysis(raw, language), nil
}

func (h *HuggingFace) Debug(ctx context.Context, code, language string) (*core.DebugResult, error) {
	raw, err := h.complete(ctx, debugPrompt(code, language))
	if err != nil {
		return nil, err
	}
	return parseDebug(raw, language), nil
}

func (h *HuggingFace) Translate(ctx context.Context, code, language, target string) (*core.TranslationResult, error) {
	raw, err := h.complete(ctx, translatePrompt(code, language, target))
	if err != nil {
		return nil, err
	}
	return parseTranslation(raw, language, target), nil
}
