package providers

import (
	"encoding/json"
	"strings"

	"github.com/CHEATEY13/Last/core"
)

// Models wrap JSON in markdown fences often enough that stripping them
// unconditionally is cheaper than prompting harder.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:] // drop the language tag line
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseAnalysis never fails past this boundary. An unparseable reply
// becomes a result that carries the raw text so the caller still gets
// something useful back.
func parseAnalysis(raw, language string) *core.AnalysisResult {
	cleaned := stripFences(raw)

	var res core.AnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &res); err != nil {
		return &core.AnalysisResult{
			Language: language,
			Overview: "The assistant returned an unstructured reply.",
			Summary:  "Raw provider output is attached.",
			Raw:      raw,
		}
	}
	if res.Language == "" {
		res.Language = language
	}
	return &res
}

func parseDebug(raw, language string) *core.DebugResult {
	cleaned := stripFences(raw)

	var res core.DebugResult
	if err := json.Unmarshal([]byte(cleaned), &res); err != nil {
		return &core.DebugResult{
			Language:  language,
			Summary:   "The assistant returned an unstructured reply.",
			FixedCode: raw,
		}
	}
	if res.Language == "" {
		res.Language = language
	}
	return &res
}

func parseTranslation(raw, language, target string) *core.TranslationResult {
	cleaned := stripFences(raw)

	var res core.TranslationResult
	if err := json.Unmarshal([]byte(cleaned), &res); err != nil {
		// Some models answer with bare code despite the prompt. Treat
		// the whole reply as the translation rather than losing it.
		return &core.TranslationResult{
			Language:       language,
			TargetLanguage: target,
			TranslatedCode: cleaned,
			Notes:          "The assistant replied with plain text instead of a structured response.",
		}
	}
	if res.Language == "" {
		res.Language = language
	}
	if res.TargetLanguage == "" {
		res.TargetLanguage = target
	}
	return &res
}
