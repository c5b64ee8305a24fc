package providers

import "fmt"

// Providers are instructed to answer with a bare JSON object so the
// normalizer can parse it. Low temperature plus an explicit shape keeps
// the output as deterministic as a sampled model gets; the normalizer
// still tolerates fenced or malformed replies.

const analyzeSystemPrompt = `You are a code analysis assistant.
Analyze the submitted source code and respond with ONLY a JSON object, no prose, no markdown fences, with exactly these keys:
{
  "language": "detected language name",
  "overview": "two or three sentences describing what the code does",
  "lineByLineAnalysis": [{"line": 1, "code": "the source line", "explanation": "what it does"}],
  "output": "the exact stdout this code would produce, or an empty string",
  "summary": "one sentence wrap-up",
  "suggestions": ["improvement suggestion"]
}`

const debugSystemPrompt = `You are a code debugging assistant.
Find bugs, risky patterns and style problems in the submitted source code. Respond with ONLY a JSON object, no prose, no markdown fences, with exactly these keys:
{
  "language": "detected language name",
  "issues": [{"type": "syntax|logic|style", "line": 1, "description": "the problem", "severity": "high|medium|low"}],
  "suggestions": ["improvement suggestion"],
  "fixedCode": "the corrected source code",
  "summary": "one sentence wrap-up"
}`

const translateSystemPrompt = `You are a code translation assistant.
Translate the submitted source code to %s. Respond with ONLY a JSON object, no prose, no markdown fences, with exactly these keys:
{
  "language": "source language name",
  "translatedCode": "the translated source code",
  "dependencies": ["required package"],
  "notes": "caveats about the translation"
}`

func analyzePrompt(code, language string) string {
	return fmt.Sprintf("%s\n\nDeclared language: %s\n\nCode:\n%s", analyzeSystemPrompt, language, code)
}

func debugPrompt(code, language string) string {
	return fmt.Sprintf("%s\n\nDeclared language: %s\n\nCode:\n%s", debugSystemPrompt, language, code)
}

func translatePrompt(code, language, target string) string {
	return fmt.Sprintf("%s\n\nDeclared language: %s\n\nCode:\n%s",
		fmt.Sprintf(translateSystemPrompt, target), language, code)
}
