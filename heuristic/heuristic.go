// Package heuristic implements the no-credential fallback tier: regex
// and pattern-table responders that produce structurally valid (if
// shallow) analysis, debugging and translation results without calling
// any AI provider. Every entry point is a pure function of its inputs;
// nothing here keeps state across calls.
package heuristic

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/CHEATEY13/Last/core"
)

// Responder implements core.Assistant over the heuristic tables.
type Responder struct{}

var _ core.Assistant = (*Responder)(nil)

func NewResponder() *Responder {
	return &Responder{}
}

func (r *Responder) Name() string { return "heuristic" }

// Analyze detects the language, explains each line, scores complexity
// and simulates output from print-like statements.
func (r *Responder) Analyze(_ context.Context, code, language string) (*core.AnalysisResult, error) {
	detection := DetectLanguage(code, language)
	lines := ExplainLines(code, detection.Language)
	complexity := MeasureComplexity(code)

	return &core.AnalysisResult{
		Language:           detection.Language,
		Overview:           overviewFor(detection, complexity),
		LineByLineAnalysis: lines,
		Output:             simulateOutput(code, detection.Language),
		Summary: fmt.Sprintf("%d line(s) of %s code at %s level (score %d).",
			complexity.Features.Lines, detection.Language, complexity.Level, complexity.Score),
		Suggestions: suggestionsFor(code, detection.Language, complexity),
		Source:      core.SourceFallback,
	}, nil
}

// Debug runs the issue checklist and produces a naively repaired copy of
// the code.
func (r *Responder) Debug(_ context.Context, code, language string) (*core.DebugResult, error) {
	detection := DetectLanguage(code, language)
	issues := DetectIssues(code, detection.Language)

	summary := fmt.Sprintf("Found %d potential issue(s) in %s code.", len(issues), detection.Language)
	if len(issues) == 0 {
		summary = fmt.Sprintf("No obvious issues found in %s code.", detection.Language)
	}

	return &core.DebugResult{
		Language:    detection.Language,
		Issues:      issues,
		Suggestions: suggestionsFor(code, detection.Language, MeasureComplexity(code)),
		FixedCode:   FixCode(code, detection.Language),
		Summary:     summary,
		Source:      core.SourceFallback,
	}, nil
}

// Translate transliterates to Python regardless of the requested target.
func (r *Responder) Translate(_ context.Context, code, language, target string) (*core.TranslationResult, error) {
	result := Translate(code, language)
	if target != "" && CanonicalLanguage(target) != TargetLanguage {
		result.Notes = fmt.Sprintf("Requested target %q is not supported; translated to %s instead. %s",
			target, TargetLanguage, result.Notes)
	}
	return result, nil
}

func overviewFor(d Detection, c Complexity) string {
	return fmt.Sprintf("This looks like %s code at %s complexity. "+
		"The analysis below was produced by pattern matching, not by a language model.",
		d.Language, c.Level)
}

func suggestionsFor(code, language string, c Complexity) []string {
	suggestions := []string{}

	if c.Features.ErrorHandling == 0 && c.Features.Lines > 10 {
		suggestions = append(suggestions, "Consider adding error handling for failure cases.")
	}
	if c.Features.Functions == 0 && c.Features.Lines > 15 {
		suggestions = append(suggestions, "Consider extracting reusable logic into functions.")
	}
	if c.MaxNestingExceeded() {
		suggestions = append(suggestions, "Deep nesting detected; consider flattening with early returns.")
	}
	if language == LangJavaScript && strings.Contains(code, "var ") {
		suggestions = append(suggestions, "Replace var with let or const for block scoping.")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Code structure looks reasonable at this size.")
	}
	return suggestions
}

func (c Complexity) MaxNestingExceeded() bool {
	return c.Features.MaxNesting >= 4
}

var printExtractors = map[string]*regexp.Regexp{
	LangPython:     regexp.MustCompile(`print\s*\(\s*(['"])(.*?)['"]\s*[,)]`),
	LangJavaScript: regexp.MustCompile(`console\.log\s*\(\s*(['"])(.*?)['"]\s*[,)]`),
	LangJava:       regexp.MustCompile(`System\.out\.print(?:ln)?\s*\(\s*(")(.*?)"\s*[,)]`),
	LangC:          regexp.MustCompile(`printf\s*\(\s*(")(.*?)"`),
	LangCPP:        regexp.MustCompile(`cout\s*<<\s*(")(.*?)"`),
}

// simulateOutput collects string literals from print-like statements.
// Expressions are beyond this tier; only literal output is simulated.
func simulateOutput(code, language string) string {
	pattern, ok := printExtractors[language]
	if !ok {
		return ""
	}

	var out []string
	for _, m := range pattern.FindAllStringSubmatch(code, -1) {
		text := strings.ReplaceAll(m[2], `\n`, "\n")
		out = append(out, text)
	}
	if len(out) == 0 {
		return ""
	}
	joined := strings.Join(out, "\n")
	if !strings.HasSuffix(joined, "\n") {
		joined += "\n"
	}
	return joined
}

// FixCode applies the naive, mechanical repairs matching the issue
// checklist: semicolon insertion, var replacement and loose-equality
// tightening. It never restructures code.
func FixCode(code, language string) string {
	lines := strings.Split(code, "\n")

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch language {
		case LangJavaScript:
			fixed := strings.Replace(raw, "var ", "let ", 1)
			fixed = regexp.MustCompile(`([^=!<>])==([^=])`).ReplaceAllString(fixed, "$1===$2")
			fixed = regexp.MustCompile(`([^=!<>])!=([^=])`).ReplaceAllString(fixed, "$1!==$2")
			lines[i] = maybeAddSemicolon(fixed)
		case LangJava, LangC, LangCPP:
			lines[i] = maybeAddSemicolon(raw)
		}
	}

	return strings.Join(lines, "\n")
}

func maybeAddSemicolon(raw string) string {
	line := strings.TrimRight(raw, " \t")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || !statementEnd.MatchString(trimmed) || noSemicolonNeeded.MatchString(trimmed) {
		return raw
	}
	if strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, "}") ||
		strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, ",") {
		return raw
	}
	return line + ";"
}
