package heuristic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/CHEATEY13/Last/core"
)

// Issue types and severities.
const (
	IssueSyntax = "syntax"
	IssueLogic  = "logic"
	IssueStyle  = "style"

	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// DetectIssues runs the per-language checklist over the code. Each
// checker is a pure function contributing zero or more issues; none of
// them parse the language for real, so everything here is heuristic.
func DetectIssues(code, language string) []core.Issue {
	language = CanonicalLanguage(language)
	var issues []core.Issue

	switch language {
	case LangJavaScript:
		issues = append(issues, checkVarUsage(code)...)
		issues = append(issues, checkLooseEquality(code)...)
		issues = append(issues, checkMissingSemicolons(code, language)...)
	case LangJava, LangC, LangCPP:
		issues = append(issues, checkMissingSemicolons(code, language)...)
	}

	issues = append(issues, checkBalance(code)...)
	issues = append(issues, checkInfiniteLoops(code)...)
	issues = append(issues, checkUnusedVariables(code, language)...)

	return issues
}

var varDeclPattern = regexp.MustCompile(`\bvar\s+(\w+)`)

// checkVarUsage flags `var` declarations and mixed declaration keywords
// in JavaScript.
func checkVarUsage(code string) []core.Issue {
	var issues []core.Issue

	for i, line := range strings.Split(code, "\n") {
		if m := varDeclPattern.FindStringSubmatch(line); m != nil {
			issues = append(issues, core.Issue{
				Type:        IssueSyntax,
				Line:        i + 1,
				Description: fmt.Sprintf("'var %s' uses function-scoped var; prefer 'let' or 'const' for block scoping", m[1]),
				Severity:    SeverityMedium,
			})
		}
	}

	usesVar := varDeclPattern.MatchString(code)
	usesModern := regexp.MustCompile(`\b(?:let|const)\s+\w+`).MatchString(code)
	if usesVar && usesModern {
		issues = append(issues, core.Issue{
			Type:        IssueStyle,
			Description: "Mixed declaration keywords (var alongside let/const); pick one style",
			Severity:    SeverityLow,
		})
	}

	return issues
}

var looseEqPattern = regexp.MustCompile(`[^=!<>]==[^=]|[^=!<>]!=[^=]`)

func checkLooseEquality(code string) []core.Issue {
	var issues []core.Issue
	for i, line := range strings.Split(code, "\n") {
		if looseEqPattern.MatchString(line) {
			issues = append(issues, core.Issue{
				Type:        IssueStyle,
				Line:        i + 1,
				Description: "Loose equality (== or !=) coerces types; prefer === and !==",
				Severity:    SeverityLow,
			})
		}
	}
	return issues
}

// needsSemicolon matches statement-like lines in semicolon languages.
var statementEnd = regexp.MustCompile(`[\w)\]"']$`)

var noSemicolonNeeded = regexp.MustCompile(`^\s*(?:if|else|for|while|do|switch|function|class|struct|public|private|protected|#|//|/\*|\*|import|package|case|default|try|catch|finally|template|using|namespace)\b|=>\s*\{?$|^\s*@`)

func checkMissingSemicolons(code, language string) []core.Issue {
	var issues []core.Issue
	for i, raw := range strings.Split(code, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || !statementEnd.MatchString(line) {
			continue
		}
		if noSemicolonNeeded.MatchString(line) {
			continue
		}
		if strings.HasSuffix(line, "{") || strings.HasSuffix(line, "}") ||
			strings.HasSuffix(line, ";") || strings.HasSuffix(line, ",") {
			continue
		}
		issues = append(issues, core.Issue{
			Type:        IssueSyntax,
			Line:        i + 1,
			Description: fmt.Sprintf("Statement may be missing a trailing semicolon (%s)", language),
			Severity:    SeverityMedium,
		})
	}
	return issues
}

// checkBalance counts braces and parentheses; an imbalance anywhere in
// the file is reported once per delimiter kind.
func checkBalance(code string) []core.Issue {
	var issues []core.Issue

	// Strings and comments are not stripped; this is a rough count.
	if d := strings.Count(code, "{") - strings.Count(code, "}"); d != 0 {
		issues = append(issues, core.Issue{
			Type:        IssueSyntax,
			Description: fmt.Sprintf("Unbalanced braces: %+d unmatched", d),
			Severity:    SeverityHigh,
		})
	}
	if d := strings.Count(code, "(") - strings.Count(code, ")"); d != 0 {
		issues = append(issues, core.Issue{
			Type:        IssueSyntax,
			Description: fmt.Sprintf("Unbalanced parentheses: %+d unmatched", d),
			Severity:    SeverityHigh,
		})
	}

	return issues
}

var infiniteLoopPattern = regexp.MustCompile(`while\s*\(\s*(?:true|1)\s*\)|while\s+True\s*:|for\s*\(\s*;\s*;\s*\)`)

var breakPattern = regexp.MustCompile(`\b(?:break|return|exit|sys\.exit|throw|raise)\b`)

func checkInfiniteLoops(code string) []core.Issue {
	var issues []core.Issue
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		if !infiniteLoopPattern.MatchString(line) {
			continue
		}
		// Look ahead a handful of lines for anything that exits the loop.
		rest := strings.Join(lines[i:min(i+10, len(lines))], "\n")
		if !breakPattern.MatchString(rest) {
			issues = append(issues, core.Issue{
				Type:        IssueLogic,
				Line:        i + 1,
				Description: "Potential infinite loop: no break, return or exit found nearby",
				Severity:    SeverityHigh,
			})
		}
	}
	return issues
}

var declPatterns = map[string]*regexp.Regexp{
	LangPython:     regexp.MustCompile(`(?m)^\s*(\w+)\s*=[^=]`),
	LangJavaScript: regexp.MustCompile(`\b(?:var|let|const)\s+(\w+)`),
	LangJava:       regexp.MustCompile(`\b(?:int|long|double|float|boolean|char|String)\s+(\w+)`),
	LangC:          regexp.MustCompile(`\b(?:int|long|double|float|char|unsigned|short)\s+(\w+)`),
	LangCPP:        regexp.MustCompile(`\b(?:int|long|double|float|char|bool|auto)\s+(\w+)`),
}

// checkUnusedVariables flags declared names that occur exactly once in
// the whole source. Single-occurrence is a naive proxy for "never read":
// shadowing and string mentions both fool it, hence the low severity.
func checkUnusedVariables(code, language string) []core.Issue {
	pattern, ok := declPatterns[language]
	if !ok {
		return nil
	}

	var issues []core.Issue
	seen := map[string]bool{}
	for _, m := range pattern.FindAllStringSubmatch(code, -1) {
		name := m[1]
		if seen[name] || name == "main" || name == "_" {
			continue
		}
		seen[name] = true

		occurrences := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
		if len(occurrences.FindAllString(code, -1)) == 1 {
			issues = append(issues, core.Issue{
				Type:        IssueStyle,
				Description: fmt.Sprintf("Variable '%s' appears only once; it may be unused", name),
				Severity:    SeverityLow,
			})
		}
	}
	return issues
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
