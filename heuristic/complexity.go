package heuristic

import (
	"regexp"
	"strings"
)

// Complexity buckets, ordered.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

// Bucket thresholds over the weighted score.
const (
	intermediateAt = 15
	advancedAt     = 40
	expertAt       = 80
)

// ComplexityFeatures are the raw counts feeding the score.
type ComplexityFeatures struct {
	Lines         int
	Functions     int
	Loops         int
	Conditionals  int
	Classes       int
	Recursion     int
	Async         int
	ErrorHandling int
	MaxNesting    int
	Containers    int
}

// Complexity is the scored outcome.
type Complexity struct {
	Score    int                `json:"score"`
	Level    string             `json:"level"`
	Features ComplexityFeatures `json:"-"`
}

var (
	funcPattern      = regexp.MustCompile(`\b(?:def|function|func)\s+\w+|\w+\s*=\s*(?:async\s*)?\([^)]*\)\s*=>|(?:public|private|protected)\s+(?:static\s+)?\w+\s+\w+\s*\(`)
	loopPattern      = regexp.MustCompile(`\b(?:for|while|do)\b`)
	condPattern      = regexp.MustCompile(`\b(?:if|elif|else if|switch|case)\b`)
	classPattern     = regexp.MustCompile(`\b(?:class|struct|interface)\s+\w+`)
	asyncPattern     = regexp.MustCompile(`\b(?:async|await|goroutine|Promise|Thread|pthread)\b`)
	errPattern       = regexp.MustCompile(`\b(?:try|catch|except|finally|throw|raise|errno)\b`)
	containerPattern = regexp.MustCompile(`\b(?:list|dict|set|tuple|Array|ArrayList|HashMap|vector|map|queue|stack)\b`)
)

// MeasureComplexity computes a weighted linear score over structural
// counts and maps it to an ordinal bucket. All weights are positive, so
// the score is monotonic non-decreasing in each feature.
func MeasureComplexity(code string) Complexity {
	f := extractFeatures(code)

	score := f.Lines/5 +
		f.Functions*3 +
		f.Loops*3 +
		f.Conditionals*2 +
		f.Classes*5 +
		f.Recursion*6 +
		f.Async*4 +
		f.ErrorHandling*3 +
		f.MaxNesting*2 +
		f.Containers

	level := LevelBeginner
	switch {
	case score >= expertAt:
		level = LevelExpert
	case score >= advancedAt:
		level = LevelAdvanced
	case score >= intermediateAt:
		level = LevelIntermediate
	}

	return Complexity{Score: score, Level: level, Features: f}
}

func extractFeatures(code string) ComplexityFeatures {
	f := ComplexityFeatures{
		Functions:     len(funcPattern.FindAllString(code, -1)),
		Loops:         len(loopPattern.FindAllString(code, -1)),
		Conditionals:  len(condPattern.FindAllString(code, -1)),
		Classes:       len(classPattern.FindAllString(code, -1)),
		Async:         len(asyncPattern.FindAllString(code, -1)),
		ErrorHandling: len(errPattern.FindAllString(code, -1)),
		Containers:    len(containerPattern.FindAllString(code, -1)),
	}

	for _, line := range strings.Split(code, "\n") {
		if strings.TrimSpace(line) != "" {
			f.Lines++
		}
	}

	f.Recursion = countRecursion(code)
	f.MaxNesting = maxNesting(code)
	return f
}

var namedFuncPattern = regexp.MustCompile(`\b(?:def|function|func)\s+(\w+)`)

// countRecursion counts defined functions whose own name reappears in
// the source more than once (definition plus at least one call site).
// A heuristic: it cannot see indirect recursion and may be fooled by
// shadowing.
func countRecursion(code string) int {
	count := 0
	for _, m := range namedFuncPattern.FindAllStringSubmatch(code, -1) {
		name := m[1]
		calls := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*\(`)
		if len(calls.FindAllString(code, -1)) > 1 {
			count++
		}
	}
	return count
}

// maxNesting tracks brace depth line by line; for brace-free languages
// it falls back to indentation steps of four spaces or one tab.
func maxNesting(code string) int {
	depth, maxDepth := 0, 0
	braces := strings.Count(code, "{") > 0

	for _, line := range strings.Split(code, "\n") {
		if braces {
			for _, ch := range line {
				switch ch {
				case '{':
					depth++
					if depth > maxDepth {
						maxDepth = depth
					}
				case '}':
					if depth > 0 {
						depth--
					}
				}
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := 0
		for _, ch := range line {
			if ch == ' ' {
				indent++
			} else if ch == '\t' {
				indent += 4
			} else {
				break
			}
		}
		if d := indent / 4; d > maxDepth {
			maxDepth = d
		}
	}
	return maxDepth
}
