package heuristic

import (
	"regexp"
	"strings"
)

// Canonical language names used across detection, explanation and
// translation tables.
const (
	LangPython     = "Python"
	LangJavaScript = "JavaScript"
	LangJava       = "Java"
	LangC          = "C"
	LangCPP        = "C++"
)

// SupportedLanguages is the static list served by /api/languages.
var SupportedLanguages = []string{LangPython, LangJavaScript, LangJava, LangC, LangCPP}

// declaredBonus is added to the score of the language the user declared,
// so declaration wins unless the code clearly looks like something else.
const declaredBonus = 3

var detectionPatterns = map[string][]*regexp.Regexp{
	LangPython: {
		regexp.MustCompile(`\bdef\s+\w+\s*\(`),
		regexp.MustCompile(`\bprint\s*\(`),
		regexp.MustCompile(`\bimport\s+\w+`),
		regexp.MustCompile(`\bfrom\s+\w+\s+import\b`),
		regexp.MustCompile(`\bself\b`),
		regexp.MustCompile(`\belif\b`),
		regexp.MustCompile(`:\s*$`),
		regexp.MustCompile(`\bNone\b|\bTrue\b|\bFalse\b`),
		regexp.MustCompile(`\blambda\b`),
		regexp.MustCompile(`#[^!]`),
	},
	LangJavaScript: {
		regexp.MustCompile(`\b(?:var|let|const)\s+\w+`),
		regexp.MustCompile(`\bfunction\s*\w*\s*\(`),
		regexp.MustCompile(`console\.log\s*\(`),
		regexp.MustCompile(`=>`),
		regexp.MustCompile(`\b(?:document|window)\.`),
		regexp.MustCompile(`===|!==`),
		regexp.MustCompile(`\brequire\s*\(|\bmodule\.exports\b`),
		regexp.MustCompile(`\bnull\b|\bundefined\b`),
		regexp.MustCompile(`\basync\s+function\b|\bawait\b`),
	},
	LangJava: {
		regexp.MustCompile(`\bpublic\s+(?:static\s+)?(?:void|class|int|String)\b`),
		regexp.MustCompile(`System\.out\.print`),
		regexp.MustCompile(`\bpublic\s+static\s+void\s+main\b`),
		regexp.MustCompile(`\bimport\s+java\.`),
		regexp.MustCompile(`\bnew\s+\w+\s*\(`),
		regexp.MustCompile(`\bString\s+\w+`),
		regexp.MustCompile(`\bArrayList\b|\bHashMap\b`),
		regexp.MustCompile(`@Override\b`),
	},
	LangC: {
		regexp.MustCompile(`#include\s*<\w+\.h>`),
		regexp.MustCompile(`\bprintf\s*\(`),
		regexp.MustCompile(`\bscanf\s*\(`),
		regexp.MustCompile(`\bint\s+main\s*\(`),
		regexp.MustCompile(`\bmalloc\s*\(|\bfree\s*\(`),
		regexp.MustCompile(`\bstruct\s+\w+`),
		regexp.MustCompile(`\bchar\s*\*`),
	},
	LangCPP: {
		regexp.MustCompile(`#include\s*<iostream>`),
		regexp.MustCompile(`\bstd::`),
		regexp.MustCompile(`\bcout\s*<<|\bcin\s*>>`),
		regexp.MustCompile(`\busing\s+namespace\s+std\b`),
		regexp.MustCompile(`\btemplate\s*<`),
		regexp.MustCompile(`\bvector\s*<|\bmap\s*<`),
		regexp.MustCompile(`\bclass\s+\w+`),
		regexp.MustCompile(`\bnew\s+\w+|\bdelete\s+\w+`),
	},
}

// Detection is the outcome of language detection.
type Detection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// DetectLanguage scores each candidate language by counting pattern hits
// in the source, with a fixed bonus added to the user-declared language.
// The max-scoring language wins; ties go to the declaration. The result
// is a pure function of (code, declared), so repeated calls agree.
func DetectLanguage(code, declared string) Detection {
	declared = CanonicalLanguage(declared)

	scores := make(map[string]int, len(detectionPatterns))
	for lang, patterns := range detectionPatterns {
		for _, p := range patterns {
			scores[lang] += len(p.FindAllStringIndex(code, -1))
		}
	}
	if _, ok := detectionPatterns[declared]; ok {
		scores[declared] += declaredBonus
	}

	// Seeding with the declaration's score (zero for unknown languages)
	// means ties and all-zero scans keep the declared language.
	best, bestScore, total := declared, scores[declared], 0
	for _, lang := range SupportedLanguages {
		score := scores[lang]
		total += score
		if score > bestScore {
			best, bestScore = lang, score
		}
	}

	confidence := 0.0
	if total > 0 {
		confidence = float64(bestScore) / float64(total)
	}

	return Detection{Language: best, Confidence: confidence}
}

// CanonicalLanguage normalizes a user-supplied language name to one of
// the supported tags; unknown names pass through with canonical casing
// attempted.
func CanonicalLanguage(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "python", "python3", "py":
		return LangPython
	case "javascript", "js", "node", "nodejs":
		return LangJavaScript
	case "java":
		return LangJava
	case "c":
		return LangC
	case "c++", "cpp", "cplusplus":
		return LangCPP
	default:
		return strings.TrimSpace(name)
	}
}
