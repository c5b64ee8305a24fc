package core

// ResultSource tags whether a result came from a live provider call or
// from the heuristic fallback tier.
type ResultSource string

const (
	SourceLive     ResultSource = "live"
	SourceFallback ResultSource = "fallback"
)

// LineAnalysis explains a single source line.
type LineAnalysis struct {
	Line        int    `json:"line"`
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
}

// Issue is a single problem found during debugging.
type Issue struct {
	Type        string `json:"type"` // syntax, logic or style
	Line        int    `json:"line,omitempty"`
	Description string `json:"description"`
	Severity    string `json:"severity,omitempty"`
}

// AnalysisResult is the /api/analyze envelope.
type AnalysisResult struct {
	Language           string         `json:"language"`
	Overview           string         `json:"overview"`
	LineByLineAnalysis []LineAnalysis `json:"lineByLineAnalysis"`
	Output             string         `json:"output"`
	Summary            string         `json:"summary"`
	Suggestions        []string       `json:"suggestions"`
	Source             ResultSource   `json:"source"`

	// Raw carries the unparsed provider text when JSON parsing failed,
	// kept for diagnostics only.
	Raw string `json:"raw,omitempty"`
}

// DebugResult is the /api/debug envelope.
type DebugResult struct {
	Language    string       `json:"language"`
	Issues      []Issue      `json:"issues"`
	Suggestions []string     `json:"suggestions"`
	FixedCode   string       `json:"fixedCode"`
	Summary     string       `json:"summary"`
	Source      ResultSource `json:"source"`
}

// TranslationResult is the /api/translate envelope. TargetLanguage is
// always "Python" regardless of the requested target; Notes calls out
// the discrepancy when another target was asked for.
type TranslationResult struct {
	Language       string       `json:"language"`
	TargetLanguage string       `json:"targetLanguage"`
	TranslatedCode string       `json:"translatedCode"`
	Dependencies   []string     `json:"dependencies"`
	Notes          string       `json:"notes"`
	Source         ResultSource `json:"source"`
}
