package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHEATEY13/Last/core"
	"github.com/CHEATEY13/Last/heuristic"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"fenced with tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no tag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.in))
		})
	}
}

func TestParseAnalysis(t *testing.T) {
	raw := "```json\n{\"language\":\"Python\",\"overview\":\"Prints a greeting.\",\"summary\":\"Trivial.\",\"suggestions\":[\"none\"]}\n```"

	res := parseAnalysis(raw, "python")
	require.NotNil(t, res)
	assert.Equal(t, "Python", res.Language)
	assert.Equal(t, "Prints a greeting.", res.Overview)
	assert.Empty(t, res.Raw)
}

func TestParseAnalysisUnstructured(t *testing.T) {
	raw := "Sure! Here is my analysis: the code prints hello."

	res := parseAnalysis(raw, "python")
	require.NotNil(t, res)
	assert.Equal(t, "python", res.Language)
	assert.Equal(t, raw, res.Raw)
	assert.NotEmpty(t, res.Overview)
}

func TestParseDebugFillsLanguage(t *testing.T) {
	res := parseDebug(`{"issues":[{"type":"style","line":1,"description":"x","severity":"low"}]}`, "javascript")
	require.NotNil(t, res)
	assert.Equal(t, "javascript", res.Language)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "style", res.Issues[0].Type)
}

func TestParseTranslationPlainText(t *testing.T) {
	raw := "```python\nprint('hi')\n```"

	res := parseTranslation(raw, "javascript", "python")
	require.NotNil(t, res)
	assert.Equal(t, "print('hi')", res.TranslatedCode)
	assert.Equal(t, "python", res.TargetLanguage)
	assert.NotEmpty(t, res.Notes)
}

// failingAssistant always errors, standing in for a dead upstream.
type failingAssistant struct{}

func (failingAssistant) Name() string { return "failing" }

func (failingAssistant) Analyze(context.Context, string, string) (*core.AnalysisResult, error) {
	return nil, errors.New("boom")
}

func (failingAssistant) Debug(context.Context, string, string) (*core.DebugResult, error) {
	return nil, errors.New("boom")
}

func (failingAssistant) Translate(context.Context, string, string, string) (*core.TranslationResult, error) {
	return nil, errors.New("boom")
}

// stubAssistant returns canned results without a Source tag, the way
// the live parsers do.
type stubAssistant struct{}

func (stubAssistant) Name() string { return "stub" }

func (stubAssistant) Analyze(context.Context, string, string) (*core.AnalysisResult, error) {
	return &core.AnalysisResult{Language: "Python", Summary: "stubbed"}, nil
}

func (stubAssistant) Debug(context.Context, string, string) (*core.DebugResult, error) {
	return &core.DebugResult{Language: "Python", Summary: "stubbed"}, nil
}

func (stubAssistant) Translate(context.Context, string, string, string) (*core.TranslationResult, error) {
	return &core.TranslationResult{Language: "Python", TranslatedCode: "pass"}, nil
}

func TestTieredUsesFallbackWithoutPrimary(t *testing.T) {
	tiered := NewTiered(nil, heuristic.NewResponder(), nil)

	assert.False(t, tiered.Live())

	res, err := tiered.Analyze(context.Background(), "print('hi')", "python")
	require.NoError(t, err)
	assert.Equal(t, core.SourceFallback, res.Source)
}

func TestTieredDegradesOnPrimaryError(t *testing.T) {
	tiered := NewTiered(failingAssistant{}, heuristic.NewResponder(), nil)

	assert.True(t, tiered.Live())

	res, err := tiered.Debug(context.Background(), "var x = 1;", "javascript")
	require.NoError(t, err)
	assert.Equal(t, core.SourceFallback, res.Source)

	tr, err := tiered.Translate(context.Background(), "console.log('hi');", "javascript", "python")
	require.NoError(t, err)
	assert.Equal(t, core.SourceFallback, tr.Source)
}

func TestTieredTagsLiveResults(t *testing.T) {
	tiered := NewTiered(stubAssistant{}, heuristic.NewResponder(), nil)

	res, err := tiered.Analyze(context.Background(), "print('hi')", "python")
	require.NoError(t, err)
	assert.Equal(t, core.SourceLive, res.Source)
}
