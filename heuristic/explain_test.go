package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainLinesPython(t *testing.T) {
	code := "import math\ndef area(r):\n    return math.pi * r * r\nprint(area(2))"

	lines := ExplainLines(code, "Python")

	require.Len(t, lines, 4)
	assert.Equal(t, 1, lines[0].Line)
	assert.Contains(t, lines[0].Explanation, "math")
	assert.Contains(t, lines[1].Explanation, "area")
	assert.Contains(t, lines[2].Explanation, "Returns")
	assert.Contains(t, lines[3].Explanation, "Prints")
}

func TestExplainLinesSkipsBlankLines(t *testing.T) {
	code := "x = 1\n\n\ny = 2"

	lines := ExplainLines(code, "Python")

	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Line)
	assert.Equal(t, 4, lines[1].Line)
}

func TestExplainLinesPrintReferencesLine(t *testing.T) {
	// Mirrors guest analysis of a one-liner.
	lines := ExplainLines("print('hi')", "Python")

	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0].Explanation, "Prints")
	assert.Contains(t, lines[0].Code, "print")
}

func TestExplainLinesGenericFallback(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "comment", line: "// a note", want: "comment"},
		{name: "loop", line: "for thing in stuff", want: "Repeats"},
		{name: "return", line: "return someValue", want: "caller"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// An unsupported language has no idiom table, so every line
			// goes through the generic classifier.
			lines := ExplainLines(test.line, "Rust")
			require.Len(t, lines, 1)
			assert.Contains(t, lines[0].Explanation, test.want)
		})
	}
}

func TestExplainLinesJava(t *testing.T) {
	code := "public class Main {\npublic static void main(String[] args) {\nSystem.out.println(\"hi\");\n}\n}"

	lines := ExplainLines(code, "Java")

	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0].Explanation, "Main")
	assert.Contains(t, lines[1].Explanation, "entry point")
	assert.Contains(t, lines[2].Explanation, "Prints")
}
