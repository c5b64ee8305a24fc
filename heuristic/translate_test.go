package heuristic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHEATEY13/Last/core"
)

func TestTranslateJavaToPython(t *testing.T) {
	code := strings.Join([]string{
		"public class Main {",
		"public static void main(String[] args) {",
		"int x = 5;",
		`System.out.println("hello");`,
		"}",
		"}",
	}, "\n")

	result := Translate(code, "Java")

	require.Equal(t, TargetLanguage, result.TargetLanguage)
	assert.Equal(t, core.SourceFallback, result.Source)
	assert.Contains(t, result.TranslatedCode, "class Main:")
	assert.Contains(t, result.TranslatedCode, "def main():")
	assert.Contains(t, result.TranslatedCode, "x = 5")
	assert.Contains(t, result.TranslatedCode, `print("hello")`)
	assert.Contains(t, result.TranslatedCode, `if __name__ == "__main__":`)
	assert.NotContains(t, result.TranslatedCode, "{")
}

func TestTranslateJavaScriptToPython(t *testing.T) {
	code := strings.Join([]string{
		"function add(a, b) {",
		"return a + b;",
		"}",
		"const total = add(1, 2);",
		"console.log(total);",
	}, "\n")

	result := Translate(code, "JavaScript")

	assert.Contains(t, result.TranslatedCode, "def add(a, b):")
	assert.Contains(t, result.TranslatedCode, "return a + b")
	assert.Contains(t, result.TranslatedCode, "total = add(1, 2)")
	assert.Contains(t, result.TranslatedCode, "print(total)")
}

func TestTranslateCToPython(t *testing.T) {
	code := strings.Join([]string{
		"#include <stdio.h>",
		"int main() {",
		`printf("hi\n");`,
		"return 0;",
		"}",
	}, "\n")

	result := Translate(code, "C")

	assert.Contains(t, result.TranslatedCode, "def main():")
	assert.Contains(t, result.TranslatedCode, `print("hi")`)
	assert.Contains(t, result.TranslatedCode, "return 0")
}

func TestTranslateIndentsNestedBlocks(t *testing.T) {
	code := strings.Join([]string{
		"function f(x) {",
		"if (x > 0) {",
		"console.log(x);",
		"}",
		"}",
	}, "\n")

	result := Translate(code, "JavaScript")

	assert.Contains(t, result.TranslatedCode, "def f(x):")
	assert.Contains(t, result.TranslatedCode, "    if x > 0:")
	assert.Contains(t, result.TranslatedCode, "        print(x)")
}

func TestTranslateUnrecognizedLinesBecomeTODOs(t *testing.T) {
	result := Translate("goto fail;", "C")

	assert.Contains(t, result.TranslatedCode, "# TODO: translate: goto fail;")
}

func TestTranslatePythonPassesThrough(t *testing.T) {
	result := Translate("print('hi')", "Python")

	assert.Equal(t, "print('hi')", result.TranslatedCode)
	assert.Contains(t, result.Notes, "already Python")
}

func TestResponderTranslateNotesUnsupportedTarget(t *testing.T) {
	r := NewResponder()

	result, err := r.Translate(nil, "console.log(1);", "JavaScript", "Ruby")

	require.NoError(t, err)
	assert.Equal(t, TargetLanguage, result.TargetLanguage)
	assert.Contains(t, result.Notes, "Ruby")
}
