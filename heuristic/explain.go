package heuristic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/CHEATEY13/Last/core"
)

// idiomRule maps a code idiom to a canned explanation. Explain may
// reference capture groups from Pattern via Expand ($1, $2, ...).
type idiomRule struct {
	Pattern *regexp.Regexp
	Explain string
}

// Per-language idiom tables, evaluated in order; the first match wins.
// Lines matching no rule fall through to the generic classifier.
var idiomTables = map[string][]idiomRule{
	LangPython: {
		{regexp.MustCompile(`^from\s+(\S+)\s+import\s+(.+)$`), "Imports $2 from the $1 module"},
		{regexp.MustCompile(`^import\s+(\S+)`), "Imports the $1 module"},
		{regexp.MustCompile(`^def\s+(\w+)\s*\((.*)\)`), "Defines the function $1 taking parameters ($2)"},
		{regexp.MustCompile(`^class\s+(\w+)`), "Defines the class $1"},
		{regexp.MustCompile(`^if\s+__name__\s*==`), "Entry-point guard: runs the block only when the file is executed directly"},
		{regexp.MustCompile(`^return\s+(.*)`), "Returns $1 from the enclosing function"},
		{regexp.MustCompile(`^print\s*\((.*)\)`), "Prints $1 to standard output"},
		{regexp.MustCompile(`^for\s+(\w+)\s+in\s+(.+):`), "Loops over $2, binding each element to $1"},
		{regexp.MustCompile(`^while\s+(.+):`), "Loops while the condition $1 holds"},
		{regexp.MustCompile(`^elif\s+(.+):`), "Otherwise, checks whether $1 holds"},
		{regexp.MustCompile(`^if\s+(.+):`), "Checks whether $1 holds"},
		{regexp.MustCompile(`^else\s*:`), "Runs when none of the previous conditions held"},
		{regexp.MustCompile(`^(\w+)\s*=\s*\[(.*)\]`), "Creates the list $1"},
		{regexp.MustCompile(`^(\w+)\s*=\s*\{(.*)\}`), "Creates the dictionary $1"},
		{regexp.MustCompile(`^(\w+)\s*=\s*(.+)`), "Assigns $2 to the variable $1"},
	},
	LangJavaScript: {
		{regexp.MustCompile(`^import\s+(.+)\s+from\s+['"](.+)['"]`), "Imports $1 from the $2 module"},
		{regexp.MustCompile(`^const\s+(\w+)\s*=\s*require\(`), "Loads a module into the constant $1"},
		{regexp.MustCompile(`^function\s+(\w+)\s*\((.*)\)`), "Defines the function $1 taking parameters ($2)"},
		{regexp.MustCompile(`^(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s*)?\((.*)\)\s*=>`), "Defines the arrow function $1 taking parameters ($2)"},
		{regexp.MustCompile(`^class\s+(\w+)`), "Defines the class $1"},
		{regexp.MustCompile(`console\.log\s*\((.*)\)`), "Logs $1 to the console"},
		{regexp.MustCompile(`^const\s+(\w+)\s*=\s*(.+)`), "Declares the constant $1 with value $2"},
		{regexp.MustCompile(`^let\s+(\w+)\s*=\s*(.+)`), "Declares the variable $1 with value $2"},
		{regexp.MustCompile(`^var\s+(\w+)\s*=\s*(.+)`), "Declares the (function-scoped) variable $1 with value $2"},
		{regexp.MustCompile(`^for\s*\((.*)\)`), "Loops with the clause ($1)"},
		{regexp.MustCompile(`^while\s*\((.+)\)`), "Loops while the condition $1 holds"},
		{regexp.MustCompile(`^if\s*\((.+)\)`), "Checks whether $1 holds"},
		{regexp.MustCompile(`^return\s+(.*)`), "Returns $1 from the enclosing function"},
	},
	LangJava: {
		{regexp.MustCompile(`^import\s+([\w.]+);`), "Imports the $1 package"},
		{regexp.MustCompile(`^public\s+static\s+void\s+main`), "Program entry point: execution starts here"},
		{regexp.MustCompile(`^public\s+class\s+(\w+)`), "Defines the public class $1"},
		{regexp.MustCompile(`^(?:public|private|protected)?\s*(?:static\s+)?(\w+(?:<.*>)?)\s+(\w+)\s*\((.*)\)\s*\{?$`), "Defines the method $2 returning $1"},
		{regexp.MustCompile(`System\.out\.println\s*\((.*)\)`), "Prints $1 followed by a newline"},
		{regexp.MustCompile(`System\.out\.print\s*\((.*)\)`), "Prints $1 without a newline"},
		{regexp.MustCompile(`^(\w+(?:<.*>)?)\s+(\w+)\s*=\s*new\s+(.+);`), "Creates a new $3 and assigns it to $2"},
		{regexp.MustCompile(`^(int|long|double|float|boolean|char|String)\s+(\w+)\s*=\s*(.+);`), "Declares the $1 variable $2 with value $3"},
		{regexp.MustCompile(`^for\s*\((.*)\)`), "Loops with the clause ($1)"},
		{regexp.MustCompile(`^while\s*\((.+)\)`), "Loops while the condition $1 holds"},
		{regexp.MustCompile(`^if\s*\((.+)\)`), "Checks whether $1 holds"},
		{regexp.MustCompile(`^return\s+(.*);`), "Returns $1 from the enclosing method"},
	},
	LangC: {
		{regexp.MustCompile(`^#include\s*<(\w+\.h)>`), "Includes the standard header $1"},
		{regexp.MustCompile(`^#include\s*"(.+)"`), "Includes the local header $1"},
		{regexp.MustCompile(`^#define\s+(\w+)\s+(.+)`), "Defines the macro $1 as $2"},
		{regexp.MustCompile(`^int\s+main\s*\(`), "Program entry point: execution starts here"},
		{regexp.MustCompile(`\bprintf\s*\((.*)\)`), "Prints formatted output: $1"},
		{regexp.MustCompile(`\bscanf\s*\((.*)\)`), "Reads formatted input: $1"},
		{regexp.MustCompile(`^struct\s+(\w+)`), "Defines the struct $1"},
		{regexp.MustCompile(`^(int|long|double|float|char|unsigned|short)\s+(\w+)\s*=\s*(.+);`), "Declares the $1 variable $2 with value $3"},
		{regexp.MustCompile(`^(int|long|double|float|char|unsigned|short)\s+(\w+)\s*;`), "Declares the $1 variable $2"},
		{regexp.MustCompile(`^for\s*\((.*)\)`), "Loops with the clause ($1)"},
		{regexp.MustCompile(`^while\s*\((.+)\)`), "Loops while the condition $1 holds"},
		{regexp.MustCompile(`^if\s*\((.+)\)`), "Checks whether $1 holds"},
		{regexp.MustCompile(`^return\s+(.*);`), "Returns $1 from the enclosing function"},
	},
	LangCPP: {
		{regexp.MustCompile(`^#include\s*<(\w+)>`), "Includes the standard header $1"},
		{regexp.MustCompile(`^using\s+namespace\s+std;`), "Brings the std namespace into scope"},
		{regexp.MustCompile(`^int\s+main\s*\(`), "Program entry point: execution starts here"},
		{regexp.MustCompile(`\bcout\s*<<\s*(.+);`), "Prints $1 to standard output"},
		{regexp.MustCompile(`\bcin\s*>>\s*(.+);`), "Reads input into $1"},
		{regexp.MustCompile(`^class\s+(\w+)`), "Defines the class $1"},
		{regexp.MustCompile(`^template\s*<(.+)>`), "Declares a template over $1"},
		{regexp.MustCompile(`^(?:std::)?vector\s*<(.+)>\s+(\w+)`), "Declares $2, a vector of $1"},
		{regexp.MustCompile(`^(int|long|double|float|char|bool|auto)\s+(\w+)\s*=\s*(.+);`), "Declares the $1 variable $2 with value $3"},
		{regexp.MustCompile(`^for\s*\((.*)\)`), "Loops with the clause ($1)"},
		{regexp.MustCompile(`^while\s*\((.+)\)`), "Loops while the condition $1 holds"},
		{regexp.MustCompile(`^if\s*\((.+)\)`), "Checks whether $1 holds"},
		{regexp.MustCompile(`^return\s+(.*);`), "Returns $1 from the enclosing function"},
	},
}

// Generic fallback classifiers, language-independent, evaluated when no
// idiom rule matched.
var genericClassifiers = []struct {
	kind    string
	pattern *regexp.Regexp
	explain string
}{
	{"comment", regexp.MustCompile(`^(//|#|/\*|\*)`), "A comment for human readers; ignored by the language"},
	{"import", regexp.MustCompile(`^(import|from|#include|require|using)\b`), "Brings external code into this file"},
	{"function", regexp.MustCompile(`^\s*(def|function|func|fn)\b|\w+\s*\(.*\)\s*\{`), "Defines a reusable block of code"},
	{"class", regexp.MustCompile(`^\s*(class|struct|interface)\b`), "Defines a type grouping data and behavior"},
	{"return", regexp.MustCompile(`^\s*return\b`), "Hands a value back to the caller"},
	{"print", regexp.MustCompile(`\b(print|printf|println|console\.log|cout)\b`), "Produces visible output"},
	{"conditional", regexp.MustCompile(`^\s*(if|else|elif|switch|case)\b`), "Chooses between branches based on a condition"},
	{"loop", regexp.MustCompile(`^\s*(for|while|do)\b`), "Repeats a block of code"},
	{"brace", regexp.MustCompile(`^\s*[{}()\[\];]*\s*$`), "Structural punctuation closing or opening a block"},
	{"variable", regexp.MustCompile(`^\s*(var|let|const|int|float|double|char|bool|string|auto)\b`), "Declares a variable"},
	{"assignment", regexp.MustCompile(`^\s*[\w.\[\]]+\s*[-+*/|&]?=[^=]`), "Stores a value for later use"},
}

// ExplainLines maps each non-empty source line to an explanation using
// the per-language idiom table, falling back to the generic classifier.
func ExplainLines(code, language string) []core.LineAnalysis {
	language = CanonicalLanguage(language)
	rules := idiomTables[language]

	var out []core.LineAnalysis
	for i, raw := range strings.Split(code, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		out = append(out, core.LineAnalysis{
			Line:        i + 1,
			Code:        raw,
			Explanation: explainLine(line, rules),
		})
	}
	return out
}

func explainLine(line string, rules []idiomRule) string {
	for _, r := range rules {
		if m := r.Pattern.FindStringSubmatchIndex(line); m != nil {
			return string(r.Pattern.ExpandString(nil, r.Explain, line, m))
		}
	}

	for _, c := range genericClassifiers {
		if c.pattern.MatchString(line) {
			return c.explain
		}
	}
	return fmt.Sprintf("Executes the statement %q", line)
}
