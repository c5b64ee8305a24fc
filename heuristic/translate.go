package heuristic

import (
	"regexp"
	"strings"

	"github.com/CHEATEY13/Last/core"
)

// TargetLanguage is the only supported translation destination. The
// requested target is echoed through Notes when it differs; the route
// layer makes the discrepancy explicit rather than pretending to honor
// arbitrary targets.
const TargetLanguage = LangPython

// rewriteRule is one line-oriented source-to-Python rewrite. Template
// may reference capture groups ($1, $2, ...). A nil Pattern marks the
// end of a table.
type rewriteRule struct {
	Pattern  *regexp.Regexp
	Template string
}

// Shared C-style control-flow rewrites. Order matters: more specific
// rules precede the catch-alls.
var cStyleControlRules = []rewriteRule{
	{regexp.MustCompile(`^for\s*\(\s*(?:int|long|var|let|const)?\s*(\w+)\s*=\s*(\w+)\s*;\s*\w+\s*<\s*(\w+)\s*;\s*\w+\s*\+\+\s*\)\s*\{?$`), "for $1 in range($2, $3):"},
	{regexp.MustCompile(`^while\s*\(\s*(.+?)\s*\)\s*\{?$`), "while $1:"},
	{regexp.MustCompile(`^if\s*\(\s*(.+?)\s*\)\s*\{?$`), "if $1:"},
	{regexp.MustCompile(`^\}?\s*else\s+if\s*\(\s*(.+?)\s*\)\s*\{?$`), "elif $1:"},
	{regexp.MustCompile(`^\}?\s*else\s*\{?$`), "else:"},
	{regexp.MustCompile(`^return\s+(.*?);?$`), "return $1"},
	{regexp.MustCompile(`^return;$`), "return"},
}

var javaRules = append([]rewriteRule{
	{regexp.MustCompile(`^import\s+[\w.]+;$`), "# import handled by Python's standard library"},
	{regexp.MustCompile(`^public\s+class\s+(\w+)\s*\{?$`), "class $1:"},
	{regexp.MustCompile(`^public\s+static\s+void\s+main\s*\(.*\)\s*\{?$`), "def main():"},
	{regexp.MustCompile(`^(?:public|private|protected)\s+(?:static\s+)?[\w<>\[\]]+\s+(\w+)\s*\(\s*\)\s*\{?$`), "def $1():"},
	{regexp.MustCompile(`^(?:public|private|protected)\s+(?:static\s+)?[\w<>\[\]]+\s+(\w+)\s*\((.+)\)\s*\{?$`), "def $1($2):"},
	{regexp.MustCompile(`^System\.out\.println\s*\(\s*(.*?)\s*\)\s*;$`), "print($1)"},
	{regexp.MustCompile(`^System\.out\.print\s*\(\s*(.*?)\s*\)\s*;$`), `print($1, end="")`},
	{regexp.MustCompile(`^(?:int|long|double|float|boolean|char|String)\s+(\w+)\s*=\s*(.+?);$`), "$1 = $2"},
	{regexp.MustCompile(`^(?:int|long|double|float|boolean|char|String)\s+(\w+);$`), "$1 = None"},
	{regexp.MustCompile(`^(\w+)\s*=\s*(.+?);$`), "$1 = $2"},
	{regexp.MustCompile(`^(\w+(?:\.\w+)*\s*\(.*\))\s*;$`), "$1"},
}, cStyleControlRules...)

var javascriptRules = append([]rewriteRule{
	{regexp.MustCompile(`^(?:const|let|var)\s+(\w+)\s*=\s*require\(.+\);?$`), "import $1"},
	{regexp.MustCompile(`^import\s+.*$`), "# import handled by Python's standard library"},
	{regexp.MustCompile(`^function\s+(\w+)\s*\(\s*\)\s*\{?$`), "def $1():"},
	{regexp.MustCompile(`^function\s+(\w+)\s*\((.+)\)\s*\{?$`), "def $1($2):"},
	{regexp.MustCompile(`^(?:const|let|var)\s+(\w+)\s*=\s*\((.*)\)\s*=>\s*\{?$`), "def $1($2):"},
	{regexp.MustCompile(`^class\s+(\w+)\s*\{?$`), "class $1:"},
	{regexp.MustCompile(`^console\.log\s*\(\s*(.*?)\s*\)\s*;?$`), "print($1)"},
	{regexp.MustCompile(`^(?:const|let|var)\s+(\w+)\s*=\s*\[(.*)\]\s*;?$`), "$1 = [$2]"},
	{regexp.MustCompile(`^(?:const|let|var)\s+(\w+)\s*=\s*(.+?)\s*;?$`), "$1 = $2"},
	{regexp.MustCompile(`^(\w+)\s*=\s*(.+?)\s*;?$`), "$1 = $2"},
	{regexp.MustCompile(`^(\w+(?:\.\w+)*\s*\(.*\))\s*;?$`), "$1"},
}, cStyleControlRules...)

var cRules = append([]rewriteRule{
	{regexp.MustCompile(`^#include\s*[<"].+[>"]$`), "# include handled by Python's standard library"},
	{regexp.MustCompile(`^#define\s+(\w+)\s+(.+)$`), "$1 = $2"},
	{regexp.MustCompile(`^using\s+namespace\s+std\s*;$`), "# namespace not needed in Python"},
	{regexp.MustCompile(`^int\s+main\s*\(.*\)\s*\{?$`), "def main():"},
	{regexp.MustCompile(`^(?:std::)?cout\s*<<\s*(.+?)(?:\s*<<\s*(?:std::)?endl)?\s*;$`), "print($1)"},
	{regexp.MustCompile(`^printf\s*\(\s*"([^"]*?)(?:\\n)?"\s*\)\s*;$`), `print("$1")`},
	{regexp.MustCompile(`^printf\s*\(\s*"([^"]*?)(?:\\n)?"\s*,\s*(.+?)\s*\)\s*;$`), `print("$1" % ($2))`},
	{regexp.MustCompile(`^(?:int|long|double|float|char|bool|auto|unsigned|short)\s+(\w+)\s*=\s*(.+?);$`), "$1 = $2"},
	{regexp.MustCompile(`^(?:int|long|double|float|char|bool|auto|unsigned|short)\s+(\w+);$`), "$1 = None"},
	{regexp.MustCompile(`^struct\s+(\w+)\s*\{?$`), "class $1:"},
	{regexp.MustCompile(`^class\s+(\w+)\s*\{?$`), "class $1:"},
	{regexp.MustCompile(`^(\w+)\s*=\s*(.+?);$`), "$1 = $2"},
	{regexp.MustCompile(`^(\w+(?:\.\w+|::\w+)*\s*\(.*\))\s*;$`), "$1"},
}, cStyleControlRules...)

func rulesFor(language string) []rewriteRule {
	switch CanonicalLanguage(language) {
	case LangJava:
		return javaRules
	case LangJavaScript:
		return javascriptRules
	case LangC, LangCPP:
		return cRules
	default:
		return nil
	}
}

// Translate transliterates source code into Python line by line. It is
// best-effort, not a compiler: recognized constructs are rewritten,
// unrecognized ones are preserved as commented TODO lines, and braces
// become indentation.
func Translate(code, language string) *core.TranslationResult {
	language = CanonicalLanguage(language)

	if language == LangPython {
		return &core.TranslationResult{
			Language:       language,
			TargetLanguage: TargetLanguage,
			TranslatedCode: code,
			Dependencies:   []string{},
			Notes:          "Source is already Python; returned unchanged.",
			Source:         core.SourceFallback,
		}
	}

	rules := rulesFor(language)
	var out []string
	depth := 0
	hasMain := false

	for _, raw := range strings.Split(code, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			out = append(out, "")
			continue
		}

		// A bare closing brace only dedents; it emits nothing.
		if onlyBraces(line) {
			depth -= strings.Count(line, "}")
			if depth < 0 {
				depth = 0
			}
			continue
		}

		opens := strings.Count(line, "{") - strings.Count(line, "}")

		translated, ok := applyRules(line, rules)
		if !ok {
			translated = "# TODO: translate: " + line
		}
		if strings.HasPrefix(translated, "def main():") {
			hasMain = true
		}

		out = append(out, indent(depth)+translated)

		depth += opens
		if depth < 0 {
			depth = 0
		}
	}

	if hasMain {
		out = append(out, "", "", `if __name__ == "__main__":`, indent(1)+"main()")
	}

	notes := "Best-effort structural translation; review TODO lines and verify behavior."
	return &core.TranslationResult{
		Language:       language,
		TargetLanguage: TargetLanguage,
		TranslatedCode: strings.Join(out, "\n"),
		Dependencies:   []string{},
		Notes:          notes,
		Source:         core.SourceFallback,
	}
}

func applyRules(line string, rules []rewriteRule) (string, bool) {
	for _, r := range rules {
		if m := r.Pattern.FindStringSubmatchIndex(line); m != nil {
			return string(r.Pattern.ExpandString(nil, r.Template, line, m)), true
		}
	}
	// Comments carry over with Python syntax.
	if strings.HasPrefix(line, "//") {
		return "#" + strings.TrimPrefix(line, "//"), true
	}
	return "", false
}

func onlyBraces(line string) bool {
	trimmed := strings.Trim(line, "{} \t;")
	return trimmed == "" && strings.ContainsAny(line, "{}")
}

func indent(depth int) string {
	if depth < 0 {
		depth = 0
	}
	return strings.Repeat("    ", depth)
}
