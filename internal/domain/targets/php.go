package targets

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/transpyle/internal/model"
)

type phpTarget struct {
	pipeline
}

// NewPHP returns the PHP target.
func NewPHP() Target {
	return &phpTarget{pipeline{id: m.TargetPHP, rules: phpRules(), checks: phpChecks()}}
}

const (
	phpOpenTag  = "<?php"
	phpAutoload = "require_once __DIR__ . '/vendor/autoload.php';"
	phpMathPHP  = `\MathPHP\`
)

var phpBareAssignRe = regexp.MustCompile(`(?m)^\s*[A-Za-z_]\w*\s*=[^=]`)

func phpType(kind m.ValueKind) string {
	return TypeName(m.TargetPHP, kind)
}

func phpRules() []rule {
	return []rule{
		sourceImportRule(),
		signatureRule(func(sig signature, sc scope) string {
			params := paramList(sig.params, func(p string) string {
				return phpType(paramKind(p, sc.ctx)) + " " + p
			})

			result := ": void"

			switch {
			case sig.pair != nil:
				result = ": array"
			case sig.value:
				result = ": " + phpType(m.KindUnknown)
			}

			return sig.indent + "function " + sig.name + "(" + params + ")" + result + " {"
		}),
		lineRule("dual empty-collection init", dualInitRe, func(g []string, _ scope) string {
			return g[1] + g[2] + " = []\n" + g[1] + g[3] + " = []"
		}),
		lineRule("counting loop", rangeLoopRe, func(g []string, _ scope) string {
			start, stop, step := rangeBounds(g[3])

			post := g[2] + "++"
			if step != "" {
				post = g[2] + " += " + step
			}

			return g[1] + "for (" + g[2] + " = " + start + "; " + g[2] + " < " + stop + "; " + post + ") {"
		}),
		lineRule("for-each loop", eachLoopRe, func(g []string, _ scope) string {
			return g[1] + "foreach (" + g[3] + " as " + g[2] + ") {"
		}),
		lineRule("conditionals", condRe, func(g []string, _ scope) string {
			keyword := g[2]
			if keyword == "elif" {
				keyword = "elseif"
			}

			return g[1] + keyword + " (" + g[3] + ") {"
		}),
		lineRule("else", elseRe, func(g []string, _ scope) string {
			return g[1] + "else {"
		}),
		exprRule("output call", printRe, func(g []string, _ scope) string {
			return "echo " + g[1] + ", PHP_EOL"
		}),
		exprRule("append", appendRe, func(g []string, _ scope) string {
			return g[1] + "[] = " + g[2]
		}),
		exprRule("slice", sliceRe, func(g []string, _ scope) string {
			start, stop := strings.TrimSpace(g[2]), strings.TrimSpace(g[3])
			if start == "" {
				start = "0"
			}

			fromEnd, startFromEnd := endOffset(start)

			switch {
			case stop == "":
				return "array_slice(" + g[1] + ", " + start + ")"
			case strings.HasPrefix(stop, "-"):
				return "array_slice(" + g[1] + ", " + start + ", " + stop + ")"
			case startFromEnd:
				offset := "max(0, count(" + g[1] + ") - " + fromEnd + ")"
				return "array_slice(" + g[1] + ", " + offset + ", max(0, " + stop + " - " + offset + "))"
			default:
				return "array_slice(" + g[1] + ", " + start + ", " + sliceLength(start, stop) + ")"
			}
		}),
		exprRule("length", lenRe, func(g []string, _ scope) string {
			return "count(" + g[1] + ")"
		}),
		numpyRule("numpy idioms",
			replacement{npArrayLiteralRe, func(g []string) string { return "[" + g[1] + "]" }},
			replacement{npArrayRe, func(g []string) string { return g[1] }},
			replacement{npZerosRe, func(g []string) string { return "array_fill(0, " + g[1] + ", 0.0)" }},
			replacement{npMeanRe, func(g []string) string { return phpMathPHP + "Statistics\\Average::mean(" + g[1] + ")" }},
			replacement{npSumRe, func(g []string) string { return "array_sum(" + g[1] + ")" }},
		),
		sklearnRule(m.TargetPHP),
		lineRule("dual-array return", pairReturnRe, func(g []string, _ scope) string {
			return g[1] + "return [" + g[2] + ", " + g[3] + "]"
		}),
		literalRule("null"),
		sigilRule("$"),
		commentRule(),
		blockCloserRule(),
		terminatorRule(),
		braceRepairRule(),
		{name: "boilerplate", apply: phpBoilerplate},
	}
}

func phpBoilerplate(text string, sc scope) string {
	var b strings.Builder

	b.WriteString(phpOpenTag + "\n\n")

	if strings.Contains(text, phpMathPHP) {
		b.WriteString(phpAutoload + "\n\n")
	}

	if sc.ctx.HasFunctions() {
		b.WriteString(text)
	} else {
		b.WriteString("function main(): void {\n" + indentBody(text, "    ") + "\n}\n\nmain();")
	}

	b.WriteString("\n")

	return b.String()
}

func phpChecks() []check {
	return []check{
		phpOpeningTag,
		phpSigils,
		missingImport(phpMathPHP, "vendor/autoload.php", "MathPHP is used without the Composer autoload require"),
		untranslatedDef,
		untranslatedBlock,
		untranslatedNumpy,
		partialTranslation,
	}
}

// phpOpeningTag fires when output is produced without the <?php tag the
// embedding convention requires.
func phpOpeningTag(text string) m.Warning {
	if (strings.Contains(text, "echo") || strings.Contains(text, "function ")) && !strings.Contains(text, phpOpenTag) {
		return "output call present without the <?php opening tag"
	}

	return ""
}

func phpSigils(text string) m.Warning {
	if phpBareAssignRe.MatchString(text) {
		return "variable assigned without the $ sigil"
	}

	return ""
}
