package targets

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/transpyle/internal/model"
)

type javaScriptTarget struct {
	pipeline
}

// NewJavaScript returns the JavaScript target.
func NewJavaScript() Target {
	return &javaScriptTarget{pipeline{id: m.TargetJavaScript, rules: javaScriptRules(), checks: javaScriptChecks()}}
}

const (
	jsStrict      = "'use strict';"
	jsRequireNumj = "const nj = require('numjs');"
)

var (
	jsSimpleOperandRe = regexp.MustCompile(`^[A-Za-z_][\w.]*$`)
	jsLooseEqualityRe = regexp.MustCompile(`[^=!<>]==[^=]`)
)

func jsType(kind m.ValueKind) string {
	return TypeName(m.TargetJavaScript, kind)
}

// jsDoc renders the JSDoc block carrying the inferred parameter types.
func jsDoc(sig signature, sc scope) string {
	if len(sig.params) == 0 && sig.pair == nil && !sig.value {
		return ""
	}

	var b strings.Builder

	b.WriteString(sig.indent + "/**\n")

	for _, p := range sig.params {
		b.WriteString(sig.indent + " * @param {" + jsType(paramKind(p, sc.ctx)) + "} " + p + "\n")
	}

	switch {
	case sig.pair != nil:
		b.WriteString(sig.indent + " * @returns {Array}\n")
	case sig.value:
		b.WriteString(sig.indent + " * @returns {" + jsType(m.KindUnknown) + "}\n")
	}

	b.WriteString(sig.indent + " */\n")

	return b.String()
}

func javaScriptRules() []rule {
	return []rule{
		sourceImportRule(),
		declarationRule(func(indent, name, expr string, _ bool) string {
			return indent + "let " + name + " = " + expr
		}),
		signatureRule(func(sig signature, sc scope) string {
			return jsDoc(sig, sc) + sig.indent + "function " + sig.name + "(" + strings.Join(sig.params, ", ") + ") {"
		}),
		lineRule("dual empty-collection init", dualInitRe, func(g []string, _ scope) string {
			return g[1] + "let " + g[2] + " = []\n" + g[1] + "let " + g[3] + " = []"
		}),
		lineRule("counting loop", rangeLoopRe, func(g []string, _ scope) string {
			start, stop, step := rangeBounds(g[3])

			post := g[2] + "++"
			if step != "" {
				post = g[2] + " += " + step
			}

			return g[1] + "for (let " + g[2] + " = " + start + "; " + g[2] + " < " + stop + "; " + post + ") {"
		}),
		lineRule("for-each loop", eachLoopRe, func(g []string, _ scope) string {
			return g[1] + "for (const " + g[2] + " of " + g[3] + ") {"
		}),
		lineRule("conditionals", condRe, func(g []string, _ scope) string {
			keyword := g[2]
			if keyword == "elif" {
				keyword = "else if"
			}

			return g[1] + keyword + " (" + g[3] + ") {"
		}),
		lineRule("else", elseRe, func(g []string, _ scope) string {
			return g[1] + "else {"
		}),
		exprRule("output call", printRe, func(g []string, _ scope) string {
			return "console.log(" + g[1] + ")"
		}),
		exprRule("append", appendRe, func(g []string, _ scope) string {
			return g[1] + ".push(" + g[2] + ")"
		}),
		exprRule("slice", sliceRe, func(g []string, _ scope) string {
			start, stop := strings.TrimSpace(g[2]), strings.TrimSpace(g[3])
			if start == "" {
				start = "0"
			}

			if stop == "" {
				return g[1] + ".slice(" + start + ")"
			}

			return g[1] + ".slice(" + start + ", " + stop + ")"
		}),
		exprRule("length", lenRe, func(g []string, _ scope) string {
			operand := strings.TrimSpace(g[1])
			if jsSimpleOperandRe.MatchString(operand) {
				return operand + ".length"
			}

			return "(" + operand + ").length"
		}),
		numpyRule("numpy idioms",
			replacement{npArrayLiteralRe, func(g []string) string { return "nj.array([" + g[1] + "])" }},
			replacement{npArrayRe, func(g []string) string { return "nj.array(" + g[1] + ")" }},
			replacement{npZerosRe, func(g []string) string { return "nj.zeros(" + g[1] + ")" }},
			replacement{npMeanRe, func(g []string) string { return "nj.array(" + g[1] + ").mean()" }},
			replacement{npSumRe, func(g []string) string { return "nj.array(" + g[1] + ").sum()" }},
		),
		sklearnRule(m.TargetJavaScript),
		lineRule("dual-array return", pairReturnRe, func(g []string, _ scope) string {
			return g[1] + "return [" + g[2] + ", " + g[3] + "]"
		}),
		literalRule("null"),
		commentRule(),
		blockCloserRule(),
		terminatorRule(),
		braceRepairRule(),
		{name: "boilerplate", apply: javaScriptBoilerplate},
	}
}

func javaScriptBoilerplate(text string, sc scope) string {
	var b strings.Builder

	b.WriteString(jsStrict + "\n\n")

	if strings.Contains(text, "nj.") {
		b.WriteString(jsRequireNumj + "\n\n")
	}

	if sc.ctx.HasFunctions() {
		b.WriteString(text)
	} else {
		b.WriteString("function main() {\n" + indentBody(text, "    ") + "\n}\n\nmain();")
	}

	b.WriteString("\n")

	return b.String()
}

func javaScriptChecks() []check {
	return []check{
		missingImport("nj.", "require('numjs')", "numjs is used without require('numjs')"),
		jsLooseEquality,
		untranslatedDef,
		untranslatedBlock,
		untranslatedPrint,
		untranslatedNumpy,
		partialTranslation,
	}
}

func jsLooseEquality(text string) m.Warning {
	for _, line := range strings.Split(text, "\n") {
		code, _ := splitComment(line, "//")
		found := false

		rewriteCode(code, func(seg string) string {
			if jsLooseEqualityRe.MatchString(seg) {
				found = true
			}

			return seg
		})

		if found {
			return "loose equality (==) used, prefer ==="
		}
	}

	return ""
}
