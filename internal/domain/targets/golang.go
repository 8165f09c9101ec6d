package targets

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/transpyle/internal/model"
)

type goTarget struct {
	pipeline
}

// NewGo returns the Go target.
func NewGo() Target {
	return &goTarget{pipeline{id: m.TargetGo, rules: goRules(), checks: goChecks()}}
}

type goImport struct {
	marker string
	path   string
}

// goLibraryImports are added to the import block when their marker is used.
var goLibraryImports = []goImport{
	{marker: "mat.", path: "gonum.org/v1/gonum/mat"},
	{marker: "stat.", path: "gonum.org/v1/gonum/stat"},
	{marker: "floats.", path: "gonum.org/v1/gonum/floats"},
}

var goFuncRe = regexp.MustCompile(`(?m)^\s*func\s+(\w+)\s*\([^)]*\)\s*([^{\n]*)\{`)

func goType(kind m.ValueKind) string {
	return TypeName(m.TargetGo, kind)
}

func goExpr(expr string) string {
	if isListLiteral(expr) {
		return "[]float64{" + listElements(expr) + "}"
	}

	return expr
}

func goSliceBound(name, bound string) string {
	if strings.HasPrefix(bound, "-") {
		return "len(" + name + ")" + bound
	}

	return bound
}

func goRules() []rule {
	return []rule{
		sourceImportRule(),
		declarationRule(func(indent, name, expr string, topLevel bool) string {
			if topLevel {
				return indent + "var " + name + " = " + goExpr(expr)
			}

			return indent + name + " := " + goExpr(expr)
		}),
		signatureRule(func(sig signature, sc scope) string {
			params := paramList(sig.params, func(p string) string {
				return p + " " + goType(paramKind(p, sc.ctx))
			})

			result := ""

			switch {
			case sig.pair != nil:
				result = " (" + goType(returnKind(sig.pair[0], sc.ctx)) + ", " +
					goType(returnKind(sig.pair[1], sc.ctx)) + ", error)"
			case sig.value:
				result = " " + goType(m.KindUnknown)
			}

			return sig.indent + "func " + sig.name + "(" + params + ")" + result + " {"
		}),
		lineRule("dual empty-collection init", dualInitRe, func(g []string, _ scope) string {
			return g[1] + g[2] + " := []float64{}\n" + g[1] + g[3] + " := []float64{}"
		}),
		lineRule("counting loop", rangeLoopRe, func(g []string, _ scope) string {
			start, stop, step := rangeBounds(g[3])

			post := g[2] + "++"
			if step != "" {
				post = g[2] + " += " + step
			}

			return g[1] + "for " + g[2] + " := " + start + "; " + g[2] + " < " + stop + "; " + post + " {"
		}),
		lineRule("for-each loop", eachLoopRe, func(g []string, _ scope) string {
			return g[1] + "for _, " + g[2] + " := range " + g[3] + " {"
		}),
		lineRule("conditionals", condRe, func(g []string, _ scope) string {
			switch g[2] {
			case "elif":
				return g[1] + "else if " + g[3] + " {"
			case "while":
				return g[1] + "for " + g[3] + " {"
			default:
				return g[1] + "if " + g[3] + " {"
			}
		}),
		lineRule("else", elseRe, func(g []string, _ scope) string {
			return g[1] + "else {"
		}),
		exprRule("output call", printRe, func(g []string, _ scope) string {
			return "fmt.Println(" + g[1] + ")"
		}),
		exprRule("append", appendRe, func(g []string, _ scope) string {
			return g[1] + " = append(" + g[1] + ", " + g[2] + ")"
		}),
		exprRule("slice", sliceRe, func(g []string, _ scope) string {
			start := goSliceBound(g[1], strings.TrimSpace(g[2]))
			stop := goSliceBound(g[1], strings.TrimSpace(g[3]))

			return g[1] + "[" + start + ":" + stop + "]"
		}),
		numpyRule("numpy idioms",
			replacement{npArrayLiteralRe, func(g []string) string { return "[]float64{" + g[1] + "}" }},
			replacement{npArrayRe, func(g []string) string { return "append([]float64(nil), " + g[1] + "...)" }},
			replacement{npZerosRe, func(g []string) string { return "make([]float64, " + g[1] + ")" }},
			replacement{npMeanRe, func(g []string) string { return "stat.Mean(" + g[1] + ", nil)" }},
			replacement{npSumRe, func(g []string) string { return "floats.Sum(" + g[1] + ")" }},
		),
		sklearnRule(m.TargetGo),
		lineRule("dual-array return", pairReturnRe, func(g []string, _ scope) string {
			return g[1] + "return " + g[2] + ", " + g[3] + ", nil"
		}),
		literalRule("nil"),
		commentRule(),
		blockCloserRule(),
		braceRepairRule(),
		{name: "boilerplate", apply: goBoilerplate},
	}
}

func goBoilerplate(text string, sc scope) string {
	imports := []string{"fmt"}

	for _, imp := range goLibraryImports {
		if strings.Contains(text, imp.marker) {
			imports = append(imports, imp.path)
		}
	}

	var b strings.Builder

	b.WriteString("package main\n\nimport (\n")

	for _, imp := range imports {
		b.WriteString("\t\"" + imp + "\"\n")
	}

	b.WriteString(")\n\n")

	if sc.ctx.HasFunctions() {
		b.WriteString(text)
	} else {
		b.WriteString("func main() {\n" + indentBody(text, "\t") + "\n}")
	}

	b.WriteString("\n")

	return b.String()
}

func goChecks() []check {
	checks := []check{
		missingImport("fmt.", `"fmt"`, `missing import "fmt" for fmt calls`),
	}

	for _, imp := range goLibraryImports {
		checks = append(checks, missingImport(imp.marker, `"`+imp.path+`"`,
			m.Warning(`missing import "`+imp.path+`" for `+strings.TrimSuffix(imp.marker, ".")+` calls`)))
	}

	return append(checks,
		goErrorResult,
		untranslatedDef,
		untranslatedBlock,
		untranslatedPrint,
		untranslatedNumpy,
		partialTranslation,
	)
}

// goErrorResult fires when a function other than main does not return an
// error as part of its result list.
func goErrorResult(text string) m.Warning {
	for _, g := range goFuncRe.FindAllStringSubmatch(text, -1) {
		if g[1] == "main" {
			continue
		}

		if !strings.Contains(g[2], "error") {
			return "function body present without an error result type"
		}
	}

	return ""
}
