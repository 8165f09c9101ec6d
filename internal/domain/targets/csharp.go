package targets

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/transpyle/internal/model"
)

type cSharpTarget struct {
	pipeline
}

// NewCSharp returns the C# target.
func NewCSharp() Target {
	return &cSharpTarget{pipeline{id: m.TargetCSharp, rules: cSharpRules(), checks: cSharpChecks()}}
}

type cSharpUsing struct {
	markers   []string
	namespace string
}

// cSharpUsings are emitted when one of their markers appears in the output.
// System is always emitted.
var cSharpUsings = []cSharpUsing{
	{markers: []string{"List<"}, namespace: "System.Collections.Generic"},
	{markers: []string{".Skip(", ".Take(", ".Count()", ".Sum()", ".ToList()", ".ToArray()", ".TakeLast(", ".SkipLast("}, namespace: "System.Linq"},
	{markers: []string{"Statistics."}, namespace: "MathNet.Numerics.Statistics"},
}

var cSharpTopLevelStaticRe = regexp.MustCompile(`(?m)^static\s`)

func csType(kind m.ValueKind) string {
	return TypeName(m.TargetCSharp, kind)
}

func csExpr(expr string) string {
	if !isListLiteral(expr) {
		return expr
	}

	if elems := listElements(expr); elems != "" {
		return "new " + csType(m.KindList) + " { " + elems + " }"
	}

	return "new " + csType(m.KindList) + "()"
}

func cSharpRules() []rule {
	return []rule{
		sourceImportRule(),
		declarationRule(func(indent, name, expr string, _ bool) string {
			return indent + "var " + name + " = " + csExpr(expr)
		}),
		signatureRule(func(sig signature, sc scope) string {
			params := paramList(sig.params, func(p string) string {
				return csType(paramKind(p, sc.ctx)) + " " + p
			})

			result := "void"

			switch {
			case sig.pair != nil:
				result = "(" + csType(returnKind(sig.pair[0], sc.ctx)) + ", " + csType(returnKind(sig.pair[1], sc.ctx)) + ")"
			case sig.value:
				result = csType(m.KindUnknown)
			}

			return sig.indent + "static " + result + " " + sig.name + "(" + params + ") {"
		}),
		lineRule("dual empty-collection init", dualInitRe, func(g []string, _ scope) string {
			list := "new " + csType(m.KindList) + "()"

			return g[1] + "var " + g[2] + " = " + list + "\n" + g[1] + "var " + g[3] + " = " + list
		}),
		lineRule("counting loop", rangeLoopRe, func(g []string, _ scope) string {
			start, stop, step := rangeBounds(g[3])

			post := g[2] + "++"
			if step != "" {
				post = g[2] + " += " + step
			}

			return g[1] + "for (int " + g[2] + " = " + start + "; " + g[2] + " < " + stop + "; " + post + ") {"
		}),
		lineRule("for-each loop", eachLoopRe, func(g []string, _ scope) string {
			return g[1] + "foreach (var " + g[2] + " in " + g[3] + ") {"
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
			if args := splitTopLevel(g[1]); len(args) > 1 {
				return `Console.WriteLine(string.Join(" ", ` + strings.Join(args, ", ") + "))"
			}

			return "Console.WriteLine(" + g[1] + ")"
		}),
		exprRule("append", appendRe, func(g []string, _ scope) string {
			return g[1] + ".Add(" + g[2] + ")"
		}),
		exprRule("slice", sliceRe, func(g []string, _ scope) string {
			return cSharpSlice(g[1], strings.TrimSpace(g[2]), strings.TrimSpace(g[3]))
		}),
		exprRule("length", lenRe, func(g []string, _ scope) string {
			return strings.TrimSpace(g[1]) + ".Count()"
		}),
		numpyRule("numpy idioms",
			replacement{npArrayLiteralRe, func(g []string) string { return "new double[] { " + g[1] + " }" }},
			replacement{npArrayRe, func(g []string) string { return g[1] + ".ToArray()" }},
			replacement{npZerosRe, func(g []string) string { return "new double[" + g[1] + "]" }},
			replacement{npMeanRe, func(g []string) string { return "Statistics.Mean(" + g[1] + ")" }},
			replacement{npSumRe, func(g []string) string { return g[1] + ".Sum()" }},
		),
		sklearnRule(m.TargetCSharp),
		lineRule("dual-array return", pairReturnRe, func(g []string, _ scope) string {
			return g[1] + "return (" + g[2] + ", " + g[3] + ")"
		}),
		literalRule("null"),
		commentRule(),
		blockCloserRule(),
		terminatorRule(),
		braceRepairRule(),
		{name: "boilerplate", apply: cSharpBoilerplate},
	}
}

func cSharpBoilerplate(text string, sc scope) string {
	var b strings.Builder

	b.WriteString("using System;\n")

	for _, u := range cSharpUsings {
		for _, marker := range u.markers {
			if strings.Contains(text, marker) {
				b.WriteString("using " + u.namespace + ";\n")
				break
			}
		}
	}

	b.WriteString("\n")

	if sc.ctx.HasFunctions() {
		b.WriteString(text)
	} else {
		b.WriteString("public static class Program\n{\n    public static void Main(string[] args)\n    {\n")
		b.WriteString(indentBody(text, "        "))
		b.WriteString("\n    }\n}")
	}

	b.WriteString("\n")

	return b.String()
}

// cSharpSlice maps a slice onto LINQ. Bounds counted from the end become
// TakeLast/SkipLast; an end-relative start with an absolute stop needs the
// element count.
func cSharpSlice(name, start, stop string) string {
	fromEnd, startFromEnd := endOffset(start)
	untilEnd, stopFromEnd := endOffset(stop)

	if startFromEnd && stop != "" && !stopFromEnd {
		return name + ".Take(" + stop + ").Skip(" + name + ".Count() - " + fromEnd + ").ToList()"
	}

	expr := name

	switch {
	case startFromEnd:
		expr += ".TakeLast(" + fromEnd + ")"
	case start != "" && start != "0":
		expr += ".Skip(" + start + ")"
	}

	switch {
	case stop == "":
	case stopFromEnd:
		expr += ".SkipLast(" + untilEnd + ")"
	default:
		expr += ".Take(" + sliceLength(start, stop) + ")"
	}

	return expr + ".ToList()"
}

func cSharpChecks() []check {
	checks := []check{
		missingImport("Console.", "using System;", "Console is used without 'using System;'"),
	}

	for _, u := range cSharpUsings {
		checks = append(checks, cSharpMissingUsing(u))
	}

	return append(checks,
		cSharpMethodOutsideClass,
		untranslatedDef,
		untranslatedBlock,
		untranslatedPrint,
		untranslatedNumpy,
		partialTranslation,
	)
}

func cSharpMissingUsing(u cSharpUsing) check {
	using := "using " + u.namespace + ";"

	return func(text string) m.Warning {
		if strings.Contains(text, using) {
			return ""
		}

		for _, marker := range u.markers {
			if strings.Contains(text, marker) {
				return m.Warning("missing '" + using + "' for " + strings.Trim(marker, ".(<)") + " usage")
			}
		}

		return ""
	}
}

func cSharpMethodOutsideClass(text string) m.Warning {
	if cSharpTopLevelStaticRe.MatchString(text) && !strings.Contains(text, "class ") {
		return "method declared outside of a class"
	}

	return ""
}
