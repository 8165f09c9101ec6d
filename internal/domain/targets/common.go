// Package targets rewrites analyzed snippets into the four destination
// notations and checks the rewritten text for common omissions.
package targets

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/transpyle/internal/model"
)

// Target rewrites a snippet into one destination notation and validates the
// rewritten text. Implementations are stateless and safe for concurrent use.
type Target interface {
	ID() m.Target
	Translate(source string, ctx m.Context) string
	Validate(text string) []m.Warning
}

// scope is the read-only state shared by the rules of one translation.
type scope struct {
	ctx    m.Context
	locals map[string]struct{}
}

// rule is one ordered rewrite step. A nil when always applies.
type rule struct {
	name  string
	when  func(text string, sc scope) bool
	apply func(text string, sc scope) string
}

// check is one independent validator rule. It returns "" when it does not fire.
type check func(text string) m.Warning

type pipeline struct {
	id     m.Target
	rules  []rule
	checks []check
}

func (p *pipeline) ID() m.Target {
	return p.id
}

// Translate runs every rule in order, each one over the output of the
// previous one.
func (p *pipeline) Translate(source string, ctx m.Context) string {
	text := strings.ReplaceAll(source, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return ""
	}

	sc := newScope(text, ctx)

	for _, r := range p.rules {
		if r.when != nil && !r.when(text, sc) {
			continue
		}

		text = r.apply(text, sc)
	}

	return text
}

// Validate runs all checks and collects the warnings of those that fire.
func (p *pipeline) Validate(text string) []m.Warning {
	warnings := []m.Warning{}

	for _, c := range p.checks {
		if w := c(text); w != "" {
			warnings = append(warnings, w)
		}
	}

	return warnings
}

// RuleNames returns the rule sequence in application order.
func (p *pipeline) RuleNames() []string {
	names := make([]string, 0, len(p.rules))
	for _, r := range p.rules {
		names = append(names, r.name)
	}

	return names
}

// All returns one instance of every target in display order.
func All() []Target {
	return []Target{NewGo(), NewPHP(), NewJavaScript(), NewCSharp()}
}

// ByID returns the target with the given id, or nil.
func ByID(id m.Target) Target {
	for _, t := range All() {
		if t.ID() == id {
			return t
		}
	}

	return nil
}

var (
	identRe       = regexp.MustCompile(`[A-Za-z_]\w*`)
	paramNameRe   = regexp.MustCompile(`^[A-Za-z_]\w*$`)
	defRe         = regexp.MustCompile(`^(\s*)def\s+([A-Za-z_]\w*)\s*\(([^)]*)\)\s*(?:->\s*[^:]+)?:\s*$`)
	dualInitRe    = regexp.MustCompile(`^(\s*)([A-Za-z_]\w*)\s*,\s*([A-Za-z_]\w*)\s*=\s*\[\]\s*,\s*\[\]\s*$`)
	rangeLoopRe   = regexp.MustCompile(`^(\s*)for\s+([A-Za-z_]\w*)\s+in\s+range\((.*)\)\s*:\s*$`)
	eachLoopRe    = regexp.MustCompile(`^(\s*)for\s+([A-Za-z_]\w*)\s+in\s+(.+?)\s*:\s*$`)
	condRe        = regexp.MustCompile(`^(\s*)(if|elif|while)\s+(.+?)\s*:\s*$`)
	elseRe        = regexp.MustCompile(`^(\s*)else\s*:\s*$`)
	printRe       = regexp.MustCompile(`\bprint\((.*)\)`)
	appendRe      = regexp.MustCompile(`\b([A-Za-z_][\w.]*)\.append\((.*)\)`)
	sliceRe       = regexp.MustCompile(`\b([A-Za-z_]\w*)\[([^\[\]:]*):([^\[\]:]*)\]`)
	lenRe         = regexp.MustCompile(`\blen\(([^()]*)\)`)
	pairReturnRe  = regexp.MustCompile(`^(\s*)return\s+([A-Za-z_]\w*)\s*,\s*([A-Za-z_]\w*)\s*$`)
	valueReturnRe = regexp.MustCompile(`^\s*return\s+\S`)
	assignRe      = regexp.MustCompile(`^(\s*)([A-Za-z_]\w*)\s*=\s*([^=].*)$`)
	tupleAssignRe = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*,\s*([A-Za-z_]\w*)\s*=[^=]`)
	loopVarRe     = regexp.MustCompile(`^\s*for\s+([A-Za-z_]\w*)\s+in\s`)

	npArrayLiteralRe = regexp.MustCompile(`np\.array\(\s*\[([^\[\]]*)\]\s*\)`)
	npArrayRe        = regexp.MustCompile(`np\.array\(([^()]*)\)`)
	npZerosRe        = regexp.MustCompile(`np\.zeros\(([^()]*)\)`)
	npMeanRe         = regexp.MustCompile(`np\.mean\(([^()]*)\)`)
	npSumRe          = regexp.MustCompile(`np\.sum\(([^()]*)\)`)
	sklearnLineRe    = regexp.MustCompile(`MinMaxScaler\(|\.fit_transform\(|\.fit\(|\.transform\(`)
)

func newScope(source string, ctx m.Context) scope {
	locals := make(map[string]struct{}, len(ctx.Variables))
	for name := range ctx.Variables {
		locals[name] = struct{}{}
	}

	for _, line := range strings.Split(source, "\n") {
		code, _ := splitComment(line, "#")

		if groups := defRe.FindStringSubmatch(code); groups != nil {
			for _, p := range parseParams(groups[3]) {
				locals[p] = struct{}{}
			}

			continue
		}

		if groups := loopVarRe.FindStringSubmatch(code); groups != nil {
			locals[groups[1]] = struct{}{}
		}

		if groups := tupleAssignRe.FindStringSubmatch(code); groups != nil {
			locals[groups[1]] = struct{}{}
			locals[groups[2]] = struct{}{}
		}

		if groups := assignRe.FindStringSubmatch(code); groups != nil {
			locals[groups[2]] = struct{}{}
		}
	}

	return scope{ctx: ctx, locals: locals}
}

func (sc scope) isLocal(name string) bool {
	_, ok := sc.locals[name]
	return ok
}

// lines splits text, applies fn to every line and joins the result. fn may
// return several lines joined by "\n".
func lines(text string, fn func(line string) string) string {
	in := strings.Split(text, "\n")
	out := make([]string, 0, len(in))

	for _, line := range in {
		out = append(out, fn(line))
	}

	return strings.Join(out, "\n")
}

// lineRule rewrites every line whose code part matches re. The trailing
// source comment of a rewritten line is preserved.
func lineRule(name string, re *regexp.Regexp, fn func(groups []string, sc scope) string) rule {
	return rule{
		name: name,
		apply: func(text string, sc scope) string {
			return lines(text, func(line string) string {
				code, comment := splitComment(line, "#")

				groups := re.FindStringSubmatch(code)
				if groups == nil {
					return line
				}

				return joinComment(fn(groups, sc), comment)
			})
		},
	}
}

// exprRule rewrites every match of re inside the code part of each line.
func exprRule(name string, re *regexp.Regexp, fn func(groups []string, sc scope) string) rule {
	return rule{
		name: name,
		apply: func(text string, sc scope) string {
			return lines(text, func(line string) string {
				code, comment := splitComment(line, "#")
				if !re.MatchString(code) {
					return line
				}

				code = re.ReplaceAllStringFunc(code, func(match string) string {
					return fn(re.FindStringSubmatch(match), sc)
				})

				return joinComment(code, comment)
			})
		},
	}
}

func joinComment(code, comment string) string {
	if comment == "" {
		return code
	}

	if strings.Contains(code, "\n") {
		parts := strings.Split(code, "\n")
		parts[len(parts)-1] = joinComment(parts[len(parts)-1], comment)

		return strings.Join(parts, "\n")
	}

	return code + comment
}

// splitComment separates line at the first marker found outside a string
// literal. The returned comment keeps its leading whitespace and marker.
func splitComment(line, marker string) (string, string) {
	var quote byte

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case strings.HasPrefix(line[i:], marker):
			cut := i
			for cut > 0 && (line[cut-1] == ' ' || line[cut-1] == '\t') {
				cut--
			}

			return line[:cut], line[cut:]
		}
	}

	return line, ""
}

// rewriteCode applies fn to every part of line outside string literals.
func rewriteCode(line string, fn func(code string) string) string {
	var b strings.Builder

	var quote byte

	start := 0

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				b.WriteString(line[start : i+1])
				start = i + 1
				quote = 0
			}
		case c == '"' || c == '\'':
			b.WriteString(fn(line[start:i]))
			start = i
			quote = c
		}
	}

	if start < len(line) {
		if quote != 0 {
			b.WriteString(line[start:])
		} else {
			b.WriteString(fn(line[start:]))
		}
	}

	return b.String()
}

func indentWidth(indent string) int {
	width := 0

	for _, r := range indent {
		if r == '\t' {
			width += 4
		} else {
			width++
		}
	}

	return width
}

func leadingIndent(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// parseParams extracts bare parameter names, dropping annotations, defaults,
// variadic markers and the receiver.
func parseParams(list string) []string {
	var params []string

	for _, raw := range strings.Split(list, ",") {
		p := strings.TrimSpace(raw)
		if i := strings.IndexAny(p, ":="); i >= 0 {
			p = strings.TrimSpace(p[:i])
		}

		p = strings.TrimLeft(p, "*")
		if p == "self" || !paramNameRe.MatchString(p) {
			continue
		}

		params = append(params, p)
	}

	return params
}

// paramKind guesses the kind of a parameter from its name first, then from
// the analyzed variables, and finally falls back to a numeric array.
func paramKind(name string, ctx m.Context) m.ValueKind {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "price"), strings.Contains(lower, "data"):
		return m.KindArray
	case strings.Contains(lower, "index"), strings.Contains(lower, "size"):
		return m.KindInt
	}

	if kind, ok := ctx.KindOf(name); ok && kind != m.KindUnknown {
		return kind
	}

	return m.KindArray
}

// returnKind reports the kind of a returned name, defaulting to list since
// pair returns almost always hand back collections built by the snippet.
func returnKind(name string, ctx m.Context) m.ValueKind {
	if kind, ok := ctx.KindOf(name); ok && kind != m.KindUnknown {
		return kind
	}

	return m.KindList
}

// bodyReturns scans the indented body following the def at index start.
func bodyReturns(all []string, start int) (pair []string, value bool) {
	defWidth := indentWidth(leadingIndent(all[start]))

	for _, line := range all[start+1:] {
		code, _ := splitComment(line, "#")
		if strings.TrimSpace(code) == "" {
			continue
		}

		if indentWidth(leadingIndent(code)) <= defWidth {
			break
		}

		if groups := pairReturnRe.FindStringSubmatch(code); groups != nil && pair == nil {
			pair = []string{groups[2], groups[3]}
		}

		if valueReturnRe.MatchString(code) {
			value = true
		}
	}

	return pair, value
}

// signature describes one function definition found in the source.
type signature struct {
	indent string
	name   string
	params []string
	pair   []string
	value  bool
}

// signatureRule rewrites every def line with the body-aware render function.
func signatureRule(render func(sig signature, sc scope) string) rule {
	return rule{
		name: "function signature",
		apply: func(text string, sc scope) string {
			all := strings.Split(text, "\n")
			out := make([]string, 0, len(all))

			for i, line := range all {
				code, comment := splitComment(line, "#")

				groups := defRe.FindStringSubmatch(code)
				if groups == nil {
					out = append(out, line)
					continue
				}

				pair, value := bodyReturns(all, i)
				sig := signature{
					indent: groups[1],
					name:   groups[2],
					params: parseParams(groups[3]),
					pair:   pair,
					value:  value,
				}
				out = append(out, joinComment(render(sig, sc), comment))
			}

			return strings.Join(out, "\n")
		},
	}
}

// declarationRule prefixes the first assignment of each name within a
// function (or the top level) with a declaration produced by declare.
// It runs on the untranslated text so def lines can still be recognised.
func declarationRule(declare func(indent, name, expr string, topLevel bool) string) rule {
	return rule{
		name: "declaration",
		apply: func(text string, sc scope) string {
			declared := map[string]struct{}{}
			hasFunctions := sc.ctx.HasFunctions()

			return lines(text, func(line string) string {
				code, comment := splitComment(line, "#")

				if groups := defRe.FindStringSubmatch(code); groups != nil {
					declared = map[string]struct{}{}
					for _, p := range parseParams(groups[3]) {
						declared[p] = struct{}{}
					}

					return line
				}

				if groups := tupleAssignRe.FindStringSubmatch(code); groups != nil {
					declared[groups[1]] = struct{}{}
					declared[groups[2]] = struct{}{}

					return line
				}

				groups := assignRe.FindStringSubmatch(code)
				if groups == nil {
					return line
				}

				indent, name, expr := groups[1], groups[2], strings.TrimSpace(groups[3])
				if _, ok := declared[name]; ok {
					return line
				}

				declared[name] = struct{}{}
				topLevel := hasFunctions && indent == ""

				return joinComment(declare(indent, name, expr, topLevel), comment)
			})
		},
	}
}

// rangeBounds splits the arguments of range() into start, stop and step.
func rangeBounds(args string) (string, string, string) {
	parts := splitTopLevel(args)

	switch len(parts) {
	case 1:
		return "0", parts[0], ""
	case 2:
		return parts[0], parts[1], ""
	default:
		return parts[0], parts[1], parts[2]
	}
}

// splitTopLevel splits s on commas that are not nested in brackets.
func splitTopLevel(s string) []string {
	var parts []string

	depth, start := 0, 0

	for i, r := range s {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}

	return append(parts, strings.TrimSpace(s[start:]))
}

func isListLiteral(expr string) bool {
	return strings.HasPrefix(expr, "[") && strings.HasSuffix(expr, "]")
}

func listElements(expr string) string {
	return strings.TrimSpace(expr[1 : len(expr)-1])
}

// sliceLength renders stop-start, simplifying a zero start.
func sliceLength(start, stop string) string {
	if start == "" || start == "0" {
		return stop
	}

	return stop + " - " + start
}

// endOffset reports whether a slice bound counts from the end and returns
// its distance from the end.
func endOffset(bound string) (string, bool) {
	if !strings.HasPrefix(bound, "-") {
		return "", false
	}

	return strings.TrimSpace(bound[1:]), true
}

func wordReplacer(pairs ...string) func(string) string {
	res := make([]*regexp.Regexp, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		res = append(res, regexp.MustCompile(`\b`+pairs[i]+`\b`))
	}

	return func(code string) string {
		for i, re := range res {
			code = re.ReplaceAllLiteralString(code, pairs[i*2+1])
		}

		return code
	}
}

var (
	notRe      = regexp.MustCompile(`\bnot\s+`)
	floorDivRe = regexp.MustCompile(`\s//\s`)
)

// literalRule rewrites Python keywords and literals outside string literals.
func literalRule(null string) rule {
	words := wordReplacer("True", "true", "False", "false", "None", null, "and", "&&", "or", "||")

	return rule{
		name: "literals",
		apply: func(text string, _ scope) string {
			return lines(text, func(line string) string {
				code, comment := splitComment(line, "#")
				code = rewriteCode(code, func(seg string) string {
					seg = floorDivRe.ReplaceAllString(seg, " / ")
					seg = notRe.ReplaceAllString(seg, "!")

					return words(seg)
				})

				return joinComment(code, comment)
			})
		},
	}
}

// commentRule turns Python comments into line comments.
func commentRule() rule {
	return rule{
		name: "comments",
		apply: func(text string, _ scope) string {
			return lines(text, func(line string) string {
				code, comment := splitComment(line, "#")
				if comment == "" {
					return line
				}

				trimmed := strings.TrimLeft(comment, " \t")
				pad := comment[:len(comment)-len(trimmed)]
				body := strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))

				if body == "" {
					return code + pad + "//"
				}

				return code + pad + "// " + body
			})
		},
	}
}

type openBlock struct {
	indent string
	width  int
}

// blockCloserRule closes every block opened by an earlier rule when the
// indentation drops back to the block's level. An explicit closing line at
// that level consumes the block instead, and else branches are joined onto
// the closing brace. Blank and comment-only lines never close a block.
func blockCloserRule() rule {
	return rule{
		name: "block closer",
		apply: func(text string, _ scope) string {
			var (
				out    []string
				blanks []string
				stack  []openBlock
			)

			for _, line := range strings.Split(text, "\n") {
				code, _ := splitComment(line, "//")
				if strings.TrimSpace(code) == "" {
					blanks = append(blanks, line)
					continue
				}

				trimmed := strings.TrimSpace(line)

				indent := leadingIndent(line)
				width := indentWidth(indent)

				for len(stack) > 0 && width <= stack[len(stack)-1].width {
					top := stack[len(stack)-1]
					stack = stack[:len(stack)-1]

					if width == top.width && strings.HasPrefix(trimmed, "}") {
						break
					}

					if width == top.width && strings.HasPrefix(trimmed, "else") {
						line = indent + "} " + trimmed
						break
					}

					out = append(out, top.indent+"}")
				}

				out = append(out, blanks...)
				blanks = blanks[:0]
				out = append(out, line)

				if strings.HasSuffix(strings.TrimSpace(code), "{") {
					stack = append(stack, openBlock{indent: indent, width: width})
				}
			}

			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				out = append(out, top.indent+"}")
			}

			return strings.Join(out, "\n")
		},
	}
}

// terminatorRule appends a statement terminator to every statement line.
func terminatorRule() rule {
	return rule{
		name: "statement terminators",
		apply: func(text string, _ scope) string {
			return lines(text, func(line string) string {
				code, comment := splitComment(line, "//")
				trimmed := strings.TrimSpace(code)

				if !needsTerminator(trimmed) {
					return line
				}

				return joinComment(strings.TrimRight(code, " \t")+";", comment)
			})
		},
	}
}

func needsTerminator(code string) bool {
	if code == "" {
		return false
	}

	for _, prefix := range []string{"}", "/*", "*", "<?php", "#", "using "} {
		if strings.HasPrefix(code, prefix) {
			return false
		}
	}

	for _, suffix := range []string{"{", ";", ",", "(", "[", ":", "*/"} {
		if strings.HasSuffix(code, suffix) {
			return false
		}
	}

	return true
}

// braceRepairRule appends the missing closing braces when the text opens
// more blocks than it closes. It counts characters, it does not parse.
func braceRepairRule() rule {
	return rule{
		name: "brace repair",
		apply: func(text string, _ scope) string {
			deficit := strings.Count(text, "{") - strings.Count(text, "}")
			if deficit <= 0 {
				return text
			}

			return strings.TrimRight(text, "\n") + strings.Repeat("\n}", deficit)
		},
	}
}

// indentBody prefixes every non blank line with prefix.
func indentBody(text, prefix string) string {
	return lines(text, func(line string) string {
		if strings.TrimSpace(line) == "" {
			return ""
		}

		return prefix + line
	})
}

// placeholder renders a commented-out statement that has no equivalent in
// the target, naming the package that would have to be added by hand. It is
// emitted as a source comment so later rules leave it alone.
func placeholder(target m.Target, lib m.Library, code string) string {
	indent := leadingIndent(code)

	return indent + "# untranslated (" + string(lib) + " has no direct " + target.DisplayName() +
		" equivalent, see " + LibraryEquivalent(lib, target) + "): " + strings.TrimSpace(code)
}

// sklearnRule comments out preprocessing calls for every target.
func sklearnRule(target m.Target) rule {
	return rule{
		name: "sklearn idioms",
		when: func(text string, sc scope) bool {
			return sc.ctx.HasLibrary(m.LibrarySklearn) && sklearnLineRe.MatchString(text)
		},
		apply: func(text string, _ scope) string {
			return lines(text, func(line string) string {
				code, comment := splitComment(line, "#")
				if !sklearnLineRe.MatchString(code) {
					return line
				}

				return joinComment(placeholder(target, m.LibrarySklearn, code), comment)
			})
		},
	}
}

// numpyWhen gates numpy idiom rules on detection and literal presence.
func numpyWhen(text string, sc scope) bool {
	return sc.ctx.HasLibrary(m.LibraryNumpy) && strings.Contains(text, "np.")
}

// sigilRule prefixes every occurrence of a snippet-local name with sigil,
// skipping calls, member accesses and names that already carry it.
func sigilRule(sigil string) rule {
	return rule{
		name: "variable sigils",
		apply: func(text string, sc scope) string {
			return lines(text, func(line string) string {
				code, comment := splitComment(line, "#")
				code = rewriteCode(code, func(seg string) string {
					return prefixLocals(seg, sigil, sc)
				})

				return joinComment(code, comment)
			})
		},
	}
}

func prefixLocals(seg, sigil string, sc scope) string {
	matches := identRe.FindAllStringIndex(seg, -1)
	if len(matches) == 0 {
		return seg
	}

	var b strings.Builder

	last := 0

	for _, loc := range matches {
		start, end := loc[0], loc[1]
		name := seg[start:end]

		if !sc.isLocal(name) || !bareIdentifier(seg, start, end) {
			continue
		}

		b.WriteString(seg[last:start])
		b.WriteString(sigil)
		b.WriteString(name)
		last = end
	}

	b.WriteString(seg[last:])

	return b.String()
}

func bareIdentifier(seg string, start, end int) bool {
	if start > 0 {
		switch seg[start-1] {
		case '$', '.', '>', ':', '\\':
			return false
		}

		if isWordByte(seg[start-1]) {
			return false
		}
	}

	rest := strings.TrimLeft(seg[end:], " ")

	return !strings.HasPrefix(rest, "(")
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// paramList renders the parameters with render and joins them.
func paramList(params []string, render func(name string) string) string {
	rendered := make([]string, 0, len(params))
	for _, p := range params {
		rendered = append(rendered, render(p))
	}

	return strings.Join(rendered, ", ")
}

// replacement is one regexp substitution of a library idiom rule.
type replacement struct {
	re *regexp.Regexp
	fn func(groups []string) string
}

// numpyRule applies the replacements in order to the code part of every
// line. It only runs when numpy was detected and an np. idiom is present.
func numpyRule(name string, replacements ...replacement) rule {
	return rule{
		name: name,
		when: numpyWhen,
		apply: func(text string, _ scope) string {
			return lines(text, func(line string) string {
				code, comment := splitComment(line, "#")

				for _, r := range replacements {
					re, fn := r.re, r.fn
					code = re.ReplaceAllStringFunc(code, func(match string) string {
						return fn(re.FindStringSubmatch(match))
					})
				}

				return joinComment(code, comment)
			})
		},
	}
}

var sourceImportRe = regexp.MustCompile(`^\s*(?:import\s+[\w.]+|from\s+[\w.]+\s+import\s)`)

// sourceImportRule drops the snippet's own import statements. Imports of the
// target are produced by the boilerplate rule from the rewritten text.
func sourceImportRule() rule {
	return rule{
		name: "source imports",
		apply: func(text string, _ scope) string {
			in := strings.Split(text, "\n")
			out := make([]string, 0, len(in))

			for _, line := range in {
				if sourceImportRe.MatchString(line) {
					continue
				}

				out = append(out, line)
			}

			return strings.TrimLeft(strings.Join(out, "\n"), "\n")
		},
	}
}
