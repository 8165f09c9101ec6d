// Package domain contains the analysis and translation engine together with
// the workflows driving it from the command line.
package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/transpyle/internal/model"
)

// Analyzer recovers a shallow Context from raw snippet text.
type Analyzer interface {
	Analyze(source string) m.Context
}

type analyzer struct{}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer() Analyzer {
	return &analyzer{}
}

type librarySniffer struct {
	library m.Library
	marker  string
}

// librarySniffers detect libraries by substring, not by import statements.
var librarySniffers = []librarySniffer{
	{library: m.LibraryNumpy, marker: "np."},
	{library: m.LibrarySklearn, marker: "MinMaxScaler"},
}

type dataStructureHint struct {
	marker string
	idiom  string
	kind   m.ValueKind
}

var dataStructureHints = []dataStructureHint{
	{marker: "np.array(", idiom: "np.array", kind: m.KindArray},
}

var (
	variableRe  = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*=\s*([^=].*)$`)
	functionRe  = regexp.MustCompile(`\bdef\s+([A-Za-z_]\w*)\s*\(`)
	intRe       = regexp.MustCompile(`^\d+$`)
	floatRe     = regexp.MustCompile(`^\d+\.\d+$`)
	boolRe      = regexp.MustCompile(`\b(?:True|False)\b`)
	operationRe = regexp.MustCompile(`[\w)\]]\s*[-+*/%]\s*[\w(\[]`)
)

// Analyze scans source once. It never fails: unrecognised input yields
// unknown kinds and empty sets.
func (a *analyzer) Analyze(source string) m.Context {
	ctx := m.NewContext()

	for _, line := range strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n") {
		code := stripComment(line)

		if groups := variableRe.FindStringSubmatch(code); groups != nil {
			ctx.Variables[groups[1]] = InferKind(groups[2])
		}

		for _, groups := range functionRe.FindAllStringSubmatch(code, -1) {
			ctx.Functions[groups[1]] = struct{}{}
		}

		if !ctx.HasBasicOperations && operationRe.MatchString(blankStrings(code)) {
			ctx.HasBasicOperations = true
		}
	}

	for _, s := range librarySniffers {
		if strings.Contains(source, s.marker) {
			ctx.DetectedLibraries[s.library] = struct{}{}
		}
	}

	for _, h := range dataStructureHints {
		if strings.Contains(source, h.marker) {
			ctx.DataStructureHints[h.idiom] = h.kind
		}
	}

	return ctx
}

// InferKind classifies the right-hand side of an assignment. The first
// matching rule wins.
func InferKind(expr string) m.ValueKind {
	expr = strings.TrimSpace(expr)

	switch {
	case strings.Contains(expr, "[]"):
		return m.KindList
	case strings.Contains(expr, "np.array("):
		return m.KindArray
	case intRe.MatchString(expr):
		return m.KindInt
	case floatRe.MatchString(expr):
		return m.KindFloat
	case strings.ContainsAny(expr, `"'`):
		return m.KindString
	case boolRe.MatchString(expr):
		return m.KindBool
	default:
		return m.KindUnknown
	}
}

// blankStrings empties every string literal in code, keeping the quotes.
func blankStrings(code string) string {
	var b strings.Builder

	var quote byte

	for i := 0; i < len(code); i++ {
		c := code[i]

		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				b.WriteByte(c)
				quote = 0
			}
		case c == '"' || c == '\'':
			b.WriteByte(c)
			quote = c
		default:
			b.WriteByte(c)
		}
	}

	if quote != 0 {
		b.WriteByte(quote)
	}

	return b.String()
}

// stripComment drops a trailing # comment that is not inside a string.
func stripComment(line string) string {
	var quote rune

	for i, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '#':
			return line[:i]
		}
	}

	return line
}
