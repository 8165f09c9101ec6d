package targets

import (
	"regexp"
	"strconv"
	"strings"

	m "github.com/mouse-blink/transpyle/internal/model"
)

var (
	residueDefRe   = regexp.MustCompile(`(?m)^\s*def\s+\w+\s*\(`)
	residuePrintRe = regexp.MustCompile(`\bprint\(`)
	residueNumpyRe = regexp.MustCompile(`\bnp\.\w+`)
)

// missingImport fires when marker is used but importText is absent.
func missingImport(marker, importText string, warning m.Warning) check {
	return func(text string) m.Warning {
		if strings.Contains(text, marker) && !strings.Contains(text, importText) {
			return warning
		}

		return ""
	}
}

func untranslatedDef(text string) m.Warning {
	if residueDefRe.MatchString(text) {
		return "untranslated function definition (def) left in output"
	}

	return ""
}

func untranslatedPrint(text string) m.Warning {
	if residuePrintRe.MatchString(text) {
		return "untranslated print() call left in output"
	}

	return ""
}

func untranslatedNumpy(text string) m.Warning {
	if residueNumpyRe.MatchString(text) {
		return "numpy call left untranslated"
	}

	return ""
}

// untranslatedBlock fires on lines whose code still ends with a Python
// block colon.
func untranslatedBlock(text string) m.Warning {
	for _, line := range strings.Split(text, "\n") {
		code, _ := splitComment(line, "//")
		if strings.HasSuffix(strings.TrimSpace(code), ":") {
			return "untranslated block header ending with ':'"
		}
	}

	return ""
}

func partialTranslation(text string) m.Warning {
	if n := strings.Count(text, "untranslated ("); n > 0 {
		if n == 1 {
			return "1 statement has no direct equivalent and was left as a comment"
		}

		return m.Warning(strconv.Itoa(n) + " statements have no direct equivalent and were left as comments")
	}

	return ""
}
