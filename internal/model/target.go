package model

import (
	"fmt"
	"strings"
)

// Target identifies one of the four destination notations.
type Target string

const (
	TargetGo         Target = "go"
	TargetPHP        Target = "php"
	TargetJavaScript Target = "javascript"
	TargetCSharp     Target = "csharp"
)

// Targets lists every target in display order.
var Targets = []Target{TargetGo, TargetPHP, TargetJavaScript, TargetCSharp}

// DisplayName returns the human readable name of the target.
func (t Target) DisplayName() string {
	switch t {
	case TargetGo:
		return "Go"
	case TargetPHP:
		return "PHP"
	case TargetJavaScript:
		return "JavaScript"
	case TargetCSharp:
		return "C#"
	default:
		return string(t)
	}
}

// ParseTarget resolves a target id, accepting a few common aliases.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "go", "golang":
		return TargetGo, nil
	case "php":
		return TargetPHP, nil
	case "javascript", "js":
		return TargetJavaScript, nil
	case "csharp", "cs", "c#":
		return TargetCSharp, nil
	}

	return "", fmt.Errorf("unknown target %q", s)
}
