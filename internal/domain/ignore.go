package domain

import (
	"strings"

	m "github.com/mouse-blink/transpyle/internal/model"
)

const ignoreDirective = "transpyle:ignore"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(target m.Target) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[string(target)]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective reads "# transpyle:ignore [target, ...]". Target
// names go through ParseTarget so aliases like js or c# work; unknown names
// are dropped.
func parseIgnoreDirective(line string) (ignoreRule, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "#") {
		return ignoreRule{}, false
	}

	s = strings.TrimSpace(strings.TrimPrefix(s, "#"))
	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(s, ignoreDirective))
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		target, err := m.ParseTarget(part)
		if err != nil {
			continue
		}

		rule.names[string(target)] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, true
}

// buildIgnoreRule merges every directive found on a comment-only line of
// source.
func buildIgnoreRule(source string) ignoreRule {
	var rule ignoreRule

	for _, line := range strings.Split(source, "\n") {
		r, ok := parseIgnoreDirective(line)
		if !ok {
			continue
		}

		mergeIgnoreRule(&rule, r)
	}

	return rule
}

// activeTargets filters ids down to the targets source does not opt out of.
func activeTargets(source string, ids []m.Target) []m.Target {
	rule := buildIgnoreRule(source)

	active := make([]m.Target, 0, len(ids))

	for _, id := range ids {
		if !rule.ignores(id) {
			active = append(active, id)
		}
	}

	return active
}
