package domain

import (
	"log/slog"
	"strings"

	m "ctxport.dev/pkg/ctxport/internal/model"
)

const (
	filterSeparator = ":"
	filterNegation  = "not"
)

// ParseFilter compiles filter expressions of the form tag[:scope[:not]].
//
// Expressions are applied left to right. A "not" expression blacklists the
// tag for its scope; a second "not" for a tag that is already blacklisted
// widens it to all. Any other expression whitelists the tag for files, dirs
// or both. Parsing never fails: empty expressions are skipped and unknown
// scopes are logged and have no effect.
func ParseFilter(expressions []string) m.FilterSpec {
	spec := m.NewFilterSpec()

	for _, expression := range expressions {
		parts := strings.Split(strings.TrimSpace(expression), filterSeparator)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		tag := parts[0]
		if tag == "" {
			continue
		}

		scope := m.ScopeAll
		if len(parts) > 1 && parts[1] != "" {
			scope = m.Scope(parts[1])
		}

		if !scope.Known() {
			slog.Warn("ignoring unknown filter scope", "expression", expression, "scope", scope)
		}

		if len(parts) > 2 && parts[2] == filterNegation {
			if _, exists := spec.Blacklist[tag]; exists {
				spec.Blacklist[tag] = m.ScopeAll
				continue
			}

			spec.Blacklist[tag] = scope

			continue
		}

		if scope.Covers(m.KindFile) {
			spec.FileWhitelist[tag] = struct{}{}
		}

		if scope.Covers(m.KindDir) {
			spec.DirWhitelist[tag] = struct{}{}
		}
	}

	slog.Debug("parsed filter", "expressions", expressions, "filter", spec.String())

	return spec
}
