package domain

import m "ctxport.dev/pkg/ctxport/internal/model"

// Admit decides whether an item of the given kind carrying tags is exported.
// It returns an empty reason when the item is admitted. The blacklist is
// consulted first, so a blacklisted tag cannot be re-admitted by a whitelist.
func Admit(spec m.FilterSpec, kind m.ItemKind, tags []string) m.RejectReason {
	if isBlacklisted(spec, kind, tags) {
		return m.ReasonBlacklisted
	}

	if !isWhitelisted(spec, kind, tags) {
		return m.ReasonNotWhitelisted
	}

	return ""
}

func isBlacklisted(spec m.FilterSpec, kind m.ItemKind, tags []string) bool {
	for _, tag := range tags {
		scope, ok := spec.Blacklist[tag]
		if ok && scope.Covers(kind) {
			return true
		}
	}

	return false
}

func isWhitelisted(spec m.FilterSpec, kind m.ItemKind, tags []string) bool {
	whitelist := spec.Whitelist(kind)
	if len(whitelist) == 0 {
		return true
	}

	for _, tag := range tags {
		if whitelist.Has(tag) {
			return true
		}
	}

	return false
}
