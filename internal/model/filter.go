package model

import (
	"fmt"
	"sort"
	"strings"
)

// ItemKind distinguishes exported files from traversed directories.
type ItemKind string

const (
	// KindFile is a text file candidate.
	KindFile ItemKind = "file"
	// KindDir is a context folder candidate.
	KindDir ItemKind = "dir"
)

// Scope restricts which kind of item a filter tag affects.
type Scope string

const (
	// ScopeFile affects files only.
	ScopeFile Scope = "file"
	// ScopeDir affects directories only.
	ScopeDir Scope = "dir"
	// ScopeAll affects files and directories.
	ScopeAll Scope = "all"
)

// Covers reports whether a filter entry with this scope applies to kind.
func (s Scope) Covers(kind ItemKind) bool {
	return s == ScopeAll || string(s) == string(kind)
}

// Known reports whether s is one of file, dir or all.
func (s Scope) Known() bool {
	return s == ScopeFile || s == ScopeDir || s == ScopeAll
}

// TagSet is an unordered set of tags.
type TagSet map[string]struct{}

// Has reports whether tag is in the set.
func (ts TagSet) Has(tag string) bool {
	_, ok := ts[tag]
	return ok
}

// Sorted returns the tags in lexical order.
func (ts TagSet) Sorted() []string {
	tags := make([]string, 0, len(ts))
	for tag := range ts {
		tags = append(tags, tag)
	}

	sort.Strings(tags)

	return tags
}

// FilterSpec is a compiled list of filter expressions.
//
// An empty whitelist admits every item of its kind. Blacklist entries always
// win over whitelist entries.
type FilterSpec struct {
	FileWhitelist TagSet
	DirWhitelist  TagSet
	Blacklist     map[string]Scope
}

// NewFilterSpec returns a FilterSpec that admits everything.
func NewFilterSpec() FilterSpec {
	return FilterSpec{
		FileWhitelist: TagSet{},
		DirWhitelist:  TagSet{},
		Blacklist:     map[string]Scope{},
	}
}

// Whitelist returns the whitelist that applies to kind.
func (fs FilterSpec) Whitelist(kind ItemKind) TagSet {
	if kind == KindDir {
		return fs.DirWhitelist
	}

	return fs.FileWhitelist
}

// IsEmpty reports whether the spec admits everything.
func (fs FilterSpec) IsEmpty() bool {
	return len(fs.FileWhitelist) == 0 && len(fs.DirWhitelist) == 0 && len(fs.Blacklist) == 0
}

// String renders the spec back as a canonical, sorted expression list.
func (fs FilterSpec) String() string {
	var parts []string

	for _, tag := range fs.FileWhitelist.Sorted() {
		if fs.DirWhitelist.Has(tag) {
			parts = append(parts, tag+":all")
			continue
		}

		parts = append(parts, tag+":file")
	}

	for _, tag := range fs.DirWhitelist.Sorted() {
		if !fs.FileWhitelist.Has(tag) {
			parts = append(parts, tag+":dir")
		}
	}

	blacklisted := make([]string, 0, len(fs.Blacklist))
	for tag := range fs.Blacklist {
		blacklisted = append(blacklisted, tag)
	}

	sort.Strings(blacklisted)

	for _, tag := range blacklisted {
		parts = append(parts, fmt.Sprintf("%s:%s:not", tag, fs.Blacklist[tag]))
	}

	return strings.Join(parts, ",")
}
