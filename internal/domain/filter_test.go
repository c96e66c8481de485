package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "ctxport.dev/pkg/ctxport/internal/model"
)

func tagSet(tags ...string) m.TagSet {
	set := m.TagSet{}
	for _, tag := range tags {
		set[tag] = struct{}{}
	}

	return set
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		files     m.TagSet
		dirs      m.TagSet
		blacklist map[string]m.Scope
	}{
		{
			name:      "empty list filters nothing",
			input:     nil,
			files:     tagSet(),
			dirs:      tagSet(),
			blacklist: map[string]m.Scope{},
		},
		{
			name:      "bare tag whitelists both kinds",
			input:     []string{"a"},
			files:     tagSet("a"),
			dirs:      tagSet("a"),
			blacklist: map[string]m.Scope{},
		},
		{
			name:      "scoped whitelist",
			input:     []string{"a:file", "b:dir", "c:all"},
			files:     tagSet("a", "c"),
			dirs:      tagSet("b", "c"),
			blacklist: map[string]m.Scope{},
		},
		{
			name:      "blacklist keeps its scope",
			input:     []string{"a:file:not", "b:dir:not"},
			files:     tagSet(),
			dirs:      tagSet(),
			blacklist: map[string]m.Scope{"a": m.ScopeFile, "b": m.ScopeDir},
		},
		{
			name:      "blacklist without scope covers all",
			input:     []string{"a::not"},
			files:     tagSet(),
			dirs:      tagSet(),
			blacklist: map[string]m.Scope{"a": m.ScopeAll},
		},
		{
			name:      "second blacklist entry widens to all",
			input:     []string{"x:dir:not", "x:file:not"},
			files:     tagSet(),
			dirs:      tagSet(),
			blacklist: map[string]m.Scope{"x": m.ScopeAll},
		},
		{
			name:      "whitespace is trimmed",
			input:     []string{"  a : file ", " b:dir : not"},
			files:     tagSet("a"),
			dirs:      tagSet(),
			blacklist: map[string]m.Scope{"b": m.ScopeDir},
		},
		{
			name:      "empty expressions are skipped",
			input:     []string{"", "   ", ":file"},
			files:     tagSet(),
			dirs:      tagSet(),
			blacklist: map[string]m.Scope{},
		},
		{
			name:      "unknown scope whitelists nothing",
			input:     []string{"a:folder"},
			files:     tagSet(),
			dirs:      tagSet(),
			blacklist: map[string]m.Scope{},
		},
		{
			name:      "tag may be whitelisted and blacklisted",
			input:     []string{"secret", "secret:all:not"},
			files:     tagSet("secret"),
			dirs:      tagSet("secret"),
			blacklist: map[string]m.Scope{"secret": m.ScopeAll},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ParseFilter(tt.input)

			assert.Equal(t, tt.files, spec.FileWhitelist)
			assert.Equal(t, tt.dirs, spec.DirWhitelist)
			assert.Equal(t, tt.blacklist, spec.Blacklist)
		})
	}
}

func TestParseFilter_OrderDoesNotMatter(t *testing.T) {
	pairs := [][2][]string{
		{{"x:dir:not", "x:file"}, {"x:file", "x:dir:not"}},
		{{"x:dir:not", "x:file:not"}, {"x:file:not", "x:dir:not"}},
		{{"a:file", "b:dir:not", "a:dir"}, {"a:dir", "a:file", "b:dir:not"}},
	}

	for _, pair := range pairs {
		forward := ParseFilter(pair[0])
		backward := ParseFilter(pair[1])

		assert.Equal(t, forward, backward, "%v vs %v", pair[0], pair[1])
	}
}

func TestParseFilter_MixedWhitelistAndBlacklist(t *testing.T) {
	spec := ParseFilter([]string{"x:dir:not", "x:file"})

	assert.Equal(t, map[string]m.Scope{"x": m.ScopeDir}, spec.Blacklist)
	assert.Equal(t, tagSet("x"), spec.FileWhitelist)
	assert.Empty(t, spec.DirWhitelist)
	assert.Equal(t, "x:file,x:dir:not", spec.String())
}
