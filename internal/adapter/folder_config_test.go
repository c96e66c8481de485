package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ctxport.dev/pkg/ctxport/internal/model"
)

func TestReadFolderConfig(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		wantOK  bool
		want    m.ContextFolderConfig
		wantErr error
	}{
		{
			name:    "absent config is not a context folder",
			content: nil,
			wantOK:  false,
		},
		{
			name:    "priority and tags",
			content: strPtr("[Context Folder Configuration]\npriority = 3\ntags = draft, chapter\n"),
			wantOK:  true,
			want:    m.ContextFolderConfig{Priority: 3, Tags: []string{"draft", "chapter"}},
		},
		{
			name:    "colon delimiter and upper-case keys",
			content: strPtr("[Context Folder Configuration]\nPriority: -2\nTAGS: x\n"),
			wantOK:  true,
			want:    m.ContextFolderConfig{Priority: -2, Tags: []string{"x"}},
		},
		{
			name:    "missing tags key is an empty list",
			content: strPtr("[Context Folder Configuration]\npriority = 0\n"),
			wantOK:  true,
			want:    m.ContextFolderConfig{Priority: 0, Tags: []string{}},
		},
		{
			name:    "empty tags value is an empty list",
			content: strPtr("[Context Folder Configuration]\npriority = 1\ntags =\n"),
			wantOK:  true,
			want:    m.ContextFolderConfig{Priority: 1, Tags: []string{}},
		},
		{
			name:    "missing priority",
			content: strPtr("[Context Folder Configuration]\ntags = a\n"),
			wantErr: m.ErrMalformedFolderConfig,
		},
		{
			name:    "non-numeric priority",
			content: strPtr("[Context Folder Configuration]\npriority = high\n"),
			wantErr: m.ErrMalformedFolderConfig,
		},
		{
			name:    "missing section",
			content: strPtr("[Other]\npriority = 1\n"),
			wantErr: m.ErrMalformedFolderConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewLocalContextFSAdapter()
			dir := t.TempDir()

			if tt.content != nil {
				writeTestFile(t, filepath.Join(dir, m.FolderConfigName), *tt.content)
			}

			cfg, ok, err := adapter.ReadFolderConfig(m.Path(dir))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, ok)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, cfg)
			}
		})
	}
}

func TestWriteFolderConfig_RoundTrip(t *testing.T) {
	adapter := NewLocalContextFSAdapter()
	dir := t.TempDir()

	err := adapter.WriteFolderConfig(m.Path(dir), m.ContextFolderConfig{Priority: 5, Tags: m.SplitTags("a, b")})
	require.NoError(t, err)

	cfg, ok, err := adapter.ReadFolderConfig(m.Path(dir))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, cfg.Priority)
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)
}

func TestWriteFolderConfig_RefusesOverwrite(t *testing.T) {
	adapter := NewLocalContextFSAdapter()
	dir := t.TempDir()
	path := filepath.Join(dir, m.FolderConfigName)
	writeTestFile(t, path, "[Context Folder Configuration]\npriority = 9\n")

	err := adapter.WriteFolderConfig(m.Path(dir), m.ContextFolderConfig{Priority: 1})
	require.ErrorIs(t, err, m.ErrFolderConfigExists)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "priority = 9")
}

func TestWriteFolderConfig_RequiresDirectory(t *testing.T) {
	adapter := NewLocalContextFSAdapter()
	file := filepath.Join(t.TempDir(), "plain.txt")
	writeTestFile(t, file, "x")

	err := adapter.WriteFolderConfig(m.Path(file), m.ContextFolderConfig{})
	require.ErrorIs(t, err, m.ErrNotDirectory)
}

func strPtr(s string) *string {
	return &s
}
