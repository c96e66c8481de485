package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writeContextFolder(t *testing.T, dir string, priority int, tags ...string) {
	t.Helper()

	writeTestFile(t, filepath.Join(dir, ".context.ini"), fmt.Sprintf(
		"[Context Folder Configuration]\npriority = %d\ntags = %s\n",
		priority, strings.Join(tags, ", ")))
}

func withMetadata(body string, tags ...string) string {
	return "#METADATA_START------\n%Tag: " + strings.Join(tags, ", ") +
		"\n%Note: test\n------#METADATA_END\n" + body
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}
