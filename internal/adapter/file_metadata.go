package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	m "ctxport.dev/pkg/ctxport/internal/model"
)

const metadataFiller = "------------------------------------------------------------------"

// ReadFileMetadata returns the tags declared in the metadata block of path.
// Files that do not start with the block yield empty metadata after reading
// only the first line.
func (a *LocalContextFSAdapter) ReadFileMetadata(path m.Path) (m.FileMetadata, error) {
	// #nosec G304 - path comes from enumerating the export source
	file, err := os.Open(string(path))
	if err != nil {
		return m.FileMetadata{}, err
	}

	defer func() { _ = file.Close() }()

	meta, err := parseMetadata(file)
	if err != nil {
		return m.FileMetadata{}, fmt.Errorf("%s: %w", path, err)
	}

	return meta, nil
}

// AddMetadataBlock prepends an empty-or-filled metadata block to path.
func (a *LocalContextFSAdapter) AddMetadataBlock(path m.Path, tags []string, note string) (bool, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		return false, err
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		return false, err
	}

	if strings.HasPrefix(string(content), m.MetadataStartMarker) {
		return false, nil
	}

	block := FormatMetadataBlock(tags, note)
	if err := os.WriteFile(string(path), append([]byte(block), content...), info.Mode().Perm()); err != nil {
		return false, err
	}

	return true, nil
}

// FormatMetadataBlock renders a metadata block in the layout the note editor writes.
func FormatMetadataBlock(tags []string, note string) string {
	var b strings.Builder

	b.WriteString(m.MetadataStartMarker + metadataFiller + "\n")
	fmt.Fprintf(&b, "%s: %s\n", m.MetadataTagKey, strings.Join(tags, m.TagDelimiter+" "))
	fmt.Fprintf(&b, "%s: %s\n", m.MetadataNoteKey, note)
	b.WriteString(metadataFiller + m.MetadataEndMarker + "\n")

	return b.String()
}

func parseMetadata(r io.Reader) (m.FileMetadata, error) {
	reader := bufio.NewReader(r)

	first, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return m.FileMetadata{}, err
	}

	if !isMetadataStart(first) {
		return m.FileMetadata{Tags: []string{}}, nil
	}

	meta := m.FileMetadata{Present: true, Tags: []string{}}

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return m.FileMetadata{}, err
		}

		key, value, hasValue := strings.Cut(line, ":")
		key = strings.Trim(key, " -\r\n")

		if key == m.MetadataEndMarker {
			return meta, nil
		}

		if hasValue && key == m.MetadataTagKey {
			meta.Tags = m.SplitTags(value)
			return meta, nil
		}

		if errors.Is(err, io.EOF) {
			return m.FileMetadata{}, fmt.Errorf("%w: no %s line", m.ErrMalformedMetadata, m.MetadataEndMarker)
		}
	}
}

func isMetadataStart(line string) bool {
	return strings.Trim(strings.TrimRight(line, "\r\n"), "- ") == m.MetadataStartMarker
}
