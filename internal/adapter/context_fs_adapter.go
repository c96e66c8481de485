// Package adapter contains the filesystem and persistence adapters used by the export engine.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	m "ctxport.dev/pkg/ctxport/internal/model"
)

// ContextFSAdapter abstracts the filesystem operations the export engine
// relies on: enumerating directories, reading files, and reading or writing
// the two configuration formats (.context.ini and inline metadata blocks).
//
//nolint:interfacebloat // A richer interface keeps the traversal decoupled from os/fs.
type ContextFSAdapter interface {
	// ListDir returns the immediate children of dir in lexical name order.
	// Symlinks are resolved; dangling links are left out.
	ListDir(dir m.Path) ([]m.DirEntry, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// AbsPath returns an absolute, cleaned version of path.
	AbsPath(path m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// ReadFolderConfig reads dir/.context.ini. ok is false when the file is
	// absent, meaning dir is not a context folder.
	ReadFolderConfig(dir m.Path) (cfg m.ContextFolderConfig, ok bool, err error)

	// WriteFolderConfig creates dir/.context.ini. It never overwrites.
	WriteFolderConfig(dir m.Path, cfg m.ContextFolderConfig) error

	// ReadFileMetadata reads the metadata block at the start of a text file.
	ReadFileMetadata(path m.Path) (m.FileMetadata, error)

	// AddMetadataBlock prepends a metadata block to a text file. It reports
	// false when the file already starts with one.
	AddMetadataBlock(path m.Path, tags []string, note string) (bool, error)
}

// LocalContextFSAdapter implements ContextFSAdapter on the local disk.
type LocalContextFSAdapter struct{}

// NewLocalContextFSAdapter constructs a LocalContextFSAdapter instance ready to
// be wired into the workflow.
func NewLocalContextFSAdapter() *LocalContextFSAdapter {
	return &LocalContextFSAdapter{}
}

// ListDir enumerates dir. os.ReadDir sorts by file name, which gives the
// traversal a stable enumeration order.
func (a *LocalContextFSAdapter) ListDir(dir m.Path) ([]m.DirEntry, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}

	children := make([]m.DirEntry, 0, len(entries))

	for _, entry := range entries {
		childPath := filepath.Join(string(dir), entry.Name())
		mode := entry.Type()

		if mode&fs.ModeSymlink != 0 {
			info, err := os.Stat(childPath)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					slog.Debug("skipping dangling symlink", "path", childPath)
					continue
				}

				return nil, fmt.Errorf("resolve %s: %w", childPath, err)
			}

			mode = info.Mode().Type()
		}

		children = append(children, m.DirEntry{
			Name:      entry.Name(),
			Path:      m.Path(childPath),
			IsDir:     mode.IsDir(),
			IsRegular: mode.IsRegular(),
		})
	}

	return children, nil
}

// ReadFile loads file contents from disk.
func (a *LocalContextFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalContextFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// AbsPath returns the absolute form of path.
func (a *LocalContextFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalContextFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(filepath.ToSlash(rel)), nil
}
