package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	m "ctxport.dev/pkg/ctxport/internal/model"
)

const (
	lockSuffix      = ".lock"
	tempPattern     = ".ctxport-*.tmp"
	destinationPerm = 0o644
	writeBufferSize = 64 * 1024
)

// ExportSink receives the export output. Nothing is visible at the
// destination until Commit succeeds; Abort discards everything written.
type ExportSink interface {
	Write(p []byte) (int, error)
	Commit() error
	Abort() error
}

// DestinationWriter opens sinks for export destinations.
type DestinationWriter interface {
	Open(path m.Path) (ExportSink, error)
}

// LocalDestinationWriter writes to a temporary file beside the destination and
// renames it into place on commit. A .lock file guards against two exports
// writing the same destination at once.
type LocalDestinationWriter struct{}

// NewLocalDestinationWriter constructs a LocalDestinationWriter.
func NewLocalDestinationWriter() *LocalDestinationWriter {
	return &LocalDestinationWriter{}
}

// Open locks the destination and starts a temporary file next to it.
func (w *LocalDestinationWriter) Open(path m.Path) (ExportSink, error) {
	dest := string(path)
	dir := filepath.Dir(dest)

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("destination directory: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("destination directory %s: %w", dir, m.ErrNotDirectory)
	}

	lock := flock.New(dest + lockSuffix)

	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", dest, err)
	}

	if !locked {
		return nil, fmt.Errorf("%w: %s", m.ErrDestinationLocked, dest)
	}

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		releaseLock(lock)
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	slog.Debug("opened export sink", "destination", dest, "temp", tmp.Name())

	return &atomicSink{
		dest:   dest,
		file:   tmp,
		buffer: bufio.NewWriterSize(tmp, writeBufferSize),
		lock:   lock,
	}, nil
}

type atomicSink struct {
	dest   string
	file   *os.File
	buffer *bufio.Writer
	lock   *flock.Flock
	closed bool
}

func (s *atomicSink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, fs.ErrClosed
	}

	return s.buffer.Write(p)
}

func (s *atomicSink) Commit() error {
	if s.closed {
		return fs.ErrClosed
	}

	s.closed = true
	defer releaseLock(s.lock)

	tmpPath := s.file.Name()

	if err := s.buffer.Flush(); err != nil {
		s.discard()
		return fmt.Errorf("flush %s: %w", tmpPath, err)
	}

	if err := s.file.Sync(); err != nil {
		s.discard()
		return fmt.Errorf("sync %s: %w", tmpPath, err)
	}

	if err := s.file.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	if err := os.Chmod(tmpPath, destinationPerm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, s.dest); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s to %s: %w", tmpPath, s.dest, err)
	}

	slog.Debug("committed export sink", "destination", s.dest)

	return nil
}

func (s *atomicSink) Abort() error {
	if s.closed {
		return nil
	}

	s.closed = true
	defer releaseLock(s.lock)

	return s.discard()
}

func (s *atomicSink) discard() error {
	closeErr := s.file.Close()

	removeErr := os.Remove(s.file.Name())
	if errors.Is(removeErr, fs.ErrNotExist) {
		removeErr = nil
	}

	if closeErr != nil && !errors.Is(closeErr, fs.ErrClosed) {
		return closeErr
	}

	return removeErr
}

func releaseLock(lock *flock.Flock) {
	if err := lock.Unlock(); err != nil {
		slog.Warn("failed to release destination lock", "path", lock.Path(), "error", err)
		return
	}

	_ = os.Remove(lock.Path())
}
