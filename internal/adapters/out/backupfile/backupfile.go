// Package backupfile reads and writes snapshot backups on the local filesystem.
package backupfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dispatch/internal/adapters/out/snapshot"
	"dispatch/internal/core/domain/model/dispatch"

	"github.com/natefinch/atomic"
)

const (
	filePerms = 0o644
	dirPerms  = 0o755
)

// ErrPathIsRequired is returned when a Store is created without a path.
var ErrPathIsRequired = errors.New("backup path is required")

// Store is a single backup file. Writes replace the file atomically, so a
// reader never sees a half-written document.
type Store struct {
	path string
}

// NewStore returns a store for path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, ErrPathIsRequired
	}
	return &Store{path: path}, nil
}

// Path returns the backup file location.
func (s *Store) Path() string {
	return s.path
}

// Write encodes state as an indented document and replaces the file with it.
// Missing parent directories are created.
func (s *Store) Write(state *dispatch.State) error {
	data, err := snapshot.EncodeIndent(state)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), dirPerms); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	// atomic.WriteFile leaves new files with the temp file's mode.
	if err := os.Chmod(s.path, filePerms); err != nil {
		return fmt.Errorf("set backup permissions: %w", err)
	}

	return nil
}

// Read decodes the backup file leniently.
func (s *Store) Read() (*dispatch.State, snapshot.Report, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, snapshot.Report{}, fmt.Errorf("read backup: %w", err)
	}

	state, report, err := snapshot.Decode(data)
	if err != nil {
		return nil, report, fmt.Errorf("%s: %w", s.path, err)
	}
	return state, report, nil
}

// Get reads the backup file as a ports.StateReader, so read-only queries can
// run against a backup.
func (s *Store) Get(_ context.Context) (*dispatch.State, error) {
	state, _, err := s.Read()
	return state, err
}
