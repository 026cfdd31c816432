// Package storage owns the rooted directory tree holding version bytes.
//
// Storage is a value type wrapping two absolute paths: the data root and the
// storage subdirectory beneath it. It performs no locking and never
// interprets file contents — serialization is the caller's duty. Paths are
// relative to the storage subdirectory unless stated otherwise.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tonimelisma/qcdn/internal/errtypes"
)

// SubdirName is the directory under the data root that holds version bytes.
const SubdirName = "storage"

// Storage addresses files below <root>/<SubdirName> by relative path.
type Storage struct {
	root   string
	subdir string
}

// New resolves base to an absolute path, creates <base>/<subdir> if missing,
// and fails if either path exists and is not a directory.
func New(base, subdir string) (Storage, error) {
	root, err := filepath.Abs(base)
	if err != nil {
		return Storage{}, fmt.Errorf("storage: resolving %s: %w", base, err)
	}

	sub := filepath.Join(root, subdir)
	if err := os.MkdirAll(sub, 0o755); err != nil {
		return Storage{}, fmt.Errorf("storage: creating %s: %w", sub, err)
	}

	info, err := os.Stat(sub)
	if err != nil {
		return Storage{}, fmt.Errorf("storage: checking %s: %w", sub, err)
	}

	if !info.IsDir() {
		return Storage{}, fmt.Errorf("storage: %s is not a directory", sub)
	}

	return Storage{root: root, subdir: sub}, nil
}

// Path returns the absolute path of rel inside the storage subdirectory.
func (s Storage) Path(rel string) string {
	return filepath.Join(s.subdir, rel)
}

// PathFromRoot returns the absolute path of rel inside the data root,
// outside the storage subdirectory. Used for the metadata database file.
func (s Storage) PathFromRoot(rel string) string {
	return filepath.Join(s.root, rel)
}

// Open opens rel for reading. Missing files map to errtypes.NotFound.
func (s Storage) Open(rel string) (*os.File, error) {
	f, err := os.Open(s.Path(rel))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errtypes.NotFound(rel)
		}

		return nil, fmt.Errorf("storage: opening %s: %w", rel, err)
	}

	return f, nil
}

// Create opens rel for writing, creating parent directories as needed and
// truncating any existing file.
func (s Storage) Create(rel string) (*os.File, error) {
	abs := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("storage: creating parent of %s: %w", rel, err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: creating %s: %w", rel, err)
	}

	return f, nil
}

// Remove deletes rel. It fails with errtypes.NotFound unless rel is an
// existing regular file.
func (s Storage) Remove(rel string) error {
	abs := s.Path(rel)

	info, err := os.Stat(abs)
	if err != nil || !info.Mode().IsRegular() {
		return errtypes.NotFound(rel)
	}

	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("storage: removing %s: %w", rel, err)
	}

	return nil
}

// Ping verifies the storage subdirectory still exists as a directory.
// Used by the health endpoint.
func (s Storage) Ping() error {
	info, err := os.Stat(s.subdir)
	if err != nil {
		if os.IsNotExist(err) {
			return errtypes.NotFound(SubdirName)
		}

		return fmt.Errorf("storage: ping: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("storage: %s is not a directory", s.subdir)
	}

	return nil
}
