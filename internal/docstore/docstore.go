// Package docstore persists uploaded documents (employee files,
// retirement evidence) on the local filesystem.
//
// Stored names are generated UUIDs so user-supplied filenames never
// reach the filesystem. Paths returned to callers are relative to the
// store root and safe to persist in the database.
package docstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "fincatech.io/itam/internal/pkg/errors"
)

// allowedExtensions is the upload allow-list. Anything else is rejected
// before touching the filesystem.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// Store is a filesystem-backed document store rooted at a single directory.
type Store struct {
	root string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("docstore: root directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("docstore: create root %s: %w", dir, err)
	}
	return &Store{root: dir}, nil
}

// Root returns the store's base directory.
func (s *Store) Root() string {
	return s.root
}

// Save writes r under subdir with a generated name, preserving only the
// extension of originalName. It returns the relative path to persist.
func (s *Store) Save(subdir, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", apperrors.BadRequest(apperrors.CodeDocumentTypeInvalid,
			"document type not allowed: "+ext)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("docstore: generate name: %w", err)
	}

	rel := filepath.Join(subdir, id.String()+ext)
	abs := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("docstore: create dir: %w", err)
	}

	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("docstore: create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(abs)
		return "", fmt.Errorf("docstore: write file: %w", err)
	}
	return rel, nil
}

// Exists reports whether the document at relative path rel is present.
func (s *Store) Exists(rel string) bool {
	abs, err := s.resolve(rel)
	if err != nil {
		return false
	}
	info, err := os.Stat(abs)
	return err == nil && !info.IsDir()
}

// Open returns a reader for the document at relative path rel.
func (s *Store) Open(rel string) (io.ReadCloser, error) {
	abs, err := s.resolve(rel)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NotFound(apperrors.CodeDocumentNotFound, "document not found")
		}
		return nil, fmt.Errorf("docstore: open %s: %w", rel, err)
	}
	return f, nil
}

// Delete removes the document at relative path rel. Missing files are
// not an error; callers use Delete for best-effort cleanup.
func (s *Store) Delete(rel string) error {
	abs, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("docstore: delete %s: %w", rel, err)
	}
	return nil
}

// resolve maps a relative path to an absolute one inside the root,
// rejecting traversal outside the store.
func (s *Store) resolve(rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("docstore: empty path")
	}
	abs := filepath.Join(s.root, filepath.Clean("/"+rel))
	if !strings.HasPrefix(abs, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", fmt.Errorf("docstore: path escapes store root: %s", rel)
	}
	return abs, nil
}
