package docstore

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	apperrors "fincatech.io/itam/internal/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestStore_SaveAndOpen(t *testing.T) {
	s := newTestStore(t)

	rel, err := s.Save("bajas/asset-1", "evidence.pdf", strings.NewReader("pdf-bytes"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if filepath.Ext(rel) != ".pdf" {
		t.Errorf("stored path %q should keep the .pdf extension", rel)
	}
	if strings.Contains(rel, "evidence") {
		t.Errorf("stored path %q should not contain the original filename", rel)
	}
	if !s.Exists(rel) {
		t.Fatalf("Exists(%q) = false after Save", rel)
	}

	f, err := s.Open(rel)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != "pdf-bytes" {
		t.Errorf("content = %q, want pdf-bytes", data)
	}
}

func TestStore_Save_ExtensionAllowList(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"pdf allowed", "doc.pdf", false},
		{"jpeg allowed", "photo.JPEG", false},
		{"docx allowed", "contract.docx", false},
		{"png allowed", "screen.png", false},
		{"executable rejected", "malware.exe", true},
		{"script rejected", "run.sh", true},
		{"no extension rejected", "README", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Save("docs", tt.filename, strings.NewReader("x"))
			if (err != nil) != tt.wantErr {
				t.Errorf("Save(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
			if tt.wantErr {
				appErr, ok := apperrors.IsAppError(err)
				if !ok {
					t.Fatalf("Save(%q) error should be an AppError, got %v", tt.filename, err)
				}
				if appErr.Code != apperrors.CodeDocumentTypeInvalid {
					t.Errorf("Code = %q, want %q", appErr.Code, apperrors.CodeDocumentTypeInvalid)
				}
			}
		})
	}
}

func TestStore_Delete_MissingFileIsNotAnError(t *testing.T) {
	s := newTestStore(t)

	if err := s.Delete("bajas/asset-1/gone.pdf"); err != nil {
		t.Fatalf("Delete() on missing file error = %v", err)
	}
}

func TestStore_Delete_RemovesFile(t *testing.T) {
	s := newTestStore(t)

	rel, err := s.Save("empleados", "cv.doc", strings.NewReader("doc"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Delete(rel); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if s.Exists(rel) {
		t.Errorf("Exists(%q) = true after Delete", rel)
	}
}

func TestStore_Open_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Open("missing/file.pdf")
	appErr, ok := apperrors.IsAppError(err)
	if !ok {
		t.Fatalf("Open() error should be an AppError, got %v", err)
	}
	if appErr.Code != apperrors.CodeDocumentNotFound {
		t.Errorf("Code = %q, want %q", appErr.Code, apperrors.CodeDocumentNotFound)
	}
}

func TestStore_PathTraversalRejected(t *testing.T) {
	s := newTestStore(t)

	if s.Exists("../outside.txt") {
		t.Error("Exists() should reject traversal outside the root")
	}
	if err := s.Delete("../../etc/passwd"); err != nil {
		// Traversal is neutralized by path cleaning; Delete treats the
		// cleaned in-root path as missing.
		t.Errorf("Delete() error = %v", err)
	}
}
