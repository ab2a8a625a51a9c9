// Package upload is a minimal blob store: it writes a file under a local
// directory and hands back a stable URL for it. Only the URL string is kept
// on catalog records.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Store struct {
	dir     string
	baseURL string
}

// NewStore ensures the upload directory exists.
func NewStore(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir is the local directory served under /uploads.
func (s *Store) Dir() string { return s.dir }

// Save streams the payload to disk under a random name, keeping the original
// extension, and returns the retrievable URL.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return s.baseURL + "/uploads/" + name, nil
}
