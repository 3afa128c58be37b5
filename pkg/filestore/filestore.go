package filestore

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the file sink settings.
type Config struct {
	// Dir is the local directory uploads are written into.
	Dir string
	// PublicPrefix is the URL path prefix returned to clients, e.g. "/uploads".
	PublicPrefix string
}

// Saver persists uploaded content and returns its public path.
type Saver interface {
	Save(filename string, content []byte) (string, error)
}

// Store writes uploaded files to a local directory and derives the
// public-facing path for each saved file.
type Store struct {
	dir    string
	prefix string
}

// New creates a Store, creating the upload directory if it does not exist.
func New(cfg Config) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("filestore: dir is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create dir %s: %w", cfg.Dir, err)
	}
	return &Store{dir: cfg.Dir, prefix: cfg.PublicPrefix}, nil
}

// Save writes content under the base component of filename and returns the
// public path. An existing file with the same name is overwritten; callers
// that need collision safety must rename before calling Save.
func (s *Store) Save(filename string, content []byte) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("filestore: invalid filename %q", filename)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), content, 0o644); err != nil {
		return "", fmt.Errorf("filestore: write %s: %w", name, err)
	}

	return s.prefix + "/" + name, nil
}

// Dir returns the directory files are written into.
func (s *Store) Dir() string {
	return s.dir
}
