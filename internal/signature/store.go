package signature

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists encoded signature images and hands back a reference path.
// The filesystem implementation below is the default; the interface exists so
// the workflow layer never touches the disk directly.
type Store interface {
	Put(data []byte) (string, error)
	Get(reference string) ([]byte, error)
}

// FileStore writes signature images under a single upload directory, each
// under a freshly generated name. Files are served statically at /uploads.
type FileStore struct {
	dir string
}

// NewFileStore creates the upload directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Put(data []byte) (string, error) {
	filename := uuid.NewString() + ".png"
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write signature image: %w", err)
	}
	return "/uploads/" + filename, nil
}

func (s *FileStore) Get(reference string) ([]byte, error) {
	filename := filepath.Base(strings.TrimPrefix(reference, "/uploads/"))
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read signature image: %w", err)
	}
	return data, nil
}
