package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
)

// FileModelStore persists the model artifact as a single file. Save
// writes to a temp file in the same directory and renames it over the
// target, so readers never observe a partial blob.
type FileModelStore struct {
	path string
}

func NewFileModelStore(path string) (*FileModelStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create model dir: %w", err)
	}
	return &FileModelStore{path: path}, nil
}

func (s *FileModelStore) Save(_ context.Context, blob []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".model-*")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close artifact: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace artifact: %w", err)
	}
	return nil
}

func (s *FileModelStore) Load(_ context.Context) ([]byte, error) {
	blob, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	return blob, nil
}
