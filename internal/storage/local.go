package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalStorage implements the Storage interface for the local filesystem.
type LocalStorage struct {
	outputDir string
}

// NewLocalStorage creates a local storage instance rooted at outputDir.
func NewLocalStorage(outputDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	return &LocalStorage{outputDir: outputDir}, nil
}

// SaveDoc writes the doc to a file under the output directory.
func (s *LocalStorage) SaveDoc(name string, data []byte) (string, error) {
	path := filepath.Join(s.outputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write doc %s: %w", path, err)
	}
	return path, nil
}

// Cleanup is a no-op for local storage.
func (s *LocalStorage) Cleanup() error {
	return nil
}
