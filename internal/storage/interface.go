package storage

import (
	"context"
	"fmt"

	"github.com/jaki95/rekordbox-docgen/config"
)

// Storage persists rendered playlist docs.
type Storage interface {
	// SaveDoc stores one playlist's doc under the given file name and
	// returns the final location of the stored doc.
	SaveDoc(name string, data []byte) (string, error)

	// Cleanup releases any resources held by the backend.
	Cleanup() error
}

// New selects a Storage backend from the configuration.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Type {
	case "local":
		return NewLocalStorage(cfg.Storage.OutputDir)
	case "gcs":
		return NewGCSStorage(ctx, cfg.Storage.Bucket, cfg.Storage.ObjectPrefix, cfg.Storage.CredentialsFile)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Storage.Type)
	}
}
