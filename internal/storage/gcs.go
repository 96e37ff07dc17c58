package storage

import (
	"context"
	"fmt"
	"path"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStorage implements the Storage interface for Google Cloud Storage.
type GCSStorage struct {
	client       *storage.Client
	bucket       string
	objectPrefix string
	ctx          context.Context
}

// NewGCSStorage creates a GCS-backed storage instance. With an empty
// credentialsFile the client uses application default credentials.
func NewGCSStorage(ctx context.Context, bucketName, objectPrefix, credentialsFile string) (*GCSStorage, error) {
	var client *storage.Client
	var err error

	if credentialsFile != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	} else {
		client, err = storage.NewClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStorage{
		client:       client,
		bucket:       bucketName,
		objectPrefix: objectPrefix,
		ctx:          ctx,
	}, nil
}

// SaveDoc uploads the doc as an object in the configured bucket.
func (s *GCSStorage) SaveDoc(name string, data []byte) (string, error) {
	object := path.Join(s.objectPrefix, name)

	w := s.client.Bucket(s.bucket).Object(object).NewWriter(s.ctx)
	w.ContentType = "text/plain; charset=utf-8"

	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to upload doc %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize doc %s: %w", object, err)
	}

	return fmt.Sprintf("gs://%s/%s", s.bucket, object), nil
}

// Cleanup closes the GCS client.
func (s *GCSStorage) Cleanup() error {
	return s.client.Close()
}
