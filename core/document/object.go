package document

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"enchantment-tracker/core/storage"

	"github.com/minio/minio-go/v7"
)

// objectStore keeps documents as objects in an S3/MinIO bucket.
// A single PutObject already replaces the whole object atomically.
type objectStore struct {
	client storage.Client
	bucket string
}

// NewObjectStore creates a Store backed by an object storage bucket.
func NewObjectStore(client storage.Client, bucket string) Store {
	return &objectStore{client: client, bucket: bucket}
}

func (s *objectStore) Read(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get document %q: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// Minio reports missing keys on read, not on open.
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to read document %q: %w", key, err)
	}
	return data, nil
}

func (s *objectStore) Write(ctx context.Context, key string, data []byte) error {
	opts := minio.PutObjectOptions{ContentType: "application/json"}
	if _, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return fmt.Errorf("failed to put document %q: %w", key, err)
	}
	return nil
}
