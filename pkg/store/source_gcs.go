package store

import (
	"context"
	"fmt"
	"io"
	"path"

	"cloud.google.com/go/storage"
)

type gcsSource struct {
	client *storage.Client
	bucket string
	prefix string
}

// NewGCSSource uses application default credentials
func NewGCSSource(ctx context.Context, bucket, prefix string) (Source, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &gcsSource{client: client, bucket: bucket, prefix: prefix}, nil
}

func (s *gcsSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	r, err := s.client.Bucket(s.bucket).Object(path.Join(s.prefix, name)).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs get %s: %w", name, err)
	}
	return r, nil
}

func (s *gcsSource) Close() error {
	return s.client.Close()
}

func (s *gcsSource) String() string {
	return "gs://" + path.Join(s.bucket, s.prefix)
}
