package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/ports"
)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

// ObjectStorage wraps a MinIO client behind ports.ObjectStorage.
type ObjectStorage struct {
	client    *minio.Client
	publicURL string
}

func NewObjectStorage(client *minio.Client, publicURL string) *ObjectStorage {
	return &ObjectStorage{client: client, publicURL: strings.TrimRight(publicURL, "/")}
}

// EnsureBucket creates bucket when it does not exist yet.
func (s *ObjectStorage) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("minio: check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("minio: create bucket %s: %w", bucket, err)
	}
	return nil
}

func (s *ObjectStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	if _, err := s.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return "", err
	}
	return s.objectURL(bucket, objectName), nil
}

func (s *ObjectStorage) Download(ctx context.Context, bucket, objectName string) (io.ReadCloser, error) {
	if _, err := s.client.StatObject(ctx, bucket, objectName, minio.StatObjectOptions{}); err != nil {
		return nil, err
	}
	return s.client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
}

func (s *ObjectStorage) Remove(ctx context.Context, bucket, objectName string) error {
	return s.client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
}

func (s *ObjectStorage) objectURL(bucket, objectName string) string {
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicURL, bucket, objectName)
	}
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), bucket, objectName)
}

// IsNoSuchKey reports whether err is MinIO's missing-object response.
func IsNoSuchKey(err error) bool {
	if err == nil {
		return false
	}
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

var _ ports.ObjectStorage = (*ObjectStorage)(nil)
