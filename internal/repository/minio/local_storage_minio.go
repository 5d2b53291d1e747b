package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/ports"
)

const localStorageContentType = "application/json"

// LocalStorage keeps one object per key under prefix in bucket.
type LocalStorage struct {
	objects ports.ObjectStorage
	bucket  string
	prefix  string
	missing func(error) bool
}

func NewLocalStorage(objects ports.ObjectStorage, bucket, prefix string) *LocalStorage {
	return &LocalStorage{
		objects: objects,
		bucket:  bucket,
		prefix:  strings.Trim(prefix, "/"),
		missing: IsNoSuchKey,
	}
}

func (s *LocalStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	object, err := s.objects.Download(ctx, s.bucket, s.objectName(key))
	if err != nil {
		if s.missing(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("local storage: get %s: %w", key, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, false, fmt.Errorf("local storage: read %s: %w", key, err)
	}
	return data, true, nil
}

func (s *LocalStorage) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.objects.Upload(ctx, s.bucket, s.objectName(key), localStorageContentType, bytes.NewReader(value), int64(len(value))); err != nil {
		return fmt.Errorf("local storage: set %s: %w", key, err)
	}
	return nil
}

// Delete relies on S3 semantics: removing a missing object succeeds.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := s.objects.Remove(ctx, s.bucket, s.objectName(key)); err != nil {
		if s.missing(err) {
			return nil
		}
		return fmt.Errorf("local storage: delete %s: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) objectName(key string) string {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), " ", "-")) + ".json"
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

var _ ports.LocalStorage = (*LocalStorage)(nil)
