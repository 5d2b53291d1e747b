package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/ports"
)

const documentVersion = 1

// LocalStorage keeps every key in a single JSON document on disk, the same
// shape a browser profile keeps its local storage in. Values are stored as
// text.
type LocalStorage struct {
	path string
	mu   sync.Mutex
}

type document struct {
	Version int               `json:"version"`
	Items   map[string]string `json:"items"`
}

func NewLocalStorage(path string) (*LocalStorage, error) {
	if path == "" {
		return nil, errors.New("local storage: empty path")
	}
	return &LocalStorage{path: path}, nil
}

func (s *LocalStorage) Path() string {
	return s.path
}

func (s *LocalStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readLocked()
	if err != nil {
		return nil, false, err
	}
	value, ok := doc.Items[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

func (s *LocalStorage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readLocked()
	if err != nil {
		return err
	}
	doc.Items[key] = string(value)
	return s.writeLocked(doc)
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readLocked()
	if err != nil {
		return err
	}
	if _, ok := doc.Items[key]; !ok {
		return nil
	}
	delete(doc.Items, key)
	return s.writeLocked(doc)
}

func (s *LocalStorage) readLocked() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &document{Version: documentVersion, Items: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("local storage: read %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("local storage: decode %s: %w", s.path, err)
	}
	if doc.Version != documentVersion {
		return nil, fmt.Errorf("local storage: unsupported document version %d", doc.Version)
	}
	if doc.Items == nil {
		doc.Items = map[string]string{}
	}
	return &doc, nil
}

func (s *LocalStorage) writeLocked(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".local_storage-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}

var _ ports.LocalStorage = (*LocalStorage)(nil)
