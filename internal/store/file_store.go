package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bazarly/bazarly-go/internal/logger"
)

type fileStore struct {
	path   string
	logger *logger.Logger

	mu     sync.RWMutex
	values map[string]string
}

// NewFileStore opens (or creates on first write) a JSON-file credential store
// at path. The file is loaded once at construction; every Set and Delete
// rewrites it in full, which is fine for the handful of keys this store holds.
func NewFileStore(path string, log *logger.Logger) (CredentialStore, error) {
	s := &fileStore{
		path:   path,
		logger: log,
		values: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *fileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	return value, nil
}

func (s *fileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return s.persist()
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)

	return s.persist()
}

func (s *fileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read credential file: %w", err)
	}

	var values map[string]string
	if err = json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode credential file: %w", err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	s.values = values

	return nil
}

// persist is called with s.mu held.
func (s *fileStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create credential dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}

	return nil
}
