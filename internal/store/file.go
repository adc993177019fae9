package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/securelogin/internal/filex"
	"github.com/dmitrijs2005/securelogin/internal/logging"
)

// FileStore keeps the mapping in a single JSON file.
type FileStore struct {
	path string
	log  logging.Logger
	mu   sync.Mutex
}

func NewFileStore(path string, log logging.Logger) *FileStore {
	if log == nil {
		log = logging.Nop()
	}
	return &FileStore{path: path, log: log}
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(ctx context.Context) (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	creds, err := decode(data)
	if err != nil {
		s.log.Warn(ctx, "credential file is corrupt, starting empty", "path", s.path, "error", err)
		return Credentials{}, nil
	}
	return creds, nil
}

func (s *FileStore) Save(ctx context.Context, creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := encode(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := filex.EnsureParentDir(s.path); err != nil {
		return err
	}
	if err := filex.WriteAtomic(s.path, data, 0o600); err != nil {
		return err
	}

	s.log.Debug(ctx, "credentials saved", "path", s.path, "users", len(creds))
	return nil
}

func (s *FileStore) Close() error { return nil }
