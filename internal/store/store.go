package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/dmitrijs2005/securelogin/internal/logging"
)

// ErrUnknownStoreKind is returned by Open for an unsupported Options.Kind.
var ErrUnknownStoreKind = errors.New("unknown store kind")

// Credentials maps usernames to passwords. Keys are unique by construction.
type Credentials map[string]string

// Clone returns an independent copy; a nil receiver yields an empty map.
func (c Credentials) Clone() Credentials {
	out := make(Credentials, len(c))
	maps.Copy(out, c)
	return out
}

// Store loads and saves the complete credential mapping.
type Store interface {
	Load(ctx context.Context) (Credentials, error)
	Save(ctx context.Context, creds Credentials) error
	Close() error
}

// Kind names a Store backend.
type Kind string

const (
	KindFile     Kind = "file"
	KindPostgres Kind = "postgres"
	KindS3       Kind = "s3"
	KindRedis    Kind = "redis"
	KindMemory   Kind = "memory"
)

// Options selects and configures a backend. Only the fields of the chosen
// Kind are read.
type Options struct {
	Kind        Kind
	FilePath    string
	DatabaseDSN string
	S3          S3Options
	Redis       RedisOptions
}

// Open builds the Store described by opts.
func Open(ctx context.Context, opts Options, log logging.Logger) (Store, error) {
	if log == nil {
		log = logging.Nop()
	}
	log = log.With("store", string(opts.Kind))

	var (
		s   Store
		err error
	)
	switch opts.Kind {
	case KindFile:
		s = NewFileStore(opts.FilePath, log)
	case KindPostgres:
		s, err = openAs(OpenPostgresStore(ctx, opts.DatabaseDSN, log))
	case KindS3:
		s, err = openAs(OpenS3Store(ctx, opts.S3, log))
	case KindRedis:
		s, err = openAs(OpenRedisStore(ctx, opts.Redis, log))
	case KindMemory:
		s = NewMemoryStore(nil)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownStoreKind, opts.Kind)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// openAs keeps a typed nil from leaking into the Store interface.
func openAs[T Store](s T, err error) (Store, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// encode renders creds as a JSON object indented with four spaces.
func encode(creds Credentials) ([]byte, error) {
	if creds == nil {
		creds = Credentials{}
	}
	return json.MarshalIndent(creds, "", "    ")
}

// decode parses a serialized mapping. Blank input is an empty mapping.
func decode(data []byte) (Credentials, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Credentials{}, nil
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	if creds == nil {
		creds = Credentials{}
	}
	return creds, nil
}
