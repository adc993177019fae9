package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/securelogin/internal/logging"
)

// RedisOptions locates the credentials hash.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// RedisStore keeps the mapping as one Redis hash, field = username.
type RedisStore struct {
	client redis.UniversalClient
	key    string
	log    logging.Logger
}

func NewRedisStore(client redis.UniversalClient, key string, log logging.Logger) *RedisStore {
	if log == nil {
		log = logging.Nop()
	}
	return &RedisStore{client: client, key: key, log: log}
}

// OpenRedisStore connects and pings the server.
func OpenRedisStore(ctx context.Context, opts RedisOptions, log logging.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return NewRedisStore(client, opts.Key, log), nil
}

func (s *RedisStore) Load(ctx context.Context) (Credentials, error) {
	m, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall %s: %w", s.key, err)
	}
	return Credentials(m).Clone(), nil
}

// Save replaces the hash atomically with MULTI/EXEC.
func (s *RedisStore) Save(ctx context.Context, creds Credentials) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key)
	if len(creds) > 0 {
		fields := make([]any, 0, len(creds)*2)
		for username, password := range creds {
			fields = append(fields, username, password)
		}
		pipe.HSet(ctx, s.key, fields...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis save %s: %w", s.key, err)
	}

	s.log.Debug(ctx, "credentials saved", "key", s.key, "users", len(creds))
	return nil
}

func (s *RedisStore) Close() error { return s.client.Close() }
