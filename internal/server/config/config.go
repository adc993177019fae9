// Package config handles configuration for the account server,
// including defaults, JSON overlay, command-line flags and validation.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/securelogin/internal/common"
	"github.com/dmitrijs2005/securelogin/internal/store"
)

// Config holds runtime settings for the SecureLogin server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - StoreKind: credential backend, one of file, postgres, s3, redis, memory.
//   - FilePath: users file for the file backend.
//   - DatabaseDSN: PostgreSQL DSN (pgx).
//   - S3*: object storage settings for the s3 backend.
//   - Redis*: connection settings for the redis backend.
//   - RateLimit / RateBurst: global request budget per second; 0 disables limiting.
//   - ShutdownTimeout: how long graceful stop may take before connections are cut.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC string `validate:"required,hostname_port"`
	StoreKind        string `validate:"oneof=file postgres s3 redis memory"`
	FilePath         string `validate:"required_if=StoreKind file"`
	DatabaseDSN      string `validate:"required_if=StoreKind postgres"`

	S3Bucket       string `validate:"required_if=StoreKind s3"`
	S3Key          string `validate:"required_if=StoreKind s3"`
	S3Region       string `validate:"required_if=StoreKind s3"`
	S3BaseEndpoint string `validate:"omitempty,url"`
	S3AccessKey    string
	S3SecretKey    string

	RedisAddr     string `validate:"required_if=StoreKind redis"`
	RedisPassword string
	RedisDB       int    `validate:"gte=0"`
	RedisKey      string `validate:"required_if=StoreKind redis"`

	RateLimit       float64       `validate:"gte=0"`
	RateBurst       int           `validate:"gte=0"`
	ShutdownTimeout time.Duration `validate:"gte=0"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.StoreKind = string(store.KindFile)
	c.FilePath = common.DefaultUsersFile
	c.DatabaseDSN = ""
	c.S3Bucket = "vault"
	c.S3Key = common.DefaultUsersFile
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
	c.S3AccessKey = ""
	c.S3SecretKey = ""
	c.RedisAddr = "localhost:6379"
	c.RedisDB = 0
	c.RedisKey = "securelogin:credentials"
	c.RateLimit = 100
	c.RateBurst = 20
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// StoreOptions translates the config into store.Open options.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		Kind:        store.Kind(c.StoreKind),
		FilePath:    c.FilePath,
		DatabaseDSN: c.DatabaseDSN,
		S3: store.S3Options{
			Bucket:    c.S3Bucket,
			Key:       c.S3Key,
			Region:    c.S3Region,
			Endpoint:  c.S3BaseEndpoint,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
		},
		Redis: store.RedisOptions{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
			Key:      c.RedisKey,
		},
	}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags. args are
// the program arguments without the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
