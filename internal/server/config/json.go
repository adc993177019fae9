package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/securelogin/internal/flagx"
	"github.com/dmitrijs2005/securelogin/internal/timex"
)

// JsonConfig is the on-disk shape of Config. Durations use timex.Duration,
// which accepts both "5s" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	StoreKind        string         `json:"store"`
	FilePath         string         `json:"file_path"`
	DatabaseDSN      string         `json:"database_dsn"`
	S3Bucket         string         `json:"s3_bucket"`
	S3Key            string         `json:"s3_key"`
	S3Region         string         `json:"s3_region"`
	S3BaseEndpoint   string         `json:"s3_base_endpoint"`
	S3AccessKey      string         `json:"s3_access_key"`
	S3SecretKey      string         `json:"s3_secret_key"`
	RedisAddr        string         `json:"redis_addr"`
	RedisPassword    string         `json:"redis_password"`
	RedisDB          int            `json:"redis_db"`
	RedisKey         string         `json:"redis_key"`
	RateLimit        float64        `json:"rate_limit"`
	RateBurst        int            `json:"rate_burst"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
	LogLevel         string         `json:"log_level"`
}

func toJson(c *Config) *JsonConfig {
	return &JsonConfig{
		EndpointAddrGRPC: c.EndpointAddrGRPC,
		StoreKind:        c.StoreKind,
		FilePath:         c.FilePath,
		DatabaseDSN:      c.DatabaseDSN,
		S3Bucket:         c.S3Bucket,
		S3Key:            c.S3Key,
		S3Region:         c.S3Region,
		S3BaseEndpoint:   c.S3BaseEndpoint,
		S3AccessKey:      c.S3AccessKey,
		S3SecretKey:      c.S3SecretKey,
		RedisAddr:        c.RedisAddr,
		RedisPassword:    c.RedisPassword,
		RedisDB:          c.RedisDB,
		RedisKey:         c.RedisKey,
		RateLimit:        c.RateLimit,
		RateBurst:        c.RateBurst,
		ShutdownTimeout:  timex.Duration{Duration: c.ShutdownTimeout},
		LogLevel:         c.LogLevel,
	}
}

// parseJson overlays the JSON file named by -c/-config onto config. Keys
// missing from the file keep their current values. Without the flag nothing
// is loaded.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)

	// nothing to load
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	c := toJson(config)
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.StoreKind = c.StoreKind
	config.FilePath = c.FilePath
	config.DatabaseDSN = c.DatabaseDSN
	config.S3Bucket = c.S3Bucket
	config.S3Key = c.S3Key
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.S3AccessKey = c.S3AccessKey
	config.S3SecretKey = c.S3SecretKey
	config.RedisAddr = c.RedisAddr
	config.RedisPassword = c.RedisPassword
	config.RedisDB = c.RedisDB
	config.RedisKey = c.RedisKey
	config.RateLimit = c.RateLimit
	config.RateBurst = c.RateBurst
	config.ShutdownTimeout = c.ShutdownTimeout.Duration
	config.LogLevel = c.LogLevel
	return nil
}
