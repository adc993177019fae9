package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/securelogin/internal/common"
	"github.com/dmitrijs2005/securelogin/internal/store"
)

// Config holds runtime settings for the SecureLogin CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the account server. Empty means local mode.
//   - StoreKind / FilePath: the credential store used in local mode.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - RequestTimeout: upper bound for a single remote call.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr  string        `validate:"omitempty,hostname_port"`
	StoreKind           string        `validate:"oneof=file memory"`
	FilePath            string        `validate:"required_if=StoreKind file"`
	OnlineCheckInterval time.Duration `validate:"gt=0"`
	RequestTimeout      time.Duration `validate:"gt=0"`
	LogLevel            string        `validate:"oneof=debug info warn error"`
}

// LoadDefaults populates c with local-mode defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = ""
	c.StoreKind = string(store.KindFile)
	c.FilePath = common.DefaultUsersFile
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
}

// Remote reports whether the CLI talks to an account server.
func (c *Config) Remote() bool {
	return c.ServerEndpointAddr != ""
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// StoreOptions describes the local store.
func (c *Config) StoreOptions() store.Options {
	return store.Options{Kind: store.Kind(c.StoreKind), FilePath: c.FilePath}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
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
