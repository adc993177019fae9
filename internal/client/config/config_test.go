package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/securelogin/internal/store"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Empty(t, c.ServerEndpointAddr)
	assert.False(t, c.Remote())
	assert.Equal(t, "file", c.StoreKind)
	assert.Equal(t, "users.json", c.FilePath)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	require.NoError(t, c.Validate())
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, store.Options{Kind: store.KindFile, FilePath: "users.json"}, cfg.StoreOptions())

	cfg, err = LoadConfig([]string{"-a", "127.0.0.1:50051", "-x"})
	require.NoError(t, err)
	assert.True(t, cfg.Remote())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"remote", func(c *Config) { c.ServerEndpointAddr = "localhost:50051" }, false},
		{"remote without port", func(c *Config) { c.ServerEndpointAddr = "localhost" }, true},
		{"postgres is server-only", func(c *Config) { c.StoreKind = "postgres" }, true},
		{"file without path", func(c *Config) { c.FilePath = "" }, true},
		{"memory without path", func(c *Config) { c.StoreKind = "memory"; c.FilePath = "" }, false},
		{"zero interval", func(c *Config) { c.OnlineCheckInterval = 0 }, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}
