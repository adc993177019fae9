package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/securelogin/internal/flagx"
	"github.com/dmitrijs2005/securelogin/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	StoreKind           string         `json:"store"`
	FilePath            string         `json:"file_path"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Keys
// absent from the file keep their current values.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	jc := JsonConfig{
		ServerEndpointAddr:  cfg.ServerEndpointAddr,
		StoreKind:           cfg.StoreKind,
		FilePath:            cfg.FilePath,
		OnlineCheckInterval: timex.Duration{Duration: cfg.OnlineCheckInterval},
		RequestTimeout:      timex.Duration{Duration: cfg.RequestTimeout},
		LogLevel:            cfg.LogLevel,
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.StoreKind = jc.StoreKind
	cfg.FilePath = jc.FilePath
	cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	cfg.RequestTimeout = jc.RequestTimeout.Duration
	cfg.LogLevel = jc.LogLevel
	return nil
}
