package server

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/securelogin/internal/server/config"
	"github.com/dmitrijs2005/securelogin/internal/store"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrGRPC = "127.0.0.1:0"
	cfg.FilePath = filepath.Join(t.TempDir(), "users.json")
	cfg.LogLevel = "error"
	return cfg
}

func TestNewApp_UnknownStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.StoreKind = "tape"

	_, err := NewApp(context.Background(), cfg)
	require.ErrorIs(t, err, store.ErrUnknownStoreKind)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestApp_RunFailsOnBusyAddress(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	cfg := testConfig(t)
	cfg.EndpointAddrGRPC = lis.Addr().String()

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	require.Error(t, app.Run(context.Background()))
}
