package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/securelogin/internal/logging"
)

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "users.json"), nil)

	creds, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, creds)
	assert.NotNil(t, creds)
}

func TestFileStore_EmptyFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o600))

	creds, err := NewFileStore(path, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestFileStore_CorruptFileIsEmptyAndLogged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"alice": `), 0o600))

	var buf bytes.Buffer
	s := NewFileStore(path, logging.New(&buf, "info", logging.FormatText))

	creds, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, creds)
	assert.Contains(t, buf.String(), "corrupt")
}

func TestFileStore_ReadErrorIsReturned(t *testing.T) {
	// a directory cannot be read as a file
	s := NewFileStore(t.TempDir(), nil)

	_, err := s.Load(context.Background())
	require.Error(t, err)
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "users.json")
	s := NewFileStore(path, nil)
	assert.Equal(t, path, s.Path())

	want := Credentials{"alice": "Aa1!aaaa", "bob_1": "Bb2@bbbb"}
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n    \"alice\": \"Aa1!aaaa\"")

	require.NoError(t, s.Save(ctx, Credentials{}))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, s.Close())
}
