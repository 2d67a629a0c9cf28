package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarly/bazarly-go/internal/config"
	"github.com/bazarly/bazarly-go/internal/logger"
)

func TestNewCredentialStore_FileDriver(t *testing.T) {
	cfg := config.ClientStorage{
		Driver: "file",
		Path:   filepath.Join(t.TempDir(), "credentials.json"),
	}

	s, err := NewCredentialStore(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s)

	require.NoError(t, s.Set(context.Background(), KeyAuthToken, "tok"))
	got, err := s.Get(context.Background(), KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", got)
}

func TestNewCredentialStore_UnknownDriver(t *testing.T) {
	cfg := config.ClientStorage{Driver: "redis", Path: "whatever"}

	_, err := NewCredentialStore(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
