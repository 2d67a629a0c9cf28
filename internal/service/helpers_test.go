package service

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bazarly/bazarly-go/internal/config"
	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/store"
	"github.com/bazarly/bazarly-go/internal/transport"
)

// memCreds is an in-memory credential store for service tests.
type memCreds struct{ values map[string]string }

func newMemCreds() *memCreds { return &memCreds{values: map[string]string{}} }

func (m *memCreds) Get(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", store.ErrKeyNotFound
	}
	return v, nil
}

func (m *memCreds) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memCreds) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func newTestServices(t *testing.T, srv *httptest.Server, creds store.CredentialStore) *Services {
	t.Helper()

	client, err := transport.New(config.ClientAPI{BaseURL: srv.URL}, creds, logger.Nop())
	require.NoError(t, err)

	return NewServices(client, logger.Nop())
}
