package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		API: ClientAPI{
			BaseURL:        "https://api.example.test",
			RequestTimeout: 30 * time.Second,
		},
		Storage: ClientStorage{Driver: "file", Path: "creds.json"},
		Workers: ClientWorkers{ProfileRefreshInterval: 5 * time.Minute},
	}
}

func TestClientConfig_Validate_OK(t *testing.T) {
	require.NoError(t, validClientConfig().validate())
}

func TestClientConfig_Validate_MissingBaseURL(t *testing.T) {
	cfg := validClientConfig()
	cfg.API.BaseURL = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAPIConfigs)
}

func TestClientConfig_Validate_UnknownDriver(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.Driver = "redis"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestClientConfig_Validate_EmptyStorePath(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.Path = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestClientConfig_Validate_ZeroRefreshInterval(t *testing.T) {
	cfg := validClientConfig()
	cfg.Workers.ProfileRefreshInterval = 0

	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{API: ClientAPI{BaseURL: "https://api.example.test"}}
	cfg.applyDefaults()

	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
	assert.Equal(t, DefaultStoreDriver, cfg.Storage.Driver)
	assert.Equal(t, DefaultStorePath, cfg.Storage.Path)
	assert.Equal(t, DefaultProfileRefreshInterval, cfg.Workers.ProfileRefreshInterval)
}

func TestClientConfig_DefaultsDoNotOverrideExplicitValues(t *testing.T) {
	cfg := validClientConfig()
	cfg.API.RequestTimeout = time.Minute
	cfg.applyDefaults()

	assert.Equal(t, time.Minute, cfg.API.RequestTimeout)
	assert.Equal(t, "file", cfg.Storage.Driver)
}
