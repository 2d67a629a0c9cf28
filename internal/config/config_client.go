package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when a field is absent from every
// configuration source. The request timeout is deliberately fixed at 30
// seconds unless overridden; the runtime never changes it after start.
const (
	DefaultRequestTimeout         = 30 * time.Second
	DefaultStoreDriver            = "file"
	DefaultStorePath              = "credentials.json"
	DefaultProfileRefreshInterval = 5 * time.Minute
)

// ClientAPI holds the remote endpoint settings used by the transport layer.
type ClientAPI struct {
	// BaseURL is the marketplace API base endpoint.
	BaseURL string
	// RequestTimeout is the fixed timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the credential store backend settings.
type ClientStorage struct {
	// Driver selects the backend implementation: "file" or "sqlite".
	Driver string
	// Path is the JSON file path (file driver) or SQLite DSN (sqlite driver).
	Path string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ProfileRefreshInterval defines how often the session refresh job runs.
	ProfileRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig]. It is read once at process start and never mutated
// afterwards.
type ClientConfig struct {
	// API contains the remote endpoint settings.
	API ClientAPI
	// Storage contains credential store settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the merged
// structured configuration, applying defaults for absent fields.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		API: ClientAPI{
			BaseURL:        cfg.API.BaseURL,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Storage: ClientStorage{
			Driver: cfg.Storage.Driver,
			Path:   cfg.Storage.Path,
		},
		Workers: ClientWorkers{
			ProfileRefreshInterval: cfg.Workers.ProfileRefreshInterval,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.API.RequestTimeout <= 0 {
		cfg.API.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DefaultStoreDriver
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultStorePath
	}
	if cfg.Workers.ProfileRefreshInterval <= 0 {
		cfg.Workers.ProfileRefreshInterval = DefaultProfileRefreshInterval
	}
}
