package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-base-url marketplace API base endpoint
//	-request-timeout per-request timeout (e.g., "30s", "1m")
//	-store-driver credential store backend ("file" or "sqlite")
//	-store-path credential store file path or SQLite DSN
//	-refresh-interval profile refresh job interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var requestTimeout time.Duration
	var storeDriver string
	var storePath string
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "base-url", "", "Marketplace API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&storeDriver, "store-driver", "", "Credential store driver (file|sqlite)")
	flag.StringVar(&storePath, "store-path", "", "Credential store path or DSN")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Profile refresh interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Driver: storeDriver,
			Path:   storePath,
		},
		Workers: Workers{
			ProfileRefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
