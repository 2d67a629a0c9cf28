package config

// validate checks the merged [StructuredConfig] before the client view is
// derived from it. All fields are optional at this level; hard requirements
// are enforced on [ClientConfig] after defaults have been applied.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Storage.Driver != "file" && cfg.Storage.Driver != "sqlite" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ProfileRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
