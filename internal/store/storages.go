package store

import (
	"context"
	"fmt"

	"github.com/bazarly/bazarly-go/internal/config"
	"github.com/bazarly/bazarly-go/internal/logger"
)

// NewCredentialStore constructs the credential store backend selected by
// cfg.Driver:
//
//   - "file"   stores credentials as a JSON document at cfg.Path;
//   - "sqlite" stores credentials in a local SQLite database at cfg.Path,
//     creating the file and running migrations on first use.
//
// Any other driver value yields ErrUnknownDriver.
func NewCredentialStore(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (CredentialStore, error) {
	log.Info().Str("driver", cfg.Driver).Str("path", cfg.Path).Msg("creating credential store...")

	switch cfg.Driver {
	case "file":
		return NewFileStore(cfg.Path, log)
	case "sqlite":
		return NewSQLiteStore(ctx, cfg.Path, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
