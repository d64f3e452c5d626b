// Package store provides the public factory for storage backends, keeping
// implementation details internal.
package store

import (
	"github.com/impact-mesh/lantern/internal/postgres"
	"github.com/impact-mesh/lantern/internal/sqlite"
	"github.com/impact-mesh/lantern/pkg/types"
)

// New creates the backend named by config.Backend. The backend is not
// attached; call Attach with the same Config to initialize.
//
// Example:
//
//	backend, err := store.New(cfg)
//	if err != nil { ... }
//	if err := backend.Attach(cfg); err != nil { ... }
//	defer backend.Detach()
func New(config types.Config) (types.Backend, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Backend {
	case types.BackendSQLite:
		return sqlite.NewBackend(), nil
	case types.BackendPostgres:
		return postgres.NewBackend(), nil
	default:
		return nil, types.ErrBackendUnknown
	}
}
