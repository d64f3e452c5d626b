// Shared helpers for lantern CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/impact-mesh/lantern/pkg/store"
	"github.com/impact-mesh/lantern/pkg/types"
)

// buildConfig assembles the backend config following the flag > config.yaml
// precedence.
func buildConfig() (types.Config, error) {
	backend := flagBackend
	if backend == "" {
		backend = configBackend
	}
	if backend == "" {
		backend = defaultBackend
	}

	dsn := flagDSN
	if dsn == "" {
		dsn = configDSN
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	return types.Config{
		Backend: backend,
		DataDir: dataDir,
		DSN:     dsn,
	}, nil
}

// attachBackend creates and attaches the configured backend. The caller
// must defer backend.Detach().
func attachBackend() (types.Backend, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}

	backend, err := store.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
