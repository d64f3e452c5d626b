// Root command for the lantern CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/impact-mesh/lantern/internal/paths"
	"github.com/impact-mesh/lantern/pkg/lantern"
	"github.com/impact-mesh/lantern/pkg/types"
)

// Exit codes.
const (
	exitUserError = 1
	exitSysError  = 2
)

// userErrors are the validation sentinels that mean the caller got the
// request wrong, as opposed to the system failing to serve it.
var userErrors = []error{
	types.ErrInvalidID,
	types.ErrEmptyBatch,
	types.ErrInvalidData,
	types.ErrInvalidFilter,
	types.ErrInvalidEntityKind,
	types.ErrBackendEmpty,
	types.ErrBackendUnknown,
	types.ErrDSNEmpty,
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	for _, sentinel := range userErrors {
		if errors.Is(err, sentinel) {
			return exitUserError
		}
	}
	return exitSysError
}

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
	flagDSN       string
	flagJSON      bool
)

// Config values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir string
	configBackend string
	configDSN     string
)

var rootCmd = &cobra.Command{
	Use:     "lantern",
	Short:   "Lantern attaches catalog indicators and evidence to projects",
	Version: lantern.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configBackend = cfg.GetString(cfgKeyBackend)
		configDSN = cfg.GetString(cfgKeyDSN)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.lantern-db)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite or postgres (default: sqlite)")
	rootCmd.PersistentFlags().StringVar(&flagDSN, "dsn", "", "postgres connection string (postgres backend only)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(attachCmd)
	rootCmd.AddCommand(evidenceCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > LANTERN_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > LANTERN_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
