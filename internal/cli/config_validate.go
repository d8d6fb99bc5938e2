package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/agentdesk/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the user configuration, the project overlay (if any) and the
directory file they point at.

This includes:
- Config file version (` + config.SupportedVersions + `)
- Picker page size, debounce and initial category
- Directory file syntax`,
		Example: `  # Validate current configuration
  agentdesk config validate

  # Validate and show detailed information
  agentdesk config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate loads each config layer strictly, so errors that
// loading normally skips over are reported.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.Default()

	paths := []string{cfg.Path()}
	if projectDir := config.GetResolvedProjectDir(); projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, "config.yaml"))
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := cfg.Load(path); err != nil {
			return fmt.Errorf("configuration validation failed: %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	dir, err := openDirectory(cfg)
	if err != nil {
		return fmt.Errorf("directory validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		cmd.Println()
		cmd.Println("Configuration details:")
		cmd.Printf("  Version: %s\n", cfg.Version)
		cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
		cmd.Printf("  Page size: %d\n", cfg.Picker.PageSize)
		cmd.Printf("  Debounce: %s\n", cfg.Picker.DebounceDelay())
		cmd.Printf("  Initial category: %s\n", cfg.Picker.Category())
		cmd.Printf("  Cache: %s\n", cfg.Cache)
		cmd.Printf("  Directory: %s\n", directoryPath(cfg))
		cmd.Printf("    Agents: %d, queues: %d, entry points: %d, address book: %d\n",
			len(dir.Agents), len(dir.Queues), len(dir.EntryPoints), len(dir.AddressBook))
		cmd.Printf("    Wrap-up reasons: %d, outdial ANIs: %d\n", len(dir.WrapUpReasons), len(dir.ANIs))
	}

	return nil
}
