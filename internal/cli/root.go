package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/agentdesk/internal/config"
	"github.com/rshade/agentdesk/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the agentdesk CLI.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "agentdesk",
		Short: "Contact-center agent desktop tools",
		Long: `agentdesk: pick consult and transfer targets (agents, queues, dial numbers,
entry points) from a directory file, and check call-control inputs.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $AGENTDESK_HOME/config.yaml)")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .agentdesk/ (default: search upward)")
	cmd.AddCommand(
		newPickerCmd(),
		newDirectoryCmd(),
		newDialCmd(),
		newCallCmd(),
		newConfigCmd(),
	)
	return cmd
}

const rootCmdExample = `  # Open the consult/transfer picker
  agentdesk picker

  # Start the picker on queues
  agentdesk picker --category queues

  # List the second page of queues matching "sales"
  agentdesk directory list --category queues --page 2 --search sales

  # Prefetch the first page of every category into the cache
  agentdesk directory warm

  # Check a number before dialing it
  agentdesk dial validate +14155550100

  # Show the call-control buttons for a held call
  agentdesk call buttons --connected --held`

// loadConfig resolves the configuration for this invocation: an explicit
// --config file, or the user config with a project overlay on top.
func loadConfig(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		cfg := config.Default()
		if err := cfg.Load(path); err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
		cfg.ApplyEnv()
		config.SetGlobalConfig(cfg)
		return nil
	}

	projectFlag, _ := cmd.Flags().GetString("project-dir")
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	projectDir := config.ResolveProjectDir(ctx, projectFlag, wd)
	config.SetResolvedProjectDir(projectDir)
	config.SetGlobalConfig(config.NewWithProjectDir(ctx, projectDir))
	return nil
}

// newDialCmd creates the dial command group.
func newDialCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "dial", Short: "Outdial helpers"}
	cmd.AddCommand(newDialValidateCmd())
	return cmd
}

// newCallCmd creates the call command group.
func newCallCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "call", Short: "Call-control helpers"}
	cmd.AddCommand(newCallButtonsCmd(), newCallWrapUpCmd())
	return cmd
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
