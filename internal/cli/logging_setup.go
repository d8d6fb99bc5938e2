package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/agentdesk/internal/catalog"
	"github.com/rshade/agentdesk/internal/config"
	"github.com/rshade/agentdesk/internal/logging"
)

// setupLogging configures logging from the loaded config and CLI flags.
// The resulting logger also backs the global config logger and the
// catalog helpers.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := config.InitLogger(loggingCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")
	catalog.SetLogger(result.Logger)

	if result.UsingFile && debug {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.CommandPath()).Msg("command started")
	return result
}

// cleanupLogging closes the log file opened by setupLogging.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult == nil || !logResult.UsingFile {
		return nil
	}
	config.CloseLogFile()
	return nil
}
