// Command agentdesk is the contact-center agent desktop CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/agentdesk/internal/cli"
	"github.com/rshade/agentdesk/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
