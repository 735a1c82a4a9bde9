// Package cmd wires the deeplog subcommands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/olegiv/deeplog/internal/config"
	internalerrors "github.com/olegiv/deeplog/internal/errors"
	"github.com/olegiv/deeplog/internal/logging"
	"github.com/olegiv/deeplog/pkg/logger"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

// app carries state shared by every subcommand.
type app struct {
	stdout    io.Writer
	stderr    io.Writer
	overrides config.Overrides
}

// Execute runs deeplog with the process arguments and returns the exit code.
func Execute(version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, version, os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes args against a fresh command tree.
func Run(ctx context.Context, version string, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(version, stdout, stderr)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "❌ %v\n", internalerrors.SanitizeError(err))
		return exitFailure
	}
	return exitSuccess
}

func newRootCmd(version string, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "deeplog",
		Short: "Capture and analyze operating-system logs",
		Long: `deeplog captures OS log output to a file and summarizes it:
severity counts, the most repeated messages, the busiest processes,
and a terminal bar chart of the rankings.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&a.overrides.LogLevel, "log-level", "l", "", "diagnostic log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.overrides.NoColor, "no-color", false, "disable colored output")

	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newFetchCmd(a))

	return root
}

// setup loads configuration and builds the diagnostic logger.
func (a *app) setup() (*config.Config, *logging.SecureLogger, error) {
	cfg, err := config.Load(&a.overrides)
	if err != nil {
		return nil, nil, err
	}

	log := logging.NewSecure(logger.New(logger.Config{
		Level:   cfg.LogLevel,
		LogDir:  cfg.LogDir,
		Console: true,
		Out:     a.stderr,
	}))
	return cfg, log, nil
}
