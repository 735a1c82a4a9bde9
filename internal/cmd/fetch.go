package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olegiv/deeplog/internal/capture"
	"github.com/olegiv/deeplog/internal/config"
)

type fetchOptions struct {
	last    string
	output  string
	style   string
	gzip    bool
	analyze bool
}

func newFetchCmd(a *app) *cobra.Command {
	opts := &fetchOptions{}

	c := &cobra.Command{
		Use:   "fetch",
		Short: "Capture recent OS logs to a file",
		Long: `Fetch runs the OS log tool ("log show" on macOS) and writes its output
to a file, creating the directory if needed.

Examples:
  deeplog fetch --last 10m --output logs/system.log
  deeplog fetch --last 1h --style json --gzip --analyze`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, log, err := a.setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Close() }()

			last := opts.last
			if last == "" {
				last = cfg.FetchLast
			}
			if err := config.ValidateFetchLast(last); err != nil {
				return err
			}
			style := opts.style
			if style == "" {
				style = cfg.FetchStyle
			}

			log.Info().
				Str("command", cfg.LogCommand).
				Str("last", last).
				Str("style", style).
				Msg("Fetching logs...")

			path, err := capture.Run(c.Context(), capture.Options{
				Command: cfg.LogCommand,
				Last:    last,
				Style:   style,
				Output:  opts.output,
				Gzip:    opts.gzip,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "✅ Logs saved to %s\n", path)

			if !opts.analyze {
				return nil
			}
			// capture.Run has closed the file, so the analysis sees all of it.
			return a.analyze(cfg, log, path, &analyzeOptions{})
		},
	}

	c.Flags().StringVar(&opts.last, "last", "", "time window to fetch, e.g. 10m, 2h, 1d (default from DEEPLOG_FETCH_LAST)")
	c.Flags().StringVarP(&opts.output, "output", "o", "logs/system.log", "output file")
	c.Flags().StringVar(&opts.style, "style", "", "log tool output style, e.g. syslog, json (default from DEEPLOG_FETCH_STYLE)")
	c.Flags().BoolVar(&opts.gzip, "gzip", false, "gzip the output file")
	c.Flags().BoolVar(&opts.analyze, "analyze", false, "analyze the captured file once written")

	return c
}
