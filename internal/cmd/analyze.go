package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/olegiv/deeplog/internal/analyzer"
	"github.com/olegiv/deeplog/internal/config"
	"github.com/olegiv/deeplog/internal/logfile"
	"github.com/olegiv/deeplog/internal/logging"
	"github.com/olegiv/deeplog/internal/report"
)

var styleNotice = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

type analyzeOptions struct {
	saveSummary bool
	highlight   bool
}

func newAnalyzeCmd(a *app) *cobra.Command {
	opts := &analyzeOptions{}

	c := &cobra.Command{
		Use:   "analyze <path>",
		Short: "Analyze a log file for errors, warnings, and insights",
		Long: `Analyze reads a log file and prints the top processes and the
error/warning/info counts as bar charts.

Examples:
  deeplog analyze logs/system.log
  deeplog analyze logs/system.log.gz --save-summary`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, log, err := a.setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Close() }()

			return a.analyze(cfg, log, args[0], opts)
		},
	}

	c.Flags().BoolVarP(&opts.saveSummary, "save-summary", "s", false, "save a .summary.json report next to the log")
	c.Flags().BoolVar(&opts.highlight, "highlight", false, "echo lines containing error, fail, timeout or disconnect")

	return c
}

// analyze runs the engine over logPath and renders the report.
func (a *app) analyze(cfg *config.Config, log *logging.SecureLogger, logPath string, opts *analyzeOptions) error {
	extractor, err := analyzer.NewProcessExtractor(cfg.ProcessPattern)
	if err != nil {
		return err
	}
	engine := analyzer.NewEngine(extractor, analyzer.NewClassifier(analyzer.DefaultSeverityRules(), cfg.HighlightKeywords))

	reader := logfile.NewReader(cfg.MaxLogSizeMB)
	content, err := reader.Read(logPath)
	if err != nil {
		return err
	}

	if info, err := reader.GetSourceInfo(logPath); err == nil {
		log.Debug().
			Str("path", logPath).
			Int64("size_bytes", info["size_bytes"].(int64)).
			Bool("compressed", info["compressed"].(bool)).
			Msg("Log file read")
	}

	summary := engine.Analyze(content)

	log.Info().
		Int("lines", summary.Lines).
		Int("errors", summary.Errors).
		Int("warnings", summary.Warnings).
		Int("infos", summary.Infos).
		Int("processes", len(summary.TopProcesses)).
		Msg("Analysis completed")
	for _, m := range summary.TopMessages {
		log.Debug().Str("msg", m.Msg).Int("count", m.Count).Msg("Top message")
	}

	renderer := report.NewRenderer(a.stdout, cfg.NoColor)
	if err := renderer.Render(summary); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if opts.highlight {
		if err := renderer.RenderHighlights(summary.Highlighted); err != nil {
			return fmt.Errorf("failed to render highlights: %w", err)
		}
	}

	if opts.saveSummary {
		path := report.SummaryPath(logPath)
		if err := report.WriteSummary(path, summary); err != nil {
			log.Error().Err(err).Str("path", path).Msg("Failed to save summary")
			return err
		}
		notice := "📄 Summary saved to " + path
		if !cfg.NoColor {
			notice = styleNotice.Render(notice)
		}
		_, _ = fmt.Fprintf(a.stdout, "\n%s\n", notice)
	}

	_, _ = fmt.Fprintln(a.stdout)
	return nil
}
