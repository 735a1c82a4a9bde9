// Package report renders analysis summaries as terminal bar charts and
// persists them as JSON.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/olegiv/deeplog/internal/analyzer"
)

const (
	severityBarWidth   = 25
	processBarWidth    = 20
	severityLabelWidth = 12
	processLabelWidth  = 30
	barFill            = "█"
)

var (
	styleHeader    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	styleLevels    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	styleError     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleWarn      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleInfo      = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true) // bright red

	// processStyles rotate by rank.
	processStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")), // gray
	}
)

// Renderer writes summaries to a terminal.
type Renderer struct {
	w       io.Writer
	noColor bool
}

// NewRenderer returns a Renderer writing to w. With noColor set, output
// carries no ANSI escapes.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	return &Renderer{w: w, noColor: noColor}
}

// Render writes the top-processes section (when there are any), then the
// header and the three severity bars.
func (r *Renderer) Render(s *analyzer.Summary) error {
	var b strings.Builder

	if len(s.TopProcesses) > 0 {
		b.WriteString("\n" + r.style(styleHeader, "🧠 Top Processes:") + "\n")
		maxCount := s.TopProcesses[0].Count
		for i, p := range s.TopProcesses {
			b.WriteString(r.processLine(p.Proc, p.Count, maxCount, processStyles[i%len(processStyles)]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + r.style(styleHeader, "🔍 Analyzing logs...") + "\n\n")

	b.WriteString("\n" + r.style(styleLevels, "📊 Log Levels:") + "\n")
	maxCount := max(s.Errors, s.Warnings, s.Infos)
	b.WriteString(r.severityLine("Errors:", s.Errors, maxCount, styleError) + "\n")
	b.WriteString(r.severityLine("Warnings:", s.Warnings, maxCount, styleWarn) + "\n")
	b.WriteString(r.severityLine("Info:", s.Infos, maxCount, styleInfo) + "\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

// RenderHighlights echoes lines with highlight keywords emphasized.
func (r *Renderer) RenderHighlights(lines []analyzer.HighlightedLine) error {
	if len(lines) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("\n" + r.style(styleHeader, "🚨 Highlighted lines:") + "\n")
	for _, l := range lines {
		b.WriteString("  " + r.Highlight(l.Line, l.Spans) + "\n")
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Highlight emphasizes each span of line.
func (r *Renderer) Highlight(line string, spans []analyzer.Span) string {
	var b strings.Builder
	pos := 0
	for _, sp := range spans {
		if sp.Start < pos || sp.End > len(line) || sp.Start >= sp.End {
			continue
		}
		b.WriteString(line[pos:sp.Start])
		b.WriteString(r.style(styleHighlight, line[sp.Start:sp.End]))
		pos = sp.End
	}
	b.WriteString(line[pos:])
	return b.String()
}

func (r *Renderer) severityLine(label string, count, maxCount int, st lipgloss.Style) string {
	bar := r.style(st, Bar(count, maxCount, severityBarWidth))
	return fmt.Sprintf("%-*s %s %4d", severityLabelWidth, label, bar, count)
}

func (r *Renderer) processLine(name string, count, maxCount int, st lipgloss.Style) string {
	bar := r.style(st, Bar(count, maxCount, processBarWidth))
	return fmt.Sprintf("  %s %s %4d", FormatProcessName(name, processLabelWidth), bar, count)
}

func (r *Renderer) style(st lipgloss.Style, s string) string {
	if r.noColor {
		return s
	}
	return st.Render(s)
}

// FilledLength is round(count/maxCount*width). A zero maxCount yields 0.
func FilledLength(count, maxCount, width int) int {
	if maxCount <= 0 || count <= 0 {
		return 0
	}
	n := int(math.Round(float64(count) / float64(maxCount) * float64(width)))
	return min(n, width)
}

// Bar returns a bar of exactly width cells, filled proportionally.
func Bar(count, maxCount, width int) string {
	filled := FilledLength(count, maxCount, width)
	return strings.Repeat(barFill, filled) + strings.Repeat(" ", width-filled)
}

// FormatProcessName pads name to width, or cuts it with an ellipsis.
func FormatProcessName(name string, width int) string {
	n := utf8.RuneCountInString(name)
	if n <= width {
		return name + strings.Repeat(" ", width-n)
	}
	runes := []rune(name)
	return string(runes[:width-3]) + "..."
}
