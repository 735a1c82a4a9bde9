package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olegiv/deeplog/internal/analyzer"
)

// summarySuffix is appended to the log file name.
const summarySuffix = ".summary.json"

// SummaryPath returns where the summary of logPath is written: alongside the
// log, named <log file name>.summary.json.
func SummaryPath(logPath string) string {
	return filepath.Join(filepath.Dir(logPath), filepath.Base(logPath)+summarySuffix)
}

// WriteSummary writes s to path as indented JSON.
func WriteSummary(path string, s *analyzer.Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// ReadSummary loads a summary written by WriteSummary.
func ReadSummary(path string) (*analyzer.Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary: %w", err)
	}

	var s analyzer.Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse summary: %w", err)
	}
	return &s, nil
}
