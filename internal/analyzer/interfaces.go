// Package analyzer implements the log analysis engine: line splitting,
// process-name extraction, severity classification, frequency ranking and
// the summary record built from them.
package analyzer

// LogReader reads log content from a source path.
// The whole file is read before analysis begins.
type LogReader interface {
	// Read returns the full content of the log at sourcePath.
	// Implementations must fail before reading if the path does not exist.
	Read(sourcePath string) (string, error)

	// GetSourceInfo returns metadata about the log source.
	// Common keys: size_bytes, size_mb, modified, compressed
	GetSourceInfo(sourcePath string) (map[string]interface{}, error)
}

// SplitLines splits raw content on line feeds.
// Nothing is trimmed or dropped: blank lines and the empty segment after a
// trailing newline are returned as lines.
func SplitLines(content string) []string {
	lines := make([]string, 0, 64)
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 1
		}
	}
	return append(lines, content[start:])
}
