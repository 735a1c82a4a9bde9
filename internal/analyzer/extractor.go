package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultProcessPattern matches "process:" followed by a name. The name must
// not start with whitespace, a colon or a quote, and runs until the next quote
// or newline.
const DefaultProcessPattern = `(?i)process:\s*([^\s:"]+[^"\n]*)`

// minProcessNameLen is the shortest accepted process name, in runes.
const minProcessNameLen = 2

// ProcessExtractor pulls a candidate process name out of a log line.
type ProcessExtractor struct {
	re *regexp.Regexp
}

// NewProcessExtractor compiles pattern. The pattern must have exactly one
// capture group holding the process name.
func NewProcessExtractor(pattern string) (*ProcessExtractor, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid process pattern: %w", err)
	}
	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("process pattern must have exactly one capture group (got %d)", re.NumSubexp())
	}
	return &ProcessExtractor{re: re}, nil
}

// MustProcessExtractor is like NewProcessExtractor but panics on error.
func MustProcessExtractor(pattern string) *ProcessExtractor {
	e, err := NewProcessExtractor(pattern)
	if err != nil {
		panic(err)
	}
	return e
}

// Extract returns the normalized process name on the line.
// Only the first match counts. Invalid candidates return false.
func (e *ProcessExtractor) Extract(line string) (string, bool) {
	m := e.re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	name := NormalizeProcessName(m[1])
	if !ValidProcessName(name) {
		return "", false
	}
	return name, true
}

// NormalizeProcessName trims whitespace and unescapes "\/".
func NormalizeProcessName(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), `\/`, "/")
}

// ValidProcessName reports whether name can be counted. Names with '%' or '@'
// are unresolved placeholder tokens.
func ValidProcessName(name string) bool {
	if utf8.RuneCountInString(name) < minProcessNameLen {
		return false
	}
	return !strings.ContainsAny(name, "%@")
}
