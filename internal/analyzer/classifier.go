package analyzer

import (
	"regexp"
	"strings"
)

// Severity is the bucket a line is counted under.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityError
	SeverityWarning
	SeverityInfo
)

// String returns the lowercase bucket name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "none"
	}
}

// SeverityRule assigns Severity to lines containing Substring (case-insensitive).
type SeverityRule struct {
	Substring string
	Severity  Severity
}

// DefaultSeverityRules returns the rules in priority order: error, warn, info.
func DefaultSeverityRules() []SeverityRule {
	return []SeverityRule{
		{Substring: "error", Severity: SeverityError},
		{Substring: "warn", Severity: SeverityWarning},
		{Substring: "info", Severity: SeverityInfo},
	}
}

// DefaultHighlightKeywords are emphasized when lines are echoed.
var DefaultHighlightKeywords = []string{"error", "fail", "timeout", "disconnect"}

// Span is a byte range [Start, End) within a line.
type Span struct {
	Start int
	End   int
}

// Classifier buckets lines by severity and finds highlight keywords.
// It holds no mutable state after construction.
type Classifier struct {
	rules     []SeverityRule
	highlight *regexp.Regexp
}

// NewClassifier builds a classifier. Rules are evaluated in the given order
// and the first match wins. An empty keyword list disables highlighting.
func NewClassifier(rules []SeverityRule, highlightKeywords []string) *Classifier {
	c := &Classifier{rules: make([]SeverityRule, 0, len(rules))}
	for _, r := range rules {
		if r.Substring == "" {
			continue
		}
		c.rules = append(c.rules, SeverityRule{Substring: strings.ToLower(r.Substring), Severity: r.Severity})
	}

	var quoted []string
	for _, k := range highlightKeywords {
		if k = strings.TrimSpace(k); k != "" {
			quoted = append(quoted, regexp.QuoteMeta(k))
		}
	}
	if len(quoted) > 0 {
		c.highlight = regexp.MustCompile(`(?i)` + strings.Join(quoted, "|"))
	}
	return c
}

// NewDefaultClassifier uses DefaultSeverityRules and DefaultHighlightKeywords.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultSeverityRules(), DefaultHighlightKeywords)
}

// Classify returns the severity of the first rule whose substring the line
// contains, or SeverityNone.
func (c *Classifier) Classify(line string) Severity {
	lower := strings.ToLower(line)
	for _, r := range c.rules {
		if strings.Contains(lower, r.Substring) {
			return r.Severity
		}
	}
	return SeverityNone
}

// Highlights returns every highlight keyword occurrence on the line.
func (c *Classifier) Highlights(line string) []Span {
	if c.highlight == nil {
		return nil
	}
	idx := c.highlight.FindAllStringIndex(line, -1)
	if len(idx) == 0 {
		return nil
	}
	spans := make([]Span, len(idx))
	for i, m := range idx {
		spans[i] = Span{Start: m[0], End: m[1]}
	}
	return spans
}
