package analyzer

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewDefaultClassifier()

	tests := []struct {
		line string
		want Severity
	}{
		{"2024-01-01 ERROR disk full", SeverityError},
		{"error and warning together", SeverityError},
		{"Warning: info follows", SeverityWarning},
		{"WARN low battery", SeverityWarning},
		{"information only", SeverityInfo},
		{"INFO started", SeverityInfo},
		{"failed to connect", SeverityNone},
		{"", SeverityNone},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := c.Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestClassify_RuleOrderDecides(t *testing.T) {
	reversed := []SeverityRule{
		{Substring: "INFO", Severity: SeverityInfo},
		{Substring: "warn", Severity: SeverityWarning},
		{Substring: "error", Severity: SeverityError},
	}
	c := NewClassifier(reversed, nil)

	if got := c.Classify("error info"); got != SeverityInfo {
		t.Errorf("Expected first rule to win, got %v", got)
	}
	if got := c.Classify("error warn"); got != SeverityWarning {
		t.Errorf("Expected warning, got %v", got)
	}
}

func TestClassify_EmptySubstringIgnored(t *testing.T) {
	c := NewClassifier([]SeverityRule{{Substring: "", Severity: SeverityError}}, nil)

	if got := c.Classify("anything"); got != SeverityNone {
		t.Errorf("Expected empty rule to be skipped, got %v", got)
	}
}

func TestHighlights(t *testing.T) {
	c := NewDefaultClassifier()

	tests := []struct {
		name string
		line string
		want []Span
	}{
		{
			name: "error and fail",
			line: "ERROR: mount failed",
			want: []Span{{Start: 0, End: 5}, {Start: 13, End: 17}},
		},
		{
			name: "timeout",
			line: "WARN timeout occurred",
			want: []Span{{Start: 5, End: 12}},
		},
		{
			name: "disconnect mixed case",
			line: "peer DisConnected",
			want: []Span{{Start: 5, End: 15}},
		},
		{
			name: "no keywords",
			line: "INFO started",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Highlights(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Highlights(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestHighlights_DoNotAffectClassification(t *testing.T) {
	c := NewDefaultClassifier()

	line := "connection timeout, disconnect"
	if len(c.Highlights(line)) != 2 {
		t.Errorf("Expected 2 highlights")
	}
	if got := c.Classify(line); got != SeverityNone {
		t.Errorf("Expected no severity, got %v", got)
	}
}

func TestHighlights_Disabled(t *testing.T) {
	c := NewClassifier(DefaultSeverityRules(), []string{" ", ""})

	if got := c.Highlights("error"); got != nil {
		t.Errorf("Expected no highlights, got %v", got)
	}
}

func TestHighlights_KeywordsAreLiteral(t *testing.T) {
	c := NewClassifier(nil, []string{"a.b"})

	if got := c.Highlights("axb"); got != nil {
		t.Errorf("Expected keyword to be matched literally, got %v", got)
	}
	if got := c.Highlights("a.b"); len(got) != 1 {
		t.Errorf("Expected one highlight, got %v", got)
	}
}

func TestSeverityString(t *testing.T) {
	tests := map[Severity]string{
		SeverityNone:    "none",
		SeverityError:   "error",
		SeverityWarning: "warning",
		SeverityInfo:    "info",
	}
	for sev, want := range tests {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(sev), got, want)
		}
	}
}
