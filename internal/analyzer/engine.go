package analyzer

// MessageEntry is a ranked message in the serialized summary.
type MessageEntry struct {
	Msg   string `json:"msg"`
	Count int    `json:"count"`
}

// ProcessEntry is a ranked process name in the serialized summary.
type ProcessEntry struct {
	Proc  string `json:"proc"`
	Count int    `json:"count"`
}

// HighlightedLine is a line carrying at least one highlight keyword.
type HighlightedLine struct {
	Line  string
	Spans []Span
}

// Summary is the result of one analysis run.
type Summary struct {
	Errors       int            `json:"errors"`
	Warnings     int            `json:"warnings"`
	Infos        int            `json:"infos"`
	TopMessages  []MessageEntry `json:"topMessages"`
	TopProcesses []ProcessEntry `json:"topProcesses"`

	// Highlighted is display-only and never affects counts.
	Highlighted []HighlightedLine `json:"-"`
	// Lines is the number of lines scanned, including blank ones.
	Lines int `json:"-"`
}

// Engine runs the analysis pipeline. It is safe to reuse across runs.
type Engine struct {
	extractor  *ProcessExtractor
	classifier *Classifier
}

// NewEngine wires an extractor and a classifier into an engine.
func NewEngine(extractor *ProcessExtractor, classifier *Classifier) *Engine {
	return &Engine{extractor: extractor, classifier: classifier}
}

// NewDefaultEngine uses the default process pattern, rules and keywords.
func NewDefaultEngine() *Engine {
	return NewEngine(MustProcessExtractor(DefaultProcessPattern), NewDefaultClassifier())
}

// Analyze makes a single pass over content and builds the summary.
// Each line adds to at most one severity counter, to at most one process
// count, and to exactly one message count.
func (e *Engine) Analyze(content string) *Summary {
	lines := SplitLines(content)

	processes := NewFrequencyTable()
	messages := NewFrequencyTable()
	s := &Summary{Lines: len(lines)}

	for _, line := range lines {
		if name, ok := e.extractor.Extract(line); ok {
			processes.Add(name)
		}

		switch e.classifier.Classify(line) {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		case SeverityInfo:
			s.Infos++
		}

		if spans := e.classifier.Highlights(line); len(spans) > 0 {
			s.Highlighted = append(s.Highlighted, HighlightedLine{Line: line, Spans: spans})
		}

		messages.Add(MessageKey(line))
	}

	s.TopProcesses = make([]ProcessEntry, 0, TopLimit)
	for _, r := range TopN(processes, TopLimit) {
		s.TopProcesses = append(s.TopProcesses, ProcessEntry{Proc: r.Key, Count: r.Count})
	}
	s.TopMessages = make([]MessageEntry, 0, TopLimit)
	for _, r := range TopN(messages, TopLimit) {
		s.TopMessages = append(s.TopMessages, MessageEntry{Msg: DisplayMessage(r.Key), Count: r.Count})
	}
	return s
}
