package analyzer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// TopLimit is the length of every ranked list.
	TopLimit = 5
	// messageKeyLen is how many runes of a line dedup messages.
	messageKeyLen = 120
	// messageDisplayLen is how many runes of a message key are displayed.
	messageDisplayLen = 80
	ellipsis          = "..."
)

// RankedEntry is a key with its occurrence count.
type RankedEntry struct {
	Key   string
	Count int
}

// FrequencyTable counts keys and remembers the order they were first seen.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Add increments key.
func (t *FrequencyTable) Add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// Count returns the count for key.
func (t *FrequencyTable) Count(key string) int {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// Aggregate counts every key.
func Aggregate(keys []string) *FrequencyTable {
	t := NewFrequencyTable()
	for _, k := range keys {
		t.Add(k)
	}
	return t
}

// TopN returns up to n entries by count descending. Ties keep first-seen order.
func TopN(t *FrequencyTable, n int) []RankedEntry {
	entries := make([]RankedEntry, 0, t.Len())
	for _, k := range t.order {
		entries = append(entries, RankedEntry{Key: k, Count: t.counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// MessageKey returns the dedup key for a line: its first 120 runes, untrimmed.
func MessageKey(line string) string {
	return truncateRunes(line, messageKeyLen)
}

// DisplayMessage shortens a message key for the summary. It keeps the first
// line segment, cuts it to 80 runes and trims it. An ellipsis is appended when
// the key itself is longer than 80 runes.
func DisplayMessage(key string) string {
	first, _, _ := strings.Cut(key, "\n")
	msg := strings.TrimSpace(truncateRunes(first, messageDisplayLen))
	if utf8.RuneCountInString(key) > messageDisplayLen {
		msg += ellipsis
	}
	return msg
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
