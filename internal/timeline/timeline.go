// Package timeline holds the derived-data computations behind the patterns
// views: theme frequency ranking, the trailing-week filter/grouping, and the
// per-day segment layout for the 24-hour bar. Everything here is a pure
// function over snapshots; inputs are never mutated.
package timeline

import "time"

// Entry is a read-only snapshot of one journal entry as the engine sees it.
// Date and CreatedAt arrive as strings straight from storage; parse failures
// are tolerated (see parseTimestamp) so a bad row can never break a render.
type Entry struct {
	ID         uint
	Date       string // YYYY-MM-DD
	Emotion    string
	Reflection string
	CreatedAt  string
	Themes     []string
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05", // sqlite datetime('now')
	"2006-01-02",
}

// parseTimestamp parses a stored timestamp leniently. An unparseable value
// maps to the zero time, i.e. the start of day, so the entry still renders.
func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
