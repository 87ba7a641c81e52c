package timeline

import (
	"sort"

	"github.com/michellecaii/Mood-tracker/internal/models"
)

// MinSegmentWidth keeps clustered entries visible. Clamping can make
// neighbors overlap; that is accepted rather than redistributing widths.
const MinSegmentWidth = 8.0

const excerptLen = 50

// neutralColor is used when the emotion is absent or unrecognized.
const neutralColor = "#f1f5f9"

var emotionColors = map[string]string{
	models.EmotionHappy:    "#fef9c3",
	models.EmotionCalm:     "#dbeafe",
	models.EmotionPeaceful: "#d1fae5",
	models.EmotionAnxious:  "#f3e8ff",
	models.EmotionSad:      "#e0e7ff",
	models.EmotionAngry:    "#fee2e2",
}

// EmotionColor maps an emotion label to its display color. Unknown labels
// fall back to neutral instead of being rejected.
func EmotionColor(label string) string {
	if c, ok := emotionColors[label]; ok {
		return c
	}
	return neutralColor
}

// Segment is one slice of a day's 24-hour bar, in [0,100] percentage units.
type Segment struct {
	EntryID uint    `json:"entry_id"`
	Left    float64 `json:"left"`
	Width   float64 `json:"width"`
	Color   string  `json:"color"`
	Time    string  `json:"time"`
	Emotion string  `json:"emotion"`
	Excerpt string  `json:"excerpt"`
}

// DaySegments lays out one segment per entry across the 24-hour axis.
// Entries are sorted earliest-first here; callers need not pre-sort.
// Boundaries sit at the midpoint between neighboring entry times, the first
// segment starts at 0 and the last ends at 100, so absent clamping the
// widths always sum to exactly 100 with no gaps.
func DaySegments(entries []Entry) []Segment {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)

	times := make([]float64, len(sorted))
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseTimestamp(sorted[i].CreatedAt).Before(parseTimestamp(sorted[j].CreatedAt))
	})
	for i, e := range sorted {
		times[i] = timeOfDayPercent(e.CreatedAt)
	}

	segments := make([]Segment, 0, len(sorted))
	for i, e := range sorted {
		var left, width float64
		switch {
		case len(sorted) == 1:
			left, width = 0, 100
		case i == 0:
			left = 0
			width = midpoint(times[0], times[1])
		case i == len(sorted)-1:
			left = midpoint(times[i-1], times[i])
			width = 100 - left
		default:
			left = midpoint(times[i-1], times[i])
			width = midpoint(times[i], times[i+1]) - left
		}

		if width < MinSegmentWidth {
			width = MinSegmentWidth
		}
		if left < 0 {
			left = 0
		}

		segments = append(segments, Segment{
			EntryID: e.ID,
			Left:    left,
			Width:   width,
			Color:   EmotionColor(e.Emotion),
			Time:    parseTimestamp(e.CreatedAt).Format("3:04 PM"),
			Emotion: e.Emotion,
			Excerpt: excerpt(e.Reflection),
		})
	}
	return segments
}

func midpoint(a, b float64) float64 {
	return (a + b) / 2
}

// timeOfDayPercent maps a timestamp's clock time onto [0,100).
// Seconds are ignored; an unparseable timestamp counts as midnight.
func timeOfDayPercent(createdAt string) float64 {
	t := parseTimestamp(createdAt)
	return float64(t.Hour()*60+t.Minute()) / (24 * 60) * 100
}

func excerpt(reflection string) string {
	r := []rune(reflection)
	if len(r) <= excerptLen {
		return reflection
	}
	return string(r[:excerptLen])
}
