package timeline

import (
	"sort"
	"time"
)

// DefaultWindowDays is the trailing window shown on the patterns view.
const DefaultWindowDays = 7

// Day is one non-empty calendar day inside the window.
type Day struct {
	Date    string
	DaysAgo int
	Entries []Entry
}

// RecentDays keeps entries whose Date falls within the trailing window
// relative to ref (day difference in [0, windowDays); today is 0), groups
// them by date and returns the days newest first. Future-dated and
// unparseable dates are excluded. At most windowDays days come back.
func RecentDays(entries []Entry, ref time.Time, windowDays int) []Day {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	refDate := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	grouped := make(map[string][]Entry)
	daysAgo := make(map[string]int)
	for _, e := range entries {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		entryDate := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		diff := int(refDate.Sub(entryDate) / (24 * time.Hour))
		if diff < 0 || diff >= windowDays {
			continue
		}
		grouped[e.Date] = append(grouped[e.Date], e)
		daysAgo[e.Date] = diff
	}

	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	// ISO dates sort lexicographically; newest first
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > windowDays {
		dates = dates[:windowDays]
	}

	days := make([]Day, 0, len(dates))
	for _, date := range dates {
		days = append(days, Day{
			Date:    date,
			DaysAgo: daysAgo[date],
			Entries: grouped[date],
		})
	}
	return days
}
