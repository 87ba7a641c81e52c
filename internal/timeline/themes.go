package timeline

import "sort"

// DefaultTopThemes is how many ranked themes the panel shows.
const DefaultTopThemes = 6

// ThemeCount is one ranked theme with its occurrence count.
type ThemeCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TopThemes ranks themes by how often they occur across all entries.
// Matching is exact and case-sensitive; "Work" and "work" are different
// buckets on purpose. Ties keep first-encounter order (stable sort).
// limit <= 0 means DefaultTopThemes.
func TopThemes(entries []Entry, limit int) []ThemeCount {
	if limit <= 0 {
		limit = DefaultTopThemes
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, e := range entries {
		for _, theme := range e.Themes {
			if theme == "" {
				continue
			}
			if _, seen := counts[theme]; !seen {
				order = append(order, theme)
			}
			counts[theme]++
		}
	}

	ranked := make([]ThemeCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, ThemeCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
