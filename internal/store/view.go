package store

import (
	"encoding/json"
	"fmt"

	"github.com/michellecaii/Mood-tracker/internal/models"
)

// Insights is the embedded insight shape the API exposes.
type Insights struct {
	Summary string   `json:"summary"`
	Themes  []string `json:"themes"`
}

// EntryWithInsight is an entry plus its insight, nil when none exists.
type EntryWithInsight struct {
	models.JournalEntry
	Insights *Insights `json:"insights"`
}

// AttachInsights joins each entry with its insight in a single query.
func (s *Store) AttachInsights(entries []models.JournalEntry) ([]EntryWithInsight, error) {
	out := make([]EntryWithInsight, 0, len(entries))
	if len(entries) == 0 {
		return out, nil
	}

	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}

	var insights []models.AIInsight
	if err := s.db.Where("entry_id IN ?", ids).Find(&insights).Error; err != nil {
		return nil, fmt.Errorf("load insights: %w", err)
	}

	byEntry := make(map[uint]*models.AIInsight, len(insights))
	for i := range insights {
		byEntry[insights[i].EntryID] = &insights[i]
	}

	for _, e := range entries {
		item := EntryWithInsight{JournalEntry: e}
		if ins, ok := byEntry[e.ID]; ok {
			item.Insights = &Insights{
				Summary: ins.Summary,
				Themes:  DecodeThemes(ins.Themes),
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// DecodeThemes unpacks the JSON themes column. A corrupt column yields an
// empty list rather than an error.
func DecodeThemes(raw []byte) []string {
	var themes []string
	if err := json.Unmarshal(raw, &themes); err != nil {
		return []string{}
	}
	if len(themes) > MaxThemes {
		themes = themes[:MaxThemes]
	}
	return themes
}
