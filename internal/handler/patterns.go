package handler

import (
	"log"
	"time"

	"github.com/michellecaii/Mood-tracker/internal/models"
	"github.com/michellecaii/Mood-tracker/internal/store"
	"github.com/michellecaii/Mood-tracker/internal/timeline"
	"github.com/michellecaii/Mood-tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// PatternsHandler serves the derived views: ranked themes and the trailing
// 7-day emotional-patterns timeline. A failed fetch degrades to empty data
// rather than an error; these views must always render.
type PatternsHandler struct {
	Store      *store.Store
	RecentDays int
	TopThemes  int
}

func NewPatternsHandler(s *store.Store, recentDays, topThemes int) *PatternsHandler {
	if recentDays <= 0 {
		recentDays = timeline.DefaultWindowDays
	}
	if topThemes <= 0 {
		topThemes = timeline.DefaultTopThemes
	}
	return &PatternsHandler{
		Store:      s,
		RecentDays: recentDays,
		TopThemes:  topThemes,
	}
}

// GetThemes returns the most frequent themes across all entries.
func (h *PatternsHandler) GetThemes(c *gin.Context) {
	entries := h.snapshot(h.Store.GetAllEntries)

	util.Success(c, util.Response{
		"themes": timeline.TopThemes(entries, h.TopThemes),
	})
}

type patternDay struct {
	Date     string             `json:"date"`
	DaysAgo  int                `json:"days_ago"`
	Segments []timeline.Segment `json:"segments"`
}

// GetPatterns returns one row per recent day, each holding the ordered
// non-overlapping segments for that day's 24-hour bar.
func (h *PatternsHandler) GetPatterns(c *gin.Context) {
	entries := h.snapshot(func() ([]models.JournalEntry, error) {
		return h.Store.GetRecentEntries(h.RecentDays)
	})

	days := timeline.RecentDays(entries, time.Now(), h.RecentDays)
	out := make([]patternDay, 0, len(days))
	for _, day := range days {
		out = append(out, patternDay{
			Date:     day.Date,
			DaysAgo:  day.DaysAgo,
			Segments: timeline.DaySegments(day.Entries),
		})
	}

	util.Success(c, util.Response{
		"days": out,
	})
}

// snapshot fetches entries with their insights for a derived view,
// degrading to an empty collection when storage misbehaves.
func (h *PatternsHandler) snapshot(fetch func() ([]models.JournalEntry, error)) []timeline.Entry {
	raw, err := fetch()
	if err != nil {
		log.Printf("patterns: fetch entries failed, rendering empty view: %v", err)
		return nil
	}
	items, err := h.Store.AttachInsights(raw)
	if err != nil {
		log.Printf("patterns: attach insights failed, rendering empty view: %v", err)
		return nil
	}
	return toTimelineEntries(items)
}

func toTimelineEntries(items []store.EntryWithInsight) []timeline.Entry {
	out := make([]timeline.Entry, 0, len(items))
	for _, it := range items {
		e := timeline.Entry{
			ID:         it.ID,
			Date:       it.Date,
			Emotion:    it.Emotion,
			Reflection: it.Reflection,
			CreatedAt:  it.CreatedAt.Format(time.RFC3339),
		}
		if it.Insights != nil {
			e.Themes = it.Insights.Themes
		}
		out = append(out, e)
	}
	return out
}
