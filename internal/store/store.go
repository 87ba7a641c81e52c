package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/michellecaii/Mood-tracker/internal/models"

	"gorm.io/gorm"
)

// MaxThemes is the hard cap on themes stored per insight.
const MaxThemes = 5

// Store owns all reads and writes of journal entries and their insights.
// Constructed once at startup and handed to whoever needs it.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateEntry inserts a new entry. Date is always the server-side "today";
// it is assigned here and never recomputed from CreatedAt later.
func (s *Store) CreateEntry(emotion, reflection string) (*models.JournalEntry, error) {
	reflection = strings.TrimSpace(reflection)
	if reflection == "" {
		return nil, fmt.Errorf("reflection is empty")
	}

	entry := models.JournalEntry{
		Date:       time.Now().Format("2006-01-02"),
		Emotion:    emotion,
		Reflection: reflection,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return &entry, nil
}

// GetEntryByID returns the entry or gorm.ErrRecordNotFound.
func (s *Store) GetEntryByID(id uint) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetAllEntries returns every entry, newest day first, newest within a day first.
func (s *Store) GetAllEntries() ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := s.db.Order("date DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// GetEntriesByDate returns the entries for one calendar day (YYYY-MM-DD).
func (s *Store) GetEntriesByDate(date string) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := s.db.Where("date = ?", date).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list entries by date: %w", err)
	}
	return entries, nil
}

// GetRecentEntries returns entries whose date is within the last N days,
// today inclusive.
func (s *Store) GetRecentEntries(days int) ([]models.JournalEntry, error) {
	cutoff := time.Now().AddDate(0, 0, -days).Format("2006-01-02")
	var entries []models.JournalEntry
	if err := s.db.Where("date >= ?", cutoff).
		Order("date DESC, created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list recent entries: %w", err)
	}
	return entries, nil
}

// DeleteEntry removes an entry; the insight goes with it via FK cascade.
func (s *Store) DeleteEntry(id uint) error {
	if err := s.db.Delete(&models.JournalEntry{}, id).Error; err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// CreateInsight stores the generated summary and themes for an entry.
// Themes beyond MaxThemes are dropped.
func (s *Store) CreateInsight(entryID uint, summary string, themes []string) (*models.AIInsight, error) {
	if len(themes) > MaxThemes {
		themes = themes[:MaxThemes]
	}
	raw, err := json.Marshal(themes)
	if err != nil {
		return nil, fmt.Errorf("marshal themes: %w", err)
	}

	insight := models.AIInsight{
		EntryID: entryID,
		Summary: summary,
		Themes:  raw,
	}
	if err := s.db.Create(&insight).Error; err != nil {
		return nil, fmt.Errorf("create insight: %w", err)
	}
	return &insight, nil
}

// GetInsightByEntryID returns the entry's insight, or nil if none exists yet.
// Absence is not an error.
func (s *Store) GetInsightByEntryID(entryID uint) (*models.AIInsight, error) {
	var insight models.AIInsight
	err := s.db.Where("entry_id = ?", entryID).First(&insight).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get insight: %w", err)
	}
	return &insight, nil
}
