package models

import (
	"time"

	"gorm.io/datatypes"
)

// AIInsight holds the generated summary and themes for one entry.
// Themes is a JSON array of at most 5 short strings. Written once right
// after the entry is created, never updated.
type AIInsight struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	EntryID   uint           `gorm:"uniqueIndex;not null" json:"entry_id"`
	Summary   string         `gorm:"type:text;not null" json:"summary"`
	Themes    datatypes.JSON `gorm:"not null" json:"themes"`
	CreatedAt time.Time      `json:"created_at"`

	Entry JournalEntry `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
