package models

import "time"

// Emotion labels offered by the check-in UI. Anything else is tolerated
// on read and rendered with the neutral color.
const (
	EmotionHappy    = "Happy"
	EmotionCalm     = "Calm"
	EmotionPeaceful = "Peaceful"
	EmotionAnxious  = "Anxious"
	EmotionSad      = "Sad"
	EmotionAngry    = "Angry"
)

// JournalEntry is one check-in: an optional emotion plus free-text reflection.
// Date is the logical day of the entry, assigned server-side at write time and
// never recomputed from CreatedAt.
type JournalEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Date       string    `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	Emotion    string    `gorm:"size:32" json:"emotion"`
	Reflection string    `gorm:"type:text;not null" json:"reflection"`
	CreatedAt  time.Time `json:"created_at"`
}
