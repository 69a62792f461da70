package diary

import (
	"fmt"
	"time"
)

// Entry represents a single mood-tagged record within a diary.
type Entry struct {
	ID            string    `json:"id" yaml:"id"`
	Timestamp     time.Time `json:"timestamp" yaml:"timestamp"`
	Mood          Mood      `json:"mood" yaml:"mood"`
	DecoratedText string    `json:"text" yaml:"text"`
}

// AddResult reports a successful AddEntry call.
type AddResult struct {
	// Ordinal is the 1-based position of the new entry.
	Ordinal int
	Owner   string
	Entry   Entry
}

// Message renders the confirmation shown after an entry is saved.
func (r AddResult) Message() string {
	return fmt.Sprintf("✨ Entry #%d saved in %s's diary!", r.Ordinal, r.Owner)
}
