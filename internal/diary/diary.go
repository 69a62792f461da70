// Package diary implements a password-gated, in-memory journal of
// mood-tagged entries.
package diary

import (
	"fmt"
	"time"
)

// LockedMessage is returned by Lock.
const LockedMessage = "🔒 Diary locked!"

// Diary owns the lock state and the entries of one person's journal. It is
// meant to be owned by a single caller and is not safe for concurrent use.
type Diary struct {
	owner        string
	unlocked     bool
	entries      []Entry
	lastModified time.Time
	now          func() time.Time
}

// New creates a locked, empty diary for owner.
func New(owner string) *Diary {
	return NewWithClock(owner, time.Now)
}

// NewWithClock is New with an explicit time source.
func NewWithClock(owner string, now func() time.Time) *Diary {
	if now == nil {
		now = time.Now
	}
	return &Diary{owner: owner, now: now}
}

// Owner returns the name the diary was created for.
func (d *Diary) Owner() string {
	return d.owner
}

// Unlocked reports the current lock state.
func (d *Diary) Unlocked() bool {
	return d.unlocked
}

// Unlock opens the diary when attempt matches "<owner>123" and closes it
// otherwise. It returns the resulting state.
func (d *Diary) Unlock(attempt string) bool {
	d.unlocked = attempt == d.secret()
	return d.unlocked
}

// Lock closes the diary.
func (d *Diary) Lock() string {
	d.unlocked = false
	return LockedMessage
}

// AddEntry decorates text with symbols and appends it as a new entry.
func (d *Diary) AddEntry(mood Mood, text string, symbols []string) (AddResult, error) {
	if !d.unlocked {
		return AddResult{}, ErrLocked
	}

	now := d.now()
	entry := Entry{
		ID:            fmt.Sprintf("%s-%d", d.owner, len(d.entries)),
		Timestamp:     now,
		Mood:          mood,
		DecoratedText: Decorate(text, symbols),
	}
	d.entries = append(d.entries, entry)
	d.lastModified = now

	return AddResult{
		Ordinal: len(d.entries),
		Owner:   d.owner,
		Entry:   entry,
	}, nil
}

// Entries returns a copy of all entries in insertion order.
func (d *Diary) Entries() ([]Entry, error) {
	if !d.unlocked {
		return nil, ErrLocked
	}
	return append([]Entry{}, d.entries...), nil
}

// Stats summarizes the diary. Details are only populated while unlocked.
func (d *Diary) Stats() Stats {
	stats := Stats{
		TotalEntries: len(d.entries),
		IsLocked:     !d.unlocked,
	}
	if !d.unlocked {
		return stats
	}

	details := &Details{HasEntries: len(d.entries) > 0}
	if details.HasEntries {
		lastModified := d.lastModified
		latest := d.entries[len(d.entries)-1].Mood
		details.LastModified = &lastModified
		details.LatestMood = &latest
	}
	stats.Details = details
	return stats
}

func (d *Diary) secret() string {
	return d.owner + "123"
}
