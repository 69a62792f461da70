package diary

import "time"

// Stats is the summary record returned by Diary.Stats. The embedded Details
// pointer is nil while the diary is locked, so encoding/json omits those
// fields. Use Fields for other encoders. Reading HasEntries, LastModified or
// LatestMood on a locked record dereferences a nil Details, so check
// Details != nil (or Unlocked) first.
type Stats struct {
	TotalEntries int  `json:"totalEntries"`
	IsLocked     bool `json:"isLocked"`
	*Details
}

// Unlocked reports whether the record carries the unlocked-only details.
func (s Stats) Unlocked() bool {
	return s.Details != nil
}

// Details holds the fields only exposed on an unlocked diary.
type Details struct {
	LastModified *time.Time `json:"lastModified"`
	HasEntries   bool       `json:"hasEntries"`
	LatestMood   *Mood      `json:"latestMood"`
}

// Fields flattens the stats into a map keyed by the JSON field names.
func (s Stats) Fields() map[string]any {
	fields := map[string]any{
		"totalEntries": s.TotalEntries,
		"isLocked":     s.IsLocked,
	}
	if s.Details == nil {
		return fields
	}

	fields["hasEntries"] = s.HasEntries
	if s.LastModified != nil {
		fields["lastModified"] = *s.LastModified
	} else {
		fields["lastModified"] = nil
	}
	if s.LatestMood != nil {
		fields["latestMood"] = string(*s.LatestMood)
	} else {
		fields["latestMood"] = nil
	}
	return fields
}
