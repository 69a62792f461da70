// Package session drives a diary on behalf of an interactive or scripted
// caller and keeps the log of messages shown to the user.
package session

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/faizmokh/diary/internal/diary"
)

// Session pairs a diary with its output log.
type Session struct {
	diary  *diary.Diary
	logger *slog.Logger
	output []Output
}

// New wraps d. A nil logger discards records.
func New(d *diary.Diary, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		diary:  d,
		logger: logger.With(slog.String("owner", d.Owner())),
	}
}

// Owner returns the diary owner.
func (s *Session) Owner() string {
	return s.diary.Owner()
}

// Locked reports whether the diary is currently locked.
func (s *Session) Locked() bool {
	return !s.diary.Unlocked()
}

// Output returns a copy of the current log.
func (s *Session) Output() []Output {
	return append([]Output(nil), s.output...)
}

// Clear empties the log.
func (s *Session) Clear() {
	s.output = nil
}

// Unlock tries password. A rejected attempt appends an error; a successful
// one replaces the log with a greeting and the current entries.
func (s *Session) Unlock(password string) []Output {
	if !s.diary.Unlock(password) {
		s.logger.Warn("unlock attempt rejected")
		s.dropPrivate()
		return s.appendOutput(Output{Kind: KindError, Text: MsgWrongPass})
	}

	s.logger.Info("diary unlocked")
	entries, err := s.diary.Entries()
	if err != nil {
		return s.lockedOutput(err, "list entries")
	}
	return s.replaceOutput(
		Output{Kind: KindSuccess, Text: MsgUnlocked},
		Output{Kind: KindSuccess, Text: MsgEntriesTitle, Entries: entries},
	)
}

// Lock closes the diary, removes listings and unlocked stats from the log,
// and appends the confirmation.
func (s *Session) Lock() []Output {
	msg := s.diary.Lock()
	s.logger.Info("diary locked")
	s.dropPrivate()
	return s.appendOutput(Output{Kind: KindSuccess, Text: msg})
}

// Add records an entry. Whitespace-only text is ignored and reports false.
func (s *Session) Add(mood diary.Mood, text string, symbols []string) ([]Output, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	res, err := s.diary.AddEntry(mood, text, symbols)
	if err != nil {
		return s.lockedOutput(err, "add entry"), false
	}
	s.logger.Info("entry added",
		slog.String("id", res.Entry.ID),
		slog.String("mood", string(mood)),
		slog.Int("decorations", len(symbols)),
	)

	entries, err := s.diary.Entries()
	if err != nil {
		return s.lockedOutput(err, "list entries"), false
	}
	return s.replaceOutput(
		Output{Kind: KindSuccess, Text: res.Message()},
		Output{Kind: KindSuccess, Text: MsgEntriesTitle, Entries: entries},
	), true
}

// ShowEntries replaces the log with the entry listing, or appends the locked
// error.
func (s *Session) ShowEntries() []Output {
	entries, err := s.diary.Entries()
	if err != nil {
		return s.lockedOutput(err, "list entries")
	}
	s.logger.Debug("entries listed", slog.Int("count", len(entries)))
	return s.replaceOutput(Output{Kind: KindSuccess, Text: MsgEntriesTitle, Entries: entries})
}

// ShowStats replaces the log with the stats report.
func (s *Session) ShowStats() []Output {
	stats := s.diary.Stats()
	s.logger.Debug("stats requested", slog.Bool("locked", stats.IsLocked))
	return s.replaceOutput(Output{Kind: KindInfo, Text: MsgStatsTitle, Stats: &stats})
}

func (s *Session) lockedOutput(err error, op string) []Output {
	if !errors.Is(err, diary.ErrLocked) {
		// diary only fails with ErrLocked; surface anything else verbatim.
		s.logger.Error(op+" failed", slog.Any("error", err))
		return s.appendOutput(Output{Kind: KindError, Text: err.Error()})
	}
	s.logger.Warn(op+" refused while locked")
	return s.appendOutput(Output{Kind: KindError, Text: MsgLocked})
}

func (s *Session) dropPrivate() {
	kept := s.output[:0:0]
	for _, out := range s.output {
		if !out.Private() {
			kept = append(kept, out)
		}
	}
	s.output = kept
}

func (s *Session) appendOutput(out ...Output) []Output {
	s.output = append(s.output, out...)
	return out
}

func (s *Session) replaceOutput(out ...Output) []Output {
	s.output = append([]Output(nil), out...)
	return out
}
