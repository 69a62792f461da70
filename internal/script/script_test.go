package script

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/faizmokh/diary/internal/diary"
	"github.com/faizmokh/diary/internal/session"
)

var at = time.Date(2025, 11, 21, 8, 15, 0, 0, time.UTC)

func newSession(owner string) *session.Session {
	return session.New(diary.NewWithClock(owner, func() time.Time { return at }), nil)
}

func TestParseValidScript(t *testing.T) {
	s, err := Parse(strings.NewReader(`
owner: Ada
steps:
  - action: UNLOCK
    password: Ada123
  - action: add
    mood: Tired
    text: late night
    decorations: [moons, "", "🦄"]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Owner != "Ada" {
		t.Fatalf("Owner = %q, want Ada", s.Owner)
	}
	if s.Steps[0].Action != ActionUnlock {
		t.Fatalf("action not normalized: %q", s.Steps[0].Action)
	}
	if diff := cmp.Diff([]string{"🌙", "🦄"}, s.Steps[1].Symbols()); diff != "" {
		t.Fatalf("Symbols mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		step  string
	}{
		{name: "empty", input: "", want: ErrNoSteps},
		{name: "no steps", input: "owner: Ada\n", want: ErrNoSteps},
		{name: "unknown action", input: "steps:\n  - action: delete\n", want: ErrUnknownAction, step: "step 1"},
		{name: "missing text", input: "steps:\n  - action: stats\n  - action: add\n    mood: happy\n", want: ErrMissingText, step: "step 2"},
		{name: "bad mood", input: "steps:\n  - action: add\n    mood: grumpy\n    text: hi\n", want: diary.ErrUnknownMood, step: "step 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse error = %v, want %v", err, tt.want)
			}
			if tt.step != "" && !strings.Contains(err.Error(), tt.step) {
				t.Fatalf("error %q missing %q", err, tt.step)
			}
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("steps:\n  - action: stats\n    colour: red\n"))
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestRunDemo(t *testing.T) {
	transcript, err := Run(context.Background(), newSession("Praneetha"), Demo(), diary.MoodHappy)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(transcript.Steps) != 7 {
		t.Fatalf("steps = %d, want 7", len(transcript.Steps))
	}

	first := transcript.Steps[0].Outputs
	if len(first) != 1 || first[0].Text != session.MsgWrongPass {
		t.Fatalf("step 1 outputs = %#v", first)
	}

	added := transcript.Steps[2].Outputs
	if len(added) != 2 {
		t.Fatalf("step 3 outputs = %#v", added)
	}
	entry := added[1].Entries[0]
	if entry.ID != "Praneetha-0" || entry.DecoratedText != "✨ 💖 Hello 💖 ✨" {
		t.Fatalf("unexpected entry: %#v", entry)
	}

	stats := transcript.Steps[3].Outputs[0].Stats
	if stats == nil || stats.Details == nil || *stats.LatestMood != diary.MoodHappy {
		t.Fatalf("unexpected stats: %#v", stats)
	}

	locked := transcript.Steps[5].Outputs
	if len(locked) != 1 || locked[0].Text != session.MsgLocked {
		t.Fatalf("entries after lock = %#v", locked)
	}

	lockedStats := transcript.Steps[6].Outputs[0].Stats
	if lockedStats == nil || lockedStats.Details != nil || lockedStats.TotalEntries != 1 {
		t.Fatalf("locked stats leaked details: %#v", lockedStats)
	}
}

func TestRunUsesDefaultMood(t *testing.T) {
	s := &Script{Steps: []Step{
		{Action: ActionUnlock, Password: "Ada123"},
		{Action: ActionAdd, Text: "no mood given"},
	}}
	transcript, err := Run(context.Background(), newSession("Ada"), s, diary.MoodCoffee)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := transcript.Steps[1].Outputs[1].Entries[0].Mood
	if got != diary.MoodCoffee {
		t.Fatalf("mood = %q, want coffee", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transcript, err := Run(ctx, newSession("Ada"), Demo(), diary.MoodHappy)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if len(transcript.Steps) != 0 {
		t.Fatalf("steps ran after cancel: %d", len(transcript.Steps))
	}
}

func TestRunRejectsUnknownAction(t *testing.T) {
	s := &Script{Steps: []Step{
		{Action: ActionUnlock, Password: "Ada123"},
		{Action: Action("erase")},
	}}

	transcript, err := Run(context.Background(), newSession("Ada"), s, diary.MoodHappy)
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("Run error = %v, want ErrUnknownAction", err)
	}
	if !strings.Contains(err.Error(), "step 2") || !strings.Contains(err.Error(), "erase") {
		t.Fatalf("error lacks step context: %v", err)
	}
	if len(transcript.Steps) != 1 {
		t.Fatalf("steps recorded = %d, want 1", len(transcript.Steps))
	}
}
