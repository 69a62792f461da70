package diary

import (
	"errors"
	"testing"
)

func TestParseMood(t *testing.T) {
	got, err := ParseMood("  Happy ")
	if err != nil {
		t.Fatalf("ParseMood: %v", err)
	}
	if got != MoodHappy {
		t.Fatalf("ParseMood = %q, want %q", got, MoodHappy)
	}

	if _, err := ParseMood("grumpy"); !errors.Is(err, ErrUnknownMood) {
		t.Fatalf("ParseMood(grumpy) error = %v, want ErrUnknownMood", err)
	}
}

func TestMoodsHaveEmoji(t *testing.T) {
	for _, mood := range Moods() {
		if mood.Emoji() == "" {
			t.Fatalf("mood %q missing emoji", mood)
		}
	}
	if Mood("grumpy").Valid() {
		t.Fatalf("unexpected valid mood")
	}
}

func TestResolveDecoration(t *testing.T) {
	cases := map[string]string{
		"stars":  "✨",
		"HEARTS": "💖",
		" moons": "🌙",
		"🦄":      "🦄",
		"   ":    "",
	}
	for in, want := range cases {
		if got := ResolveDecoration(in); got != want {
			t.Fatalf("ResolveDecoration(%q) = %q, want %q", in, got, want)
		}
	}
}
