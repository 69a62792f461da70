package diary

import (
	"fmt"
	"strings"
)

// Mood tags an entry with how the author felt.
type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodExcited    Mood = "excited"
	MoodThoughtful Mood = "thoughtful"
	MoodTired      Mood = "tired"
	MoodCoding     Mood = "coding"
	MoodPeaceful   Mood = "peaceful"
	MoodCoffee     Mood = "coffee"
)

var moodEmoji = map[Mood]string{
	MoodHappy:      "😊",
	MoodExcited:    "🎉",
	MoodThoughtful: "🤔",
	MoodTired:      "😴",
	MoodCoding:     "👩‍💻",
	MoodPeaceful:   "🌸",
	MoodCoffee:     "☕️",
}

// Moods returns the catalog in display order.
func Moods() []Mood {
	return []Mood{
		MoodHappy,
		MoodExcited,
		MoodThoughtful,
		MoodTired,
		MoodCoding,
		MoodPeaceful,
		MoodCoffee,
	}
}

// ParseMood resolves a case-insensitive mood name.
func ParseMood(value string) (Mood, error) {
	mood := Mood(strings.ToLower(strings.TrimSpace(value)))
	if !mood.Valid() {
		return "", fmt.Errorf("%w %q (expected one of %s)", ErrUnknownMood, value, moodList())
	}
	return mood, nil
}

// Valid reports whether m belongs to the catalog.
func (m Mood) Valid() bool {
	_, ok := moodEmoji[m]
	return ok
}

// Emoji returns the symbol displayed next to entries with this mood.
func (m Mood) Emoji() string {
	return moodEmoji[m]
}

func (m Mood) String() string {
	return string(m)
}

func moodList() string {
	names := make([]string, 0, len(moodEmoji))
	for _, mood := range Moods() {
		names = append(names, string(mood))
	}
	return strings.Join(names, "|")
}

// Decoration is a named symbol that can wrap entry text.
type Decoration struct {
	Name   string
	Symbol string
}

// Decorations returns the decoration catalog in display order.
func Decorations() []Decoration {
	return []Decoration{
		{Name: "stars", Symbol: "✨"},
		{Name: "hearts", Symbol: "💖"},
		{Name: "flowers", Symbol: "🌸"},
		{Name: "sparkles", Symbol: "⭐️"},
		{Name: "moons", Symbol: "🌙"},
		{Name: "coffee", Symbol: "☕️"},
		{Name: "books", Symbol: "📚"},
	}
}

// ResolveDecoration maps a catalog name to its symbol. Unknown tokens are
// treated as literal symbols; blank tokens resolve to "".
func ResolveDecoration(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	lowered := strings.ToLower(token)
	for _, d := range Decorations() {
		if d.Name == lowered {
			return d.Symbol
		}
	}
	return token
}
