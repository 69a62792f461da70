package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/faizmokh/diary/internal/diary"
)

// FormatEntry renders an entry as a single display line.
func FormatEntry(entry diary.Entry) string {
	var builder strings.Builder
	builder.Grow(32 + len(entry.DecoratedText) + len(entry.ID))

	if emoji := entry.Mood.Emoji(); emoji != "" {
		builder.WriteString(emoji)
		builder.WriteByte(' ')
	}
	fmt.Fprintf(&builder, "[%s] %s", entry.Timestamp.Format("15:04"), entry.DecoratedText)
	builder.WriteString(" (")
	builder.WriteString(entry.ID)
	builder.WriteByte(')')
	return builder.String()
}

var statsOrder = []string{"totalEntries", "isLocked", "hasEntries", "latestMood", "lastModified"}

// StatsLines renders the stats record as "key: value" lines in a stable
// order. Fields hidden while locked are absent.
func StatsLines(stats diary.Stats) []string {
	fields := stats.Fields()
	lines := make([]string, 0, len(fields))
	for _, key := range statsOrder {
		value, ok := fields[key]
		if !ok {
			continue
		}
		lines = append(lines, key+": "+formatValue(value))
	}
	return lines
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "none"
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(v)
	}
}
