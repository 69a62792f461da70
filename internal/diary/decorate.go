package diary

import "strings"

// Decorate wraps text with symbols: the symbols in order as a prefix and the
// same symbols reversed as a suffix, all separated by single spaces. Text is
// returned unchanged when symbols is empty.
func Decorate(text string, symbols []string) string {
	if len(symbols) == 0 {
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text) + 2*(len(symbols)*5))
	for _, symbol := range symbols {
		builder.WriteString(symbol)
		builder.WriteByte(' ')
	}
	builder.WriteString(text)
	for i := len(symbols) - 1; i >= 0; i-- {
		builder.WriteByte(' ')
		builder.WriteString(symbols[i])
	}
	return builder.String()
}
