package diary

import "testing"

func TestDecorate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		symbols []string
		want    string
	}{
		{name: "none", text: "t", symbols: nil, want: "t"},
		{name: "empty slice", text: "plain text", symbols: []string{}, want: "plain text"},
		{name: "single", text: "t", symbols: []string{"a"}, want: "a t a"},
		{name: "pair", text: "t", symbols: []string{"a", "b"}, want: "a b t b a"},
		{name: "emoji", text: "Hello", symbols: []string{"✨", "💖"}, want: "✨ 💖 Hello 💖 ✨"},
		{name: "empty text", text: "", symbols: []string{"a"}, want: "a  a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decorate(tt.text, tt.symbols); got != tt.want {
				t.Fatalf("Decorate(%q, %q) = %q, want %q", tt.text, tt.symbols, got, tt.want)
			}
		})
	}
}

func TestDecorateDoesNotMutateSymbols(t *testing.T) {
	symbols := []string{"a", "b", "c"}
	Decorate("t", symbols)
	Decorate("t", symbols)
	if symbols[0] != "a" || symbols[2] != "c" {
		t.Fatalf("symbols mutated: %q", symbols)
	}
}
