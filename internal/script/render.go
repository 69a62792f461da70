package script

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/faizmokh/diary/internal/diary"
	"github.com/faizmokh/diary/internal/session"
)

// Format selects how a transcript is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected text|json|yaml)", value)
	}
}

// Write renders t to w in the requested format.
func Write(w io.Writer, t Transcript, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, t)
	case FormatYAML:
		return WriteYAML(w, t)
	default:
		return WriteText(w, t)
	}
}

// WriteText renders a human-readable transcript.
func WriteText(w io.Writer, t Transcript) error {
	if _, err := fmt.Fprintf(w, "%s's Diary\n", t.Owner); err != nil {
		return err
	}
	for _, step := range t.Steps {
		fmt.Fprintf(w, "\nstep %d: %s\n", step.Step, step.Action)
		if len(step.Outputs) == 0 {
			fmt.Fprintln(w, "  (no output)")
			continue
		}
		for _, out := range step.Outputs {
			fmt.Fprintf(w, "  %s %s\n", marker(out.Kind), out.Text)
			if out.Entries != nil && len(out.Entries) == 0 {
				fmt.Fprintln(w, "      (no entries yet)")
			}
			for i, entry := range out.Entries {
				fmt.Fprintf(w, "      %d. %s\n", i+1, session.FormatEntry(entry))
			}
			if out.Stats != nil {
				for _, line := range session.StatsLines(*out.Stats) {
					fmt.Fprintf(w, "      %s\n", line)
				}
			}
		}
	}
	return nil
}

// WriteJSON renders the transcript as indented JSON.
func WriteJSON(w io.Writer, t Transcript) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

type yamlOutput struct {
	Kind    string         `yaml:"kind"`
	Text    string         `yaml:"text"`
	Entries []diary.Entry  `yaml:"entries,omitempty"`
	Stats   map[string]any `yaml:"stats,omitempty"`
}

type yamlStep struct {
	Step    int          `yaml:"step"`
	Action  Action       `yaml:"action"`
	Outputs []yamlOutput `yaml:"outputs"`
}

type yamlTranscript struct {
	Owner string     `yaml:"owner"`
	Steps []yamlStep `yaml:"steps"`
}

// WriteYAML renders the transcript as YAML. Stats are flattened so fields
// hidden while locked are omitted.
func WriteYAML(w io.Writer, t Transcript) error {
	doc := yamlTranscript{
		Owner: t.Owner,
		Steps: make([]yamlStep, 0, len(t.Steps)),
	}
	for _, step := range t.Steps {
		ys := yamlStep{Step: step.Step, Action: step.Action}
		for _, out := range step.Outputs {
			yo := yamlOutput{Kind: out.Kind.String(), Text: out.Text, Entries: out.Entries}
			if out.Stats != nil {
				yo.Stats = out.Stats.Fields()
			}
			ys.Outputs = append(ys.Outputs, yo)
		}
		doc.Steps = append(doc.Steps, ys)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func marker(kind session.Kind) string {
	switch kind {
	case session.KindError:
		return "x"
	case session.KindInfo:
		return "i"
	default:
		return "+"
	}
}
