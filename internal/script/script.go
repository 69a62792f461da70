// Package script replays a YAML list of diary actions against a session.
package script

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/faizmokh/diary/internal/diary"
)

// Action names one diary operation.
type Action string

const (
	ActionUnlock  Action = "unlock"
	ActionLock    Action = "lock"
	ActionAdd     Action = "add"
	ActionEntries Action = "entries"
	ActionStats   Action = "stats"
)

var (
	// ErrNoSteps is returned for scripts without any steps.
	ErrNoSteps = errors.New("script has no steps")
	// ErrUnknownAction is returned when a step names an unsupported action.
	ErrUnknownAction = errors.New("unknown action")
	// ErrMissingText is returned for add steps without entry text.
	ErrMissingText = errors.New("add requires text")
)

// Script is the parsed form of a YAML script file.
type Script struct {
	Owner string `yaml:"owner"`
	Steps []Step `yaml:"steps"`
}

// Step is a single action. Only the fields relevant to Action are read.
type Step struct {
	Action      Action   `yaml:"action"`
	Password    string   `yaml:"password,omitempty"`
	Mood        string   `yaml:"mood,omitempty"`
	Text        string   `yaml:"text,omitempty"`
	Decorations []string `yaml:"decorations,omitempty"`
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoSteps
		}
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every step and reports the first problem with its
// 1-based step number.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrNoSteps
	}
	for i := range s.Steps {
		step := &s.Steps[i]
		step.Action = Action(strings.ToLower(strings.TrimSpace(string(step.Action))))
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.Action {
	case ActionUnlock, ActionLock, ActionEntries, ActionStats:
		return nil
	case ActionAdd:
		if strings.TrimSpace(s.Text) == "" {
			return ErrMissingText
		}
		if s.Mood == "" {
			return nil
		}
		_, err := diary.ParseMood(s.Mood)
		return err
	default:
		return fmt.Errorf("%w %q (expected unlock|lock|add|entries|stats)", ErrUnknownAction, s.Action)
	}
}

// Symbols resolves the step's decoration names to symbols, dropping blanks.
func (s Step) Symbols() []string {
	symbols := make([]string, 0, len(s.Decorations))
	for _, token := range s.Decorations {
		if symbol := diary.ResolveDecoration(token); symbol != "" {
			symbols = append(symbols, symbol)
		}
	}
	return symbols
}
