package script

import (
	"context"
	"fmt"

	"github.com/faizmokh/diary/internal/diary"
	"github.com/faizmokh/diary/internal/session"
)

// StepResult captures what a step emitted into the session log.
type StepResult struct {
	Step    int              `json:"step"`
	Action  Action           `json:"action"`
	Outputs []session.Output `json:"outputs"`
}

// Transcript is the ordered record of a script run.
type Transcript struct {
	Owner string       `json:"owner"`
	Steps []StepResult `json:"steps"`
}

// Run executes every step of s against sess in order. Add steps without a
// mood use defaultMood. Run stops early only when ctx is cancelled.
func Run(ctx context.Context, sess *session.Session, s *Script, defaultMood diary.Mood) (Transcript, error) {
	transcript := Transcript{
		Owner: sess.Owner(),
		Steps: make([]StepResult, 0, len(s.Steps)),
	}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return transcript, err
		}

		var outputs []session.Output
		switch step.Action {
		case ActionUnlock:
			outputs = sess.Unlock(step.Password)
		case ActionLock:
			outputs = sess.Lock()
		case ActionAdd:
			mood := defaultMood
			if step.Mood != "" {
				parsed, err := diary.ParseMood(step.Mood)
				if err != nil {
					return transcript, err
				}
				mood = parsed
			}
			outputs, _ = sess.Add(mood, step.Text, step.Symbols())
		case ActionEntries:
			outputs = sess.ShowEntries()
		case ActionStats:
			outputs = sess.ShowStats()
		default:
			return transcript, fmt.Errorf("step %d: %w %q", i+1, ErrUnknownAction, step.Action)
		}

		transcript.Steps = append(transcript.Steps, StepResult{
			Step:    i + 1,
			Action:  step.Action,
			Outputs: outputs,
		})
	}
	return transcript, nil
}
