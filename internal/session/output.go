package session

import "github.com/faizmokh/diary/internal/diary"

// Kind classifies an output line for rendering.
type Kind uint8

const (
	KindSuccess Kind = iota
	KindError
	KindInfo
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText lets encoders emit the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Output is one message in the session log. Entries is set for entry
// listings (an empty listing encodes as "entries": []) and Stats for stats
// reports.
type Output struct {
	Kind    Kind          `json:"kind" yaml:"kind"`
	Text    string        `json:"text" yaml:"text"`
	Entries []diary.Entry `json:"entries" yaml:"entries,omitempty"`
	Stats   *diary.Stats  `json:"stats,omitempty" yaml:"-"`
}

// Private reports whether the output reveals entry content or unlocked
// stats, and so must not stay visible once the diary is locked.
func (o Output) Private() bool {
	return o.Entries != nil || (o.Stats != nil && o.Stats.Unlocked())
}

// Messages shown to the user.
const (
	MsgUnlocked     = "🎉 Diary unlocked! You can now write entries:"
	MsgWrongPass    = "🔒 Nice try! But this diary is private!"
	MsgLocked       = "🔒 Please unlock the diary first!"
	MsgEntriesTitle = "📖 Current entries:"
	MsgStatsTitle   = "📊 Diary Stats:"
)
