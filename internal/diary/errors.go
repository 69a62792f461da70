package diary

import "errors"

// ErrLocked is returned when entries are read or written while the diary is locked.
var ErrLocked = errors.New("please unlock the diary first")

// ErrUnknownMood indicates a mood name outside the catalog.
var ErrUnknownMood = errors.New("unknown mood")
