package script

import "strings"

// demoScript walks through locking, unlocking, writing, and stats.
const demoScript = `owner: Praneetha
steps:
  - action: unlock
    password: wrong
  - action: unlock
    password: Praneetha123
  - action: add
    mood: happy
    text: Hello
    decorations: [stars, hearts]
  - action: stats
  - action: lock
  - action: entries
  - action: stats
`

// Demo returns the built-in walkthrough script.
func Demo() *Script {
	s, err := Parse(strings.NewReader(demoScript))
	if err != nil {
		panic("script: invalid demo script: " + err.Error())
	}
	return s
}
