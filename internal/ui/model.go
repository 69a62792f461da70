package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/diary/internal/diary"
	"github.com/faizmokh/diary/internal/session"
)

// Model owns Bubble Tea state for the diary session. The diary itself lives
// in the session; everything here is transient UI state.
type Model struct {
	ctx     context.Context
	session *session.Session

	mode     mode
	password textinput.Model
	composer textinput.Model

	moods       []diary.Mood
	moodIndex   int
	decorations []diary.Decoration
	// selected holds indexes into decorations in the order they were picked.
	selected []int

	hint string
}

type mode uint8

const (
	modeLocked mode = iota
	modeNormal
	modeCompose
)

// NewModel seeds a Bubble Tea model around sess.
func NewModel(ctx context.Context, sess *session.Session, defaultMood diary.Mood) Model {
	password := textinput.New()
	password.Placeholder = "Enter password..."
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Prompt = "🔑 "
	password.Focus()

	composer := textinput.New()
	composer.Placeholder = "Write your thoughts..."
	composer.Prompt = "✏️  "
	composer.CharLimit = 500

	moods := diary.Moods()
	moodIndex := 0
	for i, mood := range moods {
		if mood == defaultMood {
			moodIndex = i
			break
		}
	}

	m := Model{
		ctx:         ctx,
		session:     sess,
		password:    password,
		composer:    composer,
		moods:       moods,
		moodIndex:   moodIndex,
		decorations: diary.Decorations(),
	}
	if !sess.Locked() {
		m.mode = modeNormal
		m.password.Blur()
	}
	return m
}

// Init starts the cursor blinking in the password prompt.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update wires TUI state transitions from user input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.ctx != nil && m.ctx.Err() != nil {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m.updateInputs(msg)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case modeLocked:
		return m.handleLockedKey(msg)
	case modeCompose:
		return m.handleComposeKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleLockedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.tryUnlock()
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		m.session.ShowStats()
		return m, nil
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

func (m Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitEntry()
	case tea.KeyEsc:
		m.mode = modeNormal
		m.composer.Blur()
		m.hint = "Draft kept. Press w to continue writing."
		return m, nil
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "w", "i", "enter":
		m.mode = modeCompose
		m.hint = ""
		cmd := m.composer.Focus()
		return m, cmd
	case "tab", "right", "l":
		m.moodIndex = (m.moodIndex + 1) % len(m.moods)
	case "shift+tab", "left", "h":
		m.moodIndex = (m.moodIndex - 1 + len(m.moods)) % len(m.moods)
	case "c":
		m.selected = nil
		m.hint = "Decorations cleared."
	case "e":
		m.session.ShowEntries()
	case "s":
		m.session.ShowStats()
	case "L":
		return m.lock()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.toggleDecoration(int(key[0] - '1'))
		}
	}
	return m, nil
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeLocked:
		m.password, cmd = m.password.Update(msg)
	case modeCompose:
		m.composer, cmd = m.composer.Update(msg)
	}
	return m, cmd
}

func (m Model) tryUnlock() (tea.Model, tea.Cmd) {
	m.session.Unlock(m.password.Value())
	m.password.Reset()
	if m.session.Locked() {
		m.hint = ""
		return m, nil
	}

	m.mode = modeNormal
	m.password.Blur()
	m.hint = "Press w to write an entry."
	return m, nil
}

func (m Model) lock() (tea.Model, tea.Cmd) {
	m.session.Lock()
	m.mode = modeLocked
	m.composer.Blur()
	m.hint = ""
	cmd := m.password.Focus()
	return m, cmd
}

func (m Model) submitEntry() (tea.Model, tea.Cmd) {
	text := m.composer.Value()
	if strings.TrimSpace(text) == "" {
		m.hint = "Entry cannot be empty."
		return m, nil
	}

	if _, ok := m.session.Add(m.currentMood(), text, m.selectedSymbols()); !ok {
		return m, nil
	}

	m.composer.Reset()
	m.composer.Blur()
	m.mode = modeNormal
	m.hint = ""
	return m, nil
}

func (m *Model) toggleDecoration(index int) {
	if index < 0 || index >= len(m.decorations) {
		return
	}
	for i, picked := range m.selected {
		if picked == index {
			m.selected = append(m.selected[:i:i], m.selected[i+1:]...)
			m.hint = fmt.Sprintf("Removed %s.", m.decorations[index].Name)
			return
		}
	}
	m.selected = append(m.selected, index)
	m.hint = fmt.Sprintf("Added %s.", m.decorations[index].Name)
}

func (m Model) currentMood() diary.Mood {
	return m.moods[m.moodIndex]
}

func (m Model) selectedSymbols() []string {
	symbols := make([]string, 0, len(m.selected))
	for _, index := range m.selected {
		symbols = append(symbols, m.decorations[index].Symbol)
	}
	return symbols
}
