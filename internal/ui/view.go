package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/diary/internal/session"
)

var (
	colorBark  = lipgloss.Color("#2C3E35")
	colorMoss  = lipgloss.Color("#395245")
	colorPaper = lipgloss.Color("#F0F6F1")
	colorRose  = lipgloss.Color("#C18783")

	coverStyle = lipgloss.NewStyle().
			Background(colorMoss).
			Foreground(colorPaper).
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorBark).
			Padding(1, 4).
			Align(lipgloss.Center)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	badgeStyle    = lipgloss.NewStyle().Foreground(colorRose).Italic(true)
	labelStyle    = lipgloss.NewStyle().Foreground(colorMoss).Bold(true)
	pickedStyle   = lipgloss.NewStyle().Background(colorMoss).Foreground(colorPaper)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle  = lipgloss.NewStyle().Foreground(colorMoss)
	errorStyle    = lipgloss.NewStyle().Foreground(colorRose).Bold(true)
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	outputPanel   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBark).Padding(0, 1)
	helpLineStyle = dimStyle.Italic(true)
)

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderCover())
	b.WriteString("\n\n")

	switch m.mode {
	case modeLocked:
		b.WriteString(m.password.View())
		b.WriteString("\n")
	default:
		b.WriteString(m.renderPickers())
		if m.mode == modeCompose {
			b.WriteString("\n")
			b.WriteString(m.composer.View())
			b.WriteString("\n")
		}
	}

	if out := m.renderOutput(); out != "" {
		b.WriteString("\n")
		b.WriteString(outputPanel.Render(out))
		b.WriteString("\n")
	}

	if m.hint != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.hint))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpLineStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCover() string {
	badge := "🔓 Unlocked"
	if m.session.Locked() {
		badge = "🔒 Locked"
	}
	title := titleStyle.Render(fmt.Sprintf("%s's Diary", m.session.Owner()))
	return coverStyle.Render(title + "\n" + badgeStyle.Render(badge))
}

func (m Model) renderPickers() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Mood: "))
	for i, mood := range m.moods {
		label := mood.Emoji() + " " + string(mood)
		if i == m.moodIndex {
			label = pickedStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("  ")
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Decorations: "))
	for i, deco := range m.decorations {
		label := fmt.Sprintf("%d %s", i+1, deco.Symbol)
		if m.isSelected(i) {
			label = pickedStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("  ")
	}
	b.WriteString("\n")

	if symbols := m.selectedSymbols(); len(symbols) > 0 {
		b.WriteString(dimStyle.Render("Selected: " + strings.Join(symbols, " ")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderOutput() string {
	outputs := m.session.Output()
	if len(outputs) == 0 {
		return ""
	}

	lines := make([]string, 0, len(outputs))
	for _, out := range outputs {
		if m.mode == modeLocked && out.Private() {
			continue
		}
		lines = append(lines, styleFor(out.Kind).Render(out.Text))
		if out.Entries != nil && len(out.Entries) == 0 {
			lines = append(lines, dimStyle.Render("  No entries yet. Start writing!"))
		}
		for _, entry := range out.Entries {
			lines = append(lines, "  "+session.FormatEntry(entry))
		}
		if out.Stats != nil {
			for _, line := range session.StatsLines(*out.Stats) {
				lines = append(lines, "  "+line)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) helpLine() string {
	switch m.mode {
	case modeLocked:
		return "enter unlock  tab stats  esc quit"
	case modeCompose:
		return "enter save  esc stop writing  ctrl+c quit"
	default:
		return "w write  tab/shift+tab mood  1-7 decorations  c clear  e entries  s stats  L lock  q quit"
	}
}

func (m Model) isSelected(index int) bool {
	for _, picked := range m.selected {
		if picked == index {
			return true
		}
	}
	return false
}

func styleFor(kind session.Kind) lipgloss.Style {
	switch kind {
	case session.KindError:
		return errorStyle
	case session.KindInfo:
		return infoStyle
	default:
		return successStyle
	}
}
