package ui

import (
	"unicode"

	"github.com/atomicstack/location-picker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	promptSymbol      = "» "
	promptPlaceholder = "(type to search)"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// editFilter runs a prompt edit and, when the text changed, hands the new
// search text to the controller.
func (m *Model) editFilter(edit func(*level) bool) bool {
	current := m.currentLevel()
	before := current.FilterCursorPos()
	prev := current.Filter
	if !edit(current) {
		return false
	}
	m.noteFilterCursorChange(current, before)
	if current.Filter != prev {
		m.forceClearInfo()
		m.nav.SetSearchText(current.Filter)
	}
	return true
}

func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.currentLevel()
	switch msg.String() {
	case "ctrl+u":
		if current.Filter == "" {
			return false, nil
		}
		m.editFilter(func(l *level) bool {
			l.SetFilter("", 0)
			return true
		})
		events.Filter.Cleared(current.ID)
		return true, nil
	case "ctrl+w":
		if !m.editFilter((*level).DeleteFilterWordBackward) {
			return false, nil
		}
		events.Filter.WordBackspace(current.ID, current.Filter)
		return true, nil
	case "ctrl+a":
		if !m.editFilter((*level).MoveFilterCursorStart) {
			return false, nil
		}
		events.Filter.Cursor(current.ID, current.FilterCursor)
		return true, nil
	case "ctrl+e":
		if !m.editFilter((*level).MoveFilterCursorEnd) {
			return false, nil
		}
		events.Filter.Cursor(current.ID, current.FilterCursor)
		return true, nil
	case "alt+b":
		if !m.editFilter((*level).MoveFilterCursorWordBackward) {
			return false, nil
		}
		events.Filter.CursorWord(current.ID, current.FilterCursor)
		return true, nil
	case "alt+f":
		if !m.editFilter((*level).MoveFilterCursorWordForward) {
			return false, nil
		}
		events.Filter.CursorWord(current.ID, current.FilterCursor)
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.editFilter((*level).DeleteFilterRuneBackward) {
			return false, nil
		}
		events.Filter.Backspace(current.ID, current.Filter)
		return true, nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes)), nil
	case tea.KeySpace:
		return m.appendToFilter(" "), nil
	case tea.KeyLeft:
		if !m.editFilter((*level).MoveFilterCursorRuneBackward) {
			return false, nil
		}
		events.Filter.Cursor(current.ID, current.FilterCursor)
		return true, nil
	case tea.KeyRight:
		if !m.editFilter((*level).MoveFilterCursorRuneForward) {
			return false, nil
		}
		events.Filter.Cursor(current.ID, current.FilterCursor)
		return true, nil
	}
	return false, nil
}

func (m *Model) appendToFilter(text string) bool {
	ok := m.editFilter(func(l *level) bool { return l.InsertFilterText(text) })
	if ok {
		events.Filter.Append(m.currentLevel().ID, m.currentLevel().Filter)
	}
	return ok
}

func (m *Model) filterPrompt() string {
	current := m.currentLevel()
	if styles.Cursor != nil {
		m.filterCursor.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = *styles.Filter
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := render(styles.FilterPrompt, promptSymbol)
	text := current.Filter
	if text == "" {
		runes := []rune(promptPlaceholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = *styles.FilterPlaceholder
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := current.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
