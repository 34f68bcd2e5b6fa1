package ui

import (
	"github.com/atomicstack/location-picker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleEscapeKey() tea.Cmd {
	m.nav.GoBack()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	name, ok := current.Current()
	if !ok {
		return nil
	}
	events.UI.Enter(current.ID, current.Cursor, name)
	// A miss is already reported by the controller and never shown to the user.
	_ = m.nav.ItemTapped(current.Cursor)
	return nil
}

func (m *Model) moveCursor(move func(*level) bool) {
	current := m.currentLevel()
	if move(current) {
		events.UI.Cursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	page := m.maxVisibleItems()
	switch keyMsg.String() {
	case "ctrl+c":
		m.quitting = true
		events.App.Exit("interrupt")
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up", "ctrl+p":
		m.moveCursor((*level).MoveCursorUp)
	case "down", "ctrl+n":
		m.moveCursor((*level).MoveCursorDown)
	case "pgup":
		m.moveCursor(func(l *level) bool { return l.MoveCursorPageUp(page) })
	case "pgdown":
		m.moveCursor(func(l *level) bool { return l.MoveCursorPageDown(page) })
	case "home":
		m.moveCursor((*level).MoveCursorHome)
	case "end":
		m.moveCursor((*level).MoveCursorEnd)
	}
	return nil
}
