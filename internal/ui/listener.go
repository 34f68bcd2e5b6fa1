package ui

import (
	"fmt"

	"github.com/atomicstack/location-picker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Rerender replaces the visible names.
func (m *Model) Rerender(items []string) {
	current := m.currentLevel()
	current.UpdateItems(items)
	if m.restoreTo != "" {
		if idx := current.IndexOf(m.restoreTo); idx >= 0 {
			current.Cursor = idx
		}
		m.restoreTo = ""
	}
	m.syncViewport(current)
}

// TitleChanged switches the header and resets the prompt for the new tier.
// Returning to the state list puts the cursor back on the state just left.
func (m *Model) TitleChanged(title string, showBack bool) {
	current := m.currentLevel()
	before := current.FilterCursorPos()
	id := levelStates
	if showBack {
		id = levelCities
		m.returnTo = title
	} else if m.showBack {
		m.restoreTo = m.returnTo
		m.returnTo = ""
	}
	m.title = title
	m.showBack = showBack
	current.Reset(id, title)
	m.noteFilterCursorChange(current, before)
	m.forceClearInfo()
}

// CitySelected shows a short-lived confirmation.
func (m *Model) CitySelected(name string) {
	m.setInfo(fmt.Sprintf("You selected '%s'", name))
	events.UI.Info(m.infoMsg)
	m.queue(infoExpiryCmd(m.infoTTL))
}

// BackPropagate leaves the picker; there is nothing left to go back to.
func (m *Model) BackPropagate() {
	m.quitting = true
	events.App.Exit("back")
	m.queue(tea.Quit)
}
