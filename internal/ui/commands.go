package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// infoExpiredMsg wakes the model so an expired confirmation disappears
// without waiting for the next key press.
type infoExpiredMsg struct{}

// infoExpirySlack lets the tick land just after the deadline.
const infoExpirySlack = 50 * time.Millisecond

func infoExpiryCmd(ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl+infoExpirySlack, func(time.Time) tea.Msg {
		return infoExpiredMsg{}
	})
}

func (m *Model) handleInfoExpiredMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(infoExpiredMsg); !ok {
		return nil
	}
	m.clearInfo()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(m.infoTTL)
}

// clearInfo drops the message only once it has expired.
func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.forceClearInfo()
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}
