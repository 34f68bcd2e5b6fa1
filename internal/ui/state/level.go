package state

import "strings"

// Level holds what the picker shows for the current tier: the rendered
// names, the cursor and viewport, and the search prompt buffer.
type Level struct {
	ID             string
	Title          string
	Items          []string
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int

	restorePending bool
}

// NewLevel constructs a Level showing items.
func NewLevel(id, title string, items []string) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// Reset switches the level to a new tier, clearing the prompt and cursor.
func (l *Level) Reset(id, title string) {
	l.ID = id
	l.Title = title
	l.Filter = ""
	l.FilterCursor = 0
	l.Cursor = 0
	l.LastCursor = -1
	l.ViewportOffset = 0
	l.restorePending = false
}

// IndexOf returns the index of name among the rendered items, or -1.
func (l *Level) IndexOf(name string) int {
	for i, item := range l.Items {
		if item == name {
			return i
		}
	}
	return -1
}

// Current returns the name under the cursor.
func (l *Level) Current() (string, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return "", false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the rendered names. With a search in progress the
// cursor jumps to the best match; once the search is cleared it returns to
// where it was before typing began.
func (l *Level) UpdateItems(items []string) {
	l.Items = CloneItems(items)
	trimmed := strings.TrimSpace(l.Filter)
	switch {
	case trimmed != "":
		if idx := BestMatchIndex(l.Items, trimmed); idx >= 0 {
			l.Cursor = idx
		}
	case l.restorePending:
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		}
		l.LastCursor = -1
		l.restorePending = false
	}
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}
