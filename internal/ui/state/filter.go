package state

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the search prompt text and its cursor. Filtering itself
// happens elsewhere; the new names arrive through UpdateItems.
func (l *Level) SetFilter(query string, cursor int) {
	prevTrimmed := strings.TrimSpace(l.Filter)
	trimmed := strings.TrimSpace(query)
	l.Filter = query
	runes := []rune(l.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	l.FilterCursor = cursor
	switch {
	case trimmed != "" && prevTrimmed == "":
		l.LastCursor = l.Cursor
		l.restorePending = false
	case trimmed == "" && prevTrimmed != "":
		l.restorePending = true
	}
}

// FilterCursorPos returns the rune offset of the prompt cursor, clamped to
// the prompt text.
func (l *Level) FilterCursorPos() int {
	n := len([]rune(l.Filter))
	switch {
	case l.FilterCursor < 0:
		return 0
	case l.FilterCursor > n:
		return n
	default:
		return l.FilterCursor
	}
}

// InsertFilterText inserts text at the prompt cursor.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the prompt cursor.
func (l *Level) DeleteFilterRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	return l.deleteRange(pos-1, pos)
}

// DeleteFilterWordBackward deletes the word before the prompt cursor along
// with any spaces between it and the cursor.
func (l *Level) DeleteFilterWordBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	return l.deleteRange(wordStart([]rune(l.Filter), pos), pos)
}

func (l *Level) deleteRange(from, to int) bool {
	runes := []rune(l.Filter)
	if from >= to || from < 0 || to > len(runes) {
		return false
	}
	updated := append(append([]rune{}, runes[:from]...), runes[to:]...)
	l.SetFilter(string(updated), from)
	return true
}

// MoveFilterCursorStart moves the prompt cursor to the start.
func (l *Level) MoveFilterCursorStart() bool {
	return l.moveFilterCursor(0)
}

// MoveFilterCursorEnd moves the prompt cursor to the end.
func (l *Level) MoveFilterCursorEnd() bool {
	return l.moveFilterCursor(len([]rune(l.Filter)))
}

// MoveFilterCursorWordBackward moves the prompt cursor to the previous word start.
func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.moveFilterCursor(wordStart([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorWordForward moves the prompt cursor past the next word.
func (l *Level) MoveFilterCursorWordForward() bool {
	return l.moveFilterCursor(wordEnd([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorRuneBackward moves the prompt cursor one rune left.
func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.moveFilterCursor(l.FilterCursorPos() - 1)
}

// MoveFilterCursorRuneForward moves the prompt cursor one rune right.
func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.moveFilterCursor(l.FilterCursorPos() + 1)
}

func (l *Level) moveFilterCursor(target int) bool {
	n := len([]rune(l.Filter))
	if target < 0 || target > n {
		return false
	}
	if target == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = target
	return true
}

// wordStart skips spaces then non-spaces backwards from pos.
func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// wordEnd skips non-spaces then spaces forwards from pos.
func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}

// BestMatchIndex returns the index the cursor should land on for query.
// An exact match wins outright. Otherwise every fuzzy match is ranked:
// prefix matches before substring matches before scattered ones, and within
// a tier the closest name by fuzzy distance, then load order.
func BestMatchIndex(items []string, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	for i, item := range items {
		if strings.EqualFold(item, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	ranks := fuzzy.RankFindNormalizedFold(trimmed, items)
	if len(ranks) == 0 {
		for i, item := range items {
			if strings.Contains(strings.ToLower(item), lower) {
				return i
			}
		}
		return 0
	}
	sort.SliceStable(ranks, func(a, b int) bool {
		ta := matchTier(items[ranks[a].OriginalIndex], lower)
		tb := matchTier(items[ranks[b].OriginalIndex], lower)
		if ta != tb {
			return ta < tb
		}
		if ranks[a].Distance != ranks[b].Distance {
			return ranks[a].Distance < ranks[b].Distance
		}
		return ranks[a].OriginalIndex < ranks[b].OriginalIndex
	})
	return ranks[0].OriginalIndex
}

func matchTier(item, lowerQuery string) int {
	lowerItem := strings.ToLower(item)
	switch {
	case strings.HasPrefix(lowerItem, lowerQuery):
		return 0
	case strings.Contains(lowerItem, lowerQuery):
		return 1
	default:
		return 2
	}
}
