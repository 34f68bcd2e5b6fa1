package state

// CloneItems produces a copy of the provided display names.
func CloneItems(items []string) []string {
	dup := make([]string, len(items))
	copy(dup, items)
	return dup
}
