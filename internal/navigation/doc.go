// Package navigation implements the two-level state/city selection flow.
//
// A Controller starts on the state list. Selecting a state shows that state's
// cities and clears the search text; going back returns to the state list.
// Every transition is reported to a Listener so a presentation layer can
// redraw from VisibleItems. The Controller is not safe for concurrent use;
// callers drive it from a single event loop.
package navigation
