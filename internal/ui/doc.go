// Package ui contains the Bubble Tea program that renders the location
// picker. The Model owns rendering and key handling only; navigation
// decisions belong to a navigation.Controller, which the Model registers
// itself with as the listener.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry keyed by message type.
//   - Printable keys edit the search prompt (internal/ui/input.go). Each edit
//     hands the new text to the controller, which re-filters and calls back
//     into Rerender.
//   - Enter and Esc are translated into ItemTapped and GoBack
//     (internal/ui/navigation.go). The controller answers with TitleChanged,
//     Rerender, CitySelected or BackPropagate; those callbacks queue any
//     follow-up commands, which Update returns once the handler finishes.
//
// State ownership:
//   - The visible list, cursor, viewport and prompt buffer live in
//     internal/ui/state.Level. A single level is reused for both tiers and
//     reset whenever the title changes.
//   - The selected state and the search text live in the controller.
package ui
