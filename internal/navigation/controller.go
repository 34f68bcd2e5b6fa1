package navigation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/location-picker/internal/location"
	"github.com/atomicstack/location-picker/internal/logging"
	"github.com/atomicstack/location-picker/internal/logging/events"
)

// DefaultRootTitle is shown while the state list is visible.
const DefaultRootTitle = "Select US state"

// ErrLookupMiss marks a selection that does not match any rendered item.
// It signals a caller bug rather than a user error.
var ErrLookupMiss = errors.New("selection not found")

// Level identifies which tier of the hierarchy is displayed.
type Level int

const (
	ShowingStates Level = iota
	ShowingCities
)

func (l Level) String() string {
	switch l {
	case ShowingStates:
		return "states"
	case ShowingCities:
		return "cities"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// State is the navigation state owned by a Controller. SelectedState is nil
// while the state list is showing.
type State struct {
	Level         Level
	SelectedState *location.State
	SearchText    string
}

// SelectedStateName returns the selected state's name, or "" when none.
func (s State) SelectedStateName() string {
	if s.SelectedState == nil {
		return ""
	}
	return s.SelectedState.Name
}

// Listener receives presentation notifications. Calls happen synchronously
// from inside the Controller operation that caused them.
type Listener interface {
	Rerender(items []string)
	TitleChanged(title string, showBack bool)
	CitySelected(name string)
	BackPropagate()
}

// Store is the subset of location.Store the controller queries.
type Store interface {
	StateNames() []string
	StateByName(name string) (location.State, bool)
	CitiesOf(code string) []location.City
}

type suggester interface {
	Suggest(name string) (string, bool)
}

// Option configures a Controller.
type Option func(*Controller)

// WithRootTitle overrides the title used for the state list.
func WithRootTitle(title string) Option {
	return func(c *Controller) {
		if t := strings.TrimSpace(title); t != "" {
			c.rootTitle = t
		}
	}
}

// WithListener attaches the presentation listener.
func WithListener(l Listener) Option {
	return func(c *Controller) { c.listener = l }
}

// Controller tracks the visible level and computes its filtered contents.
type Controller struct {
	store     Store
	listener  Listener
	rootTitle string
	state     State
	visible   []string
}

// New returns a controller showing the state list with no search text.
func New(store Store, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		rootTitle: DefaultRootTitle,
		state:     State{Level: ShowingStates},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.visible = c.computeVisible()
	return c
}

// SetListener replaces the presentation listener. A nil listener silences
// notifications.
func (c *Controller) SetListener(l Listener) {
	c.listener = l
}

// Start emits the notifications needed to draw the initial screen.
func (c *Controller) Start() {
	c.notifyTitle()
	c.rerender()
}

// State returns a copy of the current navigation state.
func (c *Controller) State() State {
	st := c.state
	if st.SelectedState != nil {
		sel := *st.SelectedState
		st.SelectedState = &sel
	}
	return st
}

// Title returns the title for the current level.
func (c *Controller) Title() string {
	if c.state.Level == ShowingCities {
		return c.state.SelectedStateName()
	}
	return c.rootTitle
}

// SelectItem acts on a display name taken from the visible list. In the state
// list it drills into the named state; in a city list it reports the city.
func (c *Controller) SelectItem(name string) error {
	events.Nav.Select(c.state.Level.String(), name, c.state.SearchText)
	if c.state.Level == ShowingCities {
		events.Nav.CitySelected(c.state.SelectedStateName(), name)
		if c.listener != nil {
			c.listener.CitySelected(name)
		}
		return nil
	}
	st, ok := c.store.StateByName(name)
	if !ok {
		return c.lookupMiss(name)
	}
	c.state = State{Level: ShowingCities, SelectedState: &st}
	events.Nav.Drill(st.Name, st.Code)
	c.notifyTitle()
	c.rerender()
	return nil
}

// ItemTapped selects the item at idx in the last visible list.
func (c *Controller) ItemTapped(idx int) error {
	if idx < 0 || idx >= len(c.visible) {
		return c.lookupMiss(fmt.Sprintf("#%d", idx))
	}
	return c.SelectItem(c.visible[idx])
}

// GoBack returns to the state list. It reports false, after notifying
// BackPropagate, when the state list is already showing.
func (c *Controller) GoBack() bool {
	if c.state.Level != ShowingCities {
		events.Nav.BackPropagate()
		if c.listener != nil {
			c.listener.BackPropagate()
		}
		return false
	}
	events.Nav.Back(c.state.SelectedStateName())
	c.state = State{Level: ShowingStates}
	c.notifyTitle()
	c.rerender()
	return true
}

// SetSearchText stores the trimmed search text and re-filters the current
// level.
func (c *Controller) SetSearchText(text string) {
	c.state.SearchText = strings.TrimSpace(text)
	events.Nav.Search(c.state.Level.String(), c.state.SearchText)
	c.rerender()
}

// VisibleItems returns the display names for the current level filtered by
// the search text, in load order.
func (c *Controller) VisibleItems() []string {
	out := make([]string, len(c.visible))
	copy(out, c.visible)
	return out
}

// Total returns the unfiltered item count of the current level.
func (c *Controller) Total() int {
	return len(c.levelNames())
}

func (c *Controller) levelNames() []string {
	if c.state.Level == ShowingCities && c.state.SelectedState != nil {
		cities := c.store.CitiesOf(c.state.SelectedState.Code)
		names := make([]string, len(cities))
		for i, city := range cities {
			names[i] = city.Name
		}
		return names
	}
	return c.store.StateNames()
}

func (c *Controller) computeVisible() []string {
	return Filter(c.levelNames(), c.state.SearchText)
}

func (c *Controller) rerender() {
	c.visible = c.computeVisible()
	if c.listener != nil {
		c.listener.Rerender(c.VisibleItems())
	}
}

func (c *Controller) notifyTitle() {
	if c.listener != nil {
		c.listener.TitleChanged(c.Title(), c.state.Level == ShowingCities)
	}
}

func (c *Controller) lookupMiss(name string) error {
	suggestion := ""
	if s, ok := c.store.(suggester); ok {
		suggestion, _ = s.Suggest(name)
	}
	events.Nav.LookupMiss(c.state.Level.String(), name, suggestion)
	err := fmt.Errorf("%w: %q in %s list", ErrLookupMiss, name, c.state.Level)
	logging.Error(err)
	return err
}
