package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/location-picker/internal/navigation"
	"github.com/atomicstack/location-picker/internal/theme"
	uistate "github.com/atomicstack/location-picker/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const (
	levelStates = "states"
	levelCities = "cities"

	defaultInfoTTL = 2 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Navigator is the controller surface the model drives.
type Navigator interface {
	SetListener(navigation.Listener)
	Start()
	ItemTapped(idx int) error
	GoBack() bool
	SetSearchText(text string)
	Total() int
}

// Options carries presentation settings.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	InfoTTL    time.Duration
}

// Model implements the Bubble Tea model for the location picker.
type Model struct {
	nav     Navigator
	current *level

	title     string
	showBack  bool
	returnTo  string
	restoreTo string

	infoMsg    string
	infoExpire time.Time
	infoTTL    time.Duration

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	quitting    bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	pending  []tea.Cmd
	handlers map[reflect.Type]msgHandler
}

// NewModel attaches a model to nav and draws the initial state list.
func NewModel(nav Navigator, opts Options) *Model {
	m := &Model{
		nav:        nav,
		current:    uistate.NewLevel(levelStates, "", nil),
		infoTTL:    opts.InfoTTL,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
	}
	if m.infoTTL <= 0 {
		m.infoTTL = defaultInfoTTL
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	nav.SetListener(m)
	nav.Start()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(infoExpiredMsg{}):    m.handleInfoExpiredMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(m.pending) > 0 {
		cmds = append(cmds, m.pending...)
		m.pending = nil
	}
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) currentLevel() *level {
	return m.current
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}
