package ui

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/location-picker/internal/location"
	"github.com/atomicstack/location-picker/internal/logging"
	"github.com/atomicstack/location-picker/internal/navigation"
	tea "github.com/charmbracelet/bubbletea"
)

func testStore(t *testing.T) *location.Store {
	t.Helper()
	store, err := location.FromRecords(
		[]location.Record{{Name: "California", Code: "CA"}, {Name: "Texas", Code: "TX"}},
		[]location.Record{{Name: "Los Angeles", Code: "CA"}, {Name: "Austin", Code: "TX"}, {Name: "Houston", Code: "TX"}},
	)
	if err != nil {
		t.Fatalf("build store: %v", err)
	}
	return store
}

func newTestModel(t *testing.T, opts Options) (*Model, *navigation.Controller) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })
	nav := navigation.New(testStore(t))
	return NewModel(nav, opts), nav
}

func TestNewModelDrawsStateList(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	if m.title != navigation.DefaultRootTitle {
		t.Fatalf("expected root title, got %q", m.title)
	}
	if m.showBack {
		t.Fatalf("expected no back arrow at root")
	}
	if got := m.currentLevel().Items; !reflect.DeepEqual(got, []string{"California", "Texas"}) {
		t.Fatalf("unexpected items %v", got)
	}
	if m.currentLevel().ID != levelStates {
		t.Fatalf("expected states level, got %s", m.currentLevel().ID)
	}
	if m.infoTTL != defaultInfoTTL {
		t.Fatalf("expected default info ttl, got %v", m.infoTTL)
	}
}

func TestMenuHeaderRootAndCities(t *testing.T) {
	m, nav := newTestModel(t, Options{})
	if got := m.menuHeader(); got != navigation.DefaultRootTitle {
		t.Fatalf("expected %q, got %q", navigation.DefaultRootTitle, got)
	}
	if err := nav.SelectItem("Texas"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := m.menuHeader(); got != backArrow+" Texas" {
		t.Fatalf("expected back arrow header, got %q", got)
	}
}

func TestMenuHeaderVerboseCounter(t *testing.T) {
	m, nav := newTestModel(t, Options{Verbose: true})
	if got := m.menuHeader(); got != navigation.DefaultRootTitle+" (2/2)" {
		t.Fatalf("unexpected header %q", got)
	}
	nav.SetSearchText("tex")
	if got := m.menuHeader(); got != navigation.DefaultRootTitle+" (1/2)" {
		t.Fatalf("unexpected filtered header %q", got)
	}
}

func TestOptionsFixDimensions(t *testing.T) {
	m, _ := newTestModel(t, Options{Width: 30, Height: 10})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 30 || m.height != 10 {
		t.Fatalf("expected fixed dimensions, got %dx%d", m.width, m.height)
	}
	free, _ := newTestModel(t, Options{})
	free.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if free.width != 100 || free.height != 40 {
		t.Fatalf("expected window size applied, got %dx%d", free.width, free.height)
	}
}

func TestCitySelectedShowsExpiringInfo(t *testing.T) {
	m, nav := newTestModel(t, Options{InfoTTL: time.Minute})
	if err := nav.SelectItem("Texas"); err != nil {
		t.Fatalf("select: %v", err)
	}
	m.CitySelected("Austin")
	if got := m.currentInfo(); got != "You selected 'Austin'" {
		t.Fatalf("unexpected info %q", got)
	}
	if len(m.pending) != 1 {
		t.Fatalf("expected expiry command queued, got %d", len(m.pending))
	}
	m.handleInfoExpiredMsg(infoExpiredMsg{})
	if m.currentInfo() == "" {
		t.Fatalf("expected info kept before its deadline")
	}
	m.infoExpire = time.Now().Add(-time.Second)
	m.handleInfoExpiredMsg(infoExpiredMsg{})
	if m.currentInfo() != "" {
		t.Fatalf("expected info cleared after deadline")
	}
}

func TestTitleChangeClearsInfoAndPrompt(t *testing.T) {
	m, nav := newTestModel(t, Options{})
	nav.SetSearchText("tex")
	m.currentLevel().SetFilter("tex", 3)
	m.setInfo("stale")
	if err := nav.SelectItem("Texas"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if m.currentInfo() != "" {
		t.Fatalf("expected info cleared on title change")
	}
	if m.currentLevel().Filter != "" || m.currentLevel().FilterCursor != 0 {
		t.Fatalf("expected prompt reset, got %q", m.currentLevel().Filter)
	}
	if m.currentLevel().ID != levelCities {
		t.Fatalf("expected cities level, got %s", m.currentLevel().ID)
	}
}

func TestBackPropagateQuits(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.BackPropagate()
	if !m.Quitting() {
		t.Fatalf("expected quitting after back propagation")
	}
	if len(m.pending) != 1 {
		t.Fatalf("expected quit command queued")
	}
	if msg := m.pending[0](); !reflect.DeepEqual(msg, tea.Quit()) {
		t.Fatalf("expected quit message, got %#v", msg)
	}
	if m.View() != "" {
		t.Fatalf("expected empty view while quitting")
	}
}

func TestHandlerForUnknownMessage(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	type unknownMsg struct{}
	if m.handlerFor(unknownMsg{}) != nil {
		t.Fatalf("expected no handler for unknown message")
	}
	if m.handlerFor(nil) != nil {
		t.Fatalf("expected no handler for nil message")
	}
	if m.handlerFor(&tea.WindowSizeMsg{}) == nil {
		t.Fatalf("expected pointer messages to resolve to their element handler")
	}
	if !strings.Contains(m.View(), "California") {
		t.Fatalf("expected view to render states")
	}
}
