package app

import (
	"errors"

	"github.com/atomicstack/location-picker/internal/dataset"
	"github.com/atomicstack/location-picker/internal/location"
	"github.com/atomicstack/location-picker/internal/navigation"
	"github.com/atomicstack/location-picker/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	StatesFile string
	CitiesFile string
	Title      string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Strict     bool
}

// NewModel loads the location data and wires a controller to a fresh UI
// model. Strict mode rejects duplicate state names and orphan cities.
func NewModel(cfg Config) (*ui.Model, error) {
	var opts []location.Option
	if cfg.Strict {
		opts = append(opts, location.WithUniqueStateNames(), location.WithReferentialIntegrity())
	}
	store, err := dataset.Load(dataset.Source{StatesPath: cfg.StatesFile, CitiesPath: cfg.CitiesFile}, opts...)
	if err != nil {
		return nil, err
	}
	nav := navigation.New(store, navigation.WithRootTitle(cfg.Title))
	return ui.NewModel(nav, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	}), nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
