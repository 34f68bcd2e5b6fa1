// Package dataset supplies the state and city records the picker browses.
// The US dataset is embedded in the binary; Source can point at replacement
// files with the same {"name", "code"} array layout.
package dataset

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/atomicstack/location-picker/internal/location"
	"github.com/atomicstack/location-picker/internal/logging/events"
)

const (
	bundledStates = "data/states_us.json"
	bundledCities = "data/cities_us.json"
	originBundled = "bundled"
)

//go:embed data/*.json
var bundled embed.FS

// Source selects where records are read from. Empty paths use the bundled
// dataset.
type Source struct {
	StatesPath string
	CitiesPath string
}

// Bundled reports whether the source falls back to the embedded files.
func (s Source) Bundled() bool {
	return s.StatesPath == "" && s.CitiesPath == ""
}

// Load reads both record lists and builds a store.
func Load(src Source, opts ...location.Option) (*location.Store, error) {
	var (
		fsys       fs.FS = bundled
		statesPath       = bundledStates
		citiesPath       = bundledCities
		origin           = originBundled
	)
	if !src.Bundled() {
		fsys = osFS{}
		statesPath, citiesPath = src.StatesPath, src.CitiesPath
		origin = statesPath + "," + citiesPath
	}
	stateRecs, err := readRecords(fsys, location.KindState, statesPath)
	if err != nil {
		return nil, fmt.Errorf("load states: %w", err)
	}
	cityRecs, err := readRecords(fsys, location.KindCity, citiesPath)
	if err != nil {
		return nil, fmt.Errorf("load cities: %w", err)
	}
	store, err := location.FromRecords(stateRecs, cityRecs, opts...)
	if err != nil {
		return nil, fmt.Errorf("build location store: %w", err)
	}
	events.Data.Loaded(origin, len(store.States()), len(store.Cities()))
	return store, nil
}

// bundledRecords returns the raw records for one of the bundled files.
func bundledRecords(kind location.Kind) ([]location.Record, error) {
	path := bundledStates
	if kind == location.KindCity {
		path = bundledCities
	}
	return readRecords(bundled, kind, path)
}

func readRecords(fsys fs.FS, kind location.Kind, path string) ([]location.Record, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return location.DecodeRecords(kind, f)
}

// osFS opens paths as given, absolute or relative to the working directory.
// os.DirFS would reject absolute paths.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}
