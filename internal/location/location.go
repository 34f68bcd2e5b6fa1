package location

import (
	"fmt"
	"strings"
)

// Location is the shape shared by states and cities.
type Location struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// State is a top-level location whose code is unique across all states.
type State struct {
	Location
}

// City belongs to the State whose code equals its own. Several cities may
// share a code.
type City struct {
	Location
}

// Record is a parsed {name, code} entry as supplied by a loader.
type Record struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Kind identifies which collection a record belongs to.
type Kind string

const (
	KindState Kind = "state"
	KindCity  Kind = "city"
)

// DataFormatError reports a record that lacks a required field or a document
// that could not be read as a record list.
type DataFormatError struct {
	Kind  Kind
	Index int
	Field string
	Err   error
}

func (e *DataFormatError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Index >= 0 {
		fmt.Fprintf(&b, " record %d", e.Index)
	} else {
		b.WriteString(" records")
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": missing %q", e.Field)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

// LoadStates converts records into states, failing on the first record that
// has no name or code.
func LoadStates(records []Record) ([]State, error) {
	states := make([]State, 0, len(records))
	for i, rec := range records {
		if err := checkRecord(KindState, i, rec); err != nil {
			return nil, err
		}
		states = append(states, State{Location{Name: rec.Name, Code: rec.Code}})
	}
	return states, nil
}

// LoadCities converts records into cities, failing on the first record that
// has no name or code.
func LoadCities(records []Record) ([]City, error) {
	cities := make([]City, 0, len(records))
	for i, rec := range records {
		if err := checkRecord(KindCity, i, rec); err != nil {
			return nil, err
		}
		cities = append(cities, City{Location{Name: rec.Name, Code: rec.Code}})
	}
	return cities, nil
}

func checkRecord(kind Kind, idx int, rec Record) error {
	if strings.TrimSpace(rec.Name) == "" {
		return &DataFormatError{Kind: kind, Index: idx, Field: "name"}
	}
	if strings.TrimSpace(rec.Code) == "" {
		return &DataFormatError{Kind: kind, Index: idx, Field: "code"}
	}
	return nil
}
