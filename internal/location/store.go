package location

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DuplicateNameError is returned when unique state names are enforced and two
// states share a name.
type DuplicateNameError struct {
	Name   string
	First  int
	Second int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate state name %q at records %d and %d", e.Name, e.First, e.Second)
}

// OrphanCityError is returned when referential integrity is enforced and a
// city code matches no state.
type OrphanCityError struct {
	City  string
	Code  string
	Index int
}

func (e *OrphanCityError) Error() string {
	return fmt.Sprintf("city record %d (%s) references unknown state code %q", e.Index, e.City, e.Code)
}

// Option adjusts how a Store validates its collections.
type Option func(*options)

type options struct {
	uniqueNames bool
	integrity   bool
}

// WithUniqueStateNames rejects datasets where two states share a name.
func WithUniqueStateNames() Option {
	return func(o *options) { o.uniqueNames = true }
}

// WithReferentialIntegrity rejects cities whose code matches no state.
func WithReferentialIntegrity() Option {
	return func(o *options) { o.integrity = true }
}

// Store holds the immutable state and city collections.
type Store struct {
	states []State
	cities []City
	byCode map[string][]int
}

// New builds a store from already loaded collections. The slices are copied.
func New(states []State, cities []City, opts ...Option) (*Store, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	s := &Store{
		states: append([]State(nil), states...),
		cities: append([]City(nil), cities...),
		byCode: make(map[string][]int),
	}
	if o.uniqueNames {
		seen := make(map[string]int, len(s.states))
		for i, st := range s.states {
			if first, ok := seen[st.Name]; ok {
				return nil, &DuplicateNameError{Name: st.Name, First: first, Second: i}
			}
			seen[st.Name] = i
		}
	}
	var known map[string]struct{}
	if o.integrity {
		known = make(map[string]struct{}, len(s.states))
		for _, st := range s.states {
			known[st.Code] = struct{}{}
		}
	}
	for i, c := range s.cities {
		if known != nil {
			if _, ok := known[c.Code]; !ok {
				return nil, &OrphanCityError{City: c.Name, Code: c.Code, Index: i}
			}
		}
		s.byCode[c.Code] = append(s.byCode[c.Code], i)
	}
	return s, nil
}

// FromRecords loads both collections from parsed records and builds a store.
func FromRecords(stateRecs, cityRecs []Record, opts ...Option) (*Store, error) {
	states, err := LoadStates(stateRecs)
	if err != nil {
		return nil, err
	}
	cities, err := LoadCities(cityRecs)
	if err != nil {
		return nil, err
	}
	return New(states, cities, opts...)
}

// States returns all states in load order.
func (s *Store) States() []State {
	return append([]State(nil), s.states...)
}

// Cities returns all cities in load order.
func (s *Store) Cities() []City {
	return append([]City(nil), s.cities...)
}

// StateNames returns the state display names in load order.
func (s *Store) StateNames() []string {
	names := make([]string, len(s.states))
	for i, st := range s.states {
		names[i] = st.Name
	}
	return names
}

// CitiesOf returns the cities whose code equals stateCode, in load order.
// An unknown code yields an empty slice.
func (s *Store) CitiesOf(stateCode string) []City {
	idxs := s.byCode[stateCode]
	out := make([]City, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, s.cities[i])
	}
	return out
}

// StateByName returns the first state with the given name.
func (s *Store) StateByName(name string) (State, bool) {
	for _, st := range s.states {
		if st.Name == name {
			return st, true
		}
	}
	return State{}, false
}

// Suggest returns the state name closest to name by edit distance, ignoring
// case. It reports false only when the store has no states.
func (s *Store) Suggest(name string) (string, bool) {
	if len(s.states) == 0 {
		return "", false
	}
	query := strings.ToLower(name)
	best := s.states[0].Name
	bestDist := levenshtein.ComputeDistance(query, strings.ToLower(best))
	for _, st := range s.states[1:] {
		d := levenshtein.ComputeDistance(query, strings.ToLower(st.Name))
		if d < bestDist {
			best, bestDist = st.Name, d
		}
	}
	return best, true
}
