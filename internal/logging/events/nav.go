package events

import "github.com/atomicstack/location-picker/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Select(level, name, search string) {
	logging.Trace("nav.select", map[string]interface{}{"level": level, "name": name, "search": search})
}

func (NavTracer) Drill(state, code string) {
	logging.Trace("nav.drill", map[string]interface{}{"state": state, "code": code})
}

func (NavTracer) CitySelected(state, city string) {
	logging.Trace("nav.city", map[string]interface{}{"state": state, "city": city})
}

func (NavTracer) Back(from string) {
	logging.Trace("nav.back", map[string]interface{}{"from": from})
}

func (NavTracer) BackPropagate() {
	logging.Trace("nav.back.propagate", nil)
}

func (NavTracer) Search(level, text string) {
	logging.Trace("nav.search", map[string]interface{}{"level": level, "text": text})
}

// LookupMiss records a selection that matched nothing. suggestion may be empty.
func (NavTracer) LookupMiss(level, name, suggestion string) {
	payload := map[string]interface{}{"level": level, "name": name}
	if suggestion != "" {
		payload["suggestion"] = suggestion
	}
	logging.Trace("nav.lookup-miss", payload)
}
