package events

import "github.com/atomicstack/location-picker/internal/logging"

type AppTracer struct{}

type DataTracer struct{}

var (
	App  = AppTracer{}
	Data = DataTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}

func (DataTracer) Loaded(origin string, states, cities int) {
	logging.Trace("data.loaded", map[string]interface{}{
		"origin": origin,
		"states": states,
		"cities": cities,
	})
}
