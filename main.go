package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/location-picker/internal/app"
	"github.com/atomicstack/location-picker/internal/config"
	"github.com/atomicstack/location-picker/internal/location"
	"github.com/atomicstack/location-picker/internal/logging"
	"github.com/atomicstack/location-picker/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintln(os.Stderr, exitMessage(err, logging.Path()))
		os.Exit(1)
	}
}

// exitMessage explains a failed run, pointing at the flag or file to fix for
// the data errors the store reports.
func exitMessage(err error, logPath string) string {
	var (
		formatErr *location.DataFormatError
		dupErr    *location.DuplicateNameError
		orphanErr *location.OrphanCityError
		msg       string
	)
	switch {
	case errors.As(err, &formatErr):
		msg = fmt.Sprintf("Invalid %s data: %v", formatErr.Kind, err)
		if formatErr.Field != "" {
			msg += fmt.Sprintf("\nEvery %s record needs a non-empty %q.", formatErr.Kind, formatErr.Field)
		}
	case errors.As(err, &dupErr):
		msg = fmt.Sprintf("State %q appears twice (records %d and %d).\nRemove one or run without -strict to keep the first.",
			dupErr.Name, dupErr.First, dupErr.Second)
	case errors.As(err, &orphanErr):
		msg = fmt.Sprintf("City %q (record %d) uses state code %q, which no state has.\nFix the code or run without -strict to skip it.",
			orphanErr.City, orphanErr.Index, orphanErr.Code)
	default:
		msg = fmt.Sprintf("Error: %v", err)
	}
	if logPath != "" {
		msg += fmt.Sprintf("\nDetails were written to %s.", logPath)
	}
	return msg
}

func traceStartup(cfg config.Config) {
	if !logging.TraceEnabled() {
		return
	}
	events.App.Start(startupTracePayload(cfg))
}

type datasetTrace struct {
	Source     string `json:"source"`
	StatesFile string `json:"states_file,omitempty"`
	CitiesFile string `json:"cities_file,omitempty"`
	Strict     bool   `json:"strict"`
}

func describeDataset(cfg app.Config) datasetTrace {
	d := datasetTrace{Source: "bundled", Strict: cfg.Strict}
	if cfg.StatesFile != "" || cfg.CitiesFile != "" {
		d.Source = "files"
		d.StatesFile = cfg.StatesFile
		d.CitiesFile = cfg.CitiesFile
	}
	return d
}

// startupTracePayload records where the data comes from and how the picker
// will size itself.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"dataset":  describeDataset(cfg.App),
		"title":    cfg.App.Title,
		"viewport": resolveViewport(cfg.App, probeTerminal()),
		"logFile":  logging.Path(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	return payload
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// viewport is the size the picker will draw at. Fixed dimensions come from
// -width/-height; the rest follow the terminal.
type viewport struct {
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	FixedWidth  bool            `json:"fixed_width"`
	FixedHeight bool            `json:"fixed_height"`
	Interactive bool            `json:"interactive"`
	Probes      []terminalProbe `json:"probes"`
}

// probeTerminal checks the descriptors the picker reads keys from and draws
// to.
func probeTerminal() []terminalProbe {
	targets := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
	}
	probes := make([]terminalProbe, 0, len(targets))
	for _, target := range targets {
		probe := terminalProbe{Name: target.name}
		fd := int(target.file.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			probe.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				probe.Width, probe.Height = width, height
			} else {
				probe.Error = err.Error()
			}
		}
		probes = append(probes, probe)
	}
	return probes
}

func resolveViewport(cfg app.Config, probes []terminalProbe) viewport {
	vp := viewport{
		Width:       cfg.Width,
		Height:      cfg.Height,
		FixedWidth:  cfg.Width > 0,
		FixedHeight: cfg.Height > 0,
		Interactive: len(probes) > 0,
		Probes:      probes,
	}
	for _, probe := range probes {
		if !probe.IsTerminal {
			vp.Interactive = false
			continue
		}
		if probe.Name != "stdout" {
			continue
		}
		if !vp.FixedWidth {
			vp.Width = probe.Width
		}
		if !vp.FixedHeight {
			vp.Height = probe.Height
		}
	}
	return vp
}
