package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/location-picker/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envStatesFile = "LOCATION_PICKER_STATES_FILE"
	envCitiesFile = "LOCATION_PICKER_CITIES_FILE"
	envTitle      = "LOCATION_PICKER_TITLE"
	envWidth      = "LOCATION_PICKER_WIDTH"
	envHeight     = "LOCATION_PICKER_HEIGHT"
	envShowFooter = "LOCATION_PICKER_FOOTER"
	envVerbose    = "LOCATION_PICKER_VERBOSE"
	envTrace      = "LOCATION_PICKER_TRACE"
	envLogFile    = "LOCATION_PICKER_LOG_FILE"
	envStrict     = "LOCATION_PICKER_STRICT"
)

var errUnpairedDataFiles = errors.New("-states-file and -cities-file must be given together")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("location-picker", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	statesFile := fs.String("states-file", envOrDefault(env, envStatesFile, ""), "JSON file of states to browse instead of the bundled US list")
	citiesFile := fs.String("cities-file", envOrDefault(env, envCitiesFile, ""), "JSON file of cities to browse instead of the bundled US list")
	title := fs.String("title", envOrDefault(env, envTitle, ""), "title shown above the state list")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show an item counter next to the title")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	strict := fs.Bool("strict", envOrBool(env, envStrict, false), "reject duplicate state names and cities with unknown state codes")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			StatesFile: strings.TrimSpace(*statesFile),
			CitiesFile: strings.TrimSpace(*citiesFile),
			Title:      *title,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Strict:     *strict,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"statesFile": *statesFile,
			"citiesFile": *citiesFile,
			"title":      *title,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"footer":     strconv.FormatBool(*footer),
			"trace":      strconv.FormatBool(*trace),
			"verbose":    strconv.FormatBool(*verbose),
			"logFile":    *logFile,
			"strict":     strconv.FormatBool(*strict),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks that override data files come as a pair and exist.
func Validate(cfg Config) error {
	states, cities := cfg.App.StatesFile, cfg.App.CitiesFile
	if states == "" && cities == "" {
		return nil
	}
	if states == "" || cities == "" {
		return errUnpairedDataFiles
	}
	for _, path := range []string{states, cities} {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("data file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("data file %s is a directory", path)
		}
	}
	return nil
}
