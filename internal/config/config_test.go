package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.StatesFile != "" || cfg.App.CitiesFile != "" || cfg.App.Strict {
		t.Fatalf("unexpected defaults %#v", cfg.App)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected logging defaults %#v", cfg.Logging)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected bundled defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{
		envTitle + "=From env",
		envWidth + "=50",
		envStrict + "=true",
		envTrace + "=1",
		"MALFORMED",
	}
	cfg, err := LoadArgs([]string{"-width", "60", "-footer", "-title", "Pick one"}, environ)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 60 {
		t.Fatalf("expected flag width 60, got %d", cfg.App.Width)
	}
	if cfg.App.Title != "Pick one" {
		t.Fatalf("expected flag title, got %q", cfg.App.Title)
	}
	if !cfg.App.Strict || !cfg.Logging.Trace || !cfg.App.ShowFooter {
		t.Fatalf("expected strict, trace and footer enabled, got %#v %#v", cfg.App, cfg.Logging)
	}
	if cfg.Flags["width"] != "60" || cfg.Flags["strict"] != "true" {
		t.Fatalf("unexpected flag snapshot %v", cfg.Flags)
	}
	if len(cfg.Args) != 5 {
		t.Fatalf("expected args copied, got %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresUnparsableEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envHeight + "=tall", envVerbose + "=maybe"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Height != 0 || cfg.App.Verbose {
		t.Fatalf("expected fallbacks, got %#v", cfg.App)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected width error")
	}
	if _, err := LoadArgs([]string{"-height", "-3"}, nil); err == nil {
		t.Fatalf("expected height error")
	}
	if _, err := LoadArgs([]string{"-unknown"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestValidateDataFiles(t *testing.T) {
	dir := t.TempDir()
	states := filepath.Join(dir, "states.json")
	cities := filepath.Join(dir, "cities.json")
	for _, path := range []string{states, cities} {
		if err := os.WriteFile(path, []byte("[]"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	cfg, err := LoadArgs([]string{"-states-file", states}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := Validate(cfg); !errors.Is(err, errUnpairedDataFiles) {
		t.Fatalf("expected unpaired error, got %v", err)
	}

	cfg, err = LoadArgs(nil, []string{envStatesFile + "=" + states, envCitiesFile + "=" + cities})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected paired files to validate, got %v", err)
	}

	cfg.App.CitiesFile = filepath.Join(dir, "missing.json")
	if err := Validate(cfg); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected missing file error, got %v", err)
	}

	cfg.App.CitiesFile = dir
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected directory to be rejected")
	}
}
