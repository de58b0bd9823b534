package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TALLY_SOURCE", "TALLY_PATH", "TALLY_ENDPOINT", "TALLY_API_KEY",
		"TALLY_TABLE", "TALLY_HEADER", "TALLY_QUALITY_STANDARD",
		"TALLY_DEFAULT_TZ", "TALLY_ALIASES", "TALLY_REQUIRE_ALIASES",
		"TALLY_OUTPUT", "TALLY_OUTPUT_PATH", "TALLY_OUTPUT_PRETTY",
		"TALLY_VERBOSITY",
	} {
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	if cfg.Loader.Source != "tsv" {
		t.Fatalf("expected default source 'tsv', got %q", cfg.Loader.Source)
	}
	if !cfg.Loader.Header {
		t.Fatal("expected default Header=true")
	}
	if cfg.Engine.QualityStandard != StandardConservative {
		t.Fatalf("expected default standard %v, got %v", StandardConservative, cfg.Engine.QualityStandard)
	}
	if cfg.Engine.DefaultTimezone != "UTC" {
		t.Fatalf("expected default timezone UTC, got %q", cfg.Engine.DefaultTimezone)
	}
	if cfg.Output.Format != "stdout" || cfg.Output.Verbosity != "standard" {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	os.Setenv("TALLY_QUALITY_STANDARD", "4")
	os.Setenv("TALLY_SOURCE", "sqlite")
	defer clearEnv(t)

	cfg := Load()
	if cfg.Engine.QualityStandard != 4 {
		t.Fatalf("expected standard 4, got %v", cfg.Engine.QualityStandard)
	}
	if cfg.Loader.Source != "sqlite" {
		t.Fatalf("expected source sqlite, got %q", cfg.Loader.Source)
	}
}

func TestLoadFile_OverlaysEnvDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tally.yaml")
	data := []byte(`
engine:
  quality_standard: 2
  default_timezone: America/New_York
output:
  format: file
  path: out.json
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.Engine.QualityStandard != 2 || cfg.Engine.DefaultTimezone != "America/New_York" {
		t.Fatalf("file values not applied: %+v", cfg.Engine)
	}
	if cfg.Output.Format != "file" || cfg.Output.Path != "out.json" {
		t.Fatalf("file values not applied: %+v", cfg.Output)
	}
	// Untouched fields keep their defaults.
	if cfg.Loader.Source != "tsv" {
		t.Fatalf("expected default source preserved, got %q", cfg.Loader.Source)
	}
}

func TestLoadFile_MissingOrBroken(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for a missing file")
	}
	path := filepath.Join(t.TempDir(), "broken.yaml")
	os.WriteFile(path, []byte("engine: ["), 0o644)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for unparseable yaml")
	}
}

func TestParseStandard(t *testing.T) {
	cases := map[string]float64{
		"none":         999,
		"conservative": 8,
		"Moderate":     4,
		"professional": 2,
		"strict":       1,
		"8":            8,
		"999":          999,
	}
	for in, want := range cases {
		got, err := ParseStandard(in)
		if err != nil {
			t.Fatalf("ParseStandard(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseStandard(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"", "7", "wild", "0"} {
		if _, err := ParseStandard(in); err == nil {
			t.Fatalf("ParseStandard(%q): expected error", in)
		}
	}
}

func TestStandardName(t *testing.T) {
	if StandardName(8) != "conservative" || StandardName(999) != "none" {
		t.Fatal("preset names wrong")
	}
}

func TestLoadAliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	data := []byte("J GRAVES: J Graves\n\"  d burnett \": D Burnett\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write aliases: %v", err)
	}

	table, err := LoadAliases(path)
	if err != nil {
		t.Fatalf("LoadAliases() error: %v", err)
	}
	if table["j graves"] != "J Graves" {
		t.Fatalf("expected lower-cased key lookup, got %v", table)
	}
	if table["d burnett"] != "D Burnett" {
		t.Fatalf("expected trimmed key, got %v", table)
	}

	if _, err := LoadAliases(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for a missing alias table")
	}
}
