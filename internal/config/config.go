package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Quality standard presets. A threshold of 999 disables filtering.
const (
	StandardNone         = 999.0
	StandardConservative = 8.0
	StandardModerate     = 4.0
	StandardProfessional = 2.0
	StandardStrict       = 1.0
)

// Config holds all tally configuration.
type Config struct {
	Loader LoaderConfig `yaml:"loader"`
	Engine EngineConfig `yaml:"engine"`
	Output OutputConfig `yaml:"output"`
}

// LoaderConfig holds row-source settings.
type LoaderConfig struct {
	Source   string `yaml:"source"`   // "tsv", "http", "sqlite"
	Path     string `yaml:"path"`     // file or database path
	Endpoint string `yaml:"endpoint"` // http source URL
	APIKey   string `yaml:"api_key"`
	Table    string `yaml:"table"`  // sqlite table name
	Header   bool   `yaml:"header"` // first tsv row is a header
}

// EngineConfig holds reconciliation engine settings.
type EngineConfig struct {
	QualityStandard float64 `yaml:"quality_standard"` // τ, one of the presets
	DefaultTimezone string  `yaml:"default_timezone"` // IANA name for ambiguous local times
	AliasPath       string  `yaml:"alias_path"`       // YAML alias table
	RequireAliases  bool    `yaml:"require_aliases"`  // fail when the alias table is missing
}

// OutputConfig holds result destination settings.
type OutputConfig struct {
	Format    string `yaml:"format"` // "stdout" or "file"
	Path      string `yaml:"path"`
	Pretty    bool   `yaml:"pretty"`
	Verbosity string `yaml:"verbosity"` // "minimal", "standard", "full"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Loader: LoaderConfig{
			Source:   getenv("TALLY_SOURCE", "tsv"),
			Path:     os.Getenv("TALLY_PATH"),
			Endpoint: os.Getenv("TALLY_ENDPOINT"),
			APIKey:   os.Getenv("TALLY_API_KEY"),
			Table:    getenv("TALLY_TABLE", "time_entries"),
			Header:   getenvBool("TALLY_HEADER", true),
		},
		Engine: EngineConfig{
			QualityStandard: getenvFloat("TALLY_QUALITY_STANDARD", StandardConservative),
			DefaultTimezone: getenv("TALLY_DEFAULT_TZ", "UTC"),
			AliasPath:       os.Getenv("TALLY_ALIASES"),
			RequireAliases:  getenvBool("TALLY_REQUIRE_ALIASES", false),
		},
		Output: OutputConfig{
			Format:    getenv("TALLY_OUTPUT", "stdout"),
			Path:      os.Getenv("TALLY_OUTPUT_PATH"),
			Pretty:    getenvBool("TALLY_OUTPUT_PRETTY", false),
			Verbosity: getenv("TALLY_VERBOSITY", "standard"),
		},
	}
}

// LoadFile reads a YAML config file and overlays it on the env defaults.
// Fields absent from the file keep their Load() values.
func LoadFile(path string) (Config, error) {
	cfg := Load()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseStandard resolves a quality-standard spelling — a preset name or
// one of the recognized numeric thresholds — to its τ value.
func ParseStandard(s string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return StandardNone, nil
	case "conservative":
		return StandardConservative, nil
	case "moderate":
		return StandardModerate, nil
	case "professional":
		return StandardProfessional, nil
	case "strict":
		return StandardStrict, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("config: unrecognized quality standard %q", s)
	}
	if !ValidStandard(f) {
		return 0, fmt.Errorf("config: unrecognized quality standard %v (want 999, 8, 4, 2 or 1)", f)
	}
	return f, nil
}

// ValidStandard reports whether τ is one of the recognized presets.
func ValidStandard(tau float64) bool {
	switch tau {
	case StandardNone, StandardConservative, StandardModerate, StandardProfessional, StandardStrict:
		return true
	}
	return false
}

// StandardName returns the preset name for a τ value, or its numeric form.
func StandardName(tau float64) string {
	switch tau {
	case StandardNone:
		return "none"
	case StandardConservative:
		return "conservative"
	case StandardModerate:
		return "moderate"
	case StandardProfessional:
		return "professional"
	case StandardStrict:
		return "strict"
	}
	return strconv.FormatFloat(tau, 'g', -1, 64)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
