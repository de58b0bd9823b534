package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AliasTable maps lower-cased observed display names to canonical
// display names.
type AliasTable map[string]string

// LoadAliases reads a YAML alias table. Keys are lower-cased on load so
// lookups are case-insensitive regardless of how the file spells them.
//
//	j graves: J Graves
//	d burnett: D Burnett
func LoadAliases(path string) (AliasTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read alias table %s: %w", path, err)
	}
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse alias table %s: %w", path, err)
	}
	table := make(AliasTable, len(raw))
	for alias, canonical := range raw {
		table[strings.ToLower(strings.TrimSpace(alias))] = strings.TrimSpace(canonical)
	}
	return table, nil
}
