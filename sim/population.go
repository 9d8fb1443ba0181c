package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/rossum/island"
)

// LoadPopulation reads a YAML population file: a list of entries with a
// one-based `loc: [row, col]` and a `pop` list of species/age/weight
// records.
func LoadPopulation(path string) ([]island.PopulationEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading population file: %w", err)
	}
	var entries []island.PopulationEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing population file: %w", err)
	}
	return entries, nil
}

// LoadMap reads an island map file: one terrain symbol per cell, one
// line per row.
func LoadMap(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading map file: %w", err)
	}
	return string(data), nil
}
