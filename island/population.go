package island

import (
	"fmt"

	"github.com/pthm-cable/rossum/components"
)

// AnimalRecord describes one animal to insert.
type AnimalRecord struct {
	Species string  `yaml:"species"`
	Age     int     `yaml:"age"`
	Weight  float64 `yaml:"weight"`
}

// PopulationEntry describes animals to insert at one map location.
// Loc uses one-based (row, col) map coordinates.
type PopulationEntry struct {
	Loc [2]int         `yaml:"loc"`
	Pop []AnimalRecord `yaml:"pop"`
}

// AddPopulation inserts animals into their cells. The whole batch is
// validated before any animal is placed, so a rejected call leaves the
// island untouched.
func (i *Island) AddPopulation(entries []PopulationEntry) error {
	for _, entry := range entries {
		cell := i.At(entry.Loc[0], entry.Loc[1])
		if cell == nil {
			return fmt.Errorf("%w: location (%d, %d) is outside the map", ErrBadPopulation, entry.Loc[0], entry.Loc[1])
		}
		if !cell.Terrain.Habitable() {
			return fmt.Errorf("%w: location (%d, %d) is water", ErrBadPopulation, entry.Loc[0], entry.Loc[1])
		}
		for _, rec := range entry.Pop {
			if _, ok := components.ParseKind(rec.Species); !ok {
				return fmt.Errorf("%w: unknown species %q", ErrBadPopulation, rec.Species)
			}
			if rec.Age < 0 {
				return fmt.Errorf("%w: age must be >= 0, got %d", ErrBadPopulation, rec.Age)
			}
			if rec.Weight <= 0 {
				return fmt.Errorf("%w: weight must be > 0, got %v", ErrBadPopulation, rec.Weight)
			}
		}
	}

	for _, entry := range entries {
		cell := i.At(entry.Loc[0], entry.Loc[1])
		for _, rec := range entry.Pop {
			kind, _ := components.ParseKind(rec.Species)
			i.Spawn(cell, components.Animal{Kind: kind, Age: rec.Age, Weight: rec.Weight})
		}
	}
	return nil
}
