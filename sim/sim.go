// Package sim drives the annual cycle of the island simulation.
package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/pthm-cable/rossum/components"
	"github.com/pthm-cable/rossum/config"
	"github.com/pthm-cable/rossum/fauna"
	"github.com/pthm-cable/rossum/island"
	"github.com/pthm-cable/rossum/systems"
	"github.com/pthm-cable/rossum/telemetry"
)

// Simulation owns an island and advances it year by year. A Simulation
// may be run repeatedly; population insertion and parameter updates are
// allowed between runs but never mid-year.
type Simulation struct {
	isl    *island.Island
	params fauna.Set
	rng    *rand.Rand
	year   int

	feeding      systems.FeedingSystem
	reproduction systems.ReproductionSystem
	migration    *systems.MigrationSystem
	lifecycle    systems.LifecycleSystem
}

// New creates a simulation from a map string and configuration, seeding
// the single RNG every stochastic draw is sourced from.
func New(mapStr string, cfg *config.Config, seed uint64) (*Simulation, error) {
	isl, err := island.New(mapStr)
	if err != nil {
		return nil, err
	}
	if err := isl.SetFodderMax(island.TerrainLowland, cfg.Terrain.LowlandFodder); err != nil {
		return nil, err
	}
	if err := isl.SetFodderMax(island.TerrainHighland, cfg.Terrain.HighlandFodder); err != nil {
		return nil, err
	}

	return &Simulation{
		isl:       isl,
		params:    cfg.ParamSet(),
		rng:       rand.New(rand.NewPCG(seed, 0)),
		migration: systems.NewMigrationSystem(cfg.Migration.Lambda),
	}, nil
}

// Island exposes the grid for census consumers.
func (s *Simulation) Island() *island.Island { return s.isl }

// Year returns the number of fully simulated years.
func (s *Simulation) Year() int { return s.year }

// Params returns the active parameter sets.
func (s *Simulation) Params() *fauna.Set { return &s.params }

// AddPopulation inserts animals between runs.
func (s *Simulation) AddPopulation(entries []island.PopulationEntry) error {
	return s.isl.AddPopulation(entries)
}

// SetAnimalParams replaces the parameter set of a species. The update is
// validated as a whole and applies from the next simulated year.
func (s *Simulation) SetAnimalParams(species string, p fauna.Params) error {
	kind, ok := components.ParseKind(species)
	if !ok {
		return fmt.Errorf("%w: unknown species %q", fauna.ErrInvalidParameter, species)
	}
	if err := p.Validate(kind); err != nil {
		return err
	}
	s.params[kind] = p
	return nil
}

// SetTerrainParams overrides the fodder cap of a terrain type from the
// next simulated year.
func (s *Simulation) SetTerrainParams(symbol string, fodderMax float64) error {
	if len(symbol) != 1 {
		return fmt.Errorf("%w: unknown terrain %q", island.ErrInvalidLandscape, symbol)
	}
	t, err := island.ParseTerrain(symbol[0])
	if err != nil {
		return fmt.Errorf("%w: unknown terrain %q", island.ErrInvalidLandscape, symbol)
	}
	return s.isl.SetFodderMax(t, fodderMax)
}

// AdvanceYear runs one annual cycle: fodder regrowth, feeding,
// reproduction, migration, aging, weight loss, death. Every phase
// completes grid-wide before the next begins. Returns the post-year
// census row and per-cell counts from a single grid pass.
func (s *Simulation) AdvanceYear() (telemetry.YearStats, []telemetry.CellCount) {
	s.isl.ResetMoveFlags()
	s.isl.Regrow()
	s.feeding.Update(s.isl, &s.params, s.rng)
	s.reproduction.Update(s.isl, &s.params, s.rng)
	s.migration.Update(s.isl, &s.params, s.rng)
	s.lifecycle.Update(s.isl, &s.params, s.rng)

	s.year++
	return telemetry.Census(s.year, s.isl, &s.params)
}

// Run simulates the requested number of years and returns one census row
// per completed year. Calling Run again continues from the current state.
func (s *Simulation) Run(years int) []telemetry.YearStats {
	stats := make([]telemetry.YearStats, 0, years)
	for i := 0; i < years; i++ {
		ys, _ := s.AdvanceYear()
		stats = append(stats, ys)
	}
	return stats
}

// Census returns the current census row and per-cell counts.
func (s *Simulation) Census() (telemetry.YearStats, []telemetry.CellCount) {
	return telemetry.Census(s.year, s.isl, &s.params)
}

// NumAnimals returns the island-wide total across both species.
func (s *Simulation) NumAnimals() int {
	herbs, carns := s.isl.Counts()
	return herbs + carns
}

// NumAnimalsPerSpecies returns the island-wide count per species name.
func (s *Simulation) NumAnimalsPerSpecies() map[string]int {
	herbs, carns := s.isl.Counts()
	return map[string]int{
		components.KindHerbivore.String(): herbs,
		components.KindCarnivore.String(): carns,
	}
}
