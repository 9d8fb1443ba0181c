package systems

import (
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/pthm-cable/rossum/components"
	"github.com/pthm-cable/rossum/fauna"
	"github.com/pthm-cable/rossum/island"
)

// MigrationSystem runs the grid-wide migration pass. An animal moves at
// most once per year, to one of its four orthogonal neighbors, drawn
// proportionally to a density-dependent propensity score.
type MigrationSystem struct {
	// Lambda controls how sharply migrants prefer food-rich, sparsely
	// populated neighbor cells.
	Lambda float64
}

// NewMigrationSystem creates the migration system with the given
// propensity decay constant.
func NewMigrationSystem(lambda float64) *MigrationSystem {
	return &MigrationSystem{Lambda: lambda}
}

// Update sweeps the grid once. Animals that already migrated this year,
// including immigrants placed earlier in the sweep, are skipped.
func (s *MigrationSystem) Update(isl *island.Island, params *fauna.Set, rng *rand.Rand) {
	var neighbors []*island.Cell
	weights := make([]float64, 0, 4)

	cells := isl.Cells()
	for idx := range cells {
		c := &cells[idx]
		if len(c.Herbs) == 0 && len(c.Carns) == 0 {
			continue
		}

		// Both species share one randomized processing order.
		occupants := slices.Clone(c.Herbs)
		occupants = append(occupants, c.Carns...)
		rng.Shuffle(len(occupants), func(a, b int) {
			occupants[a], occupants[b] = occupants[b], occupants[a]
		})

		for _, e := range occupants {
			a := isl.Animal(e)
			if a.Moved {
				continue
			}
			p := params.For(a.Kind)
			if !fauna.WantsToMove(a, p, rng) {
				continue
			}

			neighbors = isl.Neighbors(c, neighbors[:0])
			weights = weights[:0]
			var total float64
			for _, n := range neighbors {
				w := s.propensity(isl, n, a.Kind)
				weights = append(weights, w)
				total += w
			}
			if total <= 0 {
				// Landlocked; the move attempt lapses.
				continue
			}
			dest, ok := sampleuv.NewWeighted(weights, rng).Take()
			if !ok {
				continue
			}
			isl.Move(c, neighbors[dest], e)
			a.Moved = true
		}
	}
}

// propensity scores a destination cell. Herbivores are drawn to fodder
// per herbivore, carnivores to herbivore biomass per carnivore. Water is
// never a destination.
func (s *MigrationSystem) propensity(isl *island.Island, c *island.Cell, k components.Kind) float64 {
	if !c.Terrain.Habitable() {
		return 0
	}
	var abundance float64
	if k == components.KindCarnivore {
		abundance = isl.HerbBiomass(c) / float64(len(c.Carns)+1)
	} else {
		abundance = c.Fodder / float64(len(c.Herbs)+1)
	}
	// Clamp the exponent so an extreme density gap cannot overflow the
	// weighted draw to +Inf.
	return math.Exp(min(s.Lambda*abundance, maxPropensityExp))
}

const maxPropensityExp = 500.0
