// Package systems contains the annual-cycle phase systems. Each system
// sweeps the whole grid; the orchestrator fixes their order.
package systems

import (
	"math/rand/v2"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rossum/components"
	"github.com/pthm-cable/rossum/fauna"
	"github.com/pthm-cable/rossum/island"
)

// FeedingSystem runs the feeding phase: herbivores graze the cell's
// fodder, then carnivores hunt the cell's herbivores.
type FeedingSystem struct{}

// Update feeds every cell. Within a cell the animal processing order
// is drawn fresh each year to avoid positional bias in contention for
// fodder and prey.
func (s *FeedingSystem) Update(isl *island.Island, params *fauna.Set, rng *rand.Rand) {
	cells := isl.Cells()
	for idx := range cells {
		c := &cells[idx]
		s.graze(isl, c, params.For(components.KindHerbivore), rng)
		s.hunt(isl, c, params, rng)
	}
}

// graze lets each herbivore, in random order, take up to its appetite
// from the cell's remaining fodder.
func (s *FeedingSystem) graze(isl *island.Island, c *island.Cell, p *fauna.Params, rng *rand.Rand) {
	if len(c.Herbs) == 0 {
		return
	}
	for _, i := range rng.Perm(len(c.Herbs)) {
		if c.Fodder <= 0 {
			break
		}
		a := isl.Animal(c.Herbs[i])
		intake := min(p.Appetite, c.Fodder)
		c.Fodder -= intake
		fauna.GainWeight(a, p, intake)
	}
}

// hunt lets each carnivore, in random order, work through the cell's
// herbivores from weakest to fittest until its appetite is filled.
func (s *FeedingSystem) hunt(isl *island.Island, c *island.Cell, params *fauna.Set, rng *rand.Rand) {
	if len(c.Carns) == 0 || len(c.Herbs) == 0 {
		return
	}
	cp := params.For(components.KindCarnivore)
	hp := params.For(components.KindHerbivore)

	for _, i := range rng.Perm(len(c.Carns)) {
		pred := isl.Animal(c.Carns[i])
		remaining := cp.Appetite

		// Snapshot the surviving prey, weakest first. Ties keep
		// arena order so the pass stays deterministic per seed.
		prey := slices.Clone(c.Herbs)
		slices.SortStableFunc(prey, func(a, b ecs.Entity) int {
			fa := params.FitnessOf(isl.Animal(a))
			fb := params.FitnessOf(isl.Animal(b))
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		})

		for _, e := range prey {
			if remaining <= 0 {
				break
			}
			target := isl.Animal(e)
			phiPred := fauna.Fitness(pred.Age, pred.Weight, cp)
			phiPrey := fauna.Fitness(target.Age, target.Weight, hp)
			p := killProbability(phiPred, phiPrey, cp.DeltaPhiMax)
			if p <= 0 {
				continue
			}
			if p < 1 && rng.Float64() >= p {
				continue
			}
			// Intake counts at most the remaining appetite; excess
			// prey mass is discarded, never banked.
			counted := min(remaining, target.Weight)
			remaining -= counted
			fauna.GainWeight(pred, cp, counted)
			isl.Despawn(c, e)
		}
	}
}

// killProbability is zero when the predator is no fitter than the prey,
// scales linearly with the fitness gap, and saturates at deltaPhiMax.
func killProbability(phiPred, phiPrey, deltaPhiMax float64) float64 {
	diff := phiPred - phiPrey
	if diff <= 0 {
		return 0
	}
	if diff >= deltaPhiMax {
		return 1
	}
	return diff / deltaPhiMax
}
