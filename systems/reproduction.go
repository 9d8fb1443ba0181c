package systems

import (
	"math/rand/v2"
	"slices"

	"github.com/pthm-cable/rossum/components"
	"github.com/pthm-cable/rossum/fauna"
	"github.com/pthm-cable/rossum/island"
)

// ReproductionSystem runs the yearly breeding phase. Each species breeds
// independently within its cell; the birth probability depends on the
// same-species headcount before any births of the current year.
type ReproductionSystem struct{}

// Update breeds every cell.
func (s *ReproductionSystem) Update(isl *island.Island, params *fauna.Set, rng *rand.Rand) {
	cells := isl.Cells()
	for idx := range cells {
		c := &cells[idx]
		for k := components.Kind(0); k < components.NumKinds; k++ {
			s.breed(isl, c, k, params.For(k), rng)
		}
	}
}

func (s *ReproductionSystem) breed(isl *island.Island, c *island.Cell, k components.Kind, p *fauna.Params, rng *rand.Rand) {
	n := c.Count(k)
	if n < 2 {
		// Birth probability is gamma * phi * (N-1); a lone animal
		// never breeds.
		return
	}

	// Snapshot the parents so newborns appended this year are neither
	// iterated nor counted.
	parents := slices.Clone(*c.Bucket(k))
	for _, i := range rng.Perm(n) {
		parent := isl.Animal(parents[i])
		if parent.Weight < p.Zeta*(p.WBirth+p.SigmaBirth) {
			continue
		}
		prob := p.Gamma * fauna.Fitness(parent.Age, parent.Weight, p) * float64(n-1)
		if rng.Float64() >= min(1, prob) {
			continue
		}
		wb := fauna.BirthWeight(p, rng)
		cost := p.Xi * wb
		if parent.Weight < cost {
			// The parent cannot afford the mass transfer; no birth
			// and no weight change.
			continue
		}
		parent.Weight -= cost
		isl.Spawn(c, components.Animal{Kind: k, Age: 0, Weight: wb, Moved: true})
	}
}
