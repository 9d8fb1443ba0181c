package systems

import (
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rossum/fauna"
	"github.com/pthm-cable/rossum/island"
)

// LifecycleSystem runs the closing phases of the annual cycle: aging,
// weight loss, and death. Each phase completes across the whole grid
// before the next begins.
type LifecycleSystem struct {
	// Scratch for the collect-then-remove death pass.
	dead []ecs.Entity
}

// Update ages, thins, and reaps every animal, in that phase order.
func (s *LifecycleSystem) Update(isl *island.Island, params *fauna.Set, rng *rand.Rand) {
	s.age(isl)
	s.thin(isl, params)
	s.reap(isl, params, rng)
}

func (s *LifecycleSystem) age(isl *island.Island) {
	cells := isl.Cells()
	for idx := range cells {
		c := &cells[idx]
		for _, e := range c.Herbs {
			fauna.GrowOlder(isl.Animal(e))
		}
		for _, e := range c.Carns {
			fauna.GrowOlder(isl.Animal(e))
		}
	}
}

func (s *LifecycleSystem) thin(isl *island.Island, params *fauna.Set) {
	cells := isl.Cells()
	for idx := range cells {
		c := &cells[idx]
		for _, e := range c.Herbs {
			a := isl.Animal(e)
			fauna.LoseWeight(a, params.For(a.Kind))
		}
		for _, e := range c.Carns {
			a := isl.Animal(e)
			fauna.LoseWeight(a, params.For(a.Kind))
		}
	}
}

// reap evaluates death for every animal and removes the casualties.
// Removal is deferred until a cell's draws are done so the evaluation
// order never aliases the arena being edited.
func (s *LifecycleSystem) reap(isl *island.Island, params *fauna.Set, rng *rand.Rand) {
	cells := isl.Cells()
	for idx := range cells {
		c := &cells[idx]
		s.dead = s.dead[:0]
		for _, e := range c.Herbs {
			a := isl.Animal(e)
			if fauna.Dies(a, params.For(a.Kind), rng) {
				s.dead = append(s.dead, e)
			}
		}
		for _, e := range c.Carns {
			a := isl.Animal(e)
			if fauna.Dies(a, params.For(a.Kind), rng) {
				s.dead = append(s.dead, e)
			}
		}
		for _, e := range s.dead {
			isl.Despawn(c, e)
		}
	}
}
