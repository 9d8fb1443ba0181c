package island

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rossum/components"
)

// Cell is one grid location. It owns ordered per-species collections of
// animal handles; the handles index into the island's entity world.
type Cell struct {
	Row, Col int
	Terrain  Terrain
	Fodder   float64

	Herbs []ecs.Entity
	Carns []ecs.Entity
}

// Bucket returns the cell's collection for a species.
func (c *Cell) Bucket(k components.Kind) *[]ecs.Entity {
	if k == components.KindCarnivore {
		return &c.Carns
	}
	return &c.Herbs
}

// Count returns the number of animals of a species in the cell.
func (c *Cell) Count(k components.Kind) int {
	return len(*c.Bucket(k))
}

// Regrow resets the cell's fodder for a new year. Terrain that grows no
// fodder stays at zero.
func (c *Cell) Regrow(max float64) {
	if c.Terrain.GrowsFodder() {
		c.Fodder = max
	} else {
		c.Fodder = 0
	}
}

// removeHandle deletes one occurrence of e from s, preserving order.
// Order matters: the slices double as the (shuffled) processing order.
func removeHandle(s []ecs.Entity, e ecs.Entity) []ecs.Entity {
	for i, h := range s {
		if h == e {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
