package systems

import (
	"testing"

	"github.com/pthm-cable/rossum/components"
	"github.com/pthm-cable/rossum/fauna"
)

// crossIsland has a Lowland center at (3, 3) with four land neighbors.
const crossIsland = `
WWWWW
WWLWW
WLLLW
WWLWW
WWWWW
`

func eagerParams() fauna.Set {
	params := fauna.DefaultSet()
	// Prime-condition animals move with probability ~mu; force mu to 1.
	params.For(components.KindHerbivore).Mu = 1e9
	params.For(components.KindCarnivore).Mu = 1e9
	return params
}

func TestMigrationStaysOnLand(t *testing.T) {
	isl := mustIsland(t, crossIsland)
	center := isl.At(3, 3)
	params := eagerParams()
	spawnMany(isl, center, components.KindHerbivore, 50, 5, 40)
	spawnMany(isl, center, components.KindCarnivore, 20, 5, 40)
	isl.Regrow()

	ms := NewMigrationSystem(0.01)
	ms.Update(isl, &params, testRNG(21))

	cells := isl.Cells()
	for i := range cells {
		c := &cells[i]
		if !c.Terrain.Habitable() && (len(c.Herbs) > 0 || len(c.Carns) > 0) {
			t.Fatalf("animals migrated onto water at (%d, %d)", c.Row, c.Col)
		}
	}
	herbs, carns := isl.Counts()
	if herbs != 50 || carns != 20 {
		t.Fatalf("Counts = %d, %d after migration, want 50, 20", herbs, carns)
	}
	if len(center.Herbs) == 50 {
		t.Error("no herbivore left the center despite certain move probability")
	}
}

func TestMigrationLandlockedStays(t *testing.T) {
	// All four neighbors are water; the move attempt lapses.
	isl := mustIsland(t, oneCell)
	c := isl.At(2, 2)
	params := eagerParams()
	spawnMany(isl, c, components.KindHerbivore, 10, 5, 40)

	ms := NewMigrationSystem(0.01)
	ms.Update(isl, &params, testRNG(22))
	if got := c.Count(components.KindHerbivore); got != 10 {
		t.Errorf("herbivore count = %d, want 10 (landlocked)", got)
	}
}

func TestMigrationAtMostOnce(t *testing.T) {
	isl := mustIsland(t, crossIsland)
	center := isl.At(3, 3)
	params := eagerParams()
	spawnMany(isl, center, components.KindHerbivore, 100, 5, 40)
	isl.Regrow()

	ms := NewMigrationSystem(0.01)
	ms.Update(isl, &params, testRNG(23))

	// Every animal carries the moved flag if and only if it migrated;
	// nobody is allowed a second hop within the same pass, so the five
	// land cells hold everyone and all movers sit on a neighbor.
	moved := 0
	cells := isl.Cells()
	for i := range cells {
		c := &cells[i]
		for _, e := range c.Herbs {
			if isl.Animal(e).Moved {
				moved++
				if c == center {
					t.Error("animal marked moved but still in source cell")
				}
			}
		}
	}
	left := 100 - len(center.Herbs)
	if moved != left {
		t.Errorf("moved flags = %d, emigrants = %d, want equal", moved, left)
	}
}

func TestMigrationMuZeroNobodyMoves(t *testing.T) {
	isl := mustIsland(t, crossIsland)
	center := isl.At(3, 3)
	params := fauna.DefaultSet()
	params.For(components.KindHerbivore).Mu = 0
	spawnMany(isl, center, components.KindHerbivore, 30, 5, 40)
	isl.Regrow()

	ms := NewMigrationSystem(0.01)
	ms.Update(isl, &params, testRNG(24))
	if got := len(center.Herbs); got != 30 {
		t.Errorf("herbivores in center = %d, want 30", got)
	}
}

func TestPropensityWaterIsZero(t *testing.T) {
	isl := mustIsland(t, oneCell)
	ms := NewMigrationSystem(0.01)
	if got := ms.propensity(isl, isl.At(1, 1), components.KindHerbivore); got != 0 {
		t.Errorf("water propensity = %v, want 0", got)
	}
}

func TestPropensityPrefersFood(t *testing.T) {
	isl := mustIsland(t, "WWWW\nWLHW\nWWWW")
	lowland, highland := isl.At(2, 2), isl.At(2, 3)
	isl.Regrow()

	ms := NewMigrationSystem(0.01)
	low := ms.propensity(isl, lowland, components.KindHerbivore)
	high := ms.propensity(isl, highland, components.KindHerbivore)
	if low <= high {
		t.Errorf("lowland propensity %v <= highland %v, want more fodder to score higher", low, high)
	}

	// Crowding discounts the same fodder.
	spawnMany(isl, lowland, components.KindHerbivore, 50, 5, 20)
	crowded := ms.propensity(isl, lowland, components.KindHerbivore)
	if crowded >= low {
		t.Errorf("crowded propensity %v >= empty %v, want occupancy discount", crowded, low)
	}
}

func TestPropensityCarnivoreTracksPrey(t *testing.T) {
	isl := mustIsland(t, "WWWW\nWLHW\nWWWW")
	here, there := isl.At(2, 2), isl.At(2, 3)
	spawnMany(isl, here, components.KindHerbivore, 10, 5, 20)

	ms := NewMigrationSystem(0.01)
	rich := ms.propensity(isl, here, components.KindCarnivore)
	poor := ms.propensity(isl, there, components.KindCarnivore)
	if rich <= poor {
		t.Errorf("prey-rich propensity %v <= empty %v", rich, poor)
	}
}
