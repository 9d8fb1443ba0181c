package island

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rossum/components"
)

var (
	// ErrBadMap reports a malformed island geography description.
	ErrBadMap = errors.New("invalid island map")
	// ErrBadPopulation reports an invalid population insertion record.
	ErrBadPopulation = errors.New("invalid population")
)

// Island is the rectangular grid of cells. It exclusively owns every cell
// and, through the entity world, every animal on the island.
type Island struct {
	world   *ecs.World
	animals *ecs.Map1[components.Animal]

	cells      []Cell
	rows, cols int

	fodderMax [numTerrains]float64
}

// New builds an island from a multi-line map string of terrain symbols.
// The map must be rectangular with an all-water border.
func New(mapStr string) (*Island, error) {
	terrain, rows, cols, err := parseMap(mapStr)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	isl := &Island{
		world:   world,
		animals: ecs.NewMap1[components.Animal](world),
		cells:   make([]Cell, rows*cols),
		rows:    rows,
		cols:    cols,
	}
	isl.fodderMax[TerrainLowland] = DefaultLowlandFodder
	isl.fodderMax[TerrainHighland] = DefaultHighlandFodder

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := &isl.cells[r*cols+c]
			cell.Row, cell.Col = r+1, c+1
			cell.Terrain = terrain[r*cols+c]
		}
	}
	return isl, nil
}

// Rows returns the number of grid rows.
func (i *Island) Rows() int { return i.rows }

// Cols returns the number of grid columns.
func (i *Island) Cols() int { return i.cols }

// At returns the cell at one-based coordinates, or nil if out of bounds.
// Map coordinates start at (1, 1) in the top-left corner.
func (i *Island) At(row, col int) *Cell {
	if row < 1 || row > i.rows || col < 1 || col > i.cols {
		return nil
	}
	return &i.cells[(row-1)*i.cols+(col-1)]
}

// Cells returns the cells in row-major order.
func (i *Island) Cells() []Cell { return i.cells }

// Neighbors appends the orthogonal neighbors of a cell to dst and returns
// it. The all-water border guarantees interior cells have all four.
func (i *Island) Neighbors(c *Cell, dst []*Cell) []*Cell {
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if n := i.At(c.Row+d[0], c.Col+d[1]); n != nil {
			dst = append(dst, n)
		}
	}
	return dst
}

// Animal resolves an animal handle to its state.
func (i *Island) Animal(e ecs.Entity) *components.Animal {
	return i.animals.Get(e)
}

// Spawn creates a new animal in a cell and returns its handle.
func (i *Island) Spawn(c *Cell, a components.Animal) ecs.Entity {
	e := i.animals.NewEntity(&a)
	bucket := c.Bucket(a.Kind)
	*bucket = append(*bucket, e)
	return e
}

// Despawn removes an animal from its cell and destroys it.
func (i *Island) Despawn(c *Cell, e ecs.Entity) {
	a := i.animals.Get(e)
	bucket := c.Bucket(a.Kind)
	*bucket = removeHandle(*bucket, e)
	i.world.RemoveEntity(e)
}

// Move transfers an animal from one cell's arena to another's.
func (i *Island) Move(from, to *Cell, e ecs.Entity) {
	k := i.animals.Get(e).Kind
	src := from.Bucket(k)
	*src = removeHandle(*src, e)
	dst := to.Bucket(k)
	*dst = append(*dst, e)
}

// HerbBiomass returns the total herbivore weight present in a cell.
func (i *Island) HerbBiomass(c *Cell) float64 {
	var total float64
	for _, e := range c.Herbs {
		total += i.animals.Get(e).Weight
	}
	return total
}

// FodderMax returns the yearly fodder cap for a terrain type.
func (i *Island) FodderMax(t Terrain) float64 {
	return i.fodderMax[t]
}

// SetFodderMax overrides the yearly fodder cap for a terrain type.
// Water and Desert can never hold fodder.
func (i *Island) SetFodderMax(t Terrain, max float64) error {
	if t >= numTerrains {
		return fmt.Errorf("%w: unknown terrain", ErrInvalidLandscape)
	}
	if max < 0 {
		return fmt.Errorf("%w: fodder cap must be >= 0, got %v", ErrInvalidLandscape, max)
	}
	if !t.GrowsFodder() && max > 0 {
		return fmt.Errorf("%w: %s cannot hold fodder", ErrInvalidLandscape, t)
	}
	i.fodderMax[t] = max
	return nil
}

// ErrInvalidLandscape reports an invalid landscape parameter update.
var ErrInvalidLandscape = errors.New("invalid landscape parameter")

// Regrow resets every cell's fodder for a new year.
func (i *Island) Regrow() {
	for idx := range i.cells {
		c := &i.cells[idx]
		c.Regrow(i.fodderMax[c.Terrain])
	}
}

// ResetMoveFlags clears the per-year migration flag on every animal.
func (i *Island) ResetMoveFlags() {
	for idx := range i.cells {
		c := &i.cells[idx]
		for _, e := range c.Herbs {
			i.animals.Get(e).Moved = false
		}
		for _, e := range c.Carns {
			i.animals.Get(e).Moved = false
		}
	}
}

// Counts returns the island-wide population per species.
func (i *Island) Counts() (herbs, carns int) {
	for idx := range i.cells {
		herbs += len(i.cells[idx].Herbs)
		carns += len(i.cells[idx].Carns)
	}
	return herbs, carns
}
