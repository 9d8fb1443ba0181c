// Package island models the simulated landscape: a rectangular grid of
// habitat cells owning the animal populations that live on them.
package island

import "fmt"

// Terrain is the fixed geography type of a cell.
type Terrain uint8

const (
	TerrainWater Terrain = iota
	TerrainLowland
	TerrainHighland
	TerrainDesert
	numTerrains
)

// Default yearly fodder caps per terrain. Water and Desert never grow
// fodder; their caps are fixed at zero.
const (
	DefaultLowlandFodder  = 800.0
	DefaultHighlandFodder = 300.0
)

// ParseTerrain maps a map-string symbol to its terrain type.
func ParseTerrain(symbol byte) (Terrain, error) {
	switch symbol {
	case 'W':
		return TerrainWater, nil
	case 'L':
		return TerrainLowland, nil
	case 'H':
		return TerrainHighland, nil
	case 'D':
		return TerrainDesert, nil
	default:
		return 0, fmt.Errorf("%w: unknown terrain symbol %q", ErrBadMap, string(symbol))
	}
}

// String returns the single-letter map symbol of the terrain.
func (t Terrain) String() string {
	switch t {
	case TerrainWater:
		return "W"
	case TerrainLowland:
		return "L"
	case TerrainHighland:
		return "H"
	case TerrainDesert:
		return "D"
	default:
		return "?"
	}
}

// Habitable reports whether animals may occupy this terrain.
func (t Terrain) Habitable() bool {
	return t != TerrainWater
}

// GrowsFodder reports whether this terrain regrows plant fodder yearly.
func (t Terrain) GrowsFodder() bool {
	return t == TerrainLowland || t == TerrainHighland
}
