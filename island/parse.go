package island

import (
	"fmt"
	"strings"
)

// parseMap turns a multi-line terrain-symbol string into a row-major
// terrain slice, validating shape and border.
func parseMap(s string) (terrain []Terrain, rows, cols int, err error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, 0, 0, fmt.Errorf("%w: empty map", ErrBadMap)
	}

	lines := strings.Split(trimmed, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	rows = len(lines)
	cols = len(lines[0])
	for r, line := range lines {
		if len(line) != cols {
			return nil, 0, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadMap, r+1, len(line), cols)
		}
	}

	terrain = make([]Terrain, rows*cols)
	for r, line := range lines {
		for c := 0; c < cols; c++ {
			t, err := ParseTerrain(line[c])
			if err != nil {
				return nil, 0, 0, err
			}
			border := r == 0 || r == rows-1 || c == 0 || c == cols-1
			if border && t != TerrainWater {
				return nil, 0, 0, fmt.Errorf("%w: border cell (%d, %d) is %s, must be W", ErrBadMap, r+1, c+1, t)
			}
			terrain[r*cols+c] = t
		}
	}
	return terrain, rows, cols, nil
}
