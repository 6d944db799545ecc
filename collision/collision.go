// Package collision implements the collision/coverage oracle: footprint
// fit-testing and footprint-cell enumeration against a maze grid. It has
// no side effects and owns no state of its own.
package collision

import (
	"github.com/KoalaWill/maze-motionplan/maze"
	"github.com/KoalaWill/maze-motionplan/vehicle"
)

// Cell is an absolute grid coordinate.
type Cell struct {
	X, Y int
}

// Fits reports whether every one of the six footprint cells of a vehicle
// anchored at (x, y) with the given orientation lies inside grid and is
// not a wall.
func Fits(grid *maze.Grid, x, y int, o vehicle.Orientation) bool {
	footprint := vehicle.Footprint(o)
	for _, off := range footprint {
		cx, cy := x+off.DX, y+off.DY
		if !grid.InBounds(cx, cy) {
			return false
		}
		if grid.At(cx, cy) == maze.CellWall {
			return false
		}
	}
	return true
}

// CoveredCells returns the six absolute cells a vehicle anchored at (x, y)
// with the given orientation currently occupies. The caller is responsible
// for having already confirmed Fits if it cares about validity; CoveredCells
// itself performs no bounds checking.
func CoveredCells(x, y int, o vehicle.Orientation) [6]Cell {
	footprint := vehicle.Footprint(o)
	var out [6]Cell
	for i, off := range footprint {
		out[i] = Cell{X: x + off.DX, Y: y + off.DY}
	}
	return out
}
