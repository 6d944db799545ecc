package collision

import (
	"testing"

	"go.viam.com/test"

	"github.com/KoalaWill/maze-motionplan/maze"
	"github.com/KoalaWill/maze-motionplan/vehicle"
)

func allFreeGrid(rows, cols int) *maze.Grid {
	g := maze.NewGrid(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.Set(x, y, maze.CellFree)
		}
	}
	return g
}

func TestFitsInsideFreeGrid(t *testing.T) {
	g := allFreeGrid(5, 5)
	test.That(t, Fits(g, 0, 0, vehicle.Orientation0), test.ShouldBeTrue)
}

func TestFitsFalseOutOfBounds(t *testing.T) {
	g := allFreeGrid(3, 3)
	// Orientation0's footprint extends to (x+1, y+2); at anchor (2,2) in a
	// 3x3 grid it runs off the bottom and right edges.
	test.That(t, Fits(g, 2, 2, vehicle.Orientation0), test.ShouldBeFalse)
}

func TestFitsFalseOnWall(t *testing.T) {
	g := allFreeGrid(5, 5)
	g.Set(1, 1, maze.CellWall)
	test.That(t, Fits(g, 0, 0, vehicle.Orientation0), test.ShouldBeFalse)
}

func TestCoveredCellsMatchesFootprint(t *testing.T) {
	covered := CoveredCells(2, 3, vehicle.Orientation0)
	test.That(t, covered, test.ShouldResemble, [6]Cell{
		{2, 3}, {3, 3}, {2, 4}, {3, 4}, {2, 5}, {3, 5},
	})
}
