package reachability

import (
	"testing"

	"go.viam.com/test"

	"github.com/KoalaWill/maze-motionplan/maze"
	"github.com/KoalaWill/maze-motionplan/vehicle"
)

func gridFromRows(rows []string) *maze.Grid {
	g := maze.NewGrid(len(rows), len(rows[0]))
	for y, row := range rows {
		for x, ch := range row {
			g.Set(x, y, maze.Cell(ch-'0'))
		}
	}
	return g
}

func TestAnalyzeObjectiveAtStartAnchorIsImmediatelyReachable(t *testing.T) {
	g := gridFromRows([]string{
		"00000",
		"01110",
		"01110",
		"01110",
		"00000",
	})
	g.Set(1, 1, maze.CellObjective)
	start := maze.StartConfig{X: 1, Y: 1, Orientation: vehicle.Orientation0}

	result := Analyze(g, start, nil)
	test.That(t, len(result.Objectives), test.ShouldEqual, 1)
	test.That(t, result.ReachableCount, test.ShouldEqual, 1)
	test.That(t, result.Objectives[0].Reachable, test.ShouldBeTrue)
}

// isolatedPocketRows builds a grid with a main free interior (rows1-3,
// cols1-5) the start fits in, plus a single objective cell at (7,2) walled off
// on all four sides: no orientation's footprint can ever fit there, so it
// is unreachable independent of any BFS connectivity question.
func isolatedPocketRows() []string {
	return []string{
		"000000000",
		"011111000",
		"011111030",
		"011111000",
		"000000000",
	}
}

func TestAnalyzeDemotesUnreachableObjective(t *testing.T) {
	g := gridFromRows(isolatedPocketRows())
	start := maze.StartConfig{X: 1, Y: 1, Orientation: vehicle.Orientation0}

	result := Analyze(g, start, nil)
	test.That(t, len(result.Objectives), test.ShouldEqual, 1)
	test.That(t, result.ReachableCount, test.ShouldEqual, 0)
	test.That(t, result.Objectives[0].Reachable, test.ShouldBeFalse)
	test.That(t, g.At(7, 2), test.ShouldEqual, maze.CellFree)
}

func TestAnalyzeStartInfeasibleReturnsNoReachableObjectives(t *testing.T) {
	g := gridFromRows([]string{
		"000",
		"010",
		"000",
	})
	// A single free cell cannot fit the six-cell footprint in any
	// orientation: every orientation needs at least a 2x3 bounding box.
	start := maze.StartConfig{X: 1, Y: 1, Orientation: vehicle.Orientation0}

	result := Analyze(g, start, nil)
	test.That(t, result.ReachableCount, test.ShouldEqual, 0)
}

func TestAnalyzeIdempotentAfterDemotion(t *testing.T) {
	g := gridFromRows(isolatedPocketRows())
	start := maze.StartConfig{X: 1, Y: 1, Orientation: vehicle.Orientation0}

	first := Analyze(g, start, nil)
	second := Analyze(g, start, nil)
	test.That(t, second.ReachableCount, test.ShouldEqual, first.ReachableCount)
}
