package touring

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

func TestExactPlanObjectiveAtAnchorIsFree(t *testing.T) {
	g := gridFromRows([]string{
		"00000",
		"01110",
		"01110",
		"01110",
		"00000",
	})
	start := maze.StartConfig{X: 1, Y: 1, Orientation: vehicle.Orientation0}
	targets := []Target{{X: 1, Y: 1}}

	result, err := ExactPlan(g, start, targets, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Feasible, test.ShouldBeTrue)
	test.That(t, result.TotalFuel, test.ShouldEqual, 0)
	test.That(t, len(result.Trace), test.ShouldEqual, 1)
}

func TestExactPlanStraightTranslation(t *testing.T) {
	rows := make([]string, 6)
	for i := range rows {
		rows[i] = "11"
	}
	g := gridFromRows(rows)
	start := maze.StartConfig{X: 0, Y: 0, Orientation: vehicle.Orientation0}
	// Orientation0 covers rows y..y+2, so (0,5) is first covered with the
	// anchor at (0,3): three cost-1 moves.
	targets := []Target{{X: 0, Y: 5}}

	result, err := ExactPlan(g, start, targets, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Feasible, test.ShouldBeTrue)
	test.That(t, result.TotalFuel, test.ShouldEqual, 3)
	test.That(t, len(result.Trace), test.ShouldEqual, 4)
	for _, step := range result.Trace {
		test.That(t, step.Orientation, test.ShouldEqual, vehicle.Orientation0)
	}
	test.That(t, result.Trace[3].Y, test.ShouldEqual, 3)
}

func TestExactPlanUnreachableTargetReturnsInfeasible(t *testing.T) {
	g := gridFromRows([]string{
		"000000000",
		"011111000",
		"011111030",
		"011111000",
		"000000000",
	})
	start := maze.StartConfig{X: 1, Y: 1, Orientation: vehicle.Orientation0}
	targets := []Target{{X: 7, Y: 2}}

	result, err := ExactPlan(g, start, targets, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Feasible, test.ShouldBeFalse)
}

// TestExactPlanTraceMatchesManeuverTable exercises the testable-property
// that every consecutive trace pair corresponds to a literal maneuver-table
// entry whose fuel sums to TotalFuel.
func TestExactPlanTraceMatchesManeuverTable(t *testing.T) {
	rows := make([]string, 6)
	for i := range rows {
		rows[i] = "11"
	}
	g := gridFromRows(rows)
	start := maze.StartConfig{X: 0, Y: 0, Orientation: vehicle.Orientation0}
	targets := []Target{{X: 0, Y: 3}}

	result, err := ExactPlan(g, start, targets, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Feasible, test.ShouldBeTrue)

	sum := 0
	for i := 1; i < len(result.Trace); i++ {
		prev, cur := result.Trace[i-1], result.Trace[i]
		found := false
		for _, m := range vehicle.Transitions(prev.Orientation) {
			if m.NewOrientation == cur.Orientation && prev.X+m.DX == cur.X && prev.Y+m.DY == cur.Y {
				sum += m.Fuel
				found = true
				break
			}
		}
		test.That(t, found, test.ShouldBeTrue)
	}
	test.That(t, sum, test.ShouldEqual, result.TotalFuel)
}
