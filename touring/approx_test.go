package touring

import (
	"testing"

	"go.viam.com/test"

	"github.com/KoalaWill/maze-motionplan/collision"
	"github.com/KoalaWill/maze-motionplan/maze"
	"github.com/KoalaWill/maze-motionplan/vehicle"
)

func TestApproxPlanCoversEveryTarget(t *testing.T) {
	rows := make([]string, 10)
	for i := range rows {
		rows[i] = "11"
	}
	g := gridFromRows(rows)
	start := maze.StartConfig{X: 0, Y: 0, Orientation: vehicle.Orientation0}
	targets := []Target{{X: 0, Y: 3}, {X: 0, Y: 7}}

	result, err := ApproxPlan(g, start, targets, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Feasible, test.ShouldBeTrue)
	test.That(t, len(result.Trace), test.ShouldBeGreaterThan, 0)

	for _, target := range targets {
		covered := false
		for _, step := range result.Trace {
			for _, c := range collision.CoveredCells(step.X, step.Y, step.Orientation) {
				if c.X == target.X && c.Y == target.Y {
					covered = true
				}
			}
		}
		test.That(t, covered, test.ShouldBeTrue)
	}
}

func TestApproxPlanFirstStepIsStartConfiguration(t *testing.T) {
	rows := make([]string, 6)
	for i := range rows {
		rows[i] = "11"
	}
	g := gridFromRows(rows)
	start := maze.StartConfig{X: 0, Y: 0, Orientation: vehicle.Orientation0}
	targets := []Target{{X: 0, Y: 3}}

	result, err := ApproxPlan(g, start, targets, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Feasible, test.ShouldBeTrue)
	test.That(t, result.Trace[0].X, test.ShouldEqual, start.X)
	test.That(t, result.Trace[0].Y, test.ShouldEqual, start.Y)
	test.That(t, result.Trace[0].Orientation, test.ShouldEqual, start.Orientation)
}

func TestFirstFittingOrientationFindsOrientation0InOpenGrid(t *testing.T) {
	rows := make([]string, 6)
	for i := range rows {
		rows[i] = "11"
	}
	g := gridFromRows(rows)
	o, ok := firstFittingOrientation(g, 0, 0)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, o, test.ShouldEqual, vehicle.Orientation0)
}
