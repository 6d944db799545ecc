package vehicle

import (
	"testing"

	"go.viam.com/test"
)

func TestFootprintCardinality(t *testing.T) {
	for o := Orientation(0); int(o) < NumOrientations; o++ {
		fp := Footprint(o)
		test.That(t, len(fp), test.ShouldEqual, 6)
	}
}

func TestTransitionsFuelCosts(t *testing.T) {
	wantFuel := []int{1, 1, 3, 3, 3, 3, 3, 3}
	for o := Orientation(0); int(o) < NumOrientations; o++ {
		maneuvers := Transitions(o)
		test.That(t, len(maneuvers), test.ShouldEqual, NumManeuvers)
		for i, m := range maneuvers {
			test.That(t, m.Fuel, test.ShouldEqual, wantFuel[i])
		}
	}
}

func TestTransitionsFirstTwoAreStraightTranslations(t *testing.T) {
	// The first two maneuvers from every orientation keep the same
	// orientation and move along a single axis at cost 1.
	for o := Orientation(0); int(o) < NumOrientations; o++ {
		maneuvers := Transitions(o)
		for i := 0; i < 2; i++ {
			test.That(t, maneuvers[i].NewOrientation, test.ShouldEqual, o)
			test.That(t, maneuvers[i].Fuel, test.ShouldEqual, 1)
		}
	}
}

func TestOrientation0FootprintIsTwoByThree(t *testing.T) {
	fp := Footprint(Orientation0)
	test.That(t, fp, test.ShouldResemble, [6]Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}})
}
