// Package vehicle encodes the rigid six-cell vehicle footprint and its
// maneuver table: the pure, side-effect-free motion model the rest of the
// engine is built on.
package vehicle

// Orientation is one of the four fixed rotations of the vehicle footprint.
type Orientation int

// The four orientations the vehicle can occupy. Every configuration in the
// engine is a (x, y, Orientation) triple; there is no continuous rotation.
const (
	Orientation0 Orientation = iota
	Orientation1
	Orientation2
	Orientation3

	// NumOrientations is the fixed cardinality of Orientation.
	NumOrientations = 4
)

// Offset is a (Δx, Δy) pair relative to a configuration's anchor cell.
type Offset struct {
	DX, DY int
}

// footprints holds, for each orientation, the six cell offsets (from the
// anchor at (0,0)) the vehicle occupies. Kept as a literal table rather than
// derived by rotating Orientation0 at runtime, since the anchor shift on
// rotating transitions is not a pure rotation of the footprint.
var footprints = [NumOrientations][6]Offset{
	Orientation0: {{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}},
	Orientation1: {{0, 0}, {-1, 0}, {-2, 0}, {0, 1}, {-1, 1}, {-2, 1}},
	Orientation2: {{0, 0}, {-1, 0}, {0, -1}, {-1, -1}, {0, -2}, {-1, -2}},
	Orientation3: {{0, 0}, {1, 0}, {2, 0}, {0, -1}, {1, -1}, {2, -1}},
}

// Footprint returns the six footprint offsets for o. The array is returned
// by value, so mutating it does not alter the table.
func Footprint(o Orientation) [6]Offset {
	return footprints[o]
}

// Maneuver is one of the eight transitions available from a given
// orientation: the resulting orientation, the anchor translation, and the
// fuel cost.
type Maneuver struct {
	NewOrientation Orientation
	DX, DY         int
	Fuel           int
}

// NumManeuvers is the fixed number of maneuvers available from any
// orientation (two straight translations, six sideways/rotating moves).
const NumManeuvers = 8

// transitions is the literal maneuver table: transitions[o] holds the eight
// (new orientation, Δx, Δy, fuel) rows for orientation o, in the order the
// reachability BFS and both tour planners must iterate them in, since that
// order seeds every tie-break in the search. Fuel is exactly {1,1,3,3,3,3,3,3}
// per row.
var transitions = [NumOrientations][NumManeuvers]Maneuver{
	Orientation0: {
		{Orientation0, 0, 1, 1}, {Orientation0, 0, -1, 1},
		{Orientation0, 1, 0, 3}, {Orientation0, -1, 0, 3},
		{Orientation1, 2, 0, 3}, {Orientation1, 1, 1, 3},
		{Orientation3, 0, 2, 3}, {Orientation3, -1, 1, 3},
	},
	Orientation1: {
		{Orientation1, 1, 0, 1}, {Orientation1, -1, 0, 1},
		{Orientation1, 0, -1, 3}, {Orientation1, 0, 1, 3},
		{Orientation2, 0, 2, 3}, {Orientation2, -1, 1, 3},
		{Orientation0, -2, 0, 3}, {Orientation0, -1, -1, 3},
	},
	Orientation2: {
		{Orientation2, 0, -1, 1}, {Orientation2, 0, 1, 1},
		{Orientation2, -1, 0, 3}, {Orientation2, 1, 0, 3},
		{Orientation3, -2, 0, 3}, {Orientation3, -1, -1, 3},
		{Orientation1, 0, -2, 3}, {Orientation1, 1, -1, 3},
	},
	Orientation3: {
		{Orientation3, -1, 0, 1}, {Orientation3, 1, 0, 1},
		{Orientation3, 0, 1, 3}, {Orientation3, 0, -1, 3},
		{Orientation0, 0, -2, 3}, {Orientation0, 1, -1, 3},
		{Orientation2, 2, 0, 3}, {Orientation2, 1, 1, 3},
	},
}

// Transitions returns the eight maneuvers available from o, in contract
// order. The ordering is part of the contract: both the BFS in the
// reachability analyzer and the Dijkstra searches in the tour planners
// iterate it in this order, which is what makes equal-cost tie-breaking
// deterministic given a deterministic heap.
func Transitions(o Orientation) [NumManeuvers]Maneuver {
	return transitions[o]
}
