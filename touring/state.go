// Package touring implements the exact and approximate tour planners: the
// bitmask-indexed shortest-path search that visits every reachable
// objective and the Christofides-style fallback for larger instances.
package touring

import "github.com/KoalaWill/maze-motionplan/vehicle"

// State is one point in the tour planner's search space: a vehicle
// configuration plus the set of objectives collected so far.
type State struct {
	X, Y        int
	Orientation vehicle.Orientation
	Mask        uint32
}

// indexer linearizes a State into a flat array offset:
// ((y*cols+x)*4+o)*maxMask+mask. decode(encode(s)) == s is exercised
// directly as a property test in state_test.go.
type indexer struct {
	cols, maxMask int
}

func newIndexer(cols, maxMask int) indexer {
	return indexer{cols: cols, maxMask: maxMask}
}

func (ix indexer) total(rows int) int64 {
	return int64(rows) * int64(ix.cols) * 4 * int64(ix.maxMask)
}

func (ix indexer) encode(s State) int64 {
	return (((int64(s.Y)*int64(ix.cols) + int64(s.X)) * 4) + int64(s.Orientation)) * int64(ix.maxMask) + int64(s.Mask)
}

func (ix indexer) decode(idx int64) State {
	mask := idx % int64(ix.maxMask)
	idx /= int64(ix.maxMask)
	o := idx % 4
	idx /= 4
	x := idx % int64(ix.cols)
	y := idx / int64(ix.cols)
	return State{X: int(x), Y: int(y), Orientation: vehicle.Orientation(o), Mask: uint32(mask)}
}
