package touring

import (
	"container/heap"
	"math"

	"github.com/KoalaWill/maze-motionplan/collision"
	"github.com/KoalaWill/maze-motionplan/maze"
	"github.com/KoalaWill/maze-motionplan/vehicle"
)

// legIndexer linearizes a plain (x, y, orientation) configuration, with no
// mask dimension, for the inner Dijkstra the approximate planner uses both
// to cost pairs of nodes and to stitch the physical legs between them.
type legIndexer struct {
	cols int
}

func (ix legIndexer) encode(x, y int, o vehicle.Orientation) int {
	return (y*ix.cols+x)*4 + int(o)
}

// firstFittingOrientation returns the first orientation in {0,1,2,3} whose
// footprint fits at (x, y). ok is false if none
// fits, meaning the cell cannot host the vehicle in any orientation.
func firstFittingOrientation(grid *maze.Grid, x, y int) (vehicle.Orientation, bool) {
	for o := vehicle.Orientation(0); int(o) < vehicle.NumOrientations; o++ {
		if collision.Fits(grid, x, y, o) {
			return o, true
		}
	}
	return 0, false
}

// legResult is the outcome of one inner Dijkstra run.
type legResult struct {
	Feasible bool
	Cost     int
	Trace    []Step
}

type legEntry struct {
	idx  int
	cost int
}

type legQueue []legEntry

func (q legQueue) Len() int           { return len(q) }
func (q legQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q legQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *legQueue) Push(x any)        { *q = append(*q, x.(legEntry)) }
func (q *legQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// runLegDijkstra searches configuration space (x, y, orientation), no mask,
// from (startX, startY, startOrientation) until some configuration's
// footprint covers (goalX, goalY). withTrace controls whether the (more expensive) parent chain
// is reconstructed; pairwise cost-matrix construction only needs Cost.
func runLegDijkstra(grid *maze.Grid, startX, startY int, startOrientation vehicle.Orientation, goalX, goalY int, withTrace bool) legResult {
	ix := legIndexer{cols: grid.Cols()}
	total := grid.Rows() * grid.Cols() * 4

	dist := make([]int32, total)
	var parent []int32
	if withTrace {
		parent = make([]int32, total)
		for i := range parent {
			parent[i] = -1
		}
	}
	for i := range dist {
		dist[i] = math.MaxInt32
	}

	startIdx := ix.encode(startX, startY, startOrientation)
	dist[startIdx] = 0
	pq := &legQueue{{idx: startIdx, cost: 0}}
	heap.Init(pq)

	goalIdx := -1

	for pq.Len() > 0 {
		u := heap.Pop(pq).(legEntry)
		if int32(u.cost) > dist[u.idx] {
			continue
		}
		x, y, o := decodeLeg(u.idx, grid.Cols())
		if coversCell(x, y, o, goalX, goalY) {
			goalIdx = u.idx
			break
		}

		for _, m := range vehicle.Transitions(o) {
			nx, ny := x+m.DX, y+m.DY
			if !grid.InBounds(nx, ny) {
				continue
			}
			if !collision.Fits(grid, nx, ny, m.NewOrientation) {
				continue
			}
			vIdx := ix.encode(nx, ny, m.NewOrientation)
			newCost := u.cost + m.Fuel
			if int32(newCost) < dist[vIdx] {
				dist[vIdx] = int32(newCost)
				if withTrace {
					parent[vIdx] = int32(u.idx)
				}
				heap.Push(pq, legEntry{idx: vIdx, cost: newCost})
			}
		}
	}

	if goalIdx < 0 {
		return legResult{Feasible: false}
	}

	result := legResult{Feasible: true, Cost: int(dist[goalIdx])}
	if withTrace {
		var reversed []Step
		cur := int32(goalIdx)
		for hops := 0; cur >= 0; hops++ {
			if hops > total {
				result.Feasible = false
				return result
			}
			x, y, o := decodeLeg(int(cur), grid.Cols())
			reversed = append(reversed, Step{X: x, Y: y, Orientation: o})
			cur = parent[cur]
		}
		trace := make([]Step, len(reversed))
		for i, s := range reversed {
			trace[len(reversed)-1-i] = s
		}
		result.Trace = trace
	}
	return result
}

func decodeLeg(idx, cols int) (x, y int, o vehicle.Orientation) {
	oo := idx % 4
	idx /= 4
	x = idx % cols
	y = idx / cols
	return x, y, vehicle.Orientation(oo)
}

func coversCell(x, y int, o vehicle.Orientation, targetX, targetY int) bool {
	for _, c := range collision.CoveredCells(x, y, o) {
		if c.X == targetX && c.Y == targetY {
			return true
		}
	}
	return false
}
