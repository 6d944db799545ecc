package touring

import (
	"container/heap"
	"math"

	"github.com/KoalaWill/maze-motionplan/collision"
	"github.com/KoalaWill/maze-motionplan/logging"
	"github.com/KoalaWill/maze-motionplan/maze"
	"github.com/KoalaWill/maze-motionplan/vehicle"
)

// Target is a reachable objective cell, in the stable order that assigns
// its mask bit: Target i owns bit i of every State.Mask in this run.
type Target struct {
	X, Y int
}

const unvisitedCost = math.MaxInt32

// ExactPlan runs Dijkstra over (x, y, orientation, mask) to find the
// minimum-fuel plan that covers every target. It is only
// appropriate while len(targets) is small enough that R*C*4*2^N fits in
// memory; callers should route larger instances to ApproxPlan instead.
func ExactPlan(grid *maze.Grid, start maze.StartConfig, targets []Target, logger logging.Logger) (Result, error) {
	n := len(targets)
	maxMask := 1 << uint(n)
	ix := newIndexer(grid.Cols(), maxMask)
	total := ix.total(grid.Rows())
	if total <= 0 || total > math.MaxInt32 {
		return Result{}, ErrAllocationFailed
	}

	dist := make([]int32, total)
	parent := make([]int64, total)
	for i := range dist {
		dist[i] = unvisitedCost
		parent[i] = -1
	}
	defer func() {
		dist = nil
		parent = nil
	}()

	startMask := coverageMask(start.X, start.Y, start.Orientation, targets)
	startState := State{X: start.X, Y: start.Y, Orientation: start.Orientation, Mask: startMask}
	startIdx := ix.encode(startState)
	dist[startIdx] = 0

	pq := &priorityQueue{{state: startIdx, cost: 0}}
	heap.Init(pq)

	terminalMask := uint32(maxMask - 1)
	var terminalIdx int64 = -1

	for pq.Len() > 0 {
		u := heap.Pop(pq).(pqEntry)
		if int32(u.cost) > dist[u.state] {
			continue
		}
		if int32(u.cost) < dist[u.state] {
			return Result{}, ErrInvariantViolation
		}
		us := ix.decode(u.state)
		if us.Mask == terminalMask {
			terminalIdx = u.state
			break
		}

		for _, m := range vehicle.Transitions(us.Orientation) {
			nx, ny := us.X+m.DX, us.Y+m.DY
			if !grid.InBounds(nx, ny) || grid.At(nx, ny) == maze.CellWall {
				continue
			}
			if !collision.Fits(grid, nx, ny, m.NewOrientation) {
				continue
			}
			newMask := us.Mask | coverageMask(nx, ny, m.NewOrientation, targets)
			newCost := u.cost + m.Fuel
			vState := State{X: nx, Y: ny, Orientation: m.NewOrientation, Mask: newMask}
			vIdx := ix.encode(vState)
			if int32(newCost) < dist[vIdx] {
				dist[vIdx] = int32(newCost)
				parent[vIdx] = u.state
				heap.Push(pq, pqEntry{state: vIdx, cost: newCost})
			}
		}
	}

	if terminalIdx < 0 {
		if logger != nil {
			logger.Infow("exact planner exhausted search without covering all targets", "targets", n)
		}
		return Result{Feasible: false}, nil
	}

	trace, err := reconstructTrace(ix, parent, terminalIdx, total)
	if err != nil {
		return Result{}, err
	}

	totalFuel := int(dist[terminalIdx])
	if logger != nil {
		logger.Infow("exact planner found optimal tour", "total_fuel", totalFuel, "steps", len(trace))
	}
	return Result{Feasible: true, TotalFuel: totalFuel, Trace: trace}, nil
}

// coverageMask returns the bits of every target covered by the vehicle's
// full footprint at (x, y, o). Used by the tour planner, as distinct from
// reachability's anchor-only check.
func coverageMask(x, y int, o vehicle.Orientation, targets []Target) uint32 {
	var mask uint32
	covered := collision.CoveredCells(x, y, o)
	for i, t := range targets {
		for _, c := range covered {
			if c.X == t.X && c.Y == t.Y {
				mask |= 1 << uint(i)
				break
			}
		}
	}
	return mask
}

// reconstructTrace walks the parent chain from terminalIdx back to the
// start state (parent == -1) and reverses it into a start-to-finish trace.
// A chain that fails to terminate within total hops indicates a parent
// cycle, an internal invariant violation this engine never produces in a
// well-formed run.
func reconstructTrace(ix indexer, parent []int64, terminalIdx int64, total int64) ([]Step, error) {
	var reversed []Step
	cur := terminalIdx
	for hops := int64(0); cur >= 0; hops++ {
		if hops > total {
			return nil, ErrInvariantViolation
		}
		s := ix.decode(cur)
		reversed = append(reversed, Step{X: s.X, Y: s.Y, Orientation: s.Orientation})
		cur = parent[cur]
	}
	trace := make([]Step, len(reversed))
	for i, s := range reversed {
		trace[len(reversed)-1-i] = s
	}
	return trace, nil
}

// pqEntry is one entry in the Dijkstra priority queue: an encoded state and
// its accumulated fuel cost.
type pqEntry struct {
	state int64
	cost  int
}

// priorityQueue is a binary min-heap keyed on cost, via container/heap.
// Stability is not required; stale entries (cost > dist[state]) are
// ignored on pop rather than removed from the heap.
type priorityQueue []pqEntry

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x any)        { *pq = append(*pq, x.(pqEntry)) }
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
