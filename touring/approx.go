package touring

import (
	"github.com/katalvlaran/lvlath/matrix"
	"github.com/katalvlaran/lvlath/tsp"
	"github.com/pkg/errors"

	"github.com/KoalaWill/maze-motionplan/logging"
	"github.com/KoalaWill/maze-motionplan/maze"
	"github.com/KoalaWill/maze-motionplan/vehicle"
)

// infeasibleLegCost stands in for "no maneuver sequence connects these two
// cells". dummyToStartCost is the very large cost from the dummy node to the
// start node that keeps the Eulerian walk from ever shortcutting the start
// away.
const (
	infeasibleLegCost = 1_000_000
	dummyToStartCost  = 1_000_000
)

// ApproxPlan builds a Christofides-style tour over {start} ∪ targets using
// a dummy node to make the odd-degree handling well-formed, then stitches
// physical maneuver legs between consecutive tour stops.
// It does not guarantee optimality. A feasible result covers every target;
// if some leg cannot be stitched, the result has Feasible == false.
func ApproxPlan(grid *maze.Grid, start maze.StartConfig, targets []Target, logger logging.Logger) (Result, error) {
	nodes := buildNodes(grid, start, targets)
	m := len(nodes) // real nodes: start + targets
	dummy := m

	dist, err := buildCostMatrix(grid, nodes)
	if err != nil {
		return Result{}, err
	}

	_, adj, err := tsp.MinimumSpanningTree(dist)
	if err != nil {
		return Result{}, errors.Wrap(err, "touring: approximate planner MST")
	}

	odd := oddDegreeVertices(adj)
	greedyMatchInIndexOrder(odd, dist, adj)

	circuit := tsp.EulerianCircuit(adj, 0)
	order := shortcutToHamiltonian(circuit, dummy)

	result, err := stitchLegs(grid, start, nodes, order, logger)
	if err != nil {
		return Result{}, err
	}
	if logger != nil {
		logger.Infow("approximate planner produced a tour",
			"targets", len(targets), "total_fuel", result.TotalFuel, "steps", len(result.Trace))
	}
	return result, nil
}

// tourNode is one real node of the Christofides node set: a cell plus the
// orientation the inner Dijkstra should start from when leaving it.
type tourNode struct {
	X, Y        int
	Orientation vehicle.Orientation
}

// buildNodes constructs the {start} ∪ targets node set in the order that
// fixes node 0 as the start and node i (1 <= i <= len(targets)) as
// targets[i-1].
func buildNodes(grid *maze.Grid, start maze.StartConfig, targets []Target) []tourNode {
	nodes := make([]tourNode, 0, len(targets)+1)
	nodes = append(nodes, tourNode{X: start.X, Y: start.Y, Orientation: start.Orientation})
	for _, t := range targets {
		o, ok := firstFittingOrientation(grid, t.X, t.Y)
		if !ok {
			// No orientation fits with its anchor at this objective cell.
			// Orientation0 is used as a placeholder: buildCostMatrix's legs
			// leaving this node start from that non-fitting configuration,
			// while legs arriving here only need some footprint to cover it.
			o = vehicle.Orientation0
		}
		nodes = append(nodes, tourNode{X: t.X, Y: t.Y, Orientation: o})
	}
	return nodes
}

// buildCostMatrix fills the (M+1)x(M+1) dense matrix: real-to-real costs
// from the inner Dijkstra, the dummy's free
// edges to every real node but the start, and a very large dummy-to-start
// cost.
func buildCostMatrix(grid *maze.Grid, nodes []tourNode) (*matrix.Dense, error) {
	m := len(nodes)
	dim := m + 1
	dummy := m

	dense, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, errors.Wrap(err, "touring: allocating cost matrix")
	}

	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			cost := infeasibleLegCost
			leg := runLegDijkstra(grid, nodes[i].X, nodes[i].Y, nodes[i].Orientation, nodes[j].X, nodes[j].Y, false)
			if leg.Feasible {
				cost = leg.Cost
			}
			if err := dense.Set(i, j, float64(cost)); err != nil {
				return nil, err
			}
			if err := dense.Set(j, i, float64(cost)); err != nil {
				return nil, err
			}
		}
	}

	for i := 0; i < m; i++ {
		cost := 0.0
		if i == 0 {
			cost = dummyToStartCost
		}
		if err := dense.Set(i, dummy, cost); err != nil {
			return nil, err
		}
		if err := dense.Set(dummy, i, cost); err != nil {
			return nil, err
		}
	}

	return dense, nil
}

// oddDegreeVertices returns, in ascending index order, every vertex whose
// MST degree is odd.
func oddDegreeVertices(adj [][]int) []int {
	var odd []int
	for v, neighbors := range adj {
		if len(neighbors)%2 == 1 {
			odd = append(odd, v)
		}
	}
	return odd
}

// greedyMatchInIndexOrder matches odd-degree vertices in index order: for
// each not-yet-matched vertex, match it to its cheapest not-yet-matched
// *later* peer. This intentionally differs from lvlath's own pop-from-end
// greedy matching (see DESIGN.md) to keep the construction deterministic
// and reproducible across runs.
func greedyMatchInIndexOrder(odd []int, dist *matrix.Dense, adj [][]int) {
	matched := make(map[int]bool, len(odd))
	for _, u := range odd {
		if matched[u] {
			continue
		}
		bestV := -1
		bestCost := 0.0
		for _, v := range odd {
			if v <= u || matched[v] {
				continue
			}
			c, err := dist.At(u, v)
			if err != nil {
				continue
			}
			if bestV == -1 || c < bestCost {
				bestV = v
				bestCost = c
			}
		}
		if bestV == -1 {
			continue
		}
		matched[u] = true
		matched[bestV] = true
		adj[u] = append(adj[u], bestV)
		adj[bestV] = append(adj[bestV], u)
	}
}

// shortcutToHamiltonian walks the Eulerian circuit and keeps only the first
// occurrence of each real vertex, skipping the dummy entirely, which puts
// the real vertices into a Hamiltonian-ish tour order.
func shortcutToHamiltonian(circuit []int, dummy int) []int {
	seen := make(map[int]bool, len(circuit))
	order := make([]int, 0, len(circuit))
	for _, v := range circuit {
		if v == dummy || seen[v] {
			continue
		}
		seen[v] = true
		order = append(order, v)
	}
	return order
}

// stitchLegs runs the inner Dijkstra with path reconstruction between each
// consecutive pair of tour stops and concatenates the resulting step
// sequences into a single trace.
func stitchLegs(grid *maze.Grid, start maze.StartConfig, nodes []tourNode, order []int, logger logging.Logger) (Result, error) {
	trace := []Step{{X: start.X, Y: start.Y, Orientation: start.Orientation}}
	totalFuel := 0
	curX, curY, curO := start.X, start.Y, start.Orientation

	for _, nodeIdx := range order {
		if nodeIdx == 0 {
			continue // the start node is already the trace's first entry
		}
		target := nodes[nodeIdx]
		leg := runLegDijkstra(grid, curX, curY, curO, target.X, target.Y, true)
		if !leg.Feasible {
			if logger != nil {
				logger.Infow("approximate planner could not stitch a leg", "target_x", target.X, "target_y", target.Y)
			}
			return Result{Feasible: false}, nil
		}
		// leg.Trace[0] duplicates the current tail; append the rest.
		trace = append(trace, leg.Trace[1:]...)
		totalFuel += leg.Cost
		tail := leg.Trace[len(leg.Trace)-1]
		curX, curY, curO = tail.X, tail.Y, tail.Orientation
	}

	return Result{Feasible: true, TotalFuel: totalFuel, Trace: trace}, nil
}
