// Package reachability implements the BFS accessibility analysis over the
// vehicle's configuration space: which objectives can be reached from the
// start configuration at all, before any tour is planned.
package reachability

import (
	"github.com/KoalaWill/maze-motionplan/collision"
	"github.com/KoalaWill/maze-motionplan/logging"
	"github.com/KoalaWill/maze-motionplan/maze"
	"github.com/KoalaWill/maze-motionplan/vehicle"
)

// Objective is a grid cell carrying the CellObjective code, with the
// reachable flag this analysis sets.
type Objective struct {
	X, Y      int
	Reachable bool
}

// Result is the outcome of one accessibility analysis: the full set of
// objectives found in the grid (in scan order) and how many are reachable.
type Result struct {
	Objectives     []Objective
	ReachableCount int
}

type state struct {
	x, y int
	o    vehicle.Orientation
}

// Analyze runs a BFS over (x, y, orientation) configurations from start,
// flags each objective cell as reachable the moment the BFS anchors on it,
// and then demotes every unreached objective from CellObjective to CellFree
// in grid so downstream tour planning neither targets nor is blocked by it.
//
// Reachability marks an objective only when the anchor lands on it, not
// when any footprint cell covers it; this is a deliberate asymmetry with
// the tour planner's full-footprint coverage (see touring.ExactPlan).
func Analyze(grid *maze.Grid, start maze.StartConfig, logger logging.Logger) Result {
	objectives := scanObjectives(grid)

	if !collision.Fits(grid, start.X, start.Y, start.Orientation) {
		if logger != nil {
			logger.Infow("start configuration does not fit; no objectives reachable",
				"x", start.X, "y", start.Y, "orientation", start.Orientation)
		}
		demoteUnreached(grid, objectives)
		return Result{Objectives: objectives, ReachableCount: 0}
	}

	visited := make(map[state]bool)
	queue := []state{{start.X, start.Y, start.Orientation}}
	visited[queue[0]] = true

	byCell := make(map[[2]int][]int, len(objectives))
	for i, obj := range objectives {
		key := [2]int{obj.X, obj.Y}
		byCell[key] = append(byCell[key], i)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if idxs, ok := byCell[[2]int{cur.x, cur.y}]; ok {
			for _, i := range idxs {
				objectives[i].Reachable = true
			}
		}

		for _, m := range vehicle.Transitions(cur.o) {
			nx, ny := cur.x+m.DX, cur.y+m.DY
			if !grid.InBounds(nx, ny) {
				continue
			}
			next := state{nx, ny, m.NewOrientation}
			if visited[next] {
				continue
			}
			if !collision.Fits(grid, nx, ny, m.NewOrientation) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	reachableCount := 0
	for _, obj := range objectives {
		if obj.Reachable {
			reachableCount++
		}
	}
	if logger != nil {
		logger.Infow("reachability analysis complete",
			"total_objectives", len(objectives), "reachable", reachableCount)
	}

	demoteUnreached(grid, objectives)
	return Result{Objectives: objectives, ReachableCount: reachableCount}
}

func scanObjectives(grid *maze.Grid) []Objective {
	var objectives []Objective
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			if grid.At(x, y) == maze.CellObjective {
				objectives = append(objectives, Objective{X: x, Y: y})
			}
		}
	}
	return objectives
}

func demoteUnreached(grid *maze.Grid, objectives []Objective) {
	for _, obj := range objectives {
		if !obj.Reachable {
			grid.Set(obj.X, obj.Y, maze.CellFree)
		}
	}
}
