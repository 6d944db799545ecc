// Package engine ties the maze loader, reachability analyzer, and tour
// planners together into the three operations a caller needs: load a maze,
// analyze which objectives are reachable, then plan a tour over them. Each
// run owns its grid and objectives as a value on the Run, never as
// process-wide state.
package engine

import (
	"github.com/pkg/errors"

	"github.com/KoalaWill/maze-motionplan/collision"
	"github.com/KoalaWill/maze-motionplan/logging"
	"github.com/KoalaWill/maze-motionplan/maze"
	"github.com/KoalaWill/maze-motionplan/reachability"
	"github.com/KoalaWill/maze-motionplan/touring"
)

// DefaultApproxThreshold is the reachable-objective count at or above which
// Plan's "auto" mode routes to the approximate planner instead of the exact
// one.
const DefaultApproxThreshold = 15

// ErrStartInfeasible is returned by LoadMaze when the derived start
// configuration's footprint does not fit in the grid.
var ErrStartInfeasible = errors.New("engine: start configuration does not fit")

// Mode selects which tour planner Plan uses.
type Mode int

const (
	// ModeAuto dispatches to ModeExact or ModeApprox based on Threshold.
	ModeAuto Mode = iota
	ModeExact
	ModeApprox
)

// Run is a single planning session's owned state: the loaded grid, its
// derived start configuration, and the approximate-planner dispatch
// threshold. A Run is not safe for concurrent use; callers needing
// concurrent runs should construct one Run per goroutine.
type Run struct {
	Grid      *maze.Grid
	Start     maze.StartConfig
	Threshold int
	Logger    logging.Logger
}

// LoadMaze parses data into a grid and derived start configuration, then
// verifies the start configuration actually fits. Threshold defaults to
// DefaultApproxThreshold; callers can override Run.Threshold afterward.
func LoadMaze(data []byte, logger logging.Logger) (*Run, error) {
	grid, start, err := maze.Load(data)
	if err != nil {
		return nil, err
	}
	if !collision.Fits(grid, start.X, start.Y, start.Orientation) {
		return nil, ErrStartInfeasible
	}
	return &Run{Grid: grid, Start: start, Threshold: DefaultApproxThreshold, Logger: logger}, nil
}

// AnalyzeReachability runs the BFS accessibility analysis over r's grid and
// start configuration, demoting unreached objectives to free cells as a
// side effect.
func (r *Run) AnalyzeReachability() reachability.Result {
	return reachability.Analyze(r.Grid, r.Start, r.Logger)
}

// Plan takes the reachable objectives of result (it does not run
// reachability itself) and dispatches to the exact or approximate tour
// planner per mode. ModeAuto chooses ModeExact when the reachable count is below
// r.Threshold, ModeApprox otherwise.
func (r *Run) Plan(result reachability.Result, mode Mode) (touring.Result, error) {
	targets := make([]touring.Target, 0, result.ReachableCount)
	for _, obj := range result.Objectives {
		if obj.Reachable {
			targets = append(targets, touring.Target{X: obj.X, Y: obj.Y})
		}
	}

	chosen := mode
	if chosen == ModeAuto {
		if len(targets) < r.Threshold {
			chosen = ModeExact
		} else {
			chosen = ModeApprox
		}
	}

	if r.Logger != nil {
		r.Logger.Infow("dispatching tour planner", "mode", chosen, "reachable", len(targets))
	}

	switch chosen {
	case ModeExact:
		return touring.ExactPlan(r.Grid, r.Start, targets, r.Logger)
	case ModeApprox:
		return touring.ApproxPlan(r.Grid, r.Start, targets, r.Logger)
	default:
		return touring.Result{}, errors.Errorf("engine: unknown planning mode %v", mode)
	}
}
