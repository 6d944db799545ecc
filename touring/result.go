package touring

import "github.com/KoalaWill/maze-motionplan/vehicle"

// PlaybackTickFrames is how many animation frames the reference
// presentation layer advances the trace by one step, at its 60 Hz frame
// rate. The engine produces no frames itself; this constant is exported
// purely as data a presentation layer can consume.
const PlaybackTickFrames = 10

// Step is one configuration in a produced trace.
type Step struct {
	X, Y        int
	Orientation vehicle.Orientation
}

// Result is the outcome of a tour-planning run: either a feasible plan
// with its total fuel and trace, or Feasible == false for "no plan found".
// This is a distinguished result value, not an error: an infeasible plan
// is an expected outcome of a well-formed run.
type Result struct {
	Feasible  bool
	TotalFuel int
	Trace     []Step
}
