package touring

import "github.com/pkg/errors"

// ErrAllocationFailed is surfaced when the exact planner's cost/parent
// arrays (sized R*C*4*2^N) would exceed math.MaxInt32 entries, so ExactPlan
// refuses to allocate them. The dispatcher is expected
// to have already routed large instances to ApproxPlan before this can
// happen; it exists as a documented last-resort failure, not a normal path.
var ErrAllocationFailed = errors.New("touring: failed to allocate exact-planner state arrays")

// ErrInvariantViolation marks an internal bug: a popped state whose cost
// disagreed with the stored distance, or a parent chain that cycled during
// reconstruction. Neither occurs in a well-formed run; this is not a
// recoverable condition and callers should treat it as fatal.
var ErrInvariantViolation = errors.New("touring: internal invariant violation")
