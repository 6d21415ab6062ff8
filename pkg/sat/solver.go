package sat

import "time"

// SolveTimeout bounds the wall-clock time of a single Solve call. External
// solver processes are killed once it expires and embedded solvers stop
// searching; either way the run ends with a TimedOut verdict.
var SolveTimeout = 600 * time.Second

type SATSolver interface {
	Solve(SAT) (Outcome, error) // Returns an error only when the solver failed to reach a decision (crash, missing binary, garbled output): a timeout is an Outcome, not an error
}
