package sat

import "fmt"

type dumpingSolver struct {
	inner SATSolver
	path  string
}

// NewDumpingSolver wraps inner so that every formula is written to path in
// DIMACS-CNF format before it is solved. A formula that cannot be persisted
// is never handed to the inner solver.
func NewDumpingSolver(inner SATSolver, path string) SATSolver {
	return &dumpingSolver{inner: inner, path: path}
}

func (solver *dumpingSolver) Solve(sat SAT) (Outcome, error) {
	if err := sat.WriteDIMACSFile(solver.path); err != nil {
		return Outcome{}, fmt.Errorf("cannot dump formula to %v: %v", solver.path, err)
	}
	return solver.inner.Solve(sat)
}
