package model

import "github.com/limaJavier/longcycle/pkg/sat"

type CycleFinder interface {
	// Find searches for the longest simple cycle of length at least
	// instance.Target, deciding one length at a time from the vertex count
	// downwards. A nil cycle means no such cycle exists. The variables and
	// clauses counts describe the last formula handed to the solver.
	Find(instance Instance) (cycle Cycle, variables uint64, clauses uint64, err error)

	// Verify rechecks a cycle against the instance independently of the solver
	Verify(cycle Cycle, instance Instance) bool
}

func NewCycleFinder(solver sat.SATSolver, verbose bool) CycleFinder {
	return newSatCycleFinder(solver, verbose)
}
