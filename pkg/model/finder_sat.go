package model

import (
	"fmt"
	"log"

	"github.com/limaJavier/longcycle/pkg/sat"
)

type satCycleFinder struct {
	//** Dependencies
	solver sat.SATSolver

	verbose bool
}

func newSatCycleFinder(solver sat.SATSolver, verbose bool) *satCycleFinder {
	return &satCycleFinder{
		solver:  solver,
		verbose: verbose,
	}
}

func (finder *satCycleFinder) Find(instance Instance) (Cycle, uint64, uint64, error) {
	graph := instance.Graph

	// A simple cycle spans at least 3 vertices, hence shorter targets widen
	// to 3 and lengths above the vertex count are never tried
	shortest := max(instance.Target, 3)

	variables, clauses := uint64(0), uint64(0)
	for length := graph.Vertices; length >= shortest; length-- {
		if finder.verbose {
			log.Printf("trying length %v...", length)
		}

		//** Build SAT instance
		encoder := newEncoder(graph, length)
		satInstance, err := encoder.Encode()
		if err != nil {
			return nil, variables, clauses, err
		}
		variables, clauses = satInstance.Variables, uint64(len(satInstance.Clauses))

		//** Solve SAT instance
		outcome, err := finder.solver.Solve(satInstance)
		if err != nil {
			return nil, variables, clauses, fmt.Errorf("cannot decide length %v: %w", length, err)
		}
		switch outcome.Verdict {
		case sat.Unsatisfiable:
			continue
		case sat.TimedOut:
			return nil, variables, clauses, fmt.Errorf("solver timed out on length %v", length)
		}

		//** Decode solution
		cycle, err := decodeCycle(outcome.Solution, encoder.indexer, graph, length)
		if err != nil {
			return nil, variables, clauses, fmt.Errorf("cannot decode length %v: %w", length, err)
		}
		return cycle, variables, clauses, nil
	}

	return nil, variables, clauses, nil
}

func (finder *satCycleFinder) Verify(cycle Cycle, instance Instance) bool {
	graph := instance.Graph
	length := uint64(len(cycle))

	// Length must be feasible and reach the target
	if length < 3 || length > graph.Vertices || length < instance.Target {
		return false
	}

	// Vertices must exist and repeat nowhere
	seen := make(map[uint64]bool, length)
	for _, vertex := range cycle {
		if vertex < 1 || vertex > graph.Vertices || seen[vertex] {
			return false
		}
		seen[vertex] = true
	}

	// Consecutive vertices must share an edge, wrapping around at the end
	for i := range cycle {
		next := (i + 1) % len(cycle)
		if !graph.Adjacent(cycle[i], cycle[next]) {
			return false
		}
	}

	return true
}
