package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct{}

// NewGiniSolver returns an embedded CDCL solver. It runs in-process and needs
// no external binary, which makes it the default backend.
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(sat SAT) (Outcome, error) {
	g := gini.NewVc(int(sat.Variables), len(sat.Clauses))
	for _, clause := range sat.Clauses {
		for _, literal := range clause {
			g.Add(z.Dimacs2Lit(int(literal)))
		}
		g.Add(z.LitNull) // Terminate the clause
	}

	// Try returns 1 when satisfiable, -1 when unsatisfiable and 0 on timeout
	switch g.Try(SolveTimeout) {
	case -1:
		return Outcome{Verdict: Unsatisfiable}, nil
	case 0:
		return Outcome{Verdict: TimedOut}, nil
	}

	solution := make(SATSolution, 0, sat.Variables)
	for variable := int64(1); variable <= int64(sat.Variables); variable++ {
		if g.Value(z.Dimacs2Lit(int(variable))) {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}
	return Outcome{Verdict: Satisfiable, Solution: solution}, nil
}
