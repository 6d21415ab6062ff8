package sat

import (
	"time"

	gophersat "github.com/crillab/gophersat/solver"
	"github.com/samber/lo"
)

type gophersatSolver struct{}

// NewGophersatSolver returns an embedded solver built on gophersat. Like gini
// it runs in-process without any external binary.
func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (solver *gophersatSolver) Solve(sat SAT) (Outcome, error) {
	clauses := lo.Map(sat.Clauses, func(clause []int64, _ int) []int {
		return lo.Map(clause, func(literal int64, _ int) int {
			return int(literal)
		})
	})
	s := gophersat.New(gophersat.ParseSlice(clauses))

	statuses := make(chan gophersat.Status, 1)
	go func() {
		statuses <- s.Solve()
	}()

	var status gophersat.Status
	select {
	case status = <-statuses:
	case <-time.After(SolveTimeout):
		// The search offers no interruption hook: abandon it and report the timeout
		return Outcome{Verdict: TimedOut}, nil
	}
	if status != gophersat.Sat {
		return Outcome{Verdict: Unsatisfiable}, nil
	}

	// Model associates index i with variable i+1
	model := s.Model()
	solution := make(SATSolution, 0, len(model))
	for index, value := range model {
		variable := int64(index + 1)
		if value {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}
	return Outcome{Verdict: Satisfiable, Solution: solution}, nil
}
