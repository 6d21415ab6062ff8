package sat

import (
	"context"
	"os/exec"
	"strings"
)

const cadicalBinary = "cadical"

type cadicalSolver struct{}

func NewCadicalSolver() SATSolver {
	return &cadicalSolver{}
}

func (solver *cadicalSolver) Solve(sat SAT) (Outcome, error) {
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	output, verdict, err := runSolver("cadical", func(ctx context.Context) *exec.Cmd {
		cmd := exec.CommandContext(ctx, executablePath("cadicalPath", cadicalBinary), "-q")
		cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into cadical's standard input
		return cmd
	})
	if err != nil {
		return Outcome{}, err
	} else if verdict != Satisfiable {
		return Outcome{Verdict: verdict}, nil
	}

	return Outcome{Verdict: Satisfiable, Solution: parseSolution(output)}, nil
}
