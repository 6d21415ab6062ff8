package sat

import (
	"context"
	"os/exec"
	"strings"
)

const kissatBinary = "kissat"

type kissatSolver struct{}

func NewKissatSolver() SATSolver {
	return &kissatSolver{}
}

func (solver *kissatSolver) Solve(sat SAT) (Outcome, error) {
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	output, verdict, err := runSolver("kissat", func(ctx context.Context) *exec.Cmd {
		cmd := exec.CommandContext(ctx, executablePath("kissatPath", kissatBinary), "-q", "--relaxed")
		cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into kissat's standard input
		return cmd
	})
	if err != nil {
		return Outcome{}, err
	} else if verdict != Satisfiable {
		return Outcome{Verdict: verdict}, nil
	}

	return Outcome{Verdict: Satisfiable, Solution: parseSolution(output)}, nil
}
