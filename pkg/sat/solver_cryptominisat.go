package sat

import (
	"context"
	"os/exec"
	"strings"
)

const cryptominisatBinary = "cryptominisat5"

type cryptominisatSolver struct{}

func NewCryptominisatSolver() SATSolver {
	return &cryptominisatSolver{}
}

func (solver *cryptominisatSolver) Solve(sat SAT) (Outcome, error) {
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	output, verdict, err := runSolver("cryptominisat", func(ctx context.Context) *exec.Cmd {
		cmd := exec.CommandContext(ctx, executablePath("cryptominisatPath", cryptominisatBinary), "--verb", "0")
		cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into cryptominisat's standard input
		return cmd
	})
	if err != nil {
		return Outcome{}, err
	} else if verdict != Satisfiable {
		return Outcome{Verdict: verdict}, nil
	}

	return Outcome{Verdict: Satisfiable, Solution: parseSolution(output)}, nil
}
