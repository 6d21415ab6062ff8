package sat

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

const glucoseSyrupBinary = "glucose-syrup"

type glucoseSyrupSolver struct{}

func NewGlucoseSyrupSolver() SATSolver {
	return &glucoseSyrupSolver{}
}

func (solver *glucoseSyrupSolver) Solve(sat SAT) (Outcome, error) {
	// Create a temporary file to hold the DIMACS content
	inputTempFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	// Write the DIMACS content to the temporary file
	if err := sat.WriteDIMACS(inputTempFile); err != nil {
		return Outcome{}, fmt.Errorf("failed to write DIMACS to temporary file: %v", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return Outcome{}, fmt.Errorf("failed to close temporary file: %v", err)
	}

	output, verdict, err := runSolver("glucose-syrup", func(ctx context.Context) *exec.Cmd {
		// -model makes glucose print the satisfying assignment on standard output
		return exec.CommandContext(ctx, executablePath("glucoseSyrupPath", glucoseSyrupBinary), "-model", "-verb=0", inputTempFile.Name())
	})
	if err != nil {
		return Outcome{}, err
	} else if verdict != Satisfiable {
		return Outcome{Verdict: verdict}, nil
	}

	return Outcome{Verdict: Satisfiable, Solution: parseSolution(output)}, nil
}
