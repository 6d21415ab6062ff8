package sat

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const minisatBinary = "minisat"

type minisatSolver struct{}

func NewMinisatSolver() SATSolver {
	return &minisatSolver{}
}

func (solver *minisatSolver) Solve(sat SAT) (Outcome, error) {
	// Create a temporary file to hold the DIMACS content
	inputTempFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	outputTempFile, err := os.CreateTemp("", "minisat_output-*.out")
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(outputTempFile.Name()) // Ensure the file is removed after execution

	// Write the DIMACS content to the temporary file
	if err := sat.WriteDIMACS(inputTempFile); err != nil {
		return Outcome{}, fmt.Errorf("failed to write DIMACS to temporary file: %v", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return Outcome{}, fmt.Errorf("failed to close temporary file: %v", err)
	}

	_, verdict, err := runSolver("minisat", func(ctx context.Context) *exec.Cmd {
		// minisat takes the input and output files as positional arguments
		return exec.CommandContext(ctx, executablePath("minisatPath", minisatBinary), "-verb=0", inputTempFile.Name(), outputTempFile.Name())
	})
	if err != nil {
		return Outcome{}, err
	} else if verdict != Satisfiable {
		return Outcome{Verdict: verdict}, nil
	}

	output, err := io.ReadAll(outputTempFile) // Read the model written by minisat
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to read output file: %v", err)
	}
	return Outcome{Verdict: Satisfiable, Solution: solver.parseSolution(string(output))}, nil
}

func (solver *minisatSolver) parseSolution(solverOutput string) SATSolution {
	lines := strings.Split(solverOutput, "\n")
	if len(lines) < 2 {
		log.Panicf("minisat output is missing a model line: %q", solverOutput)
	}
	// The first line holds the verdict, the model sits on the second line
	return lo.FilterMap(strings.Fields(lines[1]), func(valueStr string, _ int) (int64, bool) {
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			log.Panicf("invalid literal in solver output: %v", err)
		}
		return value, value != 0
	})
}
