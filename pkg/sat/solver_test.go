package sat

import (
	"context"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var satisfiableFormula = SAT{
	Variables: 2,
	Clauses:   [][]int64{{1, 2}, {-1, 2}},
}

var unsatisfiableFormula = SAT{
	Variables: 1,
	Clauses:   [][]int64{{1}, {-1}},
}

func TestGini(t *testing.T) {
	solver := NewGiniSolver()
	verdictExecution(t, solver)
	randomExecution(t, solver)
}

func TestGophersat(t *testing.T) {
	solver := NewGophersatSolver()
	verdictExecution(t, solver)
	randomExecution(t, solver)
}

func TestEmbeddedSolversAgree(t *testing.T) {
	first := NewGiniSolver()
	second := NewGophersatSolver()

	for range 10 {
		instance := GenerateSATInstance(uint64(rand.IntN(30)+1), rand.IntN(80)+1)

		firstOutcome, err := first.Solve(instance)
		assert.NoError(t, err)
		secondOutcome, err := second.Solve(instance)
		assert.NoError(t, err)

		assert.Equal(t, firstOutcome.Verdict, secondOutcome.Verdict)
	}
}

func TestKissat(t *testing.T) {
	requireBinary(t, kissatBinary, "kissatPath")
	solver := NewKissatSolver()
	verdictExecution(t, solver)
	randomExecution(t, solver)
}

func TestCadical(t *testing.T) {
	requireBinary(t, cadicalBinary, "cadicalPath")
	solver := NewCadicalSolver()
	verdictExecution(t, solver)
	randomExecution(t, solver)
}

func TestCryptominisat(t *testing.T) {
	requireBinary(t, cryptominisatBinary, "cryptominisatPath")
	solver := NewCryptominisatSolver()
	verdictExecution(t, solver)
	randomExecution(t, solver)
}

func TestMinisat(t *testing.T) {
	requireBinary(t, minisatBinary, "minisatPath")
	solver := NewMinisatSolver()
	verdictExecution(t, solver)
	randomExecution(t, solver)
}

func TestGlucoseSyrup(t *testing.T) {
	requireBinary(t, glucoseSyrupBinary, "glucoseSyrupPath")
	solver := NewGlucoseSyrupSolver()
	verdictExecution(t, solver)
	randomExecution(t, solver)
}

func TestDumpingSolver(t *testing.T) {
	t.Run("Persists the formula before solving", func(t *testing.T) {
		//** Arrange
		path := filepath.Join(t.TempDir(), "formula.cnf")
		solver := NewDumpingSolver(NewGiniSolver(), path)

		//** Act
		outcome, err := solver.Solve(satisfiableFormula)

		//** Assert
		assert.NoError(t, err)
		assert.Equal(t, Satisfiable, outcome.Verdict)
		content, readErr := os.ReadFile(path)
		assert.NoError(t, readErr)
		assert.Equal(t, satisfiableFormula.ToDIMACS(), string(content))
	})

	t.Run("Refuses to solve when the dump fails", func(t *testing.T) {
		//** Arrange
		inner := &stubSolver{}
		path := filepath.Join(t.TempDir(), "missing", "formula.cnf")
		solver := NewDumpingSolver(inner, path)

		//** Act
		_, err := solver.Solve(satisfiableFormula)

		//** Assert
		assert.Error(t, err)
		assert.Equal(t, 0, inner.calls)
	})
}

func TestParseSolution(t *testing.T) {
	output := "c process time: 0.01\ns SATISFIABLE\nv 1 -2 3\nv -4 5 0\n"
	assert.Equal(t, SATSolution{1, -2, 3, -4, 5}, parseSolution(output))
}

func TestRunSolverTimeout(t *testing.T) {
	timeout := SolveTimeout
	SolveTimeout = 100 * time.Millisecond
	defer func() { SolveTimeout = timeout }()

	_, verdict, err := runSolver("sleep", func(ctx context.Context) *exec.Cmd {
		return exec.CommandContext(ctx, "sleep", "5")
	})

	assert.NoError(t, err)
	assert.Equal(t, TimedOut, verdict)
}

func TestRunSolverMissingBinary(t *testing.T) {
	_, _, err := runSolver("missing", func(ctx context.Context) *exec.Cmd {
		return exec.CommandContext(ctx, "a-solver-binary-that-does-not-exist")
	})

	assert.Error(t, err)
}

// verdictExecution pins the verdicts of two formulas whose status is known
// upfront.
func verdictExecution(t *testing.T, solver SATSolver) {
	t.Run("Satisfiable formula", func(t *testing.T) {
		outcome, err := solver.Solve(satisfiableFormula)
		assert.NoError(t, err)
		assert.Equal(t, Satisfiable, outcome.Verdict)
		assert.True(t, AssertSATSolution(satisfiableFormula, outcome.Solution))
	})

	t.Run("Unsatisfiable formula", func(t *testing.T) {
		outcome, err := solver.Solve(unsatisfiableFormula)
		assert.NoError(t, err)
		assert.Equal(t, Unsatisfiable, outcome.Verdict)
		assert.Empty(t, outcome.Solution)
	})
}

// randomExecution solves random instances and validates every model the
// solver reports.
func randomExecution(t *testing.T, solver SATSolver) {
	t.Run("Random instances", func(t *testing.T) {
		for range 10 {
			variables := uint64(rand.IntN(50) + 1)
			clauses := rand.IntN(100) + 1
			instance := GenerateSATInstance(variables, clauses)

			outcome, err := solver.Solve(instance)
			assert.NoError(t, err)

			if outcome.Verdict == Satisfiable {
				assert.True(t, AssertSATSolution(instance, outcome.Solution))
			}
		}
	})
}

func requireBinary(t *testing.T, binary, configKey string) {
	if path := getExecutablePath(configKey); path != "" {
		return
	}
	if _, err := exec.LookPath(binary); err != nil {
		t.Skipf("%v is not installed", binary)
	}
}

type stubSolver struct {
	calls   int
	outcome Outcome
	err     error
}

func (solver *stubSolver) Solve(sat SAT) (Outcome, error) {
	solver.calls++
	return solver.outcome, solver.err
}
