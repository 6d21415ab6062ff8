package sat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConfigPath points to an optional json file mapping solver names to
// executable paths, e.g. {"kissatPath": "/opt/kissat/build/kissat"}. Solvers
// absent from the config resolve their bare binary name through PATH.
var ConfigPath = "config.json"

func getExecutablePath(solver string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return "" // No config file: the caller falls back to the binary name
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		log.Fatalf("cannot read %v file: %v", ConfigPath, err)
	}

	var config map[string]string
	mapstructure.Decode(inputJson, &config)

	return config[solver]
}

func executablePath(configKey, binary string) string {
	if path := getExecutablePath(configKey); path != "" {
		return path
	}
	return binary
}

// runSolver executes a solver process under SolveTimeout and classifies its
// exit. Exit-code of 10 stands for satisfiable and exit-code 20 stands for
// unsatisfiable; any other exit means the solver failed. On a Satisfiable
// verdict the returned string holds the process standard output.
func runSolver(name string, command func(ctx context.Context) *exec.Cmd) (string, Verdict, error) {
	ctx, cancel := context.WithTimeout(context.Background(), SolveTimeout)
	defer cancel()

	cmd := command(ctx)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", TimedOut, nil
	}

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	switch exitCode {
	case 10:
		return stdOut.String(), Satisfiable, nil
	case 20:
		return "", Unsatisfiable, nil
	default:
		detail := stderr.String()
		if err != nil {
			detail = fmt.Sprintf("%v : %v", err.Error(), detail)
		}
		return "", Unsatisfiable, fmt.Errorf("an error occurred during %v execution (exit-code %v): %v", name, exitCode, detail)
	}
}

// parseSolution collects the literals of the "v " lines a solver prints for a
// satisfiable formula, dropping the terminating 0.
func parseSolution(solverOutput string) SATSolution {
	return lo.FilterMap(
		lo.Reduce(
			lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
				return len(line) > 0 && line[0] == 'v'
			}),
			func(values []string, line string, _ int) []string {
				return append(values, strings.Fields(line[1:])...)
			},
			[]string{},
		),
		func(valueStr string, _ int) (int64, bool) {
			value, err := strconv.ParseInt(valueStr, 10, 64)
			if err != nil {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			return value, value != 0
		},
	)
}
