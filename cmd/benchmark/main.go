package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/limaJavier/longcycle/pkg/model"

	"github.com/samber/lo"
)

const (
	executablePath     = "../../bin/longcycle"
	instancesDirectory = "../../instances/"
)

type SolverType int

const (
	gini SolverType = iota
	gophersat
	kissat
	cadical
	minisat
	cryptominisat
	glucosesyrup
)

type ResultType int

const (
	solved ResultType = iota
	none
	timeout
)

var (
	solverTypes = map[SolverType]string{
		gini:          "gini",
		gophersat:     "gophersat",
		kissat:        "kissat",
		cadical:       "cadical",
		minisat:       "minisat",
		cryptominisat: "cryptominisat",
		glucosesyrup:  "glucosesyrup",
	}
	solverBinaries = map[SolverType]string{
		kissat:        "kissat",
		cadical:       "cadical",
		minisat:       "minisat",
		cryptominisat: "cryptominisat5",
		glucosesyrup:  "glucose-syrup",
	}
	resultTypes = map[ResultType]string{
		solved:  "solved",
		none:    "none",
		timeout: "timeout",
	}
)

type TestMetadata struct {
	Name     string
	Vertices uint64
	Edges    uint64
	Target   uint64
}

type BenchmarkResult struct {
	Solver        SolverType
	Test          TestMetadata
	Duration      int64
	Memory        float32
	CpuPercentage int64
	Result        ResultType
}

func main() {
	tests := getTests()
	solvers := getSolvers()
	results := make([]BenchmarkResult, 0, len(tests)*len(solvers))

	for _, test := range tests {
		for _, solver := range solvers {
			fmt.Printf("Benchmarking instance \"%v\" with solver \"%v\"\n", test.Name, solverTypes[solver])

			duration, maxMemory, cpuPercentage, result := measure(solver, test.Name)

			results = append(results, BenchmarkResult{
				Solver:        solver,
				Test:          test,
				Duration:      duration,
				Memory:        maxMemory,
				CpuPercentage: cpuPercentage,
				Result:        result,
			})
		}
	}

	toCsv(results)
}

func getTests() []TestMetadata {
	testFiles, err := os.ReadDir(instancesDirectory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	tests := make([]TestMetadata, 0, len(testFiles))
	for _, file := range testFiles {
		filename := instancesDirectory + file.Name()
		instance, err := model.InstanceFromFile(filename)
		if err != nil {
			log.Fatalf("cannot parse instance file: %v", err)
		}

		tests = append(tests, TestMetadata{
			Name:     filename,
			Vertices: instance.Graph.Vertices,
			Edges:    instance.Graph.Edges,
			Target:   instance.Target,
		})
	}

	return tests
}

func getSolvers() []SolverType {
	all := []SolverType{gini, gophersat, kissat, cadical, minisat, cryptominisat, glucosesyrup}
	return lo.Filter(all, func(solver SolverType, _ int) bool {
		binary, external := solverBinaries[solver]
		if !external {
			return true // Embedded solvers always run
		}
		_, err := exec.LookPath(binary)
		return err == nil
	})
}

func measure(solver SolverType, testFile string) (duration int64, maxMemory float32, cpuPercentage int64, result ResultType) {
	cmd := exec.Command("/usr/bin/time", "-v", executablePath, "-solver", solverTypes[solver], "-file", testFile)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()
	if cmd.ProcessState.ExitCode() == 10 {
		result = solved
	} else if cmd.ProcessState.ExitCode() == 20 {
		result = none
	} else if strings.Contains(stdErr.String(), "timed out") {
		result = timeout
	} else {
		log.Fatalf("an error occurred during the execution of \"longcycle\" at instance \"%v\" using solver \"%v\": %v\n", testFile, solverTypes[solver], stdErr.String())
	}

	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	duration = parseDurationLine(getLine("wall clock"))
	maxMemory = parseMemoryLine(getLine("maximum resident set size"))
	cpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return duration, maxMemory, cpuPercentage, result
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Solver", "Test", "Vertices", "Edges", "Target", "Duration(ms)", "Memory(MB)", "CPU(%)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			solverTypes[result.Solver],
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Vertices),
			fmt.Sprintf("%d", result.Test.Edges),
			fmt.Sprintf("%d", result.Test.Target),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			fmt.Sprintf("%d", result.CpuPercentage),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

func parseMemoryLine(line string) float32 {
	memoryStr := strings.Split(line, ":")[1][1:]
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) / 1024
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.Split(line, ":")[1][1:]
	percentageStr = percentageStr[:len(percentageStr)-1]
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
