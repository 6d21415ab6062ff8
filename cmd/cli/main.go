package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/longcycle/pkg/model"
	"github.com/limaJavier/longcycle/pkg/sat"
	"github.com/samber/lo"
)

var (
	validSolvers = []string{"gini", "gophersat", "kissat", "cadical", "minisat", "cryptominisat", "glucosesyrup"}
	solvers      = map[string]func() sat.SATSolver{
		"gini":          sat.NewGiniSolver,
		"gophersat":     sat.NewGophersatSolver,
		"kissat":        sat.NewKissatSolver,
		"cadical":       sat.NewCadicalSolver,
		"minisat":       sat.NewMinisatSolver,
		"cryptominisat": sat.NewCryptominisatSolver,
		"glucosesyrup":  sat.NewGlucoseSyrupSolver,
	}
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the instance file")
	solverPtr := flag.String("solver", "gini", "SAT-Solver to use. Allowed values are: \"gini\", \"gophersat\", \"kissat\", \"cadical\", \"minisat\", \"cryptominisat\", \"glucosesyrup\", where \"gini\" is the default")
	cnfPathPtr := flag.String("cnf", "", "Path where every tried CNF formula is written before solving; if empty, formulas stay in memory")
	timeoutPtr := flag.Uint64("timeout", 600, "Wall-clock limit in seconds for a single solver run")
	configPathPtr := flag.String("config", "", "Path to the solver-paths config.json; defaults to the one next to the executable when present")
	verbosePtr := flag.Bool("verbose", false, "Log every length as it is tried")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("an instance file must be specified")
	} else if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if *timeoutPtr == 0 {
		log.Fatal("timeout must be positive")
	}

	setConfigPath(*configPathPtr)
	sat.SolveTimeout = time.Duration(*timeoutPtr) * time.Second

	// Extract instance
	instance, err := model.InstanceFromFile(filePath)
	if err != nil {
		log.Fatalf("cannot parse instance file: %v", err)
	}

	// Initialize engines
	solver := solvers[solverStr]()
	if *cnfPathPtr != "" {
		solver = sat.NewDumpingSolver(solver, *cnfPathPtr)
	}
	finder := model.NewCycleFinder(solver, *verbosePtr)

	fmt.Printf("Graph with %v nodes... Searching for cycle >= %v...\n", instance.Graph.Vertices, instance.Target)

	// Search for the longest cycle reaching the target
	cycle, variables, clauses, err := finder.Find(instance)
	if err != nil {
		log.Fatalf("an error occurred during the search: %v", err)
	} else if cycle == nil {
		fmt.Printf("\nNo simple cycle of length >= %v exists\n", instance.Target)
		fmt.Printf("Variables: %v\n", variables)
		fmt.Printf("Clauses: %v\n", clauses)
		os.Exit(20)
	}

	// Verify cycle correctness
	if !finder.Verify(cycle, instance) {
		fmt.Printf("Variables: %v\n", variables)
		fmt.Printf("Clauses: %v\n", clauses)
		os.Exit(15)
	}

	fmt.Println(strings.Repeat("-", 20))
	fmt.Printf("Found Cycle of Length %v:\n", len(cycle))
	fmt.Println(cycle)
	fmt.Println(strings.Repeat("-", 20))
	fmt.Printf("Variables: %v\n", variables)
	fmt.Printf("Clauses: %v\n", clauses)
	os.Exit(10)
}

func setConfigPath(explicit string) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			log.Fatalf("cannot read config file: %v", err)
		}
		sat.ConfigPath = explicit
		return
	}

	execPath, err := os.Executable()
	if err != nil {
		log.Fatalf("cannot determine executable path: %v", err)
	}
	execPath = path.Dir(execPath)

	// Use the config.json next to the executable when present; otherwise
	// solvers resolve their binaries through PATH
	files, err := os.ReadDir(execPath)
	if err != nil {
		log.Fatalf("cannot read executable's directory: %v", err)
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	if slices.Contains(fileNames, "config.json") {
		sat.ConfigPath = execPath + "/config.json"
	}
}
