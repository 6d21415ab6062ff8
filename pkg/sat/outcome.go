package sat

// Verdict is the decision a solver reached on a formula.
type Verdict int

const (
	Satisfiable Verdict = iota
	Unsatisfiable
	TimedOut
)

var verdictNames = map[Verdict]string{
	Satisfiable:   "satisfiable",
	Unsatisfiable: "unsatisfiable",
	TimedOut:      "timeout",
}

func (verdict Verdict) String() string {
	if name, ok := verdictNames[verdict]; ok {
		return name
	}
	return "unknown"
}

// Outcome is the result of a single solver run. Solution is populated only
// when Verdict is Satisfiable and lists one literal per variable.
type Outcome struct {
	Verdict  Verdict
	Solution SATSolution
}
