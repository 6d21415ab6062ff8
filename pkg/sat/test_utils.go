package sat

import "math/rand/v2"

// GenerateSATInstance builds a random formula over the given number of
// variables. Clauses hold between one and five distinct literals.
func GenerateSATInstance(variables uint64, clauses int) SAT {
	satInstance := SAT{
		Variables: variables,
		Clauses:   make([][]int64, clauses),
	}

	for i := range clauses {
		length := 1 + rand.IntN(5)
		picked := make(map[int64]bool, length)
		clause := make([]int64, 0, length)
		for len(clause) < length {
			variable := 1 + rand.Int64N(int64(variables))
			if picked[variable] {
				continue
			}
			picked[variable] = true

			literal := variable
			if rand.Float32() < 0.5 {
				literal = -literal
			}
			clause = append(clause, literal)
		}
		satInstance.Clauses[i] = clause
	}

	return satInstance
}

// AssertSATSolution reports whether satSolution is a consistent assignment
// that satisfies every clause of satInstance.
func AssertSATSolution(satInstance SAT, satSolution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range satSolution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range satInstance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
