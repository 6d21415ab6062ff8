package sat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// SATSolution lists every literal of a satisfying assignment: a positive
// literal v means variable v is true, a negative literal means it is false.
type SATSolution []int64

// SAT is a propositional formula in conjunctive normal form. Variables are
// numbered 1 through Variables and clauses hold non-zero DIMACS literals.
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	s.WriteDIMACS(&builder) // strings.Builder writes cannot fail
	return builder.String()
}

// WriteDIMACS streams the formula in DIMACS-CNF format. The output depends
// only on the formula itself: equal formulas produce byte-identical output.
func (s SAT) WriteDIMACS(writer io.Writer) error {
	bufferedWriter := bufio.NewWriter(writer)
	fmt.Fprintf(bufferedWriter, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(bufferedWriter, "%d ", literal)
		}
		bufferedWriter.WriteString("0\n")
	}
	return bufferedWriter.Flush()
}

func (s SAT) WriteDIMACSFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.WriteDIMACS(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
