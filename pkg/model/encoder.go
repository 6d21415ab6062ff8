package model

import (
	"fmt"
	"sync"

	"github.com/limaJavier/longcycle/pkg/sat"
)

type infeasibleLengthError struct {
	length   uint64
	vertices uint64
}

func (err infeasibleLengthError) Error() string {
	return fmt.Sprintf("no simple cycle of length %v can exist in a graph with %v vertices", err.length, err.vertices)
}

// encoder builds the CNF formula stating that the graph holds a simple cycle
// of exactly the given length. Variable (vertex-1)*length + position stands
// for "vertex sits at position of the cycle".
type encoder struct {
	//** Dependencies
	indexer indexer

	graph  Graph
	length uint64
}

func newEncoder(graph Graph, length uint64) *encoder {
	return &encoder{
		indexer: newIndexer(graph.Vertices, length),
		graph:   graph,
		length:  length,
	}
}

// Encode assembles the clause families into a SAT instance. The family order
// and the order within each family are fixed, so equal graphs and lengths
// always yield the same formula.
func (encoder *encoder) Encode() (sat.SAT, error) {
	// A simple cycle needs at least 3 vertices and cannot revisit any, hence
	// lengths outside [3, vertices] are infeasible upfront
	if encoder.length < 3 || encoder.length > encoder.graph.Vertices {
		return sat.SAT{}, infeasibleLengthError{length: encoder.length, vertices: encoder.graph.Vertices}
	}

	// Constraints functions
	constraints := []func() [][]int64{
		encoder.occupancyClauses,
		encoder.positionUniquenessClauses,
		encoder.vertexUniquenessClauses,
		encoder.adjacencyClauses,
	}

	// Execute constraints functions on different goroutines to improve performance
	collected := make([][][]int64, len(constraints))
	var waitGroup sync.WaitGroup
	for i, constraint := range constraints {
		waitGroup.Add(1)
		go func(i int, constraint func() [][]int64) {
			defer waitGroup.Done()
			collected[i] = constraint()
		}(i, constraint)
	}
	waitGroup.Wait()

	// Collect generated constraints preserving the family order
	satInstance := sat.SAT{
		Variables: encoder.graph.Vertices * encoder.length,
		Clauses:   [][]int64{},
	}
	for _, clauses := range collected {
		satInstance.Clauses = append(satInstance.Clauses, clauses...)
	}

	return satInstance, nil
}

// Each position of the cycle hosts at least one vertex
func (encoder *encoder) occupancyClauses() [][]int64 {
	clauses := make([][]int64, 0, encoder.length)
	for position := uint64(1); position <= encoder.length; position++ {
		clause := make([]int64, 0, encoder.graph.Vertices)
		for vertex := uint64(1); vertex <= encoder.graph.Vertices; vertex++ {
			clause = append(clause, int64(encoder.indexer.Index(vertex, position)))
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

// No two vertices share a position
func (encoder *encoder) positionUniquenessClauses() [][]int64 {
	clauses := [][]int64{}
	for position := uint64(1); position <= encoder.length; position++ {
		for first := uint64(1); first <= encoder.graph.Vertices; first++ {
			for second := first + 1; second <= encoder.graph.Vertices; second++ {
				clauses = append(clauses, []int64{
					-int64(encoder.indexer.Index(first, position)),
					-int64(encoder.indexer.Index(second, position)),
				})
			}
		}
	}
	return clauses
}

// No vertex appears at two positions
func (encoder *encoder) vertexUniquenessClauses() [][]int64 {
	clauses := [][]int64{}
	for vertex := uint64(1); vertex <= encoder.graph.Vertices; vertex++ {
		for first := uint64(1); first <= encoder.length; first++ {
			for second := first + 1; second <= encoder.length; second++ {
				clauses = append(clauses, []int64{
					-int64(encoder.indexer.Index(vertex, first)),
					-int64(encoder.indexer.Index(vertex, second)),
				})
			}
		}
	}
	return clauses
}

// Consecutive positions host adjacent vertices; the last position wraps
// around to the first to close the cycle
func (encoder *encoder) adjacencyClauses() [][]int64 {
	clauses := [][]int64{}
	for position := uint64(1); position <= encoder.length; position++ {
		next := position%encoder.length + 1
		for first := uint64(1); first <= encoder.graph.Vertices; first++ {
			for second := uint64(1); second <= encoder.graph.Vertices; second++ {
				if first == second || encoder.graph.Adjacent(first, second) {
					continue
				}
				clauses = append(clauses, []int64{
					-int64(encoder.indexer.Index(first, position)),
					-int64(encoder.indexer.Index(second, next)),
				})
			}
		}
	}
	return clauses
}
