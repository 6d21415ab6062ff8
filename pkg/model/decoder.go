package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/limaJavier/longcycle/pkg/sat"
	"github.com/samber/lo"
)

// Cycle lists the vertices of a simple cycle in visiting order.
type Cycle []uint64

// String renders the cycle as "v1 -> v2 -> ... -> v1", repeating the first
// vertex to show the closing edge.
func (cycle Cycle) String() string {
	if len(cycle) == 0 {
		return ""
	}
	vertices := lo.Map(cycle, func(vertex uint64, _ int) string {
		return strconv.FormatUint(vertex, 10)
	})
	vertices = append(vertices, vertices[0])
	return strings.Join(vertices, " -> ")
}

type modelInconsistencyError struct {
	reason string
}

func (err modelInconsistencyError) Error() string {
	return fmt.Sprintf("satisfying assignment does not describe a simple cycle: %v", err.reason)
}

// decodeCycle turns a satisfying assignment into the cycle it describes,
// validating that the positive literals place exactly one vertex at every
// position, repeat no vertex and respect the graph's edges.
func decodeCycle(solution sat.SATSolution, idx indexer, graph Graph, length uint64) (Cycle, error) {
	maxVariable := graph.Vertices * length

	cycle := make(Cycle, length+1) // 1-based positions, 0 marks an empty one
	seen := make(map[uint64]bool, length)
	for _, literal := range solution {
		if literal <= 0 {
			continue
		}
		variable := uint64(literal)
		if variable > maxVariable {
			return nil, modelInconsistencyError{reason: fmt.Sprintf("literal %v lies outside the formula", literal)}
		}

		vertex, position := idx.Attributes(variable)
		if cycle[position] != 0 {
			return nil, modelInconsistencyError{reason: fmt.Sprintf("position %v is occupied by vertices %v and %v", position, cycle[position], vertex)}
		}
		if seen[vertex] {
			return nil, modelInconsistencyError{reason: fmt.Sprintf("vertex %v appears at two positions", vertex)}
		}
		cycle[position] = vertex
		seen[vertex] = true
	}

	for position := uint64(1); position <= length; position++ {
		if cycle[position] == 0 {
			return nil, modelInconsistencyError{reason: fmt.Sprintf("position %v received no vertex", position)}
		}
	}

	// Check the edges, including the one closing the cycle
	for position := uint64(1); position <= length; position++ {
		next := position%length + 1
		if !graph.Adjacent(cycle[position], cycle[next]) {
			return nil, modelInconsistencyError{reason: fmt.Sprintf("vertices %v and %v at consecutive positions share no edge", cycle[position], cycle[next])}
		}
	}

	return cycle[1:], nil
}
