package model

import (
	"testing"

	"github.com/limaJavier/longcycle/pkg/sat"
	"github.com/stretchr/testify/assert"
)

// solutionForCycle synthesizes the assignment placing cycle[i] at position
// i+1 and every other variable false.
func solutionForCycle(cycle Cycle, vertices, length uint64) sat.SATSolution {
	idx := newIndexer(vertices, length)
	positives := make(map[uint64]bool, length)
	for position, vertex := range cycle {
		positives[idx.Index(vertex, uint64(position)+1)] = true
	}

	solution := make(sat.SATSolution, 0, vertices*length)
	for variable := uint64(1); variable <= vertices*length; variable++ {
		if positives[variable] {
			solution = append(solution, int64(variable))
		} else {
			solution = append(solution, -int64(variable))
		}
	}
	return solution
}

func TestDecodeCycle(t *testing.T) {
	triangle, err := NewGraph(3, [][2]uint64{{1, 2}, {2, 3}, {3, 1}})
	assert.Nil(t, err)

	t.Run("Round-trips a known cycle", func(t *testing.T) {
		//** Arrange
		expected := Cycle{1, 2, 3}
		solution := solutionForCycle(expected, 3, 3)

		//** Act
		cycle, err := decodeCycle(solution, newIndexer(3, 3), triangle, 3)

		//** Assert
		assert.Nil(t, err)
		assert.Equal(t, expected, cycle)
	})

	t.Run("Round-trips a rotated cycle on a larger graph", func(t *testing.T) {
		square, err := NewGraph(4, [][2]uint64{{1, 2}, {2, 3}, {3, 4}, {4, 1}})
		assert.Nil(t, err)

		expected := Cycle{3, 4, 1, 2}
		solution := solutionForCycle(expected, 4, 4)

		cycle, err := decodeCycle(solution, newIndexer(4, 4), square, 4)

		assert.Nil(t, err)
		assert.Equal(t, expected, cycle)
	})

	t.Run("Rejects a literal outside the formula", func(t *testing.T) {
		_, err := decodeCycle(sat.SATSolution{10}, newIndexer(3, 3), triangle, 3)
		assert.ErrorContains(t, err, "outside the formula")
	})

	t.Run("Rejects two vertices on one position", func(t *testing.T) {
		// Variables 1 and 4 put vertices 1 and 2 both at position 1
		_, err := decodeCycle(sat.SATSolution{1, 4}, newIndexer(3, 3), triangle, 3)
		assert.ErrorContains(t, err, "position 1")
	})

	t.Run("Rejects a vertex on two positions", func(t *testing.T) {
		// Variables 1 and 2 put vertex 1 at positions 1 and 2
		_, err := decodeCycle(sat.SATSolution{1, 2}, newIndexer(3, 3), triangle, 3)
		assert.ErrorContains(t, err, "two positions")
	})

	t.Run("Rejects an empty position", func(t *testing.T) {
		// Positions 1 and 2 are filled, position 3 stays empty
		_, err := decodeCycle(sat.SATSolution{1, 5}, newIndexer(3, 3), triangle, 3)
		assert.ErrorContains(t, err, "no vertex")
	})

	t.Run("Rejects consecutive vertices without an edge", func(t *testing.T) {
		// A path 1-2-3 cannot close the cycle between 3 and 1
		path, err := NewGraph(3, [][2]uint64{{1, 2}, {2, 3}})
		assert.Nil(t, err)

		solution := solutionForCycle(Cycle{1, 2, 3}, 3, 3)
		_, err = decodeCycle(solution, newIndexer(3, 3), path, 3)
		assert.ErrorContains(t, err, "share no edge")
	})
}

func TestCycleString(t *testing.T) {
	assert.Equal(t, "1 -> 2 -> 3 -> 1", Cycle{1, 2, 3}.String())
	assert.Equal(t, "7 -> 5 -> 6 -> 7", Cycle{7, 5, 6}.String())
	assert.Equal(t, "", Cycle{}.String())
}
