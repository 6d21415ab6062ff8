package model

// indexer interface is designed to give a unique DIMACS variable to a vertex-position pair and vice versa
type indexer interface {
	// Returns the variable standing for "vertex sits at position"
	Index(vertex, position uint64) uint64
	// Returns the vertex-position pair a variable stands for
	Attributes(variable uint64) (vertex uint64, position uint64)
}

func newIndexer(vertices, length uint64) indexer {
	return &cycleIndexer{
		vertices: vertices,
		length:   length,
	}
}
