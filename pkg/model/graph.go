package model

import "fmt"

// Graph is a simple undirected graph over vertices 1..Vertices.
type Graph struct {
	Vertices  uint64
	Edges     uint64
	adjacency [][]bool
}

// NewGraph builds a graph from an explicit edge list. Endpoints must lie in
// [1, vertices]; self-loops and duplicate edges are rejected.
func NewGraph(vertices uint64, edges [][2]uint64) (Graph, error) {
	adjacency := make([][]bool, vertices+1)
	for i := range adjacency {
		adjacency[i] = make([]bool, vertices+1)
	}

	graph := Graph{
		Vertices:  vertices,
		adjacency: adjacency,
	}
	for _, edge := range edges {
		u, v := edge[0], edge[1]
		if u < 1 || u > vertices || v < 1 || v > vertices {
			return Graph{}, fmt.Errorf("edge %v~%v has an endpoint outside [1, %v]", u, v, vertices)
		}
		if u == v {
			return Graph{}, fmt.Errorf("edge %v~%v is a self-loop", u, v)
		}
		if adjacency[u][v] {
			return Graph{}, fmt.Errorf("edge %v~%v is declared twice", u, v)
		}
		adjacency[u][v] = true
		adjacency[v][u] = true
		graph.Edges++
	}

	return graph, nil
}

func (graph Graph) Adjacent(u, v uint64) bool {
	return graph.adjacency[u][v]
}

// NonEdgePairs counts the unordered vertex pairs that do not share an edge.
func (graph Graph) NonEdgePairs() uint64 {
	return graph.Vertices*(graph.Vertices-1)/2 - graph.Edges
}
