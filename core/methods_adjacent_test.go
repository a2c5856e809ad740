package core

import "testing"

func TestNeighborsSortedByEdgeID(t *testing.T) {
	g := NewGraph(WithMultiEdges())
	_, _ = g.AddEdge("b", "a") // e1
	_, _ = g.AddEdge("c", "a") // e2
	_, _ = g.AddEdge("a", "d") // e3

	neighbors, err := g.Neighbors("a")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(neighbors) != 3 {
		t.Fatalf("len(neighbors) = %d, want 3", len(neighbors))
	}
	for i := 1; i < len(neighbors); i++ {
		if neighbors[i-1].ID >= neighbors[i].ID {
			t.Fatalf("neighbors not sorted by ID: %v", neighbors)
		}
	}
}

func TestNeighborsMissingVertex(t *testing.T) {
	g := NewGraph()
	if _, err := g.Neighbors("ghost"); err != ErrVertexNotFound {
		t.Fatalf("Neighbors(missing) = %v, want ErrVertexNotFound", err)
	}
}

func TestNeighborsEmptyID(t *testing.T) {
	g := NewGraph()
	if _, err := g.Neighbors(""); err != ErrEmptyVertexID {
		t.Fatalf("Neighbors(\"\") = %v, want ErrEmptyVertexID", err)
	}
}
