package core

import "testing"

func TestAddVertexIsIdempotent(t *testing.T) {
	g := NewGraph()
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex on existing id should be a no-op, got %v", err)
	}
	if g.VertexCount() != 1 {
		t.Fatalf("VertexCount = %d, want 1", g.VertexCount())
	}
}

func TestAddVertexRejectsEmptyID(t *testing.T) {
	g := NewGraph()
	if err := g.AddVertex(""); err != ErrEmptyVertexID {
		t.Fatalf("AddVertex(\"\") = %v, want ErrEmptyVertexID", err)
	}
}

func TestHasVertex(t *testing.T) {
	g := NewGraph()
	if g.HasVertex("a") {
		t.Fatal("HasVertex on empty graph should be false")
	}
	_ = g.AddVertex("a")
	if !g.HasVertex("a") {
		t.Fatal("HasVertex(\"a\") should be true after AddVertex")
	}
	if g.HasVertex("") {
		t.Fatal("HasVertex(\"\") should always be false")
	}
}

func TestRemoveVertexDeletesIncidentEdges(t *testing.T) {
	g := NewGraph(WithMultiEdges())
	_ = g.AddVertex("a")
	_ = g.AddVertex("b")
	if _, err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	if err := g.RemoveVertex("a"); err != nil {
		t.Fatalf("RemoveVertex: %v", err)
	}
	if g.HasVertex("a") {
		t.Fatal("vertex should be gone after RemoveVertex")
	}
	if g.EdgeCount() != 0 {
		t.Fatalf("EdgeCount = %d, want 0 after removing an endpoint", g.EdgeCount())
	}
	neighbors, err := g.Neighbors("b")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(neighbors) != 0 {
		t.Fatalf("b should have no neighbors left, got %d", len(neighbors))
	}
}

func TestRemoveVertexMissingReturnsNotFound(t *testing.T) {
	g := NewGraph()
	if err := g.RemoveVertex("ghost"); err != ErrVertexNotFound {
		t.Fatalf("RemoveVertex(missing) = %v, want ErrVertexNotFound", err)
	}
}
