// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go.

package core

// Stats produces an O(1) read-only summary of the graph's configuration
// and size.
//
// Locking strategy:
//   - Acquire muVert.RLock to read vertex count, then release it.
//   - Acquire muEdgeAdj.RLock to read the edge count.
//   - Never hold both locks at once to avoid lock-ordering issues.
//
// Complexity: O(1).
// Concurrency: safe; uses read locks only and allocates a small result struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	g.muEdgeAdj.RUnlock()

	return &stats
}
