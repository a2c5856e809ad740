// Package core provides a thread-safe, in-memory undirected multigraph
// over string vertex IDs — the storage and adjacency engine boardgraph.Graph
// wraps with the board/cell/location domain vocabulary.
//
// The Graph G = (V,E) supports:
//
//   - Parallel edges, when constructed with WithMultiEdges — a board graph
//     always requests this, since bridge lanes and a forward/warp edge pair
//     can connect the same two node IDs more than once.
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrency
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1) amortized
//	RemoveEdge(edgeID string) error   // O(V+E), adjacency cleanup
//
//	// Query
//	Neighbors(id string) ([]*Edge, error) // O(d log d), sorted by Edge.ID
//	VertexCount() int                     // O(1)
//	EdgeCount() int                       // O(1)
//	Stats() *GraphStats                   // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
