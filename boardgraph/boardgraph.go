// Package boardgraph is a thin typed layer over core.Graph: an undirected
// multigraph whose nodes carry a board Location and a Cell[D], and whose
// edges carry a canonical direction and an affiliation.
//
// The underlying core.Graph supplies the thread-safe vertex/edge catalog and
// adjacency bookkeeping (see core/types.go); this package adds the domain
// rules core.Graph cannot express on its own: an ordinary (non-bridge) node
// may not be added at a Location that already holds a node, while bridge
// lanes, one per direction, may be added at any Location, including one
// still holding an ordinary node; and re-adding an edge with the same
// endpoints and direction overwrites its affiliation instead of creating a
// parallel edge.
//
// AI-HINT (file):
//   - Callers MUST canonicalize an edge's direction (shape.EnsureForward)
//     before calling AddEdge; this package trusts the caller and does not
//     re-derive it.
package boardgraph

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/numberlink/affiliation"
	"github.com/katalvlaran/numberlink/cell"
	"github.com/katalvlaran/numberlink/core"
	"github.com/katalvlaran/numberlink/location"
)

// Sentinel errors for boardgraph operations.
var (
	// ErrLocationOccupied indicates an ordinary (non-bridge) node was added
	// at a Location that already holds a node.
	ErrLocationOccupied = errors.New("boardgraph: location already occupied")
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("boardgraph: node not found")
	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("boardgraph: edge not found")
)

// Node is a vertex of a Graph: a Location paired with the Cell occupying it.
type Node[D comparable] struct {
	ID       string
	Location location.Location
	Cell     cell.Cell[D]
}

// Edge is an edge of a Graph: a canonical direction and an affiliation (0
// pre-solve), connecting the two node IDs recorded alongside it.
type Edge[D comparable] struct {
	ID          string
	From, To    string
	Direction   D
	Affiliation affiliation.ID
}

type edgeKey[D comparable] struct {
	a, b string
	dir  D
}

// Graph is an undirected multigraph over (Node, Edge), supporting the
// bridge/warp/hole/wall lowering the builder package performs.
//
// Incidence queries (Edges, RemoveNode's incident-edge sweep) delegate to
// core.Graph's own adjacency index (core.Graph.Neighbors) rather than
// duplicating it here; this package's side-tables carry only what core.Graph
// has no vocabulary for — the Location a node occupies and the (endpoints,
// direction) key an edge was inserted under.
//
// Concurrency: mu guards the typed side-tables below; the embedded core.Graph
// guards its own vertex/edge catalog independently. Callers needing atomic
// multi-step mutations (as the builder does) should hold their own lock.
type Graph[D comparable] struct {
	mu sync.RWMutex

	core *core.Graph

	nodes    map[string]*Node[D]
	edges    map[string]*Edge[D]
	edgeKeys map[string]edgeKey[D] // core edge ID -> the key it was inserted under
	byKey    map[edgeKey[D]]string // key -> core edge ID
	atLoc    map[location.Location]map[string]struct{}
}

// New returns an empty Graph.
// Complexity: O(1).
func New[D comparable]() *Graph[D] {
	return &Graph[D]{
		core:     core.NewGraph(core.WithMultiEdges()),
		nodes:    make(map[string]*Node[D]),
		edges:    make(map[string]*Edge[D]),
		edgeKeys: make(map[string]edgeKey[D]),
		byKey:    make(map[edgeKey[D]]string),
		atLoc:    make(map[location.Location]map[string]struct{}),
	}
}

// Stats delegates to the embedded core.Graph's O(1) configuration and size
// snapshot, for callers (the board façade, the CLI) that want a diagnostic
// without walking Nodes()/AllEdges() themselves.
func (g *Graph[D]) Stats() *core.GraphStats {
	return g.core.Stats()
}

// incidentLocked returns the typed edges incident to id, via core.Graph's own
// adjacency index. Must be called while holding g.mu.
func (g *Graph[D]) incidentLocked(id string) []*Edge[D] {
	coreEdges, err := g.core.Neighbors(id)
	if err != nil {
		return nil
	}
	out := make([]*Edge[D], 0, len(coreEdges))
	for _, ce := range coreEdges {
		out = append(out, g.edges[ce.ID])
	}
	return out
}

func nodeID[D comparable](loc location.Location, c cell.Cell[D]) string {
	if c.Kind == cell.Bridge {
		return fmt.Sprintf("%d,%d@%v", loc.X, loc.Y, c.Direction)
	}
	return fmt.Sprintf("%d,%d", loc.X, loc.Y)
}

// AddNode inserts a node at loc carrying c. An ordinary (non-bridge) Cell
// fails with ErrLocationOccupied if any node already exists at loc; bridge
// lanes are keyed by (loc, direction) so one lane per forward axis may
// coexist there.
// Complexity: O(1) amortized.
func (g *Graph[D]) AddNode(loc location.Location, c cell.Cell[D]) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := nodeID(loc, c)
	if _, exists := g.nodes[id]; exists {
		return "", ErrLocationOccupied
	}
	if c.Kind != cell.Bridge {
		if occupants := g.atLoc[loc]; len(occupants) > 0 {
			return "", ErrLocationOccupied
		}
	}

	if err := g.core.AddVertex(id); err != nil {
		return "", fmt.Errorf("boardgraph: AddNode: %w", err)
	}

	g.nodes[id] = &Node[D]{ID: id, Location: loc, Cell: c}
	if g.atLoc[loc] == nil {
		g.atLoc[loc] = make(map[string]struct{})
	}
	g.atLoc[loc][id] = struct{}{}

	return id, nil
}

// RemoveNode deletes a node and every edge incident to it.
// Complexity: O(deg(node) * (V+E)), each edge removal running core.Graph's
// adjacency cleanup.
func (g *Graph[D]) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.removeNodeLocked(id)
}

func (g *Graph[D]) removeNodeLocked(id string) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}

	for _, e := range g.incidentLocked(id) {
		g.removeEdgeLocked(e.ID)
	}

	delete(g.nodes, id)
	delete(g.atLoc[n.Location], id)
	if len(g.atLoc[n.Location]) == 0 {
		delete(g.atLoc, n.Location)
	}

	if err := g.core.RemoveVertex(id); err != nil {
		return fmt.Errorf("boardgraph: RemoveNode: %w", err)
	}
	return nil
}

// NodesAt returns every node currently registered at loc: zero (a hole),
// one (an ordinary cell), or |FORWARD| (a bridge).
// Complexity: O(1) amortized plus O(k) to materialize k results.
func (g *Graph[D]) NodesAt(loc location.Location) []*Node[D] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.atLoc[loc]))
	for id := range g.atLoc[loc] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*Node[D], 0, len(ids))
	for _, id := range ids {
		out = append(out, g.nodes[id])
	}
	return out
}

// AddEdge inserts an edge between fromID and toID in the given canonical
// direction, or overwrites the affiliation of an existing edge with the
// same (endpoints, direction) instead of duplicating it.
// Complexity: O(1) amortized.
func (g *Graph[D]) AddEdge(fromID, toID string, direction D, aff affiliation.ID) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.core.HasVertex(fromID) {
		return "", ErrNodeNotFound
	}
	if !g.core.HasVertex(toID) {
		return "", ErrNodeNotFound
	}

	key := canonicalKey(fromID, toID, direction)
	if eid, exists := g.byKey[key]; exists {
		g.edges[eid].Affiliation = aff
		return eid, nil
	}

	eid, err := g.core.AddEdge(fromID, toID)
	if err != nil {
		return "", fmt.Errorf("boardgraph: AddEdge: %w", err)
	}

	g.edges[eid] = &Edge[D]{ID: eid, From: fromID, To: toID, Direction: direction, Affiliation: aff}
	g.edgeKeys[eid] = key
	g.byKey[key] = eid

	return eid, nil
}

func canonicalKey[D comparable](fromID, toID string, direction D) edgeKey[D] {
	if fromID > toID {
		fromID, toID = toID, fromID
	}
	return edgeKey[D]{a: fromID, b: toID, dir: direction}
}

// RemoveEdge deletes a single edge by ID.
// Complexity: O(V+E), dominated by core.Graph's adjacency cleanup.
func (g *Graph[D]) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.removeEdgeLocked(eid)
}

func (g *Graph[D]) removeEdgeLocked(eid string) error {
	_, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.byKey, g.edgeKeys[eid])
	delete(g.edgeKeys, eid)
	delete(g.edges, eid)

	if err := g.core.RemoveEdge(eid); err != nil {
		return fmt.Errorf("boardgraph: RemoveEdge: %w", err)
	}
	return nil
}

// RemoveEdgesBetween removes every edge between any node at locA and any
// node at locB — the lowering step for a wall, which is declared in terms
// of Locations but must account for bridge lanes occupying either side.
// Complexity: O(|nodes at locA| * |nodes at locB|).
func (g *Graph[D]) RemoveEdgesBetween(locA, locB location.Location) {
	for _, na := range g.NodesAt(locA) {
		for _, nb := range g.NodesAt(locB) {
			g.mu.Lock()
			for _, e := range g.incidentLocked(na.ID) {
				if (e.From == na.ID && e.To == nb.ID) || (e.From == nb.ID && e.To == na.ID) {
					g.removeEdgeLocked(e.ID)
				}
			}
			g.mu.Unlock()
		}
	}
}

// Edges returns every edge incident to node id, sorted by edge ID for
// deterministic downstream iteration (SAT clause generation, rendering).
// Complexity: O(deg(node) log deg(node)).
func (g *Graph[D]) Edges(id string) []*Edge[D] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.incidentLocked(id)
}

// Neighbor returns the node at the other end of edge e from the vantage of
// node id.
func (g *Graph[D]) Neighbor(e *Edge[D], id string) string {
	if e.From == id {
		return e.To
	}
	return e.From
}

// Node looks up a node by ID.
func (g *Graph[D]) Node(id string) (*Node[D], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns every node, sorted by ID for deterministic iteration.
// Complexity: O(V log V).
func (g *Graph[D]) Nodes() []*Node[D] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*Node[D], 0, len(ids))
	for _, id := range ids {
		out = append(out, g.nodes[id])
	}
	return out
}

// AllEdges returns every edge, sorted by ID for deterministic iteration.
// Complexity: O(E log E).
func (g *Graph[D]) AllEdges() []*Edge[D] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*Edge[D], 0, len(ids))
	for _, id := range ids {
		out = append(out, g.edges[id])
	}
	return out
}

// NodeCount returns the number of nodes in the graph, delegating to the
// embedded core.Graph's own vertex catalog size.
func (g *Graph[D]) NodeCount() int {
	return g.core.VertexCount()
}

// EdgeCount returns the number of edges in the graph, delegating to the
// embedded core.Graph's own edge catalog size.
func (g *Graph[D]) EdgeCount() int {
	return g.core.EdgeCount()
}
