// Package builder provides fluent, validating construction of a square
// board graph: termini, bridges, warps, holes (dropped Locations), and
// walls (removed edges), lowered into a boardgraph.Graph by Build.
//
// Every mutating method accumulates validation failures instead of
// panicking. Once any failure has been recorded, further mutating calls
// are no-ops; IsValid and Build both surface the accumulated list.
package builder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/numberlink/affiliation"
	"github.com/katalvlaran/numberlink/boardgraph"
	"github.com/katalvlaran/numberlink/cell"
	"github.com/katalvlaran/numberlink/location"
	"github.com/katalvlaran/numberlink/shape"
)

// InvalidReason is a reason a Square builder may become invalid.
type InvalidReason int

const (
	// FeatureOutOfBounds marks a feature (terminus, bridge, hole, warp)
	// placed outside the builder's declared dimensions or an inadmissible
	// interior region.
	FeatureOutOfBounds InvalidReason = iota
	// WarpBadDirection marks a warp placed where its axis cannot be
	// resolved: not on any board edge, a corner with no direction given,
	// or a direction whose resolved partner is the warp's own Location.
	WarpBadDirection
)

// String renders an InvalidReason for diagnostics.
func (r InvalidReason) String() string {
	switch r {
	case FeatureOutOfBounds:
		return "FeatureOutOfBounds"
	case WarpBadDirection:
		return "WarpBadDirection"
	default:
		return "Unknown"
	}
}

// InvalidError wraps the accumulated reasons a builder refused to Build.
type InvalidError struct {
	Reasons []InvalidReason
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("builder: invalid: %v", e.Reasons)
}

// ErrNoTermini is a sentinel for removing termini when none have been
// added. No function in this package returns it: PopTermini is a silent
// no-op in that case.
var ErrNoTermini = errors.New("builder: no termini to remove")

type locPair struct{ a, b location.Location }

func newLocPair(a, b location.Location) locPair {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return locPair{a: a, b: b}
}

type warpEdge struct {
	pair locPair
	dir  shape.SquareDirection
}

// Square builds a square (rectangular) board graph.
type Square struct {
	dims     location.Dimension
	sq       shape.SquareShape
	cells    [][]cell.Cell[shape.SquareDirection] // [y][x]
	affTable *affiliation.Table

	invalid []InvalidReason

	edgeBlacklist     map[locPair]struct{}
	locationBlacklist map[location.Location]struct{}
	bridges           map[location.Location]struct{}
	edgeWhitelist     map[warpEdge]struct{}
}

// NewSquare returns a builder for a board of the given dimensions, with
// every cell initialized Empty.
func NewSquare(dims location.Dimension) *Square {
	cells := make([][]cell.Cell[shape.SquareDirection], dims.H)
	for y := range cells {
		cells[y] = make([]cell.Cell[shape.SquareDirection], dims.W)
	}
	return &Square{
		dims:              dims,
		sq:                shape.NewSquare(),
		cells:             cells,
		affTable:          affiliation.NewTable(),
		edgeBlacklist:     make(map[locPair]struct{}),
		locationBlacklist: make(map[location.Location]struct{}),
		bridges:           make(map[location.Location]struct{}),
		edgeWhitelist:     make(map[warpEdge]struct{}),
	}
}

func (b *Square) invalidate(r InvalidReason) *Square {
	b.invalid = append(b.invalid, r)
	return b
}

func (b *Square) inDims(loc location.Location) bool {
	return loc.X < b.dims.W && loc.Y < b.dims.H
}

// AddTermini adds a pair of termini displayed as display. Order between
// the two Locations does not matter.
func (b *Square) AddTermini(display rune, a, c location.Location) *Square {
	if len(b.invalid) > 0 {
		return b
	}
	if !b.inDims(a) || !b.inDims(c) {
		return b.invalidate(FeatureOutOfBounds)
	}

	aff := b.affTable.Add(display)
	b.cells[a.Y][a.X] = cell.NewTerminus[shape.SquareDirection](aff)
	b.cells[c.Y][c.X] = cell.NewTerminus[shape.SquareDirection](aff)
	return b
}

// PopTermini removes the most recently added pair of termini, restoring
// both their cells to Empty. A no-op if the builder is invalid or no
// termini have been added.
func (b *Square) PopTermini() *Square {
	if len(b.invalid) > 0 {
		return b
	}
	removing := b.affTable.Max()
	if removing == affiliation.Null {
		return b
	}
	b.affTable.Pop()

	for y := range b.cells {
		for x := range b.cells[y] {
			if aff, ok := b.cells[y][x].IsTerminus(); ok && aff == removing {
				b.cells[y][x] = cell.NewEmpty[shape.SquareDirection]()
			}
		}
	}
	return b
}

// AddBridge marks loc as a bridge: a Location where two independent lanes,
// one per forward axis, pass through without interacting. Bridges may not
// sit on the board's outer ring, since their lanes still need an ordinary
// neighbor on every side.
func (b *Square) AddBridge(loc location.Location) *Square {
	if len(b.invalid) > 0 {
		return b
	}
	if !b.inDims(loc) || loc.X < 1 || loc.X > b.dims.W-2 || loc.Y < 1 || loc.Y > b.dims.H-2 {
		return b.invalidate(FeatureOutOfBounds)
	}
	b.bridges[loc] = struct{}{}
	return b
}

// DropLocation marks loc as a hole: no node will be created there, and any
// feature already assigned to it is discarded at Build time.
func (b *Square) DropLocation(loc location.Location) *Square {
	if len(b.invalid) > 0 {
		return b
	}
	if !b.inDims(loc) {
		return b.invalidate(FeatureOutOfBounds)
	}
	b.locationBlacklist[loc] = struct{}{}
	return b
}

// Disconnect places a wall between two Locations, preventing any path from
// crossing between them. A no-op, without invalidating the builder, if the
// two Locations are not adjacent.
func (b *Square) Disconnect(a, c location.Location) *Square {
	if len(b.invalid) > 0 {
		return b
	}
	if !b.inDims(a) || !b.inDims(c) {
		return b.invalidate(FeatureOutOfBounds)
	}
	if _, ok := shape.DirectionTo[shape.SquareDirection](b.sq, a, c); !ok {
		return b
	}
	b.edgeBlacklist[newLocPair(a, c)] = struct{}{}
	return b
}

// DisconnectAround disconnects loc from each of its neighbors in the given
// directions.
func (b *Square) DisconnectAround(loc location.Location, directions []shape.SquareDirection) *Square {
	for _, dir := range directions {
		b.Disconnect(loc, b.sq.AttemptFrom(dir, loc))
	}
	return b
}

// AddWarp connects loc, which must lie on the board's boundary, to its
// partner Location on the opposite edge along the same axis. direction
// resolves which axis to use and is required, and only consulted, when loc
// is a corner.
func (b *Square) AddWarp(loc location.Location, direction *shape.SquareDirection) *Square {
	if len(b.invalid) > 0 {
		return b
	}
	maxLoc := location.New(int(b.dims.W)-1, int(b.dims.H)-1)
	if !b.inDims(loc) {
		return b.invalidate(FeatureOutOfBounds)
	}

	onBoundary := loc.X == 0 || loc.X == maxLoc.X || loc.Y == 0 || loc.Y == maxLoc.Y
	if !onBoundary {
		return b.invalidate(WarpBadDirection)
	}

	isCorner := (loc.X == 0 || loc.X == maxLoc.X) && (loc.Y == 0 || loc.Y == maxLoc.Y)

	var edge shape.SquareDirection
	if isCorner {
		if direction == nil {
			return b.invalidate(WarpBadDirection)
		}
		edge = *direction
	} else {
		switch {
		case loc.X == 0:
			edge = shape.Left
		case loc.Y == 0:
			edge = shape.Up
		case loc.X == maxLoc.X:
			edge = shape.Right
		default:
			edge = shape.Down
		}
	}

	var partner location.Location
	switch edge {
	case shape.Up:
		partner = location.New(int(loc.X), int(maxLoc.Y))
	case shape.Down:
		partner = location.New(int(loc.X), 0)
	case shape.Left:
		partner = location.New(int(maxLoc.X), int(loc.Y))
	case shape.Right:
		partner = location.New(0, int(loc.Y))
	}

	if partner == loc {
		return b.invalidate(WarpBadDirection)
	}

	dir := shape.EnsureForward[shape.SquareDirection](b.sq, edge)
	b.edgeWhitelist[warpEdge{pair: newLocPair(loc, partner), dir: dir}] = struct{}{}
	return b
}

// IsValid reports the accumulated invalid reasons, or nil if the builder
// is still valid.
func (b *Square) IsValid() []InvalidReason {
	if len(b.invalid) == 0 {
		return nil
	}
	out := make([]InvalidReason, len(b.invalid))
	copy(out, b.invalid)
	return out
}

// Built is the lowered result of a successful Build: a graph plus the
// dimensions and affiliation table needed to render or re-embed it.
type Built struct {
	Graph        *boardgraph.Graph[shape.SquareDirection]
	Dims         location.Dimension
	Affiliations *affiliation.Table
	Shape        shape.SquareShape
}

// Build lowers the builder's accumulated state into a graph, in the fixed
// order: nodes, forward edges, warp edges, bridges, holes, walls.
// Complexity: O(W*H + E).
func (b *Square) Build() (*Built, error) {
	if len(b.invalid) > 0 {
		return nil, &InvalidError{Reasons: b.IsValid()}
	}

	g := boardgraph.New[shape.SquareDirection]()
	ids := make([][]string, b.dims.H)
	for y := range ids {
		ids[y] = make([]string, b.dims.W)
	}

	for y := 0; y < int(b.dims.H); y++ {
		for x := 0; x < int(b.dims.W); x++ {
			loc := location.New(x, y)
			id, err := g.AddNode(loc, b.cells[y][x])
			if err != nil {
				return nil, fmt.Errorf("builder: Build: %w", err)
			}
			ids[y][x] = id
		}
	}

	for y := 0; y < int(b.dims.H); y++ {
		for x := 0; x < int(b.dims.W); x++ {
			loc := location.New(x, y)
			if down := b.sq.AttemptFrom(shape.Down, loc); b.dims.Contains(down) {
				if _, err := g.AddEdge(ids[y][x], ids[down.Y][down.X], shape.Down, affiliation.Null); err != nil {
					return nil, fmt.Errorf("builder: Build: %w", err)
				}
			}
			if right := b.sq.AttemptFrom(shape.Right, loc); b.dims.Contains(right) {
				if _, err := g.AddEdge(ids[y][x], ids[right.Y][right.X], shape.Right, affiliation.Null); err != nil {
					return nil, fmt.Errorf("builder: Build: %w", err)
				}
			}
		}
	}

	for _, we := range sortedWarpEdges(b.edgeWhitelist) {
		a, c := we.pair.a, we.pair.b
		if _, err := g.AddEdge(ids[a.Y][a.X], ids[c.Y][c.X], we.dir, affiliation.Null); err != nil {
			return nil, fmt.Errorf("builder: Build: %w", err)
		}
	}

	for _, loc := range sortedLocations(b.bridges) {
		oldID := ids[loc.Y][loc.X]
		edges := g.Edges(oldID)

		lanes := make(map[shape.SquareDirection]string)
		for _, e := range edges {
			forward := shape.EnsureForward[shape.SquareDirection](b.sq, e.Direction)
			if _, ok := lanes[forward]; !ok {
				laneID, err := g.AddNode(loc, cell.NewBridge[shape.SquareDirection](forward))
				if err != nil {
					return nil, fmt.Errorf("builder: Build: %w", err)
				}
				lanes[forward] = laneID
			}
		}
		for _, e := range edges {
			forward := shape.EnsureForward[shape.SquareDirection](b.sq, e.Direction)
			other := g.Neighbor(e, oldID)
			if _, err := g.AddEdge(other, lanes[forward], e.Direction, e.Affiliation); err != nil {
				return nil, fmt.Errorf("builder: Build: %w", err)
			}
		}
		if err := g.RemoveNode(oldID); err != nil {
			return nil, fmt.Errorf("builder: Build: %w", err)
		}
	}

	for _, loc := range sortedLocations(b.locationBlacklist) {
		for _, n := range g.NodesAt(loc) {
			if err := g.RemoveNode(n.ID); err != nil {
				return nil, fmt.Errorf("builder: Build: %w", err)
			}
		}
	}

	for pair := range b.edgeBlacklist {
		g.RemoveEdgesBetween(pair.a, pair.b)
	}

	return &Built{Graph: g, Dims: b.dims, Affiliations: b.affTable, Shape: b.sq}, nil
}

func sortedLocations(set map[location.Location]struct{}) []location.Location {
	out := make([]location.Location, 0, len(set))
	for loc := range set {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func sortedWarpEdges(set map[warpEdge]struct{}) []warpEdge {
	out := make([]warpEdge, 0, len(set))
	for we := range set {
		out = append(out, we)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].pair.a != out[j].pair.a {
			return out[i].pair.a.Y < out[j].pair.a.Y || (out[i].pair.a.Y == out[j].pair.a.Y && out[i].pair.a.X < out[j].pair.a.X)
		}
		return out[i].pair.b.Y < out[j].pair.b.Y || (out[i].pair.b.Y == out[j].pair.b.Y && out[i].pair.b.X < out[j].pair.b.X)
	})
	return out
}
