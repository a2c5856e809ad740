package shape

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numberlink/affiliation"
	"github.com/katalvlaran/numberlink/boardgraph"
	"github.com/katalvlaran/numberlink/cell"
	"github.com/katalvlaran/numberlink/location"
)

// SquareDirection is the direction algebra for rectangular boards: the
// grid used by classic Numberlink, Flow Free, and their Bridges and Warps
// variants.
type SquareDirection int

const (
	Up SquareDirection = iota
	Down
	Left
	Right
)

// String renders a SquareDirection for diagnostics and bridge node IDs.
func (d SquareDirection) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Invalid"
	}
}

var squareVariants = []SquareDirection{Up, Down, Left, Right}
var squareForward = []SquareDirection{Right, Down}

// SquareShape implements Shape[SquareDirection].
type SquareShape struct{}

// NewSquare returns a SquareShape. It carries no state; every method is
// pure given its arguments.
func NewSquare() SquareShape { return SquareShape{} }

// Variants returns {Up, Down, Left, Right}.
func (SquareShape) Variants() []SquareDirection {
	out := make([]SquareDirection, len(squareVariants))
	copy(out, squareVariants)
	return out
}

// ForwardVariants returns {Right, Down}: stepping either one always
// increases the destination's row-major index relative to the origin.
func (SquareShape) ForwardVariants() []SquareDirection {
	out := make([]SquareDirection, len(squareForward))
	copy(out, squareForward)
	return out
}

// AttemptFrom steps loc one cell in direction dir.
func (SquareShape) AttemptFrom(dir SquareDirection, loc location.Location) location.Location {
	switch dir {
	case Up:
		return loc.OffsetBy(0, -1)
	case Down:
		return loc.OffsetBy(0, 1)
	case Left:
		return loc.OffsetBy(-1, 0)
	case Right:
		return loc.OffsetBy(1, 0)
	default:
		return loc
	}
}

// Invert returns the opposite cardinal direction.
func (SquareShape) Invert(dir SquareDirection) SquareDirection {
	switch dir {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return dir
	}
}

// GraphToArray flattens g into a dims.H x dims.W grid of FrozenCell, one
// per Location. A Location with no node (a hole) yields the zero-value
// FrozenCell, kind Empty.
//
// For an ordinary node, every incident edge's exit direction is either
// derived directly (an adjacent-cell step) or, for a warp, recovered from
// the edge's stored canonical direction: a warp edge stores the forward
// direction of its axis (EnsureForward), which is the exit direction of
// the endpoint with the lexicographically larger Location; the smaller
// endpoint exits through the opposite board edge, so it inverts it.
//
// For a bridge Location (more than one node), every lane contributes its
// own direction and that direction's inverse as exits, and its own
// affiliation keyed by its forward direction.
// Complexity: O(W*H + E).
func (s SquareShape) GraphToArray(dims location.Dimension, g *boardgraph.Graph[SquareDirection]) ([][]FrozenCell[SquareDirection], error) {
	grid := make([][]FrozenCell[SquareDirection], dims.H)
	for y := range grid {
		grid[y] = make([]FrozenCell[SquareDirection], dims.W)
	}

	for y := 0; y < int(dims.H); y++ {
		for x := 0; x < int(dims.W); x++ {
			loc := location.New(x, y)
			nodes := g.NodesAt(loc)

			switch {
			case len(nodes) == 0:
				grid[y][x] = FrozenCell[SquareDirection]{Kind: cell.Empty}
			case len(nodes) == 1:
				fc, err := s.frozenOrdinaryCell(g, nodes[0])
				if err != nil {
					return nil, err
				}
				grid[y][x] = fc
			default:
				grid[y][x] = s.frozenBridgeCell(nodes)
			}
		}
	}
	return grid, nil
}

func (s SquareShape) frozenOrdinaryCell(g *boardgraph.Graph[SquareDirection], n *boardgraph.Node[SquareDirection]) (FrozenCell[SquareDirection], error) {
	exits := make(map[SquareDirection]struct{})

	for _, e := range g.Edges(n.ID) {
		neighborID := g.Neighbor(e, n.ID)
		neighbor, ok := g.Node(neighborID)
		if !ok {
			return FrozenCell[SquareDirection]{}, fmt.Errorf("shape: edge %s references missing node %s", e.ID, neighborID)
		}

		dir, ok := DirectionTo[SquareDirection](s, n.Location, neighbor.Location)
		if !ok {
			// Not an adjacent step: this edge is a warp. Its stored
			// direction is the forward one; only the lexicographically
			// smaller endpoint inverts it.
			dir = e.Direction
			if locationLess(n.Location, neighbor.Location) {
				dir = s.Invert(dir)
			}
		}
		exits[dir] = struct{}{}
	}

	return FrozenCell[SquareDirection]{
		Exits:       exits,
		Kind:        n.Cell.Kind,
		Affiliation: n.Cell.Affiliation,
	}, nil
}

func (s SquareShape) frozenBridgeCell(lanes []*boardgraph.Node[SquareDirection]) FrozenCell[SquareDirection] {
	exits := make(map[SquareDirection]struct{}, len(lanes)*2)
	laneAffiliations := make(map[SquareDirection]affiliation.ID, len(lanes))

	for _, lane := range lanes {
		dir := lane.Cell.Direction
		exits[dir] = struct{}{}
		exits[s.Invert(dir)] = struct{}{}
		laneAffiliations[EnsureForward[SquareDirection](s, dir)] = lane.Cell.Affiliation
	}

	return FrozenCell[SquareDirection]{
		Kind:             cell.Bridge,
		Exits:            exits,
		LaneAffiliations: laneAffiliations,
	}
}

// Print renders a character grid in row-major order, one line per row.
func (SquareShape) Print(grid [][]rune) string {
	var b strings.Builder
	for _, row := range grid {
		for _, r := range row {
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
