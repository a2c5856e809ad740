// Package cell defines the tagged cell kinds attached to every board graph
// node. Cell is generic over the shape's direction type D so a bridge lane
// can carry the single forward axis it travels along.
package cell

import "github.com/katalvlaran/numberlink/affiliation"

// Kind discriminates the role a Cell plays in a board.
type Kind int

const (
	// Empty is an uncolored non-terminus cell, the pre-solve state of any
	// ordinary board position.
	Empty Kind = iota
	// Terminus is a fixed, color-known endpoint of a path.
	Terminus
	// Path is a non-terminus cell whose color was assigned by solving.
	Path
	// Bridge is a single lane of a bridge: one of the two nodes sharing a
	// Location, each restricted to one forward travel axis.
	Bridge
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Terminus:
		return "Terminus"
	case Path:
		return "Path"
	case Bridge:
		return "Bridge"
	default:
		return "Unknown"
	}
}

// Cell is the tagged variant attached to a board graph node. Only the
// fields relevant to Kind are meaningful:
//
//   - Terminus, Path: Affiliation is the (possibly not-yet-known) color.
//   - Bridge: Affiliation is the lane's color (Null pre-solve); Direction
//     is the single forward axis this lane travels along.
//   - Empty: neither field is meaningful.
type Cell[D comparable] struct {
	Kind        Kind
	Affiliation affiliation.ID
	Direction   D
}

// NewEmpty returns the zero-value Empty cell.
func NewEmpty[D comparable]() Cell[D] {
	return Cell[D]{Kind: Empty}
}

// NewTerminus returns a Terminus cell fixed at the given affiliation.
func NewTerminus[D comparable](aff affiliation.ID) Cell[D] {
	return Cell[D]{Kind: Terminus, Affiliation: aff}
}

// NewBridge returns a single bridge lane traveling along direction, with no
// affiliation assigned yet.
func NewBridge[D comparable](direction D) Cell[D] {
	return Cell[D]{Kind: Bridge, Direction: direction}
}

// NewPath returns a Path cell colored with the given affiliation, as
// produced by decoding a solved Empty cell.
func NewPath[D comparable](aff affiliation.ID) Cell[D] {
	return Cell[D]{Kind: Path, Affiliation: aff}
}

// IsTerminus reports whether this cell is a fixed, color-known Terminus,
// returning its affiliation. This is the predicate the SAT encoding uses to
// decide whether a node's color is an assumption or an unknown to solve for.
func (c Cell[D]) IsTerminus() (affiliation.ID, bool) {
	if c.Kind != Terminus {
		return affiliation.Null, false
	}
	return c.Affiliation, true
}
