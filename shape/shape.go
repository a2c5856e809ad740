// Package shape abstracts over board geometries: the directions a path may
// step in, which of those directions count as "forward" for canonical edge
// orientation, and how to flatten a solved boardgraph.Graph back into a
// rectangular character grid.
//
// Shape is generic over its own direction type D so Square and Hex boards
// share the exact same graph, builder, and solver code while disagreeing
// only on what a "step" means.
package shape

import (
	"errors"

	"github.com/katalvlaran/numberlink/affiliation"
	"github.com/katalvlaran/numberlink/boardgraph"
	"github.com/katalvlaran/numberlink/cell"
	"github.com/katalvlaran/numberlink/location"
)

// ErrNotImplemented is returned by shapes that define their direction
// algebra but have no rendering implementation, matching how this package's
// source material leaves certain shapes' array conversion unfinished.
var ErrNotImplemented = errors.New("shape: not implemented for this shape")

// Shape is the set of operations a board geometry must supply. A
// conforming implementation's Variants and ForwardVariants should be fixed,
// order-independent sets for the lifetime of the program.
type Shape[D comparable] interface {
	// Variants returns every direction this shape supports.
	Variants() []D
	// ForwardVariants returns the subset of Variants whose step always
	// increases the destination's row-major index relative to the origin.
	ForwardVariants() []D
	// AttemptFrom returns the Location reached by stepping dir from loc,
	// without checking it against any board's Dimension.
	AttemptFrom(dir D, loc location.Location) location.Location
	// Invert returns the opposite direction of dir.
	Invert(dir D) D
	// GraphToArray flattens g into a row-major grid of FrozenCell, one per
	// board Location, reading dims.H rows of dims.W columns.
	GraphToArray(dims location.Dimension, g *boardgraph.Graph[D]) ([][]FrozenCell[D], error)
	// Print renders a character grid (as produced from a FrozenCell grid by
	// the caller) into the shape's native text layout.
	Print(grid [][]rune) string
}

// FrozenCell is the read-only, render-ready snapshot of one board Location
// after gph_to_array-style flattening: every direction a path exits toward,
// plus enough of the original Cell to pick a display glyph.
type FrozenCell[D comparable] struct {
	Exits map[D]struct{}
	Kind  cell.Kind
	// Affiliation is meaningful for Kind in {Terminus, Path}.
	Affiliation affiliation.ID
	// LaneAffiliations is meaningful for Kind == Bridge, keyed by each
	// lane's forward direction.
	LaneAffiliations map[D]affiliation.ID
}

// NeighborStep pairs a direction with the Location it leads to.
type NeighborStep[D comparable] struct {
	Direction D
	Location  location.Location
}

// NeighborsOf returns, for every direction s supports, the Location reached
// by stepping that way from loc. Results are not checked against any
// board's Dimension; callers filter with Dimension.Contains.
// Complexity: O(|Variants|).
func NeighborsOf[D comparable](s Shape[D], loc location.Location) []NeighborStep[D] {
	variants := s.Variants()
	out := make([]NeighborStep[D], len(variants))
	for i, dir := range variants {
		out[i] = NeighborStep[D]{Direction: dir, Location: s.AttemptFrom(dir, loc)}
	}
	return out
}

// DirectionTo determines the direction stepping from a to b, if any single
// step does so. It only considers the shape's direction algebra, not any
// graph-based information, so it returns false for locations connected only
// by a warp.
// Complexity: O(|Variants|).
func DirectionTo[D comparable](s Shape[D], a, b location.Location) (D, bool) {
	for _, dir := range s.Variants() {
		if s.AttemptFrom(dir, a) == b {
			return dir, true
		}
	}
	var zero D
	return zero, false
}

// EnsureForward returns dir if it is already a forward direction, or its
// inverse otherwise.
// Complexity: O(|ForwardVariants|).
func EnsureForward[D comparable](s Shape[D], dir D) D {
	for _, f := range s.ForwardVariants() {
		if f == dir {
			return dir
		}
	}
	return s.Invert(dir)
}

// locationLess orders two Locations by X then Y, matching the derived
// lexicographic Ord this package's direction-inversion rule relies on.
// Warp partners always occupy distinct Locations (warps join opposite board
// edges), so comparing Locations alone is sufficient here and a node's Cell
// contents never need to break a tie.
func locationLess(a, b location.Location) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
