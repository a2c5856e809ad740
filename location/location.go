// Package location defines the coordinate primitives shared by every board
// shape: a Dimension (the declared extent of a board) and a Location (a
// single cell address within it).
//
// Complexity: every operation in this file is O(1).
package location

import "errors"

// ErrZeroDimension indicates a Dimension was constructed with a zero or
// negative width or height. Boards always have a strictly positive extent.
var ErrZeroDimension = errors.New("location: dimension must be strictly positive")

// Coord is the scalar type backing both axes of a Location. It is unsigned
// so that an out-of-range offset (see Location.OffsetBy) wraps to a very
// large value rather than going negative, letting callers reject it with a
// single "< dimension" bounds check instead of also checking for negatives.
type Coord = uint

// Dimension is the strictly positive width/height of a board. Zero-sized
// boards are rejected at construction via NewDimension.
type Dimension struct {
	W, H Coord
}

// NewDimension validates and constructs a Dimension from plain ints.
// Complexity: O(1).
func NewDimension(w, h int) (Dimension, error) {
	if w <= 0 || h <= 0 {
		return Dimension{}, ErrZeroDimension
	}
	return Dimension{W: Coord(w), H: Coord(h)}, nil
}

// Contains reports whether loc falls strictly within the declared extent.
// Complexity: O(1).
func (d Dimension) Contains(loc Location) bool {
	return loc.X < d.W && loc.Y < d.H
}

// Location is an (x, y) pair indexed from the top-left origin: x increases
// rightward, y increases downward. Equality is by value.
type Location struct {
	X, Y Coord
}

// New constructs a Location from plain ints. Negative inputs wrap per
// OffsetBy's semantics, matching a direct struct literal with Coord values.
func New(x, y int) Location {
	return Location{X: Coord(x), Y: Coord(y)}
}

// OffsetBy steps this Location by a signed (dx, dy) vector. The addition
// wraps on unsigned overflow: stepping off the top or left edge produces a
// Coord far outside any real Dimension, so callers only need a single
// Dimension.Contains check — no separate negative check is required.
// Complexity: O(1).
func (l Location) OffsetBy(dx, dy int) Location {
	return Location{
		X: Coord(int(l.X) + dx),
		Y: Coord(int(l.Y) + dy),
	}
}

// Index returns the row-major index of this Location within a board of the
// given Dimension: y*W + x. Used by shapes that embed the graph into a flat
// or 2D array for rendering.
// Complexity: O(1).
func (l Location) Index(dims Dimension) int {
	return int(l.Y)*int(dims.W) + int(l.X)
}
