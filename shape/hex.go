package shape

import (
	"github.com/katalvlaran/numberlink/boardgraph"
	"github.com/katalvlaran/numberlink/location"
)

// HexDirection is the direction algebra for hexagonal boards, laid out as
// doubled-width offset rows:
//
//	  0   1   2   3
//	0   1   2   3
//	  0   1   2   3
//	0   1   2   3
type HexDirection int

const (
	HexUp HexDirection = iota
	HexUpRight
	HexRightDown
	HexDown
	HexDownLeft
	HexLeftUp
)

var hexVariants = []HexDirection{HexUp, HexUpRight, HexRightDown, HexDown, HexDownLeft, HexLeftUp}
var hexForward = []HexDirection{HexDown, HexRightDown, HexDownLeft}

// HexShape implements Shape[HexDirection].
type HexShape struct{}

// NewHex returns a HexShape.
func NewHex() HexShape { return HexShape{} }

// Variants returns the six hex directions.
func (HexShape) Variants() []HexDirection {
	out := make([]HexDirection, len(hexVariants))
	copy(out, hexVariants)
	return out
}

// ForwardVariants returns {Down, RightDown, DownLeft}.
func (HexShape) ForwardVariants() []HexDirection {
	out := make([]HexDirection, len(hexForward))
	copy(out, hexForward)
	return out
}

// AttemptFrom steps loc one cell in direction dir.
//
// The diagonal directions depend on row parity: whether a row is shifted
// half a column right or left in the doubled layout above. Row parity is
// loc.Y&1, the row's low bit; using Y&2 instead (the next bit up) repeats
// the same parity across two consecutive rows and staggers every other
// pair of rows incorrectly.
func (HexShape) AttemptFrom(dir HexDirection, loc location.Location) location.Location {
	evenRow := loc.Y&1 == 0
	switch dir {
	case HexUp:
		return loc.OffsetBy(0, -2)
	case HexDown:
		return loc.OffsetBy(0, 2)
	case HexUpRight:
		dx := 0
		if evenRow {
			dx = 1
		}
		return loc.OffsetBy(dx, -1)
	case HexRightDown:
		dx := 0
		if evenRow {
			dx = 1
		}
		return loc.OffsetBy(dx, 1)
	case HexDownLeft:
		dx := 0
		if !evenRow {
			dx = -1
		}
		return loc.OffsetBy(dx, 1)
	case HexLeftUp:
		dx := 0
		if !evenRow {
			dx = -1
		}
		return loc.OffsetBy(dx, -1)
	default:
		return loc
	}
}

// Invert returns the opposite hex direction.
func (HexShape) Invert(dir HexDirection) HexDirection {
	switch dir {
	case HexUp:
		return HexDown
	case HexDown:
		return HexUp
	case HexUpRight:
		return HexDownLeft
	case HexDownLeft:
		return HexUpRight
	case HexRightDown:
		return HexLeftUp
	case HexLeftUp:
		return HexRightDown
	default:
		return dir
	}
}

// GraphToArray is unimplemented for HexShape: the source material this
// package is grounded on never finished a hex array embedding either, and
// no board in scope uses it. Square boards cover the full render path.
func (HexShape) GraphToArray(location.Dimension, *boardgraph.Graph[HexDirection]) ([][]FrozenCell[HexDirection], error) {
	return nil, ErrNotImplemented
}

// Print is unimplemented for HexShape; see GraphToArray.
func (HexShape) Print([][]rune) string {
	return ""
}
