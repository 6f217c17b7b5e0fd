// Package floatlayout positions floated boxes inside a block formatting
// context, following CSS 2.1 section 9.5.1: a float is pushed as far as
// possible towards its side, and moved down past every vertical position
// where not enough contiguous horizontal space is left.
//
// The package only decides positions. Resolving the used width and height
// of the boxes, laying out the inline content flowing around them and
// parsing CSS are the callers' tasks: a context consumes
// (side, width, height, minimum top) requests and answers with (x, y)
// placements, width availability and clearance.
package floatlayout

import (
	"errors"

	"github.com/benoitkugler/floatlayout/bands"
	"github.com/benoitkugler/floatlayout/utils"
)

// Fl is the scalar type used for every geometric quantity.
type Fl = utils.Fl

// Side designates the edge of the containing block a float is pushed to.
type Side = bands.Side

const (
	Left  = bands.Left
	Right = bands.Right
)

// Clear designates the sides a clearance query applies to, following the
// values of the 'clear' property.
type Clear uint8

const (
	ClearLeft Clear = iota
	ClearRight
	ClearBoth
)

// Point is a position in the containing block, x growing rightwards and y
// downwards, both measured from the top left corner.
type Point struct {
	X, Y Fl
}

var (
	// ErrInvalidWidth reports a float wider than its containing block:
	// no vertical position can ever accommodate it.
	ErrInvalidWidth = errors.New("float is wider than the containing block")

	// ErrInvalidDimensions reports a negative or non-finite width, height
	// or minimum top.
	ErrInvalidDimensions = errors.New("invalid float dimensions")
)

// FloatContext places the floats of one block formatting context.
// Placement is one-pass: floats are only ever added, in the (document)
// order chosen by the caller, and earlier floats are never moved by later
// ones. A context must not be shared between formatting contexts: create a
// fresh value with NewContext for each of them.
//
// A FloatContext is not safe for concurrent use.
type FloatContext struct {
	profile         *bands.Profile
	containingWidth Fl
	lowestBottom    [2]Fl // by Side
}

// NewContext returns an empty context for a containing block of the given
// width, which must be positive and is fixed for the whole layout pass.
func NewContext(containingWidth Fl) *FloatContext {
	return &FloatContext{
		profile:         bands.NewProfile(),
		containingWidth: containingWidth,
	}
}

// ContainingWidth returns the width given to NewContext.
func (c *FloatContext) ContainingWidth() Fl { return c.containingWidth }

// AvailableWidth returns the horizontal space left for inline content at
// the vertical position [y]: the containing width minus the widths
// occupied by floats on both sides. Only floats whose vertical span covers
// [y] are accounted for; positions above the top of the block are treated
// as its top.
func (c *FloatContext) AvailableWidth(y Fl) Fl {
	if y < 0 {
		y = 0
	}
	b := c.profile.BandAt(y)
	return c.containingWidth - b.Left - b.Right
}

// Clearance returns the first vertical position below every float of the
// given side(s), implementing the 'clear' property. It is zero while no
// float has been placed, and never decreases.
func (c *FloatContext) Clearance(clear Clear) Fl {
	switch clear {
	case ClearLeft:
		return c.lowestBottom[Left]
	case ClearRight:
		return c.lowestBottom[Right]
	default:
		return utils.MaxF(c.lowestBottom[Left], c.lowestBottom[Right])
	}
}
