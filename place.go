package floatlayout

import (
	"fmt"

	"github.com/benoitkugler/floatlayout/logger"
	"github.com/benoitkugler/floatlayout/utils"
)

// validDim reports whether v is usable as a dimension or position: finite
// and not negative. Comparisons are written so that NaN is rejected too.
func validDim(v Fl) bool { return v >= 0 && v < utils.Inf }

// AddFloat places a float of the given outer size, no higher than
// [minTop], pushed towards [side], and records it in the context.
// It returns the top left corner of the placed box.
//
// The request is rejected, leaving the context untouched, if a dimension
// is negative or not finite (ErrInvalidDimensions) or if the float cannot
// fit horizontally at any vertical position (ErrInvalidWidth); in the
// latter case the caller should clamp the width and retry.
func (c *FloatContext) AddFloat(side Side, width, height, minTop Fl) (Point, error) {
	if !validDim(width) || !validDim(height) || !validDim(minTop) {
		return Point{}, fmt.Errorf("adding float (width %g, height %g, top %g): %w",
			width, height, minTop, ErrInvalidDimensions)
	}
	if width > c.containingWidth {
		logger.WarningLogger.Printf("float of width %g does not fit in its containing block (width %g)",
			width, c.containingWidth)
		return Point{}, fmt.Errorf("adding float of width %g: %w", width, ErrInvalidWidth)
	}

	y, spanLeft, spanRight := c.findPosition(width, height, minTop)

	var x, extent Fl
	switch side {
	case Left:
		x = spanLeft
		extent = spanLeft + width
	case Right:
		x = c.containingWidth - spanRight - width
		extent = spanRight + width
	}

	// degenerate floats take a position but do not occupy any space
	if width > 0 && height > 0 {
		c.profile.AddExtent(y, y+height, side, extent)
	}
	c.lowestBottom[side] = utils.MaxF(c.lowestBottom[side], y+height)

	return Point{X: x, Y: y}, nil
}

// findPosition returns the first vertical position at or below [minTop]
// leaving enough contiguous space over the whole span of the float,
// together with the maximum widths occupied on each side of that span.
// The box is pushed against those maxima, so that it clears every band it
// crosses, not only the one at its top. An empty span always fits.
func (c *FloatContext) findPosition(width, height, minTop Fl) (y, spanLeft, spanRight Fl) {
	y = minTop
	if height == 0 {
		b := c.profile.BandAt(y)
		return y, b.Left, b.Right
	}
	for {
		var next Fl
		spanLeft, spanRight, next = c.profile.SpanExtents(y, y+height)
		if c.containingWidth-spanLeft-spanRight >= width {
			return y, spanLeft, spanRight
		}
		// the occupancy can only decrease past the first band's bottom
		y = next
	}
}
