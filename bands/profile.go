// Package bands maintains the profile of the horizontal space occupied by
// floats in a block formatting context.
//
// The profile partitions the half-line [0, +Inf) into maximal bands of
// constant occupied widths, stored in a self-adjusting binary search tree
// keyed by the band tops. Every access moves the visited boundary to the
// root, biasing the tree towards the vertical neighborhood the layout is
// currently working in.
package bands

import (
	"github.com/benoitkugler/floatlayout/utils"
)

type fl = utils.Fl

var inf = utils.Inf

// Side designates the edge of the containing block a float is pushed to.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Band is a maximal vertical interval [Top, Bottom) over which the widths
// occupied by floats are constant. Left and Right are measured inwards
// from the respective edges of the containing block; the Bottom of the
// last band is +Inf.
type Band struct {
	Top, Bottom fl
	Left, Right fl
}

// Extent returns the width occupied on the given side.
func (b Band) Extent(side Side) fl {
	if side == Left {
		return b.Left
	}
	return b.Right
}

// Profile is an ordered partition of [0, +Inf) into bands.
// The zero value is not usable; see NewProfile.
type Profile struct {
	root *node
	size int
}

// NewProfile returns a profile with a single unoccupied band covering
// [0, +Inf).
func NewProfile() *Profile {
	return &Profile{root: &node{}, size: 1}
}

// Size returns the current number of bands.
func (p *Profile) Size() int { return p.size }

// BandAt returns the band whose interval contains [y] (y >= 0).
func (p *Profile) BandAt(y fl) Band {
	n := p.floor(y)
	return Band{Top: n.top, Bottom: p.bottom(), Left: n.left, Right: n.right}
}

// SplitAt ensures a boundary exists at [y], dividing the band containing
// it into two bands with the same occupied widths. The occupancy described
// by the profile is unchanged.
func (p *Profile) SplitAt(y fl) {
	n := p.floor(y)
	if n.top == y {
		return
	}
	boundary := &node{top: y, left: n.left, right: n.right}
	boundary.r = n.r
	n.r = nil
	boundary.l = n
	p.root = boundary
	p.size++
}

// AddExtent records a width occupied from the given side over the whole
// span [top, bottom): each band inside has its extent on this side grown
// to at least [width]. Extents never shrink, since a new float cannot
// release space claimed by a previous one.
// Adjacent bands left identical by the update are merged eagerly, keeping
// the number of bands bounded by the number of distinct float edges.
func (p *Profile) AddExtent(top, bottom fl, side Side, width fl) {
	if !(top < bottom) {
		return
	}
	p.SplitAt(top)
	if bottom < inf {
		p.SplitAt(bottom)
	}
	for y := top; y < bottom; {
		n := p.floor(y)
		if side == Left {
			n.left = utils.MaxF(n.left, width)
		} else {
			n.right = utils.MaxF(n.right, width)
		}
		y = p.bottom()
	}
	p.mergeRange(top, bottom)
}

// mergeRange deletes every boundary in [top, bottom] whose two adjacent
// bands carry the same occupied widths.
func (p *Profile) mergeRange(top, bottom fl) {
	for y := top; y <= bottom && y < inf; {
		n := p.floor(y)
		next := p.bottom()
		if y > 0 {
			prev := splay(n.l, y)
			n.l = prev
			if prev.left == n.left && prev.right == n.right {
				p.remove(y)
			}
		}
		y = next
	}
}

// SpanExtents returns the maximum width occupied on each side among the
// bands intersecting [top, bottom), together with the bottom edge of the
// band at [top], which is the first position below [top] where the
// occupancy can decrease. A float spanning [top, bottom) must clear both
// side maxima, not only the extents of the band at its top: the maxima may
// be realised by two different bands.
func (p *Profile) SpanExtents(top, bottom fl) (left, right, next fl) {
	next = p.BandAt(top).Bottom
	for y := top; y < bottom; {
		b := p.BandAt(y)
		left = utils.MaxF(left, b.Left)
		right = utils.MaxF(right, b.Right)
		y = b.Bottom
	}
	return left, right, next
}

// Bands returns the bands in order, down from position 0.
func (p *Profile) Bands() []Band {
	out := make([]Band, 0, p.size)
	for y := fl(0); y < inf; {
		b := p.BandAt(y)
		out = append(out, b)
		y = b.Bottom
	}
	return out
}
