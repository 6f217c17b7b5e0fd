package bands

import (
	"fmt"
	"math"
)

var negInf = fl(math.Inf(-1))

// node is one band boundary: the vertical interval starting at top carries
// the widths occupied by floats on each side, until the next boundary.
// l and r are the children in tree order; left and right are the occupied
// widths of the band.
type node struct {
	l, r        *node
	top         fl
	left, right fl
}

// splay rebalances the tree rooted at t so that the boundary [top], if
// present, becomes the root. If absent, the new root is the last boundary
// visited, which is either the greatest one below [top] or the smallest one
// above it. This is the classic top-down splay step (after Sleator's
// top-down-splay.c): no balance invariant is kept, but repeated accesses
// near the previously accessed boundary run in amortized constant time,
// the common case when floats are placed in document order.
func splay(t *node, top fl) *node {
	var header node
	l, r := &header, &header
	for {
		if top < t.top {
			if t.l == nil {
				break
			}
			if top < t.l.top { // rotate right
				x := t.l
				t.l = x.r
				x.r = t
				t = x
				if t.l == nil {
					break
				}
			}
			r.l = t // link right
			r = t
			t = t.l
		} else if top > t.top {
			if t.r == nil {
				break
			}
			if top > t.r.top { // rotate left
				x := t.r
				t.r = x.l
				x.l = t
				t = x
				if t.r == nil {
					break
				}
			}
			l.r = t // link left
			l = t
			t = t.r
		} else {
			break
		}
	}
	l.r = t.l
	r.l = t.r
	t.l = header.r
	t.r = header.l
	return t
}

// floor moves the band containing [y] to the root and returns it.
// It requires y >= 0, so that such a band always exists.
func (p *Profile) floor(y fl) *node {
	p.root = splay(p.root, y)
	if p.root.top > y {
		// the root is the smallest boundary above [y]; the containing band
		// is the greatest boundary of its left subtree
		prev := splay(p.root.l, y)
		p.root.l = nil
		prev.r = p.root
		p.root = prev
	}
	return p.root
}

// bottom returns the bottom edge of the band at the root, that is the top
// of its successor, or +Inf for the last band.
func (p *Profile) bottom() fl {
	if p.root.r == nil {
		return inf
	}
	p.root.r = splay(p.root.r, negInf)
	return p.root.r.top
}

// remove deletes the boundary at [top], which must exist and not be the
// origin, merging its band into the previous one.
func (p *Profile) remove(top fl) {
	p.root = splay(p.root, top)
	if p.root.top != top || p.root.l == nil {
		panic(fmt.Sprintf("cannot remove band boundary at %g", top))
	}
	prev := splay(p.root.l, top)
	prev.r = p.root.r
	p.root = prev
	p.size--
}
