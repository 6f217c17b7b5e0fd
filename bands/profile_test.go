package bands

import (
	"math/rand"
	"testing"

	tu "github.com/benoitkugler/floatlayout/utils/testutils"
)

// checkInvariants asserts that the bands partition [0, +Inf) in order and
// that no two adjacent bands carry the same widths.
func (p *Profile) checkInvariants(t *testing.T) {
	t.Helper()
	bands := p.Bands()
	tu.AssertEqual(t, len(bands), p.Size())
	if bands[0].Top != 0 {
		t.Fatalf("first band starts at %g, not 0", bands[0].Top)
	}
	if last := bands[len(bands)-1]; last.Bottom != inf {
		t.Fatalf("last band ends at %g, not +Inf", last.Bottom)
	}
	for i, b := range bands {
		if !(b.Top < b.Bottom) {
			t.Fatalf("empty band [%g, %g)", b.Top, b.Bottom)
		}
		if i == 0 {
			continue
		}
		prev := bands[i-1]
		if prev.Bottom != b.Top {
			t.Fatalf("bands %d and %d do not touch: %g != %g", i-1, i, prev.Bottom, b.Top)
		}
		if prev.Left == b.Left && prev.Right == b.Right {
			t.Fatalf("bands %d and %d should have been merged", i-1, i)
		}
	}
}

func TestNewProfile(t *testing.T) {
	p := NewProfile()
	tu.AssertEqual(t, p.Bands(), []Band{{Top: 0, Bottom: inf}})
	p.checkInvariants(t)
}

func TestSplitAt(t *testing.T) {
	p := NewProfile()
	p.SplitAt(10)
	p.SplitAt(10) // idempotent
	p.SplitAt(5)
	tu.AssertEqual(t, p.Size(), 3)
	// splitting does not change the occupancy
	tu.AssertEqual(t, p.Bands(), []Band{
		{Top: 0, Bottom: 5},
		{Top: 5, Bottom: 10},
		{Top: 10, Bottom: inf},
	})
	tu.AssertEqual(t, p.BandAt(7), Band{Top: 5, Bottom: 10})
	tu.AssertEqual(t, p.BandAt(10), Band{Top: 10, Bottom: inf})
}

func TestAddExtent(t *testing.T) {
	p := NewProfile()

	p.AddExtent(0, 20, Left, 40)
	tu.AssertEqual(t, p.Bands(), []Band{
		{Top: 0, Bottom: 20, Left: 40},
		{Top: 20, Bottom: inf},
	})
	p.checkInvariants(t)

	// extents only grow
	p.AddExtent(0, 20, Left, 30)
	tu.AssertEqual(t, p.BandAt(0), Band{Top: 0, Bottom: 20, Left: 40})

	p.AddExtent(10, 30, Right, 25)
	tu.AssertEqual(t, p.Bands(), []Band{
		{Top: 0, Bottom: 10, Left: 40},
		{Top: 10, Bottom: 20, Left: 40, Right: 25},
		{Top: 20, Bottom: 30, Right: 25},
		{Top: 30, Bottom: inf},
	})
	p.checkInvariants(t)
}

func TestAddExtentMerges(t *testing.T) {
	p := NewProfile()
	p.AddExtent(0, 20, Left, 80)
	p.AddExtent(20, 40, Left, 80)
	// the intervening boundary carries no information anymore
	tu.AssertEqual(t, p.Bands(), []Band{
		{Top: 0, Bottom: 40, Left: 80},
		{Top: 40, Bottom: inf},
	})
	p.checkInvariants(t)

	// a no-op update leaves no boundary behind
	p.AddExtent(5, 15, Left, 50)
	tu.AssertEqual(t, p.Size(), 2)
	p.checkInvariants(t)

	// growing the tail band back to the value of its neighbour merges them
	p.AddExtent(40, inf, Left, 80)
	tu.AssertEqual(t, p.Bands(), []Band{
		{Top: 0, Bottom: inf, Left: 80},
	})
	p.checkInvariants(t)
}

func TestAddExtentEmptySpan(t *testing.T) {
	p := NewProfile()
	p.AddExtent(10, 10, Left, 40)
	tu.AssertEqual(t, p.Bands(), []Band{{Top: 0, Bottom: inf}})
}

func TestSpanExtents(t *testing.T) {
	p := NewProfile()
	p.AddExtent(0, 10, Left, 50)
	p.AddExtent(10, 20, Right, 30)
	p.AddExtent(15, 40, Left, 20)

	// the two maxima come from different bands
	left, right, next := p.SpanExtents(0, 20)
	tu.AssertEqual(t, [3]fl{left, right, next}, [3]fl{50, 30, 10})

	left, right, next = p.SpanExtents(10, 40)
	tu.AssertEqual(t, [3]fl{left, right, next}, [3]fl{20, 30, 15})

	left, right, next = p.SpanExtents(40, 60)
	tu.AssertEqual(t, [3]fl{left, right, next}, [3]fl{0, 0, inf})
}

func TestExtent(t *testing.T) {
	b := Band{Left: 3, Right: 7}
	tu.AssertEqual(t, b.Extent(Left), fl(3))
	tu.AssertEqual(t, b.Extent(Right), fl(7))
	tu.AssertEqual(t, Left.String(), "left")
	tu.AssertEqual(t, Right.String(), "right")
}

type extentOp struct {
	top, bottom fl
	side        Side
	width       fl
}

// TestProfileRandom cross-checks the profile against a brute force model
// on random update sequences.
func TestProfileRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	p := NewProfile()
	var ops []extentOp
	const maxY = 300
	for i := 0; i < 500; i++ {
		top := fl(rng.Intn(maxY))
		op := extentOp{
			top:    top,
			bottom: top + fl(rng.Intn(40)),
			side:   Side(rng.Intn(2)),
			width:  fl(rng.Intn(100)),
		}
		p.AddExtent(op.top, op.bottom, op.side, op.width)
		ops = append(ops, op)

		p.checkInvariants(t)
		if max := 2*len(ops) + 1; p.Size() > max {
			t.Fatalf("%d bands after %d updates, expected at most %d", p.Size(), len(ops), max)
		}
	}

	// all coordinates are integers, so integer positions see every band
	for y := fl(0); y < maxY+50; y++ {
		var left, right fl
		for _, op := range ops {
			if y < op.top || y >= op.bottom {
				continue
			}
			if op.side == Left && op.width > left {
				left = op.width
			} else if op.side == Right && op.width > right {
				right = op.width
			}
		}
		b := p.BandAt(y)
		if b.Left != left || b.Right != right {
			t.Fatalf("band at %g: got (%g, %g), expected (%g, %g)", y, b.Left, b.Right, left, right)
		}
	}
}
