package utils

import (
	"math"
)

// Fl is the scalar type used for every geometric quantity.
type Fl = float32

// Inf is the positive infinity, the conceptual bottom of the last band.
var Inf = Fl(math.Inf(1))

func MinF(x, y Fl) Fl {
	if x < y {
		return x
	}
	return y
}

func MaxF(x, y Fl) Fl {
	if x > y {
		return x
	}
	return y
}

func Maxs(values ...Fl) Fl {
	max := values[0]
	for _, w := range values {
		if w > max {
			max = w
		}
	}
	return max
}
