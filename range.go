package polar

import (
	"fmt"
	"math"
)

// Range is a closed interval of values. Its zero value is the empty range,
// returned when no data contributes to an axis; it is distinct from
// NewRange(0, 0).
type Range struct {
	Lower float64
	Upper float64
	set   bool
}

func NewRange(lower, upper float64) Range {
	if lower > upper {
		lower, upper = upper, lower
	}
	return Range{
		Lower: lower,
		Upper: upper,
		set:   true,
	}
}

func (r Range) Valid() bool {
	return r.set
}

func (r Range) Len() float64 {
	return r.Upper - r.Lower
}

func (r Range) Central() float64 {
	return r.Lower/2 + r.Upper/2
}

func (r Range) Contains(v float64) bool {
	return r.set && v >= r.Lower && v <= r.Upper
}

// Resize scales the length of r by factor keeping anchor at the same
// relative position.
func (r Range) Resize(factor, anchor float64) Range {
	var (
		left  = (anchor - r.Lower) * factor
		right = (r.Upper - anchor) * factor
	)
	return NewRange(anchor-left, anchor+right)
}

func (r Range) String() string {
	if !r.set {
		return "range(none)"
	}
	return fmt.Sprintf("range(%g, %g)", r.Lower, r.Upper)
}

// Combine returns the smallest range covering a and b. Empty ranges do not
// contribute.
func Combine(a, b Range) Range {
	if !a.set {
		return b
	}
	if !b.set {
		return a
	}
	return NewRange(math.Min(a.Lower, b.Lower), math.Max(a.Upper, b.Upper))
}

// DataRange computes the union of the value ranges of every dataset bound to
// axis.
func (p *Plot) DataRange(axis ValueAxis) Range {
	var (
		result Range
		index  = p.axes.IndexOf(axis)
	)
	if index < 0 {
		return result
	}
	for _, i := range p.DatasetsForAxis(index) {
		d := p.Dataset(i)
		if d == nil {
			continue
		}
		result = Combine(result, d.RangeBounds())
	}
	return result
}
