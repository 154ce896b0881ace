package geom

import (
	"math"
	"sort"
)

// ----------------------------------------------------------------------------
// Pie

// Pie lays out values as slices of a circle. Angles follow the
// convention of Arc: radians, clockwise from 12 o'clock.
type Pie struct {
	// StartAngle is the angle of the first slice.
	StartAngle float64

	// Span is the angle covered by the pie including the pads. Zero
	// selects a full circle of 2π.
	Span float64

	// PadAngle is the gap after each slice. Pads larger than Span/n
	// are reduced to Span/n.
	PadAngle float64

	// Sort optionally determines the order of the slices around the
	// circle. Without it the slices are laid out in input order.
	Sort func(a, b float64) bool
}

// Slice is the angular extent of one value. The gap of PadAngle
// follows EndAngle.
type Slice struct {
	Index                int
	Value                float64
	StartAngle, EndAngle float64
	PadAngle             float64
}

// Span returns the angle covered by s without its pad.
func (s Slice) Span() float64 { return s.EndAngle - s.StartAngle }

// Slices computes one slice per value. The result is in input order,
// independent of Sort. The spans of all slices sum up to
// Span - n*PadAngle. Values which are zero, negative or NaN get a zero
// span but keep their place; if no value is positive all spans are 0.
func (p Pie) Slices(values []float64) []Slice {
	n := len(values)
	slices := make([]Slice, n)
	if n == 0 {
		return slices
	}

	span := p.Span
	if span == 0 {
		span = 2 * math.Pi
	}
	pad := math.Min(math.Abs(p.PadAngle), math.Abs(span)/float64(n))
	if span < 0 {
		pad = -pad
	}

	total := 0.0
	for _, v := range values {
		total += positive(v)
	}
	k := 0.0
	if total > 0 {
		k = (span - float64(n)*pad) / total
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if p.Sort != nil {
		sort.SliceStable(order, func(i, j int) bool {
			return p.Sort(values[order[i]], values[order[j]])
		})
	}

	a := p.StartAngle
	for _, i := range order {
		end := a + positive(values[i])*k
		slices[i] = Slice{
			Index:      i,
			Value:      values[i],
			StartAngle: a,
			EndAngle:   end,
			PadAngle:   pad,
		}
		a = end + pad
	}
	tracef("pie: %d slices, total %g, pad %g", n, total, pad)
	return slices
}

// Arcs turns slices into arcs between the two radii.
func (p Pie) Arcs(slices []Slice, inner, outer float64) ([]Arc, error) {
	proto := Arc{InnerRadius: inner, OuterRadius: outer}
	if err := proto.Validate(); err != nil {
		return nil, err
	}
	arcs := make([]Arc, len(slices))
	for i, s := range slices {
		arcs[i] = proto
		arcs[i].StartAngle, arcs[i].EndAngle = s.StartAngle, s.EndAngle
	}
	return arcs, nil
}

func positive(v float64) float64 {
	if v > 0 && !math.IsInf(v, 1) {
		return v
	}
	return 0
}
