package plotgeom

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// debug enables tracing of scale construction to stdout.
var debug = false

func tracef(format string, args ...interface{}) {
	if !debug {
		return
	}
	fmt.Printf(format+"\n", args...)
}

// ----------------------------------------------------------------------------
// Scale

// A Scale maps values of its domain to pixel positions.
type Scale[T any] interface {
	// Tick maps v to a pixel position. The second result is false if v
	// cannot be represented by the scale, e.g. an unknown category.
	Tick(v T) (float64, bool)

	// LeastIndex returns the index of the domain value rendered closest
	// to the pixel position px. Scales without a meaningful order
	// return 0.
	LeastIndex(px float64) int

	// LeastIndexWithDomain returns the index i of the entry of domain
	// rendered closest to px together with the offset px - Tick(domain[i]).
	LeastIndexWithDomain(px float64, domain []T) (int, float64)
}

// Number is the set of types usable as domain of a continuous scale.
type Number interface {
	constraints.Integer | constraints.Float
}

// Configuration errors reported by the scale constructors.
var (
	ErrDegenerateDomain  = errors.New("plotgeom: degenerate domain")
	ErrInvalidRange      = errors.New("plotgeom: invalid range")
	ErrPadding           = errors.New("plotgeom: invalid padding")
	ErrDuplicateCategory = errors.New("plotgeom: duplicate category")
	ErrEmptyRange        = errors.New("plotgeom: empty range")
)

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the handful known scale types.
type ScaleType int

const (
	LinearScale ScaleType = iota
	BandScale
	PointScale
	OrdinalScale
	SqrtScale
	Log10Scale
)

// String returns the type of st.
func (st ScaleType) String() string {
	if st < 0 || int(st) >= len(scaleTypeNames) {
		return fmt.Sprintf("ScaleType(%d)", int(st))
	}
	return scaleTypeNames[st]
}

var scaleTypeNames = []string{"linear", "band", "point", "ordinal", "sqrt", "log10"}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// yet determined. Min may be larger than Max for reversed ranges.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval [NaN,NaN] which can be grown
// with Update.
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j are the same interval. Unset edges
// compare equal.
func (i Interval) Equal(j Interval) bool {
	sameEdge := func(a, b float64) bool {
		if math.IsNaN(a) || math.IsNaN(b) {
			return math.IsNaN(a) && math.IsNaN(b)
		}
		return a == b
	}
	return sameEdge(i.Min, j.Min) && sameEdge(i.Max, j.Max)
}

// Len is the signed length Max-Min of i.
func (i Interval) Len() float64 { return i.Max - i.Min }

// IsValid reports whether both edges of i are finite.
func (i Interval) IsValid() bool { return finite(i.Min) && finite(i.Max) }

// Contains reports whether x lies in i, regardless of its orientation.
func (i Interval) Contains(x float64) bool {
	lo, hi := i.Min, i.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return x >= lo && x <= hi
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
