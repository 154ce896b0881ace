package plotgeom

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Linear

// Linear is a continuous scale mapping the domain [D0,D1] onto a pixel
// range. Values outside of the domain are extrapolated, not clamped.
// Reversed domains and reversed ranges are fine.
//
// The mapping itself is done by a Transformation: NewLinear uses
// LinearTrans, NewSqrt and NewLog10 use SqrtTrans and Log10Trans.
type Linear[T Number] struct {
	d0, d1 T
	domain Interval
	rng    Interval
	trans  Transformation
	typ    ScaleType
}

var _ Scale[float64] = (*Linear[float64])(nil)

// NewLinear returns a linear scale mapping [d0,d1] onto r.
func NewLinear[T Number](d0, d1 T, r Interval) (*Linear[T], error) {
	return newContinuous(d0, d1, r, LinearTrans, LinearScale)
}

// NewSqrt returns a scale mapping the square root of [d0,d1] linearly
// onto r.
func NewSqrt[T Number](d0, d1 T, r Interval) (*Linear[T], error) {
	return newContinuous(d0, d1, r, SqrtTrans, SqrtScale)
}

// NewLog10 returns a logarithmic scale. Both d0 and d1 must be positive.
// Non-positive values are not representable and miss.
func NewLog10[T Number](d0, d1 T, r Interval) (*Linear[T], error) {
	if !(float64(d0) > 0 && float64(d1) > 0) {
		return nil, fmt.Errorf("%w: log10 domain [%v:%v] not positive",
			ErrDegenerateDomain, d0, d1)
	}
	return newContinuous(d0, d1, r, Log10Trans, Log10Scale)
}

func newContinuous[T Number](d0, d1 T, r Interval, trans Transformation, typ ScaleType) (*Linear[T], error) {
	domain := Interval{float64(d0), float64(d1)}
	if !domain.IsValid() || domain.Min == domain.Max {
		return nil, fmt.Errorf("%w: %s domain %s", ErrDegenerateDomain, typ, domain)
	}
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}
	s := &Linear[T]{d0: d0, d1: d1, domain: domain, rng: r, trans: trans, typ: typ}
	tracef("plotgeom: new %s", s)
	return s, nil
}

// Tick maps v onto the range. It fails only for values which are not
// finite or cannot be transformed (e.g. non-positive values of a log
// scale).
func (s *Linear[T]) Tick(v T) (float64, bool) {
	x := float64(v)
	if !finite(x) {
		return 0, false
	}
	switch x {
	case s.domain.Min:
		return s.rng.Min, true
	case s.domain.Max:
		return s.rng.Max, true
	}
	px := s.trans.Trans(s.domain, s.rng, x)
	if !finite(px) {
		return 0, false
	}
	return px, true
}

// Invert maps the pixel position px back into the domain.
func (s *Linear[T]) Invert(px float64) float64 {
	return s.trans.Inverse(s.domain, s.rng, px)
}

// LeastIndex returns 0: a continuous scale has no domain indices. Use
// LeastIndexWithDomain to search a set of domain values.
func (s *Linear[T]) LeastIndex(px float64) int { return 0 }

// LeastIndexWithDomain returns the index of the value in domain whose tick
// lies closest to px and the offset of px from this tick. Ties resolve to
// the lower index. Values which miss are ignored; if all miss the
// result is (0, 0).
func (s *Linear[T]) LeastIndexWithDomain(px float64, domain []T) (int, float64) {
	best, offset := 0, 0.0
	dist := math.Inf(1)
	for i, v := range domain {
		t, ok := s.Tick(v)
		if !ok {
			continue
		}
		if d := math.Abs(px - t); d < dist {
			best, offset, dist = i, px-t, d
		}
	}
	return best, offset
}

// Domain returns the domain of s.
func (s *Linear[T]) Domain() (d0, d1 T) { return s.d0, s.d1 }

// Range returns the pixel range of s.
func (s *Linear[T]) Range() Interval { return s.rng }

// Type returns LinearScale, SqrtScale or Log10Scale.
func (s *Linear[T]) Type() ScaleType { return s.typ }

// Ticks returns ticks covering the domain of s. A nil ticker selects the
// default ticker of the scale's transformation.
func (s *Linear[T]) Ticks(ticker plot.Ticker) []plot.Tick {
	if ticker == nil {
		ticker = s.trans.Ticker
	}
	lo, hi := s.domain.Min, s.domain.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return ticker.Ticks(lo, hi)
}

func (s *Linear[T]) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s Domain=%s Range=%s", s.typ, s.domain, s.rng)
}
