package plotgeom

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Band

// BandConfig controls the layout of the bands of a Band or Point scale.
type BandConfig struct {
	// PaddingInner is the fraction of each step left empty after the
	// band. It must lie in [0,1].
	PaddingInner float64

	// PaddingOuter is the space before the first and after the last
	// band in multiples of the step. It must not be negative.
	PaddingOuter float64

	// Align distributes the space left over by rounding: 0.5 centers
	// the bands, 1 leaves the slack after the last band and 0 puts it
	// before the first. First and last follow the domain order, also
	// on reversed ranges.
	Align float64

	// Round snaps the step and the bandwidth to whole pixels.
	Round bool
}

// DefaultBandConfig returns a config without padding and centered bands.
func DefaultBandConfig() BandConfig {
	return BandConfig{Align: 0.5}
}

func (c BandConfig) validate() error {
	if !(c.PaddingInner >= 0 && c.PaddingInner <= 1) {
		return fmt.Errorf("%w: inner padding %g not in [0,1]", ErrPadding, c.PaddingInner)
	}
	if !(c.PaddingOuter >= 0) || math.IsInf(c.PaddingOuter, 1) {
		return fmt.Errorf("%w: outer padding %g", ErrPadding, c.PaddingOuter)
	}
	if !(c.Align >= 0 && c.Align <= 1) {
		return fmt.Errorf("%w: align %g not in [0,1]", ErrPadding, c.Align)
	}
	return nil
}

// Band is a discrete scale: each category of the domain owns a band of
// Bandwidth pixels; consecutive bands are Step pixels apart.
//
// A point scale (see NewPoint) is a Band with zero bandwidth whose
// ticks lie in the middle of the bands.
type Band[T comparable] struct {
	domain []T
	index  map[T]int
	rng    Interval
	config BandConfig

	step, bandwidth float64
	offset          float64 // position of the first band in range direction
	reversed        bool
	point           bool
}

var _ Scale[string] = (*Band[string])(nil)

// NewBand returns a band scale distributing domain over the range r.
// The order of domain is significant, duplicate categories are an error.
func NewBand[T comparable](domain []T, r Interval, c BandConfig) (*Band[T], error) {
	return newBand(domain, r, c, false)
}

// NewPoint returns a point scale. Its ticks are the centers the bands
// of an equally configured band scale without inner padding would have.
// Its bandwidth is always 0.
func NewPoint[T comparable](domain []T, r Interval, c BandConfig) (*Band[T], error) {
	return newBand(domain, r, c, true)
}

func newBand[T comparable](domain []T, r Interval, c BandConfig, point bool) (*Band[T], error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}

	s := &Band[T]{
		domain:   append([]T(nil), domain...),
		index:    make(map[T]int, len(domain)),
		rng:      r,
		config:   c,
		reversed: r.Min > r.Max,
		point:    point,
	}
	for i, v := range s.domain {
		if j, dup := s.index[v]; dup {
			return nil, fmt.Errorf("%w: %v at %d and %d", ErrDuplicateCategory, v, j, i)
		}
		s.index[v] = i
	}
	s.layout()
	tracef("plotgeom: new %s", s)
	return s, nil
}

func (s *Band[T]) layout() {
	n := len(s.domain)
	if n == 0 {
		return
	}

	lo, width := s.rng.Min, s.rng.Max-s.rng.Min
	if s.reversed {
		lo, width = s.rng.Max, -width
	}

	inner := s.config.PaddingInner
	if s.point {
		inner = 0
	}
	denom := math.Max(1, float64(n)+2*s.config.PaddingOuter)
	s.step = width / denom
	leftover := 0.0
	if s.config.Round {
		s.step = math.Floor(s.step)
		leftover = width - s.step*denom
	}

	// The first band sits at the low end of the pixels unless the range
	// is reversed.
	slack := 1 - s.config.Align
	if s.reversed {
		slack = s.config.Align
	}
	start := lo + slack*leftover
	if s.config.Round {
		start = math.Round(start)
	}
	s.offset = start + s.config.PaddingOuter*s.step

	if s.point {
		s.offset += s.step / 2
		return
	}
	s.bandwidth = s.step * (1 - inner)
	if s.config.Round {
		s.bandwidth = math.Round(s.bandwidth)
	}
}

// position returns the tick of the category at index i.
func (s *Band[T]) position(i int) float64 {
	if s.reversed {
		i = len(s.domain) - 1 - i
	}
	return s.offset + float64(i)*s.step
}

// Tick returns the start of the band of v (the point for a point scale).
// Unknown categories miss.
func (s *Band[T]) Tick(v T) (float64, bool) {
	i, ok := s.index[v]
	if !ok {
		return 0, false
	}
	return s.position(i), true
}

// Index returns the position of v in the domain.
func (s *Band[T]) Index(v T) (int, bool) {
	i, ok := s.index[v]
	return i, ok
}

// Bandwidth returns the width of each band; 0 for point scales and
// empty domains.
func (s *Band[T]) Bandwidth() float64 { return s.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (s *Band[T]) Step() float64 { return s.step }

// Domain returns a copy of the categories of s.
func (s *Band[T]) Domain() []T { return append([]T(nil), s.domain...) }

// Len is the number of categories.
func (s *Band[T]) Len() int { return len(s.domain) }

// Range returns the pixel range of s.
func (s *Band[T]) Range() Interval { return s.rng }

// Type returns BandScale or PointScale.
func (s *Band[T]) Type() ScaleType {
	if s.point {
		return PointScale
	}
	return BandScale
}

// LeastIndex returns the index of the category whose band contains px
// (whose point is closest to px for point scales). Positions outside of
// all bands resolve to the first or last category. The computation is
// a direct inverse of the layout and does not depend on the number of
// categories.
func (s *Band[T]) LeastIndex(px float64) int {
	n := len(s.domain)
	if n == 0 || s.step == 0 || math.IsNaN(px) {
		return 0
	}

	u := math.Max(-1, math.Min(float64(n), (px-s.offset)/s.step))
	var k int
	if s.point {
		k = clamp(int(math.Floor(u+0.5)), 0, n-1)
	} else {
		k = clamp(int(math.Floor(u)), 0, n-1)
		// Correct rounding errors of the division against the
		// actual band starts.
		if k < n-1 && s.offset+float64(k+1)*s.step <= px {
			k++
		} else if k > 0 && s.offset+float64(k)*s.step > px {
			k--
		}
	}

	if s.reversed {
		k = n - 1 - k
	}
	return k
}

// LeastIndexWithDomain works like LeastIndex but clamps the index to
// domain, which normally is the domain of s or a prefix of it. The
// second result is the offset of px from the tick of the found category,
// e.g. the position of px inside its band.
func (s *Band[T]) LeastIndexWithDomain(px float64, domain []T) (int, float64) {
	if len(domain) == 0 || len(s.domain) == 0 {
		return 0, 0
	}
	i := s.LeastIndex(px)
	if i >= len(domain) {
		i = len(domain) - 1
	}
	return i, px - s.position(i)
}

// Locate is LeastIndexWithDomain over the domain of s. The second
// result of a band scale lies in [0,Bandwidth) if px hits the band.
func (s *Band[T]) Locate(px float64) (int, float64) {
	if len(s.domain) == 0 {
		return 0, 0
	}
	i := s.LeastIndex(px)
	return i, px - s.position(i)
}

func (s *Band[T]) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s n=%d step=%g bandwidth=%g Range=%s",
		s.Type(), len(s.domain), s.step, s.bandwidth, s.rng)
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
