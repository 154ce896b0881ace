package plotgeom

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotutil"
)

// ----------------------------------------------------------------------------
// Ordinal

// Ordinal maps the categories of its domain onto the values of its range
// by position. If the range is shorter than the domain it is cycled, so
// a palette of k colors colors any number of categories.
type Ordinal[T comparable, R any] struct {
	domain     []T
	index      map[T]int
	rng        []R
	unknown    R
	hasUnknown bool
}

var _ Scale[string] = (*Ordinal[string, float64])(nil)

// NewOrdinal returns an ordinal scale mapping domain onto rng.
func NewOrdinal[T comparable, R any](domain []T, rng []R) (*Ordinal[T, R], error) {
	if len(rng) == 0 {
		return nil, ErrEmptyRange
	}
	s := &Ordinal[T, R]{
		domain: append([]T(nil), domain...),
		index:  make(map[T]int, len(domain)),
		rng:    append([]R(nil), rng...),
	}
	for i, v := range s.domain {
		if j, dup := s.index[v]; dup {
			return nil, fmt.Errorf("%w: %v at %d and %d", ErrDuplicateCategory, v, j, i)
		}
		s.index[v] = i
	}
	tracef("plotgeom: new ordinal n=%d k=%d", len(s.domain), len(s.rng))
	return s, nil
}

// NewColorOrdinal returns an ordinal scale onto plotutil.DefaultColors.
func NewColorOrdinal[T comparable](domain []T) (*Ordinal[T, color.Color], error) {
	return NewOrdinal(domain, plotutil.DefaultColors)
}

// WithUnknown returns a copy of s which maps categories absent from the
// domain to u instead of missing.
func (s *Ordinal[T, R]) WithUnknown(u R) *Ordinal[T, R] {
	c := *s
	c.unknown, c.hasUnknown = u, true
	return &c
}

// Get returns the range value of v.
func (s *Ordinal[T, R]) Get(v T) (R, bool) {
	i, ok := s.index[v]
	if !ok {
		return s.unknown, s.hasUnknown
	}
	return s.rng[i%len(s.rng)], true
}

// Tick returns the position of v in the domain as float64. Use Get for
// the range value.
func (s *Ordinal[T, R]) Tick(v T) (float64, bool) {
	i, ok := s.index[v]
	return float64(i), ok
}

// LeastIndex always returns 0; an ordinal scale has no pixel positions.
func (s *Ordinal[T, R]) LeastIndex(px float64) int { return 0 }

// LeastIndexWithDomain always returns (0, 0).
func (s *Ordinal[T, R]) LeastIndexWithDomain(px float64, domain []T) (int, float64) {
	return 0, 0
}

// Domain returns a copy of the categories of s.
func (s *Ordinal[T, R]) Domain() []T { return append([]T(nil), s.domain...) }

// Range returns a copy of the range values of s.
func (s *Ordinal[T, R]) Range() []R { return append([]R(nil), s.rng...) }
