package plotgeom

import (
	"errors"
	"image/color"
	"testing"

	"gonum.org/v1/plot/plotutil"
)

func TestOrdinalWraparound(t *testing.T) {
	s, err := NewOrdinal([]string{"A", "B", "C", "D"}, []string{"r0", "r1"})
	if err != nil {
		t.Fatal(err)
	}
	for v, want := range map[string]string{"A": "r0", "B": "r1", "C": "r0", "D": "r1"} {
		if got, ok := s.Get(v); !ok || got != want {
			t.Errorf("Get(%s) = %q, %t, want %q", v, got, ok, want)
		}
	}
	// Get is a pure function of the value.
	a, _ := s.Get("C")
	b, _ := s.Get("C")
	if a != b {
		t.Errorf("Get(C) not deterministic: %q, %q", a, b)
	}
}

func TestOrdinalUnknown(t *testing.T) {
	s, err := NewOrdinal([]int{3, 1, 4}, []float64{10, 20, 30})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Get(5); ok {
		t.Errorf("Get(5) succeeded")
	}
	u := s.WithUnknown(-1)
	if got, ok := u.Get(5); !ok || got != -1 {
		t.Errorf("WithUnknown: Get(5) = %g, %t, want -1", got, ok)
	}
	if got, _ := u.Get(4); got != 30 {
		t.Errorf("WithUnknown: Get(4) = %g, want 30", got)
	}
	if _, ok := s.Get(5); ok {
		t.Errorf("WithUnknown modified the original scale")
	}
	if i, off := s.LeastIndexWithDomain(17, []int{3, 1}); i != 0 || off != 0 {
		t.Errorf("LeastIndexWithDomain = %d, %g, want 0, 0", i, off)
	}
}

func TestOrdinalErrors(t *testing.T) {
	if _, err := NewOrdinal([]string{"a"}, []int{}); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("empty range: %v", err)
	}
	if _, err := NewOrdinal([]string{"a", "a"}, []int{1}); !errors.Is(err, ErrDuplicateCategory) {
		t.Errorf("duplicate category: %v", err)
	}
}

func TestColorOrdinal(t *testing.T) {
	n := len(plotutil.DefaultColors)
	domain := make([]int, n+1)
	for i := range domain {
		domain[i] = i
	}
	s, err := NewColorOrdinal(domain)
	if err != nil {
		t.Fatal(err)
	}
	first, _ := s.Get(0)
	wrapped, _ := s.Get(n)
	if !sameColor(first, wrapped) {
		t.Errorf("color %d = %v, want wrapped %v", n, wrapped, first)
	}
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
