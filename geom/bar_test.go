package geom

import (
	"errors"
	"strconv"
	"testing"

	"github.com/vdobler/plotgeom"
	"github.com/vdobler/plotgeom/data"
	"gonum.org/v1/plot/vg"
)

var quarters = []string{"Q1", "Q2", "Q3", "Q4"}

func quarterBars(t *testing.T) Bar[string] {
	t.Helper()
	x, err := plotgeom.NewBand(quarters, plotgeom.Interval{Min: 0, Max: 400},
		plotgeom.BandConfig{PaddingInner: 0.2})
	if err != nil {
		t.Fatal(err)
	}
	y, err := plotgeom.NewLinear(0.0, 10.0, plotgeom.Interval{Min: 0, Max: 100})
	if err != nil {
		t.Fatal(err)
	}
	return Bar[string]{XScale: x, YScale: y}
}

func nearRect(r, s vg.Rectangle) bool {
	return nearPoint(r.Min, s.Min) && nearPoint(r.Max, s.Max)
}

func rect(x0, y0, x1, y1 float64) vg.Rectangle {
	return vg.Rectangle{Min: pt(x0, y0), Max: pt(x1, y1)}
}

func TestBarRects(t *testing.T) {
	bar := quarterBars(t)
	recs := []data.Record[string]{
		{X: "Q1", Y: 5},
		{X: "Q5", Y: 3},
		{X: "Q3", Y: -2},
		{X: "Q4", Y: nan},
	}
	rects := bar.Rects(recs)
	if len(rects) != 2 {
		t.Fatalf("got %d bars, want 2: %v", len(rects), rects)
	}
	if rects[0].Index != 0 || !nearRect(rects[0].Rect, rect(0, 0, 80, 50)) {
		t.Errorf("bar Q1 = %+v", rects[0])
	}
	if rects[1].Index != 2 || !nearRect(rects[1].Rect, rect(200, -20, 280, 0)) {
		t.Errorf("bar Q3 = %+v", rects[1])
	}

	bar.Horizontal = true
	rects = bar.Rects(recs[:1])
	if !nearRect(rects[0].Rect, rect(0, 0, 50, 80)) {
		t.Errorf("horizontal bar Q1 = %+v", rects[0])
	}
}

func TestBarGrouped(t *testing.T) {
	bar := quarterBars(t)
	series := []data.Series{
		{Key: "a", Values: []float64{1, 2, 3, 4}},
		{Key: "b", Values: []float64{4, 3, 2, 1}},
	}
	rects, err := bar.Grouped(quarters, series)
	if err != nil {
		t.Fatal(err)
	}
	if len(rects) != 8 {
		t.Fatalf("got %d bars, want 8", len(rects))
	}
	r := rects[3]
	if r.Index != 1 || r.Series != 1 || !nearRect(r.Rect, rect(140, 0, 180, 30)) {
		t.Errorf("bar Q2/b = %+v", r)
	}
	// Sub-slices of one category tile its band.
	if !near(float64(rects[0].Rect.Max.X), float64(rects[1].Rect.Min.X)) {
		t.Errorf("sub-slices %v and %v do not touch", rects[0].Rect, rects[1].Rect)
	}

	if _, err := bar.Grouped(quarters[:3], series); !errors.Is(err, data.ErrLengthMismatch) {
		t.Errorf("category mismatch: %v", err)
	}
	series[1].Values = series[1].Values[:3]
	if _, err := bar.Grouped(quarters, series); !errors.Is(err, data.ErrLengthMismatch) {
		t.Errorf("series mismatch: %v", err)
	}
	if rects, err := bar.Grouped(quarters, nil); err != nil || len(rects) != 0 {
		t.Errorf("no series: %v, %v", rects, err)
	}
}

func TestBarStacked(t *testing.T) {
	bar := quarterBars(t)
	points, err := Stacker{}.Stack([]data.Series{
		{Key: "a", Values: []float64{1, 2, 3, 4}},
		{Key: "b", Values: []float64{4, 3, 2, 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	rects, err := bar.Stacked(quarters, points)
	if err != nil {
		t.Fatal(err)
	}
	if len(rects) != 8 {
		t.Fatalf("got %d bars, want 8", len(rects))
	}
	if r := rects[1]; r.Index != 0 || r.Series != 1 || !nearRect(r.Rect, rect(0, 10, 80, 50)) {
		t.Errorf("bar Q1/b = %+v", r)
	}
	if _, err := bar.Stacked(quarters[:2], points); !errors.Is(err, data.ErrLengthMismatch) {
		t.Errorf("mismatch: %v", err)
	}
}

func TestBarHitTest(t *testing.T) {
	bar := quarterBars(t)
	for i, tc := range []struct {
		px      float64
		nseries int
		index   int
		series  int
		ok      bool
	}{
		{150, 2, 1, 1, true},
		{10, 2, 0, 0, true},
		{105, 1, 1, 0, true},
		{185, 2, 1, 0, false},
		{399, 3, 3, 0, false},
		{279.9, 3, 2, 2, true},
		{-5, 2, 0, 0, false},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			index, series, ok := bar.HitTest(tc.px, tc.nseries)
			if index != tc.index || series != tc.series || ok != tc.ok {
				t.Errorf("HitTest(%g, %d) = %d, %d, %t, want %d, %d, %t",
					tc.px, tc.nseries, index, series, ok, tc.index, tc.series, tc.ok)
			}
		})
	}
}
