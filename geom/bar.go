package geom

import (
	"fmt"
	"math"

	"github.com/vdobler/plotgeom"
	"github.com/vdobler/plotgeom/data"
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Bar

// Bar draws rectangles standing on (or hanging from) a baseline. The
// categories are placed by the band scale XScale, the values by YScale.
type Bar[X comparable] struct {
	XScale *plotgeom.Band[X]
	YScale plotgeom.Scale[float64]

	// Horizontal lays the bands out along the y axis and the values
	// along the x axis.
	Horizontal bool
}

// BarRect is one bar. Index is the position of its record or category
// in the input, Series the position of its series (0 for Rects).
// Rect is in canonical form.
type BarRect struct {
	Index, Series int
	Rect          vg.Rectangle
}

// Rects returns one bar per record, from Y0 to Y. Records which miss
// on a scale produce no bar.
func (b Bar[X]) Rects(recs []data.Record[X]) []BarRect {
	rects := make([]BarRect, 0, len(recs))
	for i, r := range recs {
		rect, ok := b.rect(r.X, 0, b.XScale.Bandwidth(), r.Y0, r.Y)
		if !ok {
			continue
		}
		rects = append(rects, BarRect{Index: i, Rect: rect})
	}
	return rects
}

// Grouped places the bars of all series side by side inside the band of
// their category. Each series gets the sub-slice bandwidth/len(series)
// at its position in series. The bars start at 0.
func (b Bar[X]) Grouped(cats []X, series []data.Series) ([]BarRect, error) {
	n, err := data.Len(series)
	if err != nil {
		return nil, err
	}
	if len(series) > 0 && n != len(cats) {
		return nil, fmt.Errorf("%w: %d categories for %d values",
			data.ErrLengthMismatch, len(cats), n)
	}
	if len(series) == 0 {
		return nil, nil
	}

	sub := b.XScale.Bandwidth() / float64(len(series))
	tracef("grouped bars: %d series, sub-slice %g", len(series), sub)
	rects := make([]BarRect, 0, len(cats)*len(series))
	for i, x := range cats {
		for j, s := range series {
			rect, ok := b.rect(x, float64(j)*sub, sub, 0, s.Values[i])
			if !ok {
				continue
			}
			rects = append(rects, BarRect{Index: i, Series: j, Rect: rect})
		}
	}
	return rects, nil
}

// Stacked draws the output of a Stacker: for every category one bar per
// series spanning the full bandwidth from baseline to value.
func (b Bar[X]) Stacked(cats []X, points []StackPoint) ([]BarRect, error) {
	if len(cats) != len(points) {
		return nil, fmt.Errorf("%w: %d categories for %d stack points",
			data.ErrLengthMismatch, len(cats), len(points))
	}
	bw := b.XScale.Bandwidth()
	var rects []BarRect
	for i, x := range cats {
		for j, p := range points[i].Values {
			rect, ok := b.rect(x, 0, bw, p.Baseline, p.Value)
			if !ok {
				continue
			}
			rects = append(rects, BarRect{Index: i, Series: j, Rect: rect})
		}
	}
	return rects, nil
}

// HitTest determines which bar of a grouped bar chart with nseries
// series lies under the band axis position px. It fails for positions
// in the padding between bands. With nseries <= 1 the series is 0.
func (b Bar[X]) HitTest(px float64, nseries int) (index, series int, ok bool) {
	if b.XScale.Len() == 0 || math.IsNaN(px) {
		return 0, 0, false
	}
	bw := b.XScale.Bandwidth()
	index, offset := b.XScale.Locate(px)
	if offset < 0 || offset >= bw {
		return index, 0, false
	}
	if nseries <= 1 {
		return index, 0, true
	}
	series = int(offset / (bw / float64(nseries)))
	if series >= nseries {
		series = nseries - 1
	}
	return index, series, true
}

// rect returns the rectangle of width w starting at offset inside the
// band of x and covering the values from v0 to v1.
func (b Bar[X]) rect(x X, offset, w, v0, v1 float64) (vg.Rectangle, bool) {
	start, ok := b.XScale.Tick(x)
	if !ok {
		return vg.Rectangle{}, false
	}
	p0, ok0 := b.YScale.Tick(v0)
	p1, ok1 := b.YScale.Tick(v1)
	if !ok0 || !ok1 {
		return vg.Rectangle{}, false
	}

	lo, hi := start+offset, start+offset+w
	r := vg.Rectangle{
		Min: vg.Point{X: vg.Length(lo), Y: vg.Length(p0)},
		Max: vg.Point{X: vg.Length(hi), Y: vg.Length(p1)},
	}
	if b.Horizontal {
		r = vg.Rectangle{
			Min: vg.Point{X: vg.Length(p0), Y: vg.Length(lo)},
			Max: vg.Point{X: vg.Length(p1), Y: vg.Length(hi)},
		}
	}
	return CanonicRectangle(r), true
}
