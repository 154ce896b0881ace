package geom

import (
	"image/color"
	"math"

	"github.com/vdobler/plotgeom"
	"github.com/vdobler/plotgeom/data"
	"gonum.org/v1/plot/vg"
)

// RecordExtent returns the interval covered by the Y and Y0 values of
// recs, e.g. to construct the y scale of a Line, Area or Bar. NaN values
// are ignored; the result is unset if no value is left.
func RecordExtent[X any](recs []data.Record[X]) plotgeom.Interval {
	iv := plotgeom.UnsetInterval()
	for _, r := range recs {
		iv.Update(r.Y, r.Y0)
	}
	return iv
}

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// SeriesColor determines the color of the series key from palette,
// faded by alpha. It fails for keys the palette does not know and for
// alpha outside [0,1].
func SeriesColor(palette *plotgeom.Ordinal[string, color.Color], key string, alpha float64) (color.Color, bool) {
	col, ok := palette.Get(key)
	if !ok || col == nil {
		return col, false
	}
	if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return col, false
	}
	if alpha == 1 {
		return col, true
	}

	r, g, b, a := col.RGBA()
	fade := func(c uint32) uint16 { return uint16(float64(c) * alpha) }
	return color.RGBA64{R: fade(r), G: fade(g), B: fade(b), A: fade(a)}, true
}
