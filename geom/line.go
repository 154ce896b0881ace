package geom

import (
	"github.com/vdobler/plotgeom"
	"github.com/vdobler/plotgeom/data"
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Line

// Line connects the given records in data order.
type Line[X any] struct {
	XScale plotgeom.Scale[X]
	YScale plotgeom.Scale[float64]

	// Curve determines the path between the points. Default is Linear.
	Curve Curve
}

// Points maps each record to a vertex. The result has exactly one
// vertex per record, records which miss on either scale yield a gap.
func (l Line[X]) Points(recs []data.Record[X]) []Vertex {
	vs := make([]Vertex, len(recs))
	for i, r := range recs {
		x, okx := l.XScale.Tick(r.X)
		y, oky := l.YScale.Tick(r.Y)
		if !okx || !oky {
			vs[i].Gap = true
			continue
		}
		vs[i].Point = vg.Point{X: vg.Length(x), Y: vg.Length(y)}
	}
	return vs
}

// Segments returns the connected runs of the line.
func (l Line[X]) Segments(recs []data.Record[X]) [][]vg.Point {
	return segments(l.Points(recs))
}

// Path returns the line as a path with one subpath per segment.
func (l Line[X]) Path(recs []data.Record[X]) vg.Path {
	var path vg.Path
	for _, seg := range l.Segments(recs) {
		path = appendPolyline(path, l.Curve.expand(seg))
	}
	return path
}
