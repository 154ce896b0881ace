package geom

import (
	"github.com/vdobler/plotgeom"
	"github.com/vdobler/plotgeom/data"
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Area

// Area fills the region between the Y values of the records and their
// baselines Y0. Records which miss on any scale break the area into
// separate polygons, just like Line.
type Area[X any] struct {
	XScale plotgeom.Scale[X]
	YScale plotgeom.Scale[float64]

	// Curve determines the path along the top and the bottom edge.
	Curve Curve
}

// Edges maps the records to the vertices of the top (Y) and the
// bottom (Y0) edge. Both have one vertex per record and identical gaps.
func (a Area[X]) Edges(recs []data.Record[X]) (top, bottom []Vertex) {
	top = make([]Vertex, len(recs))
	bottom = make([]Vertex, len(recs))
	for i, r := range recs {
		x, okx := a.XScale.Tick(r.X)
		y1, oky1 := a.YScale.Tick(r.Y)
		y0, oky0 := a.YScale.Tick(r.Y0)
		if !okx || !oky1 || !oky0 {
			top[i].Gap, bottom[i].Gap = true, true
			continue
		}
		top[i].Point = vg.Point{X: vg.Length(x), Y: vg.Length(y1)}
		bottom[i].Point = vg.Point{X: vg.Length(x), Y: vg.Length(y0)}
	}
	return top, bottom
}

// Polygons returns one closed polygon per connected run: the top edge
// in data order followed by the bottom edge in reverse order. The
// closing edge back to the first vertex is implicit.
func (a Area[X]) Polygons(recs []data.Record[X]) [][]vg.Point {
	top, bottom := a.Edges(recs)
	tops, bottoms := segments(top), segments(bottom)
	polys := make([][]vg.Point, len(tops))
	for i := range tops {
		polys[i] = outline(tops[i], bottoms[i])
	}
	return polys
}

// Path returns the area as closed subpaths, one per connected run.
func (a Area[X]) Path(recs []data.Record[X]) vg.Path {
	top, bottom := a.Edges(recs)
	tops, bottoms := segments(top), segments(bottom)
	var path vg.Path
	for i := range tops {
		path = appendPolyline(path, outline(a.Curve.expand(tops[i]), a.Curve.expand(bottoms[i])))
		path.Close()
	}
	return path
}

func outline(top, bottom []vg.Point) []vg.Point {
	poly := make([]vg.Point, 0, len(top)+len(bottom))
	poly = append(poly, top...)
	for i := len(bottom) - 1; i >= 0; i-- {
		poly = append(poly, bottom[i])
	}
	return poly
}
