//go:build ignore
// +build ignore

package main

import (
	"os"

	"github.com/vdobler/plotgeom"
	"github.com/vdobler/plotgeom/data"
	"github.com/vdobler/plotgeom/geom"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func main() {
	quarters := []string{"Q1", "Q2", "Q3", "Q4"}
	series := []data.Series{
		{Key: "north", Values: []float64{5, 3, 7, 2}},
		{Key: "south", Values: []float64{2, 4, 1, 3}},
		{Key: "west", Values: []float64{0, 4, 2, 1}},
	}
	keys := make([]string, len(series))
	totals := make([]float64, len(series))
	for i, s := range series {
		keys[i], totals[i] = s.Key, s.Sum()
	}
	palette, err := plotgeom.NewColorOrdinal(keys)
	if err != nil {
		panic(err)
	}

	img := vgimg.New(800, 400)
	dc := draw.New(img)

	// Left: stacked bars, largest series at the bottom.
	x, err := plotgeom.NewBand(quarters, plotgeom.Interval{Min: 20, Max: 380},
		plotgeom.BandConfig{PaddingInner: 0.2, PaddingOuter: 0.1, Align: 0.5})
	if err != nil {
		panic(err)
	}
	points, err := geom.Stacker{Order: geom.OrderDescending}.Stack(series)
	if err != nil {
		panic(err)
	}
	y, err := plotgeom.NewLinear(0, geom.Extent(points).Max, plotgeom.Interval{Min: 20, Max: 380})
	if err != nil {
		panic(err)
	}
	bar := geom.Bar[string]{XScale: x, YScale: y}
	rects, err := bar.Stacked(quarters, points)
	if err != nil {
		panic(err)
	}
	for _, r := range rects {
		col, ok := geom.SeriesColor(palette, keys[r.Series], 0.8)
		if !ok {
			continue
		}
		dc.SetColor(col)
		dc.Fill(r.Rect.Path())
	}

	// Right: donut of the series totals.
	pie := geom.Pie{PadAngle: 0.02}
	arcs, err := pie.Arcs(pie.Slices(totals), 60, 150)
	if err != nil {
		panic(err)
	}
	center := vg.Point{X: 600, Y: 200}
	for i, a := range arcs {
		col, _ := geom.SeriesColor(palette, keys[i], 1)
		dc.SetColor(col)
		dc.Fill(a.Path(center))
	}

	w, err := os.Create("bar.png")
	if err != nil {
		panic(err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
