package geom_test

import (
	"fmt"
	"math"

	"github.com/vdobler/plotgeom"
	"github.com/vdobler/plotgeom/data"
	"github.com/vdobler/plotgeom/geom"
)

func ExampleStacker_Stack() {
	stacker := geom.Stacker{Offset: geom.OffsetExpand, Keys: []string{"x", "y"}}
	points, err := stacker.Stack([]data.Series{
		{Key: "a", Values: []float64{1, 2}},
		{Key: "b", Values: []float64{3, 1}},
	})
	if err != nil {
		panic(err)
	}
	for _, p := range points {
		a, b := p.Values[0], p.Values[1]
		fmt.Printf("%s: a=[%.2f %.2f] b=[%.2f %.2f]\n", p.Key, a.Baseline, a.Value, b.Baseline, b.Value)
	}
	// Output:
	// x: a=[0.00 0.25] b=[0.25 1.00]
	// y: a=[0.00 0.67] b=[0.67 1.00]
}

func ExamplePie_Slices() {
	deg := func(a float64) float64 { return a * 180 / math.Pi }
	for _, s := range (geom.Pie{}).Slices([]float64{1, 1, 2}) {
		fmt.Printf("%d: %.0f° to %.0f°\n", s.Index, deg(s.StartAngle), deg(s.EndAngle))
	}
	// Output:
	// 0: 0° to 90°
	// 1: 90° to 180°
	// 2: 180° to 360°
}

func ExampleBar_Grouped() {
	x, _ := plotgeom.NewBand([]string{"Q1", "Q2"}, plotgeom.Interval{Min: 0, Max: 200},
		plotgeom.BandConfig{PaddingInner: 0.5})
	y, _ := plotgeom.NewLinear(0.0, 10.0, plotgeom.Interval{Min: 0, Max: 100})
	bar := geom.Bar[string]{XScale: x, YScale: y}
	rects, _ := bar.Grouped([]string{"Q1", "Q2"}, []data.Series{
		{Key: "a", Values: []float64{5, 10}},
		{Key: "b", Values: []float64{2, 4}},
	})
	for _, r := range rects {
		fmt.Printf("%d/%d: x %g-%g, y %g-%g\n", r.Index, r.Series,
			float64(r.Rect.Min.X), float64(r.Rect.Max.X), float64(r.Rect.Min.Y), float64(r.Rect.Max.Y))
	}
	// Output:
	// 0/0: x 0-25, y 0-50
	// 0/1: x 25-50, y 0-20
	// 1/0: x 100-125, y 0-100
	// 1/1: x 125-150, y 0-40
}
