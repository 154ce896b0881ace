package geom

import (
	"image/color"
	"testing"

	"github.com/vdobler/plotgeom"
	"github.com/vdobler/plotgeom/data"
	"gonum.org/v1/plot/vg"
)

func TestRecordExtent(t *testing.T) {
	recs := []data.Record[string]{
		{X: "a", Y: 3, Y0: 1},
		{X: "b", Y: nan, Y0: -2},
		{X: "c", Y: 7},
	}
	if got := RecordExtent(recs); !got.Equal(plotgeom.Interval{Min: -2, Max: 7}) {
		t.Errorf("RecordExtent = %s, want [-2:7]", got)
	}
	if got := RecordExtent[string](nil); got.IsValid() {
		t.Errorf("RecordExtent(nil) = %s, want unset", got)
	}
}

func TestCanonicRectangle(t *testing.T) {
	r := CanonicRectangle(vg.Rectangle{Min: pt(10, 5), Max: pt(0, 8)})
	if !nearRect(r, rect(0, 5, 10, 8)) {
		t.Errorf("CanonicRectangle = %v", r)
	}
}

func TestSeriesColor(t *testing.T) {
	palette, err := plotgeom.NewOrdinal([]string{"a", "b"},
		[]color.Color{color.White, color.RGBA{R: 200, A: 255}})
	if err != nil {
		t.Fatal(err)
	}
	if col, ok := SeriesColor(palette, "a", 1); !ok || col != color.White {
		t.Errorf("a = %v, %t", col, ok)
	}
	col, ok := SeriesColor(palette, "b", 0.5)
	if !ok {
		t.Fatal("b failed")
	}
	r, g, _, a := col.RGBA()
	if r != 200*257/2 || g != 0 || a != 0xffff/2 {
		t.Errorf("faded b = %v", col)
	}
	for _, tc := range []struct {
		key   string
		alpha float64
	}{{"c", 1}, {"a", -0.1}, {"a", 1.5}, {"a", nan}} {
		if _, ok := SeriesColor(palette, tc.key, tc.alpha); ok {
			t.Errorf("SeriesColor(%s, %g) succeeded", tc.key, tc.alpha)
		}
	}
}
