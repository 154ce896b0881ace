// Package data contains the inputs of the shapes in package geom and
// prototypical implementations of them.
package data

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
)

// ErrLengthMismatch is returned if series which have to share an index
// domain differ in length.
var ErrLengthMismatch = errors.New("data: series length mismatch")

// Record is a single data point of a shape. Y0 is the baseline of the
// point for areas and bars; its zero value is the baseline 0.
// NaN in Y or Y0 marks a missing value.
type Record[X any] struct {
	Key string
	X   X
	Y   float64
	Y0  float64
}

// Series is one named series of values before stacking.
type Series struct {
	Key    string
	Values []float64
}

// Sum returns the sum of all non-NaN values of s.
func (s Series) Sum() float64 {
	sum := 0.0
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			sum += v
		}
	}
	return sum
}

// Len returns the common length of all series. It fails if the series
// differ in length. An empty slice of series has length 0.
func Len(series []Series) (int, error) {
	if len(series) == 0 {
		return 0, nil
	}
	n := len(series[0].Values)
	for _, s := range series[1:] {
		if len(s.Values) != n {
			return 0, fmt.Errorf("%w: %q has %d values, %q has %d",
				ErrLengthMismatch, series[0].Key, n, s.Key, len(s.Values))
		}
	}
	return n, nil
}

// Records pairs the categories xs with the values of s. Both must have
// the same length.
func Records[X any](xs []X, s Series) ([]Record[X], error) {
	if len(xs) != len(s.Values) {
		return nil, fmt.Errorf("%w: %d categories, %q has %d values",
			ErrLengthMismatch, len(xs), s.Key, len(s.Values))
	}
	recs := make([]Record[X], len(xs))
	for i, x := range xs {
		recs[i] = Record[X]{Key: s.Key, X: x, Y: s.Values[i]}
	}
	return recs, nil
}

// FromXYer converts gonum plotter data into records with baseline 0.
func FromXYer(xy plotter.XYer) []Record[float64] {
	recs := make([]Record[float64], xy.Len())
	for i := range recs {
		recs[i].X, recs[i].Y = xy.XY(i)
	}
	return recs
}

// XYY0er wraps the Len and XYY0 methods.
type XYY0er interface {
	// Len returns the number of x, y, y0 triples.
	Len() int

	// XYY0 returns an x, y, y0 triple.
	XYY0(int) (x, y, y0 float64)
}

// XYY0Range returns the minimum and maximum x, y and y0 values.
func XYY0Range(xyy0s XYY0er) (xmin, xmax, ymin, ymax, y0min, y0max float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	y0min, y0max = math.Inf(1), math.Inf(-1)
	for i := 0; i < xyy0s.Len(); i++ {
		x, y, y0 := xyy0s.XYY0(i)
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
		y0min, y0max = math.Min(y0min, y0), math.Max(y0max, y0)
	}
	return xmin, xmax, ymin, ymax, y0min, y0max
}

// XYY0s implements the XYY0er interface.
type XYY0s []struct{ X, Y, Y0 float64 }

func (d XYY0s) Len() int                      { return len(d) }
func (d XYY0s) XYY0(i int) (x, y, y0 float64) { return d[i].X, d[i].Y, d[i].Y0 }

// FromXYY0er converts d into records.
func FromXYY0er(d XYY0er) []Record[float64] {
	recs := make([]Record[float64], d.Len())
	for i := range recs {
		recs[i].X, recs[i].Y, recs[i].Y0 = d.XYY0(i)
	}
	return recs
}
