// Package geom provides the shapes which turn data into pixel-space
// geometry: lines, areas, bars, arcs and pie slices, plus the stack
// transform feeding stacked areas and bars.
//
// The overall concept is loosely based on ggplot2's geoms and d3's shape
// generators. Each shape holds references to the scales it needs and
// maps a series of records through them. The shapes do not draw: they
// return gonum vg points, rectangles and paths in the coordinate space
// of the scales' ranges.
//
// Values a scale cannot map are never dropped silently. Line and Area
// break at such records and report the break, bars are skipped but keep
// the index of their record.
package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/vg"
)

// debug enables tracing of layout computations to stdout.
var debug = false

func tracef(format string, args ...interface{}) {
	if !debug {
		return
	}
	fmt.Printf("geom: "+format+"\n", args...)
}

// ----------------------------------------------------------------------------
// Vertex

// Vertex is one point of a line or area outline. A Vertex with Gap set
// marks a record which could not be mapped; its Point is meaningless and
// the line is broken at this position.
type Vertex struct {
	vg.Point
	Gap bool
}

// segments splits vs at the gaps into connected runs.
func segments(vs []Vertex) [][]vg.Point {
	var segs [][]vg.Point
	var cur []vg.Point
	for _, v := range vs {
		if v.Gap {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, v.Point)
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

// ----------------------------------------------------------------------------
// Curve

// Curve selects how the points of a line or area are connected in the
// generated path. It never changes the points themselves.
type Curve int

const (
	// Linear connects points by straight line segments.
	Linear Curve = iota

	// StepAfter moves horizontally first, then vertically.
	StepAfter

	// StepBefore moves vertically first, then horizontally.
	StepBefore
)

// String returns the name of c.
func (c Curve) String() string {
	switch c {
	case Linear:
		return "linear"
	case StepAfter:
		return "step-after"
	case StepBefore:
		return "step-before"
	}
	return fmt.Sprintf("Curve(%d)", int(c))
}

// expand returns the corner points of the path through pts.
func (c Curve) expand(pts []vg.Point) []vg.Point {
	switch c {
	case Linear:
		return pts
	case StepAfter, StepBefore:
	default:
		panic("geom: unknown curve " + c.String())
	}
	if len(pts) < 2 {
		return pts
	}

	xy := make([]vg.Point, 2*len(pts)-1)
	for i, p := range pts {
		xy[2*i] = p
	}
	for i := 1; i < len(xy); i += 2 {
		if c == StepBefore {
			xy[i] = vg.Point{X: xy[i-1].X, Y: xy[i+1].Y}
		} else {
			xy[i] = vg.Point{X: xy[i+1].X, Y: xy[i-1].Y}
		}
	}
	return xy
}

// appendPolyline adds pts as a new subpath to path.
func appendPolyline(path vg.Path, pts []vg.Point) vg.Path {
	for i, p := range pts {
		if i == 0 {
			path.Move(p)
		} else {
			path.Line(p)
		}
	}
	return path
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
